package ir

import (
	"testing"

	"wasmir/internal/source"
)

func TestVarFlips(t *testing.T) {
	loc := source.Loc{Filename: "test.wast", Line: 1, FirstCol: 1, LastCol: 3}

	v := IndexVar(7, loc)
	if !v.IsIndex() || v.IsName() {
		t.Fatal("IndexVar should be in index form")
	}
	if v.Index() != 7 {
		t.Fatalf("index = %d, want 7", v.Index())
	}
	if v.Name() != "" {
		t.Errorf("inactive name payload observable: %q", v.Name())
	}

	v.SetName("$f")
	if !v.IsName() {
		t.Fatal("SetName should flip to name form")
	}
	if v.Name() != "$f" {
		t.Fatalf("name = %q, want $f", v.Name())
	}
	if v.Index() != InvalidIndex {
		t.Errorf("inactive index payload observable: %d", v.Index())
	}

	w := NameVar("$g", loc)
	if !w.IsName() {
		t.Fatal("NameVar should be in name form")
	}
	w.SetIndex(3)
	if !w.IsIndex() || w.Index() != 3 {
		t.Fatalf("SetIndex should flip to index form, got %v", w)
	}
	if w.Name() != "" {
		t.Errorf("inactive name payload observable: %q", w.Name())
	}
}
