package ir

import (
	"strings"
	"testing"

	"wasmir/internal/diag"
	"wasmir/internal/source"
)

func TestBindingHashFirstInsertionWins(t *testing.T) {
	h := BindingHash{}
	h.Bind("$f", Binding{Loc: source.Loc{Line: 1}, Index: 0})
	h.Bind("$f", Binding{Loc: source.Loc{Line: 2}, Index: 5})

	b, ok := h.Find("$f")
	if !ok || b.Index != 0 {
		t.Fatalf("Find = %v, %v; want first-inserted binding", b, ok)
	}
	if len(h["$f"]) != 2 {
		t.Fatal("duplicates should be retained in storage")
	}
}

func TestBindingHashEmptyName(t *testing.T) {
	h := BindingHash{}
	h.Bind("", Binding{Index: 0})
	if len(h) != 0 {
		t.Fatal("empty names must never be inserted")
	}
	if h.FindIndex("") != InvalidIndex {
		t.Fatal("empty name should not resolve")
	}
}

func TestCheckDuplicates(t *testing.T) {
	h := BindingHash{}
	h.Bind("$f", Binding{Loc: source.Loc{Line: 1}, Index: 0})
	h.Bind("$f", Binding{Loc: source.Loc{Line: 9}, Index: 3})
	h.Bind("$g", Binding{Loc: source.Loc{Line: 2}, Index: 1})

	bag := diag.NewBag()
	h.CheckDuplicates("function", bag)
	items := bag.Items()
	if len(items) != 1 {
		t.Fatalf("diagnostics = %d, want 1", len(items))
	}
	d := items[0]
	if !strings.Contains(d.Message, "$f") {
		t.Errorf("message %q should name the duplicate", d.Message)
	}
	if d.Primary.Line != 9 {
		t.Errorf("primary should point at the redefinition, got line %d", d.Primary.Line)
	}
	if len(d.Notes) != 1 || d.Notes[0].Loc.Line != 1 {
		t.Errorf("note should point at the first definition: %+v", d.Notes)
	}
}

func TestMakeReverseMapping(t *testing.T) {
	h := BindingHash{}
	h.Bind("$b", Binding{Index: 1})
	h.Bind("$a", Binding{Index: 1})
	h.Bind("$z", Binding{Index: 0})
	h.Bind("$far", Binding{Index: 10})

	out := h.MakeReverseMapping(3)
	if len(out) != 3 {
		t.Fatalf("len = %d, want 3", len(out))
	}
	if out[0] != "$z" {
		t.Errorf("out[0] = %q, want $z", out[0])
	}
	// Ties resolve to the lexicographically first name.
	if out[1] != "$a" {
		t.Errorf("out[1] = %q, want $a", out[1])
	}
	if out[2] != "" {
		t.Errorf("out[2] = %q, want empty", out[2])
	}
}
