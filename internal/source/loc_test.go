package source

import "testing"

func TestLocString(t *testing.T) {
	l := Loc{Filename: "mod.wast", Line: 12, FirstCol: 3, LastCol: 9}
	if got := l.String(); got != "mod.wast:12:3" {
		t.Errorf("String = %q", got)
	}
	anon := Loc{Line: 2, FirstCol: 1}
	if got := anon.String(); got != "2:1" {
		t.Errorf("String without filename = %q", got)
	}
}

func TestLocIsZero(t *testing.T) {
	if !(Loc{}).IsZero() {
		t.Error("zero Loc should report zero")
	}
	if (Loc{Line: 1}).IsZero() {
		t.Error("non-zero Loc should not report zero")
	}
}

func TestLocCover(t *testing.T) {
	a := Loc{Filename: "f", Line: 3, FirstCol: 5, LastCol: 8}
	b := Loc{Filename: "f", Line: 3, FirstCol: 2, LastCol: 12}
	got := a.Cover(b)
	if got.FirstCol != 2 || got.LastCol != 12 {
		t.Errorf("Cover = %+v", got)
	}

	other := Loc{Filename: "g", Line: 1, FirstCol: 1, LastCol: 2}
	if got := a.Cover(other); got != a {
		t.Error("Cover across files should keep the receiver")
	}
}
