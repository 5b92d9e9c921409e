package ir

import (
	"testing"

	"wasmir/internal/types"
)

func collect(l *LocalTypes) types.Vector {
	var out types.Vector
	l.Each(func(t types.Type) bool {
		out = append(out, t)
		return true
	})
	return out
}

func TestLocalTypesSet(t *testing.T) {
	var l LocalTypes
	in := types.Vector{types.I32, types.I32, types.F64, types.I32}
	l.Set(in)

	decls := l.Decls()
	want := []LocalTypeDecl{{types.I32, 2}, {types.F64, 1}, {types.I32, 1}}
	if len(decls) != len(want) {
		t.Fatalf("decls = %v, want %v", decls, want)
	}
	for i := range want {
		if decls[i] != want[i] {
			t.Fatalf("decl[%d] = %v, want %v", i, decls[i], want[i])
		}
	}

	if l.Size() != 4 {
		t.Errorf("size = %d, want 4", l.Size())
	}
	if got, ok := l.At(3); !ok || got != types.I32 {
		t.Errorf("At(3) = %v, %v; want i32, true", got, ok)
	}
	if _, ok := l.At(4); ok {
		t.Error("At(4) should be out of range")
	}
	if got := collect(&l); !got.Equal(in) {
		t.Errorf("iteration = %v, want %v", got, in)
	}
}

func TestLocalTypesAppendDecl(t *testing.T) {
	var l LocalTypes
	l.AppendDecl(types.I32, 0)
	if len(l.Decls()) != 0 || l.Size() != 0 {
		t.Fatal("AppendDecl with zero count should be a no-op")
	}

	// Adjacent equal types stay as written; append never coalesces.
	l.AppendDecl(types.I64, 2)
	l.AppendDecl(types.I64, 1)
	if len(l.Decls()) != 2 {
		t.Fatalf("decls = %v, want two runs", l.Decls())
	}
	if l.Size() != 3 {
		t.Errorf("size = %d, want 3", l.Size())
	}
	want := types.Vector{types.I64, types.I64, types.I64}
	if got := collect(&l); !got.Equal(want) {
		t.Errorf("iteration = %v, want %v", got, want)
	}
}

func TestLocalTypesSetReplaces(t *testing.T) {
	var l LocalTypes
	l.AppendDecl(types.F32, 5)
	l.Set(types.Vector{types.I32})
	if l.Size() != 1 {
		t.Fatalf("Set should replace prior decls, size = %d", l.Size())
	}
}
