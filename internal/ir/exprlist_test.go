package ir

import (
	"testing"

	"wasmir/internal/source"
)

func kinds(l *ExprList) []ExprKind {
	var out []ExprKind
	l.Each(func(e *Expr) bool {
		out = append(out, e.Kind)
		return true
	})
	return out
}

func TestExprListPush(t *testing.T) {
	var l ExprList
	if !l.Empty() || l.Front() != nil || l.Back() != nil {
		t.Fatal("zero list should be empty")
	}

	nop := NewExpr(ExprNop, source.Loc{})
	drop := NewExpr(ExprDrop, source.Loc{})
	ret := NewExpr(ExprReturn, source.Loc{})
	l.PushBack(drop)
	l.PushBack(ret)
	l.PushFront(nop)

	if l.Len() != 3 {
		t.Fatalf("len = %d, want 3", l.Len())
	}
	want := []ExprKind{ExprNop, ExprDrop, ExprReturn}
	got := kinds(&l)
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order = %v, want %v", got, want)
		}
	}
	if l.Front() != nop || l.Back() != ret {
		t.Error("front/back mismatch")
	}
	if ret.Prev() != drop || drop.Next() != ret {
		t.Error("links mismatch")
	}
}

func TestExprListSplice(t *testing.T) {
	var a, b ExprList
	a.PushBack(NewExpr(ExprNop, source.Loc{}))
	first := NewExpr(ExprDrop, source.Loc{})
	b.PushBack(first)
	b.PushBack(NewExpr(ExprReturn, source.Loc{}))

	a.SpliceBack(&b)
	if !b.Empty() {
		t.Fatal("splice should drain the source list")
	}
	if a.Len() != 3 {
		t.Fatalf("len = %d, want 3", a.Len())
	}
	// Node identity is stable across the splice.
	if a.Front().Next() != first {
		t.Error("spliced node lost identity")
	}

	var c ExprList
	c.PushBack(NewExpr(ExprUnreachable, source.Loc{}))
	a.SpliceFront(&c)
	if a.Len() != 4 || a.Front().Kind != ExprUnreachable {
		t.Fatalf("SpliceFront: kinds = %v", kinds(&a))
	}

	// Splicing an empty list is a no-op.
	var empty ExprList
	a.SpliceBack(&empty)
	if a.Len() != 4 {
		t.Error("splicing an empty list changed the target")
	}

	// Splicing into an empty list adopts the source wholesale.
	var dst ExprList
	dst.SpliceBack(&a)
	if dst.Len() != 4 || !a.Empty() {
		t.Error("splice into empty list failed")
	}
}

func TestExprDowncast(t *testing.T) {
	blk := NewBlockExpr(ExprBlock, &Block{Label: "$l"}, source.Loc{})
	if _, err := blk.BlockBody(); err != nil {
		t.Fatalf("BlockBody on a Block: %v", err)
	}
	if _, err := blk.ElseArm(); err == nil {
		t.Fatal("ElseArm on a Block should fail")
	}

	c := NewConstExpr(I32Const(42, source.Loc{}), source.Loc{})
	got, err := c.ConstValue()
	if err != nil {
		t.Fatalf("ConstValue: %v", err)
	}
	if got.U32() != 42 {
		t.Errorf("const = %d, want 42", got.U32())
	}
	if _, err := c.BlockBody(); err == nil {
		t.Fatal("BlockBody on a Const should fail")
	}
}
