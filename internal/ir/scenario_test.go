package ir

import (
	"testing"

	"wasmir/internal/diag"
	"wasmir/internal/source"
	"wasmir/internal/types"
)

// buildRefTypesModule assembles the reference-types fixture: two anyref
// tables, a funcref table with one active segment, a passive funcref
// segment holding a null entry, and nine functions driving table.get,
// table.set, table.grow, table.size and ref.is_null against them.
func buildRefTypesModule(t *testing.T) *Module {
	t.Helper()
	m := NewModule()

	appendSigFunc := func(name string, sig types.FuncSignature, body ...*Expr) {
		// The parser coalesces inline signatures into the type table.
		if m.GetFuncTypeIndexBySig(sig) == InvalidIndex {
			m.AppendField(FuncTypeField(&types.FuncType{Sig: sig}, loc(0)))
		}
		f := NewFunc(name)
		f.Decl.Sig = sig
		for _, e := range body {
			f.Exprs.PushBack(e)
		}
		m.AppendField(FuncField(f, loc(0)))
	}

	anyref1 := NewTable("$t1")
	anyref1.ElemType = types.Anyref
	anyref1.ElemLimits = types.Limits{Initial: 1}
	anyref2 := NewTable("$t2")
	anyref2.ElemType = types.Anyref
	anyref2.ElemLimits = types.Limits{Initial: 1}
	funcTbl := NewTable("$t3")
	funcTbl.ElemLimits = types.Limits{Initial: 1}
	m.AppendField(TableField(anyref1, loc(1)))
	m.AppendField(TableField(anyref2, loc(2)))
	m.AppendField(TableField(funcTbl, loc(3)))

	active := &ElemSegment{TableVar: NameVar("$t3", loc(4)), ElemType: types.Funcref}
	active.Offset.PushBack(NewConstExpr(I32Const(0, loc(4)), loc(4)))
	active.ElemExprs = []ElemExpr{FuncElemExpr(NameVar("$get1", loc(4)))}
	m.AppendField(ElemSegmentField(active, loc(4)))

	passive := &ElemSegment{
		Flags:     SegPassive | SegUseElemExprs,
		ElemType:  types.Funcref,
		ElemExprs: []ElemExpr{NullElemExpr()},
	}
	m.AppendField(ElemSegmentField(passive, loc(5)))

	getSig := types.FuncSignature{ResultTypes: types.Vector{types.Anyref}}
	setSig := types.FuncSignature{ParamTypes: types.Vector{types.Anyref}}
	sizeSig := types.FuncSignature{ResultTypes: types.Vector{types.I32}}
	growSig := types.FuncSignature{
		ParamTypes:  types.Vector{types.Anyref},
		ResultTypes: types.Vector{types.I32},
	}

	tableOp := func(kind ExprKind, table string) *Expr {
		return NewVarExpr(kind, NameVar(table, loc(0)), loc(0))
	}

	appendSigFunc("$get1", getSig,
		NewConstExpr(I32Const(0, loc(0)), loc(0)), tableOp(ExprTableGet, "$t1"))
	appendSigFunc("$get2", getSig,
		NewConstExpr(I32Const(0, loc(0)), loc(0)), tableOp(ExprTableGet, "$t2"))
	appendSigFunc("$set1", setSig,
		NewConstExpr(I32Const(0, loc(0)), loc(0)),
		NewVarExpr(ExprLocalGet, IndexVar(0, loc(0)), loc(0)),
		tableOp(ExprTableSet, "$t1"))
	appendSigFunc("$set2", setSig,
		NewConstExpr(I32Const(0, loc(0)), loc(0)),
		NewVarExpr(ExprLocalGet, IndexVar(0, loc(0)), loc(0)),
		tableOp(ExprTableSet, "$t2"))
	appendSigFunc("$grow1", growSig,
		NewVarExpr(ExprLocalGet, IndexVar(0, loc(0)), loc(0)),
		NewConstExpr(I32Const(1, loc(0)), loc(0)),
		tableOp(ExprTableGrow, "$t1"))
	appendSigFunc("$grow2", growSig,
		NewVarExpr(ExprLocalGet, IndexVar(0, loc(0)), loc(0)),
		NewConstExpr(I32Const(1, loc(0)), loc(0)),
		tableOp(ExprTableGrow, "$t2"))
	appendSigFunc("$size1", sizeSig, tableOp(ExprTableSize, "$t1"))
	appendSigFunc("$size2", sizeSig, tableOp(ExprTableSize, "$t2"))
	appendSigFunc("$null3", growSig,
		NewVarExpr(ExprLocalGet, IndexVar(0, loc(0)), loc(0)),
		NewExpr(ExprRefIsNull, loc(0)))

	return m
}

func TestReferenceTypesModule(t *testing.T) {
	m := buildRefTypesModule(t)

	if len(m.Funcs) != 9 {
		t.Fatalf("funcs = %d, want 9", len(m.Funcs))
	}
	if len(m.Tables) != 3 {
		t.Fatalf("tables = %d, want 3", len(m.Tables))
	}
	if len(m.ElemSegments) != 2 {
		t.Fatalf("elem segments = %d, want 2", len(m.ElemSegments))
	}

	// Inline signatures coalesce to exactly four type entries.
	if len(m.FuncTypes) != 4 {
		t.Fatalf("func types = %d, want 4", len(m.FuncTypes))
	}

	passive := m.ElemSegments[1]
	if passive.Flags != 0x05 {
		t.Errorf("passive segment flags = %#02x, want 0x05", passive.Flags)
	}
	if !passive.IsPassive() {
		t.Error("segment with the passive bit should report passive")
	}
	if m.ElemSegments[0].IsPassive() {
		t.Error("active segment should not report passive")
	}

	bag := diag.NewBag()
	ResolveModule(m, bag)
	if bag.HasErrors() {
		t.Fatalf("resolution failed:\n%v", bag.Items())
	}

	// After resolution no Var in the module is still in name form.
	m.Fields.Each(func(f *ModuleField) bool {
		if f.Kind == FieldFunc {
			f.Func.Exprs.Each(func(e *Expr) bool {
				if e.Var.IsName() && e.Var.Name() != "" {
					t.Errorf("unresolved var %s in %s", e.Var.Name(), e.Kind)
				}
				return true
			})
		}
		if f.Kind == FieldElemSegment && !f.ElemSegment.IsPassive() {
			if f.ElemSegment.TableVar.IsName() {
				t.Errorf("unresolved table var in elem segment")
			}
		}
		return true
	})

	// The active segment points at the third table.
	if got := m.GetTableIndex(m.ElemSegments[0].TableVar); got != 2 {
		t.Errorf("active segment table = %d, want 2", got)
	}

	// Table element types survived.
	if m.Tables[0].ElemType != types.Anyref || m.Tables[2].ElemType != types.Funcref {
		t.Error("table element types mismatch")
	}
}

func TestResolveReportsUnknownNames(t *testing.T) {
	m := NewModule()
	f := NewFunc("$f")
	f.Exprs.PushBack(NewVarExpr(ExprCall, NameVar("$missing", source.Loc{Line: 2}), source.Loc{Line: 2}))
	m.AppendField(FuncField(f, loc(1)))

	bag := diag.NewBag()
	ResolveModule(m, bag)
	if !bag.HasErrors() {
		t.Fatal("unknown callee should be reported")
	}
}

func TestResolveLabels(t *testing.T) {
	m := NewModule()
	f := NewFunc("$f")

	inner := &Block{Label: "$inner"}
	inner.Exprs.PushBack(NewVarExpr(ExprBr, NameVar("$outer", source.Loc{}), source.Loc{}))
	inner.Exprs.PushBack(NewVarExpr(ExprBrIf, NameVar("$inner", source.Loc{}), source.Loc{}))
	outer := &Block{Label: "$outer"}
	outer.Exprs.PushBack(NewBlockExpr(ExprBlock, inner, source.Loc{}))
	f.Exprs.PushBack(NewBlockExpr(ExprBlock, outer, source.Loc{}))
	m.AppendField(FuncField(f, loc(1)))

	bag := diag.NewBag()
	ResolveModule(m, bag)
	if bag.HasErrors() {
		t.Fatalf("label resolution failed:\n%v", bag.Items())
	}

	br := inner.Exprs.Front()
	brIf := br.Next()
	if br.Var.Index() != 1 {
		t.Errorf("br $outer depth = %d, want 1", br.Var.Index())
	}
	if brIf.Var.Index() != 0 {
		t.Errorf("br_if $inner depth = %d, want 0", brIf.Var.Index())
	}
}
