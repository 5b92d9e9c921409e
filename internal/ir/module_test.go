package ir

import (
	"testing"

	"wasmir/internal/diag"
	"wasmir/internal/source"
	"wasmir/internal/types"
)

func loc(line int) source.Loc { return source.Loc{Filename: "test.wast", Line: line} }

func TestAppendFieldBindings(t *testing.T) {
	m := NewModule()
	m.AppendField(FuncField(NewFunc("$first"), loc(1)))
	m.AppendField(FuncField(NewFunc(""), loc(2)))
	m.AppendField(FuncField(NewFunc("$third"), loc(3)))

	if got := m.GetFuncIndex(NameVar("$first", loc(0))); got != 0 {
		t.Errorf("GetFuncIndex($first) = %d, want 0", got)
	}
	if got := m.GetFuncIndex(NameVar("$third", loc(0))); got != 2 {
		t.Errorf("GetFuncIndex($third) = %d, want 2", got)
	}
	if got := m.GetFuncIndex(NameVar("$missing", loc(0))); got != InvalidIndex {
		t.Errorf("GetFuncIndex($missing) = %d, want InvalidIndex", got)
	}
	// Numeric vars pass through verbatim.
	if got := m.GetFuncIndex(IndexVar(7, loc(0))); got != 7 {
		t.Errorf("GetFuncIndex(7) = %d, want 7", got)
	}
	if m.GetFunc(IndexVar(7, loc(0))) != nil {
		t.Error("GetFunc out of range should be nil")
	}
	if f := m.GetFunc(NameVar("$third", loc(0))); f == nil || f.Name != "$third" {
		t.Error("GetFunc($third) should dereference the cache")
	}
	if m.Fields.Len() != 3 {
		t.Errorf("fields = %d, want 3", m.Fields.Len())
	}
}

func TestImportsPrecedeDefinitions(t *testing.T) {
	m := NewModule()
	m.AppendField(ImportField(FuncImport("env", "f", NewFunc("$imp")), loc(1)))
	m.AppendField(FuncField(NewFunc("$def"), loc(2)))

	if m.NumFuncImports != 1 {
		t.Fatalf("NumFuncImports = %d, want 1", m.NumFuncImports)
	}
	if len(m.Funcs) != 2 {
		t.Fatalf("funcs = %d, want 2", len(m.Funcs))
	}
	if len(m.Imports) != 1 {
		t.Fatalf("imports = %d, want 1", len(m.Imports))
	}
	if !m.IsImport(ExternalFunc, IndexVar(0, loc(0))) {
		t.Error("index 0 should be an import")
	}
	if m.IsImport(ExternalFunc, IndexVar(1, loc(0))) {
		t.Error("index 1 should not be an import")
	}
	if !m.IsImport(ExternalFunc, NameVar("$imp", loc(0))) {
		t.Error("$imp should be an import")
	}

	im := m.Imports[0]
	if _, err := im.AsFunc(); err != nil {
		t.Errorf("AsFunc: %v", err)
	}
	if _, err := im.AsTable(); err == nil {
		t.Error("AsTable on a func import should fail")
	}
}

func TestDuplicateBindingScan(t *testing.T) {
	m := NewModule()
	m.AppendField(FuncField(NewFunc("$f"), loc(1)))
	m.AppendField(FuncField(NewFunc("$f"), loc(5)))

	// Lookup keeps working and resolves to the first insertion.
	if got := m.GetFuncIndex(NameVar("$f", loc(0))); got != 0 {
		t.Fatalf("GetFuncIndex($f) = %d, want 0", got)
	}

	bag := diag.NewBag()
	CheckDuplicateBindings(m, bag)
	items := bag.Items()
	if len(items) != 1 {
		t.Fatalf("diagnostics = %d, want 1", len(items))
	}
	if items[0].Primary.Line != 5 || len(items[0].Notes) != 1 || items[0].Notes[0].Loc.Line != 1 {
		t.Errorf("scan should report both locations: %v", items[0])
	}
}

func TestGetFuncTypeIndexBySig(t *testing.T) {
	m := NewModule()
	sig := types.FuncSignature{
		ParamTypes:  types.Vector{types.I32},
		ResultTypes: types.Vector{types.I32},
	}
	m.AppendField(FuncTypeField(&types.FuncType{Name: "$t0"}, loc(1)))
	m.AppendField(FuncTypeField(&types.FuncType{Name: "$t1", Sig: sig}, loc(2)))

	if got := m.GetFuncTypeIndexBySig(sig); got != 1 {
		t.Errorf("GetFuncTypeIndexBySig = %d, want 1", got)
	}
	missing := types.FuncSignature{ResultTypes: types.Vector{types.F64}}
	if got := m.GetFuncTypeIndexBySig(missing); got != InvalidIndex {
		t.Errorf("missing signature resolved to %d", got)
	}

	decl := &FuncDeclaration{HasFuncType: true, TypeVar: NameVar("$t0", loc(0))}
	if got := m.GetFuncTypeIndexByDecl(decl); got != 0 {
		t.Errorf("GetFuncTypeIndexByDecl via var = %d, want 0", got)
	}
	inline := &FuncDeclaration{Sig: sig}
	if got := m.GetFuncTypeIndexByDecl(inline); got != 1 {
		t.Errorf("GetFuncTypeIndexByDecl via sig = %d, want 1", got)
	}
}

func TestGetExport(t *testing.T) {
	m := NewModule()
	m.AppendField(ImportField(MemoryImport("env", "mem", &Memory{Name: "$m"}), loc(1)))
	m.AppendField(ExportField(&Export{Name: "mem", Kind: ExternalMemory, Var: IndexVar(0, loc(0))}, loc(2)))

	e := m.GetExport("mem")
	if e == nil || e.Kind != ExternalMemory {
		t.Fatalf("GetExport(mem) = %v", e)
	}
	if !m.IsImportExport(e) {
		t.Error("export of imported memory should report as import")
	}
	if m.GetExport("nope") != nil {
		t.Error("missing export should be nil")
	}
}

func TestAppendFields(t *testing.T) {
	var list ModuleFieldList
	list.PushBack(FuncField(NewFunc("$a"), loc(1)))
	list.PushBack(TableField(NewTable("$t"), loc(2)))

	m := NewModule()
	m.AppendFields(&list)
	if !list.Empty() {
		t.Fatal("AppendFields should drain the list")
	}
	if len(m.Funcs) != 1 || len(m.Tables) != 1 {
		t.Fatalf("caches not updated: funcs=%d tables=%d", len(m.Funcs), len(m.Tables))
	}
	if m.GetTableIndex(NameVar("$t", loc(0))) != 0 {
		t.Error("table binding missing after AppendFields")
	}
}

func TestFuncLocalIndexing(t *testing.T) {
	f := NewFunc("$f")
	f.Decl.Sig = types.FuncSignature{ParamTypes: types.Vector{types.I32, types.F32}}
	f.LocalTypes.AppendDecl(types.I64, 2)
	f.Bindings.Bind("$p1", Binding{Index: 1})
	f.Bindings.Bind("$l0", Binding{Index: 2})

	if f.NumParamsAndLocals() != 4 {
		t.Fatalf("params+locals = %d, want 4", f.NumParamsAndLocals())
	}
	if got := f.LocalIndex(IndexVar(3, source.Loc{})); got != 3 {
		t.Errorf("numeric local var = %d, want 3", got)
	}
	if got := f.LocalIndex(NameVar("$l0", source.Loc{})); got != 2 {
		t.Errorf("named local = %d, want 2", got)
	}
	if got := f.LocalIndex(NameVar("$missing", source.Loc{})); got != InvalidIndex {
		t.Errorf("missing local = %d, want InvalidIndex", got)
	}

	if ty, ok := f.LocalType(1); !ok || ty != types.F32 {
		t.Errorf("LocalType(1) = %v, %v; want f32", ty, ok)
	}
	if ty, ok := f.LocalType(2); !ok || ty != types.I64 {
		t.Errorf("LocalType(2) = %v, %v; want i64", ty, ok)
	}
	if _, ok := f.LocalType(4); ok {
		t.Error("LocalType(4) should be out of range")
	}
	if ty, ok := f.LocalTypeVar(NameVar("$p1", source.Loc{})); !ok || ty != types.F32 {
		t.Errorf("LocalTypeVar($p1) = %v, %v", ty, ok)
	}
}
