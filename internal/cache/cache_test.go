package cache

import (
	"testing"

	"wasmir/internal/ir"
	"wasmir/internal/source"
)

func TestDiskCacheRoundTrip(t *testing.T) {
	c, err := OpenAt(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	m := ir.NewModule()
	m.Name = "$m"
	m.AppendField(ir.ImportField(
		ir.FuncImport("env", "f", ir.NewFunc("$imp")), source.Loc{}))
	m.AppendField(ir.FuncField(ir.NewFunc("$f"), source.Loc{}))
	m.AppendField(ir.ExportField(
		&ir.Export{Name: "run", Kind: ir.ExternalFunc, Var: ir.IndexVar(1, source.Loc{})}, source.Loc{}))

	key := DigestString("test.wast:$m")
	if err := c.Put(key, Summarize(m)); err != nil {
		t.Fatal(err)
	}

	var got ModuleSummary
	ok, err := c.Get(key, &got)
	if err != nil || !ok {
		t.Fatalf("Get = %v, %v", ok, err)
	}
	if got.Name != "$m" || got.NumFuncs != 2 || got.NumFuncImports != 1 {
		t.Errorf("summary mismatch: %+v", got)
	}
	if len(got.ExportNames) != 1 || got.ExportNames[0] != "run" {
		t.Errorf("export names = %v", got.ExportNames)
	}
}

func TestDiskCacheMiss(t *testing.T) {
	c, err := OpenAt(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	var got ModuleSummary
	ok, err := c.Get(DigestString("nothing"), &got)
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Fatal("expected a miss")
	}
}

func TestSnapshotCatalog(t *testing.T) {
	snap := SnapshotCatalog()
	if len(snap.Entries) < 300 {
		t.Fatalf("snapshot has %d entries; catalogue should be large", len(snap.Entries))
	}
	first := snap.Entries[0]
	if first.Text != "unreachable" || first.Prefix != 0 || first.Code != 0 {
		t.Errorf("first entry = %+v", first)
	}

	c, err := OpenAt(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	key := DigestString("catalog")
	if err := c.Put(key, snap); err != nil {
		t.Fatal(err)
	}
	var got CatalogSnapshot
	ok, err := c.Get(key, &got)
	if err != nil || !ok {
		t.Fatalf("Get = %v, %v", ok, err)
	}
	if len(got.Entries) != len(snap.Entries) {
		t.Errorf("entries = %d, want %d", len(got.Entries), len(snap.Entries))
	}
}
