package cache

import (
	"wasmir/internal/ir"
	"wasmir/internal/opcode"
)

// ModuleSummary is the cached shape of a module: entity counts, import
// counts and export names. Enough for tooling to answer "what is in
// this module" without reparsing.
type ModuleSummary struct {
	Schema uint16

	Name string

	NumFuncs        uint32
	NumTables       uint32
	NumMemories     uint32
	NumGlobals      uint32
	NumEvents       uint32
	NumFuncTypes    uint32
	NumElemSegments uint32
	NumDataSegments uint32

	NumFuncImports   uint32
	NumTableImports  uint32
	NumMemoryImports uint32
	NumGlobalImports uint32
	NumEventImports  uint32

	ExportNames []string
}

// Summarize derives a summary from a module.
func Summarize(m *ir.Module) *ModuleSummary {
	s := &ModuleSummary{
		Schema:          schemaVersion,
		Name:            m.Name,
		NumFuncs:        uint32(len(m.Funcs)),
		NumTables:       uint32(len(m.Tables)),
		NumMemories:     uint32(len(m.Memories)),
		NumGlobals:      uint32(len(m.Globals)),
		NumEvents:       uint32(len(m.Events)),
		NumFuncTypes:    uint32(len(m.FuncTypes)),
		NumElemSegments: uint32(len(m.ElemSegments)),
		NumDataSegments: uint32(len(m.DataSegments)),

		NumFuncImports:   m.NumFuncImports,
		NumTableImports:  m.NumTableImports,
		NumMemoryImports: m.NumMemoryImports,
		NumGlobalImports: m.NumGlobalImports,
		NumEventImports:  m.NumEventImports,
	}
	for _, e := range m.Exports {
		s.ExportNames = append(s.ExportNames, e.Name)
	}
	return s
}

// CatalogEntry is one opcode row of a catalogue snapshot.
type CatalogEntry struct {
	Prefix   uint8
	Code     uint32
	Text     string
	Result   string
	Params   []string
	MemSize  uint32
	Features string
}

// CatalogSnapshot is a serialisable dump of the opcode catalogue, for
// external tools that cannot link this module.
type CatalogSnapshot struct {
	Schema  uint16
	Entries []CatalogEntry
}

// SnapshotCatalog dumps every catalogue entry in table order.
func SnapshotCatalog() *CatalogSnapshot {
	snap := &CatalogSnapshot{Schema: schemaVersion}
	for op := opcode.Opcode(0); op.IsValid(); op++ {
		var params []string
		for _, p := range op.Params() {
			params = append(params, p.String())
		}
		snap.Entries = append(snap.Entries, CatalogEntry{
			Prefix:   op.Prefix(),
			Code:     op.Code(),
			Text:     op.Text(),
			Result:   op.Result().String(),
			Params:   params,
			MemSize:  op.MemorySize(),
			Features: op.Features().String(),
		})
	}
	return snap
}
