package ir

import "wasmir/internal/diag"

// CheckDuplicateBindings scans every namespace of the module for names
// bound more than once. The binding tables deliberately retain
// duplicates so this scan can report every declaration site.
func CheckDuplicateBindings(m *Module, bag *diag.Bag) {
	m.FuncTypeBindings.CheckDuplicates("type", bag)
	m.FuncBindings.CheckDuplicates("function", bag)
	m.TableBindings.CheckDuplicates("table", bag)
	m.MemoryBindings.CheckDuplicates("memory", bag)
	m.GlobalBindings.CheckDuplicates("global", bag)
	m.EventBindings.CheckDuplicates("event", bag)
	m.ExportBindings.CheckDuplicates("export", bag)
	m.ElemSegmentBindings.CheckDuplicates("element segment", bag)
	m.DataSegmentBindings.CheckDuplicates("data segment", bag)
}
