package ir

import (
	"fortio.org/safecast"

	"wasmir/internal/source"
	"wasmir/internal/types"
)

// Module aggregates definitions in source order, plus per-kind caches:
// ordered handle slices, name bindings, and counts of how many leading
// entries of each index space came from imports. The caches share
// pointers with the field payloads and go stale if the field list is
// mutated behind the module's back; AppendField is the supported
// mutation.
type Module struct {
	Loc    source.Loc
	Name   string
	Fields ModuleFieldList

	NumEventImports  Index
	NumFuncImports   Index
	NumTableImports  Index
	NumMemoryImports Index
	NumGlobalImports Index

	Events       []*Event
	Funcs        []*Func
	Globals      []*Global
	Imports      []*Import
	Exports      []*Export
	FuncTypes    []*types.FuncType
	Tables       []*Table
	ElemSegments []*ElemSegment
	Memories     []*Memory
	DataSegments []*DataSegment
	Starts       []*Var

	EventBindings       BindingHash
	FuncBindings        BindingHash
	GlobalBindings      BindingHash
	ExportBindings      BindingHash
	FuncTypeBindings    BindingHash
	TableBindings       BindingHash
	MemoryBindings      BindingHash
	DataSegmentBindings BindingHash
	ElemSegmentBindings BindingHash
}

// NewModule makes an empty module.
func NewModule() *Module {
	return &Module{
		EventBindings:       BindingHash{},
		FuncBindings:        BindingHash{},
		GlobalBindings:      BindingHash{},
		ExportBindings:      BindingHash{},
		FuncTypeBindings:    BindingHash{},
		TableBindings:       BindingHash{},
		MemoryBindings:      BindingHash{},
		DataSegmentBindings: BindingHash{},
		ElemSegmentBindings: BindingHash{},
	}
}

// lastIndex is the index of the entry just appended to a cache of
// length n.
func lastIndex(n int) Index {
	i, err := safecast.Conv[uint32](n - 1)
	if err != nil {
		return InvalidIndex
	}
	return i
}

func lookupIndex(h BindingHash, v Var) Index {
	if v.IsIndex() {
		return v.Index()
	}
	return h.FindIndex(v.Name())
}

func deref[T any](cache []*T, i Index) *T {
	if int64(i) >= int64(len(cache)) {
		return nil
	}
	return cache[i]
}

// AppendField moves a field into the module: it is linked onto the
// field list, the matching cache gains a handle, and the namespace
// binding table gains the payload's name. Import fields route on the
// wrapped import's kind and bump its import counter; keeping imports
// ahead of same-kind definitions is the parser's job, not checked
// here.
func (m *Module) AppendField(field *ModuleField) {
	m.Fields.PushBack(field)
	switch field.Kind {
	case FieldFunc:
		m.Funcs = append(m.Funcs, field.Func)
		m.FuncBindings.Bind(field.Func.Name, Binding{Loc: field.Loc, Index: lastIndex(len(m.Funcs))})
	case FieldGlobal:
		m.Globals = append(m.Globals, field.Global)
		m.GlobalBindings.Bind(field.Global.Name, Binding{Loc: field.Loc, Index: lastIndex(len(m.Globals))})
	case FieldImport:
		m.appendImport(field.Import, field.Loc)
	case FieldExport:
		m.Exports = append(m.Exports, field.Export)
		m.ExportBindings.Bind(field.Export.Name, Binding{Loc: field.Loc, Index: lastIndex(len(m.Exports))})
	case FieldFuncType:
		m.FuncTypes = append(m.FuncTypes, field.FuncType)
		m.FuncTypeBindings.Bind(field.FuncType.Name, Binding{Loc: field.Loc, Index: lastIndex(len(m.FuncTypes))})
	case FieldTable:
		m.Tables = append(m.Tables, field.Table)
		m.TableBindings.Bind(field.Table.Name, Binding{Loc: field.Loc, Index: lastIndex(len(m.Tables))})
	case FieldElemSegment:
		m.ElemSegments = append(m.ElemSegments, field.ElemSegment)
		m.ElemSegmentBindings.Bind(field.ElemSegment.Name, Binding{Loc: field.Loc, Index: lastIndex(len(m.ElemSegments))})
	case FieldMemory:
		m.Memories = append(m.Memories, field.Memory)
		m.MemoryBindings.Bind(field.Memory.Name, Binding{Loc: field.Loc, Index: lastIndex(len(m.Memories))})
	case FieldDataSegment:
		m.DataSegments = append(m.DataSegments, field.DataSegment)
		m.DataSegmentBindings.Bind(field.DataSegment.Name, Binding{Loc: field.Loc, Index: lastIndex(len(m.DataSegments))})
	case FieldStart:
		m.Starts = append(m.Starts, field.Start)
	case FieldEvent:
		m.Events = append(m.Events, field.Event)
		m.EventBindings.Bind(field.Event.Name, Binding{Loc: field.Loc, Index: lastIndex(len(m.Events))})
	}
}

func (m *Module) appendImport(im *Import, loc source.Loc) {
	m.Imports = append(m.Imports, im)
	switch im.Kind {
	case ExternalFunc:
		m.Funcs = append(m.Funcs, im.Func)
		m.FuncBindings.Bind(im.Func.Name, Binding{Loc: loc, Index: lastIndex(len(m.Funcs))})
		m.NumFuncImports++
	case ExternalTable:
		m.Tables = append(m.Tables, im.Table)
		m.TableBindings.Bind(im.Table.Name, Binding{Loc: loc, Index: lastIndex(len(m.Tables))})
		m.NumTableImports++
	case ExternalMemory:
		m.Memories = append(m.Memories, im.Memory)
		m.MemoryBindings.Bind(im.Memory.Name, Binding{Loc: loc, Index: lastIndex(len(m.Memories))})
		m.NumMemoryImports++
	case ExternalGlobal:
		m.Globals = append(m.Globals, im.Global)
		m.GlobalBindings.Bind(im.Global.Name, Binding{Loc: loc, Index: lastIndex(len(m.Globals))})
		m.NumGlobalImports++
	case ExternalEvent:
		m.Events = append(m.Events, im.Event)
		m.EventBindings.Bind(im.Event.Name, Binding{Loc: loc, Index: lastIndex(len(m.Events))})
		m.NumEventImports++
	}
}

// AppendFields appends every field of list in order, draining it.
func (m *Module) AppendFields(list *ModuleFieldList) {
	for f := list.Front(); f != nil; {
		next := f.Next()
		f.prev, f.next = nil, nil
		m.AppendField(f)
		f = next
	}
	*list = ModuleFieldList{}
}

// GetFuncIndex resolves a function reference to its index, or
// InvalidIndex.
func (m *Module) GetFuncIndex(v Var) Index { return lookupIndex(m.FuncBindings, v) }

// GetFunc resolves a function reference to its definition, or nil.
func (m *Module) GetFunc(v Var) *Func { return deref(m.Funcs, m.GetFuncIndex(v)) }

// GetTableIndex resolves a table reference to its index, or
// InvalidIndex.
func (m *Module) GetTableIndex(v Var) Index { return lookupIndex(m.TableBindings, v) }

// GetTable resolves a table reference to its definition, or nil.
func (m *Module) GetTable(v Var) *Table { return deref(m.Tables, m.GetTableIndex(v)) }

// GetMemoryIndex resolves a memory reference to its index, or
// InvalidIndex.
func (m *Module) GetMemoryIndex(v Var) Index { return lookupIndex(m.MemoryBindings, v) }

// GetMemory resolves a memory reference to its definition, or nil.
func (m *Module) GetMemory(v Var) *Memory { return deref(m.Memories, m.GetMemoryIndex(v)) }

// GetGlobalIndex resolves a global reference to its index, or
// InvalidIndex.
func (m *Module) GetGlobalIndex(v Var) Index { return lookupIndex(m.GlobalBindings, v) }

// GetGlobal resolves a global reference to its definition, or nil.
func (m *Module) GetGlobal(v Var) *Global { return deref(m.Globals, m.GetGlobalIndex(v)) }

// GetEventIndex resolves an event reference to its index, or
// InvalidIndex.
func (m *Module) GetEventIndex(v Var) Index { return lookupIndex(m.EventBindings, v) }

// GetEvent resolves an event reference to its definition, or nil.
func (m *Module) GetEvent(v Var) *Event { return deref(m.Events, m.GetEventIndex(v)) }

// GetFuncTypeIndex resolves a type reference to its index, or
// InvalidIndex.
func (m *Module) GetFuncTypeIndex(v Var) Index { return lookupIndex(m.FuncTypeBindings, v) }

// GetFuncType resolves a type reference to its entry, or nil.
func (m *Module) GetFuncType(v Var) *types.FuncType {
	return deref(m.FuncTypes, m.GetFuncTypeIndex(v))
}

// GetFuncTypeIndexBySig finds the first type entry structurally equal
// to sig, or InvalidIndex.
func (m *Module) GetFuncTypeIndexBySig(sig types.FuncSignature) Index {
	for i, ft := range m.FuncTypes {
		if ft.Sig.Equal(sig) {
			return Index(i)
		}
	}
	return InvalidIndex
}

// GetFuncTypeIndexByDecl resolves a declaration: through its type var
// when it has one, else structurally by its inline signature.
func (m *Module) GetFuncTypeIndexByDecl(decl *FuncDeclaration) Index {
	if decl.HasFuncType {
		return m.GetFuncTypeIndex(decl.TypeVar)
	}
	return m.GetFuncTypeIndexBySig(decl.Sig)
}

// GetDataSegmentIndex resolves a data segment reference to its index,
// or InvalidIndex.
func (m *Module) GetDataSegmentIndex(v Var) Index { return lookupIndex(m.DataSegmentBindings, v) }

// GetDataSegment resolves a data segment reference, or nil.
func (m *Module) GetDataSegment(v Var) *DataSegment {
	return deref(m.DataSegments, m.GetDataSegmentIndex(v))
}

// GetElemSegmentIndex resolves an element segment reference to its
// index, or InvalidIndex.
func (m *Module) GetElemSegmentIndex(v Var) Index { return lookupIndex(m.ElemSegmentBindings, v) }

// GetElemSegment resolves an element segment reference, or nil.
func (m *Module) GetElemSegment(v Var) *ElemSegment {
	return deref(m.ElemSegments, m.GetElemSegmentIndex(v))
}

// GetExport finds an export by its export name, or nil.
func (m *Module) GetExport(name string) *Export {
	return deref(m.Exports, m.ExportBindings.FindIndex(name))
}

// IsImport reports whether the referenced entity originated as an
// import; imports occupy the leading indices of each space.
func (m *Module) IsImport(kind ExternalKind, v Var) bool {
	switch kind {
	case ExternalFunc:
		return m.GetFuncIndex(v) < m.NumFuncImports
	case ExternalTable:
		return m.GetTableIndex(v) < m.NumTableImports
	case ExternalMemory:
		return m.GetMemoryIndex(v) < m.NumMemoryImports
	case ExternalGlobal:
		return m.GetGlobalIndex(v) < m.NumGlobalImports
	case ExternalEvent:
		return m.GetEventIndex(v) < m.NumEventImports
	}
	return false
}

// IsImportExport reports whether an export points at an imported
// entity.
func (m *Module) IsImportExport(e *Export) bool {
	return m.IsImport(e.Kind, e.Var)
}
