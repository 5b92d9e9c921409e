package ir

import (
	"wasmir/internal/source"
	"wasmir/internal/types"
)

// FieldKind enumerates module field variants.
type FieldKind uint8

const (
	// FieldFunc is a function definition field.
	FieldFunc FieldKind = iota
	// FieldGlobal is a global definition field.
	FieldGlobal
	// FieldImport is an import field.
	FieldImport
	// FieldExport is an export field.
	FieldExport
	// FieldFuncType is a type-section entry field.
	FieldFuncType
	// FieldTable is a table definition field.
	FieldTable
	// FieldElemSegment is an element segment field.
	FieldElemSegment
	// FieldMemory is a memory definition field.
	FieldMemory
	// FieldDataSegment is a data segment field.
	FieldDataSegment
	// FieldStart is a start-function field.
	FieldStart
	// FieldEvent is an event definition field.
	FieldEvent
)

func (k FieldKind) String() string {
	switch k {
	case FieldFunc:
		return "func"
	case FieldGlobal:
		return "global"
	case FieldImport:
		return "import"
	case FieldExport:
		return "export"
	case FieldFuncType:
		return "type"
	case FieldTable:
		return "table"
	case FieldElemSegment:
		return "elem"
	case FieldMemory:
		return "memory"
	case FieldDataSegment:
		return "data"
	case FieldStart:
		return "start"
	case FieldEvent:
		return "event"
	}
	return "unknown"
}

// ModuleField is one source-ordered module field. The Kind tag selects
// the payload pointer; fields own their payloads. Nodes link into the
// module's field list.
type ModuleField struct {
	Kind FieldKind
	Loc  source.Loc

	prev, next *ModuleField

	Func        *Func
	Global      *Global
	Import      *Import
	Export      *Export
	FuncType    *types.FuncType
	Table       *Table
	ElemSegment *ElemSegment
	Memory      *Memory
	DataSegment *DataSegment
	Start       *Var
	Event       *Event
}

func (f *ModuleField) Next() *ModuleField { return f.next }
func (f *ModuleField) Prev() *ModuleField { return f.prev }

// ModuleFieldList preserves the source order of fields, which is
// significant for index assignment and round-tripping.
type ModuleFieldList struct {
	front *ModuleField
	back  *ModuleField
	size  int
}

func (l *ModuleFieldList) Empty() bool         { return l.size == 0 }
func (l *ModuleFieldList) Len() int            { return l.size }
func (l *ModuleFieldList) Front() *ModuleField { return l.front }
func (l *ModuleFieldList) Back() *ModuleField  { return l.back }

// PushBack appends f.
func (l *ModuleFieldList) PushBack(f *ModuleField) {
	f.prev = l.back
	f.next = nil
	if l.back != nil {
		l.back.next = f
	} else {
		l.front = f
	}
	l.back = f
	l.size++
}

// Each calls yield for every field in order, stopping early on false.
func (l *ModuleFieldList) Each(yield func(*ModuleField) bool) {
	for f := l.front; f != nil; f = f.next {
		if !yield(f) {
			return
		}
	}
}

// FuncField wraps a function definition as a module field.
func FuncField(f *Func, loc source.Loc) *ModuleField {
	return &ModuleField{Kind: FieldFunc, Loc: loc, Func: f}
}

// GlobalField wraps a global definition as a module field.
func GlobalField(g *Global, loc source.Loc) *ModuleField {
	return &ModuleField{Kind: FieldGlobal, Loc: loc, Global: g}
}

// ImportField wraps an import as a module field.
func ImportField(im *Import, loc source.Loc) *ModuleField {
	return &ModuleField{Kind: FieldImport, Loc: loc, Import: im}
}

// ExportField wraps an export as a module field.
func ExportField(e *Export, loc source.Loc) *ModuleField {
	return &ModuleField{Kind: FieldExport, Loc: loc, Export: e}
}

// FuncTypeField wraps a type-section entry as a module field.
func FuncTypeField(t *types.FuncType, loc source.Loc) *ModuleField {
	return &ModuleField{Kind: FieldFuncType, Loc: loc, FuncType: t}
}

// TableField wraps a table definition as a module field.
func TableField(t *Table, loc source.Loc) *ModuleField {
	return &ModuleField{Kind: FieldTable, Loc: loc, Table: t}
}

// ElemSegmentField wraps an element segment as a module field.
func ElemSegmentField(s *ElemSegment, loc source.Loc) *ModuleField {
	return &ModuleField{Kind: FieldElemSegment, Loc: loc, ElemSegment: s}
}

// MemoryField wraps a memory definition as a module field.
func MemoryField(m *Memory, loc source.Loc) *ModuleField {
	return &ModuleField{Kind: FieldMemory, Loc: loc, Memory: m}
}

// DataSegmentField wraps a data segment as a module field.
func DataSegmentField(s *DataSegment, loc source.Loc) *ModuleField {
	return &ModuleField{Kind: FieldDataSegment, Loc: loc, DataSegment: s}
}

// StartField wraps a start-function reference as a module field.
func StartField(start Var, loc source.Loc) *ModuleField {
	return &ModuleField{Kind: FieldStart, Loc: loc, Start: &start}
}

// EventField wraps an event definition as a module field.
func EventField(e *Event, loc source.Loc) *ModuleField {
	return &ModuleField{Kind: FieldEvent, Loc: loc, Event: e}
}
