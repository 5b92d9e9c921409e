package ir

import "fmt"

// ExternalKind classifies importable and exportable entities.
type ExternalKind uint8

const (
	// ExternalFunc is a function.
	ExternalFunc ExternalKind = iota
	// ExternalTable is a table.
	ExternalTable
	// ExternalMemory is a linear memory.
	ExternalMemory
	// ExternalGlobal is a global.
	ExternalGlobal
	// ExternalEvent is an exception event.
	ExternalEvent
)

func (k ExternalKind) String() string {
	switch k {
	case ExternalFunc:
		return "func"
	case ExternalTable:
		return "table"
	case ExternalMemory:
		return "memory"
	case ExternalGlobal:
		return "global"
	case ExternalEvent:
		return "event"
	}
	return "unknown"
}

// Import names a two-level (module, field) pair and wraps one external
// definition selected by Kind.
type Import struct {
	Kind   ExternalKind
	Module string
	Field  string

	Func   *Func
	Table  *Table
	Memory *Memory
	Global *Global
	Event  *Event
}

func (im *Import) expect(kind ExternalKind) error {
	if im.Kind != kind {
		return fmt.Errorf("%w: import is a %s, not a %s", ErrWrongVariant, im.Kind, kind)
	}
	return nil
}

// AsFunc returns the wrapped function definition.
func (im *Import) AsFunc() (*Func, error) {
	if err := im.expect(ExternalFunc); err != nil {
		return nil, err
	}
	return im.Func, nil
}

// AsTable returns the wrapped table definition.
func (im *Import) AsTable() (*Table, error) {
	if err := im.expect(ExternalTable); err != nil {
		return nil, err
	}
	return im.Table, nil
}

// AsMemory returns the wrapped memory definition.
func (im *Import) AsMemory() (*Memory, error) {
	if err := im.expect(ExternalMemory); err != nil {
		return nil, err
	}
	return im.Memory, nil
}

// AsGlobal returns the wrapped global definition.
func (im *Import) AsGlobal() (*Global, error) {
	if err := im.expect(ExternalGlobal); err != nil {
		return nil, err
	}
	return im.Global, nil
}

// AsEvent returns the wrapped event definition.
func (im *Import) AsEvent() (*Event, error) {
	if err := im.expect(ExternalEvent); err != nil {
		return nil, err
	}
	return im.Event, nil
}

// FuncImport wraps a function definition as an import payload.
func FuncImport(module, field string, f *Func) *Import {
	return &Import{Kind: ExternalFunc, Module: module, Field: field, Func: f}
}

// TableImport wraps a table definition as an import payload.
func TableImport(module, field string, t *Table) *Import {
	return &Import{Kind: ExternalTable, Module: module, Field: field, Table: t}
}

// MemoryImport wraps a memory definition as an import payload.
func MemoryImport(module, field string, m *Memory) *Import {
	return &Import{Kind: ExternalMemory, Module: module, Field: field, Memory: m}
}

// GlobalImport wraps a global definition as an import payload.
func GlobalImport(module, field string, g *Global) *Import {
	return &Import{Kind: ExternalGlobal, Module: module, Field: field, Global: g}
}

// EventImport wraps an event definition as an import payload.
func EventImport(module, field string, e *Event) *Import {
	return &Import{Kind: ExternalEvent, Module: module, Field: field, Event: e}
}

// Export records a local export name, the kind of the exported entity
// and a reference to it.
type Export struct {
	Name string
	Kind ExternalKind
	Var  Var
}
