package ir

import "wasmir/internal/types"

// Table is a table definition: limits plus an element type, which is
// Funcref or Anyref.
type Table struct {
	Name       string
	ElemLimits types.Limits
	ElemType   types.Type
}

// NewTable makes a funcref table with the given name.
func NewTable(name string) *Table {
	return &Table{Name: name, ElemType: types.Funcref}
}

// Memory is a linear memory definition.
type Memory struct {
	Name       string
	PageLimits types.Limits
}

// Global is a global definition with its initializer expression.
type Global struct {
	Name    string
	Type    types.Type
	Mutable bool
	Init    ExprList
}

// NewGlobal makes a global with no type yet.
func NewGlobal(name string) *Global {
	return &Global{Name: name, Type: types.Void}
}

// Event is an exception event; its declaration describes the payload
// the event carries.
type Event struct {
	Name string
	Decl FuncDeclaration
}
