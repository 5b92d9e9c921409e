// Package ir is the in-memory representation of a parsed WebAssembly
// module and of the script-level commands layered above modules for
// conformance testing. Constructors never fail; lookups return
// sentinels and leave reporting to callers.
package ir

import (
	"fmt"

	"wasmir/internal/source"
)

// Index addresses one entity inside a module index space.
type Index = uint32

// InvalidIndex is the sentinel returned by failed lookups.
const InvalidIndex Index = ^Index(0)

// Var is a reference that is either a numeric index or a symbolic
// $-name within one namespace. The parser produces either form; the
// resolver rewrites every name to its index once binding tables exist.
type Var struct {
	Loc source.Loc

	isName bool
	index  Index
	name   string
}

// IndexVar makes a Var in index form.
func IndexVar(index Index, loc source.Loc) Var {
	return Var{Loc: loc, index: index}
}

// NameVar makes a Var in name form.
func NameVar(name string, loc source.Loc) Var {
	return Var{Loc: loc, isName: true, name: name}
}

func (v Var) IsIndex() bool { return !v.isName }
func (v Var) IsName() bool  { return v.isName }

// Index returns the numeric payload, or InvalidIndex when the Var is in
// name form.
func (v Var) Index() Index {
	if v.isName {
		return InvalidIndex
	}
	return v.index
}

// Name returns the symbolic payload, or "" when the Var is in index
// form.
func (v Var) Name() string {
	if !v.isName {
		return ""
	}
	return v.name
}

// SetIndex rewrites the Var to index form, dropping any name payload.
func (v *Var) SetIndex(index Index) {
	v.isName = false
	v.index = index
	v.name = ""
}

// SetName rewrites the Var to name form, dropping any index payload.
func (v *Var) SetName(name string) {
	v.isName = true
	v.name = name
	v.index = 0
}

func (v Var) String() string {
	if v.isName {
		return v.name
	}
	return fmt.Sprintf("%d", v.index)
}
