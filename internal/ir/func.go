package ir

import "wasmir/internal/types"

// Func is a function definition: its declaration, run-length-encoded
// locals, body, and the name bindings of its parameters and locals.
// Parameters and locals share one index space with parameters first.
type Func struct {
	Name       string
	Decl       FuncDeclaration
	LocalTypes LocalTypes
	Bindings   BindingHash
	Exprs      ExprList
}

// NewFunc makes an empty function with the given name ("" for none).
func NewFunc(name string) *Func {
	return &Func{Name: name, Bindings: BindingHash{}}
}

func (f *Func) NumParams() Index  { return Index(f.Decl.NumParams()) }
func (f *Func) NumResults() Index { return Index(f.Decl.NumResults()) }
func (f *Func) NumLocals() Index  { return f.LocalTypes.Size() }

func (f *Func) NumParamsAndLocals() Index {
	return f.NumParams() + f.NumLocals()
}

// LocalIndex resolves a parameter-or-local reference. Numeric vars are
// returned verbatim (bounds are a validator's concern); names resolve
// through the function's bindings, to InvalidIndex on a miss.
func (f *Func) LocalIndex(v Var) Index {
	if v.IsIndex() {
		return v.Index()
	}
	return f.Bindings.FindIndex(v.Name())
}

// LocalType returns the type at index i of the shared param/local
// space; the second result is false when i is out of range.
func (f *Func) LocalType(i Index) (types.Type, bool) {
	n := f.NumParams()
	if i < n {
		return f.Decl.ParamType(int(i)), true
	}
	return f.LocalTypes.At(i - n)
}

// LocalTypeVar resolves v to an index, then to its type.
func (f *Func) LocalTypeVar(v Var) (types.Type, bool) {
	i := f.LocalIndex(v)
	if i == InvalidIndex {
		return types.Void, false
	}
	return f.LocalType(i)
}
