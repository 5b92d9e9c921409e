package ir

import "wasmir/internal/types"

// FuncDeclaration types a function, event payload or block. It either
// references a module-level type by Var, inlines a signature, or both;
// HasFuncType records whether the reference form was written. After
// resolution both forms must agree when both are present.
type FuncDeclaration struct {
	HasFuncType bool
	TypeVar     Var
	Sig         types.FuncSignature
}

func (d *FuncDeclaration) NumParams() int  { return d.Sig.NumParams() }
func (d *FuncDeclaration) NumResults() int { return d.Sig.NumResults() }

func (d *FuncDeclaration) ParamType(i int) types.Type  { return d.Sig.ParamType(i) }
func (d *FuncDeclaration) ResultType(i int) types.Type { return d.Sig.ResultType(i) }

// BlockDeclaration types a block; structurally identical to a function
// declaration.
type BlockDeclaration = FuncDeclaration
