package ir

import (
	"fmt"

	"wasmir/internal/opcode"
	"wasmir/internal/source"
)

// ExprKind enumerates instruction variants in the expression tree.
type ExprKind uint8

const (
	// ExprAtomicLoad is an atomic load instruction.
	ExprAtomicLoad ExprKind = iota
	// ExprAtomicRmw is an atomic read-modify-write instruction.
	ExprAtomicRmw
	// ExprAtomicRmwCmpxchg is an atomic compare-exchange instruction.
	ExprAtomicRmwCmpxchg
	// ExprAtomicStore is an atomic store instruction.
	ExprAtomicStore
	// ExprAtomicNotify is an atomic notify instruction.
	ExprAtomicNotify
	// ExprAtomicWait is an atomic wait instruction.
	ExprAtomicWait
	// ExprBinary is a two-operand numeric instruction.
	ExprBinary
	// ExprBlock is a block instruction.
	ExprBlock
	// ExprBr is an unconditional branch.
	ExprBr
	// ExprBrIf is a conditional branch.
	ExprBrIf
	// ExprBrOnExn is a branch-on-exception instruction.
	ExprBrOnExn
	// ExprBrTable is an indexed branch.
	ExprBrTable
	// ExprCall is a direct call.
	ExprCall
	// ExprCallIndirect is an indirect call through a table.
	ExprCallIndirect
	// ExprCompare is a comparison instruction.
	ExprCompare
	// ExprConst is a typed constant.
	ExprConst
	// ExprConvert is a conversion instruction.
	ExprConvert
	// ExprDrop discards the top operand.
	ExprDrop
	// ExprGlobalGet reads a global.
	ExprGlobalGet
	// ExprGlobalSet writes a global.
	ExprGlobalSet
	// ExprIf is a two-armed conditional.
	ExprIf
	// ExprLoad is a plain memory load.
	ExprLoad
	// ExprLocalGet reads a local or parameter.
	ExprLocalGet
	// ExprLocalSet writes a local or parameter.
	ExprLocalSet
	// ExprLocalTee writes a local, keeping the value.
	ExprLocalTee
	// ExprLoop is a loop instruction.
	ExprLoop
	// ExprMemoryCopy copies a memory range.
	ExprMemoryCopy
	// ExprDataDrop drops a data segment.
	ExprDataDrop
	// ExprMemoryFill fills a memory range.
	ExprMemoryFill
	// ExprMemoryGrow grows the memory.
	ExprMemoryGrow
	// ExprMemoryInit copies from a data segment into memory.
	ExprMemoryInit
	// ExprMemorySize reads the memory size.
	ExprMemorySize
	// ExprNop does nothing.
	ExprNop
	// ExprRefIsNull tests a reference for null.
	ExprRefIsNull
	// ExprRefFunc makes a function reference.
	ExprRefFunc
	// ExprRefNull makes a null reference.
	ExprRefNull
	// ExprRethrow rethrows the current exception.
	ExprRethrow
	// ExprReturn returns from the function.
	ExprReturn
	// ExprReturnCall is a tail call.
	ExprReturnCall
	// ExprReturnCallIndirect is an indirect tail call.
	ExprReturnCallIndirect
	// ExprSelect picks one of two operands.
	ExprSelect
	// ExprSimdLaneOp is a vector instruction with a lane immediate.
	ExprSimdLaneOp
	// ExprSimdShuffleOp is a vector shuffle with a lane-selector immediate.
	ExprSimdShuffleOp
	// ExprLoadSplat loads a scalar and splats it across lanes.
	ExprLoadSplat
	// ExprStore is a plain memory store.
	ExprStore
	// ExprTableCopy copies a table range.
	ExprTableCopy
	// ExprElemDrop drops an element segment.
	ExprElemDrop
	// ExprTableInit copies from an element segment into a table.
	ExprTableInit
	// ExprTableGet reads a table entry.
	ExprTableGet
	// ExprTableGrow grows a table.
	ExprTableGrow
	// ExprTableSize reads a table size.
	ExprTableSize
	// ExprTableSet writes a table entry.
	ExprTableSet
	// ExprTernary is a three-operand vector instruction.
	ExprTernary
	// ExprThrow throws an event.
	ExprThrow
	// ExprTry is a try/catch instruction.
	ExprTry
	// ExprUnary is a one-operand numeric instruction.
	ExprUnary
	// ExprUnreachable traps unconditionally.
	ExprUnreachable
)

var exprKindNames = [...]string{
	ExprAtomicLoad:         "AtomicLoad",
	ExprAtomicRmw:          "AtomicRmw",
	ExprAtomicRmwCmpxchg:   "AtomicRmwCmpxchg",
	ExprAtomicStore:        "AtomicStore",
	ExprAtomicNotify:       "AtomicNotify",
	ExprAtomicWait:         "AtomicWait",
	ExprBinary:             "Binary",
	ExprBlock:              "Block",
	ExprBr:                 "Br",
	ExprBrIf:               "BrIf",
	ExprBrOnExn:            "BrOnExn",
	ExprBrTable:            "BrTable",
	ExprCall:               "Call",
	ExprCallIndirect:       "CallIndirect",
	ExprCompare:            "Compare",
	ExprConst:              "Const",
	ExprConvert:            "Convert",
	ExprDrop:               "Drop",
	ExprGlobalGet:          "GlobalGet",
	ExprGlobalSet:          "GlobalSet",
	ExprIf:                 "If",
	ExprLoad:               "Load",
	ExprLocalGet:           "LocalGet",
	ExprLocalSet:           "LocalSet",
	ExprLocalTee:           "LocalTee",
	ExprLoop:               "Loop",
	ExprMemoryCopy:         "MemoryCopy",
	ExprDataDrop:           "DataDrop",
	ExprMemoryFill:         "MemoryFill",
	ExprMemoryGrow:         "MemoryGrow",
	ExprMemoryInit:         "MemoryInit",
	ExprMemorySize:         "MemorySize",
	ExprNop:                "Nop",
	ExprRefIsNull:          "RefIsNull",
	ExprRefFunc:            "RefFunc",
	ExprRefNull:            "RefNull",
	ExprRethrow:            "Rethrow",
	ExprReturn:             "Return",
	ExprReturnCall:         "ReturnCall",
	ExprReturnCallIndirect: "ReturnCallIndirect",
	ExprSelect:             "Select",
	ExprSimdLaneOp:         "SimdLaneOp",
	ExprSimdShuffleOp:      "SimdShuffleOp",
	ExprLoadSplat:          "LoadSplat",
	ExprStore:              "Store",
	ExprTableCopy:          "TableCopy",
	ExprElemDrop:           "ElemDrop",
	ExprTableInit:          "TableInit",
	ExprTableGet:           "TableGet",
	ExprTableGrow:          "TableGrow",
	ExprTableSize:          "TableSize",
	ExprTableSet:           "TableSet",
	ExprTernary:            "Ternary",
	ExprThrow:              "Throw",
	ExprTry:                "Try",
	ExprUnary:              "Unary",
	ExprUnreachable:        "Unreachable",
}

func (k ExprKind) String() string {
	if int(k) < len(exprKindNames) {
		return exprKindNames[k]
	}
	return "Unknown"
}

// Block bundles a labelled, typed instruction sequence: the body of a
// block, loop, if-arm or try.
type Block struct {
	Label  string
	Decl   BlockDeclaration
	Exprs  ExprList
	EndLoc source.Loc
}

// Expr is one instruction node. The Kind tag selects which payload
// fields are meaningful; the checked accessors below are the supported
// way to read variant payload. Nodes link into the owning ExprList.
type Expr struct {
	Kind ExprKind
	Loc  source.Loc

	prev, next *Expr

	// Opcode-carrying payloads (Binary, Compare, Convert, Unary,
	// Ternary, loads/stores, SIMD).
	Opcode opcode.Opcode
	Align  uint32
	Offset uint32

	// Var payloads. Var is the primary reference; Var2 is the second
	// one where a variant carries two (table.init segment+table,
	// table.copy dst+src, br_on_exn label+event, call_indirect table).
	Var  Var
	Var2 Var

	// Structured control flow.
	Block      *Block
	ElseExprs  ExprList
	ElseEndLoc source.Loc

	// br_table.
	Targets       []Var
	DefaultTarget Var

	// call_indirect family.
	Decl FuncDeclaration

	// Constants and SIMD immediates.
	Const       Const
	SimdLaneImm uint64
	SimdSelImm  V128
}

// Next returns the following node in the owning list, or nil.
func (e *Expr) Next() *Expr { return e.next }

// Prev returns the preceding node in the owning list, or nil.
func (e *Expr) Prev() *Expr { return e.prev }

func (e *Expr) expect(kinds ...ExprKind) error {
	for _, k := range kinds {
		if e.Kind == k {
			return nil
		}
	}
	return fmt.Errorf("%w: have %s", ErrWrongVariant, e.Kind)
}

// BlockBody returns the owned Block of a Block, Loop, If or Try node.
func (e *Expr) BlockBody() (*Block, error) {
	if err := e.expect(ExprBlock, ExprLoop, ExprIf, ExprTry); err != nil {
		return nil, err
	}
	return e.Block, nil
}

// ElseArm returns the false-branch list of an If node.
func (e *Expr) ElseArm() (*ExprList, error) {
	if err := e.expect(ExprIf); err != nil {
		return nil, err
	}
	return &e.ElseExprs, nil
}

// CatchArm returns the catch list of a Try node.
func (e *Expr) CatchArm() (*ExprList, error) {
	if err := e.expect(ExprTry); err != nil {
		return nil, err
	}
	return &e.ElseExprs, nil
}

// ConstValue returns the payload of a Const node.
func (e *Expr) ConstValue() (Const, error) {
	if err := e.expect(ExprConst); err != nil {
		return Const{}, err
	}
	return e.Const, nil
}

// NewExpr makes a payload-free node of the given kind: Drop, Nop,
// Return, Unreachable, Select, Rethrow, RefNull, RefIsNull,
// MemorySize, MemoryGrow, MemoryCopy, MemoryFill.
func NewExpr(kind ExprKind, loc source.Loc) *Expr {
	return &Expr{Kind: kind, Loc: loc}
}

// NewOpcodeExpr makes a Binary, Compare, Convert, Unary or Ternary
// node carrying a catalogue opcode.
func NewOpcodeExpr(kind ExprKind, op opcode.Opcode, loc source.Loc) *Expr {
	return &Expr{Kind: kind, Loc: loc, Opcode: op}
}

// NewVarExpr makes a node whose only payload is one Var: branches,
// calls, local/global accessors, segment and table operators.
func NewVarExpr(kind ExprKind, v Var, loc source.Loc) *Expr {
	return &Expr{Kind: kind, Loc: loc, Var: v}
}

// NewTwoVarExpr makes a TableInit (segment, table), TableCopy
// (dst, src) or BrOnExn (label, event) node.
func NewTwoVarExpr(kind ExprKind, a, b Var, loc source.Loc) *Expr {
	return &Expr{Kind: kind, Loc: loc, Var: a, Var2: b}
}

// NewLoadStoreExpr makes a load/store-shaped node: plain and atomic
// loads and stores, rmw ops, wait/notify and load-splat. Align is in
// bytes; 0 selects the opcode's natural alignment.
func NewLoadStoreExpr(kind ExprKind, op opcode.Opcode, align, offset uint32, loc source.Loc) *Expr {
	return &Expr{Kind: kind, Loc: loc, Opcode: op, Align: align, Offset: offset}
}

// NewConstExpr makes a Const node.
func NewConstExpr(c Const, loc source.Loc) *Expr {
	return &Expr{Kind: ExprConst, Loc: loc, Const: c}
}

// NewBlockExpr makes a Block or Loop node owning block.
func NewBlockExpr(kind ExprKind, block *Block, loc source.Loc) *Expr {
	return &Expr{Kind: kind, Loc: loc, Block: block}
}

// NewIfExpr makes an If node; the true arm's signature applies to the
// whole If.
func NewIfExpr(trueArm *Block, loc source.Loc) *Expr {
	return &Expr{Kind: ExprIf, Loc: loc, Block: trueArm}
}

// NewTryExpr makes a Try node owning its body block; the catch arm is
// filled in afterwards.
func NewTryExpr(body *Block, loc source.Loc) *Expr {
	return &Expr{Kind: ExprTry, Loc: loc, Block: body}
}

// NewBrTableExpr makes a BrTable node.
func NewBrTableExpr(targets []Var, defaultTarget Var, loc source.Loc) *Expr {
	return &Expr{Kind: ExprBrTable, Loc: loc, Targets: targets, DefaultTarget: defaultTarget}
}

// NewCallIndirectExpr makes a CallIndirect or ReturnCallIndirect node.
func NewCallIndirectExpr(kind ExprKind, decl FuncDeclaration, table Var, loc source.Loc) *Expr {
	return &Expr{Kind: kind, Loc: loc, Decl: decl, Var2: table}
}

// NewSimdLaneOpExpr makes a vector node with a lane-index immediate.
func NewSimdLaneOpExpr(op opcode.Opcode, lane uint64, loc source.Loc) *Expr {
	return &Expr{Kind: ExprSimdLaneOp, Loc: loc, Opcode: op, SimdLaneImm: lane}
}

// NewSimdShuffleOpExpr makes a vector shuffle node with its 128-bit
// lane-selector immediate.
func NewSimdShuffleOpExpr(op opcode.Opcode, sel V128, loc source.Loc) *Expr {
	return &Expr{Kind: ExprSimdShuffleOp, Loc: loc, Opcode: op, SimdSelImm: sel}
}
