package opcode

import "wasmir/internal/types"

// Shorthand for table rows. A blank slot means "no type".
const (
	___ = types.Void
	i32 = types.I32
	i64 = types.I64
	f32 = types.F32
	f64 = types.F64
	v__ = types.V128
	fref = types.Funcref
	aref = types.Anyref
)

// Opcodes are declared in (prefix, code) order; the infos table below is
// keyed by these constants, so the two cannot drift apart. Extending the
// catalogue means adding a constant here and a row there, in order.
const (
	Unreachable Opcode = iota
	Nop
	Block
	Loop
	If
	Else
	Try
	Catch
	Throw
	Rethrow
	BrOnExn
	End
	Br
	BrIf
	BrTable
	Return
	Call
	CallIndirect
	ReturnCall
	ReturnCallIndirect
	Drop
	Select
	LocalGet
	LocalSet
	LocalTee
	GlobalGet
	GlobalSet
	TableGet
	TableSet
	I32Load
	I64Load
	F32Load
	F64Load
	I32Load8S
	I32Load8U
	I32Load16S
	I32Load16U
	I64Load8S
	I64Load8U
	I64Load16S
	I64Load16U
	I64Load32S
	I64Load32U
	I32Store
	I64Store
	F32Store
	F64Store
	I32Store8
	I32Store16
	I64Store8
	I64Store16
	I64Store32
	MemorySize
	MemoryGrow
	I32Const
	I64Const
	F32Const
	F64Const
	I32Eqz
	I32Eq
	I32Ne
	I32LtS
	I32LtU
	I32GtS
	I32GtU
	I32LeS
	I32LeU
	I32GeS
	I32GeU
	I64Eqz
	I64Eq
	I64Ne
	I64LtS
	I64LtU
	I64GtS
	I64GtU
	I64LeS
	I64LeU
	I64GeS
	I64GeU
	F32Eq
	F32Ne
	F32Lt
	F32Gt
	F32Le
	F32Ge
	F64Eq
	F64Ne
	F64Lt
	F64Gt
	F64Le
	F64Ge
	I32Clz
	I32Ctz
	I32Popcnt
	I32Add
	I32Sub
	I32Mul
	I32DivS
	I32DivU
	I32RemS
	I32RemU
	I32And
	I32Or
	I32Xor
	I32Shl
	I32ShrS
	I32ShrU
	I32Rotl
	I32Rotr
	I64Clz
	I64Ctz
	I64Popcnt
	I64Add
	I64Sub
	I64Mul
	I64DivS
	I64DivU
	I64RemS
	I64RemU
	I64And
	I64Or
	I64Xor
	I64Shl
	I64ShrS
	I64ShrU
	I64Rotl
	I64Rotr
	F32Abs
	F32Neg
	F32Ceil
	F32Floor
	F32Trunc
	F32Nearest
	F32Sqrt
	F32Add
	F32Sub
	F32Mul
	F32Div
	F32Min
	F32Max
	F32Copysign
	F64Abs
	F64Neg
	F64Ceil
	F64Floor
	F64Trunc
	F64Nearest
	F64Sqrt
	F64Add
	F64Sub
	F64Mul
	F64Div
	F64Min
	F64Max
	F64Copysign
	I32WrapI64
	I32TruncF32S
	I32TruncF32U
	I32TruncF64S
	I32TruncF64U
	I64ExtendI32S
	I64ExtendI32U
	I64TruncF32S
	I64TruncF32U
	I64TruncF64S
	I64TruncF64U
	F32ConvertI32S
	F32ConvertI32U
	F32ConvertI64S
	F32ConvertI64U
	F32DemoteF64
	F64ConvertI32S
	F64ConvertI32U
	F64ConvertI64S
	F64ConvertI64U
	F64PromoteF32
	I32ReinterpretF32
	I64ReinterpretF64
	F32ReinterpretI32
	F64ReinterpretI64
	I32Extend8S
	I32Extend16S
	I64Extend8S
	I64Extend16S
	I64Extend32S
	RefNull
	RefIsNull
	RefFunc
	InterpAlloca
	InterpBrUnless
	InterpCallHost
	InterpData
	InterpDropKeep
	I32TruncSatF32S
	I32TruncSatF32U
	I32TruncSatF64S
	I32TruncSatF64U
	I64TruncSatF32S
	I64TruncSatF32U
	I64TruncSatF64S
	I64TruncSatF64U
	MemoryInit
	DataDrop
	MemoryCopy
	MemoryFill
	TableInit
	ElemDrop
	TableCopy
	TableGrow
	TableSize
	V128Load
	V128Load8X8S
	V128Load8X8U
	V128Load16X4S
	V128Load16X4U
	V128Load32X2S
	V128Load32X2U
	V128Load8Splat
	V128Load16Splat
	V128Load32Splat
	V128Load64Splat
	V128Store
	V128Const
	I8X16Shuffle
	I8X16Swizzle
	I8X16Splat
	I16X8Splat
	I32X4Splat
	I64X2Splat
	F32X4Splat
	F64X2Splat
	I8X16ExtractLaneS
	I8X16ExtractLaneU
	I8X16ReplaceLane
	I16X8ExtractLaneS
	I16X8ExtractLaneU
	I16X8ReplaceLane
	I32X4ExtractLane
	I32X4ReplaceLane
	I64X2ExtractLane
	I64X2ReplaceLane
	F32X4ExtractLane
	F32X4ReplaceLane
	F64X2ExtractLane
	F64X2ReplaceLane
	I8X16Eq
	I8X16Ne
	I8X16LtS
	I8X16LtU
	I8X16GtS
	I8X16GtU
	I8X16LeS
	I8X16LeU
	I8X16GeS
	I8X16GeU
	I16X8Eq
	I16X8Ne
	I16X8LtS
	I16X8LtU
	I16X8GtS
	I16X8GtU
	I16X8LeS
	I16X8LeU
	I16X8GeS
	I16X8GeU
	I32X4Eq
	I32X4Ne
	I32X4LtS
	I32X4LtU
	I32X4GtS
	I32X4GtU
	I32X4LeS
	I32X4LeU
	I32X4GeS
	I32X4GeU
	F32X4Eq
	F32X4Ne
	F32X4Lt
	F32X4Gt
	F32X4Le
	F32X4Ge
	F64X2Eq
	F64X2Ne
	F64X2Lt
	F64X2Gt
	F64X2Le
	F64X2Ge
	V128Not
	V128And
	V128Andnot
	V128Or
	V128Xor
	V128BitSelect
	V128AnyTrue
	I8X16Abs
	I8X16Neg
	I8X16AllTrue
	I8X16Bitmask
	I8X16NarrowI16X8S
	I8X16NarrowI16X8U
	I8X16Shl
	I8X16ShrS
	I8X16ShrU
	I8X16Add
	I8X16AddSatS
	I8X16AddSatU
	I8X16Sub
	I8X16SubSatS
	I8X16SubSatU
	I8X16MinS
	I8X16MinU
	I8X16MaxS
	I8X16MaxU
	I8X16AvgrU
	I16X8Abs
	I16X8Neg
	I16X8AllTrue
	I16X8Bitmask
	I16X8NarrowI32X4S
	I16X8NarrowI32X4U
	I16X8ExtendLowI8X16S
	I16X8ExtendHighI8X16S
	I16X8ExtendLowI8X16U
	I16X8ExtendHighI8X16U
	I16X8Shl
	I16X8ShrS
	I16X8ShrU
	I16X8Add
	I16X8AddSatS
	I16X8AddSatU
	I16X8Sub
	I16X8SubSatS
	I16X8SubSatU
	I16X8Mul
	I16X8MinS
	I16X8MinU
	I16X8MaxS
	I16X8MaxU
	I16X8AvgrU
	I32X4Abs
	I32X4Neg
	I32X4AllTrue
	I32X4Bitmask
	I32X4ExtendLowI16X8S
	I32X4ExtendHighI16X8S
	I32X4ExtendLowI16X8U
	I32X4ExtendHighI16X8U
	I32X4Shl
	I32X4ShrS
	I32X4ShrU
	I32X4Add
	I32X4Sub
	I32X4Mul
	I32X4MinS
	I32X4MinU
	I32X4MaxS
	I32X4MaxU
	I32X4DotI16X8S
	I64X2Abs
	I64X2Neg
	I64X2AllTrue
	I64X2Bitmask
	I64X2ExtendLowI32X4S
	I64X2ExtendHighI32X4S
	I64X2ExtendLowI32X4U
	I64X2ExtendHighI32X4U
	I64X2Shl
	I64X2ShrS
	I64X2ShrU
	I64X2Add
	I64X2Sub
	I64X2Mul
	I64X2Eq
	I64X2Ne
	I64X2LtS
	I64X2GtS
	I64X2LeS
	I64X2GeS
	F32X4Abs
	F32X4Neg
	F32X4Sqrt
	F32X4Add
	F32X4Sub
	F32X4Mul
	F32X4Div
	F32X4Min
	F32X4Max
	F64X2Abs
	F64X2Neg
	F64X2Sqrt
	F64X2Add
	F64X2Sub
	F64X2Mul
	F64X2Div
	F64X2Min
	F64X2Max
	I32X4TruncSatF32X4S
	I32X4TruncSatF32X4U
	F32X4ConvertI32X4S
	F32X4ConvertI32X4U
	AtomicNotify
	I32AtomicWait
	I64AtomicWait
	I32AtomicLoad
	I64AtomicLoad
	I32AtomicLoad8U
	I32AtomicLoad16U
	I64AtomicLoad8U
	I64AtomicLoad16U
	I64AtomicLoad32U
	I32AtomicStore
	I64AtomicStore
	I32AtomicStore8
	I32AtomicStore16
	I64AtomicStore8
	I64AtomicStore16
	I64AtomicStore32
	I32AtomicRmwAdd
	I64AtomicRmwAdd
	I32AtomicRmw8AddU
	I32AtomicRmw16AddU
	I64AtomicRmw8AddU
	I64AtomicRmw16AddU
	I64AtomicRmw32AddU
	I32AtomicRmwSub
	I64AtomicRmwSub
	I32AtomicRmw8SubU
	I32AtomicRmw16SubU
	I64AtomicRmw8SubU
	I64AtomicRmw16SubU
	I64AtomicRmw32SubU
	I32AtomicRmwAnd
	I64AtomicRmwAnd
	I32AtomicRmw8AndU
	I32AtomicRmw16AndU
	I64AtomicRmw8AndU
	I64AtomicRmw16AndU
	I64AtomicRmw32AndU
	I32AtomicRmwOr
	I64AtomicRmwOr
	I32AtomicRmw8OrU
	I32AtomicRmw16OrU
	I64AtomicRmw8OrU
	I64AtomicRmw16OrU
	I64AtomicRmw32OrU
	I32AtomicRmwXor
	I64AtomicRmwXor
	I32AtomicRmw8XorU
	I32AtomicRmw16XorU
	I64AtomicRmw8XorU
	I64AtomicRmw16XorU
	I64AtomicRmw32XorU
	I32AtomicRmwXchg
	I64AtomicRmwXchg
	I32AtomicRmw8XchgU
	I32AtomicRmw16XchgU
	I64AtomicRmw8XchgU
	I64AtomicRmw16XchgU
	I64AtomicRmw32XchgU
	I32AtomicRmwCmpxchg
	I64AtomicRmwCmpxchg
	I32AtomicRmw8CmpxchgU
	I32AtomicRmw16CmpxchgU
	I64AtomicRmw8CmpxchgU
	I64AtomicRmw16CmpxchgU
	I64AtomicRmw32CmpxchgU
)

var infos = [...]Info{
	Unreachable:            {0, 0x00, ___, ___, ___, ___, 0, "unreachable", ""},
	Nop:                    {0, 0x01, ___, ___, ___, ___, 0, "nop", ""},
	Block:                  {0, 0x02, ___, ___, ___, ___, 0, "block", ""},
	Loop:                   {0, 0x03, ___, ___, ___, ___, 0, "loop", ""},
	If:                     {0, 0x04, ___, ___, ___, ___, 0, "if", ""},
	Else:                   {0, 0x05, ___, ___, ___, ___, 0, "else", ""},
	Try:                    {0, 0x06, ___, ___, ___, ___, 0, "try", ""},
	Catch:                  {0, 0x07, ___, ___, ___, ___, 0, "catch", ""},
	Throw:                  {0, 0x08, ___, ___, ___, ___, 0, "throw", ""},
	Rethrow:                {0, 0x09, ___, ___, ___, ___, 0, "rethrow", ""},
	BrOnExn:                {0, 0x0a, ___, ___, ___, ___, 0, "br_on_exn", ""},
	End:                    {0, 0x0b, ___, ___, ___, ___, 0, "end", ""},
	Br:                     {0, 0x0c, ___, ___, ___, ___, 0, "br", ""},
	BrIf:                   {0, 0x0d, ___, i32, ___, ___, 0, "br_if", ""},
	BrTable:                {0, 0x0e, ___, i32, ___, ___, 0, "br_table", ""},
	Return:                 {0, 0x0f, ___, ___, ___, ___, 0, "return", ""},
	Call:                   {0, 0x10, ___, ___, ___, ___, 0, "call", ""},
	CallIndirect:           {0, 0x11, ___, ___, ___, ___, 0, "call_indirect", ""},
	ReturnCall:             {0, 0x12, ___, ___, ___, ___, 0, "return_call", ""},
	ReturnCallIndirect:     {0, 0x13, ___, ___, ___, ___, 0, "return_call_indirect", ""},
	Drop:                   {0, 0x1a, ___, ___, ___, ___, 0, "drop", ""},
	Select:                 {0, 0x1b, ___, ___, ___, ___, 0, "select", ""},
	LocalGet:               {0, 0x20, ___, ___, ___, ___, 0, "local.get", ""},
	LocalSet:               {0, 0x21, ___, ___, ___, ___, 0, "local.set", ""},
	LocalTee:               {0, 0x22, ___, ___, ___, ___, 0, "local.tee", ""},
	GlobalGet:              {0, 0x23, ___, ___, ___, ___, 0, "global.get", ""},
	GlobalSet:              {0, 0x24, ___, ___, ___, ___, 0, "global.set", ""},
	TableGet:               {0, 0x25, aref, i32, ___, ___, 0, "table.get", ""},
	TableSet:               {0, 0x26, ___, i32, aref, ___, 0, "table.set", ""},
	I32Load:                {0, 0x28, i32, i32, ___, ___, 4, "i32.load", ""},
	I64Load:                {0, 0x29, i64, i32, ___, ___, 8, "i64.load", ""},
	F32Load:                {0, 0x2a, f32, i32, ___, ___, 4, "f32.load", ""},
	F64Load:                {0, 0x2b, f64, i32, ___, ___, 8, "f64.load", ""},
	I32Load8S:              {0, 0x2c, i32, i32, ___, ___, 1, "i32.load8_s", ""},
	I32Load8U:              {0, 0x2d, i32, i32, ___, ___, 1, "i32.load8_u", ""},
	I32Load16S:             {0, 0x2e, i32, i32, ___, ___, 2, "i32.load16_s", ""},
	I32Load16U:             {0, 0x2f, i32, i32, ___, ___, 2, "i32.load16_u", ""},
	I64Load8S:              {0, 0x30, i64, i32, ___, ___, 1, "i64.load8_s", ""},
	I64Load8U:              {0, 0x31, i64, i32, ___, ___, 1, "i64.load8_u", ""},
	I64Load16S:             {0, 0x32, i64, i32, ___, ___, 2, "i64.load16_s", ""},
	I64Load16U:             {0, 0x33, i64, i32, ___, ___, 2, "i64.load16_u", ""},
	I64Load32S:             {0, 0x34, i64, i32, ___, ___, 4, "i64.load32_s", ""},
	I64Load32U:             {0, 0x35, i64, i32, ___, ___, 4, "i64.load32_u", ""},
	I32Store:               {0, 0x36, ___, i32, i32, ___, 4, "i32.store", ""},
	I64Store:               {0, 0x37, ___, i32, i64, ___, 8, "i64.store", ""},
	F32Store:               {0, 0x38, ___, i32, f32, ___, 4, "f32.store", ""},
	F64Store:               {0, 0x39, ___, i32, f64, ___, 8, "f64.store", ""},
	I32Store8:              {0, 0x3a, ___, i32, i32, ___, 1, "i32.store8", ""},
	I32Store16:             {0, 0x3b, ___, i32, i32, ___, 2, "i32.store16", ""},
	I64Store8:              {0, 0x3c, ___, i32, i64, ___, 1, "i64.store8", ""},
	I64Store16:             {0, 0x3d, ___, i32, i64, ___, 2, "i64.store16", ""},
	I64Store32:             {0, 0x3e, ___, i32, i64, ___, 4, "i64.store32", ""},
	MemorySize:             {0, 0x3f, i32, ___, ___, ___, 0, "memory.size", ""},
	MemoryGrow:             {0, 0x40, i32, i32, ___, ___, 0, "memory.grow", ""},
	I32Const:               {0, 0x41, i32, ___, ___, ___, 0, "i32.const", ""},
	I64Const:               {0, 0x42, i64, ___, ___, ___, 0, "i64.const", ""},
	F32Const:               {0, 0x43, f32, ___, ___, ___, 0, "f32.const", ""},
	F64Const:               {0, 0x44, f64, ___, ___, ___, 0, "f64.const", ""},
	I32Eqz:                 {0, 0x45, i32, i32, ___, ___, 0, "i32.eqz", "eqz"},
	I32Eq:                  {0, 0x46, i32, i32, i32, ___, 0, "i32.eq", "=="},
	I32Ne:                  {0, 0x47, i32, i32, i32, ___, 0, "i32.ne", "!="},
	I32LtS:                 {0, 0x48, i32, i32, i32, ___, 0, "i32.lt_s", "<"},
	I32LtU:                 {0, 0x49, i32, i32, i32, ___, 0, "i32.lt_u", "<"},
	I32GtS:                 {0, 0x4a, i32, i32, i32, ___, 0, "i32.gt_s", ">"},
	I32GtU:                 {0, 0x4b, i32, i32, i32, ___, 0, "i32.gt_u", ">"},
	I32LeS:                 {0, 0x4c, i32, i32, i32, ___, 0, "i32.le_s", "<="},
	I32LeU:                 {0, 0x4d, i32, i32, i32, ___, 0, "i32.le_u", "<="},
	I32GeS:                 {0, 0x4e, i32, i32, i32, ___, 0, "i32.ge_s", ">="},
	I32GeU:                 {0, 0x4f, i32, i32, i32, ___, 0, "i32.ge_u", ">="},
	I64Eqz:                 {0, 0x50, i32, i64, ___, ___, 0, "i64.eqz", "eqz"},
	I64Eq:                  {0, 0x51, i32, i64, i64, ___, 0, "i64.eq", "=="},
	I64Ne:                  {0, 0x52, i32, i64, i64, ___, 0, "i64.ne", "!="},
	I64LtS:                 {0, 0x53, i32, i64, i64, ___, 0, "i64.lt_s", "<"},
	I64LtU:                 {0, 0x54, i32, i64, i64, ___, 0, "i64.lt_u", "<"},
	I64GtS:                 {0, 0x55, i32, i64, i64, ___, 0, "i64.gt_s", ">"},
	I64GtU:                 {0, 0x56, i32, i64, i64, ___, 0, "i64.gt_u", ">"},
	I64LeS:                 {0, 0x57, i32, i64, i64, ___, 0, "i64.le_s", "<="},
	I64LeU:                 {0, 0x58, i32, i64, i64, ___, 0, "i64.le_u", "<="},
	I64GeS:                 {0, 0x59, i32, i64, i64, ___, 0, "i64.ge_s", ">="},
	I64GeU:                 {0, 0x5a, i32, i64, i64, ___, 0, "i64.ge_u", ">="},
	F32Eq:                  {0, 0x5b, i32, f32, f32, ___, 0, "f32.eq", "=="},
	F32Ne:                  {0, 0x5c, i32, f32, f32, ___, 0, "f32.ne", "!="},
	F32Lt:                  {0, 0x5d, i32, f32, f32, ___, 0, "f32.lt", "<"},
	F32Gt:                  {0, 0x5e, i32, f32, f32, ___, 0, "f32.gt", ">"},
	F32Le:                  {0, 0x5f, i32, f32, f32, ___, 0, "f32.le", "<="},
	F32Ge:                  {0, 0x60, i32, f32, f32, ___, 0, "f32.ge", ">="},
	F64Eq:                  {0, 0x61, i32, f64, f64, ___, 0, "f64.eq", "=="},
	F64Ne:                  {0, 0x62, i32, f64, f64, ___, 0, "f64.ne", "!="},
	F64Lt:                  {0, 0x63, i32, f64, f64, ___, 0, "f64.lt", "<"},
	F64Gt:                  {0, 0x64, i32, f64, f64, ___, 0, "f64.gt", ">"},
	F64Le:                  {0, 0x65, i32, f64, f64, ___, 0, "f64.le", "<="},
	F64Ge:                  {0, 0x66, i32, f64, f64, ___, 0, "f64.ge", ">="},
	I32Clz:                 {0, 0x67, i32, i32, ___, ___, 0, "i32.clz", "clz"},
	I32Ctz:                 {0, 0x68, i32, i32, ___, ___, 0, "i32.ctz", "ctz"},
	I32Popcnt:              {0, 0x69, i32, i32, ___, ___, 0, "i32.popcnt", "popcnt"},
	I32Add:                 {0, 0x6a, i32, i32, i32, ___, 0, "i32.add", "+"},
	I32Sub:                 {0, 0x6b, i32, i32, i32, ___, 0, "i32.sub", "-"},
	I32Mul:                 {0, 0x6c, i32, i32, i32, ___, 0, "i32.mul", "*"},
	I32DivS:                {0, 0x6d, i32, i32, i32, ___, 0, "i32.div_s", "/"},
	I32DivU:                {0, 0x6e, i32, i32, i32, ___, 0, "i32.div_u", "/"},
	I32RemS:                {0, 0x6f, i32, i32, i32, ___, 0, "i32.rem_s", "%"},
	I32RemU:                {0, 0x70, i32, i32, i32, ___, 0, "i32.rem_u", "%"},
	I32And:                 {0, 0x71, i32, i32, i32, ___, 0, "i32.and", "&"},
	I32Or:                  {0, 0x72, i32, i32, i32, ___, 0, "i32.or", "|"},
	I32Xor:                 {0, 0x73, i32, i32, i32, ___, 0, "i32.xor", "^"},
	I32Shl:                 {0, 0x74, i32, i32, i32, ___, 0, "i32.shl", "<<"},
	I32ShrS:                {0, 0x75, i32, i32, i32, ___, 0, "i32.shr_s", ">>"},
	I32ShrU:                {0, 0x76, i32, i32, i32, ___, 0, "i32.shr_u", ">>"},
	I32Rotl:                {0, 0x77, i32, i32, i32, ___, 0, "i32.rotl", "rotl"},
	I32Rotr:                {0, 0x78, i32, i32, i32, ___, 0, "i32.rotr", "rotr"},
	I64Clz:                 {0, 0x79, i64, i64, ___, ___, 0, "i64.clz", "clz"},
	I64Ctz:                 {0, 0x7a, i64, i64, ___, ___, 0, "i64.ctz", "ctz"},
	I64Popcnt:              {0, 0x7b, i64, i64, ___, ___, 0, "i64.popcnt", "popcnt"},
	I64Add:                 {0, 0x7c, i64, i64, i64, ___, 0, "i64.add", "+"},
	I64Sub:                 {0, 0x7d, i64, i64, i64, ___, 0, "i64.sub", "-"},
	I64Mul:                 {0, 0x7e, i64, i64, i64, ___, 0, "i64.mul", "*"},
	I64DivS:                {0, 0x7f, i64, i64, i64, ___, 0, "i64.div_s", "/"},
	I64DivU:                {0, 0x80, i64, i64, i64, ___, 0, "i64.div_u", "/"},
	I64RemS:                {0, 0x81, i64, i64, i64, ___, 0, "i64.rem_s", "%"},
	I64RemU:                {0, 0x82, i64, i64, i64, ___, 0, "i64.rem_u", "%"},
	I64And:                 {0, 0x83, i64, i64, i64, ___, 0, "i64.and", "&"},
	I64Or:                  {0, 0x84, i64, i64, i64, ___, 0, "i64.or", "|"},
	I64Xor:                 {0, 0x85, i64, i64, i64, ___, 0, "i64.xor", "^"},
	I64Shl:                 {0, 0x86, i64, i64, i64, ___, 0, "i64.shl", "<<"},
	I64ShrS:                {0, 0x87, i64, i64, i64, ___, 0, "i64.shr_s", ">>"},
	I64ShrU:                {0, 0x88, i64, i64, i64, ___, 0, "i64.shr_u", ">>"},
	I64Rotl:                {0, 0x89, i64, i64, i64, ___, 0, "i64.rotl", "rotl"},
	I64Rotr:                {0, 0x8a, i64, i64, i64, ___, 0, "i64.rotr", "rotr"},
	F32Abs:                 {0, 0x8b, f32, f32, ___, ___, 0, "f32.abs", "abs"},
	F32Neg:                 {0, 0x8c, f32, f32, ___, ___, 0, "f32.neg", "-"},
	F32Ceil:                {0, 0x8d, f32, f32, ___, ___, 0, "f32.ceil", "ceil"},
	F32Floor:               {0, 0x8e, f32, f32, ___, ___, 0, "f32.floor", "floor"},
	F32Trunc:               {0, 0x8f, f32, f32, ___, ___, 0, "f32.trunc", "trunc"},
	F32Nearest:             {0, 0x90, f32, f32, ___, ___, 0, "f32.nearest", "nearest"},
	F32Sqrt:                {0, 0x91, f32, f32, ___, ___, 0, "f32.sqrt", "sqrt"},
	F32Add:                 {0, 0x92, f32, f32, f32, ___, 0, "f32.add", "+"},
	F32Sub:                 {0, 0x93, f32, f32, f32, ___, 0, "f32.sub", "-"},
	F32Mul:                 {0, 0x94, f32, f32, f32, ___, 0, "f32.mul", "*"},
	F32Div:                 {0, 0x95, f32, f32, f32, ___, 0, "f32.div", "/"},
	F32Min:                 {0, 0x96, f32, f32, f32, ___, 0, "f32.min", "min"},
	F32Max:                 {0, 0x97, f32, f32, f32, ___, 0, "f32.max", "max"},
	F32Copysign:            {0, 0x98, f32, f32, f32, ___, 0, "f32.copysign", "copysign"},
	F64Abs:                 {0, 0x99, f64, f64, ___, ___, 0, "f64.abs", "abs"},
	F64Neg:                 {0, 0x9a, f64, f64, ___, ___, 0, "f64.neg", "-"},
	F64Ceil:                {0, 0x9b, f64, f64, ___, ___, 0, "f64.ceil", "ceil"},
	F64Floor:               {0, 0x9c, f64, f64, ___, ___, 0, "f64.floor", "floor"},
	F64Trunc:               {0, 0x9d, f64, f64, ___, ___, 0, "f64.trunc", "trunc"},
	F64Nearest:             {0, 0x9e, f64, f64, ___, ___, 0, "f64.nearest", "nearest"},
	F64Sqrt:                {0, 0x9f, f64, f64, ___, ___, 0, "f64.sqrt", "sqrt"},
	F64Add:                 {0, 0xa0, f64, f64, f64, ___, 0, "f64.add", "+"},
	F64Sub:                 {0, 0xa1, f64, f64, f64, ___, 0, "f64.sub", "-"},
	F64Mul:                 {0, 0xa2, f64, f64, f64, ___, 0, "f64.mul", "*"},
	F64Div:                 {0, 0xa3, f64, f64, f64, ___, 0, "f64.div", "/"},
	F64Min:                 {0, 0xa4, f64, f64, f64, ___, 0, "f64.min", "min"},
	F64Max:                 {0, 0xa5, f64, f64, f64, ___, 0, "f64.max", "max"},
	F64Copysign:            {0, 0xa6, f64, f64, f64, ___, 0, "f64.copysign", "copysign"},
	I32WrapI64:             {0, 0xa7, i32, i64, ___, ___, 0, "i32.wrap_i64", ""},
	I32TruncF32S:           {0, 0xa8, i32, f32, ___, ___, 0, "i32.trunc_f32_s", ""},
	I32TruncF32U:           {0, 0xa9, i32, f32, ___, ___, 0, "i32.trunc_f32_u", ""},
	I32TruncF64S:           {0, 0xaa, i32, f64, ___, ___, 0, "i32.trunc_f64_s", ""},
	I32TruncF64U:           {0, 0xab, i32, f64, ___, ___, 0, "i32.trunc_f64_u", ""},
	I64ExtendI32S:          {0, 0xac, i64, i32, ___, ___, 0, "i64.extend_i32_s", ""},
	I64ExtendI32U:          {0, 0xad, i64, i32, ___, ___, 0, "i64.extend_i32_u", ""},
	I64TruncF32S:           {0, 0xae, i64, f32, ___, ___, 0, "i64.trunc_f32_s", ""},
	I64TruncF32U:           {0, 0xaf, i64, f32, ___, ___, 0, "i64.trunc_f32_u", ""},
	I64TruncF64S:           {0, 0xb0, i64, f64, ___, ___, 0, "i64.trunc_f64_s", ""},
	I64TruncF64U:           {0, 0xb1, i64, f64, ___, ___, 0, "i64.trunc_f64_u", ""},
	F32ConvertI32S:         {0, 0xb2, f32, i32, ___, ___, 0, "f32.convert_i32_s", ""},
	F32ConvertI32U:         {0, 0xb3, f32, i32, ___, ___, 0, "f32.convert_i32_u", ""},
	F32ConvertI64S:         {0, 0xb4, f32, i64, ___, ___, 0, "f32.convert_i64_s", ""},
	F32ConvertI64U:         {0, 0xb5, f32, i64, ___, ___, 0, "f32.convert_i64_u", ""},
	F32DemoteF64:           {0, 0xb6, f32, f64, ___, ___, 0, "f32.demote_f64", ""},
	F64ConvertI32S:         {0, 0xb7, f64, i32, ___, ___, 0, "f64.convert_i32_s", ""},
	F64ConvertI32U:         {0, 0xb8, f64, i32, ___, ___, 0, "f64.convert_i32_u", ""},
	F64ConvertI64S:         {0, 0xb9, f64, i64, ___, ___, 0, "f64.convert_i64_s", ""},
	F64ConvertI64U:         {0, 0xba, f64, i64, ___, ___, 0, "f64.convert_i64_u", ""},
	F64PromoteF32:          {0, 0xbb, f64, f32, ___, ___, 0, "f64.promote_f32", ""},
	I32ReinterpretF32:      {0, 0xbc, i32, f32, ___, ___, 0, "i32.reinterpret_f32", ""},
	I64ReinterpretF64:      {0, 0xbd, i64, f64, ___, ___, 0, "i64.reinterpret_f64", ""},
	F32ReinterpretI32:      {0, 0xbe, f32, i32, ___, ___, 0, "f32.reinterpret_i32", ""},
	F64ReinterpretI64:      {0, 0xbf, f64, i64, ___, ___, 0, "f64.reinterpret_i64", ""},
	I32Extend8S:            {0, 0xc0, i32, i32, ___, ___, 0, "i32.extend8_s", ""},
	I32Extend16S:           {0, 0xc1, i32, i32, ___, ___, 0, "i32.extend16_s", ""},
	I64Extend8S:            {0, 0xc2, i64, i64, ___, ___, 0, "i64.extend8_s", ""},
	I64Extend16S:           {0, 0xc3, i64, i64, ___, ___, 0, "i64.extend16_s", ""},
	I64Extend32S:           {0, 0xc4, i64, i64, ___, ___, 0, "i64.extend32_s", ""},
	RefNull:                {0, 0xd0, aref, ___, ___, ___, 0, "ref.null", ""},
	RefIsNull:              {0, 0xd1, i32, aref, ___, ___, 0, "ref.is_null", ""},
	RefFunc:                {0, 0xd2, fref, ___, ___, ___, 0, "ref.func", ""},
	InterpAlloca:           {0, 0xe0, ___, ___, ___, ___, 0, "alloca", ""},
	InterpBrUnless:         {0, 0xe1, ___, i32, ___, ___, 0, "br_unless", ""},
	InterpCallHost:         {0, 0xe2, ___, ___, ___, ___, 0, "call_host", ""},
	InterpData:             {0, 0xe3, ___, ___, ___, ___, 0, "data", ""},
	InterpDropKeep:         {0, 0xe4, ___, ___, ___, ___, 0, "drop_keep", ""},
	I32TruncSatF32S:        {0xfc, 0x00, i32, f32, ___, ___, 0, "i32.trunc_sat_f32_s", ""},
	I32TruncSatF32U:        {0xfc, 0x01, i32, f32, ___, ___, 0, "i32.trunc_sat_f32_u", ""},
	I32TruncSatF64S:        {0xfc, 0x02, i32, f64, ___, ___, 0, "i32.trunc_sat_f64_s", ""},
	I32TruncSatF64U:        {0xfc, 0x03, i32, f64, ___, ___, 0, "i32.trunc_sat_f64_u", ""},
	I64TruncSatF32S:        {0xfc, 0x04, i64, f32, ___, ___, 0, "i64.trunc_sat_f32_s", ""},
	I64TruncSatF32U:        {0xfc, 0x05, i64, f32, ___, ___, 0, "i64.trunc_sat_f32_u", ""},
	I64TruncSatF64S:        {0xfc, 0x06, i64, f64, ___, ___, 0, "i64.trunc_sat_f64_s", ""},
	I64TruncSatF64U:        {0xfc, 0x07, i64, f64, ___, ___, 0, "i64.trunc_sat_f64_u", ""},
	MemoryInit:             {0xfc, 0x08, ___, i32, i32, i32, 0, "memory.init", ""},
	DataDrop:               {0xfc, 0x09, ___, ___, ___, ___, 0, "data.drop", ""},
	MemoryCopy:             {0xfc, 0x0a, ___, i32, i32, i32, 0, "memory.copy", ""},
	MemoryFill:             {0xfc, 0x0b, ___, i32, i32, i32, 0, "memory.fill", ""},
	TableInit:              {0xfc, 0x0c, ___, i32, i32, i32, 0, "table.init", ""},
	ElemDrop:               {0xfc, 0x0d, ___, ___, ___, ___, 0, "elem.drop", ""},
	TableCopy:              {0xfc, 0x0e, ___, i32, i32, i32, 0, "table.copy", ""},
	TableGrow:              {0xfc, 0x0f, i32, aref, i32, ___, 0, "table.grow", ""},
	TableSize:              {0xfc, 0x10, i32, ___, ___, ___, 0, "table.size", ""},
	V128Load:               {0xfd, 0x00, v__, i32, ___, ___, 16, "v128.load", ""},
	V128Load8X8S:           {0xfd, 0x01, v__, i32, ___, ___, 8, "v128.load8x8_s", ""},
	V128Load8X8U:           {0xfd, 0x02, v__, i32, ___, ___, 8, "v128.load8x8_u", ""},
	V128Load16X4S:          {0xfd, 0x03, v__, i32, ___, ___, 8, "v128.load16x4_s", ""},
	V128Load16X4U:          {0xfd, 0x04, v__, i32, ___, ___, 8, "v128.load16x4_u", ""},
	V128Load32X2S:          {0xfd, 0x05, v__, i32, ___, ___, 8, "v128.load32x2_s", ""},
	V128Load32X2U:          {0xfd, 0x06, v__, i32, ___, ___, 8, "v128.load32x2_u", ""},
	V128Load8Splat:         {0xfd, 0x07, v__, i32, ___, ___, 1, "v128.load8_splat", ""},
	V128Load16Splat:        {0xfd, 0x08, v__, i32, ___, ___, 2, "v128.load16_splat", ""},
	V128Load32Splat:        {0xfd, 0x09, v__, i32, ___, ___, 4, "v128.load32_splat", ""},
	V128Load64Splat:        {0xfd, 0x0a, v__, i32, ___, ___, 8, "v128.load64_splat", ""},
	V128Store:              {0xfd, 0x0b, ___, i32, v__, ___, 16, "v128.store", ""},
	V128Const:              {0xfd, 0x0c, v__, ___, ___, ___, 0, "v128.const", ""},
	I8X16Shuffle:           {0xfd, 0x0d, v__, v__, v__, ___, 0, "i8x16.shuffle", ""},
	I8X16Swizzle:           {0xfd, 0x0e, v__, v__, v__, ___, 0, "i8x16.swizzle", ""},
	I8X16Splat:             {0xfd, 0x0f, v__, i32, ___, ___, 0, "i8x16.splat", ""},
	I16X8Splat:             {0xfd, 0x10, v__, i32, ___, ___, 0, "i16x8.splat", ""},
	I32X4Splat:             {0xfd, 0x11, v__, i32, ___, ___, 0, "i32x4.splat", ""},
	I64X2Splat:             {0xfd, 0x12, v__, i64, ___, ___, 0, "i64x2.splat", ""},
	F32X4Splat:             {0xfd, 0x13, v__, f32, ___, ___, 0, "f32x4.splat", ""},
	F64X2Splat:             {0xfd, 0x14, v__, f64, ___, ___, 0, "f64x2.splat", ""},
	I8X16ExtractLaneS:      {0xfd, 0x15, i32, v__, ___, ___, 0, "i8x16.extract_lane_s", ""},
	I8X16ExtractLaneU:      {0xfd, 0x16, i32, v__, ___, ___, 0, "i8x16.extract_lane_u", ""},
	I8X16ReplaceLane:       {0xfd, 0x17, v__, v__, i32, ___, 0, "i8x16.replace_lane", ""},
	I16X8ExtractLaneS:      {0xfd, 0x18, i32, v__, ___, ___, 0, "i16x8.extract_lane_s", ""},
	I16X8ExtractLaneU:      {0xfd, 0x19, i32, v__, ___, ___, 0, "i16x8.extract_lane_u", ""},
	I16X8ReplaceLane:       {0xfd, 0x1a, v__, v__, i32, ___, 0, "i16x8.replace_lane", ""},
	I32X4ExtractLane:       {0xfd, 0x1b, i32, v__, ___, ___, 0, "i32x4.extract_lane", ""},
	I32X4ReplaceLane:       {0xfd, 0x1c, v__, v__, i32, ___, 0, "i32x4.replace_lane", ""},
	I64X2ExtractLane:       {0xfd, 0x1d, i64, v__, ___, ___, 0, "i64x2.extract_lane", ""},
	I64X2ReplaceLane:       {0xfd, 0x1e, v__, v__, i64, ___, 0, "i64x2.replace_lane", ""},
	F32X4ExtractLane:       {0xfd, 0x1f, f32, v__, ___, ___, 0, "f32x4.extract_lane", ""},
	F32X4ReplaceLane:       {0xfd, 0x20, v__, v__, f32, ___, 0, "f32x4.replace_lane", ""},
	F64X2ExtractLane:       {0xfd, 0x21, f64, v__, ___, ___, 0, "f64x2.extract_lane", ""},
	F64X2ReplaceLane:       {0xfd, 0x22, v__, v__, f64, ___, 0, "f64x2.replace_lane", ""},
	I8X16Eq:                {0xfd, 0x23, v__, v__, v__, ___, 0, "i8x16.eq", "=="},
	I8X16Ne:                {0xfd, 0x24, v__, v__, v__, ___, 0, "i8x16.ne", "!="},
	I8X16LtS:               {0xfd, 0x25, v__, v__, v__, ___, 0, "i8x16.lt_s", "<"},
	I8X16LtU:               {0xfd, 0x26, v__, v__, v__, ___, 0, "i8x16.lt_u", "<"},
	I8X16GtS:               {0xfd, 0x27, v__, v__, v__, ___, 0, "i8x16.gt_s", ">"},
	I8X16GtU:               {0xfd, 0x28, v__, v__, v__, ___, 0, "i8x16.gt_u", ">"},
	I8X16LeS:               {0xfd, 0x29, v__, v__, v__, ___, 0, "i8x16.le_s", "<="},
	I8X16LeU:               {0xfd, 0x2a, v__, v__, v__, ___, 0, "i8x16.le_u", "<="},
	I8X16GeS:               {0xfd, 0x2b, v__, v__, v__, ___, 0, "i8x16.ge_s", ">="},
	I8X16GeU:               {0xfd, 0x2c, v__, v__, v__, ___, 0, "i8x16.ge_u", ">="},
	I16X8Eq:                {0xfd, 0x2d, v__, v__, v__, ___, 0, "i16x8.eq", "=="},
	I16X8Ne:                {0xfd, 0x2e, v__, v__, v__, ___, 0, "i16x8.ne", "!="},
	I16X8LtS:               {0xfd, 0x2f, v__, v__, v__, ___, 0, "i16x8.lt_s", "<"},
	I16X8LtU:               {0xfd, 0x30, v__, v__, v__, ___, 0, "i16x8.lt_u", "<"},
	I16X8GtS:               {0xfd, 0x31, v__, v__, v__, ___, 0, "i16x8.gt_s", ">"},
	I16X8GtU:               {0xfd, 0x32, v__, v__, v__, ___, 0, "i16x8.gt_u", ">"},
	I16X8LeS:               {0xfd, 0x33, v__, v__, v__, ___, 0, "i16x8.le_s", "<="},
	I16X8LeU:               {0xfd, 0x34, v__, v__, v__, ___, 0, "i16x8.le_u", "<="},
	I16X8GeS:               {0xfd, 0x35, v__, v__, v__, ___, 0, "i16x8.ge_s", ">="},
	I16X8GeU:               {0xfd, 0x36, v__, v__, v__, ___, 0, "i16x8.ge_u", ">="},
	I32X4Eq:                {0xfd, 0x37, v__, v__, v__, ___, 0, "i32x4.eq", "=="},
	I32X4Ne:                {0xfd, 0x38, v__, v__, v__, ___, 0, "i32x4.ne", "!="},
	I32X4LtS:               {0xfd, 0x39, v__, v__, v__, ___, 0, "i32x4.lt_s", "<"},
	I32X4LtU:               {0xfd, 0x3a, v__, v__, v__, ___, 0, "i32x4.lt_u", "<"},
	I32X4GtS:               {0xfd, 0x3b, v__, v__, v__, ___, 0, "i32x4.gt_s", ">"},
	I32X4GtU:               {0xfd, 0x3c, v__, v__, v__, ___, 0, "i32x4.gt_u", ">"},
	I32X4LeS:               {0xfd, 0x3d, v__, v__, v__, ___, 0, "i32x4.le_s", "<="},
	I32X4LeU:               {0xfd, 0x3e, v__, v__, v__, ___, 0, "i32x4.le_u", "<="},
	I32X4GeS:               {0xfd, 0x3f, v__, v__, v__, ___, 0, "i32x4.ge_s", ">="},
	I32X4GeU:               {0xfd, 0x40, v__, v__, v__, ___, 0, "i32x4.ge_u", ">="},
	F32X4Eq:                {0xfd, 0x41, v__, v__, v__, ___, 0, "f32x4.eq", "=="},
	F32X4Ne:                {0xfd, 0x42, v__, v__, v__, ___, 0, "f32x4.ne", "!="},
	F32X4Lt:                {0xfd, 0x43, v__, v__, v__, ___, 0, "f32x4.lt", "<"},
	F32X4Gt:                {0xfd, 0x44, v__, v__, v__, ___, 0, "f32x4.gt", ">"},
	F32X4Le:                {0xfd, 0x45, v__, v__, v__, ___, 0, "f32x4.le", "<="},
	F32X4Ge:                {0xfd, 0x46, v__, v__, v__, ___, 0, "f32x4.ge", ">="},
	F64X2Eq:                {0xfd, 0x47, v__, v__, v__, ___, 0, "f64x2.eq", "=="},
	F64X2Ne:                {0xfd, 0x48, v__, v__, v__, ___, 0, "f64x2.ne", "!="},
	F64X2Lt:                {0xfd, 0x49, v__, v__, v__, ___, 0, "f64x2.lt", "<"},
	F64X2Gt:                {0xfd, 0x4a, v__, v__, v__, ___, 0, "f64x2.gt", ">"},
	F64X2Le:                {0xfd, 0x4b, v__, v__, v__, ___, 0, "f64x2.le", "<="},
	F64X2Ge:                {0xfd, 0x4c, v__, v__, v__, ___, 0, "f64x2.ge", ">="},
	V128Not:                {0xfd, 0x4d, v__, v__, ___, ___, 0, "v128.not", "~"},
	V128And:                {0xfd, 0x4e, v__, v__, v__, ___, 0, "v128.and", "&"},
	V128Andnot:             {0xfd, 0x4f, v__, v__, v__, ___, 0, "v128.andnot", ""},
	V128Or:                 {0xfd, 0x50, v__, v__, v__, ___, 0, "v128.or", "|"},
	V128Xor:                {0xfd, 0x51, v__, v__, v__, ___, 0, "v128.xor", "^"},
	V128BitSelect:          {0xfd, 0x52, v__, v__, v__, v__, 0, "v128.bitselect", ""},
	V128AnyTrue:            {0xfd, 0x53, i32, v__, ___, ___, 0, "v128.any_true", ""},
	I8X16Abs:               {0xfd, 0x60, v__, v__, ___, ___, 0, "i8x16.abs", "abs"},
	I8X16Neg:               {0xfd, 0x61, v__, v__, ___, ___, 0, "i8x16.neg", "-"},
	I8X16AllTrue:           {0xfd, 0x63, i32, v__, ___, ___, 0, "i8x16.all_true", ""},
	I8X16Bitmask:           {0xfd, 0x64, i32, v__, ___, ___, 0, "i8x16.bitmask", ""},
	I8X16NarrowI16X8S:      {0xfd, 0x65, v__, v__, v__, ___, 0, "i8x16.narrow_i16x8_s", ""},
	I8X16NarrowI16X8U:      {0xfd, 0x66, v__, v__, v__, ___, 0, "i8x16.narrow_i16x8_u", ""},
	I8X16Shl:               {0xfd, 0x6b, v__, v__, i32, ___, 0, "i8x16.shl", "<<"},
	I8X16ShrS:              {0xfd, 0x6c, v__, v__, i32, ___, 0, "i8x16.shr_s", ">>"},
	I8X16ShrU:              {0xfd, 0x6d, v__, v__, i32, ___, 0, "i8x16.shr_u", ">>"},
	I8X16Add:               {0xfd, 0x6e, v__, v__, v__, ___, 0, "i8x16.add", "+"},
	I8X16AddSatS:           {0xfd, 0x6f, v__, v__, v__, ___, 0, "i8x16.add_sat_s", ""},
	I8X16AddSatU:           {0xfd, 0x70, v__, v__, v__, ___, 0, "i8x16.add_sat_u", ""},
	I8X16Sub:               {0xfd, 0x71, v__, v__, v__, ___, 0, "i8x16.sub", "-"},
	I8X16SubSatS:           {0xfd, 0x72, v__, v__, v__, ___, 0, "i8x16.sub_sat_s", ""},
	I8X16SubSatU:           {0xfd, 0x73, v__, v__, v__, ___, 0, "i8x16.sub_sat_u", ""},
	I8X16MinS:              {0xfd, 0x76, v__, v__, v__, ___, 0, "i8x16.min_s", "min"},
	I8X16MinU:              {0xfd, 0x77, v__, v__, v__, ___, 0, "i8x16.min_u", "min"},
	I8X16MaxS:              {0xfd, 0x78, v__, v__, v__, ___, 0, "i8x16.max_s", "max"},
	I8X16MaxU:              {0xfd, 0x79, v__, v__, v__, ___, 0, "i8x16.max_u", "max"},
	I8X16AvgrU:             {0xfd, 0x7b, v__, v__, v__, ___, 0, "i8x16.avgr_u", ""},
	I16X8Abs:               {0xfd, 0x80, v__, v__, ___, ___, 0, "i16x8.abs", "abs"},
	I16X8Neg:               {0xfd, 0x81, v__, v__, ___, ___, 0, "i16x8.neg", "-"},
	I16X8AllTrue:           {0xfd, 0x83, i32, v__, ___, ___, 0, "i16x8.all_true", ""},
	I16X8Bitmask:           {0xfd, 0x84, i32, v__, ___, ___, 0, "i16x8.bitmask", ""},
	I16X8NarrowI32X4S:      {0xfd, 0x85, v__, v__, v__, ___, 0, "i16x8.narrow_i32x4_s", ""},
	I16X8NarrowI32X4U:      {0xfd, 0x86, v__, v__, v__, ___, 0, "i16x8.narrow_i32x4_u", ""},
	I16X8ExtendLowI8X16S:   {0xfd, 0x87, v__, v__, ___, ___, 0, "i16x8.extend_low_i8x16_s", ""},
	I16X8ExtendHighI8X16S:  {0xfd, 0x88, v__, v__, ___, ___, 0, "i16x8.extend_high_i8x16_s", ""},
	I16X8ExtendLowI8X16U:   {0xfd, 0x89, v__, v__, ___, ___, 0, "i16x8.extend_low_i8x16_u", ""},
	I16X8ExtendHighI8X16U:  {0xfd, 0x8a, v__, v__, ___, ___, 0, "i16x8.extend_high_i8x16_u", ""},
	I16X8Shl:               {0xfd, 0x8b, v__, v__, i32, ___, 0, "i16x8.shl", "<<"},
	I16X8ShrS:              {0xfd, 0x8c, v__, v__, i32, ___, 0, "i16x8.shr_s", ">>"},
	I16X8ShrU:              {0xfd, 0x8d, v__, v__, i32, ___, 0, "i16x8.shr_u", ">>"},
	I16X8Add:               {0xfd, 0x8e, v__, v__, v__, ___, 0, "i16x8.add", "+"},
	I16X8AddSatS:           {0xfd, 0x8f, v__, v__, v__, ___, 0, "i16x8.add_sat_s", ""},
	I16X8AddSatU:           {0xfd, 0x90, v__, v__, v__, ___, 0, "i16x8.add_sat_u", ""},
	I16X8Sub:               {0xfd, 0x91, v__, v__, v__, ___, 0, "i16x8.sub", "-"},
	I16X8SubSatS:           {0xfd, 0x92, v__, v__, v__, ___, 0, "i16x8.sub_sat_s", ""},
	I16X8SubSatU:           {0xfd, 0x93, v__, v__, v__, ___, 0, "i16x8.sub_sat_u", ""},
	I16X8Mul:               {0xfd, 0x95, v__, v__, v__, ___, 0, "i16x8.mul", "*"},
	I16X8MinS:              {0xfd, 0x96, v__, v__, v__, ___, 0, "i16x8.min_s", "min"},
	I16X8MinU:              {0xfd, 0x97, v__, v__, v__, ___, 0, "i16x8.min_u", "min"},
	I16X8MaxS:              {0xfd, 0x98, v__, v__, v__, ___, 0, "i16x8.max_s", "max"},
	I16X8MaxU:              {0xfd, 0x99, v__, v__, v__, ___, 0, "i16x8.max_u", "max"},
	I16X8AvgrU:             {0xfd, 0x9b, v__, v__, v__, ___, 0, "i16x8.avgr_u", ""},
	I32X4Abs:               {0xfd, 0xa0, v__, v__, ___, ___, 0, "i32x4.abs", "abs"},
	I32X4Neg:               {0xfd, 0xa1, v__, v__, ___, ___, 0, "i32x4.neg", "-"},
	I32X4AllTrue:           {0xfd, 0xa3, i32, v__, ___, ___, 0, "i32x4.all_true", ""},
	I32X4Bitmask:           {0xfd, 0xa4, i32, v__, ___, ___, 0, "i32x4.bitmask", ""},
	I32X4ExtendLowI16X8S:   {0xfd, 0xa7, v__, v__, ___, ___, 0, "i32x4.extend_low_i16x8_s", ""},
	I32X4ExtendHighI16X8S:  {0xfd, 0xa8, v__, v__, ___, ___, 0, "i32x4.extend_high_i16x8_s", ""},
	I32X4ExtendLowI16X8U:   {0xfd, 0xa9, v__, v__, ___, ___, 0, "i32x4.extend_low_i16x8_u", ""},
	I32X4ExtendHighI16X8U:  {0xfd, 0xaa, v__, v__, ___, ___, 0, "i32x4.extend_high_i16x8_u", ""},
	I32X4Shl:               {0xfd, 0xab, v__, v__, i32, ___, 0, "i32x4.shl", "<<"},
	I32X4ShrS:              {0xfd, 0xac, v__, v__, i32, ___, 0, "i32x4.shr_s", ">>"},
	I32X4ShrU:              {0xfd, 0xad, v__, v__, i32, ___, 0, "i32x4.shr_u", ">>"},
	I32X4Add:               {0xfd, 0xae, v__, v__, v__, ___, 0, "i32x4.add", "+"},
	I32X4Sub:               {0xfd, 0xb1, v__, v__, v__, ___, 0, "i32x4.sub", "-"},
	I32X4Mul:               {0xfd, 0xb5, v__, v__, v__, ___, 0, "i32x4.mul", "*"},
	I32X4MinS:              {0xfd, 0xb6, v__, v__, v__, ___, 0, "i32x4.min_s", "min"},
	I32X4MinU:              {0xfd, 0xb7, v__, v__, v__, ___, 0, "i32x4.min_u", "min"},
	I32X4MaxS:              {0xfd, 0xb8, v__, v__, v__, ___, 0, "i32x4.max_s", "max"},
	I32X4MaxU:              {0xfd, 0xb9, v__, v__, v__, ___, 0, "i32x4.max_u", "max"},
	I32X4DotI16X8S:         {0xfd, 0xba, v__, v__, v__, ___, 0, "i32x4.dot_i16x8_s", ""},
	I64X2Abs:               {0xfd, 0xc0, v__, v__, ___, ___, 0, "i64x2.abs", "abs"},
	I64X2Neg:               {0xfd, 0xc1, v__, v__, ___, ___, 0, "i64x2.neg", "-"},
	I64X2AllTrue:           {0xfd, 0xc3, i32, v__, ___, ___, 0, "i64x2.all_true", ""},
	I64X2Bitmask:           {0xfd, 0xc4, i32, v__, ___, ___, 0, "i64x2.bitmask", ""},
	I64X2ExtendLowI32X4S:   {0xfd, 0xc7, v__, v__, ___, ___, 0, "i64x2.extend_low_i32x4_s", ""},
	I64X2ExtendHighI32X4S:  {0xfd, 0xc8, v__, v__, ___, ___, 0, "i64x2.extend_high_i32x4_s", ""},
	I64X2ExtendLowI32X4U:   {0xfd, 0xc9, v__, v__, ___, ___, 0, "i64x2.extend_low_i32x4_u", ""},
	I64X2ExtendHighI32X4U:  {0xfd, 0xca, v__, v__, ___, ___, 0, "i64x2.extend_high_i32x4_u", ""},
	I64X2Shl:               {0xfd, 0xcb, v__, v__, i32, ___, 0, "i64x2.shl", "<<"},
	I64X2ShrS:              {0xfd, 0xcc, v__, v__, i32, ___, 0, "i64x2.shr_s", ">>"},
	I64X2ShrU:              {0xfd, 0xcd, v__, v__, i32, ___, 0, "i64x2.shr_u", ">>"},
	I64X2Add:               {0xfd, 0xce, v__, v__, v__, ___, 0, "i64x2.add", "+"},
	I64X2Sub:               {0xfd, 0xd1, v__, v__, v__, ___, 0, "i64x2.sub", "-"},
	I64X2Mul:               {0xfd, 0xd5, v__, v__, v__, ___, 0, "i64x2.mul", "*"},
	I64X2Eq:                {0xfd, 0xd6, v__, v__, v__, ___, 0, "i64x2.eq", "=="},
	I64X2Ne:                {0xfd, 0xd7, v__, v__, v__, ___, 0, "i64x2.ne", "!="},
	I64X2LtS:               {0xfd, 0xd8, v__, v__, v__, ___, 0, "i64x2.lt_s", "<"},
	I64X2GtS:               {0xfd, 0xd9, v__, v__, v__, ___, 0, "i64x2.gt_s", ">"},
	I64X2LeS:               {0xfd, 0xda, v__, v__, v__, ___, 0, "i64x2.le_s", "<="},
	I64X2GeS:               {0xfd, 0xdb, v__, v__, v__, ___, 0, "i64x2.ge_s", ">="},
	F32X4Abs:               {0xfd, 0xe0, v__, v__, ___, ___, 0, "f32x4.abs", "abs"},
	F32X4Neg:               {0xfd, 0xe1, v__, v__, ___, ___, 0, "f32x4.neg", "-"},
	F32X4Sqrt:              {0xfd, 0xe3, v__, v__, ___, ___, 0, "f32x4.sqrt", "sqrt"},
	F32X4Add:               {0xfd, 0xe4, v__, v__, v__, ___, 0, "f32x4.add", "+"},
	F32X4Sub:               {0xfd, 0xe5, v__, v__, v__, ___, 0, "f32x4.sub", "-"},
	F32X4Mul:               {0xfd, 0xe6, v__, v__, v__, ___, 0, "f32x4.mul", "*"},
	F32X4Div:               {0xfd, 0xe7, v__, v__, v__, ___, 0, "f32x4.div", "/"},
	F32X4Min:               {0xfd, 0xe8, v__, v__, v__, ___, 0, "f32x4.min", "min"},
	F32X4Max:               {0xfd, 0xe9, v__, v__, v__, ___, 0, "f32x4.max", "max"},
	F64X2Abs:               {0xfd, 0xec, v__, v__, ___, ___, 0, "f64x2.abs", "abs"},
	F64X2Neg:               {0xfd, 0xed, v__, v__, ___, ___, 0, "f64x2.neg", "-"},
	F64X2Sqrt:              {0xfd, 0xef, v__, v__, ___, ___, 0, "f64x2.sqrt", "sqrt"},
	F64X2Add:               {0xfd, 0xf0, v__, v__, v__, ___, 0, "f64x2.add", "+"},
	F64X2Sub:               {0xfd, 0xf1, v__, v__, v__, ___, 0, "f64x2.sub", "-"},
	F64X2Mul:               {0xfd, 0xf2, v__, v__, v__, ___, 0, "f64x2.mul", "*"},
	F64X2Div:               {0xfd, 0xf3, v__, v__, v__, ___, 0, "f64x2.div", "/"},
	F64X2Min:               {0xfd, 0xf4, v__, v__, v__, ___, 0, "f64x2.min", "min"},
	F64X2Max:               {0xfd, 0xf5, v__, v__, v__, ___, 0, "f64x2.max", "max"},
	I32X4TruncSatF32X4S:    {0xfd, 0xf8, v__, v__, ___, ___, 0, "i32x4.trunc_sat_f32x4_s", ""},
	I32X4TruncSatF32X4U:    {0xfd, 0xf9, v__, v__, ___, ___, 0, "i32x4.trunc_sat_f32x4_u", ""},
	F32X4ConvertI32X4S:     {0xfd, 0xfa, v__, v__, ___, ___, 0, "f32x4.convert_i32x4_s", ""},
	F32X4ConvertI32X4U:     {0xfd, 0xfb, v__, v__, ___, ___, 0, "f32x4.convert_i32x4_u", ""},
	AtomicNotify:           {0xfe, 0x00, i32, i32, i32, ___, 4, "atomic.notify", ""},
	I32AtomicWait:          {0xfe, 0x01, i32, i32, i32, i64, 4, "i32.atomic.wait", ""},
	I64AtomicWait:          {0xfe, 0x02, i32, i32, i64, i64, 8, "i64.atomic.wait", ""},
	I32AtomicLoad:          {0xfe, 0x10, i32, i32, ___, ___, 4, "i32.atomic.load", ""},
	I64AtomicLoad:          {0xfe, 0x11, i64, i32, ___, ___, 8, "i64.atomic.load", ""},
	I32AtomicLoad8U:        {0xfe, 0x12, i32, i32, ___, ___, 1, "i32.atomic.load8_u", ""},
	I32AtomicLoad16U:       {0xfe, 0x13, i32, i32, ___, ___, 2, "i32.atomic.load16_u", ""},
	I64AtomicLoad8U:        {0xfe, 0x14, i64, i32, ___, ___, 1, "i64.atomic.load8_u", ""},
	I64AtomicLoad16U:       {0xfe, 0x15, i64, i32, ___, ___, 2, "i64.atomic.load16_u", ""},
	I64AtomicLoad32U:       {0xfe, 0x16, i64, i32, ___, ___, 4, "i64.atomic.load32_u", ""},
	I32AtomicStore:         {0xfe, 0x17, ___, i32, i32, ___, 4, "i32.atomic.store", ""},
	I64AtomicStore:         {0xfe, 0x18, ___, i32, i64, ___, 8, "i64.atomic.store", ""},
	I32AtomicStore8:        {0xfe, 0x19, ___, i32, i32, ___, 1, "i32.atomic.store8", ""},
	I32AtomicStore16:       {0xfe, 0x1a, ___, i32, i32, ___, 2, "i32.atomic.store16", ""},
	I64AtomicStore8:        {0xfe, 0x1b, ___, i32, i64, ___, 1, "i64.atomic.store8", ""},
	I64AtomicStore16:       {0xfe, 0x1c, ___, i32, i64, ___, 2, "i64.atomic.store16", ""},
	I64AtomicStore32:       {0xfe, 0x1d, ___, i32, i64, ___, 4, "i64.atomic.store32", ""},
	I32AtomicRmwAdd:        {0xfe, 0x1e, i32, i32, i32, ___, 4, "i32.atomic.rmw.add", ""},
	I64AtomicRmwAdd:        {0xfe, 0x1f, i64, i32, i64, ___, 8, "i64.atomic.rmw.add", ""},
	I32AtomicRmw8AddU:      {0xfe, 0x20, i32, i32, i32, ___, 1, "i32.atomic.rmw8.add_u", ""},
	I32AtomicRmw16AddU:     {0xfe, 0x21, i32, i32, i32, ___, 2, "i32.atomic.rmw16.add_u", ""},
	I64AtomicRmw8AddU:      {0xfe, 0x22, i64, i32, i64, ___, 1, "i64.atomic.rmw8.add_u", ""},
	I64AtomicRmw16AddU:     {0xfe, 0x23, i64, i32, i64, ___, 2, "i64.atomic.rmw16.add_u", ""},
	I64AtomicRmw32AddU:     {0xfe, 0x24, i64, i32, i64, ___, 4, "i64.atomic.rmw32.add_u", ""},
	I32AtomicRmwSub:        {0xfe, 0x25, i32, i32, i32, ___, 4, "i32.atomic.rmw.sub", ""},
	I64AtomicRmwSub:        {0xfe, 0x26, i64, i32, i64, ___, 8, "i64.atomic.rmw.sub", ""},
	I32AtomicRmw8SubU:      {0xfe, 0x27, i32, i32, i32, ___, 1, "i32.atomic.rmw8.sub_u", ""},
	I32AtomicRmw16SubU:     {0xfe, 0x28, i32, i32, i32, ___, 2, "i32.atomic.rmw16.sub_u", ""},
	I64AtomicRmw8SubU:      {0xfe, 0x29, i64, i32, i64, ___, 1, "i64.atomic.rmw8.sub_u", ""},
	I64AtomicRmw16SubU:     {0xfe, 0x2a, i64, i32, i64, ___, 2, "i64.atomic.rmw16.sub_u", ""},
	I64AtomicRmw32SubU:     {0xfe, 0x2b, i64, i32, i64, ___, 4, "i64.atomic.rmw32.sub_u", ""},
	I32AtomicRmwAnd:        {0xfe, 0x2c, i32, i32, i32, ___, 4, "i32.atomic.rmw.and", ""},
	I64AtomicRmwAnd:        {0xfe, 0x2d, i64, i32, i64, ___, 8, "i64.atomic.rmw.and", ""},
	I32AtomicRmw8AndU:      {0xfe, 0x2e, i32, i32, i32, ___, 1, "i32.atomic.rmw8.and_u", ""},
	I32AtomicRmw16AndU:     {0xfe, 0x2f, i32, i32, i32, ___, 2, "i32.atomic.rmw16.and_u", ""},
	I64AtomicRmw8AndU:      {0xfe, 0x30, i64, i32, i64, ___, 1, "i64.atomic.rmw8.and_u", ""},
	I64AtomicRmw16AndU:     {0xfe, 0x31, i64, i32, i64, ___, 2, "i64.atomic.rmw16.and_u", ""},
	I64AtomicRmw32AndU:     {0xfe, 0x32, i64, i32, i64, ___, 4, "i64.atomic.rmw32.and_u", ""},
	I32AtomicRmwOr:         {0xfe, 0x33, i32, i32, i32, ___, 4, "i32.atomic.rmw.or", ""},
	I64AtomicRmwOr:         {0xfe, 0x34, i64, i32, i64, ___, 8, "i64.atomic.rmw.or", ""},
	I32AtomicRmw8OrU:       {0xfe, 0x35, i32, i32, i32, ___, 1, "i32.atomic.rmw8.or_u", ""},
	I32AtomicRmw16OrU:      {0xfe, 0x36, i32, i32, i32, ___, 2, "i32.atomic.rmw16.or_u", ""},
	I64AtomicRmw8OrU:       {0xfe, 0x37, i64, i32, i64, ___, 1, "i64.atomic.rmw8.or_u", ""},
	I64AtomicRmw16OrU:      {0xfe, 0x38, i64, i32, i64, ___, 2, "i64.atomic.rmw16.or_u", ""},
	I64AtomicRmw32OrU:      {0xfe, 0x39, i64, i32, i64, ___, 4, "i64.atomic.rmw32.or_u", ""},
	I32AtomicRmwXor:        {0xfe, 0x3a, i32, i32, i32, ___, 4, "i32.atomic.rmw.xor", ""},
	I64AtomicRmwXor:        {0xfe, 0x3b, i64, i32, i64, ___, 8, "i64.atomic.rmw.xor", ""},
	I32AtomicRmw8XorU:      {0xfe, 0x3c, i32, i32, i32, ___, 1, "i32.atomic.rmw8.xor_u", ""},
	I32AtomicRmw16XorU:     {0xfe, 0x3d, i32, i32, i32, ___, 2, "i32.atomic.rmw16.xor_u", ""},
	I64AtomicRmw8XorU:      {0xfe, 0x3e, i64, i32, i64, ___, 1, "i64.atomic.rmw8.xor_u", ""},
	I64AtomicRmw16XorU:     {0xfe, 0x3f, i64, i32, i64, ___, 2, "i64.atomic.rmw16.xor_u", ""},
	I64AtomicRmw32XorU:     {0xfe, 0x40, i64, i32, i64, ___, 4, "i64.atomic.rmw32.xor_u", ""},
	I32AtomicRmwXchg:       {0xfe, 0x41, i32, i32, i32, ___, 4, "i32.atomic.rmw.xchg", ""},
	I64AtomicRmwXchg:       {0xfe, 0x42, i64, i32, i64, ___, 8, "i64.atomic.rmw.xchg", ""},
	I32AtomicRmw8XchgU:     {0xfe, 0x43, i32, i32, i32, ___, 1, "i32.atomic.rmw8.xchg_u", ""},
	I32AtomicRmw16XchgU:    {0xfe, 0x44, i32, i32, i32, ___, 2, "i32.atomic.rmw16.xchg_u", ""},
	I64AtomicRmw8XchgU:     {0xfe, 0x45, i64, i32, i64, ___, 1, "i64.atomic.rmw8.xchg_u", ""},
	I64AtomicRmw16XchgU:    {0xfe, 0x46, i64, i32, i64, ___, 2, "i64.atomic.rmw16.xchg_u", ""},
	I64AtomicRmw32XchgU:    {0xfe, 0x47, i64, i32, i64, ___, 4, "i64.atomic.rmw32.xchg_u", ""},
	I32AtomicRmwCmpxchg:    {0xfe, 0x48, i32, i32, i32, i32, 4, "i32.atomic.rmw.cmpxchg", ""},
	I64AtomicRmwCmpxchg:    {0xfe, 0x49, i64, i32, i64, i64, 8, "i64.atomic.rmw.cmpxchg", ""},
	I32AtomicRmw8CmpxchgU:  {0xfe, 0x4a, i32, i32, i32, i32, 1, "i32.atomic.rmw8.cmpxchg_u", ""},
	I32AtomicRmw16CmpxchgU: {0xfe, 0x4b, i32, i32, i32, i32, 2, "i32.atomic.rmw16.cmpxchg_u", ""},
	I64AtomicRmw8CmpxchgU:  {0xfe, 0x4c, i64, i32, i64, i64, 1, "i64.atomic.rmw8.cmpxchg_u", ""},
	I64AtomicRmw16CmpxchgU: {0xfe, 0x4d, i64, i32, i64, i64, 2, "i64.atomic.rmw16.cmpxchg_u", ""},
	I64AtomicRmw32CmpxchgU: {0xfe, 0x4e, i64, i32, i64, i64, 4, "i64.atomic.rmw32.cmpxchg_u", ""},
}
