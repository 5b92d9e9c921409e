package ir

import (
	"encoding/binary"

	"wasmir/internal/source"
	"wasmir/internal/types"
)

// V128 is a 128-bit immediate, stored as 16 little-endian bytes and
// also viewable as four u32 lanes.
type V128 struct {
	Bytes [16]byte
}

// V128FromU32x4 assembles a vector from four u32 lanes, lane 0 first.
func V128FromU32x4(lanes [4]uint32) V128 {
	var v V128
	for i, lane := range lanes {
		binary.LittleEndian.PutUint32(v.Bytes[i*4:], lane)
	}
	return v
}

// U32x4 views the vector as four u32 lanes, lane 0 first.
func (v V128) U32x4() [4]uint32 {
	var lanes [4]uint32
	for i := range lanes {
		lanes[i] = binary.LittleEndian.Uint32(v.Bytes[i*4:])
	}
	return lanes
}

// Const is a typed constant. Numeric payloads are stored bitwise, never
// as native floats, so NaN payloads survive round-trips.
type Const struct {
	Loc  source.Loc
	Type types.Type

	bits uint64
	vec  V128
}

// I32Const makes an i32 constant from its raw bit pattern.
func I32Const(bits uint32, loc source.Loc) Const {
	return Const{Loc: loc, Type: types.I32, bits: uint64(bits)}
}

// I64Const makes an i64 constant from its raw bit pattern.
func I64Const(bits uint64, loc source.Loc) Const {
	return Const{Loc: loc, Type: types.I64, bits: bits}
}

// F32Const makes an f32 constant from its raw bit pattern, including
// NaN payload bits.
func F32Const(bits uint32, loc source.Loc) Const {
	return Const{Loc: loc, Type: types.F32, bits: uint64(bits)}
}

// F64Const makes an f64 constant from its raw bit pattern.
func F64Const(bits uint64, loc source.Loc) Const {
	return Const{Loc: loc, Type: types.F64, bits: bits}
}

// V128Const makes a v128 constant.
func V128Const(v V128, loc source.Loc) Const {
	return Const{Loc: loc, Type: types.V128, vec: v}
}

// RefConst makes a typed reference constant; bits carries a host
// reference value, with 0 meaning null.
func RefConst(t types.Type, bits uint64, loc source.Loc) Const {
	return Const{Loc: loc, Type: t, bits: bits}
}

func (c Const) U32() uint32     { return uint32(c.bits) }
func (c Const) U64() uint64     { return c.bits }
func (c Const) F32Bits() uint32 { return uint32(c.bits) }
func (c Const) F64Bits() uint64 { return c.bits }
func (c Const) RefBits() uint64 { return c.bits }
func (c Const) Vec() V128       { return c.vec }

func (c Const) IsNullRef() bool { return c.Type.IsRef() && c.bits == 0 }

// Equal compares type and bitwise payload. Two NaNs with identical bit
// patterns compare equal; canonical/arithmetic NaN classes are handled
// by assertion commands, not here.
func (c Const) Equal(other Const) bool {
	if c.Type != other.Type {
		return false
	}
	if c.Type == types.V128 {
		return c.vec == other.vec
	}
	return c.bits == other.bits
}
