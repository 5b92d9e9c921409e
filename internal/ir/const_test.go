package ir

import (
	"testing"

	"wasmir/internal/source"
	"wasmir/internal/types"
)

func TestConstBitPreservation(t *testing.T) {
	f32Patterns := []uint32{
		0, 1, 0x3f800000, 0x7f800000, 0xff800000,
		0x7fc00001, 0x7f800001, 0xffc00000,
	}
	for _, p := range f32Patterns {
		c := F32Const(p, source.Loc{})
		if c.F32Bits() != p {
			t.Errorf("F32(%#x).F32Bits() = %#x", p, c.F32Bits())
		}
		if c.Type != types.F32 {
			t.Errorf("F32 const has type %v", c.Type)
		}
	}

	f64Patterns := []uint64{
		0, 0x3ff0000000000000, 0x7ff0000000000000,
		0x7ff8000000000001, 0x7ff0000000000001, 0xfff8000000000000,
	}
	for _, p := range f64Patterns {
		c := F64Const(p, source.Loc{})
		if c.F64Bits() != p {
			t.Errorf("F64(%#x).F64Bits() = %#x", p, c.F64Bits())
		}
	}
}

func TestConstEqual(t *testing.T) {
	nan := F32Const(0x7fc00001, source.Loc{})
	sameNan := F32Const(0x7fc00001, source.Loc{})
	otherNan := F32Const(0x7f800001, source.Loc{})
	if !nan.Equal(sameNan) {
		t.Error("NaNs with identical bit patterns should compare equal")
	}
	if nan.Equal(otherNan) {
		t.Error("NaNs with different payloads should not compare equal")
	}
	if I32Const(1, source.Loc{}).Equal(I64Const(1, source.Loc{})) {
		t.Error("constants of different types should not compare equal")
	}
}

func TestV128Lanes(t *testing.T) {
	lanes := [4]uint32{0x01020304, 0x05060708, 0x090a0b0c, 0x0d0e0f10}
	v := V128FromU32x4(lanes)
	if got := v.U32x4(); got != lanes {
		t.Fatalf("U32x4 round-trip = %x, want %x", got, lanes)
	}
	// Lane 0 occupies the low bytes, little-endian.
	if v.Bytes[0] != 0x04 || v.Bytes[3] != 0x01 {
		t.Errorf("lane 0 layout = % x", v.Bytes[:4])
	}
	c := V128Const(v, source.Loc{})
	if c.Vec() != v {
		t.Error("V128 payload not preserved")
	}
	if !c.Equal(V128Const(v, source.Loc{})) {
		t.Error("equal v128 constants should compare equal")
	}
}

func TestRefConst(t *testing.T) {
	null := RefConst(types.Anyref, 0, source.Loc{})
	if !null.IsNullRef() {
		t.Error("zero ref bits should be a null reference")
	}
	held := RefConst(types.Funcref, 0xdead, source.Loc{})
	if held.IsNullRef() {
		t.Error("non-zero ref bits should not be null")
	}
	if held.RefBits() != 0xdead {
		t.Errorf("ref bits = %#x", held.RefBits())
	}
}
