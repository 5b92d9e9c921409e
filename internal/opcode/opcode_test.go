package opcode

import (
	"bytes"
	"testing"

	"wasmir/internal/types"
)

func TestTableWellFormed(t *testing.T) {
	for _, c := range Checks() {
		t.Run(c.Name, func(t *testing.T) {
			if err := c.Run(); err != nil {
				t.Fatalf("catalogue check failed:\n%v", err)
			}
		})
	}
}

func TestFromName(t *testing.T) {
	tests := []struct {
		text   string
		want   Opcode
		prefix byte
		code   uint32
		result types.Type
		params types.Vector
	}{
		{"i32.add", I32Add, 0, 0x6a, types.I32, types.Vector{types.I32, types.I32}},
		{"unreachable", Unreachable, 0, 0x00, types.Void, nil},
		{"i64.extend32_s", I64Extend32S, 0, 0xc4, types.I64, types.Vector{types.I64}},
		{"memory.init", MemoryInit, 0xfc, 0x08, types.Void, types.Vector{types.I32, types.I32, types.I32}},
		{"i64.atomic.rmw32.cmpxchg_u", I64AtomicRmw32CmpxchgU, 0xfe, 0x4e, types.I64, types.Vector{types.I32, types.I64, types.I64}},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			op := FromName(tt.text)
			if op != tt.want {
				t.Fatalf("FromName(%q) = %v, want %v", tt.text, op, tt.want)
			}
			if op.Prefix() != tt.prefix || op.Code() != tt.code {
				t.Errorf("encoding = (0x%02x, 0x%02x), want (0x%02x, 0x%02x)",
					op.Prefix(), op.Code(), tt.prefix, tt.code)
			}
			if op.Result() != tt.result {
				t.Errorf("result = %v, want %v", op.Result(), tt.result)
			}
			if !op.Params().Equal(tt.params) {
				t.Errorf("params = %v, want %v", op.Params(), tt.params)
			}
		})
	}

	if got := FromName("i32.bogus"); got != Invalid {
		t.Errorf("FromName on unknown mnemonic = %v, want Invalid", got)
	}
	if got := FromName("I32.ADD"); got != Invalid {
		t.Errorf("FromName is case-sensitive; got %v", got)
	}
}

func TestFromCodePrefixed(t *testing.T) {
	op := FromCode(0xfd, 0x00)
	if op != V128Load {
		t.Fatalf("FromCode(0xfd, 0x00) = %v, want V128Load", op)
	}
	if op.Result() != types.V128 {
		t.Errorf("result = %v, want v128", op.Result())
	}
	if !op.Params().Equal(types.Vector{types.I32}) {
		t.Errorf("params = %v, want [i32]", op.Params())
	}
	if op.MemorySize() != 16 {
		t.Errorf("memory size = %d, want 16", op.MemorySize())
	}

	if got := FromCode(0xfd, 0x5c); got != Invalid {
		t.Errorf("FromCode on a hole in the simd plane = %v, want Invalid", got)
	}
	if got := FromCode(0xfb, 0x00); got != Invalid {
		t.Errorf("FromCode with unknown prefix = %v, want Invalid", got)
	}
}

func TestBinaryEncoding(t *testing.T) {
	tests := []struct {
		op   Opcode
		want []byte
	}{
		{I32Add, []byte{0x6a}},
		{MemoryCopy, []byte{0xfc, 0x0a}},
		{V128Load, []byte{0xfd, 0x00}},
		{F64X2Max, []byte{0xfd, 0xf5, 0x01}},
		{I64AtomicRmw32CmpxchgU, []byte{0xfe, 0x4e}},
	}
	for _, tt := range tests {
		if got := tt.op.BinaryEncoding(); !bytes.Equal(got, tt.want) {
			t.Errorf("%s: encoding = %x, want %x", tt.op.Text(), got, tt.want)
		}
	}
}

func TestNaturalAlignment(t *testing.T) {
	tests := []struct {
		op   Opcode
		want uint32
	}{
		{I32Load8U, 0},
		{I32Load16S, 1},
		{I32Load, 2},
		{I64Load, 3},
		{V128Load, 4},
	}
	for _, tt := range tests {
		got, err := tt.op.NaturalAlignLog2()
		if err != nil {
			t.Fatalf("%s: %v", tt.op.Text(), err)
		}
		if got != tt.want {
			t.Errorf("%s: align log2 = %d, want %d", tt.op.Text(), got, tt.want)
		}
	}
	if _, err := I32Add.NaturalAlignLog2(); err == nil {
		t.Error("NaturalAlignLog2 on a non-memory op should fail")
	}
}

func TestFeatures(t *testing.T) {
	tests := []struct {
		op   Opcode
		want FeatureSet
	}{
		{I32Add, FeatureMVP},
		{I32Extend8S, FeatureSignExt},
		{I64Extend32S, FeatureSignExt},
		{I32TruncSatF32S, FeatureSatFloatToInt},
		{MemoryCopy, FeatureBulkMemory},
		{TableInit, FeatureBulkMemory},
		{TableGrow, FeatureReferenceTypes},
		{TableGet, FeatureReferenceTypes},
		{RefNull, FeatureReferenceTypes},
		{V128Load, FeatureSimd},
		{I8X16Shuffle, FeatureSimd},
		{AtomicNotify, FeatureThreads},
		{BrOnExn, FeatureExceptions},
		{ReturnCall, FeatureTailCall},
	}
	for _, tt := range tests {
		if got := tt.op.Features(); got != tt.want {
			t.Errorf("%s: features = %v, want %v", tt.op.Text(), got, tt.want)
		}
	}

	enabled := FeatureSimd | FeatureBulkMemory
	if !V128Load.IsEnabled(enabled) {
		t.Error("v128.load should be enabled under simd")
	}
	if AtomicNotify.IsEnabled(enabled) {
		t.Error("atomic.notify should not be enabled without threads")
	}
	if !I32Add.IsEnabled(FeatureMVP) {
		t.Error("mvp ops are always enabled")
	}
}

func TestInterpOpcodes(t *testing.T) {
	for _, op := range []Opcode{InterpAlloca, InterpBrUnless, InterpCallHost, InterpData, InterpDropKeep} {
		if !op.IsInterp() {
			t.Errorf("%s should be interpreter-private", op.Text())
		}
	}
	if I32Add.IsInterp() {
		t.Error("i32.add is not interpreter-private")
	}
	if got := FromName("br_unless"); got != InterpBrUnless {
		t.Errorf("FromName(br_unless) = %v", got)
	}
}

func TestDecomp(t *testing.T) {
	if got := I32Add.Decomp(); got != "+" {
		t.Errorf("i32.add decomp = %q, want +", got)
	}
	if got := I32LeS.Decomp(); got != "<=" {
		t.Errorf("i32.le_s decomp = %q, want <=", got)
	}
	// No short form falls back to the mnemonic.
	if got := Nop.Decomp(); got != "nop" {
		t.Errorf("nop decomp = %q", got)
	}
}
