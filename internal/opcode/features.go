package opcode

import "strings"

// FeatureSet is a bit set of WebAssembly proposals an opcode belongs to
// or a consumer has enabled.
type FeatureSet uint16

const (
	// FeatureSignExt covers the sign-extension opcodes 0xC0..0xC4.
	FeatureSignExt FeatureSet = 1 << iota
	// FeatureSatFloatToInt covers the non-trapping float conversions.
	FeatureSatFloatToInt
	// FeatureBulkMemory covers memory.*/table.*/data.*/elem.* bulk ops.
	FeatureBulkMemory
	// FeatureReferenceTypes covers anyref/funcref instructions.
	FeatureReferenceTypes
	// FeatureSimd covers the 0xFD vector plane.
	FeatureSimd
	// FeatureThreads covers the 0xFE atomic plane.
	FeatureThreads
	// FeatureExceptions covers try/catch/throw/rethrow/br_on_exn.
	FeatureExceptions
	// FeatureTailCall covers return_call and return_call_indirect.
	FeatureTailCall
)

// FeatureMVP is the empty set: the instruction needs no proposal.
const FeatureMVP FeatureSet = 0

var featureNames = map[FeatureSet]string{
	FeatureSignExt:        "sign-extension",
	FeatureSatFloatToInt:  "nontrapping-float-to-int",
	FeatureBulkMemory:     "bulk-memory",
	FeatureReferenceTypes: "reference-types",
	FeatureSimd:           "simd",
	FeatureThreads:        "threads",
	FeatureExceptions:     "exceptions",
	FeatureTailCall:       "tail-call",
}

// FeatureByName maps a proposal name (as used in wasmir.toml) to its
// flag. Returns 0 for unknown names.
func FeatureByName(name string) FeatureSet {
	for f, n := range featureNames {
		if n == name {
			return f
		}
	}
	return 0
}

func (f FeatureSet) String() string {
	if f == FeatureMVP {
		return "mvp"
	}
	var parts []string
	for bit := FeatureSet(1); bit != 0; bit <<= 1 {
		if f&bit != 0 {
			if name, ok := featureNames[bit]; ok {
				parts = append(parts, name)
			}
		}
	}
	return strings.Join(parts, "+")
}

// Contains reports whether every flag of other is present in f.
func (f FeatureSet) Contains(other FeatureSet) bool { return f&other == other }

// Features returns the proposals an opcode requires. The prefix byte
// decides the bulk of it: 0xFC entries belong to the merged
// bulk-memory/nontrapping/reference-types space, 0xFD to simd, 0xFE to
// threads. Unprefixed extensions are flagged per code range.
func (o Opcode) Features() FeatureSet {
	in := o.info()
	switch in.Prefix {
	case 0xfc:
		switch {
		case o >= I32TruncSatF32S && o <= I64TruncSatF64U:
			return FeatureSatFloatToInt
		case o == TableGrow || o == TableSize:
			return FeatureReferenceTypes
		default:
			return FeatureBulkMemory
		}
	case 0xfd:
		return FeatureSimd
	case 0xfe:
		return FeatureThreads
	}
	switch {
	case o >= I32Extend8S && o <= I64Extend32S:
		return FeatureSignExt
	case o == RefNull || o == RefIsNull || o == RefFunc || o == TableGet || o == TableSet:
		return FeatureReferenceTypes
	case o == Try || o == Catch || o == Throw || o == Rethrow || o == BrOnExn:
		return FeatureExceptions
	case o == ReturnCall || o == ReturnCallIndirect:
		return FeatureTailCall
	}
	return FeatureMVP
}

// IsEnabled reports whether the opcode is admitted under the given
// enabled-feature set.
func (o Opcode) IsEnabled(enabled FeatureSet) bool {
	return enabled.Contains(o.Features())
}
