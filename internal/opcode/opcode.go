// Package opcode is the authoritative catalogue of WebAssembly
// instructions. Every other component (IR, codecs, validators,
// formatters) dispatches on entries of this table.
package opcode

import (
	"fmt"
	"math/bits"
	"sort"

	"wasmir/internal/types"
)

// Opcode identifies one catalogue entry. The zero value is the first
// table entry; Invalid marks a failed lookup.
type Opcode uint16

// Info is one catalogue row: binary encoding, operand typing, memory
// footprint and textual names.
type Info struct {
	Prefix  byte
	Code    uint32
	Result  types.Type
	Param1  types.Type
	Param2  types.Type
	Param3  types.Type
	MemSize uint32
	Text    string
	Decomp  string
}

// Invalid is returned by failed lookups.
const Invalid = Opcode(len(infos))

func (o Opcode) IsValid() bool { return int(o) < len(infos) }

func (o Opcode) info() *Info { return &infos[o] }

// Text returns the canonical mnemonic.
func (o Opcode) Text() string {
	if !o.IsValid() {
		return "<invalid>"
	}
	return o.info().Text
}

// Decomp returns the short decompilation mnemonic, falling back to the
// canonical one when the entry has none.
func (o Opcode) Decomp() string {
	if o.IsValid() && o.info().Decomp != "" {
		return o.info().Decomp
	}
	return o.Text()
}

func (o Opcode) String() string { return o.Text() }

func (o Opcode) Prefix() byte   { return o.info().Prefix }
func (o Opcode) Code() uint32   { return o.info().Code }
func (o Opcode) HasPrefix() bool { return o.info().Prefix != 0 }

// Result returns the result type, or types.Void when the instruction
// produces no value.
func (o Opcode) Result() types.Type { return o.info().Result }

// Params returns the operand types, dropping trailing empty slots.
func (o Opcode) Params() types.Vector {
	in := o.info()
	params := types.Vector{in.Param1, in.Param2, in.Param3}
	n := len(params)
	for n > 0 && params[n-1] == types.Void {
		n--
	}
	return params[:n]
}

// MemorySize returns the number of bytes the instruction touches, or 0
// for non-memory instructions.
func (o Opcode) MemorySize() uint32 { return o.info().MemSize }

// NaturalAlignLog2 is log2 of the memory footprint, the default
// alignment for the instruction's align immediate.
func (o Opcode) NaturalAlignLog2() (uint32, error) {
	size := o.info().MemSize
	if size == 0 {
		return 0, fmt.Errorf("opcode %s does not access memory", o.Text())
	}
	return uint32(bits.Len32(size) - 1), nil
}

// IsNaturallyAligned reports whether an explicit align (in bytes)
// matches the instruction's natural alignment.
func (o Opcode) IsNaturallyAligned(align uint32) bool {
	return align == 0 || align == o.info().MemSize
}

// GetAlignLog2 converts an explicit align-in-bytes immediate to its
// log2 form, falling back to the natural alignment when align is 0.
func (o Opcode) GetAlignLog2(align uint32) uint32 {
	if align == 0 {
		n, _ := o.NaturalAlignLog2()
		return n
	}
	return uint32(bits.Len32(align) - 1)
}

// IsInterp reports whether the entry is interpreter-private and must
// never appear in serialised modules.
func (o Opcode) IsInterp() bool {
	in := o.info()
	return in.Prefix == 0 && in.Code >= interpFirst && in.Code <= interpLast
}

// BinaryEncoding emits the opcode bytes: a bare code byte, or the
// prefix byte followed by the ULEB128-encoded subcode.
func (o Opcode) BinaryEncoding() []byte {
	in := o.info()
	if in.Prefix == 0 {
		return []byte{byte(in.Code)}
	}
	out := []byte{in.Prefix}
	code := in.Code
	for {
		b := byte(code & 0x7f)
		code >>= 7
		if code != 0 {
			b |= 0x80
		}
		out = append(out, b)
		if code == 0 {
			return out
		}
	}
}

// Interpreter-private code range on the unprefixed plane.
const (
	interpFirst = 0xe0
	interpLast  = 0xe4
)

var byName map[string]Opcode

func init() {
	byName = make(map[string]Opcode, len(infos))
	for i := range infos {
		byName[infos[i].Text] = Opcode(i)
	}
}

// FromName looks up an opcode by its canonical mnemonic. The match is
// exact and case-sensitive; Invalid is returned on a miss.
func FromName(text string) Opcode {
	if op, ok := byName[text]; ok {
		return op
	}
	return Invalid
}

// FromCode looks up an opcode by its (prefix, code) encoding via binary
// search over the sorted table. Invalid is returned for unknown
// encodings.
func FromCode(prefix byte, code uint32) Opcode {
	i := sort.Search(len(infos), func(i int) bool {
		in := &infos[i]
		if in.Prefix != prefix {
			return in.Prefix > prefix
		}
		return in.Code >= code
	})
	if i < len(infos) && infos[i].Prefix == prefix && infos[i].Code == code {
		return Opcode(i)
	}
	return Invalid
}

// Count is the number of catalogue entries.
func Count() int { return len(infos) }

// All iterates over every catalogue entry in (prefix, code) order.
func All(yield func(Opcode) bool) {
	for i := range infos {
		if !yield(Opcode(i)) {
			return
		}
	}
}
