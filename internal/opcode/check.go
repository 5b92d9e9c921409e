package opcode

import (
	"errors"
	"fmt"
)

// Check is one self-contained catalogue invariant.
type Check struct {
	Name string
	Run  func() error
}

// Checks returns the catalogue well-formedness checks. Each is
// independent of the others so callers may run them concurrently.
func Checks() []Check {
	return []Check{
		{Name: "encoding-order", Run: checkEncodingOrder},
		{Name: "unique-mnemonics", Run: checkUniqueMnemonics},
		{Name: "memory-sizes", Run: checkMemorySizes},
		{Name: "interp-range", Run: checkInterpRange},
		{Name: "round-trip", Run: checkRoundTrip},
	}
}

// CheckTable runs every catalogue check and joins the failures.
func CheckTable() error {
	var errs []error
	for _, c := range Checks() {
		if err := c.Run(); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", c.Name, err))
		}
	}
	return errors.Join(errs...)
}

// checkEncodingOrder verifies the table is strictly ordered by
// (prefix, code), which both FromCode's binary search and the
// uniqueness of encodings depend on.
func checkEncodingOrder() error {
	var errs []error
	for i := 1; i < len(infos); i++ {
		prev, cur := &infos[i-1], &infos[i]
		if prev.Prefix > cur.Prefix ||
			(prev.Prefix == cur.Prefix && prev.Code >= cur.Code) {
			errs = append(errs, fmt.Errorf(
				"%s (0x%02x 0x%02x) does not sort after %s (0x%02x 0x%02x)",
				cur.Text, cur.Prefix, cur.Code,
				prev.Text, prev.Prefix, prev.Code))
		}
	}
	return errors.Join(errs...)
}

func checkUniqueMnemonics() error {
	seen := make(map[string]Opcode, len(infos))
	var errs []error
	for i := range infos {
		text := infos[i].Text
		if text == "" {
			errs = append(errs, fmt.Errorf("entry %d has no mnemonic", i))
			continue
		}
		if prev, ok := seen[text]; ok {
			errs = append(errs, fmt.Errorf("mnemonic %q used by entries %d and %d", text, prev, i))
			continue
		}
		seen[text] = Opcode(i)
	}
	return errors.Join(errs...)
}

// checkMemorySizes verifies every memory footprint is a power of two,
// so natural-alignment math stays exact.
func checkMemorySizes() error {
	var errs []error
	for i := range infos {
		size := infos[i].MemSize
		if size != 0 && size&(size-1) != 0 {
			errs = append(errs, fmt.Errorf("%s: memory size %d is not a power of two", infos[i].Text, size))
		}
	}
	return errors.Join(errs...)
}

// checkInterpRange verifies the interpreter-private opcodes sit in
// their reserved unprefixed range and nothing else does.
func checkInterpRange() error {
	interp := map[Opcode]bool{
		InterpAlloca:   true,
		InterpBrUnless: true,
		InterpCallHost: true,
		InterpData:     true,
		InterpDropKeep: true,
	}
	var errs []error
	for i := range infos {
		op := Opcode(i)
		inRange := infos[i].Prefix == 0 && infos[i].Code >= interpFirst && infos[i].Code <= interpLast
		if inRange != interp[op] {
			errs = append(errs, fmt.Errorf("%s: interpreter range mismatch", infos[i].Text))
		}
	}
	return errors.Join(errs...)
}

func checkRoundTrip() error {
	var errs []error
	for i := range infos {
		op := Opcode(i)
		if got := FromCode(op.Prefix(), op.Code()); got != op {
			errs = append(errs, fmt.Errorf("FromCode(0x%02x, 0x%02x) = %v, want %s", op.Prefix(), op.Code(), got, op.Text()))
		}
		if got := FromName(op.Text()); got != op {
			errs = append(errs, fmt.Errorf("FromName(%q) = %v, want %s", op.Text(), got, op.Text()))
		}
	}
	return errors.Join(errs...)
}
