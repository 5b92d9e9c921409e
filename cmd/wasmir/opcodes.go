package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"wasmir/internal/cache"
	"wasmir/internal/opcode"
)

var colorEnabled bool

var (
	mnemonicColor = color.New(color.FgCyan)
	prefixColor   = color.New(color.FgYellow)
)

var opcodesCmd = &cobra.Command{
	Use:   "opcodes",
	Short: "Print the opcode catalogue",
	RunE: func(cmd *cobra.Command, args []string) error {
		colorMode, _ := cmd.Flags().GetString("color")
		applyColorMode(colorMode)

		prefixFilter, _ := cmd.Flags().GetString("prefix")
		featureFilter, _ := cmd.Flags().GetString("feature")
		snapshotPath, _ := cmd.Flags().GetString("snapshot")

		var prefix int64 = -1
		if prefixFilter != "" {
			p, err := strconv.ParseInt(strings.TrimPrefix(prefixFilter, "0x"), 16, 16)
			if err != nil {
				return fmt.Errorf("invalid --prefix %q: %w", prefixFilter, err)
			}
			prefix = p
		}
		var feature opcode.FeatureSet
		if featureFilter != "" {
			feature = opcode.FeatureByName(featureFilter)
			if feature == 0 {
				return fmt.Errorf("unknown feature %q", featureFilter)
			}
		}

		if snapshotPath != "" {
			return writeSnapshot(snapshotPath)
		}

		for i := 0; i < opcode.Count(); i++ {
			op := opcode.Opcode(i)
			if prefix >= 0 && int64(op.Prefix()) != prefix {
				continue
			}
			if feature != 0 && !op.Features().Contains(feature) {
				continue
			}
			printOpcodeRow(op)
		}
		return nil
	},
}

var lookupCmd = &cobra.Command{
	Use:   "lookup NAME|PREFIX:CODE",
	Short: "Look up one opcode by mnemonic or encoding",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		colorMode, _ := cmd.Flags().GetString("color")
		applyColorMode(colorMode)

		op, err := resolveOpcodeArg(args[0])
		if err != nil {
			return err
		}
		printOpcodeRow(op)
		fmt.Printf("  encoding: % x\n", op.BinaryEncoding())
		fmt.Printf("  features: %s\n", op.Features())
		if op.MemorySize() > 0 {
			align, _ := op.NaturalAlignLog2()
			fmt.Printf("  memory:   %d bytes (natural align 2^%d)\n", op.MemorySize(), align)
		}
		if op.IsInterp() {
			fmt.Println("  interpreter-private: never valid in .wasm output")
		}
		return nil
	},
}

func resolveOpcodeArg(arg string) (opcode.Opcode, error) {
	if prefixStr, codeStr, ok := strings.Cut(arg, ":"); ok {
		prefix, err := strconv.ParseUint(strings.TrimPrefix(prefixStr, "0x"), 16, 8)
		if err != nil {
			return opcode.Invalid, fmt.Errorf("invalid prefix %q: %w", prefixStr, err)
		}
		code, err := strconv.ParseUint(strings.TrimPrefix(codeStr, "0x"), 16, 32)
		if err != nil {
			return opcode.Invalid, fmt.Errorf("invalid code %q: %w", codeStr, err)
		}
		op := opcode.FromCode(byte(prefix), uint32(code))
		if op == opcode.Invalid {
			return op, fmt.Errorf("unknown opcode 0x%02x:0x%02x", prefix, code)
		}
		return op, nil
	}
	op := opcode.FromName(arg)
	if op == opcode.Invalid {
		return op, fmt.Errorf("unknown mnemonic %q", arg)
	}
	return op, nil
}

func printOpcodeRow(op opcode.Opcode) {
	enc := fmt.Sprintf("0x%02x", op.Code())
	if op.HasPrefix() {
		enc = fmt.Sprintf("0x%02x %s", op.Prefix(), enc)
	}
	mnemonic := op.Text()
	pad := 30 - runewidth.StringWidth(mnemonic)
	if pad < 1 {
		pad = 1
	}
	var params []string
	for _, p := range op.Params() {
		params = append(params, p.String())
	}
	sig := fmt.Sprintf("(%s) -> %s", strings.Join(params, ", "), op.Result())
	if colorEnabled {
		mnemonic = mnemonicColor.Sprint(mnemonic)
		enc = prefixColor.Sprint(enc)
	}
	fmt.Printf("%s%s%-12s %s\n", mnemonic, strings.Repeat(" ", pad), enc, sig)
}

func writeSnapshot(path string) error {
	c, err := cache.OpenAt(path)
	if err != nil {
		return err
	}
	snap := cache.SnapshotCatalog()
	if err := c.Put(cache.DigestString("catalog"), snap); err != nil {
		return err
	}
	fmt.Printf("wrote %d catalogue entries to %s\n", len(snap.Entries), path)
	return nil
}

func init() {
	opcodesCmd.Flags().String("prefix", "", "only entries with this prefix byte (hex; 0 for the base plane)")
	opcodesCmd.Flags().String("feature", "", "only entries of this feature (e.g. simd, threads)")
	opcodesCmd.Flags().String("snapshot", "", "write a msgpack catalogue snapshot to this directory")
}
