package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"wasmir/internal/opcode"
)

var featuresCmd = &cobra.Command{
	Use:   "features",
	Short: "Show the manifest-enabled feature set and how many opcodes it admits",
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, _ := cmd.Flags().GetString("dir")
		manifest, ok, err := loadManifest(dir)
		if err != nil {
			return err
		}
		if !ok {
			return errors.New(noManifestMessage)
		}
		enabled, err := manifest.enabledFeatures()
		if err != nil {
			return err
		}

		admitted, gated := 0, 0
		for i := 0; i < opcode.Count(); i++ {
			op := opcode.Opcode(i)
			if op.IsInterp() {
				continue
			}
			if op.IsEnabled(enabled) {
				admitted++
			} else {
				gated++
			}
		}
		fmt.Printf("manifest: %s\n", manifest.Path)
		fmt.Printf("enabled:  %s\n", enabled)
		fmt.Printf("admitted: %d opcodes (%d gated off)\n", admitted, gated)
		return nil
	},
}

func init() {
	featuresCmd.Flags().String("dir", "", "directory to search for wasmir.toml")
}
