package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"wasmir/internal/opcode"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify the opcode catalogue invariants",
	RunE: func(cmd *cobra.Command, args []string) error {
		colorMode, _ := cmd.Flags().GetString("color")
		applyColorMode(colorMode)
		quiet, _ := cmd.Flags().GetBool("quiet")

		checks := opcode.Checks()
		results := make([]error, len(checks))

		var g errgroup.Group
		for i, c := range checks {
			g.Go(func() error {
				results[i] = c.Run()
				return nil
			})
		}
		_ = g.Wait()

		failed := 0
		for i, c := range checks {
			if results[i] != nil {
				failed++
				printCheckStatus(c.Name, false)
				fmt.Fprintf(os.Stderr, "%v\n", results[i])
			} else if !quiet {
				printCheckStatus(c.Name, true)
			}
		}
		if failed > 0 {
			return fmt.Errorf("%d of %d catalogue checks failed", failed, len(checks))
		}
		if !quiet {
			fmt.Printf("%d entries, all checks passed\n", opcode.Count())
		}
		return nil
	},
}

func printCheckStatus(name string, ok bool) {
	status := "ok"
	c := color.New(color.FgGreen)
	if !ok {
		status = "FAIL"
		c = color.New(color.FgRed, color.Bold)
	}
	if colorEnabled {
		status = c.Sprint(status)
	}
	fmt.Printf("%-20s %s\n", name, status)
}
