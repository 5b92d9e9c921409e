package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"wasmir/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "wasmir",
	Short: "WebAssembly IR and opcode catalogue toolkit",
	Long:  `wasmir inspects the WebAssembly opcode catalogue and module IR artifacts`,
}

// main initializes the CLI by setting the command version, registering
// subcommands and persistent flags, and then executes the root command.
// If command execution returns an error, the process exits with status
// code 1.
func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(opcodesCmd)
	rootCmd.AddCommand(lookupCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(browseCmd)
	rootCmd.AddCommand(featuresCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("quiet", false, "suppress non-essential output")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// isTerminal reports whether f is attached to a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
