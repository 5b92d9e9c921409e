package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"wasmir/internal/ui"
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse the opcode catalogue interactively",
	RunE: func(cmd *cobra.Command, args []string) error {
		uiValue, _ := cmd.Flags().GetString("ui")
		mode, err := readUIMode(uiValue)
		if err != nil {
			return err
		}
		if !shouldUseTUI(mode) {
			return fmt.Errorf("browse needs a terminal; use `wasmir opcodes` for plain output")
		}
		p := tea.NewProgram(ui.NewBrowser(), tea.WithAltScreen())
		_, err = p.Run()
		return err
	},
}

func init() {
	browseCmd.Flags().String("ui", "auto", "interactive UI (auto|on|off)")
}
