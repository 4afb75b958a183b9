package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/JithinPanicker/day-flow/internal/tui"
)

// tuiCmd represents the tui command
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch interactive terminal UI",
	Long: `Launch the interactive Terminal User Interface for dayflow.

The TUI shows your recent days as a browsable list and opens any day into a
detail view with live timer counters.

Keyboard shortcuts:
  - j/k or arrows: Navigate within lists
  - Enter: Open the selected day
  - /: Filter days by journal text or slot headings
  - s/p/f: Start, pause, finish the selected slot's timer
  - t: Cycle theme
  - Esc: Back
  - ?: Show help
  - q: Quit`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		runTUI()
	},
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

// runTUI initializes and runs the TUI application
func runTUI() {
	services, err := openServices()
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error initializing services: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = services.Close() }()

	if err := tui.Run(services); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
		os.Exit(1)
	}
}
