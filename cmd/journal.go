package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var journalDateFlag string

// journalCmd represents the journal command
var journalCmd = &cobra.Command{
	Use:   "journal <text>",
	Short: "Set the day's journal text",
	Long: `Set the free-text journal for a day entry, creating the entry if it does
not exist yet. The text replaces any previous journal for that day.

Examples:
  dayflow journal "Slow morning, good focus after lunch"
  dayflow journal "Prep notes" --date tomorrow`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		setJournal(args)
	},
}

func init() {
	rootCmd.AddCommand(journalCmd)
	journalCmd.Flags().StringVar(&journalDateFlag, "date", "", "entry date (default today)")
}

func setJournal(args []string) {
	text := strings.TrimSpace(strings.Join(args, " "))

	date, ok := resolveDate(journalDateFlag)
	if !ok {
		return
	}

	services, ok := mustServices()
	if !ok {
		return
	}
	defer func() { _ = services.Close() }()

	e, err := services.Entry.SetJournal(date, text)
	if err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to save journal")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		deps.Exit(1)
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "Journal saved for %s\n", e.Date)
}
