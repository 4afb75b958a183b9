package cmd

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/JithinPanicker/day-flow/internal/export"
	"github.com/JithinPanicker/day-flow/internal/service"
)

var exportOutputFlag string

// exportCmd represents the export command
var exportCmd = &cobra.Command{
	Use:   "export [date]",
	Short: "Export a day report as PDF",
	Long: `Render a day entry (journal, targets, timetable with active/idle totals)
into a PDF report.

Defaults to today and dayflow-<date>.pdf when no date or output is given.

Examples:
  dayflow export
  dayflow export yesterday -o friday.pdf`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		input := ""
		if len(args) == 1 {
			input = args[0]
		}
		exportEntry(input)
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVarP(&exportOutputFlag, "output", "o", "", "output PDF path")
}

func exportEntry(input string) {
	date, ok := resolveDate(input)
	if !ok {
		return
	}

	services, ok := mustServices()
	if !ok {
		return
	}
	defer func() { _ = services.Close() }()

	e, err := services.Entry.Get(date)
	if err != nil {
		if errors.Is(err, service.ErrEntryNotFound) {
			_, _ = fmt.Fprintf(deps.Stderr, "Error: No entry for %s\n", date)
			deps.Exit(1)
			return
		}
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to load entry")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		deps.Exit(1)
		return
	}

	path := exportOutputFlag
	if path == "" {
		path = fmt.Sprintf("dayflow-%s.pdf", date)
	}

	if err := export.PDF(e, time.Now(), path); err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to write PDF report")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		deps.Exit(1)
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "Exported %s to %s\n", date, path)
}
