package cmd

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/JithinPanicker/day-flow/internal/activity"
	"github.com/JithinPanicker/day-flow/internal/service"
	"github.com/JithinPanicker/day-flow/internal/timeutil"
)

// showCmd represents the show command
var showCmd = &cobra.Command{
	Use:   "show [date]",
	Short: "Show a day entry in full",
	Long: `Show a day entry: journal text, daily targets, and the timetable with
derived active/idle time and the timer history of every slot.

Defaults to today when no date is given.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		input := ""
		if len(args) == 1 {
			input = args[0]
		}
		showEntry(input)
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func showEntry(input string) {
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
			_, _ = fmt.Fprintf(deps.Stdout, "No entry for %s.\n", date)
			return
		}
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to load entry")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		deps.Exit(1)
		return
	}

	cfg := services.Config.Get()
	now := time.Now()

	_, _ = fmt.Fprintln(deps.Stdout, timeutil.DisplayDate(e.Date, cfg.DateFormat))
	_, _ = fmt.Fprintln(deps.Stdout)

	if e.Journal != "" {
		_, _ = fmt.Fprintln(deps.Stdout, e.Journal)
		_, _ = fmt.Fprintln(deps.Stdout)
	}

	if len(e.Targets) > 0 {
		_, _ = fmt.Fprintln(deps.Stdout, "Targets:")
		for i, target := range e.Targets {
			mark := "[ ]"
			if target.Done {
				mark = "[x]"
			}
			_, _ = fmt.Fprintf(deps.Stdout, "  %d. %s %s\n", i+1, mark, target.Text)
		}
		_, _ = fmt.Fprintln(deps.Stdout)
	}

	if len(e.Timetable) == 0 {
		_, _ = fmt.Fprintln(deps.Stdout, "No timetable slots.")
		return
	}

	_, _ = fmt.Fprintln(deps.Stdout, "Timetable:")
	for i, slot := range e.Timetable {
		activeMs, idleMs := slot.Log.Elapsed(now.UnixMilli())
		_, _ = fmt.Fprintf(deps.Stdout, "  %d. %s  %s  [%s]  active %s  idle %s\n",
			i+1, slot.Time, slot.Heading, slot.Status,
			activity.FormatHMS(activeMs), activity.FormatHMS(idleMs))
		if slot.Description != "" {
			_, _ = fmt.Fprintf(deps.Stdout, "     %s\n", slot.Description)
		}
		if slot.Link != "" {
			_, _ = fmt.Fprintf(deps.Stdout, "     %s\n", slot.Link)
		}
		for _, line := range slot.History(cfg.AnnotateIdleGaps, now.Location()) {
			_, _ = fmt.Fprintf(deps.Stdout, "     %s\n", line)
		}
	}
}
