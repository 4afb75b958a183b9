package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/JithinPanicker/day-flow/internal/service"
	"github.com/JithinPanicker/day-flow/internal/timeutil"
)

// recentLimit is how many day entries the bare command lists.
const recentLimit = 14

var rootCmd = &cobra.Command{
	Use:   "dayflow",
	Short: "A daily planning journal with per-activity timers",
	Long: `dayflow is a daily planning journal: one entry per calendar date with
free-text journal notes, daily targets, and a timetable of activity slots.
Each slot carries a timer that can be started, paused, and finished; active
and idle time are derived from the slot's event log.

Usage:
  dayflow                                     List recent day entries
  dayflow show [date]                         Show a day in full
  dayflow journal <text> [--date]             Set the day's journal text
  dayflow slot add <time> <heading>           Add a timetable slot
  dayflow target add <text>                   Add a daily target
  dayflow timer <start|pause|finish> <slot#>  Drive a slot's timer
  dayflow watch [date]                        Live timer counters
  dayflow export [date] -o report.pdf         Render a PDF day report

Dates accept YYYY-MM-DD, DD-MM-YYYY, "today", "yesterday", and "tomorrow".`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		listRecent()
	},
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// SetVersionInfo sets the version information for the CLI
func SetVersionInfo(version, commit, date string) {
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date)
}

// listRecent prints the most recent day entries, newest first.
func listRecent() {
	services, ok := mustServices()
	if !ok {
		return
	}
	defer func() { _ = services.Close() }()

	entries, err := services.Entry.Recent(recentLimit)
	if err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to load entries")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		deps.Exit(1)
		return
	}

	if len(entries) == 0 {
		_, _ = fmt.Fprintln(deps.Stdout, "No entries yet.")
		_, _ = fmt.Fprintln(deps.Stdout, "Hint: dayflow journal 'first note' creates today's entry")
		return
	}

	layout := services.Config.Get().DateFormat
	for _, e := range entries {
		_, _ = fmt.Fprintf(deps.Stdout, "%s  %s\n", timeutil.DisplayDate(e.Date, layout), e.Summary())
	}
}

// resolveDate turns a command's date argument or flag into a canonical
// YYYY-MM-DD string, exiting on invalid input.
func resolveDate(input string) (string, bool) {
	date, err := timeutil.ParseEntryDate(input, time.Now())
	if err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: Invalid date %q\n", input)
		_, _ = fmt.Fprintln(deps.Stderr, "Hint: use YYYY-MM-DD, DD-MM-YYYY, today, yesterday, or tomorrow")
		deps.Exit(1)
		return "", false
	}
	return date, true
}

// failOpen reports a service initialization failure.
func failOpen(err error) {
	_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to open the journal database")
	_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
	_, _ = fmt.Fprintln(deps.Stderr, "Hint: Check that your home directory is accessible")
	deps.Exit(1)
}

// mustServices opens the service layer or exits. The second return is false
// when initialization failed and the command should stop.
func mustServices() (*service.Services, bool) {
	services, err := openServices()
	if err != nil {
		failOpen(err)
		return nil, false
	}
	return services, true
}
