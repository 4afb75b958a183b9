package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/JithinPanicker/day-flow/internal/activity"
	"github.com/JithinPanicker/day-flow/internal/live"
	"github.com/JithinPanicker/day-flow/internal/service"
)

// watchCmd represents the watch command
var watchCmd = &cobra.Command{
	Use:   "watch [date]",
	Short: "Watch a day's timers live",
	Long: `Watch a day's timetable with live HH:MM:SS active/idle counters, updated
every second. Press Ctrl-C to stop watching; timers keep their state.

Defaults to today when no date is given.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		input := ""
		if len(args) == 1 {
			input = args[0]
		}
		watchEntry(input)
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func watchEntry(input string) {
	date, ok := resolveDate(input)
	if !ok {
		return
	}

	services, ok := mustServices()
	if !ok {
		return
	}
	defer func() { _ = services.Close() }()

	if _, err := services.Entry.Get(date); err != nil {
		if errors.Is(err, service.ErrEntryNotFound) {
			_, _ = fmt.Fprintf(deps.Stdout, "No entry for %s.\n", date)
			return
		}
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to load entry")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		deps.Exit(1)
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	_, _ = fmt.Fprintf(deps.Stdout, "Watching %s (Ctrl-C to stop)\n", date)

	driver := live.NewDriver(services.Timer)
	printed := 0
	driver.Open(date, func(changes []service.SlotChange) {
		printed = renderWatch(changes, printed)
	})
	defer driver.Close()

	<-ctx.Done()
	_, _ = fmt.Fprintln(deps.Stdout)
}

// renderWatch rewrites the slot block in place and returns the number of
// lines it printed, so the next push knows how far to move the cursor up.
func renderWatch(changes []service.SlotChange, prev int) int {
	if prev > 0 {
		_, _ = fmt.Fprintf(deps.Stdout, "\x1b[%dA", prev)
	}

	if len(changes) == 0 {
		_, _ = fmt.Fprint(deps.Stdout, "\x1b[KNo timetable slots.\n")
		return 1
	}

	for _, c := range changes {
		_, _ = fmt.Fprintf(deps.Stdout, "\x1b[K%-10s %-30s active %s  idle %s\n",
			c.Status, c.Heading,
			activity.FormatHMS(c.ActiveMs), activity.FormatHMS(c.IdleMs))
	}
	return len(changes)
}
