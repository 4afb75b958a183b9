package cmd

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/JithinPanicker/day-flow/internal/activity"
)

var timerDateFlag string

// timerCmd represents the timer command
var timerCmd = &cobra.Command{
	Use:   "timer <start|pause|finish> <slot#>",
	Short: "Drive a slot's timer",
	Long: `Apply a timer action to a timetable slot. The slot number is the one shown
by 'dayflow show'.

A pending slot can be started; an active slot can be paused or finished; a
paused slot can be resumed with start or finished. Finish is terminal.
Actions that do not apply to the slot's current state are ignored.

Examples:
  dayflow timer start 1
  dayflow timer pause 1
  dayflow timer finish 2 --date yesterday`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		applyTimer(args[0], args[1])
	},
}

func init() {
	rootCmd.AddCommand(timerCmd)
	timerCmd.Flags().StringVar(&timerDateFlag, "date", "", "entry date (default today)")
}

func applyTimer(action, slotArg string) {
	kind, ok := timerKind(action)
	if !ok {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: Unknown timer action %q\n", action)
		_, _ = fmt.Fprintln(deps.Stderr, "Hint: use start, pause, or finish")
		deps.Exit(1)
		return
	}

	date, ok := resolveDate(timerDateFlag)
	if !ok {
		return
	}

	services, ok := mustServices()
	if !ok {
		return
	}
	defer func() { _ = services.Close() }()

	slot, ok := slotByNumber(services, date, slotArg)
	if !ok {
		return
	}

	change, err := services.Timer.Apply(date, slot.ID, kind, time.Now())
	if err != nil {
		if errors.Is(err, activity.ErrNoOp) {
			_, _ = fmt.Fprintf(deps.Stdout, "%s is already %s; nothing to do.\n", slot.Heading, change.Status)
			return
		}
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to apply timer action")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		deps.Exit(1)
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "%s %s  active %s  idle %s\n",
		kind.Label(), change.Heading,
		activity.FormatHMS(change.ActiveMs), activity.FormatHMS(change.IdleMs))
}

func timerKind(action string) (activity.Kind, bool) {
	switch action {
	case "start":
		return activity.KindStarted, true
	case "pause":
		return activity.KindPaused, true
	case "finish":
		return activity.KindFinished, true
	}
	return "", false
}
