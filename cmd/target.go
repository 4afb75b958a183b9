package cmd

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/JithinPanicker/day-flow/internal/service"
)

var targetDateFlag string

// targetCmd groups daily target subcommands
var targetCmd = &cobra.Command{
	Use:   "target",
	Short: "Manage daily targets",
	Long:  `Add daily targets to a day entry and toggle them done.`,
}

// targetAddCmd represents the target add command
var targetAddCmd = &cobra.Command{
	Use:   "add <text>",
	Short: "Add a daily target",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		addTarget(args)
	},
}

// targetDoneCmd represents the target done command
var targetDoneCmd = &cobra.Command{
	Use:   "done <target#>",
	Short: "Toggle a daily target done",
	Long: `Toggle the done flag of a daily target by its number as shown by
'dayflow show'. Running it again toggles the target back.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		toggleTarget(args[0])
	},
}

func init() {
	rootCmd.AddCommand(targetCmd)
	targetCmd.AddCommand(targetAddCmd)
	targetCmd.AddCommand(targetDoneCmd)

	targetCmd.PersistentFlags().StringVar(&targetDateFlag, "date", "", "entry date (default today)")
}

func addTarget(args []string) {
	text := strings.TrimSpace(strings.Join(args, " "))

	date, ok := resolveDate(targetDateFlag)
	if !ok {
		return
	}

	services, ok := mustServices()
	if !ok {
		return
	}
	defer func() { _ = services.Close() }()

	if _, err := services.Entry.AddTarget(date, text); err != nil {
		if errors.Is(err, service.ErrEmptyTarget) {
			_, _ = fmt.Fprintln(deps.Stderr, "Error: Target text cannot be empty")
			deps.Exit(1)
			return
		}
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to add target")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		deps.Exit(1)
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "Added target %q on %s\n", text, date)
}

func toggleTarget(arg string) {
	n, err := strconv.Atoi(arg)
	if err != nil || n < 1 {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: Invalid target number %q\n", arg)
		_, _ = fmt.Fprintln(deps.Stderr, "Hint: target numbers are shown by 'dayflow show'")
		deps.Exit(1)
		return
	}

	date, ok := resolveDate(targetDateFlag)
	if !ok {
		return
	}

	services, ok := mustServices()
	if !ok {
		return
	}
	defer func() { _ = services.Close() }()

	e, err := services.Entry.ToggleTarget(date, n)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEntryNotFound):
			_, _ = fmt.Fprintf(deps.Stderr, "Error: No entry for %s\n", date)
		case errors.Is(err, service.ErrTargetIndex):
			_, _ = fmt.Fprintf(deps.Stderr, "Error: Target %d does not exist\n", n)
		default:
			_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to toggle target")
			_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		}
		deps.Exit(1)
		return
	}

	target := e.Targets[n-1]
	state := "open"
	if target.Done {
		state = "done"
	}
	_, _ = fmt.Fprintf(deps.Stdout, "Target %d %s: %s\n", n, state, target.Text)
}
