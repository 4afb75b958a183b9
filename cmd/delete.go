package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/JithinPanicker/day-flow/internal/service"
)

var deleteYesFlag bool

// deleteCmd represents the delete command
var deleteCmd = &cobra.Command{
	Use:   "delete <date>",
	Short: "Delete a day entry",
	Long: `Delete a day entry and everything on it: journal, targets, timetable, and
timer history. Asks for confirmation unless --yes is given.

Examples:
  dayflow delete yesterday
  dayflow delete 2026-08-12 --yes`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		deleteEntry(args[0])
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)
	deleteCmd.Flags().BoolVarP(&deleteYesFlag, "yes", "y", false, "skip confirmation prompt")
}

func deleteEntry(input string) {
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

	if !deleteYesFlag {
		_, _ = fmt.Fprintf(deps.Stdout, "Delete entry for %s (%s)? [y/N]: ", date, e.Summary())
		reader := bufio.NewReader(deps.Stdin)
		line, _ := reader.ReadString('\n')
		answer := strings.ToLower(strings.TrimSpace(line))
		if answer != "y" && answer != "yes" {
			_, _ = fmt.Fprintln(deps.Stdout, "Cancelled.")
			return
		}
	}

	if err := services.Entry.Delete(date); err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to delete entry")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		deps.Exit(1)
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "Deleted entry for %s\n", date)
}
