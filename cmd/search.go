package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/JithinPanicker/day-flow/internal/timeutil"
)

// searchCmd represents the search command
var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search day entries",
	Long: `Search day entries by journal text and slot headings (case-insensitive
substring match). Results are listed newest first.

Examples:
  dayflow search algebra
  dayflow search "design review"`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		searchEntries(strings.Join(args, " "))
	},
}

func init() {
	rootCmd.AddCommand(searchCmd)
}

func searchEntries(query string) {
	query = strings.TrimSpace(query)
	if query == "" {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Search query cannot be empty")
		deps.Exit(1)
		return
	}

	services, ok := mustServices()
	if !ok {
		return
	}
	defer func() { _ = services.Close() }()

	result, err := services.Search.Search(query)
	if err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Search failed")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		deps.Exit(1)
		return
	}

	if len(result.Entries) == 0 {
		_, _ = fmt.Fprintf(deps.Stdout, "No entries matching %q.\n", query)
		return
	}

	layout := services.Config.Get().DateFormat
	_, _ = fmt.Fprintf(deps.Stdout, "Found %d entries matching %q:\n", len(result.Entries), query)
	for _, e := range result.Entries {
		_, _ = fmt.Fprintf(deps.Stdout, "%s  %s\n", timeutil.DisplayDate(e.Date, layout), e.Summary())
	}
}
