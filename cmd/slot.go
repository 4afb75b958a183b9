package cmd

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/JithinPanicker/day-flow/internal/service"
)

var (
	slotDateFlag string
	slotDescFlag string
	slotLinkFlag string
)

// slotCmd groups timetable slot subcommands
var slotCmd = &cobra.Command{
	Use:   "slot",
	Short: "Manage timetable slots",
	Long:  `Add and remove timetable slots on a day entry.`,
}

// slotAddCmd represents the slot add command
var slotAddCmd = &cobra.Command{
	Use:   "add <time> <heading>",
	Short: "Add a timetable slot",
	Long: `Add a slot to the day's timetable. The slot starts out pending; drive its
timer with 'dayflow timer'.

Examples:
  dayflow slot add 09:00 "Algebra revision"
  dayflow slot add 14:30 "Design review" --desc "API versioning" --date tomorrow`,
	Args: cobra.MinimumNArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		addSlot(args[0], args[1:])
	},
}

// slotRemoveCmd represents the slot remove command
var slotRemoveCmd = &cobra.Command{
	Use:   "remove <slot#>",
	Short: "Remove a timetable slot",
	Long: `Remove a slot from the day's timetable by its number as shown by
'dayflow show'. The slot's timer history is removed with it.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		removeSlot(args[0])
	},
}

func init() {
	rootCmd.AddCommand(slotCmd)
	slotCmd.AddCommand(slotAddCmd)
	slotCmd.AddCommand(slotRemoveCmd)

	slotCmd.PersistentFlags().StringVar(&slotDateFlag, "date", "", "entry date (default today)")
	slotAddCmd.Flags().StringVar(&slotDescFlag, "desc", "", "slot description")
	slotAddCmd.Flags().StringVar(&slotLinkFlag, "link", "", "related link")
}

func addSlot(timeOfDay string, headingArgs []string) {
	heading := strings.TrimSpace(strings.Join(headingArgs, " "))

	date, ok := resolveDate(slotDateFlag)
	if !ok {
		return
	}

	services, ok := mustServices()
	if !ok {
		return
	}
	defer func() { _ = services.Close() }()

	_, slot, err := services.Entry.AddSlot(date, timeOfDay, heading, slotDescFlag, slotLinkFlag)
	if err != nil {
		if errors.Is(err, service.ErrEmptyHeading) {
			_, _ = fmt.Fprintln(deps.Stderr, "Error: Slot heading cannot be empty")
			deps.Exit(1)
			return
		}
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to add slot")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		deps.Exit(1)
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "Added slot %q at %s on %s\n", slot.Heading, slot.Time, date)
}

func removeSlot(arg string) {
	date, ok := resolveDate(slotDateFlag)
	if !ok {
		return
	}

	services, ok := mustServices()
	if !ok {
		return
	}
	defer func() { _ = services.Close() }()

	slot, ok := slotByNumber(services, date, arg)
	if !ok {
		return
	}

	if _, err := services.Entry.RemoveSlot(date, slot.ID); err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to remove slot")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		deps.Exit(1)
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "Removed slot %q from %s\n", slot.Heading, date)
}

// slotByNumber resolves a 1-based slot number (as printed by show) into the
// slot itself, exiting on missing entries or out-of-range numbers.
func slotByNumber(services *service.Services, date, arg string) (slotRef, bool) {
	n, err := strconv.Atoi(arg)
	if err != nil || n < 1 {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: Invalid slot number %q\n", arg)
		_, _ = fmt.Fprintln(deps.Stderr, "Hint: slot numbers are shown by 'dayflow show'")
		deps.Exit(1)
		return slotRef{}, false
	}

	e, err := services.Entry.Get(date)
	if err != nil {
		if errors.Is(err, service.ErrEntryNotFound) {
			_, _ = fmt.Fprintf(deps.Stderr, "Error: No entry for %s\n", date)
		} else {
			_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to load entry")
			_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		}
		deps.Exit(1)
		return slotRef{}, false
	}

	if n > len(e.Timetable) {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: Slot %d does not exist (entry has %d slots)\n", n, len(e.Timetable))
		deps.Exit(1)
		return slotRef{}, false
	}

	slot := e.Timetable[n-1]
	return slotRef{ID: slot.ID, Heading: slot.Heading, Time: slot.Time}, true
}

// slotRef is the little bit of slot identity commands need after lookup.
type slotRef struct {
	ID      string
	Heading string
	Time    string
}
