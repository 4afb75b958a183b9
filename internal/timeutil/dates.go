// Package timeutil provides date parsing and formatting helpers for
// day-entry dates.
package timeutil

import (
	"fmt"
	"strings"
	"time"

	"github.com/JithinPanicker/day-flow/internal/journal"
)

// ParseEntryDate resolves a user-supplied date into the canonical
// YYYY-MM-DD storage form. Accepts the keywords "today", "yesterday" and
// "tomorrow", ISO format (2024-01-15), and European format (15/01/2024).
// An empty input means today.
func ParseEntryDate(input string, now time.Time) (string, error) {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "", "today":
		return now.Format(journal.DateLayout), nil
	case "yesterday":
		return now.AddDate(0, 0, -1).Format(journal.DateLayout), nil
	case "tomorrow":
		return now.AddDate(0, 0, 1).Format(journal.DateLayout), nil
	}

	// ISO format first; it wins for ambiguous inputs.
	if t, err := time.ParseInLocation(journal.DateLayout, input, time.Local); err == nil {
		return t.Format(journal.DateLayout), nil
	}
	if t, err := time.ParseInLocation("02/01/2006", input, time.Local); err == nil {
		return t.Format(journal.DateLayout), nil
	}

	return "", fmt.Errorf("invalid date '%s' (use today, yesterday, YYYY-MM-DD or DD/MM/YYYY)", input)
}

// DisplayDate renders a stored YYYY-MM-DD date with the given layout, e.g.
// "Monday, Jan 2". Falls back to the raw string if it does not parse.
func DisplayDate(date, layout string) string {
	t, err := time.ParseInLocation(journal.DateLayout, date, time.Local)
	if err != nil {
		return date
	}
	return t.Format(layout)
}
