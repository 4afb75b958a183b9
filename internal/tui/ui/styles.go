package ui

import (
	"github.com/charmbracelet/lipgloss"
	tint "github.com/lrstanley/bubbletint"
)

// Styles contains all the styles used in the TUI
type Styles struct {
	// Base styles
	App       lipgloss.Style
	ViewTitle lipgloss.Style

	// Status bar
	StatusBar   lipgloss.Style
	StatusKey   lipgloss.Style
	StatusHelp  lipgloss.Style
	StatusTheme lipgloss.Style

	// Days list
	DaySelected lipgloss.Style
	DayNormal   lipgloss.Style
	DayDate     lipgloss.Style
	DaySummary  lipgloss.Style

	// Day detail
	Journal      lipgloss.Style
	TargetDone   lipgloss.Style
	TargetOpen   lipgloss.Style
	SlotSelected lipgloss.Style
	SlotNormal   lipgloss.Style
	SlotTime     lipgloss.Style
	SlotHeading  lipgloss.Style
	History      lipgloss.Style
	IdleGap      lipgloss.Style

	// Timer status markers
	StatusPending  lipgloss.Style
	StatusActive   lipgloss.Style
	StatusPaused   lipgloss.Style
	StatusFinished lipgloss.Style
	Counter        lipgloss.Style

	// Input
	Input lipgloss.Style

	// Dialog
	Dialog lipgloss.Style

	// Errors
	Error lipgloss.Style
}

// NewStylesFromRegistry creates a Styles struct using colors from a
// bubbletint registry, mapping theme colors to semantic UI elements.
func NewStylesFromRegistry(r *tint.Registry) Styles {
	primary := r.Purple()
	secondary := r.Cyan()
	accent := r.BrightPurple()
	muted := r.BrightBlack()
	success := r.Green()
	warning := r.Yellow()
	errorColor := r.Red()
	fg := r.Fg()
	bg := r.Bg()

	return Styles{
		App: lipgloss.NewStyle().Padding(1, 2),
		ViewTitle: lipgloss.NewStyle().
			Foreground(primary).
			Bold(true).
			MarginBottom(1),

		StatusBar: lipgloss.NewStyle().
			Foreground(fg).
			Background(muted).
			Padding(0, 1),
		StatusKey: lipgloss.NewStyle().
			Foreground(secondary).
			Bold(true),
		StatusHelp: lipgloss.NewStyle().
			Foreground(fg),
		StatusTheme: lipgloss.NewStyle().
			Foreground(accent),

		DaySelected: lipgloss.NewStyle().
			Foreground(bg).
			Background(primary).
			Bold(true),
		DayNormal: lipgloss.NewStyle().
			Foreground(fg),
		DayDate: lipgloss.NewStyle().
			Foreground(secondary),
		DaySummary: lipgloss.NewStyle().
			Foreground(muted),

		Journal: lipgloss.NewStyle().
			Foreground(fg).
			MarginBottom(1),
		TargetDone: lipgloss.NewStyle().
			Foreground(success).
			Strikethrough(true),
		TargetOpen: lipgloss.NewStyle().
			Foreground(fg),
		SlotSelected: lipgloss.NewStyle().
			Foreground(bg).
			Background(primary).
			Bold(true),
		SlotNormal: lipgloss.NewStyle().
			Foreground(fg),
		SlotTime: lipgloss.NewStyle().
			Foreground(secondary),
		SlotHeading: lipgloss.NewStyle().
			Foreground(fg).
			Bold(true),
		History: lipgloss.NewStyle().
			Foreground(muted),
		IdleGap: lipgloss.NewStyle().
			Foreground(warning),

		StatusPending: lipgloss.NewStyle().
			Foreground(muted),
		StatusActive: lipgloss.NewStyle().
			Foreground(success).
			Bold(true),
		StatusPaused: lipgloss.NewStyle().
			Foreground(warning),
		StatusFinished: lipgloss.NewStyle().
			Foreground(secondary),
		Counter: lipgloss.NewStyle().
			Foreground(accent).
			Bold(true),

		Input: lipgloss.NewStyle().
			Foreground(fg).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(primary).
			Padding(0, 1),

		Dialog: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(warning).
			Padding(1, 2),

		Error: lipgloss.NewStyle().
			Foreground(errorColor).
			Bold(true),
	}
}
