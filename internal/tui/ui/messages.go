package ui

// OpenDayMsg asks the root model to open the detail view for a day.
type OpenDayMsg struct {
	Date string
}

// BackMsg asks the root model to return to the days list.
type BackMsg struct{}

// ThemeChangedMsg is broadcast to views when the theme changes.
type ThemeChangedMsg struct {
	ThemeName string
	Styles    Styles
}
