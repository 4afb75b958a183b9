// Package tui provides the Terminal User Interface for the dayflow
// application.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/JithinPanicker/day-flow/internal/service"
	"github.com/JithinPanicker/day-flow/internal/tui/ui"
	"github.com/JithinPanicker/day-flow/internal/tui/views"
)

// screen identifies which view is on top
type screen int

const (
	screenDays screen = iota
	screenDay
)

// Model is the root TUI model. It shows the days list and pushes a day
// detail view on top when a day is opened.
type Model struct {
	services *service.Services

	active   screen
	width    int
	height   int
	showHelp bool

	daysView views.DaysModel
	dayView  views.DayModel

	themeProvider *ui.ThemeProvider
	styles        ui.Styles
	keys          ui.KeyMap
}

// New creates a new TUI model
func New(services *service.Services) Model {
	themeName := services.Config.Get().Theme
	themeProvider := ui.NewThemeProvider(themeName)
	styles := themeProvider.Styles()
	keys := ui.DefaultKeyMap()

	return Model{
		services:      services,
		active:        screenDays,
		themeProvider: themeProvider,
		styles:        styles,
		keys:          keys,
		daysView:      views.NewDaysModel(services, styles, keys),
		dayView:       views.NewDayModel(services, styles, keys),
	}
}

// Run starts the TUI program and blocks until it exits.
func Run(services *service.Services) error {
	p := tea.NewProgram(New(services), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return m.daysView.Init()
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		capturing := m.active == screenDays && m.daysView.IsInputMode()

		switch {
		case key.Matches(msg, m.keys.Quit) && !capturing:
			m.dayView.Close()
			return m, tea.Quit

		case key.Matches(msg, m.keys.Help) && !capturing:
			m.showHelp = !m.showHelp
			return m, nil

		case key.Matches(msg, m.keys.Theme) && !capturing:
			return m.cycleTheme()
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		contentHeight := m.height - 3
		m.daysView.SetSize(m.width, contentHeight)
		m.dayView.SetSize(m.width, contentHeight)
		return m, nil

	case ui.OpenDayMsg:
		m.active = screenDay
		return m, m.dayView.Open(msg.Date)

	case ui.BackMsg:
		m.active = screenDays
		return m, m.daysView.Init()
	}

	switch m.active {
	case screenDays:
		m.daysView, cmd = m.daysView.Update(msg)
	case screenDay:
		m.dayView, cmd = m.dayView.Update(msg)
	}
	return m, cmd
}

// View implements tea.Model
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	var b strings.Builder

	switch m.active {
	case screenDays:
		b.WriteString(m.daysView.View())
	case screenDay:
		b.WriteString(m.dayView.View())
	}

	b.WriteString("\n")
	b.WriteString(m.renderStatusBar())

	if m.showHelp {
		return m.styles.App.Render(b.String() + "\n\n" + m.renderHelp())
	}
	return m.styles.App.Render(b.String())
}

// renderStatusBar renders the status bar at the bottom
func (m Model) renderStatusBar() string {
	var parts []string

	switch m.active {
	case screenDays:
		parts = append(parts, m.renderKeyHelp("enter", "open"))
		parts = append(parts, m.renderKeyHelp("g", "today"))
		parts = append(parts, m.renderKeyHelp("/", "search"))
		parts = append(parts, m.renderKeyHelp("d", "delete"))
	case screenDay:
		parts = append(parts, m.renderKeyHelp("s/p/f", "timer"))
		parts = append(parts, m.renderKeyHelp("esc", "back"))
	}

	parts = append(parts, m.renderKeyHelp("t", "theme"))
	parts = append(parts, m.renderKeyHelp("?", "help"))
	parts = append(parts, m.renderKeyHelp("q", "quit"))
	parts = append(parts, m.styles.StatusTheme.Render(m.themeProvider.CurrentName()))

	content := strings.Join(parts, "  ")
	padding := m.width - lipgloss.Width(content)
	if padding > 0 {
		content += strings.Repeat(" ", padding)
	}
	return m.styles.StatusBar.Render(content)
}

// renderKeyHelp renders a single key help item
func (m Model) renderKeyHelp(key, desc string) string {
	return fmt.Sprintf("%s %s",
		m.styles.StatusKey.Render(key),
		m.styles.StatusHelp.Render(desc))
}

// renderHelp renders the expanded help block
func (m Model) renderHelp() string {
	lines := []string{
		"j/k, arrows   navigate",
		"enter         open selected day",
		"g             open today",
		"/             search days",
		"d             delete selected day",
		"s / p / f     start / pause / finish the selected slot's timer",
		"r             refresh",
		"t             cycle theme",
		"esc           back",
		"q             quit",
	}
	return m.styles.History.Render(strings.Join(lines, "\n"))
}

// cycleTheme advances to the next theme and persists the choice.
func (m Model) cycleTheme() (tea.Model, tea.Cmd) {
	name := m.themeProvider.NextTheme()
	m.styles = m.themeProvider.Styles()
	m.daysView.SetStyles(m.styles)
	m.dayView.SetStyles(m.styles)

	services := m.services
	return m, func() tea.Msg {
		cfg := services.Config.Get()
		cfg.Theme = name
		// A failed save keeps the theme for this session only.
		_ = services.Config.Update(cfg)
		return ui.ThemeChangedMsg{ThemeName: name, Styles: m.styles}
	}
}
