package views

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/JithinPanicker/day-flow/internal/journal"
	"github.com/JithinPanicker/day-flow/internal/service"
	"github.com/JithinPanicker/day-flow/internal/timeutil"
	"github.com/JithinPanicker/day-flow/internal/tui/ui"
)

// recentLimit caps how many days the list shows at once.
const recentLimit = 60

// daysMode represents the current mode of the days view
type daysMode int

const (
	daysModeNormal daysMode = iota
	daysModeSearch
	daysModeDelete
)

// DaysModel is the model for the days list view
type DaysModel struct {
	services *service.Services
	styles   ui.Styles
	keys     ui.KeyMap

	// UI state
	width   int
	height  int
	cursor  int
	days    []*journal.Entry
	loading bool
	err     error

	// Search state
	mode        daysMode
	searchInput textinput.Model
	query       string
}

// NewDaysModel creates a new days list model
func NewDaysModel(services *service.Services, styles ui.Styles, keys ui.KeyMap) DaysModel {
	searchInput := textinput.New()
	searchInput.Placeholder = "Search journal and slots..."
	searchInput.CharLimit = 100
	searchInput.Width = 40

	return DaysModel{
		services:    services,
		styles:      styles,
		keys:        keys,
		searchInput: searchInput,
	}
}

// daysLoadedMsg is sent when the day list is loaded
type daysLoadedMsg struct {
	days []*journal.Entry
	err  error
}

// Init implements tea.Model
func (m DaysModel) Init() tea.Cmd {
	return m.loadDays()
}

// SetSize updates the view dimensions
func (m *DaysModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// SetStyles applies a new theme
func (m *DaysModel) SetStyles(styles ui.Styles) {
	m.styles = styles
}

// IsInputMode reports whether the view is capturing text input.
func (m DaysModel) IsInputMode() bool {
	return m.mode == daysModeSearch
}

// Update implements tea.Model
func (m DaysModel) Update(msg tea.Msg) (DaysModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch m.mode {
		case daysModeSearch:
			return m.handleSearchMode(msg)
		case daysModeDelete:
			return m.handleDeleteMode(msg)
		}

		switch {
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil
		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.days)-1 {
				m.cursor++
			}
			return m, nil
		case key.Matches(msg, m.keys.Select):
			if m.cursor < len(m.days) {
				date := m.days[m.cursor].Date
				return m, func() tea.Msg { return ui.OpenDayMsg{Date: date} }
			}
			return m, nil
		case key.Matches(msg, m.keys.Today):
			today := time.Now().Format(journal.DateLayout)
			services := m.services
			return m, func() tea.Msg {
				if _, err := services.Entry.GetOrCreate(today); err != nil {
					return daysLoadedMsg{err: err}
				}
				return ui.OpenDayMsg{Date: today}
			}
		case key.Matches(msg, m.keys.Search):
			m.mode = daysModeSearch
			m.searchInput.SetValue(m.query)
			m.searchInput.Focus()
			return m, textinput.Blink
		case key.Matches(msg, m.keys.Delete):
			if m.cursor < len(m.days) {
				m.mode = daysModeDelete
			}
			return m, nil
		case key.Matches(msg, m.keys.Refresh):
			return m, m.loadDays()
		case key.Matches(msg, m.keys.Back):
			if m.query != "" {
				m.query = ""
				return m, m.loadDays()
			}
			return m, nil
		}

	case daysLoadedMsg:
		m.loading = false
		m.err = msg.err
		m.days = msg.days
		if m.cursor >= len(m.days) {
			m.cursor = 0
		}
		return m, nil
	}

	return m, nil
}

func (m DaysModel) handleSearchMode(msg tea.KeyMsg) (DaysModel, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.query = strings.TrimSpace(m.searchInput.Value())
		m.mode = daysModeNormal
		m.searchInput.Blur()
		m.cursor = 0
		return m, m.loadDays()
	case "esc":
		m.mode = daysModeNormal
		m.searchInput.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	return m, cmd
}

func (m DaysModel) handleDeleteMode(msg tea.KeyMsg) (DaysModel, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		m.mode = daysModeNormal
		if m.cursor < len(m.days) {
			date := m.days[m.cursor].Date
			return m, m.deleteDay(date)
		}
		return m, nil
	default:
		m.mode = daysModeNormal
		return m, nil
	}
}

// loadDays loads recent days, or search results when a query is set.
func (m DaysModel) loadDays() tea.Cmd {
	services := m.services
	query := m.query
	return func() tea.Msg {
		if query != "" {
			result, err := services.Search.Search(query)
			if err != nil {
				return daysLoadedMsg{err: err}
			}
			return daysLoadedMsg{days: result.Entries}
		}
		days, err := services.Entry.Recent(recentLimit)
		return daysLoadedMsg{days: days, err: err}
	}
}

func (m DaysModel) deleteDay(date string) tea.Cmd {
	services := m.services
	reload := m.loadDays()
	return func() tea.Msg {
		if err := services.Entry.Delete(date); err != nil {
			return daysLoadedMsg{err: err}
		}
		return reload()
	}
}

// View implements tea.Model
func (m DaysModel) View() string {
	var b strings.Builder

	title := "Days"
	if m.query != "" {
		title = fmt.Sprintf("Days matching %q", m.query)
	}
	b.WriteString(m.styles.ViewTitle.Render(title))
	b.WriteString("\n")

	if m.mode == daysModeSearch {
		b.WriteString(m.styles.Input.Render(m.searchInput.View()))
		b.WriteString("\n\n")
	}

	if m.err != nil {
		b.WriteString(m.styles.Error.Render(fmt.Sprintf("Error: %v", m.err)))
		b.WriteString("\n")
		return b.String()
	}

	if len(m.days) == 0 {
		if m.query != "" {
			b.WriteString(m.styles.DaySummary.Render("No matching days."))
		} else {
			b.WriteString(m.styles.DaySummary.Render("No entries yet. Press g to open today."))
		}
		b.WriteString("\n")
		return b.String()
	}

	layout := m.services.Config.Get().DateFormat
	for i, day := range m.days {
		line := fmt.Sprintf("%s  %s",
			m.styles.DayDate.Render(timeutil.DisplayDate(day.Date, layout)),
			m.styles.DaySummary.Render(day.Summary()))
		if i == m.cursor {
			line = m.styles.DaySelected.Render("> ") + line
		} else {
			line = "  " + line
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	if m.mode == daysModeDelete && m.cursor < len(m.days) {
		b.WriteString("\n")
		b.WriteString(m.styles.Dialog.Render(
			fmt.Sprintf("Delete entry for %s? (y/n)", m.days[m.cursor].Date)))
		b.WriteString("\n")
	}

	return b.String()
}
