package views

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/JithinPanicker/day-flow/internal/activity"
	"github.com/JithinPanicker/day-flow/internal/journal"
	"github.com/JithinPanicker/day-flow/internal/service"
	"github.com/JithinPanicker/day-flow/internal/timeutil"
	"github.com/JithinPanicker/day-flow/internal/tui/ui"
)

// DayModel is the model for the day detail view. It re-derives timer state
// from the event logs every second while open; each opened day gets a fresh
// session id and ticks carry it, so ticks from a closed session are dropped.
type DayModel struct {
	services *service.Services
	styles   ui.Styles
	keys     ui.KeyMap

	// UI state
	width  int
	height int
	cursor int

	// Session state
	date    string
	session uint64
	entry   *journal.Entry
	changes map[string]service.SlotChange
	gone    bool
	err     error
}

// NewDayModel creates a new day detail model
func NewDayModel(services *service.Services, styles ui.Styles, keys ui.KeyMap) DayModel {
	return DayModel{
		services: services,
		styles:   styles,
		keys:     keys,
	}
}

// dayTickMsg drives the per-second refresh of an open day session
type dayTickMsg struct {
	session uint64
}

// dayLoadedMsg carries a freshly derived snapshot of the day
type dayLoadedMsg struct {
	session uint64
	entry   *journal.Entry
	changes []service.SlotChange
	gone    bool
	err     error
}

// Open starts a new live session on the given date. Any previous session's
// ticks become stale immediately.
func (m *DayModel) Open(date string) tea.Cmd {
	m.session++
	m.date = date
	m.cursor = 0
	m.entry = nil
	m.changes = nil
	m.gone = false
	m.err = nil
	return tea.Batch(m.refresh(m.session), m.tick(m.session))
}

// Close retires the current session so in-flight ticks are dropped.
func (m *DayModel) Close() {
	m.session++
}

// SetSize updates the view dimensions
func (m *DayModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// SetStyles applies a new theme
func (m *DayModel) SetStyles(styles ui.Styles) {
	m.styles = styles
}

// Update implements tea.Model
func (m DayModel) Update(msg tea.Msg) (DayModel, tea.Cmd) {
	switch msg := msg.(type) {
	case dayTickMsg:
		if msg.session != m.session {
			// Stale tick from a closed session.
			return m, nil
		}
		return m, tea.Batch(m.refresh(m.session), m.tick(m.session))

	case dayLoadedMsg:
		if msg.session != m.session {
			return m, nil
		}
		m.err = msg.err
		m.gone = msg.gone
		if msg.err == nil && !msg.gone {
			m.entry = msg.entry
			m.changes = make(map[string]service.SlotChange, len(msg.changes))
			for _, c := range msg.changes {
				m.changes[c.SlotID] = c
			}
			if m.entry != nil && m.cursor >= len(m.entry.Timetable) {
				m.cursor = 0
			}
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil
		case key.Matches(msg, m.keys.Down):
			if m.entry != nil && m.cursor < len(m.entry.Timetable)-1 {
				m.cursor++
			}
			return m, nil
		case key.Matches(msg, m.keys.Start):
			return m, m.applyTimer(activity.KindStarted)
		case key.Matches(msg, m.keys.Pause):
			return m, m.applyTimer(activity.KindPaused)
		case key.Matches(msg, m.keys.Finish):
			return m, m.applyTimer(activity.KindFinished)
		case key.Matches(msg, m.keys.Refresh):
			return m, m.refresh(m.session)
		case key.Matches(msg, m.keys.Back):
			m.Close()
			return m, func() tea.Msg { return ui.BackMsg{} }
		}
	}

	return m, nil
}

// tick schedules the next per-second refresh for the given session.
func (m DayModel) tick(session uint64) tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return dayTickMsg{session: session}
	})
}

// refresh re-derives the day snapshot without appending any events.
func (m DayModel) refresh(session uint64) tea.Cmd {
	services := m.services
	date := m.date
	return func() tea.Msg {
		entry, err := services.Entry.Get(date)
		if errors.Is(err, service.ErrEntryNotFound) {
			return dayLoadedMsg{session: session, gone: true}
		}
		if err != nil {
			return dayLoadedMsg{session: session, err: err}
		}

		changes, err := services.Timer.Derive(date, time.Now())
		if errors.Is(err, service.ErrNotFound) {
			return dayLoadedMsg{session: session, gone: true}
		}
		if err != nil {
			return dayLoadedMsg{session: session, err: err}
		}
		return dayLoadedMsg{session: session, entry: entry, changes: changes}
	}
}

// applyTimer applies a timer action to the selected slot and refreshes.
// Rejected transitions and vanished slots are silent no-ops.
func (m DayModel) applyTimer(kind activity.Kind) tea.Cmd {
	if m.entry == nil || m.cursor >= len(m.entry.Timetable) {
		return nil
	}
	services := m.services
	date := m.date
	slotID := m.entry.Timetable[m.cursor].ID
	session := m.session
	refresh := m.refresh(session)

	return func() tea.Msg {
		_, err := services.Timer.Apply(date, slotID, kind, time.Now())
		if err != nil && !errors.Is(err, activity.ErrNoOp) && !errors.Is(err, service.ErrNotFound) {
			return dayLoadedMsg{session: session, err: err}
		}
		return refresh()
	}
}

// View implements tea.Model
func (m DayModel) View() string {
	var b strings.Builder

	cfg := m.services.Config.Get()
	b.WriteString(m.styles.ViewTitle.Render(timeutil.DisplayDate(m.date, cfg.DateFormat)))
	b.WriteString("\n")

	if m.err != nil {
		b.WriteString(m.styles.Error.Render(fmt.Sprintf("Error: %v", m.err)))
		b.WriteString("\n")
		return b.String()
	}
	if m.gone {
		b.WriteString(m.styles.DaySummary.Render("This entry was deleted."))
		b.WriteString("\n")
		return b.String()
	}
	if m.entry == nil {
		return b.String()
	}

	if m.entry.Journal != "" {
		b.WriteString(m.styles.Journal.Render(m.entry.Journal))
		b.WriteString("\n")
	}

	if len(m.entry.Targets) > 0 {
		for _, target := range m.entry.Targets {
			if target.Done {
				b.WriteString(m.styles.TargetDone.Render("  [x] " + target.Text))
			} else {
				b.WriteString(m.styles.TargetOpen.Render("  [ ] " + target.Text))
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	if len(m.entry.Timetable) == 0 {
		b.WriteString(m.styles.DaySummary.Render("No timetable slots."))
		b.WriteString("\n")
		return b.String()
	}

	for i := range m.entry.Timetable {
		b.WriteString(m.renderSlot(i))
	}

	return b.String()
}

// renderSlot renders one timetable slot row, with the timer history expanded
// under the selected slot.
func (m DayModel) renderSlot(i int) string {
	slot := &m.entry.Timetable[i]

	counters := ""
	if change, ok := m.changes[slot.ID]; ok {
		counters = fmt.Sprintf("active %s  idle %s",
			activity.FormatHMS(change.ActiveMs), activity.FormatHMS(change.IdleMs))
	}

	marker := "  "
	rowStyle := m.styles.SlotNormal
	if i == m.cursor {
		marker = m.styles.SlotSelected.Render("> ")
		rowStyle = m.styles.SlotHeading
	}

	row := fmt.Sprintf("%s%s  %s  %s  %s\n",
		marker,
		m.styles.SlotTime.Render(slot.Time),
		rowStyle.Render(slot.Heading),
		m.statusStyle(slot.Status).Render("["+string(slot.Status)+"]"),
		m.styles.Counter.Render(counters))

	if i != m.cursor {
		return row
	}

	var b strings.Builder
	b.WriteString(row)
	if slot.Description != "" {
		b.WriteString(m.styles.DaySummary.Render("      " + slot.Description))
		b.WriteString("\n")
	}
	cfg := m.services.Config.Get()
	for _, line := range slot.History(cfg.AnnotateIdleGaps, time.Now().Location()) {
		style := m.styles.History
		if line.IdleGap > 0 {
			style = m.styles.IdleGap
		}
		b.WriteString(style.Render("      " + line.String()))
		b.WriteString("\n")
	}
	return b.String()
}

func (m DayModel) statusStyle(status activity.Status) lipgloss.Style {
	switch status {
	case activity.StatusActive:
		return m.styles.StatusActive
	case activity.StatusPaused:
		return m.styles.StatusPaused
	case activity.StatusFinished:
		return m.styles.StatusFinished
	default:
		return m.styles.StatusPending
	}
}
