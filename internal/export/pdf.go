// Package export renders a day entry as a PDF report: the date, journal
// notes, targets, and the timetable with each slot's derived active and
// idle totals.
package export

import (
	"time"

	"github.com/johnfercher/maroto/pkg/color"
	"github.com/johnfercher/maroto/pkg/consts"
	"github.com/johnfercher/maroto/pkg/pdf"
	"github.com/johnfercher/maroto/pkg/props"

	"github.com/JithinPanicker/day-flow/internal/activity"
	"github.com/JithinPanicker/day-flow/internal/journal"
	"github.com/JithinPanicker/day-flow/internal/timeutil"
)

// PDF writes the day report for e to path. Derived times are computed at
// now, so an entry with a still-running slot exports its counters as of the
// moment of export.
func PDF(e *journal.Entry, now time.Time, path string) error {
	m := pdf.NewMaroto(consts.Portrait, consts.A4)
	m.SetPageMargins(20, 10, 20)

	m.RegisterHeader(func() {
		m.Row(10, func() {
			m.Col(12, func() {
				m.Text("DayFlow Daily Report", props.Text{
					Top:   3,
					Style: consts.Bold,
					Align: consts.Center,
					Size:  16,
				})
			})
		})
		m.Row(10, func() {
			m.Col(12, func() {
				m.Text(timeutil.DisplayDate(e.Date, "Monday, January 2, 2006"), props.Text{
					Top:   3,
					Align: consts.Center,
					Size:  12,
				})
			})
		})
	})

	m.Row(8, func() {
		m.Col(12, func() {
			m.Text("Journal", props.Text{Top: 3, Style: consts.Bold, Size: 14})
		})
	})
	journalText := e.Journal
	if journalText == "" {
		journalText = "No journal notes provided."
	}
	m.Row(12, func() {
		m.Col(12, func() {
			m.Text(journalText, props.Text{Top: 2, Size: 10})
		})
	})

	if len(e.Targets) > 0 {
		m.Row(8, func() {
			m.Col(12, func() {
				m.Text("Targets", props.Text{Top: 3, Style: consts.Bold, Size: 14})
			})
		})
		for _, target := range e.Targets {
			mark := "[ ]"
			if target.Done {
				mark = "[x]"
			}
			text := mark + " " + target.Text
			m.Row(6, func() {
				m.Col(12, func() {
					m.Text(text, props.Text{Top: 1, Size: 10})
				})
			})
		}
	}

	m.Row(8, func() {
		m.Col(12, func() {
			m.Text("Timetable", props.Text{Top: 3, Style: consts.Bold, Size: 14})
		})
	})

	headers := []string{"Time", "Activity", "Status", "Active", "Idle"}
	rows := make([][]string, 0, len(e.Timetable))
	nowMs := now.UnixMilli()
	for _, slot := range e.Timetable {
		active, idle := slot.Log.Elapsed(nowMs)
		rows = append(rows, []string{
			slot.Time,
			slot.Heading,
			string(slot.Status),
			activity.FormatHMS(active),
			activity.FormatHMS(idle),
		})
	}

	m.TableList(headers, rows, props.TableList{
		HeaderProp: props.TableListContent{
			Size:      10,
			GridSizes: []uint{2, 4, 2, 2, 2},
		},
		ContentProp: props.TableListContent{
			Size:      10,
			GridSizes: []uint{2, 4, 2, 2, 2},
		},
		Align:                consts.Center,
		AlternatedBackground: &color.Color{Red: 240, Green: 240, Blue: 240},
		HeaderContentSpace:   1,
		Line:                 false,
	})

	return m.OutputFileAndClose(path)
}
