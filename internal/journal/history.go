package journal

import (
	"fmt"
	"time"

	"github.com/JithinPanicker/day-flow/internal/activity"
)

// HistoryLine is one rendered row of a slot's timer history.
type HistoryLine struct {
	Kind activity.Kind
	At   time.Time
	// IdleGap is the paused duration that preceded a started event, zero
	// otherwise. Display layers show it as an annotation on resume lines.
	IdleGap time.Duration
}

// History converts a slot's log into display rows. When annotateIdle is set,
// each started event that follows a paused event carries the length of the
// pause it ended.
func (s *Slot) History(annotateIdle bool, loc *time.Location) []HistoryLine {
	if loc == nil {
		loc = time.Local
	}

	lines := make([]HistoryLine, 0, len(s.Log))
	var pausedAt int64 = -1
	for _, e := range s.Log {
		line := HistoryLine{Kind: e.Kind, At: time.UnixMilli(e.At).In(loc)}
		switch e.Kind {
		case activity.KindStarted:
			if annotateIdle && pausedAt >= 0 {
				line.IdleGap = time.Duration(e.At-pausedAt) * time.Millisecond
			}
			pausedAt = -1
		case activity.KindPaused:
			pausedAt = e.At
		case activity.KindFinished:
			pausedAt = -1
		}
		lines = append(lines, line)
	}
	return lines
}

// String renders a history line as "Started 09:15:02" or, with an idle gap,
// "Started 09:15:02 (idle 00:03:10)".
func (h HistoryLine) String() string {
	s := fmt.Sprintf("%s %s", h.Kind.Label(), h.At.Format("15:04:05"))
	if h.IdleGap > 0 {
		s += fmt.Sprintf(" (idle %s)", activity.FormatHMS(h.IdleGap.Milliseconds()))
	}
	return s
}
