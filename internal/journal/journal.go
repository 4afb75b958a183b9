// Package journal defines the day-entry data model: one entry per calendar
// date holding free-text journal notes, daily targets, and a timetable of
// slots that each carry their own activity timer.
package journal

import (
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/JithinPanicker/day-flow/internal/activity"
)

// DateLayout is the canonical storage format for entry dates.
const DateLayout = "2006-01-02"

// Target is a daily goal with a completion flag.
type Target struct {
	Text string `json:"text"`
	Done bool   `json:"done"`
}

// Slot is a single scheduled topic within a day's timetable. The id is
// assigned at creation and never changes; the descriptive fields are free
// text and irrelevant to the timer logic.
type Slot struct {
	ID          string          `json:"id"`
	Time        string          `json:"time"`
	Heading     string          `json:"heading"`
	Description string          `json:"description,omitempty"`
	Link        string          `json:"link,omitempty"`
	Status      activity.Status `json:"status"`
	Log         activity.Log    `json:"log,omitempty"`

	// LegacyElapsed carries the cached accumulator written by an older
	// schema generation that stored a running total instead of a log.
	// It is consumed once by Normalize and never written back.
	LegacyElapsed int64 `json:"elapsedAccumulated,omitempty"`
}

// Entry is one day's record.
type Entry struct {
	ID        string   `json:"id"`
	Date      string   `json:"date"`
	Journal   string   `json:"journal,omitempty"`
	Targets   []Target `json:"targets,omitempty"`
	Timetable []Slot   `json:"timetable,omitempty"`
	Updated   int64    `json:"updated"`
}

// NewEntry creates an empty entry for the given date.
func NewEntry(date string) *Entry {
	return &Entry{
		ID:   uuid.NewString(),
		Date: date,
	}
}

// NewSlot creates a timetable slot with a fresh id, an empty log, and
// pending status.
func NewSlot(timeOfDay, heading, description, link string) Slot {
	return Slot{
		ID:          uuid.NewString(),
		Time:        timeOfDay,
		Heading:     heading,
		Description: description,
		Link:        link,
		Status:      activity.StatusPending,
	}
}

// Slot returns a pointer to the slot with the given id, or nil if the entry
// has no such slot.
func (e *Entry) Slot(id string) *Slot {
	for i := range e.Timetable {
		if e.Timetable[i].ID == id {
			return &e.Timetable[i]
		}
	}
	return nil
}

// Touch stamps the entry with the current wall clock, matching the
// updated-on-save behavior of the record format.
func (e *Entry) Touch(now time.Time) {
	e.Updated = now.UnixMilli()
}

// Normalize reconciles every slot's stored status with its log and migrates
// legacy records. Called after every load so downstream code can rely on the
// status/log invariant regardless of which schema generation wrote the row.
func (e *Entry) Normalize() {
	for i := range e.Timetable {
		e.Timetable[i].normalize(e.Updated)
	}
}

// normalize restores the invariant that Status equals the mapping of the
// last log event. A record from the accumulator-era schema (cached total,
// no log) gets a single synthetic finished event, stamped with the entry's
// last save time, so the history display degrades gracefully; the cached
// total itself is not trusted, because the replay model is canonical.
func (s *Slot) normalize(savedAt int64) {
	if len(s.Log) == 0 && s.LegacyElapsed > 0 {
		s.Log = activity.Log{{Kind: activity.KindFinished, At: savedAt}}
		s.LegacyElapsed = 0
	}
	s.Status = s.Log.Status()
}

// Apply validates and appends a timer event to the slot, keeping Status and
// Log in lockstep. Rejected transitions return activity.ErrNoOp and leave
// the slot untouched.
func (s *Slot) Apply(k activity.Kind, now time.Time) error {
	log, err := s.Log.Append(k, now.UnixMilli())
	if err != nil {
		return err
	}
	s.Log = log
	s.Status = log.Status()
	return nil
}

// Summary is the one-line card text for an entry: the journal text if
// present, otherwise an activity count.
func (e *Entry) Summary() string {
	if e.Journal != "" {
		return e.Journal
	}
	n := len(e.Timetable)
	if n == 1 {
		return "1 activity logged today."
	}
	return strconv.Itoa(n) + " activities logged today."
}
