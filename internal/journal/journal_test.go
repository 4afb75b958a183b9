package journal

import (
	"errors"
	"testing"
	"time"

	"github.com/JithinPanicker/day-flow/internal/activity"
)

func TestNewEntry(t *testing.T) {
	e := NewEntry("2026-08-30")
	if e.ID == "" {
		t.Error("expected a generated entry id")
	}
	if e.Date != "2026-08-30" {
		t.Errorf("Date = %q, expected 2026-08-30", e.Date)
	}
	if len(e.Timetable) != 0 || len(e.Targets) != 0 {
		t.Error("new entry should start empty")
	}
}

func TestNewSlot(t *testing.T) {
	s := NewSlot("09:00", "Algebra revision", "chapters 3-4", "https://example.com")
	if s.ID == "" {
		t.Error("expected a generated slot id")
	}
	if s.Status != activity.StatusPending {
		t.Errorf("Status = %s, expected pending", s.Status)
	}
	if len(s.Log) != 0 {
		t.Errorf("Log length = %d, expected 0", len(s.Log))
	}

	other := NewSlot("09:00", "Algebra revision", "", "")
	if other.ID == s.ID {
		t.Error("slot ids must be unique")
	}
}

func TestEntry_Slot(t *testing.T) {
	e := NewEntry("2026-08-30")
	a := NewSlot("09:00", "Reading", "", "")
	b := NewSlot("10:00", "Writing", "", "")
	e.Timetable = []Slot{a, b}

	got := e.Slot(b.ID)
	if got == nil {
		t.Fatal("expected to find slot")
	}
	if got.Heading != "Writing" {
		t.Errorf("Heading = %q, expected Writing", got.Heading)
	}

	// Returned pointer must alias the entry so mutations stick.
	got.Heading = "Essay"
	if e.Timetable[1].Heading != "Essay" {
		t.Error("Slot() did not return a pointer into the timetable")
	}

	if e.Slot("no-such-id") != nil {
		t.Error("expected nil for unknown slot id")
	}
}

func TestSlot_Apply(t *testing.T) {
	s := NewSlot("09:00", "Reading", "", "")
	now := time.UnixMilli(1_700_000_000_000)

	if err := s.Apply(activity.KindStarted, now); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Status != activity.StatusActive {
		t.Errorf("Status = %s, expected active", s.Status)
	}
	if len(s.Log) != 1 || s.Log[0].At != now.UnixMilli() {
		t.Fatalf("unexpected log: %+v", s.Log)
	}

	// Duplicate start is rejected and leaves the slot untouched.
	err := s.Apply(activity.KindStarted, now.Add(time.Second))
	if !errors.Is(err, activity.ErrNoOp) {
		t.Errorf("expected ErrNoOp, got %v", err)
	}
	if len(s.Log) != 1 || s.Status != activity.StatusActive {
		t.Error("rejected transition mutated the slot")
	}
}

func TestEntry_Normalize_ReconcilesStatus(t *testing.T) {
	e := NewEntry("2026-08-30")
	s := NewSlot("09:00", "Reading", "", "")
	s.Log = activity.Log{{Kind: activity.KindStarted, At: 0}, {Kind: activity.KindPaused, At: 1000}}
	s.Status = activity.StatusActive // stale, e.g. a crashed save
	e.Timetable = []Slot{s}

	e.Normalize()

	if e.Timetable[0].Status != activity.StatusPaused {
		t.Errorf("Status = %s, expected paused after normalize", e.Timetable[0].Status)
	}
}

func TestEntry_Normalize_MigratesLegacyAccumulator(t *testing.T) {
	e := NewEntry("2026-08-30")
	e.Updated = 1_700_000_123_456
	s := NewSlot("09:00", "Reading", "", "")
	s.LegacyElapsed = 45 * 60 * 1000
	e.Timetable = []Slot{s}

	e.Normalize()

	got := e.Timetable[0]
	if len(got.Log) != 1 {
		t.Fatalf("log length = %d, expected 1 synthetic event", len(got.Log))
	}
	if got.Log[0].Kind != activity.KindFinished {
		t.Errorf("synthetic event kind = %s, expected finished", got.Log[0].Kind)
	}
	if got.Log[0].At != e.Updated {
		t.Errorf("synthetic event at = %d, expected %d", got.Log[0].At, e.Updated)
	}
	if got.Status != activity.StatusFinished {
		t.Errorf("Status = %s, expected finished", got.Status)
	}
	if got.LegacyElapsed != 0 {
		t.Error("legacy accumulator should be cleared after migration")
	}

	// Migrated logs are closed for good.
	err := e.Timetable[0].Apply(activity.KindStarted, time.Now())
	if !errors.Is(err, activity.ErrNoOp) {
		t.Errorf("expected ErrNoOp on migrated slot, got %v", err)
	}
}

func TestEntry_Normalize_EmptySlotStaysPending(t *testing.T) {
	e := NewEntry("2026-08-30")
	e.Timetable = []Slot{NewSlot("09:00", "Reading", "", "")}
	e.Normalize()
	if e.Timetable[0].Status != activity.StatusPending {
		t.Errorf("Status = %s, expected pending", e.Timetable[0].Status)
	}
}

func TestEntry_Summary(t *testing.T) {
	e := NewEntry("2026-08-30")
	e.Journal = "Solid day."
	if e.Summary() != "Solid day." {
		t.Errorf("Summary() = %q, expected journal text", e.Summary())
	}

	e.Journal = ""
	e.Timetable = []Slot{NewSlot("09:00", "a", "", "")}
	if e.Summary() != "1 activity logged today." {
		t.Errorf("Summary() = %q", e.Summary())
	}
	e.Timetable = append(e.Timetable, NewSlot("10:00", "b", "", ""))
	if e.Summary() != "2 activities logged today." {
		t.Errorf("Summary() = %q", e.Summary())
	}
}

func TestSlot_History(t *testing.T) {
	s := NewSlot("09:00", "Reading", "", "")
	s.Log = activity.Log{
		{Kind: activity.KindStarted, At: 0},
		{Kind: activity.KindPaused, At: 3000},
		{Kind: activity.KindStarted, At: 10_000},
		{Kind: activity.KindFinished, At: 20_000},
	}

	lines := s.History(true, time.UTC)
	if len(lines) != 4 {
		t.Fatalf("expected 4 lines, got %d", len(lines))
	}
	if lines[0].IdleGap != 0 {
		t.Errorf("first started should have no idle gap, got %v", lines[0].IdleGap)
	}
	if lines[2].IdleGap != 7*time.Second {
		t.Errorf("resume idle gap = %v, expected 7s", lines[2].IdleGap)
	}

	// Annotation disabled: gaps are dropped but lines remain.
	plain := s.History(false, time.UTC)
	if plain[2].IdleGap != 0 {
		t.Errorf("idle gap should be suppressed when disabled, got %v", plain[2].IdleGap)
	}
}

func TestHistoryLine_String(t *testing.T) {
	at := time.Date(2026, 8, 30, 9, 15, 2, 0, time.UTC)

	plain := HistoryLine{Kind: activity.KindPaused, At: at}
	if got := plain.String(); got != "Paused 09:15:02" {
		t.Errorf("String() = %q, expected %q", got, "Paused 09:15:02")
	}

	annotated := HistoryLine{Kind: activity.KindStarted, At: at, IdleGap: 3*time.Minute + 10*time.Second}
	want := "Started 09:15:02 (idle 00:03:10)"
	if got := annotated.String(); got != want {
		t.Errorf("String() = %q, expected %q", got, want)
	}
}
