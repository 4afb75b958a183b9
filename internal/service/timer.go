package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/JithinPanicker/day-flow/internal/activity"
	"github.com/JithinPanicker/day-flow/internal/config"
	"github.com/JithinPanicker/day-flow/internal/journal"
	"github.com/JithinPanicker/day-flow/internal/notify"
	"github.com/JithinPanicker/day-flow/internal/store"
)

// ErrNotFound is returned when the entry or slot a timer action targets no
// longer exists (e.g. deleted concurrently). The action is abandoned with no
// mutation; callers surface it as a no-op, not a crash.
var ErrNotFound = errors.New("timer target not found")

// SlotChange describes a slot's derived timer state after an append or a
// tick. It carries everything a display needs to redraw the controls and
// the history list.
type SlotChange struct {
	Date     string
	SlotID   string
	Heading  string
	Status   activity.Status
	ActiveMs int64
	IdleMs   int64
	Log      activity.Log
}

// TimerService applies timer actions to timetable slots. All mutations to a
// day go through a single load-append-save cycle here, so a save completes
// before the next append on the same entry is accepted.
type TimerService struct {
	store *store.Store
	cfg   config.Config

	// OnChange, when set, is invoked after every successful append.
	OnChange func(SlotChange)

	// notification hooks, swappable in tests
	notifySaveFailed func(date string, err error)
	notifyFinished   func(heading, elapsed string)
}

// NewTimerService creates a new TimerService
func NewTimerService(st *store.Store, cfg config.Config) *TimerService {
	return &TimerService{
		store:            st,
		cfg:              cfg,
		notifySaveFailed: func(date string, err error) { _ = notify.SaveFailed(date, err) },
		notifyFinished:   func(heading, elapsed string) { _ = notify.SlotFinished(heading, elapsed) },
	}
}

// Apply validates the requested action against the slot's current status,
// appends the event, persists the entry, and reports the newly derived
// state.
//
// Rejected transitions (double start, action on a finished slot) return the
// current state together with activity.ErrNoOp and change nothing. A
// missing entry or slot returns ErrNotFound and changes nothing. A save
// failure is surfaced both as an error and as a desktop notification, but
// the returned state is already consistent: status and log are updated
// together or not at all.
func (s *TimerService) Apply(date, slotID string, kind activity.Kind, now time.Time) (*SlotChange, error) {
	e, err := s.store.GetByDate(date)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load entry: %w", err)
	}

	slot := e.Slot(slotID)
	if slot == nil {
		return nil, ErrNotFound
	}

	if err := slot.Apply(kind, now); err != nil {
		// Debounce: report current state, mutate nothing.
		change := s.change(e, slot, now)
		return &change, err
	}

	e.Touch(now)
	saveErr := s.store.Save(e)
	if saveErr != nil {
		if s.cfg.Notifications {
			s.notifySaveFailed(date, saveErr)
		}
		saveErr = fmt.Errorf("failed to save entry: %w", saveErr)
	}

	change := s.change(e, slot, now)
	if saveErr == nil {
		if kind == activity.KindFinished && s.cfg.Notifications {
			s.notifyFinished(slot.Heading, activity.FormatHMS(change.ActiveMs))
		}
		if s.OnChange != nil {
			s.OnChange(change)
		}
	}
	return &change, saveErr
}

// Derive recomputes the current timer state of every slot in the day
// without appending anything. This is the read-only replay used by live
// displays.
func (s *TimerService) Derive(date string, now time.Time) ([]SlotChange, error) {
	e, err := s.store.GetByDate(date)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	changes := make([]SlotChange, 0, len(e.Timetable))
	for i := range e.Timetable {
		changes = append(changes, s.change(e, &e.Timetable[i], now))
	}
	return changes, nil
}

func (s *TimerService) change(e *journal.Entry, slot *journal.Slot, now time.Time) SlotChange {
	active, idle := slot.Log.Elapsed(now.UnixMilli())
	return SlotChange{
		Date:     e.Date,
		SlotID:   slot.ID,
		Heading:  slot.Heading,
		Status:   slot.Status,
		ActiveMs: active,
		IdleMs:   idle,
		Log:      slot.Log,
	}
}
