package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/JithinPanicker/day-flow/internal/journal"
	"github.com/JithinPanicker/day-flow/internal/store"
)

// Entry-specific errors
var (
	ErrEmptyHeading  = errors.New("slot heading cannot be empty")
	ErrEmptyTarget   = errors.New("target text cannot be empty")
	ErrTargetIndex   = errors.New("target index out of range")
	ErrUnknownSlot   = errors.New("no such slot")
	ErrEntryNotFound = store.ErrNotFound
)

// EntryService provides CRUD operations over day entries.
type EntryService struct {
	store *store.Store
}

// NewEntryService creates a new EntryService
func NewEntryService(st *store.Store) *EntryService {
	return &EntryService{store: st}
}

// Get loads the entry for a date. Returns store.ErrNotFound if the day has
// no entry yet.
func (s *EntryService) Get(date string) (*journal.Entry, error) {
	return s.store.GetByDate(date)
}

// GetOrCreate loads the entry for a date, creating and persisting an empty
// one when the day has no entry yet.
func (s *EntryService) GetOrCreate(date string) (*journal.Entry, error) {
	e, err := s.store.GetByDate(date)
	if err == nil {
		return e, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return nil, err
	}

	e = journal.NewEntry(date)
	if err := s.save(e); err != nil {
		return nil, fmt.Errorf("failed to create entry for %s: %w", date, err)
	}
	return e, nil
}

// SetJournal replaces the day's journal text.
func (s *EntryService) SetJournal(date, text string) (*journal.Entry, error) {
	e, err := s.GetOrCreate(date)
	if err != nil {
		return nil, err
	}
	e.Journal = strings.TrimSpace(text)
	if err := s.save(e); err != nil {
		return nil, err
	}
	return e, nil
}

// AddSlot appends a timetable slot to the day and returns it.
func (s *EntryService) AddSlot(date, timeOfDay, heading, description, link string) (*journal.Entry, *journal.Slot, error) {
	heading = strings.TrimSpace(heading)
	if heading == "" {
		return nil, nil, ErrEmptyHeading
	}

	e, err := s.GetOrCreate(date)
	if err != nil {
		return nil, nil, err
	}

	slot := journal.NewSlot(timeOfDay, heading, strings.TrimSpace(description), strings.TrimSpace(link))
	e.Timetable = append(e.Timetable, slot)
	if err := s.save(e); err != nil {
		return nil, nil, err
	}
	return e, e.Slot(slot.ID), nil
}

// RemoveSlot deletes a slot, and with it the slot's entire event log.
func (s *EntryService) RemoveSlot(date, slotID string) (*journal.Entry, error) {
	e, err := s.Get(date)
	if err != nil {
		return nil, err
	}

	for i := range e.Timetable {
		if e.Timetable[i].ID == slotID {
			e.Timetable = append(e.Timetable[:i], e.Timetable[i+1:]...)
			if err := s.save(e); err != nil {
				return nil, err
			}
			return e, nil
		}
	}
	return nil, ErrUnknownSlot
}

// AddTarget appends a daily target.
func (s *EntryService) AddTarget(date, text string) (*journal.Entry, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyTarget
	}

	e, err := s.GetOrCreate(date)
	if err != nil {
		return nil, err
	}
	e.Targets = append(e.Targets, journal.Target{Text: text})
	if err := s.save(e); err != nil {
		return nil, err
	}
	return e, nil
}

// ToggleTarget flips the done flag of the 1-based nth target.
func (s *EntryService) ToggleTarget(date string, index int) (*journal.Entry, error) {
	e, err := s.Get(date)
	if err != nil {
		return nil, err
	}
	if index < 1 || index > len(e.Targets) {
		return nil, ErrTargetIndex
	}
	e.Targets[index-1].Done = !e.Targets[index-1].Done
	if err := s.save(e); err != nil {
		return nil, err
	}
	return e, nil
}

// Recent lists up to limit entries, newest first.
func (s *EntryService) Recent(limit int) ([]*journal.Entry, error) {
	return s.store.Recent(limit)
}

// Delete removes the day entry permanently.
func (s *EntryService) Delete(date string) error {
	return s.store.Delete(date)
}

func (s *EntryService) save(e *journal.Entry) error {
	e.Touch(time.Now())
	return s.store.Save(e)
}
