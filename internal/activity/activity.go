// Package activity implements the per-slot timer subsystem: the append-only
// event log, the state machine governing valid timer transitions, and the
// replay algorithm that derives active and idle durations from the log.
package activity

import "errors"

// ErrNoOp signals a rejected timer transition. It is not a failure: rapid
// duplicate clicks and actions on a finished slot are silently ignored by
// callers, which simply leave the slot unchanged.
var ErrNoOp = errors.New("timer transition is a no-op")

// Kind is the type of a timer event.
type Kind string

const (
	KindStarted  Kind = "started"
	KindPaused   Kind = "paused"
	KindFinished Kind = "finished"
)

// Status is the derived state of a slot's timer.
type Status string

const (
	StatusPending  Status = "pending"
	StatusActive   Status = "active"
	StatusPaused   Status = "paused"
	StatusFinished Status = "finished"
)

// Event is a single timestamped timer action. At is Unix milliseconds,
// produced by the local clock at the moment of the user action. Events are
// never mutated or reordered once appended.
type Event struct {
	Kind Kind  `json:"kind"`
	At   int64 `json:"at"`
}

// Log is the ordered, append-only event sequence for one slot.
type Log []Event

// Transition reports the status that results from applying kind to the
// current status, and whether that transition is allowed at all.
//
//	pending  -> started            -> active
//	active   -> paused | finished  -> paused | finished
//	paused   -> started | finished -> active | finished
//	finished -> (terminal)
func Transition(cur Status, k Kind) (Status, bool) {
	switch cur {
	case StatusPending:
		if k == KindStarted {
			return StatusActive, true
		}
	case StatusActive:
		switch k {
		case KindPaused:
			return StatusPaused, true
		case KindFinished:
			return StatusFinished, true
		}
	case StatusPaused:
		switch k {
		case KindStarted:
			return StatusActive, true
		case KindFinished:
			return StatusFinished, true
		}
	}
	return cur, false
}

// Status derives the slot status from the last event in the log. An empty
// log means the timer was never started.
func (l Log) Status() Status {
	if len(l) == 0 {
		return StatusPending
	}
	switch l[len(l)-1].Kind {
	case KindStarted:
		return StatusActive
	case KindPaused:
		return StatusPaused
	case KindFinished:
		return StatusFinished
	}
	return StatusPending
}

// Append validates k against the current derived status and, if allowed,
// returns a new log with the event appended. Rejected transitions return
// the log unchanged along with ErrNoOp. This is the only way events enter a
// log; corrections happen by appending further events, never by editing.
func (l Log) Append(k Kind, at int64) (Log, error) {
	if _, ok := Transition(l.Status(), k); !ok {
		return l, ErrNoOp
	}
	out := make(Log, len(l), len(l)+1)
	copy(out, l)
	return append(out, Event{Kind: k, At: at}), nil
}

// Elapsed replays the full log against now (Unix milliseconds) and returns
// the total milliseconds spent active and paused. It is a pure function of
// (log, now): no cached accumulator is read or written, so it can be re-run
// every tick without drift or double counting.
//
// Unmatched paused/finished events (possible in records imported from older
// schema generations) contribute zero rather than failing. A finished event
// closes any open active interval and permanently stops accrual; idle time
// is never attributed after finish.
func (l Log) Elapsed(now int64) (activeMs, idleMs int64) {
	var openActive, openPause int64 = -1, -1

	for _, e := range l {
		switch e.Kind {
		case KindStarted:
			if openPause >= 0 {
				idleMs += e.At - openPause
				openPause = -1
			}
			openActive = e.At
		case KindPaused:
			if openActive >= 0 {
				activeMs += e.At - openActive
				openActive = -1
			}
			openPause = e.At
		case KindFinished:
			if openActive >= 0 {
				activeMs += e.At - openActive
				openActive = -1
			}
			openPause = -1
		}
	}

	switch l.Status() {
	case StatusActive:
		if openActive >= 0 {
			activeMs += now - openActive
		}
	case StatusPaused:
		if openPause >= 0 {
			idleMs += now - openPause
		}
	}
	return activeMs, idleMs
}

// StartedAt returns the timestamp of the first event, or 0 for an empty log.
func (l Log) StartedAt() int64 {
	if len(l) == 0 {
		return 0
	}
	return l[0].At
}
