package activity

import (
	"errors"
	"testing"
)

func TestTransition_Table(t *testing.T) {
	tests := []struct {
		name    string
		cur     Status
		kind    Kind
		want    Status
		allowed bool
	}{
		{"pending start", StatusPending, KindStarted, StatusActive, true},
		{"pending pause rejected", StatusPending, KindPaused, StatusPending, false},
		{"pending finish rejected", StatusPending, KindFinished, StatusPending, false},
		{"active start rejected", StatusActive, KindStarted, StatusActive, false},
		{"active pause", StatusActive, KindPaused, StatusPaused, true},
		{"active finish", StatusActive, KindFinished, StatusFinished, true},
		{"paused start", StatusPaused, KindStarted, StatusActive, true},
		{"paused pause rejected", StatusPaused, KindPaused, StatusPaused, false},
		{"paused finish", StatusPaused, KindFinished, StatusFinished, true},
		{"finished start rejected", StatusFinished, KindStarted, StatusFinished, false},
		{"finished pause rejected", StatusFinished, KindPaused, StatusFinished, false},
		{"finished finish rejected", StatusFinished, KindFinished, StatusFinished, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Transition(tt.cur, tt.kind)
			if ok != tt.allowed {
				t.Errorf("Transition(%s, %s) allowed = %v, expected %v", tt.cur, tt.kind, ok, tt.allowed)
			}
			if got != tt.want {
				t.Errorf("Transition(%s, %s) = %s, expected %s", tt.cur, tt.kind, got, tt.want)
			}
		})
	}
}

func TestLog_Status(t *testing.T) {
	tests := []struct {
		name string
		log  Log
		want Status
	}{
		{"empty log is pending", Log{}, StatusPending},
		{"nil log is pending", nil, StatusPending},
		{"last started is active", Log{{KindStarted, 0}}, StatusActive},
		{"last paused is paused", Log{{KindStarted, 0}, {KindPaused, 100}}, StatusPaused},
		{"last finished is finished", Log{{KindStarted, 0}, {KindFinished, 100}}, StatusFinished},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.log.Status(); got != tt.want {
				t.Errorf("Status() = %s, expected %s", got, tt.want)
			}
		})
	}
}

// Status must always equal the mapping of the last event's kind after every
// successful append.
func TestLog_Append_StatusLogInvariant(t *testing.T) {
	var log Log
	var err error

	steps := []struct {
		kind Kind
		want Status
	}{
		{KindStarted, StatusActive},
		{KindPaused, StatusPaused},
		{KindStarted, StatusActive},
		{KindFinished, StatusFinished},
	}

	at := int64(1000)
	for _, step := range steps {
		log, err = log.Append(step.kind, at)
		if err != nil {
			t.Fatalf("Append(%s) unexpected error: %v", step.kind, err)
		}
		if got := log.Status(); got != step.want {
			t.Errorf("after Append(%s): Status() = %s, expected %s", step.kind, got, step.want)
		}
		if last := log[len(log)-1]; last.Kind != step.kind || last.At != at {
			t.Errorf("last event = %+v, expected {%s %d}", last, step.kind, at)
		}
		at += 1000
	}
}

// Rapid double-click: the second identical append must be a no-op, changing
// the log length by exactly 1, not 2.
func TestLog_Append_DoubleStartDebounced(t *testing.T) {
	var log Log

	log, err := log.Append(KindStarted, 100)
	if err != nil {
		t.Fatalf("first Append(started) unexpected error: %v", err)
	}

	again, err := log.Append(KindStarted, 150)
	if !errors.Is(err, ErrNoOp) {
		t.Fatalf("second Append(started) error = %v, expected ErrNoOp", err)
	}
	if len(again) != 1 {
		t.Errorf("log length after double start = %d, expected 1", len(again))
	}
	if again.Status() != StatusActive {
		t.Errorf("status after double start = %s, expected active", again.Status())
	}
}

func TestLog_Append_FinishedIsTerminal(t *testing.T) {
	log := Log{{KindStarted, 0}, {KindPaused, 2000}, {KindFinished, 2000}}

	for _, k := range []Kind{KindStarted, KindPaused, KindFinished} {
		got, err := log.Append(k, 5000)
		if !errors.Is(err, ErrNoOp) {
			t.Errorf("Append(%s) on finished log: error = %v, expected ErrNoOp", k, err)
		}
		if len(got) != 3 {
			t.Errorf("Append(%s) on finished log mutated it: length %d", k, len(got))
		}
	}
}

func TestLog_Append_DoesNotMutateReceiver(t *testing.T) {
	log := Log{{KindStarted, 0}}
	log = append(log, Event{KindPaused, 100}) // leave spare capacity behind

	paused := log
	resumed, err := paused.Append(KindStarted, 200)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := paused.Append(KindFinished, 300); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resumed[2].Kind != KindStarted {
		t.Errorf("sibling append overwrote event: got %s, expected started", resumed[2].Kind)
	}
}

func TestLog_Elapsed(t *testing.T) {
	tests := []struct {
		name       string
		log        Log
		now        int64
		wantActive int64
		wantIdle   int64
	}{
		{
			name: "empty log",
			log:  Log{},
			now:  5000,
		},
		{
			// Scenario: single open started interval extends to the live clock.
			name:       "single started event",
			log:        Log{{KindStarted, 0}},
			now:        5000,
			wantActive: 5000,
		},
		{
			// Scenario: start, pause, resume; both buckets accrue.
			name:       "start pause resume",
			log:        Log{{KindStarted, 0}, {KindPaused, 3000}, {KindStarted, 4000}},
			now:        9000,
			wantActive: 8000, // (3000-0) + (9000-4000)
			wantIdle:   1000, // 4000-3000
		},
		{
			// Scenario: finished log ignores now entirely.
			name:       "paused then finished",
			log:        Log{{KindStarted, 0}, {KindPaused, 2000}, {KindFinished, 2000}},
			now:        99999,
			wantActive: 2000,
		},
		{
			name:     "open pause accrues idle to now",
			log:      Log{{KindStarted, 0}, {KindPaused, 3000}},
			now:      10000,
			wantIdle: 7000,
		},
		{
			name:     "open pause accrues idle to now with prior active",
			log:      Log{{KindStarted, 1000}, {KindPaused, 3000}},
			now:      10000,
			wantIdle: 7000,
		},
		{
			name:       "finished while active",
			log:        Log{{KindStarted, 1000}, {KindFinished, 6000}},
			now:        99999,
			wantActive: 5000,
		},
		{
			// Legacy data: unmatched pause contributes zero.
			name:     "malformed leading pause",
			log:      Log{{KindPaused, 1000}},
			now:      5000,
			wantIdle: 4000, // open pause still extends to now; no active ever accrued
		},
		{
			// Legacy data: unmatched finish contributes zero.
			name: "malformed lone finish",
			log:  Log{{KindFinished, 1000}},
			now:  5000,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			active, idle := tt.log.Elapsed(tt.now)
			if active != tt.wantActive {
				t.Errorf("activeMs = %d, expected %d", active, tt.wantActive)
			}
			if idle != tt.wantIdle {
				t.Errorf("idleMs = %d, expected %d", idle, tt.wantIdle)
			}
		})
	}
}

// For a strictly alternating log ending in finished, active + idle must
// exactly cover the span from the first to the last event.
func TestLog_Elapsed_Conservation(t *testing.T) {
	log := Log{
		{KindStarted, 1000},
		{KindPaused, 4000},
		{KindStarted, 6500},
		{KindPaused, 9000},
		{KindStarted, 9100},
		{KindFinished, 12000},
	}

	active, idle := log.Elapsed(99999)
	span := log[len(log)-1].At - log[0].At
	if active+idle != span {
		t.Errorf("activeMs + idleMs = %d, expected span %d", active+idle, span)
	}
	if active != 8400 {
		t.Errorf("activeMs = %d, expected 8400", active)
	}
	if idle != 2600 {
		t.Errorf("idleMs = %d, expected 2600", idle)
	}
}

// Two derivations over an unchanged active log must differ by exactly the
// clock delta. This is what keeps the live counter monotonic.
func TestLog_Elapsed_MonotonicLiveCounter(t *testing.T) {
	log := Log{{KindStarted, 0}, {KindPaused, 3000}, {KindStarted, 4000}}

	a1, i1 := log.Elapsed(9000)
	a2, i2 := log.Elapsed(9750)
	if a2-a1 != 750 {
		t.Errorf("activeMs delta = %d, expected 750", a2-a1)
	}
	if i1 != i2 {
		t.Errorf("idleMs changed between ticks: %d -> %d", i1, i2)
	}
}

// Replaying repeatedly with the same now must always give the same answer.
func TestLog_Elapsed_Idempotent(t *testing.T) {
	log := Log{{KindStarted, 0}, {KindPaused, 3000}, {KindStarted, 4000}}

	a1, i1 := log.Elapsed(9000)
	for i := 0; i < 5; i++ {
		a, idle := log.Elapsed(9000)
		if a != a1 || idle != i1 {
			t.Fatalf("replay %d: (%d, %d), expected (%d, %d)", i, a, idle, a1, i1)
		}
	}
}

func TestLog_StartedAt(t *testing.T) {
	if got := (Log{}).StartedAt(); got != 0 {
		t.Errorf("StartedAt() on empty log = %d, expected 0", got)
	}
	log := Log{{KindStarted, 1234}, {KindPaused, 2000}}
	if got := log.StartedAt(); got != 1234 {
		t.Errorf("StartedAt() = %d, expected 1234", got)
	}
}

func TestFormatHMS(t *testing.T) {
	tests := []struct {
		name string
		ms   int64
		want string
	}{
		{"zero", 0, "00:00:00"},
		{"sub-second truncates", 999, "00:00:00"},
		{"one second", 1000, "00:00:01"},
		{"one minute", 60_000, "00:01:00"},
		{"one hour", 3_600_000, "01:00:00"},
		{"mixed", 3_725_000, "01:02:05"},
		{"over a day keeps counting hours", 90_000_000, "25:00:00"},
		{"negative clamps to zero", -5000, "00:00:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatHMS(tt.ms); got != tt.want {
				t.Errorf("FormatHMS(%d) = %q, expected %q", tt.ms, got, tt.want)
			}
		})
	}
}

func TestKind_Label(t *testing.T) {
	if KindStarted.Label() != "Started" || KindPaused.Label() != "Paused" || KindFinished.Label() != "Finished" {
		t.Error("unexpected label for a known kind")
	}
	if got := Kind("weird").Label(); got != "weird" {
		t.Errorf("unknown kind label = %q, expected passthrough", got)
	}
}
