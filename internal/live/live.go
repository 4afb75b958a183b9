// Package live drives the per-second refresh of timer displays. A driver
// owns at most one session: opening a day view replaces any previous
// session, and every tick re-derives slot timer state by replay without
// ever appending events or touching persisted state.
package live

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/JithinPanicker/day-flow/internal/service"
)

// Driver manages the single live session. A monotonically increasing
// session id gates delivery, so a tick raced against Close or a newer Open
// is dropped instead of repainting a stale view.
type Driver struct {
	timers   *service.TimerService
	interval time.Duration

	mu      sync.Mutex
	current uint64
	cancel  context.CancelFunc
}

// NewDriver creates a driver ticking once per second.
func NewDriver(timers *service.TimerService) *Driver {
	return &Driver{timers: timers, interval: time.Second}
}

// Open starts a live session for the given date, replacing any session
// already running. fn receives the freshly derived state of every slot
// immediately and then once per tick, until the session is replaced or
// closed. Returns the session id.
func (d *Driver) Open(date string, fn func([]service.SlotChange)) uint64 {
	d.mu.Lock()
	if d.cancel != nil {
		d.cancel()
	}
	d.current++
	id := d.current
	ctx, cancel := context.WithCancel(context.Background())
	d.cancel = cancel
	d.mu.Unlock()

	go d.run(ctx, id, date, fn)
	return id
}

// Close stops the live session. Unconditional and immediate; safe to call
// with no session open.
func (d *Driver) Close() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.cancel != nil {
		d.cancel()
		d.cancel = nil
	}
	// Retire the id so an in-flight tick cannot deliver after Close.
	d.current++
}

func (d *Driver) run(ctx context.Context, id uint64, date string, fn func([]service.SlotChange)) {
	if !d.push(id, date, fn) {
		return
	}

	ticker := time.NewTicker(d.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if !d.push(id, date, fn) {
				return
			}
		}
	}
}

// push derives and delivers one update. Reports false when the session
// should stop: it has been superseded, or the entry it watched is gone.
func (d *Driver) push(id uint64, date string, fn func([]service.SlotChange)) bool {
	if !d.live(id) {
		return false
	}

	changes, err := d.timers.Derive(date, time.Now())
	if errors.Is(err, service.ErrNotFound) {
		return false
	}
	if err != nil {
		// Transient read failure; skip this tick and try again.
		return true
	}

	if !d.live(id) {
		return false
	}
	fn(changes)
	return true
}

func (d *Driver) live(id uint64) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.current == id && d.cancel != nil
}
