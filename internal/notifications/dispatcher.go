package notifications

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"hatbazar/internal/core/domain/model/notification"
	"hatbazar/internal/core/ports"

	"github.com/google/uuid"
)

// Dispatcher maintains the active in-memory alert queue. It assigns IDs and
// timestamps on Add, plays the audible alert for high-priority entries,
// schedules auto-removal, and serves reads over a snapshot copy.
//
// All methods are safe for concurrent use. Removal is idempotent: removing or
// marking an alert that is already gone is a no-op, so an auto-removal timer
// racing a manual dismissal is harmless.
type Dispatcher struct {
	clock   ports.Clock
	alerter ports.SoundAlerter
	logger  *slog.Logger

	mu     sync.Mutex
	active []notification.Notification
	timers map[string]*time.Timer
	closed bool
}

// NewDispatcher creates a Dispatcher. alerter may be nil when no audible
// alert is available.
func NewDispatcher(clock ports.Clock, alerter ports.SoundAlerter, logger *slog.Logger) *Dispatcher {
	return &Dispatcher{
		clock:   clock,
		alerter: alerter,
		logger:  logger,
		timers:  make(map[string]*time.Timer),
	}
}

// Add queues an alert: assigns a fresh ID and the current timestamp, appends
// it to the active set, plays the audible alert for high priority, and
// schedules auto-removal when requested. It returns the stored alert.
func (d *Dispatcher) Add(ctx context.Context, n notification.Notification) notification.Notification {
	n.ID = uuid.NewString()
	n.Timestamp = d.clock.Now()
	n.Read = false
	if n.AutoRemove && n.Duration <= 0 {
		n.Duration = notification.DefaultDuration
	}

	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		d.logger.Warn("notification dropped: dispatcher closed", "title", n.Title)
		return n
	}
	d.active = append(d.active, n)
	if n.AutoRemove {
		id := n.ID
		d.timers[id] = time.AfterFunc(n.Duration, func() {
			d.Remove(id)
		})
	}
	d.mu.Unlock()

	if n.Priority == notification.PriorityHigh && d.alerter != nil {
		// Best effort: a broken sound device must not affect the queue.
		if err := d.alerter.Play(ctx); err != nil {
			d.logger.Warn("notification sound failed", "error", err)
		}
	}

	return n
}

// Remove dismisses the alert with the given ID and cancels its auto-removal
// timer. Unknown IDs are ignored.
func (d *Dispatcher) Remove(id string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if timer, ok := d.timers[id]; ok {
		timer.Stop()
		delete(d.timers, id)
	}
	for i, n := range d.active {
		if n.ID == id {
			d.active = append(d.active[:i], d.active[i+1:]...)
			return
		}
	}
}

// MarkRead flips the read flag on the alert with the given ID. Unknown IDs
// are ignored.
func (d *Dispatcher) MarkRead(id string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	for i := range d.active {
		if d.active[i].ID == id {
			d.active[i].Read = true
			return
		}
	}
}

// ClearAll dismisses every active alert and cancels all pending timers.
func (d *Dispatcher) ClearAll() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.stopTimersLocked()
	d.active = nil
}

// UnreadCount returns the number of active alerts not yet marked read.
func (d *Dispatcher) UnreadCount() int {
	d.mu.Lock()
	defer d.mu.Unlock()

	count := 0
	for _, n := range d.active {
		if !n.Read {
			count++
		}
	}
	return count
}

// List returns a copy of the active alerts, newest last.
func (d *Dispatcher) List() []notification.Notification {
	d.mu.Lock()
	defer d.mu.Unlock()

	out := make([]notification.Notification, len(d.active))
	copy(out, d.active)
	return out
}

// Close stops all pending timers and rejects further Adds. The active set is
// left readable so shutdown logging can still inspect it.
func (d *Dispatcher) Close() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.closed = true
	d.stopTimersLocked()
}

func (d *Dispatcher) stopTimersLocked() {
	for id, timer := range d.timers {
		timer.Stop()
		delete(d.timers, id)
	}
}
