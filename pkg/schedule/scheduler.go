// Package schedule fires reminder notifications when their due time passes.
package schedule

import (
	"context"
	"fmt"
	"os"
	"time"

	"tableflip.dev/studyplan/pkg/planner"
)

// DefaultInterval matches the web planner's once-a-minute reminder sweep.
const DefaultInterval = time.Minute

// Notification is emitted once per reminder, the first time a check observes
// its due time has passed.
type Notification struct {
	ID      int64
	Title   string
	Message string
	Due     time.Time
}

// Scheduler periodically asks the planner store to trigger due reminders.
// Each reminder fires at most once; reminders due in the same sweep fire in
// collection order.
type Scheduler struct {
	store    *planner.Store
	interval time.Duration
	now      func() time.Time
}

// New returns a Scheduler over the given store. A non-positive interval
// falls back to DefaultInterval.
func New(store *planner.Store, interval time.Duration) *Scheduler {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Scheduler{store: store, interval: interval, now: time.Now}
}

// CheckNow runs a single sweep and returns the notifications for reminders
// that became triggered, in collection order.
func (s *Scheduler) CheckNow(now time.Time) ([]Notification, error) {
	fired, err := s.store.TriggerDueReminders(now)
	out := make([]Notification, 0, len(fired))
	for _, r := range fired {
		out = append(out, Notification{
			ID:      r.ID,
			Title:   r.Title,
			Message: r.Message,
			Due:     r.DateTime.Time,
		})
	}
	return out, err
}

// Run sweeps immediately and then on every tick until ctx is cancelled,
// streaming notifications on the returned channel. The channel closes when
// ctx is done. Slow consumers lose notifications rather than stalling the
// sweep.
func (s *Scheduler) Run(ctx context.Context) <-chan Notification {
	events := make(chan Notification, 64)

	go func() {
		defer close(events)

		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		sweep := func() {
			fired, err := s.CheckNow(s.now())
			if err != nil {
				// The triggered flags did not reach disk; after a restart
				// these reminders fire again.
				fmt.Fprintf(os.Stderr, "schedule: sweep: %v\n", err)
			}
			for _, n := range fired {
				select {
				case events <- n:
				default:
				}
			}
		}

		sweep()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				sweep()
			}
		}
	}()

	return events
}
