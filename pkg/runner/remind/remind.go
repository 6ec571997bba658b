// Package remind provides the runner that watches for due reminders.
package remind

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tableflip.dev/studyplan/pkg/planner"
	"tableflip.dev/studyplan/pkg/printers"
	"tableflip.dev/studyplan/pkg/schedule"
)

// Remind runs the reminder scheduler until the context is cancelled,
// printing a notification each time a reminder fires.
type Remind struct {
	Store    *planner.Store
	Interval time.Duration

	// Once runs a single sweep instead of the periodic loop.
	Once bool
}

func (n *Remind) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("can not remind, no store")
	}

	pp := printers.PrettyPrint{}
	s := schedule.New(n.Store, n.Interval)

	if n.Once {
		fired, err := s.CheckNow(time.Now())
		for _, notification := range fired {
			pp.Notification(notification)
		}
		if len(fired) == 0 {
			fmt.Println("no reminders due")
		}
		return err
	}

	fmt.Println("watching reminders, ctrl-c to stop")
	for notification := range s.Run(ctx) {
		pp.Notification(notification)
	}
	return nil
}
