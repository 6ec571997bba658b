// Package toggle provides the runner that flips a task's completed flag.
package toggle

import (
	"context"
	"errors"
	"time"

	"tableflip.dev/studyplan/pkg/planner"
	"tableflip.dev/studyplan/pkg/printers"
)

// Toggle flips the completed flag on a task.
type Toggle struct {
	ID    int64
	Store *planner.Store
}

func (n *Toggle) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("can not toggle, no store")
	}

	if _, err := n.Store.ToggleTask(n.ID); err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: true}
	pp.Title("Tasks")
	pp.Tasks(time.Now(), n.Store.Tasks()...)
	return nil
}
