// Package remove provides the runners that delete tasks and goals.
package remove

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tableflip.dev/studyplan/pkg/planner"
	"tableflip.dev/studyplan/pkg/printers"
)

// Kind selects which collection the id belongs to.
type Kind string

const (
	KindTask Kind = "task"
	KindGoal Kind = "goal"
)

// Remove deletes a task or goal by id. Confirmation is the caller's job;
// the store deletes unconditionally.
type Remove struct {
	Kind  Kind
	ID    int64
	Store *planner.Store
}

func (n *Remove) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("can not delete, no store")
	}

	pp := printers.PrettyPrint{ShowID: true}

	switch n.Kind {
	case KindTask:
		if err := n.Store.DeleteTask(n.ID); err != nil {
			return err
		}
		pp.Title("Tasks")
		pp.Tasks(time.Now(), n.Store.Tasks()...)
	case KindGoal:
		if err := n.Store.DeleteGoal(n.ID); err != nil {
			return err
		}
		pp.Title("Goals")
		pp.Goals(n.Store.Goals()...)
	default:
		return fmt.Errorf("unknown kind %q", n.Kind)
	}

	return nil
}
