// Package progress provides the runner that sets a goal's progress.
package progress

import (
	"context"
	"errors"

	"tableflip.dev/studyplan/pkg/planner"
	"tableflip.dev/studyplan/pkg/printers"
)

// Progress sets a goal's progress to an absolute percentage. Out-of-range
// values clamp to [0,100] rather than erroring.
type Progress struct {
	ID    int64
	Value int
	Store *planner.Store
}

func (n *Progress) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("can not update progress, no store")
	}

	if _, err := n.Store.SetGoalProgress(n.ID, n.Value); err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: true}
	pp.Title("Goals")
	pp.Goals(n.Store.Goals()...)
	return nil
}
