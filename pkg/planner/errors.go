package planner

import "fmt"

// ValidationError reports a required field that is missing or empty on a
// create operation. The operation is aborted and nothing is persisted.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("planner: invalid %s: %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("planner: %s is required", e.Field)
}

// NotFoundError reports an operation against an id that is not present in
// the relevant collection.
type NotFoundError struct {
	Kind string
	ID   int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("planner: no %s with id %d", e.Kind, e.ID)
}

// PersistenceError wraps a storage adapter failure. The in-memory mutation
// has already been applied when a write fails; the next successful mutation
// re-persists the full collection.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("planner: persist %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
