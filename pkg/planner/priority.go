// Package planner owns the study planner's task, goal, and reminder
// collections and the mutation operations over them.
package planner

import (
	"fmt"
	"strings"
)

// Priority identifies how urgent a task is.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// AllPriorities returns the list of supported task priorities.
func AllPriorities() []Priority {
	return []Priority{
		PriorityLow,
		PriorityMedium,
		PriorityHigh,
	}
}

// ParsePriority converts a string to a Priority or returns an error for
// unknown values. Empty input defaults to medium.
func ParsePriority(raw string) (Priority, error) {
	p := Priority(strings.ToLower(strings.TrimSpace(raw)))
	if p == "" {
		return PriorityMedium, nil
	}
	for _, candidate := range AllPriorities() {
		if candidate == p {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("planner: unknown priority %q", raw)
}
