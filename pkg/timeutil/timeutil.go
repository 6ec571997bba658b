// Package timeutil holds small date helpers shared by the CLI and views.
package timeutil

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// DefaultWindow is the fallback deadline window used when none is provided.
const DefaultWindow = "1w"

var (
	windowPattern = regexp.MustCompile(`^\s*(\d+)\s*([a-z]+)`)
	unitMap       = map[string]time.Duration{
		"m":     time.Minute,
		"min":   time.Minute,
		"h":     time.Hour,
		"hr":    time.Hour,
		"hour":  time.Hour,
		"hours": time.Hour,
		"d":     24 * time.Hour,
		"day":   24 * time.Hour,
		"days":  24 * time.Hour,
		"w":     7 * 24 * time.Hour,
		"wk":    7 * 24 * time.Hour,
		"week":  7 * 24 * time.Hour,
		"weeks": 7 * 24 * time.Hour,
	}
)

// ParseWindow parses a human-friendly duration string (for example "1w",
// "3d", or "1w2d6h") into a duration. Empty input means the default window
// of one week.
func ParseWindow(input string) (time.Duration, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		trimmed = DefaultWindow
	}

	remaining := strings.ToLower(trimmed)
	total := time.Duration(0)
	for len(remaining) > 0 {
		matches := windowPattern.FindStringSubmatch(remaining)
		if len(matches) != 3 {
			return 0, fmt.Errorf("invalid duration segment %q", strings.TrimSpace(remaining))
		}
		value, err := strconv.ParseInt(matches[1], 10, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid duration value %q: %w", matches[1], err)
		}
		base, ok := unitMap[matches[2]]
		if !ok {
			return 0, fmt.Errorf("unsupported duration unit %q", matches[2])
		}
		total += time.Duration(value) * base

		remaining = remaining[len(matches[0]):]
	}

	if total <= 0 {
		return 0, fmt.Errorf("duration must be greater than zero")
	}
	return total, nil
}

var whenLayouts = []string{
	"2006-01-02 15:04",
	"2006-01-02T15:04",
	time.RFC3339,
	"2006-01-02",
	"January 2, 2006",
}

// ParseWhen parses a user-supplied date or date-time in any of the accepted
// layouts, interpreted in local time.
func ParseWhen(input string) (time.Time, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return time.Time{}, fmt.Errorf("a date is required")
	}
	for _, layout := range whenLayouts {
		if t, err := time.ParseInLocation(layout, trimmed, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q (try 2006-01-02 or 2006-01-02 15:04)", trimmed)
}

// StartOfDay truncates t to midnight in its own location.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
