package contract

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// relativeTimeRe captures "N [units] ago", e.g. "2 weeks ago".
var relativeTimeRe = regexp.MustCompile(`^(\d+)\s+(year|month|week|day|hour|minute)s?\s+ago$`)

// windowRe captures bare windows like "30 days" or "6 months".
var windowRe = regexp.MustCompile(`^(\d+)\s+(year|month|week|day|hour|minute)s?$`)

// ParseTimeBound converts a user-supplied time bound into an absolute time.
// Accepted forms, tried in order: RFC3339 ("2024-01-15T10:30:00Z"), a plain
// date ("2024-01-15"), a relative phrase ("2 weeks ago"), and a bare window
// ("30 days", meaning that far back from now).
func ParseTimeBound(s string, now time.Time) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("empty time bound")
	}

	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}

	lower := strings.ToLower(s)
	if m := relativeTimeRe.FindStringSubmatch(lower); m != nil {
		return applyUnits(now, m[1], m[2])
	}
	if m := windowRe.FindStringSubmatch(lower); m != nil {
		return applyUnits(now, m[1], m[2])
	}

	return time.Time{}, fmt.Errorf("invalid time bound format: %s", s)
}

// applyUnits steps back from now by value*unit. Calendar-aware units go
// through AddDate so "1 month ago" lands on the same day number.
func applyUnits(now time.Time, valueStr, unit string) (time.Time, error) {
	value, _ := strconv.Atoi(valueStr)
	switch unit {
	case "year":
		return now.AddDate(-value, 0, 0), nil
	case "month":
		return now.AddDate(0, -value, 0), nil
	case "week":
		return now.Add(time.Duration(-value) * 7 * 24 * time.Hour), nil
	case "day":
		return now.Add(time.Duration(-value) * 24 * time.Hour), nil
	case "hour":
		return now.Add(time.Duration(-value) * time.Hour), nil
	case "minute":
		return now.Add(time.Duration(-value) * time.Minute), nil
	default:
		// Should be caught by the regex, but good for safety
		return time.Time{}, fmt.Errorf("unsupported time unit: %s", unit)
	}
}
