package calendar

import (
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// Date formats tried in priority order: ISO, day-first, month-first. Anything
// else falls through to the generic parser. The day-first/month-first order
// is a policy decision carried over from the source data, not a correctness
// guarantee; integrators with US-style sheets should reorder.
var dateLayouts = []string{
	"2006-01-02",
	"02/01/2006",
	"01/02/2006",
}

var clockLayouts = []string{
	"15:04",
	"15:04:05",
}

// ParseDate normalizes a raw date cell to a date-only time.Time. The second
// return value is false when no recognized format matches; callers treat
// that as "field absent", not as an error.
func ParseDate(raw string) (time.Time, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return time.Time{}, false
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return dateOnly(t), true
		}
	}

	if t, err := dateparse.ParseAny(s); err == nil {
		return dateOnly(t), true
	}

	return time.Time{}, false
}

// ParseClock normalizes a raw time cell to a time of day, truncated to
// minute precision. Datetime-shaped values yield their time component.
func ParseClock(raw string) (Clock, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return Clock{}, false
	}

	for _, layout := range clockLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return Clock{Hour: t.Hour(), Minute: t.Minute()}, true
		}
	}

	if t, err := dateparse.ParseAny(s); err == nil {
		return Clock{Hour: t.Hour(), Minute: t.Minute()}, true
	}

	return Clock{}, false
}

var truthyValues = map[string]bool{
	"true":        true,
	"yes":         true,
	"y":           true,
	"1":           true,
	"transparent": true,
	"free":        true,
}

// ParseBool reports whether a raw cell matches the fixed truthy vocabulary.
// Anything else, including an absent value, is false.
func ParseBool(raw string) bool {
	return truthyValues[strings.ToLower(strings.TrimSpace(raw))]
}

var sentinelValues = map[string]bool{
	"nan":  true,
	"null": true,
	"none": true,
}

// CleanText trims whitespace and maps null-like placeholder values ("nan",
// "null", "none", case-insensitive) to the empty string so spreadsheet
// sentinels never leak into a rendered feed.
func CleanText(raw string) string {
	s := strings.TrimSpace(raw)
	if sentinelValues[strings.ToLower(s)] {
		return ""
	}
	return s
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
