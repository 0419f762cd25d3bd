package util //nolint:revive // package name util hosts shared formatting helpers used across HTTP templates

import (
	"strings"
	"time"
)

// InvalidDateText is shown when a date or time value cannot be parsed.
// Formatters never fail; malformed backend values degrade to this marker.
const InvalidDateText = "Invalid Date"

var displayDateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05.000Z07:00",
	"Jan 2, 2006",
}

var displayTimeLayouts = []string{
	"15:04",
	"15:04:05",
	time.RFC3339,
	"2006-01-02T15:04:05.000Z07:00",
}

// FormatDate renders a backend date value for display, e.g. "Mar 20, 2026".
// Already-formatted values pass through unchanged.
func FormatDate(value string) string {
	t, ok := parseAny(value, displayDateLayouts)
	if !ok {
		return InvalidDateText
	}
	return t.Format("Jan 2, 2006")
}

// FormatTime renders a backend time value as a short clock time, e.g. "14:30".
func FormatTime(value string) string {
	t, ok := parseAny(value, displayTimeLayouts)
	if !ok {
		return InvalidDateText
	}
	return t.Format("15:04")
}

func parseAny(value string, layouts []string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}
	for _, layout := range layouts {
		if t, err := time.ParseInLocation(layout, value, time.Local); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
