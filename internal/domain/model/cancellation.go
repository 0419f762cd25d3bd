package model

import (
	"errors"
	"strings"
	"time"
)

// CancelCutoff is the minimum lead time before a booking's start at which a
// regular user may still cancel it. Admin cancellations bypass the cutoff.
const CancelCutoff = 12 * time.Hour

var errUnparsableStart = errors.New("unparsable booking start")

// Layouts the backend has been observed to emit for dates and clock times.
// The sheet sometimes returns plain values and sometimes full ISO timestamps.
var (
	dateLayouts = []string{"2006-01-02", time.RFC3339, "2006-01-02T15:04:05.000Z07:00"}
	timeLayouts = []string{"15:04", "15:04:05", time.RFC3339, "2006-01-02T15:04:05.000Z07:00"}
)

// BookingStart resolves a booking's starting instant from its date and
// startTime fields. Both fields arrive as strings in backend-defined formats;
// the date contributes the calendar day and startTime the clock time.
func BookingStart(b Booking) (time.Time, error) {
	day, err := parseFirst(b.Date, dateLayouts)
	if err != nil {
		return time.Time{}, err
	}
	clock, err := parseFirst(b.StartTime, timeLayouts)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(
		day.Year(), day.Month(), day.Day(),
		clock.Hour(), clock.Minute(), clock.Second(), 0,
		time.Local,
	), nil
}

// CanCancel reports whether a regular user may still cancel the booking at
// the given instant: the booking must start at least CancelCutoff from now.
// The boundary is inclusive; exactly 12 hours out is still cancellable.
// A booking whose start cannot be parsed is never offered for cancellation.
func CanCancel(b Booking, now time.Time) bool {
	start, err := BookingStart(b)
	if err != nil {
		return false
	}
	return start.Sub(now) >= CancelCutoff
}

func parseFirst(value string, layouts []string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, errUnparsableStart
	}
	for _, layout := range layouts {
		if t, err := time.ParseInLocation(layout, value, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, errUnparsableStart
}
