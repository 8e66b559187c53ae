package domain

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidRange is returned when a date range is constructed with the end
// day before the start day. Callers must not silently swap reversed input:
// the HTTP layer rejects it as a bad request.
var ErrInvalidRange = errors.New("domain: invalid date range, end is before start")

// DateRange is a closed range of calendar days [Start, End].
// Both bounds are normalized to midnight UTC; a single-day range has
// Start == End. The value is immutable once constructed.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// NewDateRange builds a DateRange from two calendar days.
// Time-of-day components are discarded. Returns ErrInvalidRange when the
// end day precedes the start day.
func NewDateRange(start, end time.Time) (DateRange, error) {
	s := Midnight(start)
	e := Midnight(end)
	if e.Before(s) {
		return DateRange{}, fmt.Errorf("%w: %s > %s", ErrInvalidRange, s.Format(DateFormat), e.Format(DateFormat))
	}
	return DateRange{Start: s, End: e}, nil
}

// Midnight truncates a timestamp to its calendar day in UTC.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Days returns the inclusive number of calendar days covered by the range.
// A single-day range counts as 1.
func (r DateRange) Days() int {
	return int(r.End.Sub(r.Start).Hours()/24) + 1
}

// Nights returns the number of nights spent in the range, one fewer than
// its inclusive days. A single-day range counts as 0.
func (r DateRange) Nights() int {
	return r.Days() - 1
}

// IsSingleDay reports whether the range covers exactly one calendar day.
// A single-day range is how an incomplete calendar selection (one click)
// reaches the availability check.
func (r DateRange) IsSingleDay() bool {
	return r.Start.Equal(r.End)
}

// Overlaps reports whether two closed ranges share at least one calendar
// day. Boundary touching counts: a stay ending on day N conflicts with a
// stay starting on day N.
func (r DateRange) Overlaps(other DateRange) bool {
	return !r.Start.After(other.End) && !other.Start.After(r.End)
}

// Contains reports whether the given calendar day falls inside the range.
func (r DateRange) Contains(day time.Time) bool {
	d := Midnight(day)
	return !d.Before(r.Start) && !d.After(r.End)
}

// EachDay returns every calendar day of the range in order.
// The result is derived purely from the range bounds, so repeated calls
// always yield the same sequence.
func (r DateRange) EachDay() []time.Time {
	days := make([]time.Time, 0, r.Days())
	for d := r.Start; !d.After(r.End); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

// String formats the range as "YYYY-MM-DD..YYYY-MM-DD" for logging.
func (r DateRange) String() string {
	return r.Start.Format(DateFormat) + ".." + r.End.Format(DateFormat)
}
