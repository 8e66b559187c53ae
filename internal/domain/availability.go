package domain

import (
	"errors"
	"time"
)

var (
	// ErrPastDate is returned when the candidate range starts before today.
	ErrPastDate = errors.New("domain: check-in date is in the past")

	// ErrMinimumStay is returned when the candidate range is shorter than
	// the cabin's minimum stay.
	ErrMinimumStay = errors.New("domain: stay is shorter than the minimum")

	// ErrDateConflict is returned when the candidate range overlaps an
	// existing reservation.
	ErrDateConflict = errors.New("domain: dates conflict with an existing reservation")
)

// CheckAvailability decides whether a candidate range may be booked against
// the cabin's reserved intervals and minimum-stay policy.
//
// Rejections are checked in a fixed order - past date, then minimum stay,
// then conflict - so the caller always surfaces the first applicable reason.
// The order is part of the contract: user-facing messaging depends on it.
//
// The minimum-stay rule counts nights, one fewer than the inclusive days
// of the range: a July 16..17 range is one night. A single-day candidate
// (Start == End) is exempt from the check: it is an incomplete calendar
// selection, not a real stay yet.
//
// On success returns the priced day count (inclusive days of the range).
func CheckAvailability(candidate DateRange, reserved []ReservedInterval, minimumNights int, today time.Time) (int, error) {
	if candidate.Start.Before(Midnight(today)) {
		return 0, ErrPastDate
	}

	if !candidate.IsSingleDay() && candidate.Nights() < minimumNights {
		return 0, ErrMinimumStay
	}

	for _, r := range reserved {
		if candidate.Overlaps(r.Range) {
			return 0, ErrDateConflict
		}
	}

	return candidate.Days(), nil
}
