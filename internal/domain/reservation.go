package domain

import (
	"sort"
	"time"
)

// ReservedInterval is an occupied date range of a cabin, sourced verbatim
// from the booking backend's reservation list. Its lifecycle is owned by
// the backend; the gateway only reads it.
type ReservedInterval struct {
	Range         DateRange
	ReservationID int64
}

// DisabledDays returns the union of every calendar day covered by the given
// reserved intervals, sorted ascending. Used for render-time calendar
// decoration only; enforcement happens in CheckAvailability.
func DisabledDays(reserved []ReservedInterval) []time.Time {
	seen := make(map[time.Time]struct{})
	for _, r := range reserved {
		for _, day := range r.Range.EachDay() {
			seen[day] = struct{}{}
		}
	}

	days := make([]time.Time, 0, len(seen))
	for day := range seen {
		days = append(days, day)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })

	return days
}

// GuestInfo is the contact information collected during checkout.
type GuestInfo struct {
	Name  string
	Email string
	Phone string
}

// BookingDraft is a confirmed date selection on its way through checkout.
// It exists from the moment the guest submits the checkout form until the
// checkout session reaches a terminal state.
type BookingDraft struct {
	UserID     int64
	CabinID    int64
	CabinName  string
	Range      DateRange
	Guest      *GuestInfo // nil when the authenticated party is already known to the backend
	TotalPrice float64
}
