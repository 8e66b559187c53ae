package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func reservedJuly10to15(t *testing.T) []ReservedInterval {
	t.Helper()
	return []ReservedInterval{
		{Range: mustRange(t, day(2024, 7, 10), day(2024, 7, 15)), ReservationID: 101},
	}
}

func TestCheckAvailability_Success(t *testing.T) {
	candidate := mustRange(t, day(2024, 7, 16), day(2024, 7, 20))

	nights, err := CheckAvailability(candidate, reservedJuly10to15(t), 2, day(2024, 7, 1))
	require.NoError(t, err)
	assert.Equal(t, 5, nights)
}

func TestCheckAvailability_BoundaryTouchConflicts(t *testing.T) {
	candidate := mustRange(t, day(2024, 7, 15), day(2024, 7, 18))

	_, err := CheckAvailability(candidate, reservedJuly10to15(t), 2, day(2024, 7, 1))
	require.ErrorIs(t, err, ErrDateConflict)
}

func TestCheckAvailability_PastDate(t *testing.T) {
	candidate := mustRange(t, day(2024, 6, 1), day(2024, 6, 3))

	_, err := CheckAvailability(candidate, nil, 2, day(2024, 7, 1))
	require.ErrorIs(t, err, ErrPastDate)
}

func TestCheckAvailability_MinimumStay(t *testing.T) {
	candidate := mustRange(t, day(2024, 7, 16), day(2024, 7, 17))

	_, err := CheckAvailability(candidate, nil, 3, day(2024, 7, 1))
	require.ErrorIs(t, err, ErrMinimumStay)
}

func TestCheckAvailability_MinimumStayCountsNights(t *testing.T) {
	// 16..17 - это одна ночь, а не два дня: двухдневный диапазон
	// не проходит минимум в две ночи
	candidate := mustRange(t, day(2024, 7, 16), day(2024, 7, 17))

	_, err := CheckAvailability(candidate, nil, 2, day(2024, 7, 1))
	require.ErrorIs(t, err, ErrMinimumStay)

	// Ровно minimumNights ночей уже достаточно
	days, err := CheckAvailability(mustRange(t, day(2024, 7, 16), day(2024, 7, 18)), nil, 2, day(2024, 7, 1))
	require.NoError(t, err)
	assert.Equal(t, 3, days)
}

func TestCheckAvailability_PastDateWinsOverConflict(t *testing.T) {
	// A candidate that is both in the past and conflicting must report
	// the past date, never the conflict
	reserved := []ReservedInterval{
		{Range: mustRange(t, day(2024, 6, 1), day(2024, 6, 10)), ReservationID: 7},
	}
	candidate := mustRange(t, day(2024, 6, 1), day(2024, 6, 3))

	_, err := CheckAvailability(candidate, reserved, 2, day(2024, 7, 1))
	require.ErrorIs(t, err, ErrPastDate)
}

func TestCheckAvailability_MinimumStayWinsOverConflict(t *testing.T) {
	candidate := mustRange(t, day(2024, 7, 14), day(2024, 7, 15))

	_, err := CheckAvailability(candidate, reservedJuly10to15(t), 3, day(2024, 7, 1))
	require.ErrorIs(t, err, ErrMinimumStay)
}

func TestCheckAvailability_SingleDayPlaceholderSkipsMinimumStay(t *testing.T) {
	// One calendar click produces start == end; that is not a real
	// selection yet and must not trip the minimum-stay rule
	candidate := mustRange(t, day(2024, 7, 16), day(2024, 7, 16))

	nights, err := CheckAvailability(candidate, nil, 5, day(2024, 7, 1))
	require.NoError(t, err)
	assert.Equal(t, 1, nights)
}

func TestCheckAvailability_SingleDayStillConflicts(t *testing.T) {
	candidate := mustRange(t, day(2024, 7, 12), day(2024, 7, 12))

	_, err := CheckAvailability(candidate, reservedJuly10to15(t), 5, day(2024, 7, 1))
	require.ErrorIs(t, err, ErrDateConflict)
}

func TestCheckAvailability_TodayIsBookable(t *testing.T) {
	today := day(2024, 7, 1)
	candidate := mustRange(t, today, day(2024, 7, 4))

	nights, err := CheckAvailability(candidate, nil, 2, today)
	require.NoError(t, err)
	assert.Equal(t, 4, nights)
}

func TestDisabledDays_UnionSortedWithoutDuplicates(t *testing.T) {
	reserved := []ReservedInterval{
		{Range: mustRange(t, day(2024, 7, 12), day(2024, 7, 14)), ReservationID: 2},
		{Range: mustRange(t, day(2024, 7, 10), day(2024, 7, 12)), ReservationID: 1},
	}

	got := DisabledDays(reserved)

	want := []time.Time{
		day(2024, 7, 10), day(2024, 7, 11), day(2024, 7, 12),
		day(2024, 7, 13), day(2024, 7, 14),
	}
	assert.Equal(t, want, got)
}

func TestDisabledDays_EmptyInput(t *testing.T) {
	assert.Empty(t, DisabledDays(nil))
}
