package check_availability

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	bookingClient "github.com/m04kA/CMP-BookingGateway/internal/integrations/bookingservice"
)

type fakeCabins struct {
	cabin *bookingClient.Cabin
	err   error
}

func (f *fakeCabins) GetCabin(ctx context.Context, cabinID int64) (*bookingClient.Cabin, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.cabin, nil
}

type fakeReservations struct {
	reservations []bookingClient.Reservation
	err          error
}

func (f *fakeReservations) GetReservations(ctx context.Context, cabinID int64) ([]bookingClient.Reservation, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.reservations, nil
}

type fixedTime struct {
	now time.Time
}

func (f *fixedTime) Now() time.Time {
	return f.now
}

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func newTestUseCase(cabins *fakeCabins, reservations *fakeReservations, defaultNights int, now time.Time) *UseCase {
	uc := NewUseCase(cabins, reservations, defaultNights, noopLogger{})
	uc.timeProvider = &fixedTime{now: now}
	return uc
}

func testCabin() *bookingClient.Cabin {
	return &bookingClient.Cabin{
		ID:           7,
		Nombre:       "Cabaña del Lago",
		Precio:       150,
		Capacidad:    4,
		MinimoNoches: 2,
	}
}

func TestExecute_AvailableRange(t *testing.T) {
	cabins := &fakeCabins{cabin: testCabin()}
	reservations := &fakeReservations{reservations: []bookingClient.Reservation{
		{ID: 1, StartDate: day(2026, time.March, 1), EndDate: day(2026, time.March, 5)},
	}}
	uc := newTestUseCase(cabins, reservations, 1, day(2026, time.February, 1))

	resp, err := uc.Execute(context.Background(), &Request{
		UserID:   42,
		CabinID:  7,
		CheckIn:  day(2026, time.March, 10),
		CheckOut: day(2026, time.March, 12),
	})

	require.NoError(t, err)
	assert.Equal(t, int64(7), resp.CabinID)
	assert.Equal(t, 3, resp.PricedNights)
	assert.Equal(t, 150.0, resp.NightlyPrice)
	assert.Equal(t, 450.0, resp.TotalPrice)
	assert.Equal(t, 2, resp.MinimumNights)
}

func TestExecute_PastDateBeatsConflict(t *testing.T) {
	// Диапазон одновременно в прошлом и пересекается с бронью,
	// но прошлое имеет более высокий приоритет
	cabins := &fakeCabins{cabin: testCabin()}
	reservations := &fakeReservations{reservations: []bookingClient.Reservation{
		{ID: 1, StartDate: day(2026, time.January, 10), EndDate: day(2026, time.January, 20)},
	}}
	uc := newTestUseCase(cabins, reservations, 1, day(2026, time.February, 1))

	_, err := uc.Execute(context.Background(), &Request{
		CabinID:  7,
		CheckIn:  day(2026, time.January, 12),
		CheckOut: day(2026, time.January, 15),
	})

	assert.ErrorIs(t, err, ErrPastDate)
}

func TestExecute_MinimumStayBeatsConflict(t *testing.T) {
	cabins := &fakeCabins{cabin: testCabin()}
	reservations := &fakeReservations{reservations: []bookingClient.Reservation{
		{ID: 1, StartDate: day(2026, time.March, 10), EndDate: day(2026, time.March, 11)},
	}}
	uc := newTestUseCase(cabins, reservations, 1, day(2026, time.February, 1))

	_, err := uc.Execute(context.Background(), &Request{
		CabinID:  7,
		CheckIn:  day(2026, time.March, 10),
		CheckOut: day(2026, time.March, 11),
	})

	assert.ErrorIs(t, err, ErrMinimumStay)
}

func TestExecute_SingleDayPlaceholderSkipsMinimumStay(t *testing.T) {
	// Одиночный клик по свободному дню не отклоняется политикой минимума
	cabins := &fakeCabins{cabin: testCabin()}
	reservations := &fakeReservations{}
	uc := newTestUseCase(cabins, reservations, 1, day(2026, time.February, 1))

	resp, err := uc.Execute(context.Background(), &Request{
		CabinID:  7,
		CheckIn:  day(2026, time.March, 10),
		CheckOut: day(2026, time.March, 10),
	})

	require.NoError(t, err)
	assert.Equal(t, 1, resp.PricedNights)
	assert.Equal(t, 150.0, resp.TotalPrice)
}

func TestExecute_DateConflict(t *testing.T) {
	cabins := &fakeCabins{cabin: testCabin()}
	reservations := &fakeReservations{reservations: []bookingClient.Reservation{
		{ID: 1, StartDate: day(2026, time.March, 10), EndDate: day(2026, time.March, 15)},
	}}
	uc := newTestUseCase(cabins, reservations, 1, day(2026, time.February, 1))

	_, err := uc.Execute(context.Background(), &Request{
		CabinID:  7,
		CheckIn:  day(2026, time.March, 14),
		CheckOut: day(2026, time.March, 18),
	})

	assert.ErrorIs(t, err, ErrDateConflict)
}

func TestExecute_ReversedRange(t *testing.T) {
	cabins := &fakeCabins{cabin: testCabin()}
	uc := newTestUseCase(cabins, &fakeReservations{}, 1, day(2026, time.February, 1))

	_, err := uc.Execute(context.Background(), &Request{
		CabinID:  7,
		CheckIn:  day(2026, time.March, 12),
		CheckOut: day(2026, time.March, 10),
	})

	assert.ErrorIs(t, err, ErrInvalidDateRange)
}

func TestExecute_DefaultMinimumNightsWhenCabinHasNone(t *testing.T) {
	cabin := testCabin()
	cabin.MinimoNoches = 0
	cabins := &fakeCabins{cabin: cabin}
	uc := newTestUseCase(cabins, &fakeReservations{}, 3, day(2026, time.February, 1))

	_, err := uc.Execute(context.Background(), &Request{
		CabinID:  7,
		CheckIn:  day(2026, time.March, 10),
		CheckOut: day(2026, time.March, 11),
	})

	assert.ErrorIs(t, err, ErrMinimumStay)

	resp, err := uc.Execute(context.Background(), &Request{
		CabinID:  7,
		CheckIn:  day(2026, time.March, 10),
		CheckOut: day(2026, time.March, 13),
	})
	require.NoError(t, err)
	assert.Equal(t, 3, resp.MinimumNights)
	assert.Equal(t, 4, resp.PricedNights)
}

func TestExecute_CabinNotFound(t *testing.T) {
	cabins := &fakeCabins{err: bookingClient.ErrCabinNotFound}
	uc := newTestUseCase(cabins, &fakeReservations{}, 1, day(2026, time.February, 1))

	_, err := uc.Execute(context.Background(), &Request{
		CabinID:  404,
		CheckIn:  day(2026, time.March, 10),
		CheckOut: day(2026, time.March, 12),
	})

	assert.ErrorIs(t, err, ErrCabinNotFound)
}

func TestExecute_ReservationsFetchFailure(t *testing.T) {
	cabins := &fakeCabins{cabin: testCabin()}
	reservations := &fakeReservations{err: errors.New("connection refused")}
	uc := newTestUseCase(cabins, reservations, 1, day(2026, time.February, 1))

	_, err := uc.Execute(context.Background(), &Request{
		CabinID:  7,
		CheckIn:  day(2026, time.March, 10),
		CheckOut: day(2026, time.March, 12),
	})

	assert.ErrorIs(t, err, ErrInternal)
}

func TestExecute_SkipsReservationWithReversedDates(t *testing.T) {
	// Бронь с перепутанными датами не должна блокировать календарь
	cabins := &fakeCabins{cabin: testCabin()}
	reservations := &fakeReservations{reservations: []bookingClient.Reservation{
		{ID: 1, StartDate: day(2026, time.March, 15), EndDate: day(2026, time.March, 10)},
	}}
	uc := newTestUseCase(cabins, reservations, 1, day(2026, time.February, 1))

	resp, err := uc.Execute(context.Background(), &Request{
		CabinID:  7,
		CheckIn:  day(2026, time.March, 11),
		CheckOut: day(2026, time.March, 13),
	})

	require.NoError(t, err)
	assert.Equal(t, 3, resp.PricedNights)
}

func TestExecute_InvalidInput(t *testing.T) {
	uc := newTestUseCase(&fakeCabins{cabin: testCabin()}, &fakeReservations{}, 1, day(2026, time.February, 1))

	cases := []struct {
		name string
		req  *Request
	}{
		{"zero cabin id", &Request{CheckIn: day(2026, time.March, 10), CheckOut: day(2026, time.March, 12)}},
		{"missing check-in", &Request{CabinID: 7, CheckOut: day(2026, time.March, 12)}},
		{"missing check-out", &Request{CabinID: 7, CheckIn: day(2026, time.March, 10)}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tc.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestExecute_BoundarySharingConflicts(t *testing.T) {
	cabins := &fakeCabins{cabin: testCabin()}
	reservations := &fakeReservations{reservations: []bookingClient.Reservation{
		{ID: 1, StartDate: day(2026, time.March, 10), EndDate: day(2026, time.March, 12)},
	}}
	uc := newTestUseCase(cabins, reservations, 1, day(2026, time.February, 1))

	_, err := uc.Execute(context.Background(), &Request{
		CabinID:  7,
		CheckIn:  day(2026, time.March, 12),
		CheckOut: day(2026, time.March, 14),
	})

	assert.ErrorIs(t, err, ErrDateConflict)
}
