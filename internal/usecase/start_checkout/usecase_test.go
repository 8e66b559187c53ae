package start_checkout

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/CMP-BookingGateway/internal/domain"
	bookingClient "github.com/m04kA/CMP-BookingGateway/internal/integrations/bookingservice"
	checkoutModels "github.com/m04kA/CMP-BookingGateway/internal/service/checkout/models"
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

type fakeCheckout struct {
	session *checkoutModels.CheckoutSession
	err     error
	drafts  []domain.BookingDraft
}

func (f *fakeCheckout) Start(ctx context.Context, draft domain.BookingDraft) (*checkoutModels.CheckoutSession, error) {
	f.drafts = append(f.drafts, draft)
	if f.err != nil {
		return nil, f.err
	}
	return f.session, nil
}

type fakeInvalidator struct {
	cabinIDs []int64
}

func (f *fakeInvalidator) Invalidate(ctx context.Context, cabinID int64) {
	f.cabinIDs = append(f.cabinIDs, cabinID)
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

func testCabin() *bookingClient.Cabin {
	return &bookingClient.Cabin{
		ID:           7,
		Nombre:       "Cabaña del Lago",
		Precio:       150,
		Capacidad:    4,
		MinimoNoches: 2,
	}
}

func pollingSession(tempID string) *checkoutModels.CheckoutSession {
	return &checkoutModels.CheckoutSession{
		ID:          "sess-1",
		State:       domain.StatePolling,
		CabinID:     7,
		TotalPrice:  450,
		TempID:      tempID,
		RedirectURL: "https://mp.example.com/init/abc",
	}
}

type fixture struct {
	cabins       *fakeCabins
	reservations *fakeReservations
	checkout     *fakeCheckout
	invalidator  *fakeInvalidator
	uc           *UseCase
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		cabins:       &fakeCabins{cabin: testCabin()},
		reservations: &fakeReservations{},
		checkout:     &fakeCheckout{session: pollingSession("tmp-55")},
		invalidator:  &fakeInvalidator{},
	}
	f.uc = NewUseCase(f.cabins, f.reservations, f.checkout, f.invalidator, 1, noopLogger{})
	f.uc.timeProvider = &fixedTime{now: day(2026, time.February, 1)}
	return f
}

func validRequest() *Request {
	return &Request{
		UserID:   42,
		CabinID:  7,
		CheckIn:  day(2026, time.March, 10),
		CheckOut: day(2026, time.March, 12),
		Guest: &GuestInput{
			Name:  "María López",
			Email: "maria@example.com",
			Phone: "+54 11 4567 8901",
		},
	}
}

func TestExecute_StartsCheckoutAndInvalidatesCache(t *testing.T) {
	f := newFixture(t)

	resp, err := f.uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, "sess-1", resp.SessionID)
	assert.Equal(t, domain.StatePolling, resp.State)
	assert.Equal(t, "https://mp.example.com/init/abc", resp.RedirectURL)

	require.Len(t, f.checkout.drafts, 1)
	draft := f.checkout.drafts[0]
	assert.Equal(t, int64(42), draft.UserID)
	assert.Equal(t, "Cabaña del Lago", draft.CabinName)
	assert.Equal(t, 450.0, draft.TotalPrice)
	require.NotNil(t, draft.Guest)
	assert.Equal(t, "María López", draft.Guest.Name)

	assert.Equal(t, []int64{7}, f.invalidator.cabinIDs)
}

func TestExecute_NoInvalidationWithoutHold(t *testing.T) {
	// Холд отклонен: TempID пуст, кэшированный список броней все еще верен
	f := newFixture(t)
	f.checkout.session = &checkoutModels.CheckoutSession{
		ID:     "sess-2",
		State:  domain.StateFailed,
		Reason: domain.ReasonHoldRejected,
	}

	resp, err := f.uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, domain.StateFailed, resp.State)
	assert.Equal(t, domain.ReasonHoldRejected, resp.Reason)
	assert.Empty(t, f.invalidator.cabinIDs)
}

func TestExecute_AvailabilityRecheckedBeforeHold(t *testing.T) {
	f := newFixture(t)
	f.reservations.reservations = []bookingClient.Reservation{
		{ID: 1, StartDate: day(2026, time.March, 11), EndDate: day(2026, time.March, 13)},
	}

	_, err := f.uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrDateConflict)
	assert.Empty(t, f.checkout.drafts)
}

func TestExecute_SingleNightRequestHitsMinimumStay(t *testing.T) {
	// На старте checkout исключения для одиночной даты нет
	f := newFixture(t)
	req := validRequest()
	req.CheckOut = req.CheckIn

	_, err := f.uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrMinimumStay)
	assert.Empty(t, f.checkout.drafts)
}

func TestExecute_SingleNightAllowedByOneNightMinimum(t *testing.T) {
	f := newFixture(t)
	f.cabins.cabin.MinimoNoches = 1
	req := validRequest()
	req.CheckOut = req.CheckIn

	_, err := f.uc.Execute(context.Background(), req)

	require.NoError(t, err)
	require.Len(t, f.checkout.drafts, 1)
	assert.Equal(t, 150.0, f.checkout.drafts[0].TotalPrice)
}

func TestExecute_PastSingleNightReportsPastDate(t *testing.T) {
	// Прошлое приоритетнее минимума и для одиночной даты
	f := newFixture(t)
	req := validRequest()
	req.CheckIn = day(2026, time.January, 10)
	req.CheckOut = req.CheckIn

	_, err := f.uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrPastDate)
}

func TestExecute_PastDate(t *testing.T) {
	f := newFixture(t)
	req := validRequest()
	req.CheckIn = day(2026, time.January, 10)
	req.CheckOut = day(2026, time.January, 12)

	_, err := f.uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrPastDate)
}

func TestExecute_ReversedRange(t *testing.T) {
	f := newFixture(t)
	req := validRequest()
	req.CheckIn, req.CheckOut = req.CheckOut, req.CheckIn

	_, err := f.uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrInvalidDateRange)
}

func TestExecute_GuestValidationBlocksCheckout(t *testing.T) {
	f := newFixture(t)
	req := validRequest()
	req.Guest.Email = "not-an-email"

	_, err := f.uc.Execute(context.Background(), req)

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Empty(t, f.checkout.drafts)
}

func TestExecute_NilGuestIsForwardedAsNil(t *testing.T) {
	f := newFixture(t)
	req := validRequest()
	req.Guest = nil

	_, err := f.uc.Execute(context.Background(), req)

	require.NoError(t, err)
	require.Len(t, f.checkout.drafts, 1)
	assert.Nil(t, f.checkout.drafts[0].Guest)
}

func TestExecute_CabinNotFound(t *testing.T) {
	f := newFixture(t)
	f.cabins.err = bookingClient.ErrCabinNotFound

	_, err := f.uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrCabinNotFound)
}

func TestExecute_OrchestrationFailureIsInternal(t *testing.T) {
	f := newFixture(t)
	f.checkout.err = errors.New("hold transport error")

	_, err := f.uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrInternal)
	assert.Empty(t, f.invalidator.cabinIDs)
}

func TestExecute_InvalidInput(t *testing.T) {
	f := newFixture(t)

	cases := []struct {
		name   string
		mutate func(*Request)
	}{
		{"zero user", func(r *Request) { r.UserID = 0 }},
		{"zero cabin", func(r *Request) { r.CabinID = 0 }},
		{"missing check-in", func(r *Request) { r.CheckIn = time.Time{} }},
		{"missing check-out", func(r *Request) { r.CheckOut = time.Time{} }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validRequest()
			tc.mutate(req)

			_, err := f.uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
