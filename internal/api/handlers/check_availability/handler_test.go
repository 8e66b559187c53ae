package check_availability

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/CMP-BookingGateway/internal/domain"
	checkAvailability "github.com/m04kA/CMP-BookingGateway/internal/usecase/check_availability"
)

type fakeUseCase struct {
	resp *checkAvailability.Response
	err  error
	last *checkAvailability.Request
}

func (f *fakeUseCase) Execute(ctx context.Context, req *checkAvailability.Request) (*checkAvailability.Response, error) {
	f.last = req
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

func serve(t *testing.T, uc *fakeUseCase, url string) *httptest.ResponseRecorder {
	t.Helper()

	r := mux.NewRouter()
	r.HandleFunc("/api/v1/cabins/{cabinId}/availability", NewHandler(uc, noopLogger{}).Handle).Methods(http.MethodGet)

	req := httptest.NewRequest(http.MethodGet, url, nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func availableResponse(t *testing.T) *checkAvailability.Response {
	t.Helper()
	rng, err := domain.NewDateRange(
		time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC),
		time.Date(2026, time.March, 12, 0, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)
	return &checkAvailability.Response{
		CabinID:       7,
		Range:         rng,
		PricedNights:  3,
		NightlyPrice:  150,
		TotalPrice:    450,
		MinimumNights: 2,
	}
}

func TestHandle_OK(t *testing.T) {
	uc := &fakeUseCase{resp: availableResponse(t)}

	rec := serve(t, uc, "/api/v1/cabins/7/availability?checkIn=2026-03-10&checkOut=2026-03-12")

	require.Equal(t, http.StatusOK, rec.Code)

	var body AvailabilityResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Available)
	assert.Equal(t, int64(7), body.CabinID)
	assert.Equal(t, "2026-03-10", body.CheckIn)
	assert.Equal(t, "2026-03-12", body.CheckOut)
	assert.Equal(t, 3, body.Nights)
	assert.Equal(t, 450.0, body.TotalPrice)
}

func TestHandle_MissingCheckOutMeansSingleDay(t *testing.T) {
	uc := &fakeUseCase{resp: availableResponse(t)}

	rec := serve(t, uc, "/api/v1/cabins/7/availability?checkIn=2026-03-10")

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, uc.last)
	assert.True(t, uc.last.CheckIn.Equal(uc.last.CheckOut))
}

func TestHandle_ErrorMapping(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
	}{
		{"cabin not found", checkAvailability.ErrCabinNotFound, http.StatusNotFound},
		{"invalid range", checkAvailability.ErrInvalidDateRange, http.StatusBadRequest},
		{"past date", checkAvailability.ErrPastDate, http.StatusBadRequest},
		{"minimum stay", checkAvailability.ErrMinimumStay, http.StatusBadRequest},
		{"date conflict", checkAvailability.ErrDateConflict, http.StatusConflict},
		{"internal", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := serve(t, &fakeUseCase{err: tc.err}, "/api/v1/cabins/7/availability?checkIn=2026-03-10&checkOut=2026-03-12")
			assert.Equal(t, tc.status, rec.Code)
		})
	}
}

func TestHandle_BadInputs(t *testing.T) {
	cases := []struct {
		name string
		url  string
	}{
		{"non-numeric cabin id", "/api/v1/cabins/abc/availability?checkIn=2026-03-10"},
		{"missing checkIn", "/api/v1/cabins/7/availability"},
		{"bad checkIn format", "/api/v1/cabins/7/availability?checkIn=10-03-2026"},
		{"bad checkOut format", "/api/v1/cabins/7/availability?checkIn=2026-03-10&checkOut=tomorrow"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := serve(t, &fakeUseCase{}, tc.url)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}
