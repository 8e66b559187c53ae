package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type noopLogger struct{}

func (noopLogger) Warn(format string, v ...interface{}) {}

func protectedHandler(t *testing.T, gotUserID *int64) http.Handler {
	t.Helper()
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*gotUserID = UserID(r.Context())
		w.WriteHeader(http.StatusOK)
	})
	return Auth(noopLogger{})(next)
}

func TestAuth_ValidHeader(t *testing.T) {
	var userID int64
	h := protectedHandler(t, &userID)

	req := httptest.NewRequest(http.MethodGet, "/checkout/abc", nil)
	req.Header.Set(HeaderUserID, "42")
	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(42), userID)
}

func TestAuth_RejectsBadHeaders(t *testing.T) {
	cases := []struct {
		name  string
		value string
	}{
		{"missing", ""},
		{"non-numeric", "abc"},
		{"zero", "0"},
		{"negative", "-5"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var userID int64
			h := protectedHandler(t, &userID)

			req := httptest.NewRequest(http.MethodGet, "/checkout/abc", nil)
			if tc.value != "" {
				req.Header.Set(HeaderUserID, tc.value)
			}
			rec := httptest.NewRecorder()

			h.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Zero(t, userID)
		})
	}
}

func TestOptionalUserID(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/cabins/7/availability", nil)
	assert.Zero(t, OptionalUserID(req))

	req.Header.Set(HeaderUserID, "42")
	assert.Equal(t, int64(42), OptionalUserID(req))

	req.Header.Set(HeaderUserID, "oops")
	assert.Zero(t, OptionalUserID(req))
}
