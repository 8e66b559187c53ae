package start_checkout

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validGuest() *GuestInput {
	return &GuestInput{
		Name:  "María López",
		Email: "maria@example.com",
		Phone: "+54 (11) 4567-8901",
	}
}

func TestValidateGuest_Valid(t *testing.T) {
	assert.NoError(t, validateGuest(validGuest()))
}

func TestValidateGuest_NilGuestIsAllowed(t *testing.T) {
	assert.NoError(t, validateGuest(nil))
}

func TestValidateGuest_ShortName(t *testing.T) {
	guest := validGuest()
	guest.Name = " M "

	err := validateGuest(guest)

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	require.Len(t, verr.Fields, 1)
	assert.Equal(t, "name", verr.Fields[0].Field)
}

func TestValidateGuest_BadEmail(t *testing.T) {
	cases := []string{
		"not-an-email",
		"missing@domain",
		"@nolocal.com",
		"spaces in@mail.com",
		"",
	}

	for _, email := range cases {
		t.Run(email, func(t *testing.T) {
			guest := validGuest()
			guest.Email = email

			err := validateGuest(guest)

			var verr *ValidationError
			require.True(t, errors.As(err, &verr))
			require.Len(t, verr.Fields, 1)
			assert.Equal(t, "email", verr.Fields[0].Field)
		})
	}
}

func TestValidateGuest_Phone(t *testing.T) {
	cases := []struct {
		name  string
		phone string
		valid bool
	}{
		{"plain digits", "45678901", true},
		{"formatted", "+54 (11) 4567-8901", true},
		{"too short", "1234567", false},
		{"too long", "1234567890123456", false},
		{"letters", "phone123456789", false},
		{"empty", "", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			guest := validGuest()
			guest.Phone = tc.phone

			err := validateGuest(guest)
			if tc.valid {
				assert.NoError(t, err)
				return
			}

			var verr *ValidationError
			require.True(t, errors.As(err, &verr))
			require.Len(t, verr.Fields, 1)
			assert.Equal(t, "phone", verr.Fields[0].Field)
		})
	}
}

func TestValidateGuest_CollectsAllInvalidFields(t *testing.T) {
	err := validateGuest(&GuestInput{Name: "X", Email: "nope", Phone: "123"})

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	require.Len(t, verr.Fields, 3)
	assert.Contains(t, verr.Error(), "name")
	assert.Contains(t, verr.Error(), "email")
	assert.Contains(t, verr.Error(), "phone")
}
