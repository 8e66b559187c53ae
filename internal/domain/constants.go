package domain

// Date format used across the API and the backend contract
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Guest info validation constants
const (
	MinGuestNameLength = 2
	MinPhoneDigits     = 8
	MaxPhoneDigits     = 15
)

// Payment polling defaults (~60 seconds total)
const (
	DefaultPollIntervalSeconds = 3
	DefaultMaxPollAttempts     = 20
)
