package otp

import "errors"

// Errors reported by the generation pipeline. All are recoverable and
// surfaced directly to the caller; nothing is retried or logged.
var (
	// ErrInvalidTime indicates a negative timestamp for a timer factor.
	ErrInvalidTime = errors.New("otp: invalid time")
	// ErrInvalidPeriod indicates a zero or negative timer period.
	ErrInvalidPeriod = errors.New("otp: invalid period")
	// ErrInvalidDigits indicates a code width outside the feasible
	// range of 1 to 9 digits.
	ErrInvalidDigits = errors.New("otp: invalid digits")
)
