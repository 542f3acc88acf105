package otp

import "math"

// Factor selects where the HOTP counter comes from: an explicit counter
// value or a timestamp divided by a refresh period.
type Factor interface {
	isFactor()
}

// CounterFactor supplies the counter value directly.
type CounterFactor struct {
	Counter uint64
}

// TimerFactor derives the counter from a timestamp and a period
// given in seconds.
type TimerFactor struct {
	Period float64
}

func (CounterFactor) isFactor() {}

func (TimerFactor) isFactor() {}

// ResolveCounter converts a factor into the 64-bit counter hashed by
// GenerateCode. The timestamp at is in seconds since the Unix epoch and
// is only read for timer factors.
//
// For a timer factor the counter is floor(at / period), so for the
// common 30 second period at=59 resolves to counter 1 and at=60 to
// counter 2.
func ResolveCounter(factor Factor, at float64) (uint64, error) {
	switch f := factor.(type) {
	case CounterFactor:
		return f.Counter, nil
	case TimerFactor:
		if at < 0 {
			return 0, ErrInvalidTime
		}

		if f.Period <= 0 {
			return 0, ErrInvalidPeriod
		}

		return uint64(math.Floor(at / f.Period)), nil
	}

	panic("otp: unknown factor")
}
