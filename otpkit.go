// Package otpkit generates one-time passwords from stored or supplied
// OTP credentials.
//
// It glues the keyring entry format onto the generation pipeline in the
// otp package; callers holding raw secrets can use the otp package
// directly.
package otpkit

import (
	"errors"
	"fmt"
	"time"

	"github.com/otpkit/otpkit/keyring"
	"github.com/otpkit/otpkit/otp"
)

// ErrBadEntry indicates a keyring entry whose configuration fails
// validation, such as a digit count outside 6 to 8 or a period over
// five minutes.
var ErrBadEntry = errors.New("otpkit: bad entry configuration")

// Code generates the OTP for a keyring entry at the given time.
//
// Entries are reusable configurations, so they are validated before
// generation; use otp.GenerateCode directly for deliberately
// non-standard widths.
func Code(entry keyring.Entry, at time.Time) (string, error) {
	secret, err := entry.DecodeSecret()
	if err != nil {
		return "", fmt.Errorf("entry %q: %w", entry.Name, err)
	}

	algo, err := otp.ParseAlgorithm(entry.Algo)
	if err != nil {
		return "", fmt.Errorf("entry %q: %w", entry.Name, err)
	}

	factor, err := Factor(entry)
	if err != nil {
		return "", err
	}

	if !otp.Validate(factor, secret, algo, entry.Digits) {
		return "", fmt.Errorf("%w: %q", ErrBadEntry, entry.Name)
	}

	counter, err := otp.ResolveCounter(factor, float64(at.Unix()))
	if err != nil {
		return "", fmt.Errorf("entry %q: %w", entry.Name, err)
	}

	return otp.GenerateCode(algo, entry.Digits, secret, counter)
}

// Factor returns the counter source described by the entry's type.
func Factor(entry keyring.Entry) (otp.Factor, error) {
	switch entry.Type {
	case keyring.TypeTOTP:
		return otp.TimerFactor{Period: entry.Period}, nil
	case keyring.TypeHOTP:
		return otp.CounterFactor{Counter: entry.Counter}, nil
	}

	return nil, fmt.Errorf("entry %q: unsupported otp type %q", entry.Name, entry.Type)
}

// Codes generates an OTP for every entry in the keyring and returns a
// map matching each entry's name and code.
//
// If an entry fails, the successfully generated codes are returned
// along with the error.
func Codes(ring *keyring.Keyring, at time.Time) (map[string]string, error) {
	var codes map[string]string = make(map[string]string)
	var err error

	for _, entry := range ring.Entries {
		code, codeErr := Code(entry, at)
		if codeErr != nil {
			err = codeErr
			continue
		}

		codes[entry.Name] = code
	}

	return codes, err
}

// TTN returns the time until the next code refresh for a timer period
// given in seconds.
func TTN(period float64, at time.Time) time.Duration {
	if period <= 0 {
		return 0
	}

	var step int64 = int64(period * float64(time.Second))
	var elapsed int64 = at.UnixNano() % step

	return time.Duration(step - elapsed)
}
