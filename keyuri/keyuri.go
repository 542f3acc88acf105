// Package keyuri converts OTP credentials to and from otpauth:// URIs,
// the interchange format understood by authenticator apps, and renders
// them as QR codes.
package keyuri

import (
	"fmt"
	"net/url"
	"strconv"

	potp "github.com/pquerna/otp"

	"github.com/otpkit/otpkit/keyring"
)

// Format builds the otpauth:// URI describing the entry.
func Format(e keyring.Entry) string {
	var values url.Values = url.Values{}

	values.Set("secret", e.Secret)
	values.Set("algorithm", e.Algo)
	values.Set("digits", strconv.Itoa(e.Digits))

	var label string = url.PathEscape(e.Name)

	if e.Issuer != "" {
		values.Set("issuer", e.Issuer)
		label = url.PathEscape(e.Issuer + ":" + e.Name)
	}

	if e.Type == keyring.TypeHOTP {
		values.Set("counter", strconv.FormatUint(e.Counter, 10))

		return fmt.Sprintf("otpauth://hotp/%s?%s", label, values.Encode())
	}

	values.Set("period", strconv.FormatFloat(e.Period, 'f', -1, 64))

	return fmt.Sprintf("otpauth://totp/%s?%s", label, values.Encode())
}

// Parse decodes an otpauth:// URI into a keyring entry. URIs using an
// unsupported algorithm, an unsupported type, or a digit count outside
// 1 to 9 are rejected.
func Parse(raw string) (keyring.Entry, error) {
	key, err := potp.NewKeyFromURL(raw)
	if err != nil {
		return keyring.Entry{}, fmt.Errorf("keyuri: %w", err)
	}

	var entry keyring.Entry = keyring.Entry{
		Name:   key.AccountName(),
		Issuer: key.Issuer(),
		Type:   key.Type(),
		Secret: key.Secret(),
		Digits: int(key.Digits()),
	}

	switch key.Algorithm() {
	case potp.AlgorithmSHA1:
		entry.Algo = "SHA1"
	case potp.AlgorithmSHA256:
		entry.Algo = "SHA256"
	case potp.AlgorithmSHA512:
		entry.Algo = "SHA512"
	default:
		return keyring.Entry{}, fmt.Errorf("keyuri: unsupported algorithm %q", key.Algorithm())
	}

	if entry.Digits < 1 || entry.Digits > 9 {
		return keyring.Entry{}, fmt.Errorf("keyuri: unsupported digit count %d", entry.Digits)
	}

	switch entry.Type {
	case keyring.TypeTOTP:
		period, err := parsePeriod(raw)
		if err != nil {
			return keyring.Entry{}, err
		}

		entry.Period = period
	case keyring.TypeHOTP:
		counter, err := parseCounter(raw)
		if err != nil {
			return keyring.Entry{}, err
		}

		entry.Counter = counter
	default:
		return keyring.Entry{}, fmt.Errorf("keyuri: unsupported otp type %q", entry.Type)
	}

	return entry, nil
}

// parsePeriod reads the period query parameter of a totp URI. Periods
// may be fractional, which pquerna's Key.Period accessor would silently
// mangle, so the parameter is read directly. A missing period defaults
// to the common 30 seconds.
func parsePeriod(raw string) (float64, error) {
	parsed, err := url.Parse(raw)
	if err != nil {
		return 0, fmt.Errorf("keyuri: %w", err)
	}

	var period string = parsed.Query().Get("period")

	if period == "" {
		return 30, nil
	}

	value, err := strconv.ParseFloat(period, 64)
	if err != nil {
		return 0, fmt.Errorf("keyuri: invalid period %q", period)
	}

	return value, nil
}

// parseCounter reads the counter query parameter of an hotp URI.
// A missing counter defaults to zero.
func parseCounter(raw string) (uint64, error) {
	parsed, err := url.Parse(raw)
	if err != nil {
		return 0, fmt.Errorf("keyuri: %w", err)
	}

	var counter string = parsed.Query().Get("counter")

	if counter == "" {
		return 0, nil
	}

	value, err := strconv.ParseUint(counter, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("keyuri: invalid counter %q", counter)
	}

	return value, nil
}
