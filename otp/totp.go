package otp

import "time"

// GenerateTOTP computes the time-based OTP for the current time.
func GenerateTOTP(secret []byte, algo Algorithm, digits int, period float64) (string, error) {
	return GenerateTOTPAt(secret, algo, digits, period, float64(time.Now().Unix()))
}

// GenerateTOTPAt computes the time-based OTP at the specified time in
// seconds since the Unix epoch.
func GenerateTOTPAt(secret []byte, algo Algorithm, digits int, period float64, at float64) (string, error) {
	counter, err := ResolveCounter(TimerFactor{Period: period}, at)
	if err != nil {
		return "", err
	}

	return GenerateCode(algo, digits, secret, counter)
}
