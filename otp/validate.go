package otp

// Bounds for a sane OTP configuration.
const (
	minDigits = 6
	maxDigits = 8
	maxPeriod = 300 // seconds
)

// Validate reports whether the factor, digit count and, for timer
// factors, the period form a sane OTP configuration.
//
// The secret and algorithm are accepted as given; no hashing happens
// here. The digit range is stricter than the hard limit enforced by
// GenerateCode: callers may generate non-standard widths deliberately,
// but a configuration only validates at 6 to 8 digits.
func Validate(factor Factor, secret []byte, algo Algorithm, digits int) bool {
	if digits < minDigits || digits > maxDigits {
		return false
	}

	if timer, ok := factor.(TimerFactor); ok {
		return timer.Period > 0 && timer.Period <= maxPeriod
	}

	return true
}
