package otp

import (
	"encoding/binary"
	"fmt"
)

// GenerateCode computes the HOTP value of the counter under the secret
// and renders it as a decimal string of exactly digits characters,
// zero-padded on the left.
//
// digits must be between 1 and 9: a ten digit code would overflow the
// 31-bit truncated hash value. This bound is deliberately independent
// of the stricter range checked by Validate.
func GenerateCode(algo Algorithm, digits int, secret []byte, counter uint64) (string, error) {
	if digits < 1 || digits > 9 {
		return "", ErrInvalidDigits
	}

	var sum []byte = hmacSum(algo, secret, counter)

	// Truncate the hash to get the OTP value
	//
	// https://tools.ietf.org/html/rfc4226#section-5.3
	var offset int = int(sum[len(sum)-1] & 0x0f)
	var truncated uint32 = binary.BigEndian.Uint32(sum[offset:offset+4]) & 0x7fffffff

	var code uint32 = truncated % pow10(digits)

	// Pad with zeroes up to the digit length
	return fmt.Sprintf("%0*d", digits, code), nil
}

// GenerateHOTP computes the counter-based OTP for an explicit counter.
func GenerateHOTP(secret []byte, algo Algorithm, digits int, counter uint64) (string, error) {
	return GenerateCode(algo, digits, secret, counter)
}

// pow10 returns 10^n. n is at most 9 so the result fits in 32 bits.
func pow10(n int) uint32 {
	var p uint32 = 1

	for i := 0; i < n; i++ {
		p *= 10
	}

	return p
}
