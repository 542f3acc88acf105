package otp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	var secret []byte = []byte("12345678901234567890")

	tests := []struct {
		name   string
		factor Factor
		digits int
		want   bool
	}{
		{"counter with 6 digits", CounterFactor{Counter: 0}, 6, true},
		{"counter with 7 digits", CounterFactor{Counter: 1}, 7, true},
		{"counter with 8 digits", CounterFactor{Counter: 99}, 8, true},
		{"counter with 5 digits", CounterFactor{}, 5, false},
		{"counter with 9 digits", CounterFactor{}, 9, false},
		{"timer with 30s period", TimerFactor{Period: 30}, 6, true},
		{"timer with fractional period", TimerFactor{Period: 2.5}, 6, true},
		{"timer at max period", TimerFactor{Period: 300}, 8, true},
		{"timer over max period", TimerFactor{Period: 301}, 6, false},
		{"timer with zero period", TimerFactor{}, 6, false},
		{"timer with negative period", TimerFactor{Period: -30}, 6, false},
		{"timer with bad digits and good period", TimerFactor{Period: 30}, 9, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Validate(tc.factor, secret, AlgorithmSHA1, tc.digits))
		})
	}
}

// The validator's 6 to 8 digit range and the generator's 1 to 9 hard
// limit are separate checks: 9 digit codes fail validation but still
// generate.
func TestValidateAndGenerateRangesAreIndependent(t *testing.T) {
	var secret []byte = []byte("12345678901234567890")

	assert.False(t, Validate(CounterFactor{}, secret, AlgorithmSHA1, 9))

	code, err := GenerateCode(AlgorithmSHA1, 9, secret, 0)

	require.NoError(t, err)
	assert.Len(t, code, 9)
}
