package otp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveCounterFromCounterFactor(t *testing.T) {
	// The timestamp is ignored for counter factors, even when negative
	for _, at := range []float64{-100, 0, 59, 1e12} {
		counter, err := ResolveCounter(CounterFactor{Counter: 42}, at)

		require.NoError(t, err)
		assert.Equal(t, uint64(42), counter)
	}
}

func TestResolveCounterFromTimerFactor(t *testing.T) {
	tests := []struct {
		name    string
		period  float64
		at      float64
		want    uint64
		wantErr error
	}{
		{"start of first period", 30, 0, 0, nil},
		{"end of first period", 30, 29.9, 0, nil},
		{"second period", 30, 59, 1, nil},
		{"third period boundary", 30, 60, 2, nil},
		{"fractional period", 2.5, 10, 4, nil},
		{"large timestamp", 30, 20000000000, 666666666, nil},
		{"negative time", 30, -1, 0, ErrInvalidTime},
		{"zero period", 0, 59, 0, ErrInvalidPeriod},
		{"negative period", -30, 59, 0, ErrInvalidPeriod},
		{"negative time reported before bad period", 0, -1, 0, ErrInvalidTime},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			counter, err := ResolveCounter(TimerFactor{Period: tc.period}, tc.at)

			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.want, counter)
		})
	}
}
