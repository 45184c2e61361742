package otp_test

import (
	"math"
	"testing"

	"github.com/dmitrymomot/otpkit/pkg/otp"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCounter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		timestamp int64
		t0        int64
		timeStep  int64
		want      int64
	}{
		{name: "epoch start", timestamp: 0, t0: 0, timeStep: 30, want: 0},
		{name: "last second of first step", timestamp: 29, t0: 0, timeStep: 30, want: 0},
		{name: "second step", timestamp: 30, t0: 0, timeStep: 30, want: 1},
		{name: "rfc6238 first vector", timestamp: 59, t0: 0, timeStep: 30, want: 1},
		{name: "custom epoch offset", timestamp: 100, t0: 40, timeStep: 30, want: 2},
		{name: "negative epoch offset", timestamp: 0, t0: -60, timeStep: 30, want: 2},
		{name: "one second before t0", timestamp: -1, t0: 0, timeStep: 30, want: -1},
		{name: "full step before t0", timestamp: -30, t0: 0, timeStep: 30, want: -1},
		{name: "just past a full step before t0", timestamp: -31, t0: 0, timeStep: 30, want: -2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := otp.Counter(tt.timestamp, tt.t0, tt.timeStep)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// Floor division must keep counters monotonically ordered across t0, not
// mirror them around zero the way truncating division would.
func TestCounter_MonotonicAcrossEpoch(t *testing.T) {
	t.Parallel()

	prev := int64(math.MinInt64)
	for ts := int64(-90); ts <= 90; ts++ {
		c, err := otp.Counter(ts, 0, 30)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, c, prev, "timestamp %d", ts)
		prev = c
	}
}

func TestCounter_OffsetOverflow(t *testing.T) {
	t.Parallel()

	_, err := otp.Counter(math.MaxInt64, -1, 30)
	require.Error(t, err)
	assert.ErrorIs(t, err, otp.ErrInvalidParameter)

	_, err = otp.Counter(math.MinInt64, 1, 30)
	require.Error(t, err)
	assert.ErrorIs(t, err, otp.ErrInvalidParameter)
}

func TestTimeRemaining(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		timestamp int64
		t0        int64
		timeStep  int64
		want      int64
	}{
		{name: "step boundary", timestamp: 0, t0: 0, timeStep: 30, want: 30},
		{name: "mid step", timestamp: 10, t0: 0, timeStep: 30, want: 20},
		{name: "last second", timestamp: 29, t0: 0, timeStep: 30, want: 1},
		{name: "next boundary", timestamp: 30, t0: 0, timeStep: 30, want: 30},
		{name: "before t0", timestamp: -10, t0: 0, timeStep: 30, want: 10},
		{name: "custom step", timestamp: 63, t0: 0, timeStep: 60, want: 57},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := otp.TimeRemaining(tt.timestamp, tt.t0, tt.timeStep)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// TimeRemaining is always within [1, timeStep] regardless of where the
// timestamp falls relative to t0.
func TestTimeRemaining_Bounds(t *testing.T) {
	t.Parallel()

	for ts := int64(-100); ts <= 100; ts++ {
		rem, err := otp.TimeRemaining(ts, 7, 30)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, rem, int64(1), "timestamp %d", ts)
		assert.LessOrEqual(t, rem, int64(30), "timestamp %d", ts)
	}
}
