package otp

import (
	"errors"
	"fmt"
	"math"
)

// Counter maps a Unix timestamp to the number of complete time steps elapsed
// since t0. Division uses floor semantics, not truncation, so timestamps
// before t0 produce a monotonically ordered negative counter sequence instead
// of collapsing toward zero. A (timestamp - t0) difference outside the int64
// range returns ErrInvalidParameter.
func Counter(timestamp, t0, timeStep int64) (int64, error) {
	diff, err := elapsed(timestamp, t0)
	if err != nil {
		return 0, err
	}
	c := diff / timeStep
	if diff%timeStep != 0 && diff < 0 {
		c--
	}
	return c, nil
}

// TimeRemaining returns the seconds left in the current time step, always in
// [1, timeStep].
func TimeRemaining(timestamp, t0, timeStep int64) (int64, error) {
	diff, err := elapsed(timestamp, t0)
	if err != nil {
		return 0, err
	}
	rem := diff % timeStep
	if rem < 0 {
		rem += timeStep
	}
	return timeStep - rem, nil
}

// elapsed computes timestamp - t0 with an overflow guard. The guard is the
// only way the clock math can fail: with int64 seconds and a positive step,
// the division itself can never leave the representable range.
func elapsed(timestamp, t0 int64) (int64, error) {
	diff := timestamp - t0
	if (t0 < 0 && diff < timestamp) || (t0 > 0 && diff > timestamp) {
		return 0, errors.Join(ErrInvalidParameter, fmt.Errorf("time offset between %d and %d exceeds %d seconds", timestamp, t0, int64(math.MaxInt64)))
	}
	return diff, nil
}
