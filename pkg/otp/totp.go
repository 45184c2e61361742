package otp

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"time"
)

// Result holds a generated one-time password together with the clock state it
// was derived from.
type Result struct {
	Code          string // decimal code, exactly Digits characters, zero-padded
	Counter       int64  // time-step counter the code was computed for
	TimeRemaining int64  // seconds left in the current step, in [1, TimeStep]
	Timestamp     int64  // Unix timestamp the code was computed at
}

// Generate computes the one-time password for the current wall-clock time.
func Generate(cfg Config) (Result, error) {
	return GenerateAt(cfg, time.Now().Unix())
}

// GenerateAt computes the one-time password for the time step containing the
// given Unix timestamp.
func GenerateAt(cfg Config, timestamp int64) (Result, error) {
	counter, err := Counter(timestamp, cfg.t0, cfg.timeStep)
	if err != nil {
		return Result{}, err
	}
	remaining, err := TimeRemaining(timestamp, cfg.t0, cfg.timeStep)
	if err != nil {
		return Result{}, err
	}
	code, err := GenerateHOTP(cfg.key, counter, cfg.algorithm, cfg.digits)
	if err != nil {
		return Result{}, err
	}
	return Result{
		Code:          code,
		Counter:       counter,
		TimeRemaining: remaining,
		Timestamp:     timestamp,
	}, nil
}

// Verify checks a candidate code against the current wall-clock time with the
// default drift window.
func Verify(cfg Config, code string) (bool, error) {
	return VerifyAt(cfg, code, time.Now().Unix(), DefaultWindow)
}

// VerifyAt checks a candidate code against every counter within window steps
// of the step containing the given timestamp, returning true on the first
// match. A window of 0 accepts only the current step; the default of 1
// tolerates one step of clock drift either way. Negative windows return
// ErrInvalidParameter.
//
// Comparison is constant-time in the candidate length so a mismatch position
// is not observable through timing. Accept/reject semantics are identical to
// a plain string comparison.
func VerifyAt(cfg Config, code string, timestamp int64, window int) (bool, error) {
	if window < 0 {
		return false, errors.Join(ErrInvalidParameter, fmt.Errorf("window must be non-negative, got %d", window))
	}

	current, err := Counter(timestamp, cfg.t0, cfg.timeStep)
	if err != nil {
		return false, err
	}

	for i := -int64(window); i <= int64(window); i++ {
		candidate, err := GenerateHOTP(cfg.key, current+i, cfg.algorithm, cfg.digits)
		if err != nil {
			return false, err
		}
		if subtle.ConstantTimeCompare([]byte(candidate), []byte(code)) == 1 {
			return true, nil
		}
	}

	return false, nil
}
