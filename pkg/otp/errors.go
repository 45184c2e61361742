package otp

import "errors"

var (
	// ErrInvalidSecret indicates the secret is not valid Base32 text, even
	// after padding repair.
	ErrInvalidSecret = errors.New("invalid secret")
	// ErrInvalidAlgorithm indicates an algorithm name outside the supported
	// SHA1/SHA256/SHA512 set.
	ErrInvalidAlgorithm = errors.New("unsupported algorithm")
	// ErrInvalidParameter indicates an out-of-range numeric parameter: a
	// non-positive time step, a digit count outside [6,10], a negative
	// verification window, or a counter that cannot be represented as an
	// unsigned 64-bit integer.
	ErrInvalidParameter = errors.New("invalid parameter")
	// ErrInvalidLength indicates a requested secret length outside the
	// accepted policy range.
	ErrInvalidLength = errors.New("secret length out of range")
	// ErrEntropyUnavailable indicates the host entropy source failed. This is
	// not an expected validation failure; callers should treat it as fatal.
	ErrEntropyUnavailable = errors.New("entropy source unavailable")
)
