package otp

import (
	"crypto/hmac"
	"encoding/binary"
	"errors"
	"fmt"
	"math"
)

// GenerateHOTP implements the RFC 4226 HMAC-based One-Time Password
// algorithm: the counter is encoded as an 8-byte big-endian unsigned integer,
// HMAC-ed with the key, and dynamically truncated to a 31-bit value that is
// reduced modulo 10^digits and rendered zero-padded.
//
// The function is deterministic and side-effect-free: identical
// (key, counter, algorithm, digits) inputs always yield the identical code.
// A negative counter cannot be represented as an unsigned 64-bit integer and
// returns ErrInvalidParameter rather than silently wrapping.
func GenerateHOTP(key []byte, counter int64, algorithm Algorithm, digits int) (string, error) {
	if counter < 0 {
		return "", errors.Join(ErrInvalidParameter, fmt.Errorf("counter %d not representable as an unsigned 64-bit integer", counter))
	}

	var msg [8]byte
	binary.BigEndian.PutUint64(msg[:], uint64(counter))

	mac := hmac.New(algorithm.newHash(), key)
	mac.Write(msg[:])
	sum := mac.Sum(nil)

	// Dynamic truncation (RFC 4226 §5.3): the low 4 bits of the last byte
	// select a 4-byte window; the window's top bit is masked off so the value
	// is the same for signed and unsigned interpretations.
	offset := sum[len(sum)-1] & 0x0f
	code := (uint64(sum[offset]&0x7f) << 24) |
		(uint64(sum[offset+1]) << 16) |
		(uint64(sum[offset+2]) << 8) |
		uint64(sum[offset+3])

	code %= uint64(math.Pow10(digits))

	return fmt.Sprintf("%0*d", digits, code), nil
}
