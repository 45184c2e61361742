package otp

import (
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"errors"
	"fmt"
	"hash"
	"strings"
)

// Algorithm identifies the HMAC hash function used for code generation.
// The set is closed: only the three values below ever pass config validation,
// so downstream code dispatches with a plain switch and needs no lookup table.
type Algorithm string

const (
	AlgorithmSHA1   Algorithm = "SHA1"
	AlgorithmSHA256 Algorithm = "SHA256"
	AlgorithmSHA512 Algorithm = "SHA512"
)

// ParseAlgorithm maps a case-insensitive algorithm name to its Algorithm
// value. Unknown names return ErrInvalidAlgorithm.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch Algorithm(strings.ToUpper(strings.TrimSpace(name))) {
	case AlgorithmSHA1:
		return AlgorithmSHA1, nil
	case AlgorithmSHA256:
		return AlgorithmSHA256, nil
	case AlgorithmSHA512:
		return AlgorithmSHA512, nil
	default:
		return "", errors.Join(ErrInvalidAlgorithm, fmt.Errorf("algorithm %q: must be SHA1, SHA256 or SHA512", name))
	}
}

// String implements fmt.Stringer.
func (a Algorithm) String() string { return string(a) }

// valid reports whether a is one of the three supported algorithms.
func (a Algorithm) valid() bool {
	switch a {
	case AlgorithmSHA1, AlgorithmSHA256, AlgorithmSHA512:
		return true
	default:
		return false
	}
}

// newHash returns the hash constructor for the HMAC computation.
func (a Algorithm) newHash() func() hash.Hash {
	switch a {
	case AlgorithmSHA256:
		return sha256.New
	case AlgorithmSHA512:
		return sha512.New
	default:
		return sha1.New
	}
}
