package otp

import (
	"crypto/rand"
	"encoding/base32"
	"errors"
	"fmt"
	"strings"
)

// DecodeSecret decodes a Base32 secret key into raw bytes. Input is
// case-insensitive and "=" padding is normalized before decoding: trailing
// padding is stripped and rebuilt to the next multiple of 8 characters, since
// authenticator apps and setup tools routinely strip or mangle it.
func DecodeSecret(secret string) ([]byte, error) {
	clean := strings.TrimRight(strings.ToUpper(strings.TrimSpace(secret)), "=")
	if clean == "" {
		return nil, errors.Join(ErrInvalidSecret, errors.New("secret is empty"))
	}
	if n := len(clean) % 8; n != 0 {
		clean += "========"[:8-n]
	}
	key, err := base32.StdEncoding.DecodeString(clean)
	if err != nil {
		return nil, errors.Join(ErrInvalidSecret, err)
	}
	return key, nil
}

// EncodeSecret encodes raw key bytes as standard padded Base32 text.
func EncodeSecret(key []byte) string {
	return base32.StdEncoding.EncodeToString(key)
}

// GenerateSecret draws length random bytes from the host entropy source and
// returns them Base32-encoded. Any positive length is accepted here; policy
// limits on secret size belong to the calling layer.
func GenerateSecret(length int) (string, error) {
	if length <= 0 {
		return "", errors.Join(ErrInvalidParameter, fmt.Errorf("secret length must be positive, got %d", length))
	}
	key := make([]byte, length)
	if _, err := rand.Read(key); err != nil {
		return "", errors.Join(ErrEntropyUnavailable, err)
	}
	return EncodeSecret(key), nil
}
