package otp

import (
	"errors"
	"fmt"
)

const (
	DefaultTimeStep  = 30            // 30-second validity window (RFC 6238 standard)
	DefaultDigits    = 6             // Standard 6-digit TOTP codes
	DefaultAlgorithm = AlgorithmSHA1 // HMAC-SHA1 (RFC 6238 standard)
	DefaultWindow    = 1             // Accept one step of clock drift either way

	// MinDigits and MaxDigits bound the code width. Below 6 digits the code
	// space is too small to be useful; above 10 the truncated 31-bit value
	// cannot fill the leading digits anyway.
	MinDigits = 6
	MaxDigits = 10
)

// Config holds a validated set of TOTP parameters. The zero value is not
// usable; NewConfig is the only constructor and the single validation gate,
// so every Config in existence satisfies the range and membership checks and
// downstream operations never re-validate.
type Config struct {
	secret    string
	key       []byte
	timeStep  int64
	t0        int64
	digits    int
	algorithm Algorithm
}

// Option overrides one Config parameter before validation.
type Option func(*Config)

// WithTimeStep sets the time step in seconds. Must be positive.
func WithTimeStep(seconds int64) Option {
	return func(c *Config) { c.timeStep = seconds }
}

// WithT0 sets the epoch offset in seconds. Any sign is allowed.
func WithT0(t0 int64) Option {
	return func(c *Config) { c.t0 = t0 }
}

// WithDigits sets the code width. Must be within [MinDigits, MaxDigits].
func WithDigits(digits int) Option {
	return func(c *Config) { c.digits = digits }
}

// WithAlgorithm sets the HMAC hash algorithm.
func WithAlgorithm(alg Algorithm) Option {
	return func(c *Config) { c.algorithm = alg }
}

// NewConfig builds a validated Config from a Base32 secret and optional
// parameter overrides. Defaults are the RFC 6238 standard parameters:
// 30-second steps counted from the Unix epoch, 6 digits, HMAC-SHA1.
func NewConfig(secret string, opts ...Option) (Config, error) {
	cfg := Config{
		timeStep:  DefaultTimeStep,
		digits:    DefaultDigits,
		algorithm: DefaultAlgorithm,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.timeStep <= 0 {
		return Config{}, errors.Join(ErrInvalidParameter, fmt.Errorf("time step must be positive, got %d", cfg.timeStep))
	}
	if cfg.digits < MinDigits || cfg.digits > MaxDigits {
		return Config{}, errors.Join(ErrInvalidParameter, fmt.Errorf("digits must be between %d and %d, got %d", MinDigits, MaxDigits, cfg.digits))
	}
	if !cfg.algorithm.valid() {
		return Config{}, errors.Join(ErrInvalidAlgorithm, fmt.Errorf("algorithm %q: must be SHA1, SHA256 or SHA512", cfg.algorithm))
	}

	key, err := DecodeSecret(secret)
	if err != nil {
		return Config{}, err
	}
	cfg.secret = secret
	cfg.key = key

	return cfg, nil
}

// Secret returns the Base32 secret as supplied by the caller.
func (c Config) Secret() string { return c.secret }

// TimeStep returns the time step in seconds.
func (c Config) TimeStep() int64 { return c.timeStep }

// T0 returns the epoch offset in seconds.
func (c Config) T0() int64 { return c.t0 }

// Digits returns the code width.
func (c Config) Digits() int { return c.digits }

// Algorithm returns the HMAC hash algorithm.
func (c Config) Algorithm() Algorithm { return c.algorithm }
