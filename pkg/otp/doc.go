// Package otp implements HMAC-based and Time-based One-Time Passwords as
// specified by RFC 4226 (HOTP) and RFC 6238 (TOTP).
//
// The package is the algorithmic core of otpkit: secret decoding, time-to-
// counter derivation, HMAC dynamic truncation into a fixed-width decimal
// code, and windowed verification. It deliberately stops there. Persisting
// secrets, rate limiting, replay protection and provisioning URIs belong to
// the layers built on top of it.
//
// # Architecture
//
// Five small, stateless pieces compose the pipeline:
//
//   - secret.go   – Base32 decoding with padding repair, encoding, and
//     cryptographically random secret generation.
//   - clock.go    – floor-division mapping from a Unix timestamp, epoch
//     offset and time step to a counter and the seconds left in the step.
//   - hotp.go     – the RFC 4226 dynamic truncation of an HMAC digest into
//     an N-digit decimal code.
//   - totp.go     – Generate/Verify, which run the clock and the HOTP
//     engine for one counter or a window of adjacent counters.
//   - config.go   – the validated parameter set feeding all of the above.
//
// Every operation is a pure function of its arguments; the only ambient
// inputs are the wall clock (Generate/Verify without an explicit timestamp)
// and the entropy source (GenerateSecret). There is no shared state, so any
// number of calls may run concurrently without coordination.
//
// # Validation
//
// NewConfig is the single validation gate. It checks the time step, digit
// range, algorithm membership and secret decodability once; a constructed
// Config is immutable and trusted by every downstream operation. The only
// failure possible after construction is the counter-range edge case, when
// the distance between the timestamp and t0 leaves the representable range.
//
// # Usage
//
//	cfg, err := otp.NewConfig("JBSWY3DPEHPK3PXP", otp.WithDigits(8))
//	if err != nil {
//		// invalid parameters, reject the request
//	}
//
//	res, _ := otp.Generate(cfg)
//	fmt.Println(res.Code, res.TimeRemaining)
//
//	ok, _ := otp.Verify(cfg, userSuppliedCode)
//
// # Errors
//
// Expected validation failures are reported through the package sentinels
// ErrInvalidSecret, ErrInvalidAlgorithm, ErrInvalidParameter and
// ErrInvalidLength, wrapped with detail via errors.Join and inspectable with
// errors.Is. ErrEntropyUnavailable signals a failed entropy source and is the
// one error callers should treat as fatal rather than as bad input.
//
// # See Also
//
//   - RFC 4226 – HMAC-Based One-Time Password (HOTP) Algorithm
//   - RFC 6238 – Time-Based One-Time Password (TOTP) Algorithm
package otp
