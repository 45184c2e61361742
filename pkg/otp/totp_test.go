package otp_test

import (
	"testing"
	"time"

	"github.com/dmitrymomot/otpkit/pkg/otp"

	pquerna "github.com/pquerna/otp"
	pqtotp "github.com/pquerna/otp/totp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RFC 6238 Appendix B uses an ASCII seed repeated out to the natural key
// length of each hash.
func rfc6238Secret(alg otp.Algorithm) string {
	seed := "12345678901234567890"
	switch alg {
	case otp.AlgorithmSHA256:
		return otp.EncodeSecret([]byte(seed + "123456789012"))
	case otp.AlgorithmSHA512:
		return otp.EncodeSecret([]byte(seed + seed + seed + "1234"))
	default:
		return otp.EncodeSecret([]byte(seed))
	}
}

func TestGenerateAt_RFC6238Vectors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		timestamp int64
		algorithm otp.Algorithm
		want      string
	}{
		{timestamp: 59, algorithm: otp.AlgorithmSHA1, want: "94287082"},
		{timestamp: 59, algorithm: otp.AlgorithmSHA256, want: "46119246"},
		{timestamp: 59, algorithm: otp.AlgorithmSHA512, want: "90693936"},
		{timestamp: 1111111109, algorithm: otp.AlgorithmSHA1, want: "07081804"},
		{timestamp: 1111111109, algorithm: otp.AlgorithmSHA256, want: "68084774"},
		{timestamp: 1111111109, algorithm: otp.AlgorithmSHA512, want: "25091201"},
		{timestamp: 1111111111, algorithm: otp.AlgorithmSHA1, want: "14050471"},
		{timestamp: 1111111111, algorithm: otp.AlgorithmSHA256, want: "67062674"},
		{timestamp: 1111111111, algorithm: otp.AlgorithmSHA512, want: "99943326"},
		{timestamp: 1234567890, algorithm: otp.AlgorithmSHA1, want: "89005924"},
		{timestamp: 1234567890, algorithm: otp.AlgorithmSHA256, want: "91819424"},
		{timestamp: 1234567890, algorithm: otp.AlgorithmSHA512, want: "93441116"},
		{timestamp: 2000000000, algorithm: otp.AlgorithmSHA1, want: "69279037"},
		{timestamp: 2000000000, algorithm: otp.AlgorithmSHA256, want: "90698825"},
		{timestamp: 2000000000, algorithm: otp.AlgorithmSHA512, want: "38618901"},
		{timestamp: 20000000000, algorithm: otp.AlgorithmSHA1, want: "65353130"},
		{timestamp: 20000000000, algorithm: otp.AlgorithmSHA256, want: "77737706"},
		{timestamp: 20000000000, algorithm: otp.AlgorithmSHA512, want: "47863826"},
	}

	for _, tt := range tests {
		cfg, err := otp.NewConfig(rfc6238Secret(tt.algorithm),
			otp.WithDigits(8),
			otp.WithAlgorithm(tt.algorithm),
		)
		require.NoError(t, err)

		res, err := otp.GenerateAt(cfg, tt.timestamp)
		require.NoError(t, err)
		assert.Equal(t, tt.want, res.Code, "T=%d alg=%s", tt.timestamp, tt.algorithm)
	}
}

func TestGenerateAt_ResultFields(t *testing.T) {
	t.Parallel()

	cfg, err := otp.NewConfig(testSecret)
	require.NoError(t, err)

	res, err := otp.GenerateAt(cfg, 59)
	require.NoError(t, err)

	assert.Len(t, res.Code, 6)
	assert.Equal(t, int64(1), res.Counter)
	assert.Equal(t, int64(1), res.TimeRemaining)
	assert.Equal(t, int64(59), res.Timestamp)
}

func TestGenerateAt_BeforeEpochOffset(t *testing.T) {
	t.Parallel()

	// A timestamp earlier than t0 yields a negative counter, which has no
	// unsigned 64-bit encoding.
	cfg, err := otp.NewConfig(testSecret, otp.WithT0(1_000_000))
	require.NoError(t, err)

	_, err = otp.GenerateAt(cfg, 500)
	require.Error(t, err)
	assert.ErrorIs(t, err, otp.ErrInvalidParameter)
}

func TestVerifyAt_RoundTrip(t *testing.T) {
	t.Parallel()

	timestamps := []int64{0, 29, 59, 1111111109, 1234567890, 20000000000}
	for _, alg := range []otp.Algorithm{otp.AlgorithmSHA1, otp.AlgorithmSHA256, otp.AlgorithmSHA512} {
		for digits := otp.MinDigits; digits <= otp.MaxDigits; digits++ {
			cfg, err := otp.NewConfig(rfc6238Secret(alg),
				otp.WithDigits(digits),
				otp.WithAlgorithm(alg),
			)
			require.NoError(t, err)

			for _, ts := range timestamps {
				res, err := otp.GenerateAt(cfg, ts)
				require.NoError(t, err)

				ok, err := otp.VerifyAt(cfg, res.Code, ts, 0)
				require.NoError(t, err)
				assert.True(t, ok, "alg=%s digits=%d T=%d", alg, digits, ts)
			}
		}
	}
}

func TestVerifyAt_WindowBoundary(t *testing.T) {
	t.Parallel()

	cfg, err := otp.NewConfig(testSecret)
	require.NoError(t, err)

	const base = int64(1234567890)
	res, err := otp.GenerateAt(cfg, base)
	require.NoError(t, err)

	for _, window := range []int{0, 1, 2, 5} {
		step := cfg.TimeStep() * int64(window)

		ok, err := otp.VerifyAt(cfg, res.Code, base+step, window)
		require.NoError(t, err)
		assert.True(t, ok, "window %d steps late must still verify", window)

		ok, err = otp.VerifyAt(cfg, res.Code, base-step, window)
		require.NoError(t, err)
		assert.True(t, ok, "window %d steps early must still verify", window)

		ok, err = otp.VerifyAt(cfg, res.Code, base+cfg.TimeStep()*int64(window+1), window)
		require.NoError(t, err)
		assert.False(t, ok, "one step past the window must fail")
	}
}

func TestVerifyAt_Rejections(t *testing.T) {
	t.Parallel()

	cfg, err := otp.NewConfig(testSecret)
	require.NoError(t, err)

	res, err := otp.GenerateAt(cfg, 1234567890)
	require.NoError(t, err)

	// Wrong value, wrong length, empty.
	wrong := "000000"
	if res.Code == wrong {
		wrong = "000001"
	}
	for _, candidate := range []string{wrong, res.Code[:5], res.Code + "0", ""} {
		ok, err := otp.VerifyAt(cfg, candidate, 1234567890, 1)
		require.NoError(t, err)
		assert.False(t, ok, "candidate %q", candidate)
	}
}

func TestVerifyAt_NegativeWindow(t *testing.T) {
	t.Parallel()

	cfg, err := otp.NewConfig(testSecret)
	require.NoError(t, err)

	_, err = otp.VerifyAt(cfg, "123456", 1234567890, -1)
	require.Error(t, err)
	assert.ErrorIs(t, err, otp.ErrInvalidParameter)
}

func TestGenerateAndVerify_WallClock(t *testing.T) {
	t.Parallel()

	cfg, err := otp.NewConfig(testSecret)
	require.NoError(t, err)

	res, err := otp.Generate(cfg)
	require.NoError(t, err)

	ok, err := otp.Verify(cfg, res.Code)
	require.NoError(t, err)
	assert.True(t, ok)
}

// The engine must agree with an independent RFC 6238 implementation across
// algorithms, digit widths and timestamps.
func TestGenerateAt_MatchesReferenceImplementation(t *testing.T) {
	t.Parallel()

	algorithms := map[otp.Algorithm]pquerna.Algorithm{
		otp.AlgorithmSHA1:   pquerna.AlgorithmSHA1,
		otp.AlgorithmSHA256: pquerna.AlgorithmSHA256,
		otp.AlgorithmSHA512: pquerna.AlgorithmSHA512,
	}
	digitWidths := map[int]pquerna.Digits{
		6: pquerna.DigitsSix,
		8: pquerna.DigitsEight,
	}
	timestamps := []int64{59, 1111111111, 1234567890, 2000000000}

	secret, err := otp.GenerateSecret(20)
	require.NoError(t, err)

	for alg, refAlg := range algorithms {
		for digits, refDigits := range digitWidths {
			cfg, err := otp.NewConfig(secret,
				otp.WithDigits(digits),
				otp.WithAlgorithm(alg),
			)
			require.NoError(t, err)

			for _, ts := range timestamps {
				res, err := otp.GenerateAt(cfg, ts)
				require.NoError(t, err)

				want, err := pqtotp.GenerateCodeCustom(secret, time.Unix(ts, 0), pqtotp.ValidateOpts{
					Period:    30,
					Digits:    refDigits,
					Algorithm: refAlg,
				})
				require.NoError(t, err)
				assert.Equal(t, want, res.Code, "alg=%s digits=%d T=%d", alg, digits, ts)
			}
		}
	}
}
