package api

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrymomot/otpkit/pkg/otp"
)

// Secret length policy for the generate-secret endpoint. The generator itself
// accepts any positive length; the boundary narrows it to sizes that are both
// strong enough and practical to type into an authenticator app.
const (
	MinSecretLength     = 16
	MaxSecretLength     = 64
	DefaultSecretLength = 32
)

var (
	errMissingSecret = errors.New("secret is required")
	errMissingOTP    = errors.New("otp is required")
)

type handlers struct {
	log *slog.Logger
}

type generateRequest struct {
	Secret    string `json:"secret"`
	TimeStep  *int64 `json:"time_step"`
	T0        int64  `json:"t0"`
	Digits    *int   `json:"digits"`
	Algorithm string `json:"algorithm"`
}

type verifyRequest struct {
	generateRequest
	OTP    string `json:"otp"`
	Window *int   `json:"window"`
}

type generateResponse struct {
	Success       bool           `json:"success"`
	OTP           string         `json:"otp"`
	TimeRemaining int64          `json:"time_remaining"`
	Counter       int64          `json:"counter"`
	Timestamp     int64          `json:"timestamp"`
	Parameters    echoParameters `json:"parameters"`
}

// echoParameters reflects the effective configuration back to the caller so
// clients can see which defaults were applied.
type echoParameters struct {
	TimeStep  int64  `json:"time_step"`
	T0        int64  `json:"t0"`
	Digits    int    `json:"digits"`
	Algorithm string `json:"algorithm"`
}

type verifyResponse struct {
	Success bool `json:"success"`
	Valid   bool `json:"valid"`
}

type secretResponse struct {
	Success bool   `json:"success"`
	Secret  string `json:"secret"`
}

// config builds a validated otp.Config from the request, applying RFC 6238
// defaults for omitted fields.
func (req generateRequest) config() (otp.Config, error) {
	if req.Secret == "" {
		return otp.Config{}, errMissingSecret
	}

	opts := []otp.Option{otp.WithT0(req.T0)}
	if req.TimeStep != nil {
		opts = append(opts, otp.WithTimeStep(*req.TimeStep))
	}
	if req.Digits != nil {
		opts = append(opts, otp.WithDigits(*req.Digits))
	}
	if req.Algorithm != "" {
		alg, err := otp.ParseAlgorithm(req.Algorithm)
		if err != nil {
			return otp.Config{}, err
		}
		opts = append(opts, otp.WithAlgorithm(alg))
	}

	return otp.NewConfig(req.Secret, opts...)
}

func (h *handlers) generate(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if err := bindJSON(r, &req); err != nil {
		h.respondError(w, r, err)
		return
	}

	cfg, err := req.config()
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	res, err := otp.GenerateAt(cfg, time.Now().Unix())
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, generateResponse{
		Success:       true,
		OTP:           res.Code,
		TimeRemaining: res.TimeRemaining,
		Counter:       res.Counter,
		Timestamp:     res.Timestamp,
		Parameters: echoParameters{
			TimeStep:  cfg.TimeStep(),
			T0:        cfg.T0(),
			Digits:    cfg.Digits(),
			Algorithm: strings.ToLower(cfg.Algorithm().String()),
		},
	})
}

func (h *handlers) verify(w http.ResponseWriter, r *http.Request) {
	var req verifyRequest
	if err := bindJSON(r, &req); err != nil {
		h.respondError(w, r, err)
		return
	}
	if req.OTP == "" {
		h.respondError(w, r, errMissingOTP)
		return
	}

	cfg, err := req.config()
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	window := otp.DefaultWindow
	if req.Window != nil {
		window = *req.Window
	}

	valid, err := otp.VerifyAt(cfg, req.OTP, time.Now().Unix(), window)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, verifyResponse{Success: true, Valid: valid})
}

func (h *handlers) generateSecret(w http.ResponseWriter, r *http.Request) {
	length := DefaultSecretLength
	if raw := r.URL.Query().Get("length"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			h.respondError(w, r, errors.Join(otp.ErrInvalidLength, fmt.Errorf("length %q is not an integer", raw)))
			return
		}
		length = parsed
	}
	if length < MinSecretLength || length > MaxSecretLength {
		h.respondError(w, r, errors.Join(otp.ErrInvalidLength, fmt.Errorf("length must be between %d and %d, got %d", MinSecretLength, MaxSecretLength, length)))
		return
	}

	secret, err := otp.GenerateSecret(length)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, secretResponse{Success: true, Secret: secret})
}
