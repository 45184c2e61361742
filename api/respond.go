package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/dmitrymomot/otpkit/pkg/logger"
	"github.com/dmitrymomot/otpkit/pkg/otp"
)

type errorResponse struct {
	Error string `json:"error"`
}

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// respondError maps an error to its HTTP status: validation failures from the
// engine or the binding layer become 400, everything else 500. The joined
// error chain is flattened to one line for the response body.
func (h *handlers) respondError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, otp.ErrInvalidSecret),
		errors.Is(err, otp.ErrInvalidAlgorithm),
		errors.Is(err, otp.ErrInvalidParameter),
		errors.Is(err, otp.ErrInvalidLength),
		errors.Is(err, errMissingSecret),
		errors.Is(err, errMissingOTP),
		errors.Is(err, ErrMissingContentType),
		errors.Is(err, ErrUnsupportedMediaType),
		errors.Is(err, ErrInvalidJSON):
		status = http.StatusBadRequest
	}

	if status >= http.StatusInternalServerError {
		h.log.ErrorContext(r.Context(), "request failed", logger.Error(err))
	}

	respondJSON(w, status, errorResponse{
		Error: strings.ReplaceAll(err.Error(), "\n", ": "),
	})
}
