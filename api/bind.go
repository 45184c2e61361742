package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

var (
	// ErrMissingContentType is returned when a body-carrying request has no Content-Type header.
	ErrMissingContentType = errors.New("missing content type")
	// ErrUnsupportedMediaType is returned for content types other than application/json.
	ErrUnsupportedMediaType = errors.New("unsupported media type")
	// ErrInvalidJSON is returned when the request body is not a single well-formed JSON document.
	ErrInvalidJSON = errors.New("invalid JSON")
)

// bindJSON decodes a JSON request body into v in strict mode: the content
// type must be application/json, unknown fields are rejected, and the body
// must contain exactly one JSON document.
func bindJSON(r *http.Request, v any) error {
	contentType := r.Header.Get("Content-Type")
	if contentType == "" {
		return fmt.Errorf("%w: expected application/json", ErrMissingContentType)
	}

	mediaType := contentType
	if idx := strings.Index(contentType, ";"); idx != -1 {
		mediaType = strings.TrimSpace(contentType[:idx])
	}
	if mediaType != "application/json" {
		return fmt.Errorf("%w: got %s, expected application/json", ErrUnsupportedMediaType, mediaType)
	}

	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("%w: empty body", ErrInvalidJSON)
		}
		return fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}

	// Ensure the entire body was consumed.
	if err := decoder.Decode(&json.RawMessage{}); err != io.EOF {
		return fmt.Errorf("%w: unexpected data after JSON object", ErrInvalidJSON)
	}

	return nil
}
