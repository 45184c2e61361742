// Package api exposes the otp engine over HTTP as a small JSON API.
//
// The package owns everything HTTP-specific: request parsing, parameter
// defaulting, the secret-length policy, error-to-status mapping, CORS, and
// request logging. The engine in pkg/otp stays wire-format agnostic; its
// typed errors are translated here into 400-class JSON bodies of the form
// {"error": "..."}.
//
// Endpoints:
//
//	POST /api/generate
//	    {"secret": "...", "time_step": 30, "t0": 0, "digits": 6, "algorithm": "sha1"}
//	    → {"success": true, "otp": "...", "time_remaining": 12, "counter": 57891234,
//	       "timestamp": 1736700000, "parameters": {...}}
//
//	POST /api/verify
//	    {"secret": "...", "otp": "123456", "window": 1, ...}
//	    → {"success": true, "valid": true}
//
//	GET /api/generate-secret?length=32
//	    → {"success": true, "secret": "..."}
//
//	GET /api/health
//	    → {"status": "healthy", "timestamp": 1736700000}
//
// All body fields except secret (and otp for verify) are optional and default
// to the RFC 6238 standard parameters.
package api
