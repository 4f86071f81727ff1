// Package respond builds the uniform tool response envelope. Every tool
// invocation that completes, success or handled failure, returns exactly
// this three-part shape:
//
//	{"data": ..., "analysis": ..., "metadata": {...}}
//
// and never a raw upstream payload or a raw error.
package respond

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/johnkeller101/intervals-icu-mcp/internal/config"
	"github.com/johnkeller101/intervals-icu-mcp/internal/intervals"
)

// Meta is free-form metadata attached to an envelope.
type Meta map[string]any

// Envelope is the fixed response shape. All three keys are always present.
type Envelope struct {
	Data     any `json:"data"`
	Analysis any `json:"analysis"`
	Metadata any `json:"metadata"`
}

// Options are the optional parts of a successful envelope.
type Options struct {
	Analysis  any
	Metadata  Meta
	QueryType string
}

// now is swapped in tests for a stable fetched_at.
var now = time.Now

// Build wraps data into the envelope and serializes it. Date/time values are
// normalized to ISO-8601; the inputs are never mutated (normalization builds
// fresh maps/slices). Metadata is enriched with fetched_at and, when given,
// query_type.
func Build[T any](data T, opts Options) (string, error) {
	meta := make(map[string]any, len(opts.Metadata)+2)
	for k, v := range opts.Metadata {
		meta[k] = normalizeDates(v)
	}
	meta["fetched_at"] = now().Format(time.RFC3339)
	if opts.QueryType != "" {
		meta["query_type"] = opts.QueryType
	}

	envelope := Envelope{
		Data:     normalizeDates(data),
		Analysis: normalizeDates(opts.Analysis),
		Metadata: meta,
	}

	raw, err := json.Marshal(envelope)
	if err != nil {
		return "", fmt.Errorf("marshal envelope: %w", err)
	}
	return string(raw), nil
}

// Error types surfaced to the invoking host inside error envelopes.
const (
	ErrTypeConfiguration = "configuration_error"
	ErrTypeValidation    = "validation_error"
	ErrTypeAPI           = "api_error"
	ErrTypeNetwork       = "network_error"
	ErrTypeInternal      = "internal_error"
)

// Error builds an error envelope: nil data, nil analysis, and an error
// descriptor inside metadata. It cannot fail.
func Error(message, errType string, suggestions ...string) string {
	desc := map[string]any{
		"message":   message,
		"type":      errType,
		"timestamp": now().Format(time.RFC3339),
	}
	if len(suggestions) > 0 {
		desc["suggestions"] = suggestions
	}

	envelope := Envelope{
		Metadata: map[string]any{"error": desc},
	}
	raw, err := json.Marshal(envelope)
	if err != nil {
		// map[string]any of plain strings always marshals; kept as a guard
		return `{"data":null,"analysis":null,"metadata":{"error":{"message":"internal error","type":"internal_error"}}}`
	}
	return string(raw)
}

// ValidationError marks bad tool input detected before any upstream call.
type ValidationError struct {
	Message     string
	Suggestions []string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Validationf builds a *ValidationError.
func Validationf(format string, args ...any) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// FromError categorizes an error from a tool body into the matching error
// envelope. API-status failures, network failures, validation failures and
// everything else get distinct error types.
func FromError(err error) string {
	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		return Error(validationErr.Message, ErrTypeValidation, validationErr.Suggestions...)
	}

	var apiErr *intervals.APIError
	if errors.As(err, &apiErr) {
		return Error(apiErr.Message, ErrTypeAPI,
			fmt.Sprintf("upstream status %d (%s)", apiErr.StatusCode, apiErr.Category()))
	}

	if errors.Is(err, ErrMissingCredentials) {
		return MissingCredentials(err)
	}

	if errors.Is(err, intervals.ErrRequestFailed) {
		return Error(err.Error(), ErrTypeNetwork)
	}

	return Error("unexpected error: "+err.Error(), ErrTypeInternal)
}

// ErrMissingCredentials gates tool bodies that need upstream access.
var ErrMissingCredentials = errors.New("intervals.icu credentials not configured")

// MissingCredentials is the setup-guidance envelope returned before any
// network call is attempted.
func MissingCredentials(err error) string {
	msg := ErrMissingCredentials.Error()
	if err != nil {
		msg = err.Error()
	}
	return Error(msg, ErrTypeConfiguration,
		"Set the "+config.EnvAPIKey+" env var to your Intervals.icu API key (Settings -> Developer).",
		"Set the "+config.EnvAthleteID+" env var to your athlete id (e.g. i296970).",
	)
}
