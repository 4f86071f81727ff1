package intervals

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// ErrRequestFailed marks network-level failures (timeout, connection refused,
// DNS). Kept distinct from *APIError, which always carries an HTTP status the
// upstream actually returned.
var ErrRequestFailed = errors.New("intervals api request failed")

type ErrorCategory string

const (
	CategoryAuth        ErrorCategory = "auth"
	CategoryNotFound    ErrorCategory = "not_found"
	CategoryRateLimited ErrorCategory = "rate_limited"
	CategoryServer      ErrorCategory = "server"
	CategoryClient      ErrorCategory = "client"
)

// APIError is returned for any non-2xx response from the Intervals.icu API.
type APIError struct {
	StatusCode int
	Message    string
	RawBody    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("intervals api: status %d: %s", e.StatusCode, e.Message)
}

func (e *APIError) Category() ErrorCategory {
	switch {
	case e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden:
		return CategoryAuth
	case e.StatusCode == http.StatusNotFound:
		return CategoryNotFound
	case e.StatusCode == http.StatusTooManyRequests:
		return CategoryRateLimited
	case e.StatusCode >= 500:
		return CategoryServer
	default:
		return CategoryClient
	}
}

// AsAPIError unwraps err into an *APIError when one is in the chain.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// newAPIError extracts a human-readable message from an error response body.
// Intervals.icu returns either {"error": "..."} or {"message": "..."}; when
// neither parses, the raw body (or the status text) is used so the message is
// never empty.
func newAPIError(statusCode int, body []byte) *APIError {
	apiErr := &APIError{
		StatusCode: statusCode,
		RawBody:    string(body),
	}

	var parsed struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &parsed); err == nil {
		if parsed.Error != "" {
			apiErr.Message = parsed.Error
		} else if parsed.Message != "" {
			apiErr.Message = parsed.Message
		}
	}

	if apiErr.Message == "" {
		if trimmed := strings.TrimSpace(string(body)); trimmed != "" && len(trimmed) < 300 {
			apiErr.Message = trimmed
		} else {
			apiErr.Message = http.StatusText(statusCode)
		}
	}
	if apiErr.Message == "" {
		apiErr.Message = fmt.Sprintf("upstream returned status %d", statusCode)
	}

	return apiErr
}
