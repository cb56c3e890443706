package enrichlayer

import (
	"errors"
	"fmt"

	"github.com/enrichlayer/client-go/internal/api"
	"github.com/enrichlayer/client-go/internal/catalog"
)

// Sentinel errors for errors.Is() checks
var (
	// ErrMissingAPIKey is returned when no API key can be resolved at
	// construction time.
	ErrMissingAPIKey = errors.New("API key is required")

	// ErrMissingParameter is returned when a required endpoint
	// parameter is absent.
	ErrMissingParameter = errors.New("missing required parameter")

	// ErrUnknownParameter is returned when a caller passes a parameter
	// the endpoint does not declare.
	ErrUnknownParameter = errors.New("unknown parameter")

	// ErrAuthentication is returned when the API key is invalid or
	// lacks permission (HTTP 401/403).
	ErrAuthentication = errors.New("authentication failed")

	// ErrNotFound is returned when the looked-up entity does not exist
	// (HTTP 404).
	ErrNotFound = errors.New("not found")

	// ErrValidation is returned when the server rejects the request
	// parameters (HTTP 400/422).
	ErrValidation = errors.New("invalid request")

	// ErrRateLimitExhausted is returned when persistent HTTP 429
	// responses outlast the backoff policy's attempt budget.
	ErrRateLimitExhausted = errors.New("rate limit exhausted")

	// ErrServer is returned on HTTP 5xx responses.
	ErrServer = errors.New("server error")

	// ErrNetworkTimeout is returned when a physical attempt exceeds
	// the transport timeout.
	ErrNetworkTimeout = errors.New("network timeout")

	// ErrDecode is returned when a 2xx response body is empty or not
	// valid JSON.
	ErrDecode = errors.New("response decode failed")
)

// EnrichLayerError is implemented by all SDK errors.
type EnrichLayerError interface {
	error
	EnrichLayerError() // marker method
}

// MissingParameterError reports a required parameter absent from the
// call arguments. The call fails before any HTTP request is issued.
type MissingParameterError struct {
	Endpoint  string
	Parameter string
}

func (e *MissingParameterError) Error() string {
	return fmt.Sprintf("%s: missing required parameter %q", e.Endpoint, e.Parameter)
}

// Is implements errors.Is for sentinel error matching.
func (e *MissingParameterError) Is(target error) bool {
	return target == ErrMissingParameter
}

// EnrichLayerError implements the EnrichLayerError interface.
func (e *MissingParameterError) EnrichLayerError() {}

// UnknownParameterError reports an argument the endpoint does not
// declare. The API silently ignores unrecognized query parameters, so
// these fail fast instead of masking typos.
type UnknownParameterError struct {
	Endpoint  string
	Parameter string
}

func (e *UnknownParameterError) Error() string {
	return fmt.Sprintf("%s: unknown parameter %q", e.Endpoint, e.Parameter)
}

// Is implements errors.Is for sentinel error matching.
func (e *UnknownParameterError) Is(target error) bool {
	return target == ErrUnknownParameter
}

// EnrichLayerError implements the EnrichLayerError interface.
func (e *UnknownParameterError) EnrichLayerError() {}

// APIError represents a terminal HTTP error from the EnrichLayer API.
type APIError struct {
	StatusCode int
	Message    string
	RequestID  string // if returned by server
}

func (e *APIError) Error() string {
	if e.RequestID != "" {
		if e.Message != "" {
			return fmt.Sprintf("API error %d: %s (request_id: %s)", e.StatusCode, e.Message, e.RequestID)
		}
		return fmt.Sprintf("API error %d (request_id: %s)", e.StatusCode, e.RequestID)
	}
	if e.Message != "" {
		return fmt.Sprintf("API error %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("API error %d", e.StatusCode)
}

// Is implements errors.Is for sentinel error matching.
func (e *APIError) Is(target error) bool {
	switch {
	case e.StatusCode == 401 || e.StatusCode == 403:
		return target == ErrAuthentication
	case e.StatusCode == 404:
		return target == ErrNotFound
	case e.StatusCode == 400 || e.StatusCode == 422:
		return target == ErrValidation
	case e.StatusCode >= 500:
		return target == ErrServer
	}
	return false
}

// EnrichLayerError implements the EnrichLayerError interface.
func (e *APIError) EnrichLayerError() {}

// RateLimitExhaustedError is returned when a logical call spent its
// entire attempt budget against HTTP 429 responses.
type RateLimitExhaustedError struct {
	Attempts int
	Message  string
}

func (e *RateLimitExhaustedError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("rate limit exhausted after %d attempts: %s", e.Attempts, e.Message)
	}
	return fmt.Sprintf("rate limit exhausted after %d attempts", e.Attempts)
}

// Is implements errors.Is for sentinel error matching.
func (e *RateLimitExhaustedError) Is(target error) bool {
	return target == ErrRateLimitExhausted
}

// EnrichLayerError implements the EnrichLayerError interface.
func (e *RateLimitExhaustedError) EnrichLayerError() {}

// DecodeError represents a 2xx response whose body could not be
// parsed as JSON.
type DecodeError struct {
	Err  error
	Body string // leading bytes of the offending body
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode response: %v", e.Err)
}

// Unwrap returns the underlying error.
func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is for sentinel error matching.
func (e *DecodeError) Is(target error) bool {
	return target == ErrDecode
}

// EnrichLayerError implements the EnrichLayerError interface.
func (e *DecodeError) EnrichLayerError() {}

// NetworkError represents a transport-level failure.
type NetworkError struct {
	Err     error
	URL     string
	Timeout bool
}

func (e *NetworkError) Error() string {
	if e.Timeout {
		return fmt.Sprintf("network timeout: %v", e.Err)
	}
	return fmt.Sprintf("network error: %v", e.Err)
}

// Unwrap returns the underlying error.
func (e *NetworkError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is for sentinel error matching.
func (e *NetworkError) Is(target error) bool {
	return e.Timeout && target == ErrNetworkTimeout
}

// EnrichLayerError implements the EnrichLayerError interface.
func (e *NetworkError) EnrichLayerError() {}

// wrapError converts internal errors to public errors.
// This ensures that errors.Is() checks work with public sentinel errors.
func wrapError(err error) error {
	if err == nil {
		return nil
	}

	var missingErr *catalog.MissingParameterError
	if errors.As(err, &missingErr) {
		return &MissingParameterError{
			Endpoint:  missingErr.Endpoint,
			Parameter: missingErr.Parameter,
		}
	}

	var unknownErr *catalog.UnknownParameterError
	if errors.As(err, &unknownErr) {
		return &UnknownParameterError{
			Endpoint:  unknownErr.Endpoint,
			Parameter: unknownErr.Parameter,
		}
	}

	var rateErr *api.RateLimitError
	if errors.As(err, &rateErr) {
		return &RateLimitExhaustedError{
			Attempts: rateErr.Attempts,
			Message:  rateErr.Message,
		}
	}

	var apiErr *api.APIError
	if errors.As(err, &apiErr) {
		return &APIError{
			StatusCode: apiErr.StatusCode,
			Message:    apiErr.Message,
			RequestID:  apiErr.RequestID,
		}
	}

	var decErr *api.DecodeError
	if errors.As(err, &decErr) {
		return &DecodeError{
			Err:  decErr.Err,
			Body: decErr.Body,
		}
	}

	var netErr *api.NetworkError
	if errors.As(err, &netErr) {
		return &NetworkError{
			Err:     netErr.Err,
			URL:     netErr.URL,
			Timeout: netErr.Timeout,
		}
	}

	return err
}
