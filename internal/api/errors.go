package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// Common API errors that can be checked with errors.Is.
var (
	// ErrAuthentication indicates the bearer token was rejected (401/403).
	ErrAuthentication = errors.New("authentication failed")
	// ErrNotFound indicates the looked-up entity does not exist (404).
	ErrNotFound = errors.New("not found")
	// ErrValidation indicates the server rejected the request parameters (400/422).
	ErrValidation = errors.New("invalid request")
	// ErrRateLimited indicates a 429 response.
	ErrRateLimited = errors.New("rate limit exceeded")
	// ErrServer indicates a 5xx response.
	ErrServer = errors.New("server error")
)

// APIError represents a terminal HTTP error from the EnrichLayer API.
type APIError struct {
	StatusCode int
	Message    string
	RequestID  string
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
	case e.StatusCode == 429:
		return target == ErrRateLimited
	case e.StatusCode >= 500:
		return target == ErrServer
	}
	return false
}

// RateLimitError is returned when the backoff policy has exhausted its
// attempt budget against persistent 429 responses.
type RateLimitError struct {
	Attempts int
	Message  string
}

func (e *RateLimitError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("rate limit exhausted after %d attempts: %s", e.Attempts, e.Message)
	}
	return fmt.Sprintf("rate limit exhausted after %d attempts", e.Attempts)
}

// Is implements errors.Is for sentinel error matching.
func (e *RateLimitError) Is(target error) bool {
	return target == ErrRateLimited
}

// DecodeError is returned when a 2xx response body cannot be parsed
// as JSON.
type DecodeError struct {
	Err  error
	Body string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode response: %v", e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// NetworkError represents a transport-level failure, including
// connect/read timeouts.
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

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// classify maps a non-2xx status and response body to an error. Pure
// function: no I/O, no retry decisions.
func classify(statusCode int, body []byte) error {
	return &APIError{
		StatusCode: statusCode,
		Message:    extractMessage(body),
		RequestID:  extractRequestID(body),
	}
}

// extractMessage pulls a human-readable message out of an error body.
// The API returns {"error": ...} or {"description": ...}; anything
// else is used verbatim, truncated.
func extractMessage(body []byte) string {
	var errBody struct {
		Error       string `json:"error"`
		Description string `json:"description"`
		Message     string `json:"message"`
	}
	if err := json.Unmarshal(body, &errBody); err == nil {
		switch {
		case errBody.Error != "":
			return errBody.Error
		case errBody.Description != "":
			return errBody.Description
		case errBody.Message != "":
			return errBody.Message
		}
	}
	msg := strings.TrimSpace(string(body))
	if len(msg) > 200 {
		msg = msg[:200]
	}
	return msg
}

func extractRequestID(body []byte) string {
	var errBody struct {
		RequestID string `json:"request_id"`
	}
	if err := json.Unmarshal(body, &errBody); err == nil {
		return errBody.RequestID
	}
	return ""
}
