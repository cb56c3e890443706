// Package api implements the HTTP request engine shared by every
// front-end of the client: one retry loop, one response decoder, one
// error classifier. The scheduling front-ends (blocking, future,
// reactor) all funnel into Client.Do.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"
)

// Default engine tuning.
const (
	DefaultTimeout = 30 * time.Second
)

// Result is a decoded JSON response, passed through to the caller
// unmodified.
type Result map[string]any

// Recorder receives engine observations. Implementations must be safe
// for concurrent use.
type Recorder interface {
	// Attempt records one physical HTTP attempt against an endpoint.
	Attempt(endpoint string)
	// Retry records a backoff-then-retry decision.
	Retry(endpoint string)
	// InFlight tracks the number of physical requests currently in
	// flight; delta is +1 on issue, -1 on completion.
	InFlight(delta int)
}

// Client is the HTTP request engine.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	retry      *RetryConfig
	logger     *slog.Logger
	recorder   Recorder
}

// Option configures the engine.
type Option func(*Client)

// WithBaseURL sets the base URL.
func WithBaseURL(url string) Option {
	return func(c *Client) {
		c.baseURL = url
	}
}

// WithTimeout sets the per-attempt connect/read timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// WithRetryConfig replaces the backoff configuration.
func WithRetryConfig(rc *RetryConfig) Option {
	return func(c *Client) {
		c.retry = rc
	}
}

// WithLogger sets a logger for retry diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithRecorder sets a metrics recorder.
func WithRecorder(r Recorder) Option {
	return func(c *Client) {
		c.recorder = r
	}
}

// New creates a new request engine.
func New(apiKey string, opts ...Option) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}

	c := &Client{
		baseURL: "https://enrichlayer.com",
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
		retry: DefaultRetryConfig(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// SetHTTPClient sets a custom HTTP client.
func (c *Client) SetHTTPClient(client *http.Client) {
	c.httpClient = client
}

// Retry returns the engine's backoff configuration.
func (c *Client) Retry() *RetryConfig {
	return c.retry
}

// Do executes one logical call: issue the GET, classify the response,
// back off and retry on 429, decode on success. Retries within a
// logical call are strictly sequential. endpoint is the dotted key
// used for diagnostics; query must already be encoded and validated.
func (c *Client) Do(ctx context.Context, endpoint, path string, query url.Values) (Result, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	for attempt := 1; ; attempt++ {
		status, header, body, err := c.attempt(ctx, endpoint, u)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			return nil, err
		}

		if status >= 200 && status < 300 {
			return decode(body)
		}

		if status != http.StatusTooManyRequests {
			return nil, classify(status, body)
		}

		delay, ok := c.retry.NextDelay(attempt, parseRetryAfter(header))
		if !ok {
			return nil, &RateLimitError{
				Attempts: attempt,
				Message:  extractMessage(body),
			}
		}

		if c.logger != nil {
			c.logger.Debug("rate limited, backing off",
				"endpoint", endpoint,
				"attempt", attempt,
				"delay", delay,
			)
		}
		if c.recorder != nil {
			c.recorder.Retry(endpoint)
		}

		if err := c.retry.Wait(ctx, delay); err != nil {
			return nil, err
		}
	}
}

// attempt performs a single physical HTTP exchange.
func (c *Client) attempt(ctx context.Context, endpoint, requestURL string) (int, http.Header, []byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return 0, nil, nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())

	if c.recorder != nil {
		c.recorder.Attempt(endpoint)
		c.recorder.InFlight(1)
		defer c.recorder.InFlight(-1)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, nil, nil, &NetworkError{
			Err:     err,
			URL:     requestURL,
			Timeout: isTimeout(err),
		}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, nil, &NetworkError{
			Err:     err,
			URL:     requestURL,
			Timeout: isTimeout(err),
		}
	}

	return resp.StatusCode, resp.Header, body, nil
}

// decode parses a 2xx body. An empty or non-JSON body is a
// DecodeError, never a silent empty result.
func decode(body []byte) (Result, error) {
	if len(body) == 0 {
		return nil, &DecodeError{Err: errors.New("empty response body")}
	}

	var result Result
	if err := json.Unmarshal(body, &result); err != nil {
		snippet := string(body)
		if len(snippet) > 200 {
			snippet = snippet[:200]
		}
		return nil, &DecodeError{Err: err, Body: snippet}
	}
	return result, nil
}

func isTimeout(err error) bool {
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}
	return errors.Is(err, context.DeadlineExceeded)
}
