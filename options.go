package enrichlayer

import (
	"log/slog"
	"net/http"
	"time"
)

const (
	defaultBaseURL         = "https://enrichlayer.com"
	defaultTimeout         = 30 * time.Second
	defaultMaxAttempts     = 3
	defaultBaseDelay       = time.Second
	defaultMaxBackoff      = 30 * time.Second
	defaultBackoffFactor   = 2.0
	defaultBackoffJitter   = 0.2
	defaultBulkConcurrency = 10
)

// EnvAPIKey is the environment variable consulted by NewFromEnv,
// NewAsyncFromEnv, and NewReactorFromEnv. It is read exactly once at
// construction time.
const EnvAPIKey = "ENRICHLAYER_API_KEY"

// clientConfig holds configuration for the client.
type clientConfig struct {
	baseURL    string
	httpClient *http.Client
	timeout    time.Duration

	maxAttempts   int
	baseDelay     time.Duration
	maxBackoff    time.Duration
	backoffFactor float64
	backoffJitter float64

	bulkConcurrency int

	logger  *slog.Logger
	metrics *Metrics
}

// bulkConfig holds configuration for a single bulk run.
type bulkConfig struct {
	concurrency int
}

// Option configures the client.
type Option func(*clientConfig)

// BulkOption configures a bulk run.
type BulkOption func(*bulkConfig)

func defaultConfig() *clientConfig {
	return &clientConfig{
		baseURL:         defaultBaseURL,
		timeout:         defaultTimeout,
		maxAttempts:     defaultMaxAttempts,
		baseDelay:       defaultBaseDelay,
		maxBackoff:      defaultMaxBackoff,
		backoffFactor:   defaultBackoffFactor,
		backoffJitter:   defaultBackoffJitter,
		bulkConcurrency: defaultBulkConcurrency,
	}
}

// WithBaseURL sets the API base URL.
func WithBaseURL(url string) Option {
	return func(c *clientConfig) {
		c.baseURL = url
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *clientConfig) {
		c.httpClient = client
	}
}

// WithTimeout sets the per-attempt connect/read timeout.
// Default: 30 seconds
func WithTimeout(timeout time.Duration) Option {
	return func(c *clientConfig) {
		c.timeout = timeout
	}
}

// WithMaxAttempts sets the maximum number of physical HTTP attempts
// per logical call, including the first one. Only HTTP 429 responses
// consume extra attempts; every other failure is terminal.
// Default: 3
func WithMaxAttempts(n int) Option {
	return func(c *clientConfig) {
		c.maxAttempts = n
	}
}

// WithBaseDelay sets the backoff delay before the second attempt.
// Default: 1 second
func WithBaseDelay(d time.Duration) Option {
	return func(c *clientConfig) {
		c.baseDelay = d
	}
}

// WithMaxBackoff caps the per-attempt backoff delay.
// Default: 30 seconds
func WithMaxBackoff(d time.Duration) Option {
	return func(c *clientConfig) {
		c.maxBackoff = d
	}
}

// WithBackoffFactor sets the exponential growth factor for backoff
// delays.
// Default: 2.0
func WithBackoffFactor(f float64) Option {
	return func(c *clientConfig) {
		c.backoffFactor = f
	}
}

// WithBackoffJitter sets the randomization factor (0.0 to 1.0) applied
// to computed backoff delays. Server-provided Retry-After hints are
// never jittered. Set to 0 for deterministic delays.
// Default: 0.2
func WithBackoffJitter(f float64) Option {
	return func(c *clientConfig) {
		c.backoffJitter = f
	}
}

// WithBulkConcurrency sets the default maximum number of logical calls
// a bulk run keeps in flight. Individual runs can override it with
// WithConcurrency.
// Default: 10
func WithBulkConcurrency(n int) Option {
	return func(c *clientConfig) {
		c.bulkConcurrency = n
	}
}

// WithLogger sets a logger for retry/backoff diagnostics. Diagnostics
// only; the client works identically without one.
func WithLogger(logger *slog.Logger) Option {
	return func(c *clientConfig) {
		c.logger = logger
	}
}

// WithMetrics attaches Prometheus instrumentation to the request
// engine.
func WithMetrics(m *Metrics) Option {
	return func(c *clientConfig) {
		c.metrics = m
	}
}

// WithConcurrency bounds the number of in-flight logical calls for one
// bulk run, overriding the client default.
func WithConcurrency(n int) BulkOption {
	return func(c *bulkConfig) {
		c.concurrency = n
	}
}
