package api

import (
	"context"
	"math"
	"math/rand"
	"net/http"
	"strconv"
	"time"
)

// RetryConfig configures the backoff policy applied to rate-limited
// (HTTP 429) responses. No other status is ever retried.
type RetryConfig struct {
	// MaxAttempts is the maximum number of physical HTTP attempts per
	// logical call, including the first one.
	MaxAttempts int
	// BaseDelay is the delay before the second attempt.
	BaseDelay time.Duration
	// MaxDelay caps the per-attempt delay.
	MaxDelay time.Duration
	// Multiplier is the factor by which the delay grows per attempt.
	Multiplier float64
	// Jitter is the randomization factor (0.0 to 1.0) applied to
	// computed delays to prevent thundering herd. It is never applied
	// to a server-provided Retry-After hint.
	Jitter float64
}

// DefaultRetryConfig returns the default backoff configuration.
func DefaultRetryConfig() *RetryConfig {
	return &RetryConfig{
		MaxAttempts: 3,
		BaseDelay:   time.Second,
		MaxDelay:    30 * time.Second,
		Multiplier:  2.0,
		Jitter:      0.2,
	}
}

// NextDelay decides whether a rate-limited attempt may be retried.
// attempt is 1-based and counts physical attempts already made. A
// non-negative retryAfter is the server's hint and takes precedence
// over the computed exponential delay. The second return is false when
// the attempt budget is exhausted.
func (r *RetryConfig) NextDelay(attempt int, retryAfter time.Duration) (time.Duration, bool) {
	if attempt >= r.MaxAttempts {
		return 0, false
	}
	if retryAfter >= 0 {
		return retryAfter, true
	}
	return r.delay(attempt), true
}

// delay computes the exponential delay before attempt+1 with jitter.
func (r *RetryConfig) delay(attempt int) time.Duration {
	d := float64(r.BaseDelay) * math.Pow(r.Multiplier, float64(attempt-1))
	if d > float64(r.MaxDelay) {
		d = float64(r.MaxDelay)
	}

	if r.Jitter > 0 {
		jitterAmount := d * r.Jitter
		d = d - jitterAmount + (rand.Float64() * 2 * jitterAmount)
	}

	return time.Duration(d)
}

// Wait sleeps for the given delay using a timer, honoring context
// cancellation. Never busy-waits.
func (r *RetryConfig) Wait(ctx context.Context, delay time.Duration) error {
	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// parseRetryAfter extracts a numeric seconds Retry-After hint from the
// response headers. Returns -1 when absent or non-numeric; HTTP-date
// forms are ignored since the API only emits seconds.
func parseRetryAfter(h http.Header) time.Duration {
	v := h.Get("Retry-After")
	if v == "" {
		return -1
	}
	secs, err := strconv.ParseFloat(v, 64)
	if err != nil || secs < 0 {
		return -1
	}
	return time.Duration(secs * float64(time.Second))
}
