package enrichlayer

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Job is one item of a bulk run: an endpoint key plus its arguments.
type Job struct {
	Endpoint string
	Params   Params
}

// BulkResult is the outcome of one bulk item: a decoded result or the
// captured failure. Exactly one of Value/Err is set.
type BulkResult struct {
	Value Result
	Err   error
}

// Ok reports whether the item succeeded.
func (r BulkResult) Ok() bool {
	return r.Err == nil
}

func applyBulkOptions(defaultConcurrency int, opts []BulkOption) *bulkConfig {
	cfg := &bulkConfig{concurrency: defaultConcurrency}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.concurrency < 1 {
		cfg.concurrency = 1
	}
	return cfg
}

// DoBulk runs all jobs as independent logical calls, at most the
// configured concurrency in flight at once, and blocks until every
// job resolves. Results are ordered by submission, regardless of
// completion order. A job's terminal failure (including
// ErrRateLimitExhausted) is captured as its outcome and never aborts
// siblings; cancelling ctx abandons the jobs still pending.
func (c *Client) DoBulk(ctx context.Context, jobs []Job, opts ...BulkOption) []BulkResult {
	cfg := applyBulkOptions(c.bulkConcurrency, opts)

	results := make([]BulkResult, len(jobs))

	g := &errgroup.Group{}
	g.SetLimit(cfg.concurrency)

	for i, job := range jobs {
		i, job := i, job
		g.Go(func() error {
			value, err := c.Call(ctx, job.Endpoint, job.Params)
			results[i] = BulkResult{Value: value, Err: err}
			return nil
		})
	}

	// Failures are captured per item, never returned by the group.
	_ = g.Wait()

	return results
}
