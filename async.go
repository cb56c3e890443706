package enrichlayer

import (
	"context"
	"errors"
	"os"
	"sync"

	"golang.org/x/sync/semaphore"
)

// ErrPending is returned by Future.Result while the call has not yet
// resolved.
var ErrPending = errors.New("call still pending")

// AsyncClient is the future-based EnrichLayer client. Calls return
// immediately with a *Future; the caller awaits or polls it. The
// retry/backoff behavior is identical to the blocking client — the
// front-ends share one request engine.
type AsyncClient struct {
	c *Client
}

// NewAsync creates a future-based client with an explicit API key.
func NewAsync(apiKey string, opts ...Option) (*AsyncClient, error) {
	c, err := New(apiKey, opts...)
	if err != nil {
		return nil, err
	}
	return &AsyncClient{c: c}, nil
}

// NewAsyncFromEnv creates a future-based client, resolving the API key
// from ENRICHLAYER_API_KEY once at construction.
func NewAsyncFromEnv(opts ...Option) (*AsyncClient, error) {
	return NewAsync(os.Getenv(EnvAPIKey), opts...)
}

// Future represents a pending logical call. It resolves exactly once.
type Future struct {
	done   chan struct{}
	cancel context.CancelFunc

	mu     sync.Mutex
	result Result
	err    error
}

func newFuture(cancel context.CancelFunc) *Future {
	return &Future{
		done:   make(chan struct{}),
		cancel: cancel,
	}
}

func (f *Future) resolve(result Result, err error) {
	f.mu.Lock()
	f.result = result
	f.err = err
	f.mu.Unlock()
	close(f.done)
}

// Done returns a channel closed when the call has resolved.
func (f *Future) Done() <-chan struct{} {
	return f.done
}

// Await blocks until the call resolves or ctx is cancelled. Cancelling
// ctx only abandons the wait; use Cancel to abandon the call itself.
func (f *Future) Await(ctx context.Context) (Result, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-f.done:
		return f.Result()
	}
}

// Result returns the outcome, or ErrPending if the call has not yet
// resolved.
func (f *Future) Result() (Result, error) {
	select {
	case <-f.done:
	default:
		return nil, ErrPending
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.result, f.err
}

// Cancel abandons the pending call: further retries stop and the
// in-flight request is released. Already-completed attempts are not
// undone. The future resolves with context.Canceled.
func (f *Future) Cancel() {
	f.cancel()
}

// Call starts one logical call and returns its future. Encoding
// failures surface through the future, still without any network I/O.
func (a *AsyncClient) Call(ctx context.Context, endpoint string, params Params) *Future {
	callCtx, cancel := context.WithCancel(ctx)
	f := newFuture(cancel)

	go func() {
		defer cancel()
		result, err := a.c.Call(callCtx, endpoint, params)
		f.resolve(result, err)
	}()

	return f
}

// BulkFuture represents a pending bulk run.
type BulkFuture struct {
	done    chan struct{}
	cancel  context.CancelFunc
	results []BulkResult
}

// Done returns a channel closed when every job has resolved.
func (f *BulkFuture) Done() <-chan struct{} {
	return f.done
}

// Await blocks until the bulk run completes or ctx is cancelled.
func (f *BulkFuture) Await(ctx context.Context) ([]BulkResult, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-f.done:
		return f.results, nil
	}
}

// Cancel abandons the jobs still pending. Jobs already resolved keep
// their outcomes; abandoned ones report context.Canceled.
func (f *BulkFuture) Cancel() {
	f.cancel()
}

// CallBulk starts all jobs as independent logical calls, bounded by
// the configured concurrency, and returns a future for the ordered
// outcomes. One job's failure never aborts siblings.
func (a *AsyncClient) CallBulk(ctx context.Context, jobs []Job, opts ...BulkOption) *BulkFuture {
	cfg := applyBulkOptions(a.c.bulkConcurrency, opts)

	runCtx, cancel := context.WithCancel(ctx)
	f := &BulkFuture{
		done:    make(chan struct{}),
		cancel:  cancel,
		results: make([]BulkResult, len(jobs)),
	}

	sem := semaphore.NewWeighted(int64(cfg.concurrency))
	var wg sync.WaitGroup

	for i, job := range jobs {
		i, job := i, job
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := sem.Acquire(runCtx, 1); err != nil {
				f.results[i] = BulkResult{Err: err}
				return
			}
			defer sem.Release(1)

			value, err := a.c.Call(runCtx, job.Endpoint, job.Params)
			f.results[i] = BulkResult{Value: value, Err: err}
		}()
	}

	go func() {
		wg.Wait()
		cancel()
		close(f.done)
	}()

	return f
}
