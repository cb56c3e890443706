package enrichlayer

import (
	"context"
	"os"
	"sync"
)

// Reactor is the callback-based EnrichLayer client. Submit returns a
// *Deferred immediately; nothing progresses until Run is driving the
// event loop, and all callbacks execute serially on the Run goroutine.
// Network I/O runs on worker goroutines owned by the reactor, but
// every state transition is dispatched back onto the loop.
type Reactor struct {
	c *Client

	mu    sync.Mutex
	queue []task
	wake  chan struct{}

	stopOnce sync.Once
	stopped  chan struct{}
}

// task is a unit of work executed on the loop goroutine. The context
// is the one passed to Run.
type task func(ctx context.Context)

// NewReactor creates a reactor client with an explicit API key.
func NewReactor(apiKey string, opts ...Option) (*Reactor, error) {
	c, err := New(apiKey, opts...)
	if err != nil {
		return nil, err
	}
	return &Reactor{
		c:       c,
		wake:    make(chan struct{}, 1),
		stopped: make(chan struct{}),
	}, nil
}

// NewReactorFromEnv creates a reactor client, resolving the API key
// from ENRICHLAYER_API_KEY once at construction.
func NewReactorFromEnv(opts ...Option) (*Reactor, error) {
	return NewReactor(os.Getenv(EnvAPIKey), opts...)
}

// Run drives the event loop until ctx is cancelled. It must be running
// for any submitted call to make progress. Run is single-shot: once it
// returns, the reactor is stopped and unresolved deferreds never fire.
func (r *Reactor) Run(ctx context.Context) error {
	defer r.stopOnce.Do(func() { close(r.stopped) })

	for {
		r.mu.Lock()
		pending := r.queue
		r.queue = nil
		r.mu.Unlock()

		for _, t := range pending {
			t(ctx)
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-r.wake:
		}
	}
}

func (r *Reactor) enqueue(t task) {
	r.mu.Lock()
	r.queue = append(r.queue, t)
	r.mu.Unlock()

	select {
	case r.wake <- struct{}{}:
	default:
	}
}

// Deferred represents a pending logical call. Callbacks registered
// against it run serially on the reactor's loop goroutine.
type Deferred struct {
	r *Reactor

	mu        sync.Mutex
	complete  bool
	result    Result
	err       error
	callbacks []func(Result, error)
}

// OnComplete registers a callback fired once the call resolves, with
// either the decoded result or the terminal error. Registering after
// resolution schedules the callback on the next loop turn.
func (d *Deferred) OnComplete(fn func(Result, error)) {
	d.mu.Lock()
	if d.complete {
		result, err := d.result, d.err
		d.mu.Unlock()
		d.r.enqueue(func(context.Context) {
			fn(result, err)
		})
		return
	}
	d.callbacks = append(d.callbacks, fn)
	d.mu.Unlock()
}

// resolve runs on the loop goroutine.
func (d *Deferred) resolve(result Result, err error) {
	d.mu.Lock()
	if d.complete {
		d.mu.Unlock()
		return
	}
	d.complete = true
	d.result = result
	d.err = err
	callbacks := d.callbacks
	d.callbacks = nil
	d.mu.Unlock()

	for _, fn := range callbacks {
		fn(result, err)
	}
}

// Submit schedules one logical call and returns its deferred. The call
// uses the context passed to Run; cancelling it abandons retries and
// releases the in-flight request.
func (r *Reactor) Submit(endpoint string, params Params) *Deferred {
	d := &Deferred{r: r}

	r.enqueue(func(ctx context.Context) {
		go func() {
			result, err := r.c.Call(ctx, endpoint, params)
			r.enqueue(func(context.Context) {
				d.resolve(result, err)
			})
		}()
	})

	return d
}

// BulkDeferred represents a pending bulk run on the reactor.
type BulkDeferred struct {
	r       *Reactor
	results []BulkResult

	mu        sync.Mutex
	complete  bool
	callbacks []func([]BulkResult)
}

// OnComplete registers a callback fired once every job has resolved,
// with the outcomes in submission order.
func (d *BulkDeferred) OnComplete(fn func([]BulkResult)) {
	d.mu.Lock()
	if d.complete {
		d.mu.Unlock()
		d.r.enqueue(func(context.Context) {
			fn(d.results)
		})
		return
	}
	d.callbacks = append(d.callbacks, fn)
	d.mu.Unlock()
}

// resolve runs on the loop goroutine.
func (d *BulkDeferred) resolve() {
	d.mu.Lock()
	d.complete = true
	callbacks := d.callbacks
	d.callbacks = nil
	d.mu.Unlock()

	for _, fn := range callbacks {
		fn(d.results)
	}
}

// bulkRun schedules a bulk job on the reactor with a bounded number of
// in-flight logical calls. All fields are touched only on the loop
// goroutine.
type bulkRun struct {
	r        *Reactor
	d        *BulkDeferred
	jobs     []Job
	limit    int
	next     int
	inFlight int
	resolved int
}

func (s *bulkRun) launch(ctx context.Context) {
	for s.inFlight < s.limit && s.next < len(s.jobs) {
		i := s.next
		job := s.jobs[i]
		s.next++
		s.inFlight++

		go func() {
			value, err := s.r.c.Call(ctx, job.Endpoint, job.Params)
			s.r.enqueue(func(ctx context.Context) {
				s.d.results[i] = BulkResult{Value: value, Err: err}
				s.inFlight--
				s.resolved++
				if s.resolved == len(s.jobs) {
					s.d.resolve()
					return
				}
				s.launch(ctx)
			})
		}()
	}
}

// SubmitBulk schedules all jobs as independent logical calls, bounded
// by the configured concurrency, and returns a deferred for the
// ordered outcomes. One job's failure never aborts siblings.
func (r *Reactor) SubmitBulk(jobs []Job, opts ...BulkOption) *BulkDeferred {
	cfg := applyBulkOptions(r.c.bulkConcurrency, opts)

	d := &BulkDeferred{r: r, results: make([]BulkResult, len(jobs))}

	if len(jobs) == 0 {
		r.enqueue(func(context.Context) {
			d.resolve()
		})
		return d
	}

	s := &bulkRun{r: r, d: d, jobs: jobs, limit: cfg.concurrency}
	r.enqueue(s.launch)

	return d
}
