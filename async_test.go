package enrichlayer

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

func newTestAsyncClient(t *testing.T, serverURL string, opts ...Option) *AsyncClient {
	t.Helper()
	opts = append([]Option{
		WithBaseURL(serverURL),
		WithBaseDelay(time.Millisecond),
		WithBackoffJitter(0),
	}, opts...)
	client, err := NewAsync("test-key", opts...)
	if err != nil {
		t.Fatalf("NewAsync() error = %v", err)
	}
	return client
}

func TestAsyncClient_CallResolves(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"full_name":"Bill Gates"}`))
	}))
	defer server.Close()

	client := newTestAsyncClient(t, server.URL)

	f := client.Call(context.Background(), "person.get", Params{"linkedin_profile_url": "https://x"})

	result, err := f.Await(context.Background())
	if err != nil {
		t.Fatalf("Await() error = %v", err)
	}
	if result["full_name"] != "Bill Gates" {
		t.Errorf("result = %v", result)
	}

	// Done is closed and Result agrees with Await.
	select {
	case <-f.Done():
	default:
		t.Error("Done() not closed after Await returned")
	}
	again, err := f.Result()
	if err != nil || again["full_name"] != "Bill Gates" {
		t.Errorf("Result() = %v, %v", again, err)
	}
}

func TestFuture_ResultPending(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		close(started)
		<-release
		w.Write([]byte(`{}`))
	}))
	defer server.Close()
	defer close(release)

	client := newTestAsyncClient(t, server.URL)

	f := client.Call(context.Background(), "person.get", Params{"linkedin_profile_url": "https://x"})

	<-started
	if _, err := f.Result(); !errors.Is(err, ErrPending) {
		t.Errorf("Result() before resolution error = %v, want ErrPending", err)
	}
}

func TestFuture_ErrorSurfaces(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := newTestAsyncClient(t, server.URL)

	f := client.Call(context.Background(), "person.get", Params{"linkedin_profile_url": "https://x"})

	_, err := f.Await(context.Background())
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Await() error = %v, want ErrNotFound", err)
	}
}

func TestFuture_EncodingFailsWithoutRequest(t *testing.T) {
	var requests atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := newTestAsyncClient(t, server.URL)

	f := client.Call(context.Background(), "person.get", Params{})

	_, err := f.Await(context.Background())
	if !errors.Is(err, ErrMissingParameter) {
		t.Errorf("Await() error = %v, want ErrMissingParameter", err)
	}
	if got := requests.Load(); got != 0 {
		t.Errorf("HTTP requests = %d, want 0", got)
	}
}

func TestFuture_CancelAbandonsRetries(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	// Long backoff so cancellation lands mid-wait.
	client := newTestAsyncClient(t, server.URL, WithBaseDelay(10*time.Second))

	f := client.Call(context.Background(), "person.get", Params{"linkedin_profile_url": "https://x"})

	time.Sleep(50 * time.Millisecond)
	f.Cancel()

	start := time.Now()
	_, err := f.Await(context.Background())
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Await() error = %v, want context.Canceled", err)
	}
	if elapsed := time.Since(start); elapsed > time.Second {
		t.Errorf("Await() took %v after Cancel", elapsed)
	}
}

func TestAsyncClient_CallBulk(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("linkedin_profile_url") == "https://linkedin.com/in/user-2" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Write([]byte(`{"ok":true}`))
	}))
	defer server.Close()

	client := newTestAsyncClient(t, server.URL)

	f := client.CallBulk(context.Background(), profileJobs(5), WithConcurrency(2))

	results, err := f.Await(context.Background())
	if err != nil {
		t.Fatalf("Await() error = %v", err)
	}
	if len(results) != 5 {
		t.Fatalf("results length = %d, want 5", len(results))
	}
	for i, r := range results {
		if i == 2 {
			if !errors.Is(r.Err, ErrNotFound) {
				t.Errorf("results[2].Err = %v, want ErrNotFound", r.Err)
			}
			continue
		}
		if !r.Ok() {
			t.Errorf("results[%d] failed: %v", i, r.Err)
		}
	}
}

func TestAsyncClient_CallBulk_ConcurrencyBound(t *testing.T) {
	var inFlight, maxInFlight atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n := inFlight.Add(1)
		for {
			max := maxInFlight.Load()
			if n <= max || maxInFlight.CompareAndSwap(max, n) {
				break
			}
		}
		time.Sleep(10 * time.Millisecond)
		inFlight.Add(-1)
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := newTestAsyncClient(t, server.URL)

	f := client.CallBulk(context.Background(), profileJobs(30), WithConcurrency(4))
	if _, err := f.Await(context.Background()); err != nil {
		t.Fatalf("Await() error = %v", err)
	}

	if got := maxInFlight.Load(); got > 4 {
		t.Errorf("max in-flight requests = %d, want at most 4", got)
	}
}
