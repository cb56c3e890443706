package enrichlayer

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMetrics_RecordsEngineActivity(t *testing.T) {
	var requests atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if requests.Add(1) == 1 {
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	metrics := NewMetrics(prometheus.NewRegistry())
	client := newTestClient(t, server.URL, WithMetrics(metrics))

	if _, err := client.Person().Get(context.Background(), Params{"linkedin_profile_url": "https://x"}); err != nil {
		t.Fatalf("Get() error = %v", err)
	}

	if got := testutil.ToFloat64(metrics.attempts.WithLabelValues("person.get")); got != 2 {
		t.Errorf("attempts counter = %v, want 2", got)
	}
	if got := testutil.ToFloat64(metrics.retries.WithLabelValues("person.get")); got != 1 {
		t.Errorf("retries counter = %v, want 1", got)
	}
	if got := testutil.ToFloat64(metrics.inFlight); got != 0 {
		t.Errorf("in-flight gauge = %v, want 0 after completion", got)
	}
}
