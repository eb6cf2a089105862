package fetch

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

type payload struct {
	Value string `json:"value"`
}

func TestGetJSONCachesFreshResponses(t *testing.T) {
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		w.Write([]byte(`{"value":"ok"}`))
	}))
	defer srv.Close()

	c := NewClient(Config{BaseURL: srv.URL})
	ctx := context.Background()

	var p payload
	for i := 0; i < 3; i++ {
		if err := c.GetJSON(ctx, "/orders", &p); err != nil {
			t.Fatalf("GetJSON: %v", err)
		}
	}
	if p.Value != "ok" {
		t.Fatalf("want ok, got %q", p.Value)
	}
	if n := atomic.LoadInt32(&hits); n != 1 {
		t.Fatalf("want 1 upstream hit, got %d", n)
	}
}

func TestTransientErrorsRetryUpToCap(t *testing.T) {
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c := NewClient(Config{BaseURL: srv.URL, Retries: 3})

	var p payload
	err := c.GetJSON(context.Background(), "/orders", &p)
	if err == nil {
		t.Fatalf("want error")
	}
	var fe *Error
	if !errors.As(err, &fe) || fe.Kind != KindTransient {
		t.Fatalf("want transient error, got %v", err)
	}
	// One initial attempt plus three retries.
	if n := atomic.LoadInt32(&hits); n != 4 {
		t.Fatalf("want 4 attempts, got %d", n)
	}
}

func TestTransientRecoversMidRetry(t *testing.T) {
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&hits, 1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.Write([]byte(`{"value":"ok"}`))
	}))
	defer srv.Close()

	c := NewClient(Config{BaseURL: srv.URL, Retries: 3})

	var p payload
	if err := c.GetJSON(context.Background(), "/orders", &p); err != nil {
		t.Fatalf("GetJSON: %v", err)
	}
	if p.Value != "ok" {
		t.Fatalf("want ok, got %q", p.Value)
	}
	if n := atomic.LoadInt32(&hits); n != 3 {
		t.Fatalf("want 3 attempts, got %d", n)
	}
}

func TestClientErrorsNeverRetry(t *testing.T) {
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		http.NotFound(w, r)
	}))
	defer srv.Close()

	c := NewClient(Config{BaseURL: srv.URL, Retries: 3})

	var p payload
	err := c.GetJSON(context.Background(), "/orders/999", &p)
	var fe *Error
	if !errors.As(err, &fe) || fe.Kind != KindClient {
		t.Fatalf("want client error, got %v", err)
	}
	if fe.Status != http.StatusNotFound {
		t.Fatalf("want status 404, got %d", fe.Status)
	}
	if n := atomic.LoadInt32(&hits); n != 1 {
		t.Fatalf("client errors must not retry, got %d attempts", n)
	}
}

func TestNetworkErrorsNeverRetry(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // nothing listens anymore

	c := NewClient(Config{BaseURL: srv.URL, Retries: 3})

	var p payload
	err := c.GetJSON(context.Background(), "/orders", &p)
	var fe *Error
	if !errors.As(err, &fe) || fe.Kind != KindNetwork {
		t.Fatalf("want network error, got %v", err)
	}
}

func TestConcurrentRequestsShareOneFetch(t *testing.T) {
	var hits int32
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		<-release
		w.Write([]byte(`{"value":"ok"}`))
	}))
	defer srv.Close()

	c := NewClient(Config{BaseURL: srv.URL})
	ctx := context.Background()

	var wg sync.WaitGroup
	errs := make([]error, 8)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			var p payload
			errs[i] = c.GetJSON(ctx, "/orders", &p)
		}(i)
	}

	// Give every goroutine time to join the in-flight call.
	time.Sleep(100 * time.Millisecond)
	close(release)
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			t.Fatalf("goroutine %d: %v", i, err)
		}
	}
	if n := atomic.LoadInt32(&hits); n != 1 {
		t.Fatalf("want 1 upstream hit, got %d", n)
	}
}

func TestStaleEntryServedWhileRefreshing(t *testing.T) {
	defer func() { NowMillis = func() int64 { return time.Now().UnixMilli() } }()
	now := int64(1_000_000)
	NowMillis = func() int64 { return now }

	refreshed := make(chan struct{})
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n := atomic.AddInt32(&hits, 1)
		if n == 1 {
			w.Write([]byte(`{"value":"first"}`))
			return
		}
		w.Write([]byte(`{"value":"second"}`))
		close(refreshed)
	}))
	defer srv.Close()

	store := NewMemoryStore()
	c := NewClient(Config{BaseURL: srv.URL, Store: store, TTL: 60 * time.Second})
	ctx := context.Background()

	var p payload
	if err := c.GetJSON(ctx, "/orders", &p); err != nil {
		t.Fatalf("prime: %v", err)
	}

	// Push the entry past the staleness window; the stale body must be
	// served immediately while the refresh runs in the background.
	now += 61_000
	if err := c.GetJSON(ctx, "/orders", &p); err != nil {
		t.Fatalf("stale read: %v", err)
	}
	if p.Value != "first" {
		t.Fatalf("stale read must serve the cached body, got %q", p.Value)
	}

	select {
	case <-refreshed:
	case <-time.After(2 * time.Second):
		t.Fatalf("background refresh never fired")
	}
}

func TestRefetchBypassesCache(t *testing.T) {
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		w.Write([]byte(`{"value":"ok"}`))
	}))
	defer srv.Close()

	c := NewClient(Config{BaseURL: srv.URL})
	ctx := context.Background()

	var p payload
	if err := c.GetJSON(ctx, "/orders", &p); err != nil {
		t.Fatalf("GetJSON: %v", err)
	}
	if err := c.Refetch(ctx, "/orders", &p); err != nil {
		t.Fatalf("Refetch: %v", err)
	}
	if n := atomic.LoadInt32(&hits); n != 2 {
		t.Fatalf("want 2 upstream hits, got %d", n)
	}
}
