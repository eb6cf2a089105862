package fetch

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"nwb/internal/metrics"
)

// DefaultTTL is the staleness window: entries older than this are served
// once more while a background refresh runs.
const DefaultTTL = 60 * time.Second

// DefaultRetries caps auto-retries of transient failures.
const DefaultRetries = 3

// NowMillis returns current time in epoch millis. Split for testability.
var NowMillis = func() int64 { return time.Now().UnixMilli() }

// Config sets up a Client. Zero fields take the defaults.
type Config struct {
	BaseURL    string
	Store      Store
	TTL        time.Duration
	Retries    int
	HTTPClient *http.Client
	Metrics    *metrics.Registry
}

// Client performs cached, deduplicated GETs against the API. Each
// instance owns its cache and metrics, so tests and commands stay
// isolated from each other.
type Client struct {
	base    string
	store   Store
	ttl     time.Duration
	retries int
	httpc   *http.Client
	metrics *metrics.Registry

	mu       sync.Mutex
	inflight map[string]*call
}

type call struct {
	done chan struct{}
	body []byte
	err  error
}

func NewClient(cfg Config) *Client {
	if cfg.Store == nil {
		cfg.Store = NewMemoryStore()
	}
	if cfg.TTL <= 0 {
		cfg.TTL = DefaultTTL
	}
	if cfg.Retries < 0 {
		cfg.Retries = 0
	} else if cfg.Retries == 0 {
		cfg.Retries = DefaultRetries
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = &http.Client{Timeout: 30 * time.Second}
	}
	if cfg.Metrics == nil {
		cfg.Metrics = metrics.NewRegistry()
	}
	return &Client{
		base:     cfg.BaseURL,
		store:    cfg.Store,
		ttl:      cfg.TTL,
		retries:  cfg.Retries,
		httpc:    cfg.HTTPClient,
		metrics:  cfg.Metrics,
		inflight: make(map[string]*call),
	}
}

// GetJSON fetches path relative to the base URL and decodes the response
// into v. A fresh cache entry is served directly; a stale one is served
// too while a background refresh updates the store; identical in-flight
// requests share a single network call.
func (c *Client) GetJSON(ctx context.Context, path string, v any) error {
	key := c.base + path
	if e, ok := c.store.Get(key); ok {
		age := time.Duration(NowMillis()-e.FetchedAt) * time.Millisecond
		if age > c.ttl {
			c.metrics.StaleRefreshes.Inc()
			go func() {
				refreshCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
				defer cancel()
				_, _ = c.fetch(refreshCtx, key)
			}()
		} else {
			c.metrics.CacheHits.Inc()
		}
		return decode(key, e.Body, v)
	}
	c.metrics.CacheMisses.Inc()
	body, err := c.fetch(ctx, key)
	if err != nil {
		return err
	}
	return decode(key, body, v)
}

// Refetch bypasses the cache for a user-initiated retry.
func (c *Client) Refetch(ctx context.Context, path string, v any) error {
	key := c.base + path
	body, err := c.fetch(ctx, key)
	if err != nil {
		return err
	}
	return decode(key, body, v)
}

func decode(url string, body []byte, v any) error {
	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("decode %s: %w", url, err)
	}
	return nil
}

// fetch dedups concurrent requests for the same key and stores the
// successful result.
func (c *Client) fetch(ctx context.Context, key string) ([]byte, error) {
	c.mu.Lock()
	if cl, ok := c.inflight[key]; ok {
		c.mu.Unlock()
		c.metrics.DedupJoins.Inc()
		select {
		case <-cl.done:
			return cl.body, cl.err
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	cl := &call{done: make(chan struct{})}
	c.inflight[key] = cl
	c.mu.Unlock()

	cl.body, cl.err = c.doFetch(ctx, key)
	if cl.err == nil {
		if err := c.store.Set(key, Entry{Body: cl.body, FetchedAt: NowMillis()}); err != nil {
			cl.err = fmt.Errorf("cache set: %w", err)
		}
	}
	c.mu.Lock()
	delete(c.inflight, key)
	c.mu.Unlock()
	close(cl.done)
	return cl.body, cl.err
}

// doFetch applies the retry policy: only transient failures retry, up to
// the cap; network and client errors surface immediately.
func (c *Client) doFetch(ctx context.Context, url string) ([]byte, error) {
	var lastErr error
	for attempt := 0; attempt <= c.retries; attempt++ {
		if attempt > 0 {
			c.metrics.Retries.Inc()
		}
		body, err := c.once(ctx, url)
		if err == nil {
			return body, nil
		}
		lastErr = err
		var fe *Error
		if !errors.As(err, &fe) {
			return nil, err
		}
		switch fe.Kind {
		case KindNetwork:
			c.metrics.NetworkErrors.Inc()
			return nil, err
		case KindClient:
			c.metrics.ClientErrors.Inc()
			return nil, err
		}
	}
	return nil, lastErr
}

func (c *Client) once(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	c.metrics.Requests.Inc()
	t0 := time.Now()
	resp, err := c.httpc.Do(req)
	c.metrics.FetchLatency.Observe(time.Since(t0).Seconds())
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, &Error{Kind: KindNetwork, URL: url, Err: err}
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &Error{Kind: KindTransient, URL: url, Err: err}
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		kind := KindTransient
		if resp.StatusCode >= 400 && resp.StatusCode <= 500 {
			kind = KindClient
		}
		return nil, &Error{Kind: kind, URL: url, Status: resp.StatusCode, Err: errors.New(resp.Status)}
	}
	return body, nil
}
