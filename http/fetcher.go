// Package http provides an HTTP implementation of extraction.Fetcher.
// Fetching the document is the caller's side of the contract; the
// extraction core itself never touches the network.
package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/clemfromspace/extraction"
	"golang.org/x/net/html/charset"
	"golang.org/x/time/rate"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
const DefaultFetchTimeout = 10 * time.Second

// DefaultRequestsPerSecond is the default per-host rate limit.
const DefaultRequestsPerSecond = 2.0

// Ensure Fetcher implements extraction.Fetcher at compile time.
var _ extraction.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves HTML documents over HTTP. Requests are rate limited
// per host with a token bucket, and response bodies are decoded to
// UTF-8 based on the declared charset.
type Fetcher struct {
	client  *http.Client
	timeout time.Duration
	rps     float64

	mu       sync.Mutex
	limiters map[string]*rate.Limiter
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout (10s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		if d > 0 {
			f.timeout = d
		}
	}
}

// WithRequestsPerSecond sets the per-host rate limit.
// Defaults to DefaultRequestsPerSecond if not specified.
func WithRequestsPerSecond(rps float64) Option {
	return func(f *Fetcher) {
		if rps > 0 {
			f.rps = rps
		}
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout:  DefaultFetchTimeout,
		rps:      DefaultRequestsPerSecond,
		limiters: make(map[string]*rate.Limiter),
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// Fetch retrieves the HTML document at the given URL, decoded to UTF-8.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", extraction.Errorf(extraction.EINVALID, "invalid URL %q: %v", rawURL, err)
	}

	if err := f.wait(ctx, u.Host); err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", err
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("HTTP %d for %s", resp.StatusCode, rawURL)
	}

	reader, err := charset.NewReader(resp.Body, resp.Header.Get("Content-Type"))
	if err != nil {
		return "", err
	}

	body, err := io.ReadAll(reader)
	if err != nil {
		return "", err
	}

	return string(body), nil
}

// Close releases resources. For HTTP fetcher this is a no-op since
// http.Client doesn't require explicit cleanup.
func (f *Fetcher) Close() error {
	return nil
}

// wait blocks until the host's token bucket allows a request. Each host
// gets its own limiter with a burst of 1, so concurrent fetches of
// different hosts don't throttle each other.
func (f *Fetcher) wait(ctx context.Context, host string) error {
	f.mu.Lock()
	limiter, ok := f.limiters[host]
	if !ok {
		limiter = rate.NewLimiter(rate.Limit(f.rps), 1)
		f.limiters[host] = limiter
	}
	f.mu.Unlock()

	return limiter.Wait(ctx)
}
