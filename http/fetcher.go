// Package http provides an HTTP-based implementation of
// webnovel.Fetcher tuned for the source site's access rules.
package http

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/ykawada/webnovel"
	"golang.org/x/time/rate"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
const DefaultFetchTimeout = 10 * time.Second

// DefaultRequestDelay is the pause enforced before every request,
// including the first. The site temporarily bans addresses that load
// pages too fast, so this is a hard external constraint rather than a
// tuning knob.
const DefaultRequestDelay = 500 * time.Millisecond

// userAgent fakes a browser, because the site returns 403 otherwise.
const userAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_10_1) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/39.0.2171.95 Safari/537.36"

// Ensure Fetcher implements webnovel.Fetcher at compile time.
var _ webnovel.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves pages over HTTP, spoofing a browser user agent and
// pausing before each request.
type Fetcher struct {
	client  *http.Client
	limiter *rate.Limiter
	timeout time.Duration
	delay   time.Duration
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the per-request timeout. Defaults to
// DefaultFetchTimeout.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithDelay sets the pre-request delay. Defaults to
// DefaultRequestDelay. A zero delay disables the pause.
func WithDelay(d time.Duration) Option {
	return func(f *Fetcher) {
		f.delay = d
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout: DefaultFetchTimeout,
		delay:   DefaultRequestDelay,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{Timeout: f.timeout}

	interval := rate.Inf
	if f.delay > 0 {
		interval = rate.Every(f.delay)
	}
	f.limiter = rate.NewLimiter(interval, 1)
	// Drain the initial token so the delay also applies to the first
	// request.
	f.limiter.Allow()

	return f
}

// Fetch retrieves the page at url. It blocks for the inter-request
// delay before issuing the request.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	if err := f.limiter.Wait(ctx); err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml")

	resp, err := f.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", webnovel.Errorf(webnovel.EUNAVAILABLE, "HTTP %d for %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	return string(body), nil
}
