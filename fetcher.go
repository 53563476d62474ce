package webnovel

import "context"

// Fetcher retrieves the raw text of one page.
// Implementations own user-agent spoofing, the per-request timeout, and
// the mandatory inter-request delay imposed by the source site's rate
// limits.
type Fetcher interface {
	// Fetch retrieves the page at url. The context controls timeout and
	// cancellation. Any failure is fatal for the run that requested the
	// page; callers do not retry.
	Fetch(ctx context.Context, url string) (string, error)
}
