// Package mock provides hand-written mock implementations of the
// webnovel interfaces for testing.
package mock

import (
	"context"

	"github.com/ykawada/webnovel"
)

var _ webnovel.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of webnovel.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (string, error)
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	return f.FetchFn(ctx, url)
}
