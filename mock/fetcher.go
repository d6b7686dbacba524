package mock

import (
	"context"

	"github.com/rlatmfrl24/maltlock"
)

var _ maltlock.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of maltlock.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (string, error)
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	return f.FetchFn(ctx, url)
}
