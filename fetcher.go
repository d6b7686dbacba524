package maltlock

import "context"

// Fetcher retrieves the raw HTML of a listing page. Acquiring the HTML is an
// external concern; the core only consumes it. Implementations own their own
// timeout policy, and the core performs no retries.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (string, error)
}
