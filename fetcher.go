package prodspan

import "context"

// Fetcher retrieves HTML from URLs.
// Implementations may use browser automation for JavaScript-rendered shops.
type Fetcher interface {
	// Fetch retrieves the URL and returns its HTML.
	// Responses that are not HTML are rejected with EINVALID.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases resources held by the fetcher.
	// Must be called when the Fetcher is no longer needed.
	Close() error
}

// DomainLimiter provides per-domain rate limiting.
type DomainLimiter interface {
	// Wait blocks until the rate limit allows a request to the domain.
	// Returns an error if the context is canceled.
	Wait(ctx context.Context, domain string) error
}
