package crawl

import (
	"context"
	"net"
	"strings"
	"sync"

	"github.com/fwojciec/prodspan"
	"golang.org/x/time/rate"
)

var _ prodspan.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter provides per-shop rate limiting using token buckets.
// Each shop gets its own limiter, so requests to different shops proceed
// concurrently while requests to one shop are spaced out. Hosts are
// compared case-insensitively without port or "www." prefix, so
// www.shop.example and shop.example:443 share one bucket.
type DomainLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	limit    rate.Limit
}

// NewDomainLimiter creates a new DomainLimiter allowing rps requests per
// second to each domain with a burst of 1. A non-positive rps disables
// limiting.
func NewDomainLimiter(rps float64) *DomainLimiter {
	limit := rate.Limit(rps)
	if rps <= 0 {
		limit = rate.Inf
	}
	return &DomainLimiter{
		limiters: make(map[string]*rate.Limiter),
		limit:    limit,
	}
}

// Wait blocks until the rate limit allows a request to the domain.
// Returns an error if the context is canceled before the wait completes.
func (d *DomainLimiter) Wait(ctx context.Context, domain string) error {
	domain = shopKey(domain)

	d.mu.Lock()
	limiter, ok := d.limiters[domain]
	if !ok {
		limiter = rate.NewLimiter(d.limit, 1)
		d.limiters[domain] = limiter
	}
	d.mu.Unlock()

	return limiter.Wait(ctx)
}

// Len returns the number of shops seen so far.
func (d *DomainLimiter) Len() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.limiters)
}

func shopKey(host string) string {
	if h, _, err := net.SplitHostPort(host); err == nil {
		host = h
	}
	host = strings.ToLower(strings.TrimSuffix(host, "."))
	return strings.TrimPrefix(host, "www.")
}
