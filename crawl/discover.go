package crawl

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/fwojciec/prodspan"
)

// DefaultMaxWalkPages limits how many pages a link walk fetches.
const DefaultMaxWalkPages = 200

// frontierFalsePositiveRate is the acceptable false positive rate for
// link deduplication during a walk.
const frontierFalsePositiveRate = 0.0001

// Discoverer finds the page URLs of a shop.
//
// The sitemap is consulted first. When it yields nothing and both Fetcher
// and Links are set, the shop is walked by following same-host links under
// the base URL's path, product pages first.
type Discoverer struct {
	Sitemaps    prodspan.SitemapService
	Fetcher     prodspan.Fetcher
	Links       prodspan.LinkExtractor
	RateLimiter prodspan.DomainLimiter
	Logger      *slog.Logger
	MaxPages    int
	RetryDelays []time.Duration
}

// Discover returns the URLs found for baseURL that pass filter.
// The filter only restricts the result; a walk still follows links to
// pages the filter rejects.
func (d *Discoverer) Discover(ctx context.Context, baseURL string, filter *prodspan.URLFilter) ([]string, error) {
	urls, err := d.Sitemaps.DiscoverURLs(ctx, baseURL, filter)
	if err != nil {
		return nil, fmt.Errorf("sitemap discovery: %w", err)
	}
	if len(urls) > 0 || d.Fetcher == nil || d.Links == nil {
		return urls, nil
	}

	d.logger().Info("sitemap empty, following links", "url", baseURL)
	return d.walk(ctx, baseURL, filter)
}

// walk visits pages breadth-first by priority and collects every page it
// fetched successfully.
func (d *Discoverer) walk(ctx context.Context, baseURL string, filter *prodspan.URLFilter) ([]string, error) {
	base, err := url.Parse(baseURL)
	if err != nil || base.Host == "" {
		return nil, prodspan.Errorf(prodspan.EINVALID, "invalid base URL %q", baseURL)
	}
	pathPrefix := strings.TrimSuffix(base.Path, "/")

	maxPages := d.MaxPages
	if maxPages <= 0 {
		maxPages = DefaultMaxWalkPages
	}
	delays := d.RetryDelays
	if delays == nil {
		delays = DefaultRetryDelays()
	}

	frontier := NewFrontier(uint(maxPages*10), frontierFalsePositiveRate)
	frontier.Push(baseURL)

	urls := []string{}
	for processed := 0; processed < maxPages; processed++ {
		link, ok := frontier.Pop()
		if !ok {
			break
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		if d.RateLimiter != nil {
			if err := d.RateLimiter.Wait(ctx, base.Host); err != nil {
				return nil, err
			}
		}

		html, err := FetchWithRetryDelays(ctx, link, d.Fetcher.Fetch, d.logger(), delays)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			d.logger().Debug("skipping link", "url", link, "err", err)
			continue
		}
		if filter.Match(link) {
			urls = append(urls, link)
		}

		links, err := d.Links.ExtractLinks(html, link)
		if err != nil {
			d.logger().Debug("extracting links", "url", link, "err", err)
			continue
		}
		for _, l := range links {
			if inScope(l, base.Host, pathPrefix) {
				frontier.Push(l)
			}
		}
	}

	return urls, nil
}

func inScope(rawURL, host, pathPrefix string) bool {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host != host {
		return false
	}
	if pathPrefix == "" {
		return true
	}
	return u.Path == pathPrefix || strings.HasPrefix(u.Path, pathPrefix+"/")
}

func (d *Discoverer) logger() *slog.Logger {
	if d.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return d.Logger
}
