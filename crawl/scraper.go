// Package crawl scrapes shop pages into plain text records.
// It coordinates URL deduplication, rate limiting, fetching with retry,
// main-content extraction, text conversion and the optional page cache.
package crawl

import (
	"context"
	"log/slog"
	"net/url"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/fwojciec/prodspan"
	"github.com/fwojciec/prodspan/bloom"
	"golang.org/x/sync/errgroup"
)

var _ prodspan.PageFetcher = (*Scraper)(nil)

const (
	// DefaultMaxURLs is the number of URLs processed when MaxURLs is unset.
	DefaultMaxURLs = 500

	// DefaultTarget is the number of pages collected when Target is unset.
	DefaultTarget = 150

	defaultConcurrency = 4

	// urlFalsePositiveRate keeps the chance of dropping a distinct URL as a
	// duplicate negligible for lists of a few thousand entries.
	urlFalsePositiveRate = 0.0001
)

// Scraper fetches shop pages and reduces them to text.
//
// Pages are processed concurrently until Target distinct pages have been
// collected or the URL list is exhausted. Pages whose text duplicates an
// earlier page are dropped.
type Scraper struct {
	Fetcher     prodspan.Fetcher
	Extractor   prodspan.Extractor
	Converter   prodspan.Converter
	RateLimiter prodspan.DomainLimiter

	// Pages is an optional cache. Cached pages are returned without fetching
	// and fresh pages are stored in it.
	Pages prodspan.PageService

	Logger      *slog.Logger
	Concurrency int
	MaxURLs     int
	Target      int
	RetryDelays []time.Duration

	// Now returns the fetch timestamp. Defaults to time.Now.
	Now func() time.Time
}

// scrapeResult holds the outcome of processing a single URL.
type scrapeResult struct {
	position int
	url      string
	page     *prodspan.Page
	err      error
}

// FetchAll scrapes urls and returns the collected pages in input order.
// Blank and duplicate URLs are skipped and at most MaxURLs are processed.
// Per-URL failures are reported through progress and never abort the run;
// only cancellation of ctx does.
func (s *Scraper) FetchAll(ctx context.Context, urls []string, progress prodspan.FetchProgressFunc) ([]*prodspan.Page, error) {
	urls = s.prepare(urls)
	total := len(urls)
	if total == 0 {
		return []*prodspan.Page{}, nil
	}

	target := s.Target
	if target <= 0 {
		target = DefaultTarget
	}
	concurrency := s.Concurrency
	if concurrency <= 0 {
		concurrency = defaultConcurrency
	}

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	resultCh := make(chan scrapeResult, total)

	g, gctx := errgroup.WithContext(runCtx)
	g.SetLimit(concurrency)

	go func() {
		for i, u := range urls {
			if gctx.Err() != nil {
				break
			}
			g.Go(func() error {
				page, err := s.scrape(gctx, u)
				resultCh <- scrapeResult{position: i, url: u, page: page, err: err}
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	pages := make([]*prodspan.Page, total)
	hashes := make(map[string]bool)
	var completed, succeeded int

	for result := range resultCh {
		if succeeded >= target {
			continue
		}
		completed++

		err := result.err
		if err == nil && hashes[result.page.ContentHash] {
			err = prodspan.Errorf(prodspan.ECONFLICT, "duplicate content of an earlier page")
		}
		if err == nil {
			hashes[result.page.ContentHash] = true
			pages[result.position] = result.page
			succeeded++
		} else {
			s.logger().Debug("skipping page", "url", result.url, "err", err)
		}

		if progress != nil {
			progress(prodspan.FetchProgress{
				URL:       result.url,
				Completed: completed,
				Total:     total,
				Succeeded: succeeded,
				Error:     err,
			})
		}

		if succeeded >= target {
			cancel()
		}
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	out := make([]*prodspan.Page, 0, succeeded)
	for _, page := range pages {
		if page == nil {
			continue
		}
		out = append(out, page)
	}
	return out, nil
}

// prepare trims urls, drops blanks and duplicates and caps the list at
// MaxURLs.
func (s *Scraper) prepare(urls []string) []string {
	maxURLs := s.MaxURLs
	if maxURLs <= 0 {
		maxURLs = DefaultMaxURLs
	}

	seen := bloom.NewFilter(uint(max(len(urls), 1)), urlFalsePositiveRate)
	out := make([]string, 0, min(len(urls), maxURLs))
	for _, u := range urls {
		if len(out) == maxURLs {
			break
		}
		u = strings.TrimSpace(u)
		if u == "" {
			continue
		}
		if i := strings.Index(u, "#"); i != -1 {
			u = u[:i]
		}
		if seen.Seen(u) {
			continue
		}
		out = append(out, u)
	}
	return out
}

// scrape processes a single URL.
func (s *Scraper) scrape(ctx context.Context, rawURL string) (*prodspan.Page, error) {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return nil, prodspan.Errorf(prodspan.EINVALID, "invalid URL %q", rawURL)
	}

	if page := s.cached(ctx, rawURL); page != nil {
		return page, nil
	}

	if s.RateLimiter != nil {
		if err := s.RateLimiter.Wait(ctx, u.Host); err != nil {
			return nil, err
		}
	}

	delays := s.RetryDelays
	if delays == nil {
		delays = DefaultRetryDelays()
	}
	html, err := FetchWithRetryDelays(ctx, rawURL, s.Fetcher.Fetch, s.logger(), delays)
	if err != nil {
		return nil, err
	}

	extracted, err := s.Extractor.Extract(html)
	if err != nil {
		return nil, err
	}

	text, err := s.reduce(extracted)
	if err != nil {
		return nil, err
	}

	page := &prodspan.Page{
		URL:         rawURL,
		Title:       strings.TrimSpace(extracted.Title),
		Text:        text,
		ContentHash: ComputeHash(text),
		FetchedAt:   s.now(),
	}

	if s.Pages != nil {
		if err := s.Pages.CreatePage(ctx, page); err != nil && prodspan.ErrorCode(err) != prodspan.ECONFLICT {
			s.logger().Warn("caching page", "url", rawURL, "err", err)
		}
	}

	return page, nil
}

// reduce converts the main content to text, falling back to the whole
// document when the main content is too short.
func (s *Scraper) reduce(extracted *prodspan.ExtractResult) (string, error) {
	text, err := s.Converter.Convert(extracted.ContentHTML)
	if err != nil {
		return "", err
	}
	text = strings.TrimSpace(text)
	if utf8.RuneCountInString(text) > prodspan.MinTextLength {
		return text, nil
	}

	if extracted.FullHTML != "" {
		full, err := s.Converter.Convert(extracted.FullHTML)
		if err != nil {
			return "", err
		}
		full = strings.TrimSpace(full)
		if utf8.RuneCountInString(full) > prodspan.MinTextLength {
			return full, nil
		}
	}

	return "", prodspan.Errorf(prodspan.EINVALID, "page text shorter than %d characters", prodspan.MinTextLength+1)
}

// cached returns the cached page for rawURL, or nil.
func (s *Scraper) cached(ctx context.Context, rawURL string) *prodspan.Page {
	if s.Pages == nil {
		return nil
	}
	page, err := s.Pages.FindPageByURL(ctx, rawURL)
	if err != nil {
		if prodspan.ErrorCode(err) != prodspan.ENOTFOUND {
			s.logger().Warn("reading page cache", "url", rawURL, "err", err)
		}
		return nil
	}
	return page
}

func (s *Scraper) logger() *slog.Logger {
	if s.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return s.Logger
}

func (s *Scraper) now() time.Time {
	if s.Now == nil {
		return time.Now()
	}
	return s.Now()
}
