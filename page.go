package prodspan

import (
	"context"
	"time"
)

// MinTextLength is the number of runes a reduced page must exceed to be
// considered meaningful content.
const MinTextLength = 50

// Page represents a fetched shop page reduced to plain text.
type Page struct {
	ID          string    `json:"id"`
	URL         string    `json:"url"`
	Title       string    `json:"title"`
	Text        string    `json:"text"`
	ContentHash string    `json:"contentHash"`
	FetchedAt   time.Time `json:"fetchedAt"`
}

// Validate returns an error if the page contains invalid fields.
func (p *Page) Validate() error {
	if p.URL == "" {
		return Errorf(EINVALID, "page URL required")
	}
	if p.Text == "" {
		return Errorf(EINVALID, "page text required")
	}
	return nil
}

// Record converts the page to the scrape output record.
func (p *Page) Record() TextRecord {
	return TextRecord{URL: p.URL, Title: p.Title, Text: p.Text}
}

// FetchProgress reports progress during page fetching.
type FetchProgress struct {
	URL       string
	Completed int
	Total     int
	Succeeded int
	Error     error
}

// FetchProgressFunc is called as pages are processed.
type FetchProgressFunc func(FetchProgress)

// PageFetcher retrieves pages and reduces them to text.
// Implementations hide retry logic, rate limiting, content extraction
// and text conversion.
type PageFetcher interface {
	FetchAll(ctx context.Context, urls []string, progress FetchProgressFunc) ([]*Page, error)
}

// PageStore persists scraped pages with atomic semantics.
// Pages are staged on Save and become visible together on Commit.
type PageStore interface {
	Save(ctx context.Context, page *Page) error
	Commit() error
	Abort() error
}

// PageService represents a persistent cache of fetched pages.
type PageService interface {
	// CreatePage stores a page. Returns ECONFLICT if the URL already exists.
	CreatePage(ctx context.Context, page *Page) error

	// FindPageByURL retrieves a page by URL.
	// Returns ENOTFOUND if the page does not exist.
	FindPageByURL(ctx context.Context, url string) (*Page, error)

	// FindPages retrieves pages matching the filter.
	FindPages(ctx context.Context, filter PageFilter) ([]*Page, error)

	// DeletePage permanently removes a page.
	// Returns ENOTFOUND if the page does not exist.
	DeletePage(ctx context.Context, id string) error
}

// PageFilter represents a filter for FindPages.
type PageFilter struct {
	URL         *string `json:"url"`
	ContentHash *string `json:"contentHash"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
