package mock

import (
	"context"

	"github.com/fwojciec/prodspan"
)

var _ prodspan.SitemapService = (*SitemapService)(nil)

// SitemapService is a mock implementation of prodspan.SitemapService.
type SitemapService struct {
	DiscoverURLsFn func(ctx context.Context, baseURL string, filter *prodspan.URLFilter) ([]string, error)
}

func (s *SitemapService) DiscoverURLs(ctx context.Context, baseURL string, filter *prodspan.URLFilter) ([]string, error) {
	return s.DiscoverURLsFn(ctx, baseURL, filter)
}

var _ prodspan.LinkExtractor = (*LinkExtractor)(nil)

// LinkExtractor is a mock implementation of prodspan.LinkExtractor.
type LinkExtractor struct {
	ExtractLinksFn func(html string, baseURL string) ([]string, error)
}

func (e *LinkExtractor) ExtractLinks(html string, baseURL string) ([]string, error) {
	return e.ExtractLinksFn(html, baseURL)
}
