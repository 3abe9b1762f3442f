package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/prodspan"
	"github.com/fwojciec/prodspan/crawl"
)

// Ensure LoggingSitemapService implements prodspan.SitemapService.
var _ prodspan.SitemapService = (*LoggingSitemapService)(nil)

// LoggingSitemapService wraps a SitemapService and logs how many of the
// discovered URLs look like product pages.
type LoggingSitemapService struct {
	next   prodspan.SitemapService
	logger *slog.Logger
}

// NewLoggingSitemapService creates a new LoggingSitemapService.
func NewLoggingSitemapService(next prodspan.SitemapService, logger *slog.Logger) *LoggingSitemapService {
	return &LoggingSitemapService{next: next, logger: logger}
}

// DiscoverURLs delegates to the wrapped service. Failures are logged at
// warn level.
func (s *LoggingSitemapService) DiscoverURLs(ctx context.Context, baseURL string, filter *prodspan.URLFilter) ([]string, error) {
	begin := time.Now()
	urls, err := s.next.DiscoverURLs(ctx, baseURL, filter)
	if err != nil {
		s.logger.Warn("sitemap discovery failed",
			"url", baseURL,
			"duration", time.Since(begin),
			"err", err,
		)
		return urls, err
	}

	var products int
	for _, u := range urls {
		if crawl.LinkPriority(u) == crawl.PriorityProduct {
			products++
		}
	}
	s.logger.Info("sitemap discovery",
		"url", baseURL,
		"count", len(urls),
		"products", products,
		"filtered", filter != nil,
		"duration", time.Since(begin),
	)
	return urls, nil
}
