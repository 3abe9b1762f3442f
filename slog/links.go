package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/prodspan"
)

// Ensure LoggingLinkExtractor implements prodspan.LinkExtractor.
var _ prodspan.LinkExtractor = (*LoggingLinkExtractor)(nil)

// LoggingLinkExtractor wraps a LinkExtractor with debug logging.
type LoggingLinkExtractor struct {
	next   prodspan.LinkExtractor
	logger *slog.Logger
}

// NewLoggingLinkExtractor creates a new LoggingLinkExtractor.
func NewLoggingLinkExtractor(next prodspan.LinkExtractor, logger *slog.Logger) *LoggingLinkExtractor {
	return &LoggingLinkExtractor{next: next, logger: logger}
}

// ExtractLinks delegates to the wrapped extractor and logs the link count.
func (e *LoggingLinkExtractor) ExtractLinks(html string, baseURL string) (links []string, err error) {
	defer func(begin time.Time) {
		e.logger.Debug("extract links",
			"url", baseURL,
			"count", len(links),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.ExtractLinks(html, baseURL)
}
