// Package slog provides logging decorators for the prodspan service
// interfaces.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/prodspan"
)

// Ensure LoggingFetcher implements prodspan.Fetcher.
var _ prodspan.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a Fetcher with logging. Successful fetches log at
// debug level, missing pages at info and other failures at warn.
type LoggingFetcher struct {
	next   prodspan.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next prodspan.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch delegates to the wrapped fetcher and logs the request.
func (f *LoggingFetcher) Fetch(ctx context.Context, url string) (string, error) {
	begin := time.Now()
	html, err := f.next.Fetch(ctx, url)

	switch {
	case err == nil:
		f.logger.Debug("fetch", "url", url, "bytes", len(html), "duration", time.Since(begin))
	case prodspan.ErrorCode(err) == prodspan.ENOTFOUND:
		f.logger.Info("page missing", "url", url, "duration", time.Since(begin))
	default:
		f.logger.Warn("fetch failed",
			"url", url,
			"code", prodspan.ErrorCode(err),
			"duration", time.Since(begin),
			"err", err,
		)
	}
	return html, err
}

// Close delegates to the wrapped fetcher.
func (f *LoggingFetcher) Close() error {
	return f.next.Close()
}
