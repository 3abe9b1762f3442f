package slog_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"regexp"
	"testing"

	"github.com/fwojciec/prodspan"
	"github.com/fwojciec/prodspan/mock"
	psslog "github.com/fwojciec/prodspan/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingSitemapService_DiscoverURLs(t *testing.T) {
	t.Parallel()

	t.Run("logs counts of all and product URLs", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.SitemapService{
			DiscoverURLsFn: func(ctx context.Context, baseURL string, filter *prodspan.URLFilter) ([]string, error) {
				return []string{
					"https://shop.example/products/milo-sofa",
					"https://shop.example/products/oslo-chair",
					"https://shop.example/pages/about",
				}, nil
			},
		}

		svc := psslog.NewLoggingSitemapService(inner, logger)
		urls, err := svc.DiscoverURLs(context.Background(), "https://shop.example", nil)

		require.NoError(t, err)
		assert.Len(t, urls, 3)
		output := buf.String()
		assert.Contains(t, output, "level=INFO")
		assert.Contains(t, output, "msg=\"sitemap discovery\"")
		assert.Contains(t, output, "url=https://shop.example")
		assert.Contains(t, output, "count=3")
		assert.Contains(t, output, "products=2")
		assert.Contains(t, output, "filtered=false")
		assert.Contains(t, output, "duration=")
	})

	t.Run("passes the filter through", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		filter := &prodspan.URLFilter{Include: []*regexp.Regexp{regexp.MustCompile(`/products/`)}}
		inner := &mock.SitemapService{
			DiscoverURLsFn: func(ctx context.Context, baseURL string, got *prodspan.URLFilter) ([]string, error) {
				assert.Same(t, filter, got)
				return []string{}, nil
			},
		}

		svc := psslog.NewLoggingSitemapService(inner, slog.New(slog.NewTextHandler(&buf, nil)))
		_, err := svc.DiscoverURLs(context.Background(), "https://shop.example", filter)

		require.NoError(t, err)
		assert.Contains(t, buf.String(), "filtered=true")
		assert.Contains(t, buf.String(), "count=0")
	})

	t.Run("logs a warning on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.SitemapService{
			DiscoverURLsFn: func(ctx context.Context, baseURL string, filter *prodspan.URLFilter) ([]string, error) {
				return nil, errors.New("connection failed")
			},
		}

		svc := psslog.NewLoggingSitemapService(inner, logger)
		_, err := svc.DiscoverURLs(context.Background(), "https://shop.example", nil)

		require.Error(t, err)
		output := buf.String()
		assert.Contains(t, output, "level=WARN")
		assert.Contains(t, output, "msg=\"sitemap discovery failed\"")
		assert.Contains(t, output, "err=\"connection failed\"")
	})
}
