package slog_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/fwojciec/prodspan"
	"github.com/fwojciec/prodspan/mock"
	psslog "github.com/fwojciec/prodspan/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingFetcher_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("logs successful fetches at debug level", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
		inner := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				return "<html>Milo Sofa</html>", nil
			},
		}

		fetcher := psslog.NewLoggingFetcher(inner, logger)
		html, err := fetcher.Fetch(context.Background(), "https://shop.example/products/milo-sofa")

		require.NoError(t, err)
		assert.Equal(t, "<html>Milo Sofa</html>", html)
		output := buf.String()
		assert.Contains(t, output, "level=DEBUG msg=fetch")
		assert.Contains(t, output, "url=https://shop.example/products/milo-sofa")
		assert.Contains(t, output, "bytes=22")
		assert.Contains(t, output, "duration=")
	})

	t.Run("stays quiet about successes at info level", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				return "<html>Milo Sofa</html>", nil
			},
		}

		fetcher := psslog.NewLoggingFetcher(inner, slog.New(slog.NewTextHandler(&buf, nil)))
		_, err := fetcher.Fetch(context.Background(), "https://shop.example/products/milo-sofa")

		require.NoError(t, err)
		assert.Empty(t, buf.String())
	})

	t.Run("logs missing pages at info level", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				return "", prodspan.Errorf(prodspan.ENOTFOUND, "HTTP 404 for %s", url)
			},
		}

		fetcher := psslog.NewLoggingFetcher(inner, slog.New(slog.NewTextHandler(&buf, nil)))
		_, err := fetcher.Fetch(context.Background(), "https://shop.example/products/gone")

		require.Error(t, err)
		assert.Contains(t, buf.String(), "level=INFO msg=\"page missing\"")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				return "", errors.New("network error")
			},
		}

		fetcher := psslog.NewLoggingFetcher(inner, logger)
		_, err := fetcher.Fetch(context.Background(), "https://shop.example/products/milo-sofa")

		require.Error(t, err)
		output := buf.String()
		assert.Contains(t, output, "level=WARN msg=\"fetch failed\"")
		assert.Contains(t, output, "code=internal")
		assert.Contains(t, output, "err=\"network error\"")
	})
}

func TestLoggingFetcher_Close(t *testing.T) {
	t.Parallel()

	t.Run("delegates to inner fetcher", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		closeCalled := false
		inner := &mock.Fetcher{
			CloseFn: func() error {
				closeCalled = true
				return nil
			},
		}

		fetcher := psslog.NewLoggingFetcher(inner, logger)
		err := fetcher.Close()

		require.NoError(t, err)
		assert.True(t, closeCalled)
	})
}
