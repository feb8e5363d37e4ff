package slog_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/fwojciec/favscan"
	"github.com/fwojciec/favscan/mock"
	favslog "github.com/fwojciec/favscan/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingFetcher_FetchBatch(t *testing.T) {
	t.Parallel()

	batch := favscan.Batch{Domains: []string{"a.com", "b.com"}}

	t.Run("logs successful fetches", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

		f := favslog.NewLoggingFetcher(&mock.IconFetcher{
			FetchBatchFn: func(_ context.Context, _ favscan.Batch) ([]byte, error) {
				return []byte("image-bytes"), nil
			},
		}, logger)

		data, err := f.FetchBatch(context.Background(), batch)
		require.NoError(t, err)
		assert.Equal(t, []byte("image-bytes"), data)
		assert.Contains(t, buf.String(), "batch fetched")
		assert.Contains(t, buf.String(), "domains=2")
	})

	t.Run("logs and propagates failures", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

		wantErr := errors.New("connection refused")
		f := favslog.NewLoggingFetcher(&mock.IconFetcher{
			FetchBatchFn: func(_ context.Context, _ favscan.Batch) ([]byte, error) {
				return nil, wantErr
			},
		}, logger)

		_, err := f.FetchBatch(context.Background(), batch)
		require.ErrorIs(t, err, wantErr)
		assert.Contains(t, buf.String(), "batch fetch failed")
	})

	t.Run("close delegates to the wrapped fetcher", func(t *testing.T) {
		t.Parallel()

		closed := false
		f := favslog.NewLoggingFetcher(&mock.IconFetcher{
			CloseFn: func() error {
				closed = true
				return nil
			},
		}, slog.New(slog.NewTextHandler(io.Discard, nil)))

		require.NoError(t, f.Close())
		assert.True(t, closed)
	})
}
