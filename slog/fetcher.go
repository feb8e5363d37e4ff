// Package slog provides logging decorators for favscan interfaces.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/favscan"
)

// Ensure LoggingFetcher implements favscan.IconFetcher.
var _ favscan.IconFetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps an IconFetcher with debug logging for each batch
// fetch.
type LoggingFetcher struct {
	next   favscan.IconFetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next favscan.IconFetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// FetchBatch delegates to the wrapped fetcher and logs the outcome.
func (f *LoggingFetcher) FetchBatch(ctx context.Context, batch favscan.Batch) ([]byte, error) {
	begin := time.Now()
	data, err := f.next.FetchBatch(ctx, batch)
	if err != nil {
		f.logger.Debug("batch fetch failed",
			"domains", len(batch.Domains),
			"duration", time.Since(begin),
			"error", err,
		)
		return nil, err
	}
	f.logger.Debug("batch fetched",
		"domains", len(batch.Domains),
		"bytes", len(data),
		"duration", time.Since(begin),
	)
	return data, nil
}

// Close delegates to the wrapped fetcher.
func (f *LoggingFetcher) Close() error {
	return f.next.Close()
}
