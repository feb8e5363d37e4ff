// Package scan provides the favicon scanning orchestration. It drives
// batches through a bounded-concurrency fetch pool, slices the returned
// composite images into per-domain tiles, and aggregates tile hashes into
// groups of domains sharing one favicon.
package scan

import (
	"context"
	"image"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/fwojciec/favscan"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency is the default number of in-flight batch fetches.
const DefaultConcurrency = 10

// ProgressEvent reports progress during a scan.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	Batch     favscan.Batch
	Err       error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting scan progress.
type ProgressFunc func(event ProgressEvent)

// Result holds the outcome of a scan.
type Result struct {
	Scanned int // batches fetched and hashed
	Failed  int // batches dropped after a fetch or decode failure
}

// Scanner orchestrates fetching and hashing of favicon batches.
// A failure in one batch never aborts the others: the batch's domains are
// simply absent from the final report.
type Scanner struct {
	Fetcher     favscan.IconFetcher
	Decoder     favscan.ImageDecoder
	Aggregator  *Aggregator
	Concurrency int
	ShowNull    bool
	Logger      *slog.Logger
}

// Run executes one fetch per batch, limiting the number of concurrently
// in-flight fetches. The progress callback, if provided, receives events
// as batches complete; completion order is not guaranteed. Cancelling the
// context stops scheduling new batches; Run returns the context error in
// that case, with the Result reflecting the batches finished before the
// interrupt.
func (s *Scanner) Run(ctx context.Context, batches []favscan.Batch, progress ProgressFunc) (*Result, error) {
	concurrency := s.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}
	logger := s.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	// Workers complete in arbitrary order; serialize callback invocations
	// so the caller does not need its own locking.
	var progressMu sync.Mutex
	emit := func(event ProgressEvent) {
		if progress == nil {
			return
		}
		progressMu.Lock()
		defer progressMu.Unlock()
		progress(event)
	}

	total := len(batches)
	emit(ProgressEvent{Type: ProgressStarted, Total: total})

	var completed, failed atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for _, batch := range batches {
		batch := batch
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			err := s.processBatch(gctx, batch)
			done := int(completed.Add(1))

			if err != nil {
				failed.Add(1)
				logger.Warn("batch failed",
					"domains", len(batch.Domains),
					"error", err,
				)
				emit(ProgressEvent{
					Type:      ProgressFailed,
					Completed: done,
					Total:     total,
					Batch:     batch,
					Err:       err,
				})
				return nil
			}

			emit(ProgressEvent{
				Type:      ProgressCompleted,
				Completed: done,
				Total:     total,
				Batch:     batch,
			})
			return nil
		})
	}
	_ = g.Wait()

	emit(ProgressEvent{Type: ProgressFinished, Completed: int(completed.Load()), Total: total})

	return &Result{
		Scanned: int(completed.Load() - failed.Load()),
		Failed:  int(failed.Load()),
	}, ctx.Err()
}

// processBatch fetches one composite image and records the tile hash of
// every domain in the batch.
func (s *Scanner) processBatch(ctx context.Context, batch favscan.Batch) error {
	if len(batch.Domains) == 0 {
		return nil
	}

	data, err := s.Fetcher.FetchBatch(ctx, batch)
	if err != nil {
		return err
	}

	img, err := s.Decoder.Decode(data)
	if err != nil {
		return err
	}

	s.hashBatch(img, batch.Domains)
	return nil
}

// hashBatch slices the composite into per-domain tiles and records their
// hashes, consulting the aggregator's cache so a domain already hashed by
// an earlier batch is not hashed again.
func (s *Scanner) hashBatch(img image.Image, domains []string) {
	height := img.Bounds().Dy()
	for i, domain := range domains {
		y0, y1 := tileBounds(height, len(domains), i)
		hash := s.Aggregator.LookupOrCompute(domain, func() string {
			return HashTile(img, y0, y1, s.ShowNull)
		})
		s.Aggregator.Record(domain, hash)
	}
}
