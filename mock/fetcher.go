package mock

import (
	"context"

	"github.com/fwojciec/favscan"
)

var _ favscan.IconFetcher = (*IconFetcher)(nil)

// IconFetcher is a mock implementation of favscan.IconFetcher.
type IconFetcher struct {
	FetchBatchFn func(ctx context.Context, batch favscan.Batch) ([]byte, error)
	CloseFn      func() error
}

func (f *IconFetcher) FetchBatch(ctx context.Context, batch favscan.Batch) ([]byte, error) {
	return f.FetchBatchFn(ctx, batch)
}

func (f *IconFetcher) Close() error {
	if f.CloseFn == nil {
		return nil
	}
	return f.CloseFn()
}
