// Package favscan correlates websites by the visual fingerprint of their
// favicon. It fetches favicons in bulk from a multi-favicon endpoint that
// returns several icons stitched into a single composite image, hashes each
// icon tile, and groups domains that share an identical hash.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., http/, publicsuffix/, png/).
package favscan

import (
	"context"
	"image"
)

// DomainValidator reports whether a string is a syntactically plausible
// registrable domain. Implementations must treat internal failures as
// "invalid" rather than returning an error.
type DomainValidator interface {
	IsValid(domain string) bool
}

// IconFetcher retrieves composite favicon images from the provider.
type IconFetcher interface {
	// FetchBatch issues one request for all domains in the batch and
	// returns the raw bytes of the composite image.
	// The context controls timeout and cancellation.
	FetchBatch(ctx context.Context, batch Batch) ([]byte, error)

	// Close releases network resources.
	// Must be called when the IconFetcher is no longer needed.
	Close() error
}

// ImageDecoder decodes raw bytes into a raster image.
type ImageDecoder interface {
	Decode(data []byte) (image.Image, error)
}
