// Package http provides the HTTP client for the multi-favicon provider
// endpoint, implementing favscan.IconFetcher.
package http

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/fwojciec/favscan"
	"golang.org/x/time/rate"
)

// DefaultBaseURL is the multi-favicon endpoint. Appending slash-separated
// domains yields one composite image with the favicons stacked in
// horizontal bands, in request order.
const DefaultBaseURL = "https://favicon.yandex.net/favicon/"

// DefaultTimeout is the default timeout for provider requests.
const DefaultTimeout = 10 * time.Second

// Ensure Client implements favscan.IconFetcher at compile time.
var _ favscan.IconFetcher = (*Client)(nil)

// Client fetches composite favicon images from the provider.
type Client struct {
	client  *http.Client
	baseURL string
	timeout time.Duration
	limiter *rate.Limiter
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the provider base URL. Useful for testing against
// a local server.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithTimeout sets the timeout for provider requests.
// Defaults to DefaultTimeout (10s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.timeout = d
	}
}

// WithRateLimit caps outbound requests at rps requests per second with a
// burst of 1. Zero or negative rps leaves requests unlimited.
func WithRateLimit(rps float64) Option {
	return func(c *Client) {
		if rps > 0 {
			c.limiter = rate.NewLimiter(rate.Limit(rps), 1)
		}
	}
}

// NewClient creates a new provider client.
func NewClient(opts ...Option) *Client {
	c := &Client{
		baseURL: DefaultBaseURL,
		timeout: DefaultTimeout,
	}
	for _, opt := range opts {
		opt(c)
	}

	c.client = &http.Client{
		Timeout: c.timeout,
	}

	return c
}

// BaseURL returns the provider base URL the client renders request URLs
// against. Batch packing must use the same base so the URL-length bound
// holds.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// FetchBatch issues one GET for the batch and returns the composite image
// bytes. Any transport error or non-200 status is a per-batch failure.
func (c *Client) FetchBatch(ctx context.Context, batch favscan.Batch) ([]byte, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, err
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, batch.RequestURL(c.baseURL), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, favscan.Errorf(favscan.EUNAVAILABLE, "provider returned HTTP %d", resp.StatusCode)
	}

	return io.ReadAll(resp.Body)
}

// Close releases any idle network connections held by the client.
func (c *Client) Close() error {
	c.client.CloseIdleConnections()
	return nil
}
