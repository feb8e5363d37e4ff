package favscan

import "strings"

// Packing defaults. The URL length bound keeps rendered request URLs
// within what the provider accepts.
const (
	DefaultMaxURLLen = 2200
	DefaultBatchSize = 20
)

// Batch is an ordered set of domains assigned to a single provider request.
type Batch struct {
	Domains []string
}

// RequestURL renders the provider URL for the batch: the base URL followed
// by the batch's domains joined with "/".
func (b Batch) RequestURL(baseURL string) string {
	return baseURL + strings.Join(b.Domains, "/")
}

// Pack splits domains into batches using a single left-to-right greedy
// pass. A batch is closed when appending the next domain would push the
// rendered request URL past maxURLLen, or when it already holds
// maxBatchSize domains. Input order is preserved: concatenating the
// batches' domains reproduces the input exactly.
//
// A domain whose length alone exceeds maxURLLen is still emitted as a
// singleton batch rather than dropped; the provider rejects the oversized
// request and the batch fails like any other fetch failure.
func Pack(domains []string, baseURL string, maxURLLen, maxBatchSize int) []Batch {
	var batches []Batch
	var current []string
	sum := 0 // total length of domains in the current batch

	for _, domain := range domains {
		// URL length with the candidate appended: base + domains + one
		// separator byte between adjacent domains.
		needed := len(baseURL) + sum + len(domain) + len(current)
		if len(current) > 0 && (needed > maxURLLen || len(current) >= maxBatchSize) {
			batches = append(batches, Batch{Domains: current})
			current = nil
			sum = 0
		}
		current = append(current, domain)
		sum += len(domain)
	}

	if len(current) > 0 {
		batches = append(batches, Batch{Domains: current})
	}
	return batches
}
