package scan

import (
	"sort"
	"sync"
	"time"

	"github.com/fwojciec/favscan"
)

// DefaultCacheTTL is how long a computed domain hash stays valid before it
// is recomputed.
const DefaultCacheTTL = 24 * time.Hour

// cacheEntry associates a domain with its last computed hash. The hash may
// be the sentinel value for "no icon". Entries are never deleted; an
// expired entry is overwritten on the next lookup.
type cacheEntry struct {
	hash    string
	expires time.Time
}

// seenPair identifies a (domain, hash) pair that has already been counted.
type seenPair struct {
	domain string
	hash   string
}

// Aggregator collects (domain, hash) pairs into hash groups and caches
// per-domain hashes with a TTL so repeated appearances of a domain across
// batches skip re-hashing. All methods are safe for concurrent use:
// batches complete in arbitrary order and may touch overlapping domains.
type Aggregator struct {
	mu     sync.Mutex
	ttl    time.Duration
	now    func() time.Time
	cache  map[string]cacheEntry
	seen   map[seenPair]struct{}
	groups []*favscan.HashGroup
	index  map[string]int // hash -> position in groups
}

// AggregatorOption configures an Aggregator.
type AggregatorOption func(*Aggregator)

// WithTTL sets the cache time-to-live. Defaults to DefaultCacheTTL.
func WithTTL(ttl time.Duration) AggregatorOption {
	return func(a *Aggregator) {
		a.ttl = ttl
	}
}

// WithClock sets the time source used for cache expiry. Defaults to
// time.Now. Useful for testing TTL behavior without sleeping.
func WithClock(now func() time.Time) AggregatorOption {
	return func(a *Aggregator) {
		a.now = now
	}
}

// NewAggregator creates an empty Aggregator.
func NewAggregator(opts ...AggregatorOption) *Aggregator {
	a := &Aggregator{
		ttl:   DefaultCacheTTL,
		now:   time.Now,
		cache: make(map[string]cacheEntry),
		seen:  make(map[seenPair]struct{}),
		index: make(map[string]int),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// LookupOrCompute returns the cached hash for domain if a live entry
// exists. Otherwise it invokes compute, stores the result with the
// configured TTL, and returns it. The whole sequence runs under the
// aggregator's lock so concurrent batches touching the same domain cannot
// race the computation.
func (a *Aggregator) LookupOrCompute(domain string, compute func() string) string {
	a.mu.Lock()
	defer a.mu.Unlock()

	if entry, ok := a.cache[domain]; ok && a.now().Before(entry.expires) {
		return entry.hash
	}

	hash := compute()
	a.cache[domain] = cacheEntry{
		hash:    hash,
		expires: a.now().Add(a.ttl),
	}
	return hash
}

// Record adds the (domain, hash) pair to the corresponding hash group.
// It is a no-op when hash is empty (suppressed tile) or the pair was
// already recorded.
func (a *Aggregator) Record(domain, hash string) {
	if hash == "" {
		return
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	pair := seenPair{domain: domain, hash: hash}
	if _, ok := a.seen[pair]; ok {
		return
	}
	a.seen[pair] = struct{}{}

	i, ok := a.index[hash]
	if !ok {
		i = len(a.groups)
		a.groups = append(a.groups, &favscan.HashGroup{Hash: hash})
		a.index[hash] = i
	}
	a.groups[i].Count++
	a.groups[i].Domains = append(a.groups[i].Domains, domain)
}

// Report returns a snapshot of the groups sorted by descending count.
// Groups with equal counts keep the order in which their hashes were
// first recorded.
func (a *Aggregator) Report() *favscan.Report {
	a.mu.Lock()
	defer a.mu.Unlock()

	groups := make([]favscan.HashGroup, len(a.groups))
	for i, g := range a.groups {
		groups[i] = favscan.HashGroup{
			Hash:    g.Hash,
			Count:   g.Count,
			Domains: append([]string(nil), g.Domains...),
		}
	}
	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].Count > groups[j].Count
	})
	return &favscan.Report{Groups: groups}
}
