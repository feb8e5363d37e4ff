package favscan_test

import (
	"strings"
	"testing"

	"github.com/fwojciec/favscan"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBatch_RequestURL(t *testing.T) {
	t.Parallel()

	b := favscan.Batch{Domains: []string{"a.com", "b.com"}}

	assert.Equal(t, "https://icons.test/a.com/b.com", b.RequestURL("https://icons.test/"))
}

func TestPack(t *testing.T) {
	t.Parallel()

	const base = "https://icons.test/"

	t.Run("packs domains that fit into a single batch", func(t *testing.T) {
		t.Parallel()

		// len(base) + 5 + 5 + 1 separator is well under the limit.
		batches := favscan.Pack([]string{"a.com", "b.com"}, base, 2200, 20)

		require.Len(t, batches, 1)
		assert.Equal(t, []string{"a.com", "b.com"}, batches[0].Domains)
	})

	t.Run("returns no batches for empty input", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, favscan.Pack(nil, base, 2200, 20))
	})

	t.Run("closes batch at max batch size", func(t *testing.T) {
		t.Parallel()

		domains := []string{"a.com", "b.com", "c.com", "d.com", "e.com"}
		batches := favscan.Pack(domains, base, 2200, 2)

		require.Len(t, batches, 3)
		assert.Equal(t, []string{"a.com", "b.com"}, batches[0].Domains)
		assert.Equal(t, []string{"c.com", "d.com"}, batches[1].Domains)
		assert.Equal(t, []string{"e.com"}, batches[2].Domains)
	})

	t.Run("closes batch when URL length would be exceeded", func(t *testing.T) {
		t.Parallel()

		// Limit leaves room for exactly two 5-byte domains plus the
		// separator after the base URL.
		limit := len(base) + 5 + 1 + 5
		batches := favscan.Pack([]string{"a.com", "b.com", "c.com"}, base, limit, 20)

		require.Len(t, batches, 2)
		assert.Equal(t, []string{"a.com", "b.com"}, batches[0].Domains)
		assert.Equal(t, []string{"c.com"}, batches[1].Domains)
	})

	t.Run("every batch respects both limits", func(t *testing.T) {
		t.Parallel()

		var domains []string
		for _, label := range []string{"a", "bb", "ccc", "dddd", "eeeee", "ffffff"} {
			domains = append(domains, strings.Repeat(label, 5)+".example.com")
		}
		const maxURLLen = 70
		const maxBatchSize = 2

		batches := favscan.Pack(domains, base, maxURLLen, maxBatchSize)

		for _, b := range batches {
			assert.LessOrEqual(t, len(b.RequestURL(base)), maxURLLen)
			assert.LessOrEqual(t, len(b.Domains), maxBatchSize)
		}
	})

	t.Run("concatenated batches reproduce input order", func(t *testing.T) {
		t.Parallel()

		domains := []string{"z.com", "y.com", "x.com", "w.com", "v.com", "u.com", "t.com"}
		batches := favscan.Pack(domains, base, len(base)+13, 3)

		var got []string
		for _, b := range batches {
			got = append(got, b.Domains...)
		}
		assert.Equal(t, domains, got)
	})

	t.Run("oversized domain still gets a singleton batch", func(t *testing.T) {
		t.Parallel()

		long := strings.Repeat("a", 300) + ".com"
		batches := favscan.Pack([]string{"a.com", long, "b.com"}, base, len(base)+20, 20)

		require.Len(t, batches, 3)
		assert.Equal(t, []string{"a.com"}, batches[0].Domains)
		assert.Equal(t, []string{long}, batches[1].Domains)
		assert.Equal(t, []string{"b.com"}, batches[2].Domains)
	})
}
