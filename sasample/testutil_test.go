package sasample

import (
	"sort"
	"testing"

	"github.com/ogurtsov-succinct/sasampling/cache"
	"github.com/stretchr/testify/require"
)

// naiveSuffixArray is a plain O(n^2 log n) suffix sort used only to
// manufacture test fixtures; this module does not construct suffix
// arrays itself (spec's Non-goals).
func naiveSuffixArray(text string) []uint64 {
	n := len(text)
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	sort.Slice(idx, func(a, b int) bool { return text[idx[a]:] < text[idx[b]:] })
	sa := make([]uint64, n)
	for i, s := range idx {
		sa[i] = uint64(s)
	}
	return sa
}

func bwtOf(text string, sa []uint64) []byte {
	n := len(text)
	bwt := make([]byte, n)
	for i, s := range sa {
		if s == 0 {
			bwt[i] = text[n-1]
		} else {
			bwt[i] = text[s-1]
		}
	}
	return bwt
}

func newFixtureConfig(t *testing.T, text string) (cache.Config, []uint64) {
	t.Helper()
	c := cache.Config{Dir: t.TempDir()}
	sa := naiveSuffixArray(text)
	require.NoError(t, cache.WriteIntVector(c.FileName(cache.KeySA), sa, 32))
	return c, sa
}
