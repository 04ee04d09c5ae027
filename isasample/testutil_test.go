package isasample

import (
	"sort"
	"testing"

	"github.com/ogurtsov-succinct/sasampling/cache"
	"github.com/stretchr/testify/require"
)

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

func invertSA(sa []uint64) []uint64 {
	isa := make([]uint64, len(sa))
	for i, v := range sa {
		isa[v] = uint64(i)
	}
	return isa
}

func newFixtureConfig(t *testing.T, text string) (cache.Config, []uint64) {
	t.Helper()
	c := cache.Config{Dir: t.TempDir()}
	sa := naiveSuffixArray(text)
	require.NoError(t, cache.WriteIntVector(c.FileName(cache.KeySA), sa, 32))
	return c, sa
}
