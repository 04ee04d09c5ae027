package succinct

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIntWaveletTreeAccess(t *testing.T) {
	t.Parallel()

	values := []uint64{3, 1, 4, 0, 2, 5, 6, 7}
	width := BitWidth(uint64(len(values) - 1))
	wt := NewIntWaveletTree(values, width)

	require.Equal(t, len(values), wt.Len())
	for i, v := range values {
		require.Equal(t, v, wt.Access(i), "Access(%d)", i)
	}
}

func TestIntWaveletTreeSelectIsAccessInverse(t *testing.T) {
	t.Parallel()

	// A permutation of [0, n): every value occurs exactly once, so
	// Select(c, 1) must invert Access.
	values := []uint64{5, 2, 0, 7, 1, 6, 3, 4}
	width := BitWidth(uint64(len(values) - 1))
	wt := NewIntWaveletTree(values, width)

	for pos, v := range values {
		got := wt.Select(v, 1)
		require.Equal(t, pos, got, "Select(%d, 1)", v)
	}
}

func TestIntWaveletTreeEmpty(t *testing.T) {
	t.Parallel()

	wt := NewIntWaveletTree(nil, 0)
	require.Equal(t, 0, wt.Len())
}
