package succinct

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestArrayInversePermutation(t *testing.T) {
	t.Parallel()

	perm := NewPackedIntsFromValues([]uint64{2, 0, 3, 1}, 2) // pi(0)=2, pi(1)=0, pi(2)=3, pi(3)=1
	ip := NewArrayInversePermutation(perm)

	require.Equal(t, 4, ip.Len())
	for i := 0; i < perm.Len(); i++ {
		v := perm.Get(i)
		require.Equal(t, uint64(i), ip.At(int(v)), "pi^-1(pi(%d))", i)
	}
}

func TestWrapIVAsIP(t *testing.T) {
	t.Parallel()

	iv := NewPackedIntsFromValues([]uint64{4, 1, 0, 3, 2}, 3)
	ip := WrapIVAsIP(iv)
	require.Equal(t, iv.Len(), ip.Len())
	for i := 0; i < iv.Len(); i++ {
		require.Equal(t, iv.Get(i), ip.At(i))
	}
}
