package succinct

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRSDicBitVectorRankSelect(t *testing.T) {
	t.Parallel()

	bits := []bool{true, false, true, true, false, false, true, false, true}
	b := NewBVBuilder()
	for _, bit := range bits {
		b.PushBack(bit)
	}
	bv := b.Build()

	require.Equal(t, len(bits), bv.Len())
	ones := 0
	for i, bit := range bits {
		require.Equal(t, bit, bv.Bit(i), "bit %d", i)
		require.Equal(t, ones, bv.Rank1(i), "rank1 at %d", i)
		if bit {
			ones++
			require.Equal(t, i, bv.Select1(ones), "select1(%d)", ones)
		}
	}
	require.Equal(t, ones, bv.PopCount())
}

func TestNewSizedBVBuilderRejectsOversizedCapacity(t *testing.T) {
	t.Parallel()

	_, err := NewSizedBVBuilder(4, 5)
	require.Error(t, err)
}

func TestBuildCheckedValidatesDeclaredShape(t *testing.T) {
	t.Parallel()

	b, err := NewSizedBVBuilder(3, 2)
	require.NoError(t, err)
	b.PushBack(true)
	b.PushBack(false)
	b.PushBack(true)
	bv, err := b.BuildChecked()
	require.NoError(t, err)
	require.Equal(t, 3, bv.Len())
	require.Equal(t, 2, bv.PopCount())
}

func TestBuildCheckedRejectsWrongPopcount(t *testing.T) {
	t.Parallel()

	b, err := NewSizedBVBuilder(3, 2)
	require.NoError(t, err)
	b.PushBack(true)
	b.PushBack(true)
	b.PushBack(true)
	_, err = b.BuildChecked()
	require.Error(t, err)
}
