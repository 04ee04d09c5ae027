package succinct

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSerializeIVRoundTrip(t *testing.T) {
	t.Parallel()

	values := []uint64{9, 4, 1, 0, 16, 25}
	iv := NewPackedIntsFromValues(values, BitWidth(25))

	var buf bytes.Buffer
	n, err := SerializeIV(&buf, iv)
	require.NoError(t, err)
	require.Equal(t, buf.Len(), n)

	got, read, err := DeserializePackedInts(&buf)
	require.NoError(t, err)
	require.Equal(t, n, read)
	require.Equal(t, iv.Width(), got.Width())
	require.Equal(t, values, got.Values())
}

func TestSerializeBVRoundTrip(t *testing.T) {
	t.Parallel()

	bits := []bool{false, true, true, false, true, false, false, true}
	b := NewBVBuilder()
	for _, bit := range bits {
		b.PushBack(bit)
	}
	bv := b.Build()

	var buf bytes.Buffer
	n, err := SerializeBV(&buf, bv)
	require.NoError(t, err)
	require.Equal(t, buf.Len(), n)

	got, read, err := DeserializeBV(&buf)
	require.NoError(t, err)
	require.Equal(t, n, read)
	require.Equal(t, bv.Len(), got.Len())
	for i := range bits {
		require.Equal(t, bv.Bit(i), got.Bit(i), "bit %d", i)
	}
}

func TestSerializeWTRoundTrip(t *testing.T) {
	t.Parallel()

	values := []uint64{3, 1, 4, 0, 2, 5, 6, 7}
	wt := NewIntWaveletTree(values, BitWidth(uint64(len(values)-1)))

	var buf bytes.Buffer
	_, err := SerializeWT(&buf, wt)
	require.NoError(t, err)

	got, _, err := DeserializeWT(&buf)
	require.NoError(t, err)
	require.Equal(t, wt.Len(), got.Len())
	for i, v := range values {
		require.Equal(t, v, got.Access(i), "Access(%d)", i)
	}
}
