package isasample

import (
	"bytes"
	"testing"

	"github.com/ogurtsov-succinct/sasampling/internal/succinct"
	"github.com/stretchr/testify/require"
)

func TestPlainISASamplingRecordsBlockStartISA(t *testing.T) {
	t.Parallel()

	cconfig, sa := newFixtureConfig(t, "mississippi$")
	const d = 3
	s, err := BuildPlainISASampling(cconfig, d)
	require.NoError(t, err)
	require.Equal(t, d, s.Stride())

	isa := invertSA(sa)
	n := len(sa)
	blocks := (n + d - 1) / d
	for ci := 0; ci < blocks; ci++ {
		pos := ci * d
		if pos >= n {
			continue
		}
		require.Equal(t, isa[pos], s.At(pos), "At(%d)", pos)
	}
}

func TestPlainISASamplingSampleLEQAndGEQ(t *testing.T) {
	t.Parallel()

	cconfig, sa := newFixtureConfig(t, "banana$")
	const d = 2
	s, err := BuildPlainISASampling(cconfig, d)
	require.NoError(t, err)

	isa := invertSA(sa)
	n := len(sa)

	for i := 0; i < n; i++ {
		ci := i / d
		v, pos := s.SampleLEQ(i)
		require.Equal(t, isa[ci*d], v, "SampleLEQ(%d) value", i)
		require.Equal(t, ci*d, pos, "SampleLEQ(%d) pos", i)

		gv, gpos := s.SampleGEQ(i)
		blocks := (n + d - 1) / d
		wantCI := (ci + 1) % blocks
		require.Equal(t, isa[wantCI*d], gv, "SampleGEQ(%d) value", i)
		require.Equal(t, wantCI*d, gpos, "SampleGEQ(%d) pos", i)
	}
}

func TestPlainISASamplingSerializeRoundTrip(t *testing.T) {
	t.Parallel()

	cconfig, _ := newFixtureConfig(t, "abracadabra$")
	s, err := BuildPlainISASampling(cconfig, 3)
	require.NoError(t, err)

	var buf bytes.Buffer
	_, err = s.Serialize(&buf, succinct.NopSink{})
	require.NoError(t, err)

	got, err := DeserializePlainISASampling(&buf, 3)
	require.NoError(t, err)
	for i := 0; i < 11; i++ {
		require.Equal(t, s.At(i), got.At(i), "At(%d)", i)
	}
}
