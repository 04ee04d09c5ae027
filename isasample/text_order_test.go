package isasample

import (
	"bytes"
	"testing"

	"github.com/ogurtsov-succinct/sasampling/internal/succinct"
	"github.com/ogurtsov-succinct/sasampling/sasample"
	"github.com/stretchr/testify/require"
)

func TestTextOrderISASupportRecordsBlockStartISA(t *testing.T) {
	t.Parallel()

	cconfig, sa := newFixtureConfig(t, "mississippi$")
	const d = 3
	saSample, err := sasample.BuildTextOrderSampling(cconfig, d)
	require.NoError(t, err)
	s, err := BuildTextOrderISASupport(saSample, d)
	require.NoError(t, err)

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

func TestTextOrderISASupportRejectsStrideMismatch(t *testing.T) {
	t.Parallel()

	cconfig, _ := newFixtureConfig(t, "banana$")
	saSample, err := sasample.BuildTextOrderSampling(cconfig, 2)
	require.NoError(t, err)

	_, err = BuildTextOrderISASupport(saSample, 3)
	require.Error(t, err)
}

func TestTextOrderISASupportSampleLEQAndGEQ(t *testing.T) {
	t.Parallel()

	cconfig, sa := newFixtureConfig(t, "banana$")
	const d = 2
	saSample, err := sasample.BuildTextOrderSampling(cconfig, d)
	require.NoError(t, err)
	s, err := BuildTextOrderISASupport(saSample, d)
	require.NoError(t, err)

	isa := invertSA(sa)
	n := len(sa)
	blocks := (n + d - 1) / d

	for i := 0; i < n; i++ {
		ci := i / d
		v, pos := s.SampleLEQ(i)
		require.Equal(t, isa[ci*d], v, "SampleLEQ(%d)", i)
		require.Equal(t, ci*d, pos)

		wantCI := (ci + 1) % blocks
		gv, gpos := s.SampleGEQ(i)
		require.Equal(t, isa[wantCI*d], gv, "SampleGEQ(%d)", i)
		require.Equal(t, wantCI*d, gpos)
	}
}

func TestTextOrderISASupportSerializeRoundTrip(t *testing.T) {
	t.Parallel()

	cconfig, _ := newFixtureConfig(t, "abracadabra$")
	saSample, err := sasample.BuildTextOrderSampling(cconfig, 2)
	require.NoError(t, err)
	s, err := BuildTextOrderISASupport(saSample, 2)
	require.NoError(t, err)

	var buf bytes.Buffer
	_, err = s.Serialize(&buf, succinct.NopSink{})
	require.NoError(t, err)

	got, err := DeserializeTextOrderISASupport(&buf, saSample, 2)
	require.NoError(t, err)
	for i := 0; i < 11; i++ {
		require.Equal(t, s.At(i), got.At(i), "At(%d)", i)
	}
}
