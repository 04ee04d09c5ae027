package sasample

import (
	"bytes"
	"testing"

	"github.com/ogurtsov-succinct/sasampling/internal/succinct"
	"github.com/stretchr/testify/require"
)

func invertSA(sa []uint64) []uint64 {
	isa := make([]uint64, len(sa))
	for i, v := range sa {
		isa[v] = uint64(i)
	}
	return isa
}

func TestFuzzySamplingMarksExactlyOnePerBlock(t *testing.T) {
	t.Parallel()

	cconfig, sa := newFixtureConfig(t, "mississippi$")
	const d = 3
	s, err := BuildFuzzySampling(cconfig, d)
	require.NoError(t, err)
	require.True(t, s.TextOrder())

	n := len(sa)
	blocks := (n + d - 1) / d
	require.Equal(t, blocks, s.Size())
	require.Equal(t, blocks, s.MarkedSA().PopCount())
	require.Equal(t, blocks, s.MarkedISA().PopCount())
}

func TestFuzzySamplingAtMatchesSA(t *testing.T) {
	t.Parallel()

	cconfig, sa := newFixtureConfig(t, "mississippi$")
	s, err := BuildFuzzySampling(cconfig, 3)
	require.NoError(t, err)

	for i := 0; i < len(sa); i++ {
		if s.IsSampled(i) {
			require.Equal(t, sa[i], s.At(i), "At(%d)", i)
		}
	}
}

// referenceFuzzyPicks is a direct transcription of the block scan in
// BuildFuzzySampling, used here as ground truth to check the built
// structure against rather than the other way around.
func referenceFuzzyPicks(isa []uint64, d int) []uint64 {
	n := len(isa)
	blocks := (n + d - 1) / d
	picks := make([]uint64, 0, blocks)
	var minPrev uint64
	for b := 0; b < blocks; b++ {
		start := b * d
		end := start + d
		if end > n {
			end = n
		}
		posMin := start
		for j := start + 1; j < end; j++ {
			if isa[j] < isa[posMin] {
				posMin = j
			}
		}
		posCnd := -1
		for j := start; j < end; j++ {
			if isa[j] >= minPrev && (posCnd == -1 || isa[j] < isa[posCnd]) {
				posCnd = j
			}
		}
		if posCnd == -1 {
			posCnd = posMin
		}
		minPrev = isa[posCnd]
		picks = append(picks, minPrev)
	}
	return picks
}

func TestFuzzySamplingMatchesReferenceScan(t *testing.T) {
	t.Parallel()

	cconfig, sa := newFixtureConfig(t, "abcabcabcabc$")
	const d = 2
	s, err := BuildFuzzySampling(cconfig, d)
	require.NoError(t, err)

	isa := invertSA(sa)
	want := referenceFuzzyPicks(isa, d)

	require.Equal(t, len(want), s.Size())
	for i, v := range want {
		require.True(t, s.IsSampled(int(v)), "reference pick %d at block %d must be marked", v, i)
		require.Equal(t, sa[v], s.At(int(v)), "At(%d)", v)
	}
}

func TestFuzzySamplingRejectsBadStride(t *testing.T) {
	t.Parallel()

	cconfig, _ := newFixtureConfig(t, "banana$")
	_, err := BuildFuzzySampling(cconfig, 0)
	require.Error(t, err)
}

func TestFuzzySamplingSerializeRoundTrip(t *testing.T) {
	t.Parallel()

	cconfig, _ := newFixtureConfig(t, "abracadabra$")
	s, err := BuildFuzzySampling(cconfig, 3)
	require.NoError(t, err)

	var buf bytes.Buffer
	_, err = s.Serialize(&buf, succinct.NopSink{})
	require.NoError(t, err)

	got, err := DeserializeFuzzySampling(&buf, 3)
	require.NoError(t, err)
	require.True(t, s.Equal(got))
}
