package sasample

import (
	"io"

	"github.com/ogurtsov-succinct/sasampling/cache"
	"github.com/ogurtsov-succinct/sasampling/csaerr"
	"github.com/ogurtsov-succinct/sasampling/internal/assert"
	"github.com/ogurtsov-succinct/sasampling/internal/succinct"
)

// FuzzySampling is C4: one SA sample per SA-stride block, chosen to
// extend a globally increasing run of ISA values as far as possible
// (spec §4.5). markedSA marks the chosen SA-indices (common contract's
// is_sampled domain); markedISA marks, per block, the text position
// whose ISA value was picked; invPerm is a wavelet tree over the
// rank-compressed sequence of per-block choices, letting At recover the
// text position for a sampled SA-index, and D3 (fuzzy_isa_support) the
// SA-index picked for a text block, without storing ISA samples
// explicitly.
type FuzzySampling struct {
	markedSA  succinct.BV
	markedISA succinct.BV
	invPerm   succinct.WT
	dSA       int
}

const opFuzzy = "fuzzy_sampling.build"

// BuildFuzzySampling streams the cached ISA once, materializing it
// first if absent (cache.EnsureISA — a cheap array inversion of the
// already-cached SA, not a suffix-array construction).
func BuildFuzzySampling(cconfig cache.Config, dSA int) (*FuzzySampling, error) {
	if err := validateStride(opFuzzy, dSA); err != nil {
		return nil, err
	}
	if err := cache.EnsureISA(cconfig); err != nil {
		return nil, csaerr.Wrap(csaerr.KindMissingInput, opFuzzy, err)
	}
	isaR, err := cache.OpenIntVector(cconfig.FileName(cache.KeyISA))
	if err != nil {
		return nil, cache.MissingInput(opFuzzy, cache.KeyISA, err)
	}
	n := isaR.Len()
	blocks := ceilDiv(n, dSA)

	markedSABits := make([]bool, n)
	markedISABits := make([]bool, n)
	invPermRaw := make([]uint64, blocks)

	var minPrev uint64 = 0
	runs := 1
	for b := 0; b < blocks; b++ {
		start := b * dSA
		end := start + dSA
		if end > n {
			end = n
		}

		posMin := start
		for t := start + 1; t < end; t++ {
			if isaR.At(t) < isaR.At(posMin) {
				posMin = t
			}
		}

		posCnd := -1
		for t := start; t < end; t++ {
			if isaR.At(t) >= minPrev {
				if posCnd == -1 || isaR.At(t) < isaR.At(posCnd) {
					posCnd = t
				}
			}
		}
		if posCnd == -1 {
			posCnd = posMin
			runs++
		}

		minPrev = isaR.At(posCnd)
		markedISABits[posCnd] = true
		invPermRaw[b] = minPrev
		markedSABits[minPrev] = true
	}
	assert.BugOn(runs < 1, "fuzzy_sampling: run counter underflowed")

	markedSABuilder, err := succinct.NewSizedBVBuilder(n, blocks)
	if err != nil {
		return nil, csaerr.Wrap(csaerr.KindPrecondition, opFuzzy, err)
	}
	for _, b := range markedSABits {
		markedSABuilder.PushBack(b)
	}
	markedSA, err := markedSABuilder.BuildChecked()
	if err != nil {
		return nil, csaerr.Wrap(csaerr.KindInvariant, opFuzzy, err)
	}

	markedISABuilder, err := succinct.NewSizedBVBuilder(n, blocks)
	if err != nil {
		return nil, csaerr.Wrap(csaerr.KindPrecondition, opFuzzy, err)
	}
	for _, b := range markedISABits {
		markedISABuilder.PushBack(b)
	}
	markedISA, err := markedISABuilder.BuildChecked()
	if err != nil {
		return nil, csaerr.Wrap(csaerr.KindInvariant, opFuzzy, err)
	}

	compressed := make([]uint64, blocks)
	for b, v := range invPermRaw {
		compressed[b] = uint64(markedSA.Rank1(int(v)))
	}
	width := 0
	if blocks > 0 {
		width = succinct.BitWidth(uint64(blocks - 1))
	}
	invPerm := succinct.NewIntWaveletTree(compressed, width)

	if markedSA.PopCount() != blocks || markedISA.PopCount() != blocks {
		return nil, csaerr.New(csaerr.KindInvariant, opFuzzy, "popcount(marked_sa) and popcount(marked_isa) must both equal the block count")
	}

	return &FuzzySampling{markedSA: markedSA, markedISA: markedISA, invPerm: invPerm, dSA: dSA}, nil
}

func (s *FuzzySampling) IsSampled(i int) bool { return s.markedSA.Bit(i) }

func (s *FuzzySampling) At(i int) uint64 {
	assert.BugOn(!s.IsSampled(i), "fuzzy_sampling: At(%d) called on unmarked SA-index", i)
	c := uint64(s.markedSA.Rank1(i))
	b := s.invPerm.Select(c, 1)
	return uint64(s.markedISA.Select1(b + 1))
}

// Inv returns the raw (rank-compressed) per-block choice at block k,
// the hook D3 (fuzzy_isa_support) consumes directly.
func (s *FuzzySampling) Inv(k int) uint64 { return s.invPerm.Access(k) }

// Size returns B, the number of SA-stride blocks (== popcount(markedSA)
// == popcount(markedISA)).
func (s *FuzzySampling) Size() int { return s.invPerm.Len() }

func (s *FuzzySampling) MarkedSA() succinct.BV    { return s.markedSA }
func (s *FuzzySampling) MarkedISA() succinct.BV   { return s.markedISA }
func (s *FuzzySampling) Stride() int              { return s.dSA }
func (s *FuzzySampling) TextOrder() bool          { return true }

func (s *FuzzySampling) Equal(other *FuzzySampling) bool {
	if other == nil || s.dSA != other.dSA {
		return false
	}
	if s.markedSA.Len() != other.markedSA.Len() {
		return false
	}
	for i := 0; i < s.markedSA.Len(); i++ {
		if s.markedSA.Bit(i) != other.markedSA.Bit(i) {
			return false
		}
	}
	if s.markedISA.Len() != other.markedISA.Len() {
		return false
	}
	for i := 0; i < s.markedISA.Len(); i++ {
		if s.markedISA.Bit(i) != other.markedISA.Bit(i) {
			return false
		}
	}
	if s.invPerm.Len() != other.invPerm.Len() {
		return false
	}
	for i := 0; i < s.invPerm.Len(); i++ {
		if s.invPerm.Access(i) != other.invPerm.Access(i) {
			return false
		}
	}
	return true
}

func (s *FuzzySampling) Serialize(w io.Writer, sink succinct.StructureSink) (int, error) {
	total := 0
	n, err := succinct.SerializeBV(w, s.markedSA)
	sink.Child("marked_sa", "BV").AddSize(n)
	total += n
	if err != nil {
		return total, err
	}
	n, err = succinct.SerializeBV(w, s.markedISA)
	sink.Child("marked_isa", "BV").AddSize(n)
	total += n
	if err != nil {
		return total, err
	}
	n, err = succinct.SerializeWT(w, s.invPerm)
	sink.Child("inv_perm", "WT").AddSize(n)
	total += n
	return total, err
}

// DeserializeFuzzySampling reads back a structure written by Serialize.
func DeserializeFuzzySampling(r io.Reader, dSA int) (*FuzzySampling, error) {
	if err := validateStride(opFuzzy, dSA); err != nil {
		return nil, err
	}
	markedSA, _, err := succinct.DeserializeBV(r)
	if err != nil {
		return nil, csaerr.Wrap(csaerr.KindSerialization, "fuzzy_sampling.load", err)
	}
	markedISA, _, err := succinct.DeserializeBV(r)
	if err != nil {
		return nil, csaerr.Wrap(csaerr.KindSerialization, "fuzzy_sampling.load", err)
	}
	invPerm, _, err := succinct.DeserializeWT(r)
	if err != nil {
		return nil, csaerr.Wrap(csaerr.KindSerialization, "fuzzy_sampling.load", err)
	}
	return &FuzzySampling{markedSA: markedSA, markedISA: markedISA, invPerm: invPerm, dSA: dSA}, nil
}
