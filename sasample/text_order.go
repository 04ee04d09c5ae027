package sasample

import (
	"io"

	"github.com/ogurtsov-succinct/sasampling/cache"
	"github.com/ogurtsov-succinct/sasampling/csaerr"
	"github.com/ogurtsov-succinct/sasampling/internal/assert"
	"github.com/ogurtsov-succinct/sasampling/internal/succinct"
)

// TextOrderSampling is C2: samples chosen at a regular stride in the
// text domain. Which SA indices are sampled is now data-dependent, so a
// marks bitvector with rank1 support is needed to find the condensed
// sample for a given SA index (spec §4.3).
type TextOrderSampling struct {
	samples succinct.IV // condensed: SA[i]/dSA for each marked i, in SA-index order
	marked  succinct.BV
	dSA     int
}

const opTextOrder = "text_order_sampling.build"

// BuildTextOrderSampling streams the cached SA once, marking SA index
// i whenever SA[i] is itself a multiple of dSA.
func BuildTextOrderSampling(cconfig cache.Config, dSA int) (*TextOrderSampling, error) {
	if err := validateStride(opTextOrder, dSA); err != nil {
		return nil, err
	}
	r, err := cache.OpenIntVector(cconfig.FileName(cache.KeySA))
	if err != nil {
		return nil, cache.MissingInput(opTextOrder, cache.KeySA, err)
	}
	n := r.Len()
	expected := ceilDiv(n, dSA)
	markedBuilder, err := succinct.NewSizedBVBuilder(n, expected)
	if err != nil {
		return nil, csaerr.Wrap(csaerr.KindPrecondition, opTextOrder, err)
	}
	width := succinct.BitWidth(uint64(n / dSA))
	values := make([]uint64, 0, expected)
	for i := 0; i < n; i++ {
		sa := r.At(i)
		isMarked := sa%uint64(dSA) == 0
		markedBuilder.PushBack(isMarked)
		if isMarked {
			values = append(values, sa/uint64(dSA))
		}
	}
	marked, err := markedBuilder.BuildChecked()
	if err != nil {
		return nil, csaerr.Wrap(csaerr.KindInvariant, opTextOrder, err)
	}
	return &TextOrderSampling{
		samples: succinct.NewPackedIntsFromValues(values, width),
		marked:  marked,
		dSA:     dSA,
	}, nil
}

func (s *TextOrderSampling) IsSampled(i int) bool { return s.marked.Bit(i) }

func (s *TextOrderSampling) At(i int) uint64 {
	assert.BugOn(!s.IsSampled(i), "text_order_sampling: At(%d) called on unmarked index", i)
	return s.samples.Get(s.marked.Rank1(i)) * uint64(s.dSA)
}

// CondensedSA returns the condensed (divided-by-dSA) sample at
// compacted position k, the hook D2's text_order_isa_support consumes.
func (s *TextOrderSampling) CondensedSA(k int) uint64 { return s.samples.Get(k) }

func (s *TextOrderSampling) Marked() succinct.BV { return s.marked }
func (s *TextOrderSampling) Samples() succinct.IV { return s.samples }
func (s *TextOrderSampling) Stride() int           { return s.dSA }
func (s *TextOrderSampling) TextOrder() bool       { return true }

func (s *TextOrderSampling) Equal(other *TextOrderSampling) bool {
	if other == nil || s.dSA != other.dSA || s.marked.Len() != other.marked.Len() {
		return false
	}
	for i := 0; i < s.marked.Len(); i++ {
		if s.marked.Bit(i) != other.marked.Bit(i) {
			return false
		}
	}
	if s.samples.Len() != other.samples.Len() {
		return false
	}
	for i := 0; i < s.samples.Len(); i++ {
		if s.samples.Get(i) != other.samples.Get(i) {
			return false
		}
	}
	return true
}

func (s *TextOrderSampling) Serialize(w io.Writer, sink succinct.StructureSink) (int, error) {
	total := 0
	n, err := succinct.SerializeIV(w, s.samples)
	sink.Child("samples", "IV").AddSize(n)
	total += n
	if err != nil {
		return total, err
	}
	n, err = succinct.SerializeBV(w, s.marked)
	sink.Child("marked", "BV").AddSize(n)
	total += n
	return total, err
}

// DeserializeTextOrderSampling reads back a structure written by Serialize.
func DeserializeTextOrderSampling(r io.Reader, dSA int) (*TextOrderSampling, error) {
	if err := validateStride(opTextOrder, dSA); err != nil {
		return nil, err
	}
	samples, _, err := succinct.DeserializePackedInts(r)
	if err != nil {
		return nil, csaerr.Wrap(csaerr.KindSerialization, "text_order_sampling.load", err)
	}
	marked, _, err := succinct.DeserializeBV(r)
	if err != nil {
		return nil, csaerr.Wrap(csaerr.KindSerialization, "text_order_sampling.load", err)
	}
	return &TextOrderSampling{samples: samples, marked: marked, dSA: dSA}, nil
}
