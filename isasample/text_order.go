package isasample

import (
	"io"

	"github.com/ogurtsov-succinct/sasampling/csaerr"
	"github.com/ogurtsov-succinct/sasampling/internal/succinct"
	"github.com/ogurtsov-succinct/sasampling/sasample"
)

// TextOrderISASupport is D2: riding on a text_order_sampling's own
// marks bitvector rather than storing ISA samples separately.
// text_order_sampling's condensed samples array is itself a permutation
// of [0, B) (spec §4.3's "exactly one SA index per condensed text
// block"), so its inverse — built once at construction — maps a block
// index to the rank, among the marked SA-indices, of the one whose
// sample is that block; select on the marks bitvector then turns that
// rank into the SA-index itself
// (original_source's _text_order_isa_sampling_support).
type TextOrderISASupport struct {
	sa      *sasample.TextOrderSampling // non-owning back-reference
	invPerm succinct.IP
	dISA    int
}

const opTextOrderISA = "text_order_isa_sampling_support.build"

// BuildTextOrderISASupport pairs with an already-built
// sasample.TextOrderSampling. Per spec §4.6/original_source's
// static_assert, the ISA and SA strides must agree.
func BuildTextOrderISASupport(sa *sasample.TextOrderSampling, dISA int) (*TextOrderISASupport, error) {
	if err := validateISAStride(opTextOrderISA, dISA); err != nil {
		return nil, err
	}
	if sa.Stride() != dISA {
		return nil, csaerr.New(csaerr.KindPrecondition, opTextOrderISA, "d_sa must equal d_isa for text_order_isa_sampling_support")
	}
	return &TextOrderISASupport{
		sa:      sa,
		invPerm: succinct.NewArrayInversePermutation(sa.Samples()),
		dISA:    dISA,
	}, nil
}

func (s *TextOrderISASupport) At(i int) uint64 {
	ci := i / s.dISA
	return uint64(s.sa.Marked().Select1(int(s.invPerm.At(ci)) + 1))
}

func (s *TextOrderISASupport) SampleLEQ(i int) (uint64, int) {
	ci := i / s.dISA
	return uint64(s.sa.Marked().Select1(int(s.invPerm.At(ci)) + 1)), ci * s.dISA
}

func (s *TextOrderISASupport) SampleGEQ(i int) (uint64, int) {
	ci := (i/s.dISA + 1) % s.invPerm.Len()
	return uint64(s.sa.Marked().Select1(int(s.invPerm.At(ci)) + 1)), ci * s.dISA
}

func (s *TextOrderISASupport) Serialize(w io.Writer, sink succinct.StructureSink) (int, error) {
	values := make([]uint64, s.invPerm.Len())
	for i := range values {
		values[i] = s.invPerm.At(i)
	}
	width := succinct.BitWidth(uint64(s.invPerm.Len()))
	child := sink.Child("inv_perm", "IP")
	n, err := succinct.SerializeIV(w, succinct.NewPackedIntsFromValues(values, width))
	child.AddSize(n)
	return n, err
}

// DeserializeTextOrderISASupport reads back a structure written by
// Serialize, rebinding it to the already-loaded SA sampling it pairs
// with.
func DeserializeTextOrderISASupport(r io.Reader, sa *sasample.TextOrderSampling, dISA int) (*TextOrderISASupport, error) {
	if err := validateISAStride(opTextOrderISA, dISA); err != nil {
		return nil, err
	}
	if sa.Stride() != dISA {
		return nil, csaerr.New(csaerr.KindPrecondition, opTextOrderISA, "d_sa must equal d_isa for text_order_isa_sampling_support")
	}
	iv, _, err := succinct.DeserializePackedInts(r)
	if err != nil {
		return nil, csaerr.Wrap(csaerr.KindSerialization, "text_order_isa_sampling_support.load", err)
	}
	return &TextOrderISASupport{sa: sa, invPerm: succinct.WrapIVAsIP(iv), dISA: dISA}, nil
}
