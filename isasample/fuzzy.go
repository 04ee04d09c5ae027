package isasample

import (
	"io"

	"github.com/ogurtsov-succinct/sasampling/csaerr"
	"github.com/ogurtsov-succinct/sasampling/internal/succinct"
	"github.com/ogurtsov-succinct/sasampling/sasample"
)

// FuzzyISASupport is D3: a pure non-owning back-reference into an
// already-built fuzzy_sampling (spec §4.8). It owns no state of its
// own — every query rewrites to a select on fuzzy_sampling's marked_sa
// together with its per-block inv_perm lookup, exactly mirroring
// original_source's _fuzzy_isa_sampling_support, which stores only a
// pointer to the SA sampling plus a select support over its marked_sa
// (our succinct.BV already carries select, so nothing extra is needed
// here).
type FuzzyISASupport struct {
	sa   *sasample.FuzzySampling // non-owning back-reference
	dISA int
}

const opFuzzyISA = "fuzzy_isa_sampling_support.build"

// BuildFuzzyISASupport pairs with an already-built sasample.FuzzySampling.
func BuildFuzzyISASupport(sa *sasample.FuzzySampling, dISA int) (*FuzzyISASupport, error) {
	if err := validateISAStride(opFuzzyISA, dISA); err != nil {
		return nil, err
	}
	if sa.Stride() != dISA {
		return nil, csaerr.New(csaerr.KindPrecondition, opFuzzyISA, "d_sa must equal d_isa for fuzzy_isa_sampling_support")
	}
	return &FuzzyISASupport{sa: sa, dISA: dISA}, nil
}

// At divides i down to its block like D1/D2's At do, even though the
// original's own _fuzzy_isa_sampling_support::operator[] takes a block
// index directly with no division (original_source lines ~1043-1046).
// Keeping Support's "i is a text position" contract uniform across
// D1-D3 is consistent with the original itself: its sample_leq/
// sample_qeq for this same support already take a raw text position
// and divide internally before reaching operator[]'s formula.
func (s *FuzzyISASupport) At(i int) uint64 {
	ci := i / s.dISA
	return uint64(s.sa.MarkedSA().Select1(int(s.sa.Inv(ci)) + 1))
}

// SampleLEQ returns the rightmost recorded ISA sample at or before text
// position i, stepping back one block when i's own block's chosen
// position falls after i (original_source lines ~1048-1066).
func (s *FuzzyISASupport) SampleLEQ(i int) (uint64, int) {
	ci := i / s.dISA
	j := s.sa.MarkedISA().Select1(ci + 1)
	if j > i {
		if ci > 0 {
			ci--
		} else {
			ci = s.sa.Size() - 1
		}
		j = s.sa.MarkedISA().Select1(ci + 1)
	}
	return uint64(s.sa.MarkedSA().Select1(int(s.sa.Inv(ci)) + 1)), j
}

// SampleGEQ returns the leftmost recorded ISA sample at or after text
// position i, stepping forward one block when i's own block's chosen
// position falls before i (original_source lines ~1068-1086).
func (s *FuzzyISASupport) SampleGEQ(i int) (uint64, int) {
	ci := i / s.dISA
	j := s.sa.MarkedISA().Select1(ci + 1)
	if j < i {
		if ci < s.sa.Size()-1 {
			ci++
		} else {
			ci = 0
		}
		j = s.sa.MarkedISA().Select1(ci + 1)
	}
	return uint64(s.sa.MarkedSA().Select1(int(s.sa.Inv(ci)) + 1)), j
}

// Serialize writes nothing: every byte FuzzyISASupport needs is already
// owned and serialized by the fuzzy_sampling it rebinds to.
func (s *FuzzyISASupport) Serialize(w io.Writer, sink succinct.StructureSink) (int, error) {
	return 0, nil
}

// DeserializeFuzzyISASupport rebinds to an already-loaded fuzzy_sampling.
func DeserializeFuzzyISASupport(r io.Reader, sa *sasample.FuzzySampling, dISA int) (*FuzzyISASupport, error) {
	return BuildFuzzyISASupport(sa, dISA)
}
