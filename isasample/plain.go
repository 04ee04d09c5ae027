package isasample

import (
	"io"

	"github.com/ogurtsov-succinct/sasampling/cache"
	"github.com/ogurtsov-succinct/sasampling/csaerr"
	"github.com/ogurtsov-succinct/sasampling/internal/succinct"
)

// PlainISASampling is D1: one ISA sample per dISA-stride block,
// recorded directly while streaming SA rather than ISA (original
// source's _isa_sampling never opens the ISA cache file at all — for
// each SA-index i with SA[i] a multiple of dISA, slot SA[i]/dISA gets
// value i). This is the ISA-sampling analogue of sa_order_sampling, and
// the only ISA support with no back-reference to an SA-sampling
// strategy at all.
type PlainISASampling struct {
	samples succinct.IV
	dISA    int
}

const opPlainISA = "plain_isa_sampling.build"

// BuildPlainISASampling streams the cached SA once. Because the target
// slot SA[i]/dISA is data-dependent, not sequential, the values are
// assembled into a plain slice first and bulk-packed into an IV only
// once the scan completes — succinct.PackedInts is append-only by
// design (see its doc comment), so this build is the one place in the
// module that needs ordinary random-access working memory before
// finalizing into the succinct representation.
func BuildPlainISASampling(cconfig cache.Config, dISA int) (*PlainISASampling, error) {
	if err := validateISAStride(opPlainISA, dISA); err != nil {
		return nil, err
	}
	r, err := cache.OpenIntVector(cconfig.FileName(cache.KeySA))
	if err != nil {
		return nil, cache.MissingInput(opPlainISA, cache.KeySA, err)
	}
	n := r.Len()
	blocks := 0
	if n >= 1 {
		blocks = (n-1)/dISA + 1
	}
	raw := make([]uint64, blocks)
	for i := 0; i < n; i++ {
		sa := r.At(i)
		if sa%uint64(dISA) == 0 {
			raw[sa/uint64(dISA)] = uint64(i)
		}
	}
	width := succinct.BitWidth(uint64(n))
	return &PlainISASampling{
		samples: succinct.NewPackedIntsFromValues(raw, width),
		dISA:    dISA,
	}, nil
}

func (s *PlainISASampling) At(i int) uint64 { return s.samples.Get(i / s.dISA) }

// SampleLEQ returns the rightmost ISA sample recorded at or before text
// position i.
func (s *PlainISASampling) SampleLEQ(i int) (uint64, int) {
	ci := i / s.dISA
	return s.samples.Get(ci), ci * s.dISA
}

// SampleGEQ returns the ISA sample recorded at the start of the block
// after i's own. The wrap-around to block 0 when i's own block is the last
// one looks like an off-by-one at first read but is intentional: it
// mirrors sample_leq/sample_qeq's original_source pairing, where qeq
// always advances one block past i's own (even when i already lands
// exactly on a sample point) and wraps past the final block back to the
// first rather than returning past-the-end.
func (s *PlainISASampling) SampleGEQ(i int) (uint64, int) {
	ci := (i/s.dISA + 1) % s.samples.Len()
	return s.samples.Get(ci), ci * s.dISA
}

func (s *PlainISASampling) Stride() int { return s.dISA }

func (s *PlainISASampling) Serialize(w io.Writer, sink succinct.StructureSink) (int, error) {
	child := sink.Child("samples", "IV")
	n, err := succinct.SerializeIV(w, s.samples)
	child.AddSize(n)
	return n, err
}

// DeserializePlainISASampling reads back a structure written by Serialize.
func DeserializePlainISASampling(r io.Reader, dISA int) (*PlainISASampling, error) {
	if err := validateISAStride(opPlainISA, dISA); err != nil {
		return nil, err
	}
	iv, _, err := succinct.DeserializePackedInts(r)
	if err != nil {
		return nil, csaerr.Wrap(csaerr.KindSerialization, "plain_isa_sampling.load", err)
	}
	return &PlainISASampling{samples: iv, dISA: dISA}, nil
}

func validateISAStride(op string, d int) error {
	if d < 1 {
		return csaerr.New(csaerr.KindPrecondition, op, "sample stride must be >= 1")
	}
	return nil
}
