// Package isasample implements the inverse-suffix-array sampling
// supports that pair with sasample's SA-sampling strategies: plain
// stride sampling (D1), a text-order support riding on a text_order
// sampling's own marks (D2), and a fuzzy support riding on fuzzy_sampling's
// marks (D3) (spec.md §4.6-§4.8).
package isasample

import (
	"io"

	"github.com/ogurtsov-succinct/sasampling/internal/succinct"
)

// Support is the common ISA-sampling contract of spec.md §4.1. i always
// denotes a text position; At, SampleLEQ and SampleGEQ all resolve i
// down to the stride-aligned block i/dISA falls in, mirroring the
// original's sample_leq/sample_qeq pairing (original_source's
// csa_sampling_strategy.hpp).
type Support interface {
	// At returns the recorded ISA sample for the block containing text
	// position i. Defined for any i in [0, n); i need not itself be a
	// sample point.
	At(i int) uint64
	// SampleLEQ returns the rightmost recorded ISA sample at or before
	// text position i, and the text position it was recorded at. When
	// no sample lies at or before i, it wraps around to the last block.
	SampleLEQ(i int) (value uint64, pos int)
	// SampleGEQ returns a recorded ISA sample at or after text position i, and
	// the text position it was recorded at, wrapping around to block 0
	// past the last block. D1 and D2 always return the block after i's
	// own, even when i is itself a sample point; D3 returns i's own
	// block's sample when it lies at or after i.
	SampleGEQ(i int) (value uint64, pos int)
	Serialize(w io.Writer, sink succinct.StructureSink) (int, error)
}
