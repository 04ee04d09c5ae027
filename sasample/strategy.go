// Package sasample implements the four suffix-array sampling
// strategies of spec.md §4.2-§4.5: sa_order_sampling (C1),
// text_order_sampling (C2), bwt_sampling (C3), and fuzzy_sampling (C4).
// Every strategy is built once from cached SA (and, for C4, ISA)
// streams and is afterwards immutable and safe for concurrent readers.
package sasample

import (
	"io"

	"github.com/ogurtsov-succinct/sasampling/csaerr"
	"github.com/ogurtsov-succinct/sasampling/internal/assert"
	"github.com/ogurtsov-succinct/sasampling/internal/succinct"
)

// Strategy is the common SA-sampling contract of spec.md §4.1.
type Strategy interface {
	// IsSampled reports whether SA[i] is stored by this strategy.
	IsSampled(i int) bool
	// At returns SA[i]. Precondition: IsSampled(i).
	At(i int) uint64
	// TextOrder reports the strategy's text_order tag, which ISA
	// supports require to match when pairing.
	TextOrder() bool
	// Serialize writes the strategy to w, optionally recording member
	// sizes into sink (pass succinct.NopSink{} to skip).
	Serialize(w io.Writer, sink succinct.StructureSink) (int, error)
}

func ceilDiv(a, b int) int {
	if b <= 0 {
		assert.Bug("ceilDiv: non-positive divisor %d", b)
		return 0
	}
	return (a + b - 1) / b
}

// validateStride enforces the §3 parameter invariant d_sa >= 1 at
// construction time (isasample checks d_isa >= 1 with its own
// validateISAStride).
func validateStride(op string, d int) error {
	if d < 1 {
		return csaerr.New(csaerr.KindPrecondition, op, "sample stride must be >= 1")
	}
	return nil
}
