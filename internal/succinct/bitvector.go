package succinct

import (
	"fmt"

	"github.com/hillbig/rsdic"
)

// RSDicBitVector is a BV backed by github.com/hillbig/rsdic, the same
// rank/select dictionary the teacher thesis uses directly for its
// descriptor bitmaps (trie/shzft, rloc). rsdic builds rank/select
// support incrementally as bits are pushed, so there is no separate
// "finalize" pass beyond returning the wrapper.
type RSDicBitVector struct {
	rs *rsdic.RSDic
}

// RSDicBitVectorBuilder accumulates bits before handing back an
// immutable RSDicBitVector, mirroring the "temporary working bitvector,
// then finalize" shape every SA-sampling build pass uses (spec §4.3,
// §4.4, §4.5).
type RSDicBitVectorBuilder struct {
	rs   *rsdic.RSDic
	size int // expected final length, 0 if unknown
	cap  int // expected final popcount, -1 if unknown
}

// NewBVBuilder starts an unbounded builder.
func NewBVBuilder() BVBuilder {
	return &RSDicBitVectorBuilder{rs: rsdic.New(), cap: -1}
}

// NewSizedBVBuilder starts a builder that knows its final length and
// popcount ahead of time, and validates the sd_vector_builder
// precondition from original_source/lib/sd_vector.cpp: the requested
// number of set bits (capacity) can never exceed the bitvector length.
func NewSizedBVBuilder(size, capacity int) (BVBuilder, error) {
	if capacity > size {
		return nil, fmt.Errorf("sd_vector_builder: requested capacity %d is larger than vector size %d", capacity, size)
	}
	return &RSDicBitVectorBuilder{rs: rsdic.New(), size: size, cap: capacity}, nil
}

func (b *RSDicBitVectorBuilder) PushBack(bit bool) {
	b.rs.PushBack(bit)
}

// Build finalizes the bitvector without checking the declared length
// or popcount of a sized builder; BuildChecked adds that check.
func (b *RSDicBitVectorBuilder) Build() BV {
	return &RSDicBitVector{rs: b.rs}
}

// BuildChecked is Build plus the sized-builder fullness check; returns
// an error instead of panicking on mismatch.
func (b *RSDicBitVectorBuilder) BuildChecked() (BV, error) {
	if b.size > 0 || b.cap >= 0 {
		n := int(b.rs.Num())
		if n != b.size {
			return nil, fmt.Errorf("sd_vector_builder: built length %d does not match declared size %d", n, b.size)
		}
		ones := int(b.rs.Rank(b.rs.Num(), true))
		if b.cap >= 0 && ones != b.cap {
			return nil, fmt.Errorf("sd_vector_builder: built popcount %d does not match declared capacity %d", ones, b.cap)
		}
	}
	return b.Build(), nil
}

func (v *RSDicBitVector) Len() int      { return int(v.rs.Num()) }
func (v *RSDicBitVector) Bit(i int) bool { return v.rs.Bit(uint64(i)) }

// Rank1 returns the number of set bits in [0, i), matching sdsl's
// rank_support_v semantics (and spec §4's rank1).
func (v *RSDicBitVector) Rank1(i int) int { return int(v.rs.Rank(uint64(i), true)) }

// Select1 returns the 0-based position of the k-th (k >= 1) set bit.
func (v *RSDicBitVector) Select1(k int) int { return int(v.rs.Select(uint64(k), true)) }

func (v *RSDicBitVector) PopCount() int {
	if v.rs.Num() == 0 {
		return 0
	}
	return int(v.rs.Rank(v.rs.Num(), true))
}
