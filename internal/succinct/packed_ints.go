package succinct

import "github.com/robskie/bit"

// PackedInts is a fixed-width integer vector backed by bit.Array, the
// same arbitrary-width bit-packing primitive github.com/robskie/ranksel
// builds its plain bitmap on top of. Every sampling strategy in this
// module only ever appends samples in increasing index order during
// build (the underlying SA/ISA/BWT streams are scanned once, front to
// back), so an append-only vector is sufficient; no caller needs
// random-index overwrite.
type PackedInts struct {
	arr   *bit.Array
	width int
	n     int
}

// NewPackedInts creates an empty vector of the given bit width. Width 0
// is legal and denotes an always-empty vector (used when n == 0).
func NewPackedInts(width int) MutableIV {
	return newPackedInts(width)
}

func newPackedInts(width int) *PackedInts {
	if width < 0 {
		width = 0
	}
	return &PackedInts{arr: bit.NewArray(0), width: width}
}

// NewPackedIntsFromValues builds a vector holding values in order,
// bit-packed to width bits each.
func NewPackedIntsFromValues(values []uint64, width int) *PackedInts {
	iv := newPackedInts(width)
	for _, v := range values {
		iv.PushBack(v)
	}
	return iv
}

func (iv *PackedInts) PushBack(v uint64) {
	w := iv.width
	if w == 0 {
		w = 1
	}
	iv.arr.Add(v, w)
	iv.n++
}

func (iv *PackedInts) Len() int   { return iv.n }
func (iv *PackedInts) Width() int { return iv.width }

func (iv *PackedInts) Get(i int) uint64 {
	if i < 0 || i >= iv.n {
		panic("succinct: PackedInts index out of range")
	}
	w := iv.width
	if w == 0 {
		w = 1
	}
	return iv.arr.Get(i*w, w)
}

// Values materializes the vector as a plain slice, used by WT
// construction which needs random access to the whole sequence.
func (iv *PackedInts) Values() []uint64 {
	out := make([]uint64, iv.n)
	for i := range out {
		out[i] = iv.Get(i)
	}
	return out
}

// BitWidth returns the number of bits needed to represent any value in
// [0, maxValue], matching sdsl's bits::hi(n)+1 idiom used throughout
// csa_sampling_strategy.hpp (callers conservatively pass n itself, not
// n-1, exactly as the original does).
func BitWidth(maxValue uint64) int {
	w := 0
	for maxValue > 0 {
		w++
		maxValue >>= 1
	}
	if w == 0 {
		w = 1
	}
	return w
}
