package succinct

// IntWaveletTree is a balanced binary wavelet tree over dense integer
// keys in [0, sigma), modeled after the level-bitmap shape of
// github.com/mozu0/bitvector-backed wltree in the retrieval pack
// (other_examples/sniperkit-xrank__wltree.go), but without that tree's
// Huffman shaping: C4's inv_perm values already live in the dense
// range [0, B), so a fixed-width balanced split (one bit per level,
// matching sdsl's wt_int) needs no frequency table.
type IntWaveletTree struct {
	levels []BV
	width  int
	n      int
}

// NewIntWaveletTree builds a wavelet tree over values, each assumed to
// fit in width bits. Construction is a width-pass stable radix
// partition, each pass producing one level's bitmap via a BVBuilder.
func NewIntWaveletTree(values []uint64, width int) *IntWaveletTree {
	wt := &IntWaveletTree{width: width, n: len(values)}
	if width == 0 || len(values) == 0 {
		return wt
	}
	wt.levels = make([]BV, width)
	cur := append([]uint64(nil), values...)
	for lvl := 0; lvl < width; lvl++ {
		shift := uint(width - 1 - lvl)
		b := NewBVBuilder()
		zeros := make([]uint64, 0, len(cur))
		ones := make([]uint64, 0, len(cur))
		for _, v := range cur {
			if (v>>shift)&1 == 0 {
				b.PushBack(false)
				zeros = append(zeros, v)
			} else {
				b.PushBack(true)
				ones = append(ones, v)
			}
		}
		wt.levels[lvl] = b.Build()
		cur = append(zeros, ones...)
	}
	return wt
}

func (wt *IntWaveletTree) Len() int { return wt.n }

// Width returns the per-value bit width the tree was built with.
func (wt *IntWaveletTree) Width() int { return wt.width }

// Access returns the value stored at position i by walking the levels
// top-down, narrowing the position within each level's zero/one
// partition as it goes.
func (wt *IntWaveletTree) Access(i int) uint64 {
	pos := i
	var value uint64
	for lvl := 0; lvl < wt.width; lvl++ {
		bv := wt.levels[lvl]
		bit := bv.Bit(pos)
		value <<= 1
		if bit {
			value |= 1
			zeros := bv.Len() - bv.PopCount()
			pos = zeros + bv.Rank1(pos)
		} else {
			pos = pos - bv.Rank1(pos)
		}
	}
	return value
}

// Select returns the 0-based position of the k-th (k >= 1) occurrence
// of value c. It first walks the levels top-down following c's bits to
// find where the run of c's starts in the bottom level (each level
// partitions the whole sequence, so the bottom level is not sorted by
// value), then walks the levels bottom-up from the (k-1)-th entry of
// that run.
func (wt *IntWaveletTree) Select(c uint64, k int) int {
	if wt.width == 0 {
		return -1
	}
	start := 0
	for lvl := 0; lvl < wt.width; lvl++ {
		bv := wt.levels[lvl]
		if (c>>uint(wt.width-1-lvl))&1 == 0 {
			start -= bv.Rank1(start)
		} else {
			start = bv.Len() - bv.PopCount() + bv.Rank1(start)
		}
	}
	pos := start + (k - 1)
	for lvl := wt.width - 1; lvl >= 0; lvl-- {
		bv := wt.levels[lvl]
		ones := bv.PopCount()
		zeros := bv.Len() - ones
		if pos < zeros {
			pos = selectZero(bv, pos+1)
		} else {
			pos = bv.Select1(pos - zeros + 1)
		}
	}
	return pos
}

// selectZero returns the 0-based position of the r-th (r >= 1) unset
// bit in bv. BV only guarantees O(1) select on ones (spec's select1),
// so select-on-zero is a binary search over rank1 here; bv is always
// one wavelet-tree level of a sublinear-sized structure, so the extra
// log factor is immaterial.
func selectZero(bv BV, r int) int {
	lo, hi := 0, bv.Len()
	for lo < hi {
		mid := (lo + hi) / 2
		zerosUpTo := (mid + 1) - bv.Rank1(mid+1)
		if zerosUpTo >= r {
			hi = mid
		} else {
			lo = mid + 1
		}
	}
	return lo
}
