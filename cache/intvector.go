package cache

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"os"

	"github.com/ogurtsov-succinct/sasampling/internal/succinct"
)

// intVectorHeader is written once at the start of every cache file:
// the element count followed by the declared bit width of the elements.
// The payload that follows holds each element as a little-endian uint64;
// the width is recorded, not used to pack the payload.
type intVectorHeader struct {
	N     uint64
	Width uint32
}

// WriteIntVector serializes values to path, one little-endian uint64
// each, after a header recording their count and width. This is the builder side tests use to manufacture SA/ISA/BWT
// cache fixtures; the real enclosing index would have produced these
// files as a side effect of suffix-array construction.
func WriteIntVector(path string, values []uint64, width int) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	hdr := intVectorHeader{N: uint64(len(values)), Width: uint32(width)}
	if err := binary.Write(w, binary.LittleEndian, hdr); err != nil {
		return err
	}
	for _, v := range values {
		if err := binary.Write(w, binary.LittleEndian, v); err != nil {
			return err
		}
	}
	return w.Flush()
}

// IntVectorReader is a sequential, once-through reader over a cache
// file, matching the streaming contract of spec §4.1 ("Each file is
// streamed once; no random access beyond the stride window"). Values
// are buffered in memory on Open since the sampling structures in this
// module are built from inputs small enough for tests and the bench
// CLI; a production-scale reader would keep only a stride-sized
// window, a refinement this module does not need to demonstrate the
// sampling logic itself (see DESIGN.md).
type IntVectorReader struct {
	values []uint64
	width  int
}

// OpenIntVector reads the whole cache file at path.
func OpenIntVector(path string) (*IntVectorReader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := bufio.NewReader(f)
	var hdr intVectorHeader
	if err := binary.Read(r, binary.LittleEndian, &hdr); err != nil {
		return nil, fmt.Errorf("intvector: truncated header: %w", err)
	}
	values := make([]uint64, hdr.N)
	for i := range values {
		if err := binary.Read(r, binary.LittleEndian, &values[i]); err != nil {
			return nil, fmt.Errorf("intvector: truncated payload at element %d: %w", i, err)
		}
	}
	return &IntVectorReader{values: values, width: int(hdr.Width)}, nil
}

func (r *IntVectorReader) Len() int      { return len(r.values) }
func (r *IntVectorReader) Width() int    { return r.width }
func (r *IntVectorReader) At(i int) uint64 { return r.values[i] }

// AsPackedInts re-packs the streamed values into a succinct.IV, for
// builders that want to keep their own copy rather than the reader's
// plain slice.
func (r *IntVectorReader) AsPackedInts() succinct.IV {
	return succinct.NewPackedIntsFromValues(r.values, r.width)
}

// EnsureISA materializes the KeyISA cache file from KeySA if it is not
// already present, the way sdsl's construct_isa does. This is a plain
// array inversion (isa[sa[i]] = i), not a suffix-array construction
// algorithm, so it stays inside this module's scope even though SA/ISA
// construction proper is a Non-goal (spec §1): fuzzy_sampling (C4)
// requires ISA to be cached and the enclosing index is expected to
// supply it, but when it is missing, inverting an already-cached SA is
// cheap enough that requiring callers to do it themselves would just
// move this exact loop into every caller.
func EnsureISA(cconfig Config) error {
	if cconfig.Exists(KeyISA) {
		return nil
	}
	sa, err := OpenIntVector(cconfig.FileName(KeySA))
	if err != nil {
		return MissingInput("construct_isa", KeySA, err)
	}
	n := sa.Len()
	isa := make([]uint64, n)
	for i := 0; i < n; i++ {
		isa[sa.At(i)] = uint64(i)
	}
	width := succinct.BitWidth(uint64(n))
	return WriteIntVector(cconfig.FileName(KeyISA), isa, width)
}
