package succinct

import (
	"encoding/binary"
	"fmt"
	"io"
)

// Every primitive below serializes as a fixed header followed by its
// payload, and deserializes by reading that same shape back, matching
// spec §6's "byte-count returned by serialize equals the total written"
// and §5's "serialization writes components in a fixed order;
// deserialization reads them in the same order" contract.

// SerializeIV writes iv as [n uint64][width uint32][n values].
func SerializeIV(w io.Writer, iv IV) (int, error) {
	n := iv.Len()
	width := iv.Width()
	written := 0
	if err := binary.Write(w, binary.LittleEndian, uint64(n)); err != nil {
		return written, err
	}
	written += 8
	if err := binary.Write(w, binary.LittleEndian, uint32(width)); err != nil {
		return written, err
	}
	written += 4
	for i := 0; i < n; i++ {
		if err := binary.Write(w, binary.LittleEndian, iv.Get(i)); err != nil {
			return written, err
		}
		written += 8
	}
	return written, nil
}

// DeserializePackedInts reads back a vector written by SerializeIV.
func DeserializePackedInts(r io.Reader) (*PackedInts, int, error) {
	var n uint64
	var width uint32
	read := 0
	if err := binary.Read(r, binary.LittleEndian, &n); err != nil {
		return nil, read, fmt.Errorf("succinct: truncated IV length: %w", err)
	}
	read += 8
	if err := binary.Read(r, binary.LittleEndian, &width); err != nil {
		return nil, read, fmt.Errorf("succinct: truncated IV width: %w", err)
	}
	read += 4
	values := make([]uint64, n)
	for i := range values {
		if err := binary.Read(r, binary.LittleEndian, &values[i]); err != nil {
			return nil, read, fmt.Errorf("succinct: truncated IV payload at %d: %w", i, err)
		}
		read += 8
	}
	return NewPackedIntsFromValues(values, int(width)), read, nil
}

// SerializeBV writes v as [n uint64][n bits, one byte each for
// simplicity — this module optimizes for clarity of the sampling logic
// over bit-for-bit serialization density, which is the primitives'
// concern, not the sampling core's (see DESIGN.md)].
func SerializeBV(w io.Writer, v BV) (int, error) {
	n := v.Len()
	written := 0
	if err := binary.Write(w, binary.LittleEndian, uint64(n)); err != nil {
		return written, err
	}
	written += 8
	buf := make([]byte, n)
	for i := 0; i < n; i++ {
		if v.Bit(i) {
			buf[i] = 1
		}
	}
	if n > 0 {
		nw, err := w.Write(buf)
		written += nw
		if err != nil {
			return written, err
		}
	}
	return written, nil
}

// DeserializeBV reads back a bitvector written by SerializeBV.
func DeserializeBV(r io.Reader) (BV, int, error) {
	var n uint64
	read := 0
	if err := binary.Read(r, binary.LittleEndian, &n); err != nil {
		return nil, read, fmt.Errorf("succinct: truncated BV length: %w", err)
	}
	read += 8
	buf := make([]byte, n)
	if n > 0 {
		if _, err := io.ReadFull(r, buf); err != nil {
			return nil, read, fmt.Errorf("succinct: truncated BV payload: %w", err)
		}
		read += int(n)
	}
	b := NewBVBuilder()
	for _, bb := range buf {
		b.PushBack(bb != 0)
	}
	return b.Build(), read, nil
}

// SerializeWT writes the wavelet tree's original value sequence and
// its bit width, enough to rebuild an identical tree.
func SerializeWT(w io.Writer, wt WT) (int, error) {
	values := make([]uint64, wt.Len())
	for i := range values {
		values[i] = wt.Access(i)
	}
	return SerializeIV(w, NewPackedIntsFromValues(values, wt.Width()))
}

// DeserializeWT reads back a wavelet tree written by SerializeWT.
func DeserializeWT(r io.Reader) (*IntWaveletTree, int, error) {
	iv, read, err := DeserializePackedInts(r)
	if err != nil {
		return nil, read, err
	}
	return NewIntWaveletTree(iv.Values(), iv.Width()), read, nil
}
