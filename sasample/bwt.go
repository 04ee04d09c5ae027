package sasample

import (
	"io"

	"github.com/ogurtsov-succinct/sasampling/cache"
	"github.com/ogurtsov-succinct/sasampling/csaerr"
	"github.com/ogurtsov-succinct/sasampling/internal/assert"
	"github.com/ogurtsov-succinct/sasampling/internal/succinct"
)

// BWTSampling is C3: text_order_sampling's stride rule, plus extra
// marks for SA indices whose BWT character falls in a caller-supplied
// sample-char set (spec §4.4). Unlike C2, the stored samples are full
// (uncondensed) SA values, since the extra BWT-driven marks break the
// clean SA[i]/dSA bijection C2 relies on.
type BWTSampling struct {
	samples succinct.IV
	marked  succinct.BV
	dSA     int
}

const opBWT = "bwt_sampling.build"

// BuildBWTSampling streams the cached SA and BWT once each. sampleChars
// may be nil, meaning no extra BWT-driven marks (S is empty).
func BuildBWTSampling(cconfig cache.Config, dSA int, bwtWidth int, sampleChars map[byte]bool) (*BWTSampling, error) {
	if err := validateStride(opBWT, dSA); err != nil {
		return nil, err
	}
	saReader, err := cache.OpenIntVector(cconfig.FileName(cache.KeySA))
	if err != nil {
		return nil, cache.MissingInput(opBWT, cache.KeySA, err)
	}
	bwtReader, err := cache.OpenIntVector(cconfig.FileName(cache.KeyBWT(bwtWidth)))
	if err != nil {
		return nil, cache.MissingInput(opBWT, cache.KeyBWT(bwtWidth), err)
	}
	n := saReader.Len()
	if bwtReader.Len() != n {
		return nil, csaerr.New(csaerr.KindPrecondition, opBWT, "SA and BWT length mismatch")
	}
	if sampleChars == nil {
		sampleChars = map[byte]bool{}
	}

	marks := make([]bool, n)
	saCnt := 0
	for i := 0; i < n; i++ {
		sa := saReader.At(i)
		bwt := byte(bwtReader.At(i))
		if sa%uint64(dSA) == 0 || sampleChars[bwt] {
			marks[i] = true
			saCnt++
		}
	}

	width := succinct.BitWidth(uint64(n))
	values := make([]uint64, 0, saCnt)
	markedBuilder, err := succinct.NewSizedBVBuilder(n, saCnt)
	if err != nil {
		return nil, csaerr.Wrap(csaerr.KindPrecondition, opBWT, err)
	}
	for i := 0; i < n; i++ {
		markedBuilder.PushBack(marks[i])
		if marks[i] {
			values = append(values, saReader.At(i))
		}
	}
	marked, err := markedBuilder.BuildChecked()
	if err != nil {
		return nil, csaerr.Wrap(csaerr.KindInvariant, opBWT, err)
	}
	return &BWTSampling{
		samples: succinct.NewPackedIntsFromValues(values, width),
		marked:  marked,
		dSA:     dSA,
	}, nil
}

func (s *BWTSampling) IsSampled(i int) bool { return s.marked.Bit(i) }

func (s *BWTSampling) At(i int) uint64 {
	assert.BugOn(!s.IsSampled(i), "bwt_sampling: At(%d) called on unmarked index", i)
	return s.samples.Get(s.marked.Rank1(i))
}

func (s *BWTSampling) TextOrder() bool { return false }
func (s *BWTSampling) Stride() int     { return s.dSA }

func (s *BWTSampling) Equal(other *BWTSampling) bool {
	if other == nil || s.dSA != other.dSA || s.marked.Len() != other.marked.Len() {
		return false
	}
	for i := 0; i < s.marked.Len(); i++ {
		if s.marked.Bit(i) != other.marked.Bit(i) {
			return false
		}
	}
	if s.samples.Len() != other.samples.Len() {
		return false
	}
	for i := 0; i < s.samples.Len(); i++ {
		if s.samples.Get(i) != other.samples.Get(i) {
			return false
		}
	}
	return true
}

func (s *BWTSampling) Serialize(w io.Writer, sink succinct.StructureSink) (int, error) {
	total := 0
	n, err := succinct.SerializeIV(w, s.samples)
	sink.Child("samples", "IV").AddSize(n)
	total += n
	if err != nil {
		return total, err
	}
	n, err = succinct.SerializeBV(w, s.marked)
	sink.Child("marked", "BV").AddSize(n)
	total += n
	return total, err
}

// DeserializeBWTSampling reads back a structure written by Serialize.
func DeserializeBWTSampling(r io.Reader, dSA int) (*BWTSampling, error) {
	if err := validateStride(opBWT, dSA); err != nil {
		return nil, err
	}
	samples, _, err := succinct.DeserializePackedInts(r)
	if err != nil {
		return nil, csaerr.Wrap(csaerr.KindSerialization, "bwt_sampling.load", err)
	}
	marked, _, err := succinct.DeserializeBV(r)
	if err != nil {
		return nil, csaerr.Wrap(csaerr.KindSerialization, "bwt_sampling.load", err)
	}
	return &BWTSampling{samples: samples, marked: marked, dSA: dSA}, nil
}
