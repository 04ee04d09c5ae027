package sasample

import (
	"io"

	"github.com/ogurtsov-succinct/sasampling/cache"
	"github.com/ogurtsov-succinct/sasampling/csaerr"
	"github.com/ogurtsov-succinct/sasampling/internal/assert"
	"github.com/ogurtsov-succinct/sasampling/internal/succinct"
)

// SAOrderSampling is C1: a regular stride in the SA index. Because a
// position is sampled exactly when its SA-index is a multiple of the
// stride, no bitvector is needed at all — is_sampled is pure
// arithmetic, matching spec §4.2.
type SAOrderSampling struct {
	samples succinct.IV
	dSA     int
}

const opSAOrder = "sa_order_sampling.build"

// BuildSAOrderSampling streams the cached SA once and keeps every
// dSA-th entry.
func BuildSAOrderSampling(cconfig cache.Config, dSA int) (*SAOrderSampling, error) {
	if err := validateStride(opSAOrder, dSA); err != nil {
		return nil, err
	}
	r, err := cache.OpenIntVector(cconfig.FileName(cache.KeySA))
	if err != nil {
		return nil, cache.MissingInput(opSAOrder, cache.KeySA, err)
	}
	n := r.Len()
	width := succinct.BitWidth(uint64(n))
	values := make([]uint64, 0, ceilDiv(n, dSA))
	for i := 0; i < n; i++ {
		if i%dSA == 0 {
			values = append(values, r.At(i))
		}
	}
	return &SAOrderSampling{
		samples: succinct.NewPackedIntsFromValues(values, width),
		dSA:     dSA,
	}, nil
}

func (s *SAOrderSampling) IsSampled(i int) bool { return i%s.dSA == 0 }

func (s *SAOrderSampling) At(i int) uint64 {
	assert.BugOn(!s.IsSampled(i), "sa_order_sampling: At(%d) called on unsampled index", i)
	return s.samples.Get(i / s.dSA)
}

func (s *SAOrderSampling) TextOrder() bool { return false }

func (s *SAOrderSampling) Stride() int { return s.dSA }

func (s *SAOrderSampling) Equal(other *SAOrderSampling) bool {
	if other == nil || s.dSA != other.dSA || s.samples.Len() != other.samples.Len() {
		return false
	}
	for i := 0; i < s.samples.Len(); i++ {
		if s.samples.Get(i) != other.samples.Get(i) {
			return false
		}
	}
	return true
}

func (s *SAOrderSampling) Serialize(w io.Writer, sink succinct.StructureSink) (int, error) {
	child := sink.Child("samples", "IV")
	n, err := succinct.SerializeIV(w, s.samples)
	child.AddSize(n)
	return n, err
}

// DeserializeSAOrderSampling reads back a structure written by Serialize.
func DeserializeSAOrderSampling(r io.Reader, dSA int) (*SAOrderSampling, error) {
	if err := validateStride(opSAOrder, dSA); err != nil {
		return nil, err
	}
	iv, _, err := succinct.DeserializePackedInts(r)
	if err != nil {
		return nil, csaerr.Wrap(csaerr.KindSerialization, "sa_order_sampling.load", err)
	}
	return &SAOrderSampling{samples: iv, dSA: dSA}, nil
}
