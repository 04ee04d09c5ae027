// Command sasample-bench builds one SA-sampling strategy over a text
// given on the command line (or a small built-in demo text) and
// reports its build time, serialized size and sampled fraction. It is a demonstration and sizing
// tool, not part of the sasampling API: the naive suffix sort below
// exists only to manufacture the SA cache file this command's sampling
// call needs, mirroring how the teacher's cmd/psig_study builds its own
// throwaway scenario data rather than depending on a real corpus.
package main

import (
	"flag"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/ogurtsov-succinct/sasampling/cache"
	"github.com/ogurtsov-succinct/sasampling/internal/succinct"
	"github.com/ogurtsov-succinct/sasampling/isasample"
	"github.com/ogurtsov-succinct/sasampling/sasample"
)

func main() {
	var (
		text     = flag.String("text", "", "Text to sample over; a built-in demo text is used when empty")
		strategy = flag.String("strategy", "fuzzy", "Sampling strategy: saorder, textorder, bwt, fuzzy")
		dSA      = flag.Int("dsa", 4, "SA sample stride")
		dISA     = flag.Int("disa", 4, "ISA sample stride (must equal -dsa for textorder/fuzzy)")
		tmpDir   = flag.String("cachedir", "", "Cache directory; a temp dir is created when empty")
	)
	flag.Parse()

	t := *text
	if t == "" {
		t = "ABCDEFABCDEFABCDEF$"
	}

	dir := *tmpDir
	if dir == "" {
		d, err := os.MkdirTemp("", "sasample-bench")
		if err != nil {
			fail("creating cache dir: %v", err)
		}
		dir = d
		defer os.RemoveAll(dir)
	}
	cconfig := cache.Config{Dir: dir, ID: "bench"}

	sa := naiveSuffixArray(t)
	if err := cache.WriteIntVector(cconfig.FileName(cache.KeySA), toUint64(sa), bitWidth(len(sa))); err != nil {
		fail("writing SA cache: %v", err)
	}

	start := time.Now()
	var (
		strat sasample.Strategy
		isaSup isasample.Support
	)
	switch *strategy {
	case "saorder":
		s, err := sasample.BuildSAOrderSampling(cconfig, *dSA)
		exitOn(err)
		strat = s
	case "textorder":
		s, err := sasample.BuildTextOrderSampling(cconfig, *dSA)
		exitOn(err)
		strat = s
		sup, err := isasample.BuildTextOrderISASupport(s, *dISA)
		exitOn(err)
		isaSup = sup
	case "bwt":
		bwt := buildBWT(t, sa)
		if err := cache.WriteIntVector(cconfig.FileName(cache.KeyBWT(8)), toUint64Bytes(bwt), 8); err != nil {
			fail("writing BWT cache: %v", err)
		}
		s, err := sasample.BuildBWTSampling(cconfig, *dSA, 8, nil)
		exitOn(err)
		strat = s
	case "fuzzy":
		s, err := sasample.BuildFuzzySampling(cconfig, *dSA)
		exitOn(err)
		strat = s
		sup, err := isasample.BuildFuzzyISASupport(s, *dISA)
		exitOn(err)
		isaSup = sup
	default:
		fail("unknown strategy %q", *strategy)
	}
	buildTime := time.Since(start)

	var buf sizeCountingWriter
	sink := succinct.NewTreeSink(*strategy, "Strategy")
	n, err := strat.Serialize(&buf, sink)
	exitOn(err)

	fmt.Printf("strategy=%s n=%d d_sa=%d build=%s size=%s (%d bytes)\n",
		*strategy, len(sa), *dSA, buildTime, humanize.Bytes(uint64(n)), n)

	sampled := 0
	for i := 0; i < len(sa); i++ {
		if strat.IsSampled(i) {
			sampled++
		}
	}
	fmt.Printf("sampled %d/%d SA indices (%.1f%%)\n", sampled, len(sa), 100*float64(sampled)/float64(len(sa)))

	if isaSup != nil {
		v, pos := isaSup.SampleLEQ(0)
		fmt.Printf("isa sample_leq(0) = (%d, %d)\n", v, pos)
	}
}

func exitOn(err error) {
	if err != nil {
		fail("%v", err)
	}
}

func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "sasample-bench: "+format+"\n", args...)
	os.Exit(1)
}

// naiveSuffixArray is an O(n^2 log n) suffix sort, fine for the short
// demo texts this tool is meant to size strategies over. Real SA
// construction is out of this module's scope (spec §1's Non-goals);
// this exists solely to hand the sampling builders something to read.
func naiveSuffixArray(t string) []int {
	n := len(t)
	sa := make([]int, n)
	for i := range sa {
		sa[i] = i
	}
	sort.Slice(sa, func(a, b int) bool { return t[sa[a]:] < t[sa[b]:] })
	return sa
}

func buildBWT(t string, sa []int) []byte {
	n := len(t)
	bwt := make([]byte, n)
	for i, s := range sa {
		if s == 0 {
			bwt[i] = t[n-1]
		} else {
			bwt[i] = t[s-1]
		}
	}
	return bwt
}

func toUint64(xs []int) []uint64 {
	out := make([]uint64, len(xs))
	for i, x := range xs {
		out[i] = uint64(x)
	}
	return out
}

func toUint64Bytes(xs []byte) []uint64 {
	out := make([]uint64, len(xs))
	for i, x := range xs {
		out[i] = uint64(x)
	}
	return out
}

func bitWidth(n int) int {
	w := 0
	for v := n; v > 0; v >>= 1 {
		w++
	}
	if w == 0 {
		w = 1
	}
	return w
}

type sizeCountingWriter struct{ n int }

func (w *sizeCountingWriter) Write(p []byte) (int, error) {
	w.n += len(p)
	return len(p), nil
}
