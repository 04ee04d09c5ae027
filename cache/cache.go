// Package cache is the cache-config abstraction every SA/ISA sampling
// builder reads from: a directory of length-prefixed integer vector
// files (a count/width header, then one uint64 per element), named by
// key (spec §6). Building the SA/BWT files themselves is out of scope
// for this module (spec §1's Non-goals) — cache reads what an enclosing
// index already produced, derives a missing ISA file from the SA file
// (EnsureISA), and offers a minimal file writer (WriteIntVector) so
// tests can exercise the sampling core without a real CSA construction
// pipeline.
package cache

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ogurtsov-succinct/sasampling/csaerr"
)

// Key names a cache file, mirroring sdsl's conf::KEY_SA etc.
type Key string

const (
	KeySA         Key = "sa"
	KeyISA        Key = "isa"
	KeySampleChar Key = "sample_char"
)

// KeyBWT is width-parameterized in the original (key_bwt<width>()); Go
// has no template key, so the width is folded into the file name.
func KeyBWT(width int) Key {
	return Key(fmt.Sprintf("bwt_%d", width))
}

// Config names the directory and instance id cache files live under.
type Config struct {
	Dir string
	ID  string
}

// FileName returns the path a given key's cache file lives at.
func (c Config) FileName(key Key) string {
	name := string(key)
	if c.ID != "" {
		name = c.ID + "_" + name
	}
	return filepath.Join(c.Dir, name)
}

// Exists reports whether a cache file for key is present.
func (c Config) Exists(key Key) bool {
	_, err := os.Stat(c.FileName(key))
	return err == nil
}

// TempFileName produces a collision-resistant name for scratch files a
// builder needs during construction, incorporating the process id and
// an instance-local counter. No builder in this module calls it: C4
// builds its wavelet tree in memory.
func (c Config) TempFileName(label string, counter int) string {
	name := fmt.Sprintf("%s_%d_%d", label, os.Getpid(), counter)
	return filepath.Join(c.Dir, name)
}

// MissingInput wraps a stat/open failure as a csaerr.KindMissingInput.
func MissingInput(op string, key Key, err error) error {
	return csaerr.Wrap(csaerr.KindMissingInput, op, fmt.Errorf("cache file %q: %w", key, err))
}
