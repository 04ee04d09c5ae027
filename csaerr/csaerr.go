// Package csaerr defines the error taxonomy shared by the sasample and
// isasample builders: construction can fail in a handful of well-known
// ways, and callers decide whether to retry with different parameters.
// Queries never fail.
package csaerr

import "fmt"

// Kind classifies why a sampling structure failed to build.
type Kind int

const (
	// KindPrecondition covers inconsistent builder parameters, e.g. a
	// requested capacity larger than the underlying size, or mismatched
	// sample strides between a SA strategy and its ISA support.
	KindPrecondition Kind = iota
	// KindMissingInput covers an absent or unsynthesisable cache file.
	KindMissingInput
	// KindSerialization covers a truncated or malformed byte stream on load.
	KindSerialization
	// KindInvariant covers an internal consistency check failing during
	// build; this indicates a bug in the builder, not bad input.
	KindInvariant
)

func (k Kind) String() string {
	switch k {
	case KindPrecondition:
		return "precondition"
	case KindMissingInput:
		return "missing input"
	case KindSerialization:
		return "serialization"
	case KindInvariant:
		return "invariant violation"
	default:
		return "unknown"
	}
}

// Error is the concrete error type returned by every constructor in
// this module. It carries a Kind so callers can branch on failure
// category without string matching.
type Error struct {
	Kind Kind
	Op   string // the component/operation that failed, e.g. "fuzzy_sampling.build"
	Err  error  // wrapped cause, may be nil
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Op, e.Kind, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Kind)
}

func (e *Error) Unwrap() error { return e.Err }

// New builds an *Error with no wrapped cause.
func New(kind Kind, op, msg string) *Error {
	return &Error{Kind: kind, Op: op, Err: fmt.Errorf("%s", msg)}
}

// Wrap builds an *Error wrapping an existing error.
func Wrap(kind Kind, op string, err error) *Error {
	if err == nil {
		return nil
	}
	return &Error{Kind: kind, Op: op, Err: err}
}

// Is reports whether err is a *Error of the given Kind, unwrapping as
// needed. It mirrors errors.Is without importing it everywhere callers
// only need a kind check.
func Is(err error, kind Kind) bool {
	for err != nil {
		if e, ok := err.(*Error); ok {
			if e.Kind == kind {
				return true
			}
			err = e.Err
			continue
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return false
		}
		err = u.Unwrap()
	}
	return false
}
