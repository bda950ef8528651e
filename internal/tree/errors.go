package tree

import "errors"

// Sentinel errors returned by key parsing and tree mutation. Callers should
// use [errors.Is] to match against these values.
var (
	// ErrEmptyKey is returned when an empty string is parsed as a key.
	ErrEmptyKey = errors.New("configuration key is empty")

	// ErrMalformedKey is returned when a key contains an empty path segment
	// or a broken profile qualifier (unterminated, empty, or nested).
	ErrMalformedKey = errors.New("malformed configuration key")

	// ErrNotABranch is returned by Set when an intermediate path segment is
	// already occupied by a leaf value and cannot be descended into.
	ErrNotABranch = errors.New("intermediate key is not a branch")

	// ErrMergeFailed is returned by Merge when the underlying structural
	// merge of two trees fails.
	ErrMergeFailed = errors.New("error merging configuration trees")
)
