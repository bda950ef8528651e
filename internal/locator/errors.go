package locator

import (
	"errors"
	"fmt"
)

// ErrNoRoots is returned by Scan when the locator has no search roots at
// all; resolution cannot proceed without knowing where to look.
var ErrNoRoots = errors.New("no search roots registered")

// ResourceEnumerationError reports a filesystem failure while listing the
// physical locations of a logical resource name. It is fatal to startup
// resolution and carries the offending resource for diagnostics.
type ResourceEnumerationError struct {
	// Resource is the logical resource name whose enumeration failed.
	Resource string

	// Err is the underlying filesystem error.
	Err error
}

func (e *ResourceEnumerationError) Error() string {
	return fmt.Sprintf("unable to enumerate locations of configuration resource %q: %v", e.Resource, e.Err)
}

func (e *ResourceEnumerationError) Unwrap() error {
	return e.Err
}
