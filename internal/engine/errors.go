package engine

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the registry. Callers should use [errors.Is]
// to match against these values.
var (
	// ErrRegistrySealed is returned by Register and Replace once the merged
	// configuration has been read: providers cannot be added or replaced
	// after sealing.
	ErrRegistrySealed = errors.New("provider registry is sealed")

	// ErrUnknownProvider is returned by Replace when no provider is
	// registered under the given name.
	ErrUnknownProvider = errors.New("no provider registered under this name")

	// ErrNilProvider is returned when a nil provider is registered.
	ErrNilProvider = errors.New("provider must not be nil")

	// ErrEmptyProviderName is returned when a provider is registered under
	// an empty name.
	ErrEmptyProviderName = errors.New("provider name must not be empty")
)

// Resolution stages reported by [ResolutionError].
const (
	StageDiscovery = "resource discovery"
	StageMerge     = "document parse/merge"
)

// ResolutionError is the single wrapped failure surfaced to the invoking
// lifecycle when startup resolution aborts. It identifies the stage that
// failed and the offending artifact (provider name, resource, or document
// location); the underlying cause is available through [errors.Unwrap].
type ResolutionError struct {
	// Stage is the resolution stage that failed.
	Stage string

	// Artifact names the offending provider, resource, or location.
	Artifact string

	// Err is the underlying failure.
	Err error
}

func (e *ResolutionError) Error() string {
	return fmt.Sprintf("configuration resolution failed during %s (%s): %v", e.Stage, e.Artifact, e.Err)
}

func (e *ResolutionError) Unwrap() error {
	return e.Err
}
