package provider

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by provider construction and mutation. Callers
// should use [errors.Is] to match against these values.
var (
	// ErrProviderFrozen is returned by InMemoryProvider.Put after the
	// provider has been read or explicitly frozen. In-memory providers are
	// write-once: no keys can be added after registration.
	ErrProviderFrozen = errors.New("in-memory provider is frozen")

	// ErrProviderSealed is returned when locations or nested providers are
	// added after the provider has materialized its tree.
	ErrProviderSealed = errors.New("provider already materialized")

	// ErrUnsupportedFormat is returned for a document location whose
	// extension maps to no known document format.
	ErrUnsupportedFormat = errors.New("unsupported document format")

	// ErrNotAStruct is returned by NewStructProvider when the source is not
	// a pointer to a struct.
	ErrNotAStruct = errors.New("struct provider source must be a pointer to a struct")
)

// DocumentParseError reports a malformed structured document. It aborts the
// enclosing provider, and with it the whole startup resolution, carrying the
// offending document location for diagnostics.
type DocumentParseError struct {
	// Location is the physical location of the malformed document.
	Location string

	// Err is the underlying decoder error.
	Err error
}

func (e *DocumentParseError) Error() string {
	return fmt.Sprintf("malformed configuration document %q: %v", e.Location, e.Err)
}

func (e *DocumentParseError) Unwrap() error {
	return e.Err
}

// DocumentReadError reports an I/O failure while fetching a document from
// its physical location. Like a parse failure it is fatal to the enclosing
// provider.
type DocumentReadError struct {
	// Location is the physical location that could not be read.
	Location string

	// Err is the underlying I/O or transport error.
	Err error
}

func (e *DocumentReadError) Error() string {
	return fmt.Sprintf("unable to read configuration document %q: %v", e.Location, e.Err)
}

func (e *DocumentReadError) Unwrap() error {
	return e.Err
}
