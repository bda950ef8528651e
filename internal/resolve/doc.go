// Package resolve performs the one-shot startup configuration resolution.
//
// Resolution assembles four providers in a fixed shape — scanned base
// documents, scanned override documents, launch-parameter-derived values,
// and environment-derived values — registers each at its priority tier, and
// seals the merged configuration. The sequence is single-threaded and
// deterministic; any failure (resource enumeration, document parse) aborts
// the whole pass with a staged error, never a partial configuration.
//
// There is no ambient engine: the caller constructs one resolution from
// explicit options and passes the sealed configuration down to whatever
// needs it.
package resolve
