// Package engine implements the priority registry and merge engine at the
// center of configuration resolution.
//
// Named providers are registered at fixed priority tiers while the registry
// accumulates; the first read of the merged configuration seals the registry
// and folds every provider's tree in ascending tier order (stable by
// registration order within a tier), so the highest tier wins and, within a
// tier, the most recently registered provider wins. The sealed result is
// immutable and safe for unsynchronized concurrent reads.
package engine
