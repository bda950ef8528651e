// Package provider implements the configuration sources feeding the merge
// engine.
//
// Every source satisfies the single [Provider] capability: enumerate the
// key/value tree this source contributes. Four kinds exist:
//
//   - [InMemoryProvider]: programmatic key/value insertion, write-once and
//     frozen on first read; used for environment and launch-parameter data.
//   - [DocumentProvider]: an ordered list of document locations (local files
//     or HTTP URLs), parsed lazily on first read and merged left-to-right
//     with leaf-level override.
//   - [CompositeProvider]: several providers merged left-to-right in the
//     same fashion.
//   - [StructProvider]: a declarative adapter contributing pairs from
//     `config` struct tags, optionally populated from the environment.
//
// Providers materialize exactly once; after that their contribution is
// immutable, which keeps the sealed merged configuration safe for
// unsynchronized concurrent reads.
package provider
