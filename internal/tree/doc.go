// Package tree implements the configuration tree underlying the merged
// configuration view.
//
// A tree is a recursive map of string-keyed nodes. Leaf values are either
// scalars (string, or whatever native scalar the source document produced)
// or ordered sequences. Keys addressing the tree are dotted paths of
// identifiers (e.g. "a.b.c"), optionally suffixed with a profile qualifier
// in angle brackets (e.g. "a.b.c<prod,staging>") restricting the value to
// the named runtime profiles.
//
// Trees from several sources are combined with [Tree.Merge]: the overlay
// tree wins at the leaf level, nested branches are merged recursively rather
// than replaced wholesale.
package tree
