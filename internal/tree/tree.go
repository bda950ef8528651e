// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tree

import (
	"fmt"
	"sort"
	"strings"

	"dario.cat/mergo"
)

// Tree is a recursive string-keyed configuration tree.
//
// A Tree is freely mutable while a provider accumulates values and is
// treated as frozen once it has been handed to the merge engine; the merged
// configuration relies on that convention for its lock-free concurrent
// reads.
type Tree struct {
	root map[string]any
}

// New returns an empty tree.
func New() *Tree {
	return &Tree{root: make(map[string]any)}
}

// FromMap wraps an already-parsed document tree. The map is used as-is, not
// copied; the caller must not mutate it afterwards.
func FromMap(m map[string]any) *Tree {
	if m == nil {
		m = make(map[string]any)
	}
	return &Tree{root: m}
}

// Root exposes the underlying map, primarily for serialization of the whole
// tree. The returned map must be treated as read-only.
func (t *Tree) Root() map[string]any {
	return t.root
}

// IsEmpty reports whether the tree holds no values at all.
func (t *Tree) IsEmpty() bool {
	return len(t.root) == 0
}

// Set stores value at the location denoted by rawKey, creating intermediate
// branches as needed. A profile qualifier on the key is preserved on the
// leaf, keeping the value scoped to its profiles.
//
// Returns [ErrNotABranch] when an intermediate segment is already occupied
// by a leaf value.
func (t *Tree) Set(rawKey string, value any) error {
	key, err := ParseKey(rawKey)
	if err != nil {
		return err
	}

	current := t.root
	for _, segment := range key.Path[:len(key.Path)-1] {
		next, ok := current[segment]
		if !ok {
			branch := make(map[string]any)
			current[segment] = branch
			current = branch
			continue
		}

		branch, ok := next.(map[string]any)
		if !ok {
			return fmt.Errorf("%w: %q in %q", ErrNotABranch, segment, rawKey)
		}
		current = branch
	}

	leaf := key.Path[len(key.Path)-1]
	if len(key.Profiles) > 0 {
		leaf = Key{Path: []string{leaf}, Profiles: key.Profiles}.String()
	}
	current[leaf] = value

	return nil
}

// Get resolves the value at the location denoted by rawKey under the given
// active profiles.
//
// At every path segment, a profile-qualified sibling matching an active
// profile takes precedence over the unqualified one. A qualified key whose
// profiles are all inactive is invisible: the lookup reports absence rather
// than failing (an unresolved profile reference is a caller-side miss, not
// an error).
func (t *Tree) Get(rawKey string, activeProfiles ...string) (any, bool) {
	key, err := ParseKey(rawKey)
	if err != nil {
		return nil, false
	}

	active := activeProfiles
	if len(key.Profiles) > 0 {
		// An explicitly qualified lookup activates exactly its own profiles.
		active = key.Profiles
	}

	return lookup(t.root, key.Path, active)
}

// lookup walks the tree one segment at a time. Qualified branches matching
// an active profile are searched before the plain branch, so profiled values
// shadow unprofiled ones wherever the qualifier appears along the path.
func lookup(node map[string]any, path []string, active []string) (any, bool) {
	segment := path[0]
	rest := path[1:]

	for _, name := range qualifiedMatches(node, segment, active) {
		if value, ok := descend(node[name], rest, active); ok {
			return value, true
		}
	}

	child, ok := node[segment]
	if !ok {
		return nil, false
	}
	return descend(child, rest, active)
}

// descend continues a lookup below child for the remaining path segments.
func descend(child any, rest []string, active []string) (any, bool) {
	if len(rest) == 0 {
		return child, true
	}
	branch, ok := child.(map[string]any)
	if !ok {
		return nil, false
	}
	return lookup(branch, rest, active)
}

// qualifiedMatches returns the node's keys of the form "segment<...>" whose
// profile set intersects the active profiles, in sorted order so that
// lookups stay deterministic when several qualified siblings match.
func qualifiedMatches(node map[string]any, segment string, active []string) []string {
	if len(active) == 0 {
		return nil
	}

	var matches []string
	prefix := segment + "<"
	for name := range node {
		if !strings.HasPrefix(name, prefix) {
			continue
		}
		key, err := ParseKey(name)
		if err != nil || len(key.Path) != 1 {
			continue
		}
		if key.AppliesTo(active) {
			matches = append(matches, name)
		}
	}
	sort.Strings(matches)
	return matches
}

// Merge folds overlay into the receiver. Branches are merged recursively;
// where both trees define a leaf at the same location the overlay's value
// wins. The overlay tree is left untouched.
func (t *Tree) Merge(overlay *Tree) error {
	if overlay == nil || overlay.IsEmpty() {
		return nil
	}
	if err := mergo.Merge(&t.root, overlay.root, mergo.WithOverride); err != nil {
		return fmt.Errorf("%w: %w", ErrMergeFailed, err)
	}
	return nil
}
