// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tree

import (
	"fmt"
	"strings"
)

// Key is a parsed configuration key: a dotted path of identifiers plus an
// optional set of profile names scoping the value to named runtime profiles.
//
// Keys are case-sensitive. The profile set is order-irrelevant: "c<a,b>" and
// "c<b,a>" address the same value.
type Key struct {
	// Path holds the dotted-path segments, qualifier stripped.
	Path []string

	// Profiles holds the profile names from the trailing qualifier,
	// trimmed of whitespace. Empty for an unqualified key.
	Profiles []string
}

// ParseKey parses a raw dotted key with an optional trailing profile
// qualifier, e.g. "a.b.c" or "a.b.c<prod,staging>".
//
// The qualifier may only appear at the very end of the key. A malformed
// qualifier (unterminated, empty, or followed by trailing characters)
// results in an error.
func ParseKey(raw string) (Key, error) {
	if raw == "" {
		return Key{}, ErrEmptyKey
	}

	profiles, base, err := splitQualifier(raw)
	if err != nil {
		return Key{}, err
	}

	path := strings.Split(base, ".")
	for _, segment := range path {
		if segment == "" {
			return Key{}, fmt.Errorf("%w: %q", ErrMalformedKey, raw)
		}
	}

	return Key{Path: path, Profiles: profiles}, nil
}

// String reassembles the key into its canonical textual form.
func (k Key) String() string {
	s := strings.Join(k.Path, ".")
	if len(k.Profiles) > 0 {
		s += "<" + strings.Join(k.Profiles, ",") + ">"
	}
	return s
}

// AppliesTo reports whether the key is visible under the given active
// profiles: an unqualified key always applies, a qualified key applies when
// at least one of its profiles is active.
func (k Key) AppliesTo(active []string) bool {
	if len(k.Profiles) == 0 {
		return true
	}
	for _, p := range k.Profiles {
		for _, a := range active {
			if p == a {
				return true
			}
		}
	}
	return false
}

// splitQualifier splits "base<p1,p2>" into its profile list and base key.
// Keys without a qualifier are returned unchanged with a nil profile list.
func splitQualifier(raw string) (profiles []string, base string, err error) {
	open := strings.IndexByte(raw, '<')
	if open < 0 {
		if strings.IndexByte(raw, '>') >= 0 {
			return nil, "", fmt.Errorf("%w: %q", ErrMalformedKey, raw)
		}
		return nil, raw, nil
	}

	if !strings.HasSuffix(raw, ">") {
		return nil, "", fmt.Errorf("%w: %q", ErrMalformedKey, raw)
	}

	base = raw[:open]
	if base == "" {
		return nil, "", fmt.Errorf("%w: %q", ErrMalformedKey, raw)
	}

	qualifier := raw[open+1 : len(raw)-1]
	if strings.ContainsAny(qualifier, "<>") {
		return nil, "", fmt.Errorf("%w: %q", ErrMalformedKey, raw)
	}

	for _, p := range strings.Split(qualifier, ",") {
		p = strings.TrimSpace(p)
		if p == "" {
			return nil, "", fmt.Errorf("%w: %q", ErrMalformedKey, raw)
		}
		profiles = append(profiles, p)
	}

	return profiles, base, nil
}
