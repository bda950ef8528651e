// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package external converts raw external key/value pairs (process
// environment and launch-time parameters) into configuration entries.
//
// Only keys carrying the fixed [ConfigPrefix] participate; everything else
// in the process environment is ignored by the resolution engine. Values
// containing the list delimiter (comma) become ordered sequences with each
// element trimmed of surrounding whitespace; all other values stay scalar
// strings. Structured documents never pass through this package: their
// native types are used directly.
package external

import "strings"

// ConfigPrefix is the fixed literal prefix marking an environment variable
// or launch parameter as external configuration. The prefix is stripped to
// obtain the configuration key: "seedstack.config.x.y" contributes "x.y".
const ConfigPrefix = "seedstack.config."

// ProfilesKey is the external key whose value names the active runtime
// profiles, as a comma-separated list.
const ProfilesKey = "seedstack.profiles"

// listDelimiter splits a raw value into an ordered sequence.
const listDelimiter = ","

// CoerceValue converts a raw external string value into its configuration
// form: a comma-separated value becomes an ordered []string with every
// element trimmed, any other value stays a plain string. A delimiterless
// value is never wrapped into a one-element sequence.
func CoerceValue(raw string) any {
	if !strings.Contains(raw, listDelimiter) {
		return raw
	}

	parts := strings.Split(raw, listDelimiter)
	elements := make([]string, 0, len(parts))
	for _, part := range parts {
		elements = append(elements, strings.TrimSpace(part))
	}
	return elements
}

// StripPrefix reports whether rawKey carries [ConfigPrefix] and, when it
// does, returns the configuration key with the prefix removed. A key that is
// nothing but the prefix is not a configuration key.
func StripPrefix(rawKey string) (string, bool) {
	if !strings.HasPrefix(rawKey, ConfigPrefix) {
		return "", false
	}
	key := rawKey[len(ConfigPrefix):]
	if key == "" {
		return "", false
	}
	return key, true
}

// FromPairs filters a raw key/value map down to the prefixed entries,
// stripping the prefix and coercing every value. Insertion order inside a
// map is irrelevant here; list ordering is preserved inside each value.
func FromPairs(pairs map[string]string) map[string]any {
	out := make(map[string]any)
	for rawKey, rawValue := range pairs {
		key, ok := StripPrefix(rawKey)
		if !ok {
			continue
		}
		out[key] = CoerceValue(rawValue)
	}
	return out
}

// FromEnviron converts entries of the os.Environ form ("KEY=value") into a
// key/value map suitable for [FromPairs]. Malformed entries without '=' are
// skipped.
func FromEnviron(environ []string) map[string]string {
	pairs := make(map[string]string, len(environ))
	for _, entry := range environ {
		key, value, found := strings.Cut(entry, "=")
		if !found || key == "" {
			continue
		}
		pairs[key] = value
	}
	return pairs
}

// ActiveProfiles extracts the active profile names from a raw key/value map
// by reading [ProfilesKey] and splitting its comma-separated value. Returns
// nil when the key is absent or empty.
func ActiveProfiles(pairs map[string]string) []string {
	raw, ok := pairs[ProfilesKey]
	if !ok || strings.TrimSpace(raw) == "" {
		return nil
	}

	var profiles []string
	for _, part := range strings.Split(raw, listDelimiter) {
		part = strings.TrimSpace(part)
		if part != "" {
			profiles = append(profiles, part)
		}
	}
	return profiles
}
