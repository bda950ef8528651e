// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package engine

import (
	"fmt"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/MKhiriev/go-config-resolver/internal/tree"
)

// Config is the sealed merged configuration: the immutable result of
// folding all registered providers. It is safe for unsynchronized
// concurrent reads by arbitrarily many consumers — immutability is the
// concurrency strategy, no locks are taken after sealing.
type Config struct {
	tree     *tree.Tree
	snapshot Snapshot
}

// Snapshot is the diagnostic view of a sealed configuration: which
// providers contributed, at which tiers, from which physical locations.
type Snapshot struct {
	// ID uniquely identifies this resolution pass.
	ID uuid.UUID `json:"id" yaml:"id"`

	// Providers lists every registered provider in merge order.
	Providers []ProviderInfo `json:"providers" yaml:"providers"`
}

// ProviderInfo describes one provider inside a [Snapshot].
type ProviderInfo struct {
	// Name is the provider's stable registration name.
	Name string `json:"name" yaml:"name"`

	// Priority is the provider's merge tier.
	Priority Priority `json:"-" yaml:"-"`

	// Tier is the tier's diagnostic name.
	Tier string `json:"tier" yaml:"tier"`

	// Locations lists the physical locations the provider loaded from,
	// empty for purely in-memory providers.
	Locations []string `json:"locations,omitempty" yaml:"locations,omitempty"`
}

func newConfig(t *tree.Tree, infos []ProviderInfo) *Config {
	for i := range infos {
		infos[i].Tier = infos[i].Priority.String()
	}
	return &Config{
		tree: t,
		snapshot: Snapshot{
			ID:        uuid.New(),
			Providers: infos,
		},
	}
}

// Get resolves the value at the dotted key under the given active profiles.
// Absence (including a profile-qualified key with no active profile match)
// is reported through the boolean, never as an error.
func (c *Config) Get(key string, profiles ...string) (any, bool) {
	return c.tree.Get(key, profiles...)
}

// GetString resolves a scalar string value. Non-string scalars are rendered
// through fmt for convenience; missing keys and subtree values report
// absence.
func (c *Config) GetString(key string, profiles ...string) (string, bool) {
	value, ok := c.Get(key, profiles...)
	if !ok {
		return "", false
	}

	switch v := value.(type) {
	case string:
		return v, true
	case map[string]any, []any, []string:
		return "", false
	default:
		return fmt.Sprintf("%v", v), true
	}
}

// GetStrings resolves an ordered sequence value. A scalar is not promoted
// to a one-element sequence.
func (c *Config) GetStrings(key string, profiles ...string) ([]string, bool) {
	value, ok := c.Get(key, profiles...)
	if !ok {
		return nil, false
	}

	switch v := value.(type) {
	case []string:
		return v, true
	case []any:
		out := make([]string, 0, len(v))
		for _, element := range v {
			out = append(out, fmt.Sprintf("%v", element))
		}
		return out, true
	default:
		return nil, false
	}
}

// Materialize maps the subtree at key onto target, a pointer to a typed
// configuration struct. The mapping is delegated to the YAML document
// mapper: the subtree is re-encoded and decoded into target, honoring its
// `yaml` field tags. An empty key materializes the whole tree.
func (c *Config) Materialize(key string, target any, profiles ...string) error {
	var subtree any
	if key == "" {
		subtree = c.tree.Root()
	} else {
		value, ok := c.Get(key, profiles...)
		if !ok {
			return fmt.Errorf("configuration key %q not found", key)
		}
		subtree = value
	}

	encoded, err := yaml.Marshal(subtree)
	if err != nil {
		return fmt.Errorf("error encoding subtree %q: %w", key, err)
	}
	if err := yaml.Unmarshal(encoded, target); err != nil {
		return fmt.Errorf("error materializing subtree %q: %w", key, err)
	}
	return nil
}

// Snapshot returns the diagnostic snapshot of this resolution pass.
func (c *Config) Snapshot() Snapshot {
	return c.snapshot
}

// Root exposes the merged tree for serialization. The returned map must be
// treated as read-only.
func (c *Config) Root() map[string]any {
	return c.tree.Root()
}
