// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package engine

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/MKhiriev/go-config-resolver/internal/logger"
	"github.com/MKhiriev/go-config-resolver/internal/provider"
	"github.com/MKhiriev/go-config-resolver/internal/tree"
)

// State of the registry lifecycle: Empty until the first registration,
// Accumulating while providers may still be registered, Sealed once the
// merged configuration has been read.
type State int

// Registry lifecycle states, in order.
const (
	StateEmpty State = iota
	StateAccumulating
	StateSealed
)

// String returns the state's diagnostic name.
func (s State) String() string {
	switch s {
	case StateEmpty:
		return "empty"
	case StateAccumulating:
		return "accumulating"
	case StateSealed:
		return "sealed"
	default:
		return "unknown"
	}
}

// entry is one registered (name, provider, priority) triple. seq records
// registration recency for tie-breaking within a tier.
type entry struct {
	name     string
	provider provider.Provider
	priority Priority
	seq      uint64
}

// Registry holds the ordered list of named providers and produces the
// single merged configuration view.
//
// Registration is a single-threaded startup activity; only the sealed
// configuration may be shared across goroutines.
type Registry struct {
	state   State
	entries []*entry
	nextSeq uint64
	logger  *logger.Logger

	sealOnce sync.Once
	config   *Config
	sealErr  error
}

// NewRegistry returns an empty registry.
func NewRegistry(log *logger.Logger) *Registry {
	if log == nil {
		log = logger.Nop()
	}
	return &Registry{state: StateEmpty, logger: log}
}

// State returns the registry's current lifecycle state.
func (r *Registry) State() State {
	return r.state
}

// Register publishes a named provider at the given priority tier.
//
// Re-registering an existing name is not a conflict but a defined replace
// operation: the previous provider's contribution disappears entirely and
// the entry is treated as the most recent registration at the tier for
// tie-breaking purposes. Registration is only legal before sealing.
func (r *Registry) Register(name string, p provider.Provider, priority Priority) error {
	if err := r.checkRegistration(name, p); err != nil {
		return err
	}

	r.state = StateAccumulating
	r.nextSeq++

	if existing := r.find(name); existing != nil {
		r.logger.Debug().
			Str("provider", name).
			Str("priority", priority.String()).
			Msg("replacing configuration provider")
		existing.provider = p
		existing.priority = priority
		existing.seq = r.nextSeq
		return nil
	}

	r.logger.Debug().
		Str("provider", name).
		Str("priority", priority.String()).
		Msg("registering configuration provider")
	r.entries = append(r.entries, &entry{
		name:     name,
		provider: p,
		priority: priority,
		seq:      r.nextSeq,
	})
	return nil
}

// Replace swaps the provider registered under name, keeping its priority
// tier. Returns [ErrUnknownProvider] when the name was never registered.
func (r *Registry) Replace(name string, p provider.Provider) error {
	if err := r.checkRegistration(name, p); err != nil {
		return err
	}

	existing := r.find(name)
	if existing == nil {
		return fmt.Errorf("%w: %q", ErrUnknownProvider, name)
	}

	return r.Register(name, p, existing.priority)
}

func (r *Registry) checkRegistration(name string, p provider.Provider) error {
	if r.state == StateSealed {
		return fmt.Errorf("%w: cannot register %q", ErrRegistrySealed, name)
	}
	if name == "" {
		return ErrEmptyProviderName
	}
	if p == nil {
		return fmt.Errorf("%w: %q", ErrNilProvider, name)
	}
	return nil
}

func (r *Registry) find(name string) *entry {
	for _, e := range r.entries {
		if e.name == name {
			return e
		}
	}
	return nil
}

// Config seals the registry on first call and returns the merged
// configuration. Sealing happens exactly once: every subsequent call
// returns the same sealed result (or the same failure — there is no retry
// and no partial configuration).
func (r *Registry) Config(ctx context.Context) (*Config, error) {
	r.sealOnce.Do(func() {
		r.config, r.sealErr = r.seal(ctx)
		r.state = StateSealed
	})
	return r.config, r.sealErr
}

// seal folds all registered providers into one tree: ascending priority
// tier, stable by registration recency within a tier, each provider's keys
// overwriting previously accumulated values at the same location.
func (r *Registry) seal(ctx context.Context) (*Config, error) {
	ordered := make([]*entry, len(r.entries))
	copy(ordered, r.entries)
	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].priority != ordered[j].priority {
			return ordered[i].priority < ordered[j].priority
		}
		return ordered[i].seq < ordered[j].seq
	})

	merged := tree.New()
	infos := make([]ProviderInfo, 0, len(ordered))

	for _, e := range ordered {
		contributed, err := e.provider.Provide(ctx)
		if err != nil {
			return nil, &ResolutionError{Stage: StageMerge, Artifact: e.name, Err: err}
		}
		if err := merged.Merge(contributed); err != nil {
			return nil, &ResolutionError{Stage: StageMerge, Artifact: e.name, Err: err}
		}

		infos = append(infos, ProviderInfo{
			Name:      e.name,
			Priority:  e.priority,
			Locations: providerLocations(e.provider),
		})
	}

	r.logger.Info().
		Int("providers", len(ordered)).
		Msg("configuration sealed")

	return newConfig(merged, infos), nil
}

// providerLocations extracts the physical locations a provider loaded from,
// for the diagnostic snapshot.
func providerLocations(p provider.Provider) []string {
	located, ok := p.(provider.Located)
	if !ok {
		return nil
	}

	locs := located.Locations()
	out := make([]string, 0, len(locs))
	for _, loc := range locs {
		out = append(out, loc.String())
	}
	return out
}
