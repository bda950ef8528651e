// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package provider

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-config-resolver/internal/tree"
)

// InMemoryProvider contributes programmatically inserted key/value pairs.
// It is write-once: pairs are Put before the provider is handed to the
// registry, after which it is frozen and contributes the same tree forever.
type InMemoryProvider struct {
	tree   *tree.Tree
	frozen bool
}

// NewInMemoryProvider returns an empty, unfrozen in-memory provider.
func NewInMemoryProvider() *InMemoryProvider {
	return &InMemoryProvider{tree: tree.New()}
}

// Put stores value at the dotted key, which may carry a profile qualifier.
// Returns [ErrProviderFrozen] once the provider has been frozen or read.
func (p *InMemoryProvider) Put(key string, value any) error {
	if p.frozen {
		return fmt.Errorf("%w: cannot put %q", ErrProviderFrozen, key)
	}
	return p.tree.Set(key, value)
}

// PutAll stores every pair of the map. Values are stored as-is; callers
// coerce external values beforehand.
func (p *InMemoryProvider) PutAll(pairs map[string]any) error {
	for key, value := range pairs {
		if err := p.Put(key, value); err != nil {
			return err
		}
	}
	return nil
}

// Freeze seals the provider against further insertion. Freezing twice is a
// no-op.
func (p *InMemoryProvider) Freeze() {
	p.frozen = true
}

// Provide returns the accumulated tree, freezing the provider on first read.
func (p *InMemoryProvider) Provide(_ context.Context) (*tree.Tree, error) {
	p.frozen = true
	return p.tree, nil
}
