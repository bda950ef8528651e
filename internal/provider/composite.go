package provider

import (
	"context"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-config-resolver/internal/tree"
)

// CompositeProvider wraps several providers and contributes their trees
// merged left-to-right, later providers overriding earlier ones at the leaf
// level. A failure of any wrapped provider fails the composite.
type CompositeProvider struct {
	providers []Provider

	once   sync.Once
	tree   *tree.Tree
	err    error
	sealed bool
}

// NewCompositeProvider returns a composite over the given providers, in
// merge order.
func NewCompositeProvider(providers ...Provider) *CompositeProvider {
	return &CompositeProvider{providers: providers}
}

// Append adds one more provider at the end of the merge order. Returns
// [ErrProviderSealed] once the composite has materialized.
func (p *CompositeProvider) Append(inner Provider) error {
	if p.sealed {
		return fmt.Errorf("%w: cannot append provider", ErrProviderSealed)
	}
	p.providers = append(p.providers, inner)
	return nil
}

// Locations aggregates the locations of all wrapped providers that load
// from physical locations.
func (p *CompositeProvider) Locations() []Location {
	var all []Location
	for _, inner := range p.providers {
		if located, ok := inner.(Located); ok {
			all = append(all, located.Locations()...)
		}
	}
	return all
}

// Provide materializes every wrapped provider on first call and returns the
// merged tree.
func (p *CompositeProvider) Provide(ctx context.Context) (*tree.Tree, error) {
	p.once.Do(func() {
		p.sealed = true
		p.tree, p.err = p.materialize(ctx)
	})
	return p.tree, p.err
}

func (p *CompositeProvider) materialize(ctx context.Context) (*tree.Tree, error) {
	merged := tree.New()
	for _, inner := range p.providers {
		contributed, err := inner.Provide(ctx)
		if err != nil {
			return nil, err
		}
		if err := merged.Merge(contributed); err != nil {
			return nil, err
		}
	}
	return merged, nil
}
