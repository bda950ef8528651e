// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"gopkg.in/yaml.v3"

	"github.com/MKhiriev/go-config-resolver/internal/tree"
)

// defaultFetchTimeout bounds a single HTTP document fetch.
const defaultFetchTimeout = 15 * time.Second

// DocumentProvider contributes the merged content of an ordered list of
// structured documents. Documents are parsed lazily on the first Provide
// call and merged left-to-right, later documents overriding earlier ones at
// the leaf level.
//
// A single unreadable or malformed document fails the whole provider: no
// partial tree is ever exposed.
type DocumentProvider struct {
	locations []Location
	client    *resty.Client

	once   sync.Once
	tree   *tree.Tree
	err    error
	sealed bool
}

// NewDocumentProvider returns a provider over the given locations, in order.
func NewDocumentProvider(locations ...Location) *DocumentProvider {
	return &DocumentProvider{
		locations: locations,
		client:    resty.New().SetTimeout(defaultFetchTimeout),
	}
}

// AddLocation appends one more document location. Returns
// [ErrProviderSealed] once the provider has materialized.
func (p *DocumentProvider) AddLocation(loc Location) error {
	if p.sealed {
		return fmt.Errorf("%w: cannot add %q", ErrProviderSealed, loc.String())
	}
	p.locations = append(p.locations, loc)
	return nil
}

// Locations returns the document locations in merge order.
func (p *DocumentProvider) Locations() []Location {
	return p.locations
}

// Provide parses every document on first call and returns the merged tree.
// The result, success or failure, is computed once and cached.
func (p *DocumentProvider) Provide(ctx context.Context) (*tree.Tree, error) {
	p.once.Do(func() {
		p.sealed = true
		p.tree, p.err = p.materialize(ctx)
	})
	return p.tree, p.err
}

func (p *DocumentProvider) materialize(ctx context.Context) (*tree.Tree, error) {
	merged := tree.New()

	for _, loc := range p.locations {
		data, err := loc.read(ctx, p.client)
		if err != nil {
			return nil, &DocumentReadError{Location: loc.String(), Err: err}
		}

		doc, err := parseDocument(loc, data)
		if err != nil {
			return nil, err
		}

		if err := merged.Merge(doc); err != nil {
			return nil, fmt.Errorf("error merging document %q: %w", loc.String(), err)
		}
	}

	return merged, nil
}

// parseDocument decodes one document into a tree according to the location's
// format. An empty document contributes an empty tree; a document whose root
// is not a mapping is malformed.
func parseDocument(loc Location, data []byte) (*tree.Tree, error) {
	format, err := loc.DetectFormat()
	if err != nil {
		return nil, &DocumentParseError{Location: loc.String(), Err: err}
	}

	var root map[string]any
	switch format {
	case FormatYAML:
		err = yaml.Unmarshal(data, &root)
	case FormatJSON:
		err = json.Unmarshal(data, &root)
	}
	if err != nil {
		return nil, &DocumentParseError{Location: loc.String(), Err: err}
	}

	return tree.FromMap(root), nil
}
