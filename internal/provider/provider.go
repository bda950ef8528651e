// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package provider

import (
	"context"

	"github.com/MKhiriev/go-config-resolver/internal/tree"
)

// Provider is an addressable source of configuration data. Implementations
// materialize their tree lazily on the first Provide call and must return
// the same immutable result on every subsequent call.
//
// A failing provider is fatal to the whole resolution: there is no
// partial-provider state and no retry.
type Provider interface {
	Provide(ctx context.Context) (*tree.Tree, error)
}

// Located is implemented by providers that load from physical locations.
// The merge engine uses it to report, per provider, where configuration
// actually came from in its diagnostic snapshot.
type Located interface {
	Locations() []Location
}
