// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package resolve

import (
	"context"
	"os"

	"github.com/MKhiriev/go-config-resolver/internal/engine"
	"github.com/MKhiriev/go-config-resolver/internal/external"
	"github.com/MKhiriev/go-config-resolver/internal/locator"
	"github.com/MKhiriev/go-config-resolver/internal/logger"
	"github.com/MKhiriev/go-config-resolver/internal/provider"
)

// Stable provider names published into the registry, used for diagnostics
// and re-registration.
const (
	ScannedProvider         = "scanned-config"
	ScannedOverrideProvider = "scanned-config-override"
	LaunchParameterProvider = "launch-parameters-config"
	EnvironmentProvider     = "environment-config"
)

// Options configures one resolution pass.
type Options struct {
	// Roots are the search roots scanned for configuration documents.
	Roots []locator.Root

	// Locations are additional subdirectory prefixes to search beside the
	// fixed configuration location.
	Locations []string

	// ResourcesByPattern optionally carries candidate resource names
	// already matched against the host's search space, keyed by extension
	// pattern. When set, the roots are only used to enumerate physical
	// locations and no scan is performed.
	ResourcesByPattern map[string][]string

	// LaunchParameters are the launch-time key/value parameters. Only keys
	// carrying the external-config prefix contribute.
	LaunchParameters map[string]string

	// Environ is the raw process environment in os.Environ form. Nil means
	// the real process environment.
	Environ []string

	// Logger receives resolution diagnostics. Nil disables logging.
	Logger *logger.Logger
}

// resolver accumulates the four fixed providers over a registry, carrying
// the first error through the chain.
type resolver struct {
	opts     Options
	locator  *locator.Locator
	registry *engine.Registry
	logger   *logger.Logger
	err      error
}

// Resolve runs the startup resolution pass and returns the sealed merged
// configuration together with the active profiles declared in the
// environment.
func Resolve(ctx context.Context, opts Options) (*engine.Config, []string, error) {
	return newResolver(opts).
		withScannedDocuments(ctx).
		withLaunchParameters().
		withEnvironment().
		resolve(ctx)
}

func newResolver(opts Options) *resolver {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}
	if opts.Environ == nil {
		opts.Environ = os.Environ()
	}

	loc := locator.New(log, opts.Roots...)
	for _, prefix := range opts.Locations {
		loc.AddLocation(prefix)
	}

	return &resolver{
		opts:     opts,
		locator:  loc,
		registry: engine.NewRegistry(log),
		logger:   log,
	}
}

// withScannedDocuments discovers configuration documents and registers the
// scanned base and override providers. Override-named resources are routed
// to the override provider regardless of discovery order.
func (r *resolver) withScannedDocuments(ctx context.Context) *resolver {
	if r.err != nil {
		return r
	}

	byPattern := r.opts.ResourcesByPattern
	if byPattern == nil && len(r.opts.Roots) > 0 {
		var err error
		byPattern, err = r.locator.Scan()
		if err != nil {
			r.err = &engine.ResolutionError{Stage: engine.StageDiscovery, Artifact: "search roots", Err: err}
			return r
		}
	}

	base := provider.NewDocumentProvider()
	override := provider.NewDocumentProvider()

	for _, resource := range r.locator.CollectResources(byPattern) {
		locations, err := r.locator.Locate(resource)
		if err != nil {
			r.err = &engine.ResolutionError{Stage: engine.StageDiscovery, Artifact: resource, Err: err}
			return r
		}
		if len(locations) == 0 {
			// Scan false positive, nothing to load.
			r.logger.Debug().Str("resource", resource).Msg("resource has no physical location, skipping")
			continue
		}

		target := base
		if locator.IsOverride(resource) {
			target = override
		}
		for _, loc := range locations {
			if err := target.AddLocation(loc); err != nil {
				r.err = &engine.ResolutionError{Stage: engine.StageDiscovery, Artifact: resource, Err: err}
				return r
			}
		}
	}

	r.register(ScannedProvider, base, engine.PriorityScanned)
	r.register(ScannedOverrideProvider, override, engine.PriorityScannedOverride)
	return r
}

// withLaunchParameters registers the launch-parameter-derived provider.
func (r *resolver) withLaunchParameters() *resolver {
	if r.err != nil {
		return r
	}

	p := provider.NewInMemoryProvider()
	if err := p.PutAll(external.FromPairs(r.opts.LaunchParameters)); err != nil {
		r.err = &engine.ResolutionError{Stage: engine.StageMerge, Artifact: LaunchParameterProvider, Err: err}
		return r
	}
	p.Freeze()

	r.register(LaunchParameterProvider, p, engine.PriorityLaunchParameters)
	return r
}

// withEnvironment registers the environment-derived provider.
func (r *resolver) withEnvironment() *resolver {
	if r.err != nil {
		return r
	}

	p := provider.NewInMemoryProvider()
	pairs := external.FromEnviron(r.opts.Environ)
	if err := p.PutAll(external.FromPairs(pairs)); err != nil {
		r.err = &engine.ResolutionError{Stage: engine.StageMerge, Artifact: EnvironmentProvider, Err: err}
		return r
	}
	p.Freeze()

	r.register(EnvironmentProvider, p, engine.PriorityEnvironment)
	return r
}

func (r *resolver) register(name string, p provider.Provider, priority engine.Priority) {
	if err := r.registry.Register(name, p, priority); err != nil {
		r.err = &engine.ResolutionError{Stage: engine.StageMerge, Artifact: name, Err: err}
	}
}

// resolve seals the registry and returns the merged configuration plus the
// active profiles from the environment.
func (r *resolver) resolve(ctx context.Context) (*engine.Config, []string, error) {
	if r.err != nil {
		r.logger.Error().Err(r.err).Msg("configuration resolution aborted")
		return nil, nil, r.err
	}

	cfg, err := r.registry.Config(ctx)
	if err != nil {
		r.logger.Error().Err(err).Msg("configuration resolution aborted")
		return nil, nil, err
	}

	profiles := external.ActiveProfiles(external.FromEnviron(r.opts.Environ))
	r.logger.Info().
		Strs("profiles", profiles).
		Str("snapshot", cfg.Snapshot().ID.String()).
		Msg("configuration resolved")

	return cfg, profiles, nil
}
