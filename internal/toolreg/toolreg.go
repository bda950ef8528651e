// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package toolreg is a deterministic registry of diagnostic tools operating
// on a sealed configuration.
//
// Tools are found by explicit registration at process start, a mapping from
// a stable name to a factory, instead of implicit scanning; lookup is
// therefore deterministic and trivially testable. Registering two factories
// under one name is detected at registration time, not silently resolved.
package toolreg

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/MKhiriev/go-config-resolver/internal/engine"
	"github.com/MKhiriev/go-config-resolver/internal/logger"
)

// Sentinel errors returned by the registry.
var (
	// ErrToolNotFound is returned by Lookup for an unregistered tool name.
	ErrToolNotFound = errors.New("no tool registered under this name")

	// ErrDuplicateTool is returned by Register when the name is taken.
	ErrDuplicateTool = errors.New("tool name already registered")

	// ErrInvalidRegistration is returned by Register for an empty name or
	// nil factory.
	ErrInvalidRegistration = errors.New("tool name and factory are required")
)

// Tool is one diagnostic command over a sealed configuration.
type Tool interface {
	// Name returns the tool's stable lookup name.
	Name() string

	// Run executes the tool against the sealed configuration, writing its
	// report to out.
	Run(ctx context.Context, cfg *engine.Config, args []string, out io.Writer) error
}

// Factory constructs a tool instance.
type Factory func(log *logger.Logger) Tool

// Registry maps stable tool names to factories. The zero value is not
// usable; construct with [NewRegistry].
type Registry struct {
	factories map[string]Factory
	logger    *logger.Logger
}

// NewRegistry returns an empty tool registry.
func NewRegistry(log *logger.Logger) *Registry {
	if log == nil {
		log = logger.Nop()
	}
	return &Registry{
		factories: make(map[string]Factory),
		logger:    log,
	}
}

// Register binds a factory to a stable tool name.
func (r *Registry) Register(name string, factory Factory) error {
	if name == "" || factory == nil {
		return ErrInvalidRegistration
	}
	if _, taken := r.factories[name]; taken {
		return fmt.Errorf("%w: %q", ErrDuplicateTool, name)
	}

	r.factories[name] = factory
	r.logger.Debug().Str("tool", name).Msg("tool registered")
	return nil
}

// Lookup constructs the tool registered under name.
func (r *Registry) Lookup(name string) (Tool, error) {
	factory, ok := r.factories[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrToolNotFound, name)
	}
	return factory(r.logger), nil
}

// Names returns the registered tool names, for usage listings.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	return names
}
