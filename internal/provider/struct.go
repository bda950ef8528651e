// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package provider

import (
	"context"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"

	"github.com/MKhiriev/go-config-resolver/internal/tree"
)

// StructProvider is the declarative configuration-source adapter: a tagged
// struct contributes key/value pairs through `config` field tags, e.g.
//
//	type TestConfig struct {
//	    DBURL   string   `config:"db.url"`
//	    Servers []string `config:"servers" profiles:"prod,staging"`
//	    Token   string   `config:"auth.token" env:"AUTH_TOKEN"`
//	}
//
// The optional `profiles` tag scopes the pair to the named runtime
// profiles. When the provider is created with [FromEnvironment], fields
// carrying `env` tags are first populated from the process environment via
// caarlos0/env, so a host integration can declare both the key mapping and
// the environment binding in one place.
//
// Zero-valued fields contribute nothing, allowing partially filled sources.
type StructProvider struct {
	source  any
	fromEnv bool

	once sync.Once
	tree *tree.Tree
	err  error
}

// StructOption configures a StructProvider.
type StructOption func(*StructProvider)

// FromEnvironment makes the provider populate `env`-tagged fields of the
// source struct from the process environment before reading `config` tags.
func FromEnvironment() StructOption {
	return func(p *StructProvider) {
		p.fromEnv = true
	}
}

// NewStructProvider returns a provider over source, which must be a pointer
// to a struct.
func NewStructProvider(source any, opts ...StructOption) (*StructProvider, error) {
	v := reflect.ValueOf(source)
	if v.Kind() != reflect.Pointer || v.IsNil() || v.Elem().Kind() != reflect.Struct {
		return nil, fmt.Errorf("%w, got %T", ErrNotAStruct, source)
	}

	p := &StructProvider{source: source}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

// Provide materializes the struct's tagged fields into a tree on first call.
func (p *StructProvider) Provide(_ context.Context) (*tree.Tree, error) {
	p.once.Do(func() {
		p.tree, p.err = p.materialize()
	})
	return p.tree, p.err
}

func (p *StructProvider) materialize() (*tree.Tree, error) {
	if p.fromEnv {
		if err := env.Parse(p.source); err != nil {
			return nil, fmt.Errorf("error populating struct source from environment: %w", err)
		}
	}

	out := tree.New()
	if err := collectFields(reflect.ValueOf(p.source).Elem(), out); err != nil {
		return nil, err
	}
	return out, nil
}

// collectFields walks the struct, storing every non-zero `config`-tagged
// field and recursing into untagged nested structs.
func collectFields(v reflect.Value, out *tree.Tree) error {
	t := v.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}

		value := v.Field(i)
		key, tagged := field.Tag.Lookup("config")

		if !tagged {
			if value.Kind() == reflect.Struct {
				if err := collectFields(value, out); err != nil {
					return err
				}
			}
			continue
		}

		if key == "" || value.IsZero() {
			continue
		}

		if profiles, ok := field.Tag.Lookup("profiles"); ok && profiles != "" {
			key = key + "<" + profiles + ">"
		}

		if err := out.Set(key, value.Interface()); err != nil {
			return fmt.Errorf("error storing field %s: %w", field.Name, err)
		}
	}

	return nil
}
