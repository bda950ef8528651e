// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"errors"
	"flag"
	"strings"
)

// stringList collects a repeatable string flag.
// It implements the flag.Value interface.
type stringList []string

func (l *stringList) String() string {
	return strings.Join(*l, ",")
}

func (l *stringList) Set(value string) error {
	if value == "" {
		return errors.New("empty value")
	}
	*l = append(*l, value)
	return nil
}

// paramMap collects repeatable key=value launch parameters.
// It implements the flag.Value interface.
type paramMap map[string]string

func (m paramMap) String() string {
	pairs := make([]string, 0, len(m))
	for k, v := range m {
		pairs = append(pairs, k+"="+v)
	}
	return strings.Join(pairs, ",")
}

func (m paramMap) Set(value string) error {
	key, val, found := strings.Cut(value, "=")
	if !found || key == "" {
		return errors.New("expected key=value")
	}
	m[key] = val
	return nil
}

type flags struct {
	roots     stringList
	locations stringList
	params    paramMap
	profiles  stringList
	path      string
	tool      string
	serve     string
}

// parseFlags parses all command line flags.
//
// Flags:
//
//	-root search root directory, repeatable
//	-location additional search location inside each root, repeatable
//	-P launch parameter in key=value form, repeatable
//	-profile additional active profile, repeatable
//	-path dotted configuration path to dump
//	-tool bundled tool to run (remaining arguments are passed through)
//	-serve address of the diagnostics HTTP server, e.g. ":8080"
func parseFlags() *flags {
	f := &flags{params: paramMap{}}

	flag.Var(&f.roots, "root", "Search root directory (repeatable)")
	flag.Var(&f.locations, "location", "Additional search location inside each root (repeatable)")
	flag.Var(f.params, "P", "Launch parameter key=value (repeatable)")
	flag.Var(&f.profiles, "profile", "Additional active profile (repeatable)")
	flag.StringVar(&f.path, "path", "", "Dotted configuration path to dump")
	flag.StringVar(&f.tool, "tool", "", "Bundled tool to run")
	flag.StringVar(&f.serve, "serve", "", "Diagnostics HTTP server address")

	flag.Parse()

	return f
}
