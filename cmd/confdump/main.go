// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/MKhiriev/go-config-resolver/internal/engine"
	"github.com/MKhiriev/go-config-resolver/internal/locator"
	"github.com/MKhiriev/go-config-resolver/internal/logger"
	"github.com/MKhiriev/go-config-resolver/internal/resolve"
	"github.com/MKhiriev/go-config-resolver/internal/server"
	"github.com/MKhiriev/go-config-resolver/internal/toolreg"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("confdump")
	f := parseFlags()

	ctx := context.Background()

	roots := make([]locator.Root, 0, len(f.roots))
	for _, dir := range f.roots {
		roots = append(roots, locator.Root{Name: dir, FS: os.DirFS(dir)})
	}

	cfg, profiles, err := resolve.Resolve(ctx, resolve.Options{
		Roots:            roots,
		Locations:        f.locations,
		LaunchParameters: f.params,
		Logger:           log,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("error resolving configuration")
	}

	profiles = append(profiles, f.profiles...)
	log.Debug().Strs("profiles", profiles).Msg("resolved configuration")

	switch {
	case f.serve != "":
		srv, err := server.NewServer(server.NewHandler(cfg, log), f.serve, log)
		if err != nil {
			log.Fatal().Err(err).Msg("error creating diagnostics server")
		}
		srv.Run()

	case f.tool != "":
		if err := runTool(ctx, f.tool, cfg, flag.Args(), log); err != nil {
			log.Fatal().Err(err).Str("tool", f.tool).Msg("error running tool")
		}

	default:
		if err := dump(cfg, f.path, profiles); err != nil {
			log.Fatal().Err(err).Msg("error dumping configuration")
		}
	}
}

func runTool(ctx context.Context, name string, cfg *engine.Config, args []string, log *logger.Logger) error {
	registry := toolreg.NewRegistry(log)
	if err := toolreg.RegisterBundled(registry); err != nil {
		return err
	}

	tool, err := registry.Lookup(name)
	if err != nil {
		return err
	}

	return tool.Run(ctx, cfg, args, os.Stdout)
}

// dump writes the resolved tree, or the value below one dotted path, as
// YAML to stdout.
func dump(cfg *engine.Config, path string, profiles []string) error {
	var value any = cfg.Root()

	if path != "" {
		v, ok := cfg.Get(path, profiles...)
		if !ok {
			return fmt.Errorf("configuration path %q not found", path)
		}
		value = v
	}

	encoded, err := yaml.Marshal(value)
	if err != nil {
		return err
	}

	_, err = os.Stdout.Write(encoded)
	return err
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
