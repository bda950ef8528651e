package toolreg

import (
	"context"
	"fmt"
	"io"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/MKhiriev/go-config-resolver/internal/engine"
	"github.com/MKhiriev/go-config-resolver/internal/logger"
)

// Bundled tool names.
const (
	ConfigToolName    = "config"
	ProvidersToolName = "providers"
)

// RegisterBundled registers the tools shipped with the engine: "config"
// dumps the resolved tree (optionally below one key), "providers" lists the
// diagnostic snapshot.
func RegisterBundled(r *Registry) error {
	if err := r.Register(ConfigToolName, NewConfigTool); err != nil {
		return err
	}
	return r.Register(ProvidersToolName, NewProvidersTool)
}

// configTool renders the resolved configuration tree as YAML.
type configTool struct {
	logger *logger.Logger
}

// NewConfigTool constructs the "config" tool.
func NewConfigTool(log *logger.Logger) Tool {
	return &configTool{logger: log}
}

func (t *configTool) Name() string {
	return ConfigToolName
}

// Run dumps the whole tree, or the subtree at the dotted key given as the
// first argument.
func (t *configTool) Run(_ context.Context, cfg *engine.Config, args []string, out io.Writer) error {
	var subtree any = cfg.Root()

	if len(args) > 0 {
		value, ok := cfg.Get(args[0])
		if !ok {
			return fmt.Errorf("configuration key %q not found", args[0])
		}
		subtree = value
	}

	encoded, err := yaml.Marshal(subtree)
	if err != nil {
		return fmt.Errorf("error encoding configuration: %w", err)
	}

	_, err = out.Write(encoded)
	return err
}

// providersTool renders the diagnostic snapshot: provider names, tiers, and
// the locations they loaded from.
type providersTool struct {
	logger *logger.Logger
}

// NewProvidersTool constructs the "providers" tool.
func NewProvidersTool(log *logger.Logger) Tool {
	return &providersTool{logger: log}
}

func (t *providersTool) Name() string {
	return ProvidersToolName
}

func (t *providersTool) Run(_ context.Context, cfg *engine.Config, _ []string, out io.Writer) error {
	snapshot := cfg.Snapshot()

	if _, err := fmt.Fprintf(out, "resolution %s\n", snapshot.ID); err != nil {
		return err
	}
	for _, info := range snapshot.Providers {
		if _, err := fmt.Fprintf(out, "%s (%s)\n", info.Name, info.Tier); err != nil {
			return err
		}
		locations := append([]string(nil), info.Locations...)
		sort.Strings(locations)
		for _, loc := range locations {
			if _, err := fmt.Fprintf(out, "  %s\n", loc); err != nil {
				return err
			}
		}
	}
	return nil
}
