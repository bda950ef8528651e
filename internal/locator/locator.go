// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package locator

import (
	"errors"
	"io/fs"
	"regexp"
	"sort"
	"strings"

	"github.com/MKhiriev/go-config-resolver/internal/logger"
	"github.com/MKhiriev/go-config-resolver/internal/provider"
)

// ConfigurationLocation is the fixed subdirectory prefix under which
// configuration documents are packaged. Resources outside it are ignored.
const ConfigurationLocation = "META-INF/configuration/"

// Extension patterns for supported document formats, one per extension.
// Compatibility contract: these are the only recognized document kinds.
var (
	YAMLPattern = regexp.MustCompile(`.*\.yaml$`)
	YMLPattern  = regexp.MustCompile(`.*\.yml$`)
	JSONPattern = regexp.MustCompile(`.*\.json$`)
)

// OverrideSuffixes marks resources routed to the override provider. Note
// the deliberate asymmetry with the base extensions: ".override.yml" is NOT
// recognized, only the ".yaml" and ".json" spellings are. Changing this set
// is a compatibility break.
var OverrideSuffixes = []string{".override.yaml", ".override.json"}

// Root is one search root: a named filesystem the locator enumerates.
// The name identifies the root for deduplication and diagnostics.
type Root struct {
	Name string
	FS   fs.FS
}

// Locator enumerates configuration resources across a set of search roots.
type Locator struct {
	roots     []Root
	locations []string
	logger    *logger.Logger
}

// New returns a locator over the given roots. Roots registered several
// times under the same name are applied once; order of first registration
// is preserved and becomes the discovery order.
func New(log *logger.Logger, roots ...Root) *Locator {
	if log == nil {
		log = logger.Nop()
	}

	l := &Locator{
		locations: []string{ConfigurationLocation},
		logger:    log,
	}
	for _, root := range roots {
		l.AddRoot(root)
	}
	return l
}

// AddLocation registers an additional subdirectory prefix to search beside
// [ConfigurationLocation]. A trailing slash is appended when missing;
// duplicates are ignored.
func (l *Locator) AddLocation(prefix string) {
	if prefix == "" {
		return
	}
	if !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}
	for _, existing := range l.locations {
		if existing == prefix {
			return
		}
	}
	l.locations = append(l.locations, prefix)
}

// AddRoot registers one more search root, ignoring duplicates by name.
func (l *Locator) AddRoot(root Root) {
	for _, existing := range l.roots {
		if existing.Name == root.Name {
			l.logger.Debug().Str("root", root.Name).Msg("search root already registered, skipping")
			return
		}
	}
	l.roots = append(l.roots, root)
}

// Scan walks every search root and returns candidate resource names grouped
// by extension pattern, the same shape the host's classpath scan hands to
// [CollectResources]. Names are paths relative to their root. Walk errors
// are fatal.
func (l *Locator) Scan() (map[string][]string, error) {
	if len(l.roots) == 0 {
		return nil, ErrNoRoots
	}

	patterns := []*regexp.Regexp{YAMLPattern, YMLPattern, JSONPattern}
	byPattern := make(map[string][]string, len(patterns))

	for _, root := range l.roots {
		err := fs.WalkDir(root.FS, ".", func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				return nil
			}
			for _, pattern := range patterns {
				if pattern.MatchString(p) {
					byPattern[pattern.String()] = append(byPattern[pattern.String()], p)
					break
				}
			}
			return nil
		})
		if err != nil {
			return nil, &ResourceEnumerationError{Resource: root.Name, Err: err}
		}
	}

	return byPattern, nil
}

// CollectResources filters candidate names down to the logical resource set:
// the union across all patterns, restricted to the registered search
// locations. The result is sorted for deterministic downstream ordering; a
// resource appearing under several patterns is kept once.
func (l *Locator) CollectResources(byPattern map[string][]string) []string {
	seen := make(map[string]struct{})
	var resources []string

	for _, names := range byPattern {
		for _, name := range names {
			if !l.inSearchLocation(name) {
				continue
			}
			if _, ok := seen[name]; ok {
				continue
			}
			seen[name] = struct{}{}
			resources = append(resources, name)
		}
	}

	sort.Strings(resources)
	return resources
}

func (l *Locator) inSearchLocation(name string) bool {
	for _, prefix := range l.locations {
		if strings.HasPrefix(name, prefix) {
			return true
		}
	}
	return false
}

// Locate resolves a logical resource name to all of its physical locations,
// one per search root exposing it, in root registration order. A name with
// no physical location (a scan false positive) yields an empty slice, not
// an error; a filesystem failure during enumeration is fatal.
func (l *Locator) Locate(resource string) ([]provider.Location, error) {
	var locations []provider.Location

	for _, root := range l.roots {
		_, err := fs.Stat(root.FS, resource)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return nil, &ResourceEnumerationError{Resource: resource, Err: err}
		}
		locations = append(locations, provider.NewFSLocation(root.FS, root.Name, resource, resource))
	}

	return locations, nil
}

// IsOverride reports whether a logical resource name follows the override
// filename convention and must be routed to the override provider.
func IsOverride(resource string) bool {
	for _, suffix := range OverrideSuffixes {
		if strings.HasSuffix(resource, suffix) {
			return true
		}
	}
	return false
}
