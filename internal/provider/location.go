// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package provider

import (
	"context"
	"fmt"
	"os"
	"path"
	"strings"

	"io/fs"

	"github.com/go-resty/resty/v2"
)

// Format identifies the structured document format of a location.
type Format string

// Supported document formats.
const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// Location is one physical place a logical configuration resource resolves
// to. The same logical resource can have several locations when multiple
// search roots expose it; all of them are read and merged in discovery
// order.
type Location struct {
	// Resource is the logical resource name the location belongs to
	// (e.g. "META-INF/configuration/app.yaml").
	Resource string

	// Root labels the search root the document was found on. Empty for
	// plain files and URLs.
	Root string

	// Path is the physical path of the document: a path inside the search
	// root, a local file path, or an HTTP(S) URL.
	Path string

	fsys fs.FS
}

// NewFSLocation addresses a document inside a search root. root is a purely
// diagnostic label naming the search root; p is the path of the document
// within fsys.
func NewFSLocation(fsys fs.FS, root, resource, p string) Location {
	return Location{
		Resource: resource,
		Root:     root,
		Path:     p,
		fsys:     fsys,
	}
}

// NewFileLocation addresses a document on the local filesystem.
func NewFileLocation(resource, p string) Location {
	return Location{Resource: resource, Path: p}
}

// NewURLLocation addresses a document served over HTTP(S).
func NewURLLocation(resource, url string) Location {
	return Location{Resource: resource, Path: url}
}

// String returns the physical location for diagnostics. Documents found on a
// search root are rendered as "<root>!/<path>".
func (l Location) String() string {
	if l.Root != "" {
		return l.Root + "!/" + l.Path
	}
	return l.Path
}

// DetectFormat derives the document format from the resource extension,
// falling back to the physical path when the logical name carries none.
func (l Location) DetectFormat() (Format, error) {
	name := l.Resource
	if path.Ext(name) == "" {
		name = l.Path
	}

	switch strings.ToLower(path.Ext(name)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, name)
	}
}

// isURL reports whether the location is fetched over HTTP rather than read
// from a filesystem.
func (l Location) isURL() bool {
	return strings.HasPrefix(l.Path, "http://") || strings.HasPrefix(l.Path, "https://")
}

// read fetches the raw document bytes.
func (l Location) read(ctx context.Context, client *resty.Client) ([]byte, error) {
	if l.fsys != nil {
		return fs.ReadFile(l.fsys, l.Path)
	}

	if l.isURL() {
		resp, err := client.R().SetContext(ctx).Get(l.Path)
		if err != nil {
			return nil, err
		}
		if resp.IsError() {
			return nil, fmt.Errorf("unexpected status %s", resp.Status())
		}
		return resp.Body(), nil
	}

	return os.ReadFile(l.Path)
}
