// Package server exposes a sealed configuration over a small diagnostics
// HTTP surface.
//
// The surface is read-only: it serves the merged configuration tree (whole
// or by dotted path) and the provider snapshot that produced it. It is meant
// for local inspection while debugging resolution, not as a production API.
package server
