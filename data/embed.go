// Package data provides embedded dungeon map fixtures and utilities for
// loading them.
package data

import "embed"

// dataFS embeds the map manifest and all map files at build time.
//
//go:embed manifest.json maps/*.txt
var dataFS embed.FS

// FS returns the embedded filesystem containing the map fixtures.
func FS() embed.FS {
	return dataFS
}
