package data

import (
	"context"
	"testing"

	"github.com/samdwyer/dungeonpath/internal/solver"
	"github.com/samdwyer/dungeonpath/internal/world"
)

func TestLoadMaps(t *testing.T) {
	maps, err := LoadMaps()
	if err != nil {
		t.Fatalf("Failed to load maps: %v", err)
	}

	if len(maps) != 3 {
		t.Errorf("Expected 3 maps, got %d", len(maps))
	}

	// Verify expected maps exist
	expectedNames := map[string]bool{"classic": false, "hall": false, "blocked": false}
	for _, m := range maps {
		if _, ok := expectedNames[m.Name]; ok {
			expectedNames[m.Name] = true
		}
	}

	for name, found := range expectedNames {
		if !found {
			t.Errorf("Expected map %q not found", name)
		}
	}
}

func TestMapRegistry(t *testing.T) {
	registry, err := LoadMapRegistry()
	if err != nil {
		t.Fatalf("Failed to load registry: %v", err)
	}

	if registry.Count() != 3 {
		t.Errorf("Expected 3 maps, got %d", registry.Count())
	}

	classic := registry.GetByName("classic")
	if classic == nil {
		t.Fatal("Map 'classic' not found by name")
	}
	if classic.KeyCount != 2 {
		t.Errorf("Expected 2 keys on 'classic', got %d", classic.KeyCount)
	}

	if registry.GetByName("nonexistent") != nil {
		t.Error("Expected nil for unknown map name")
	}
}

func TestMapRowsAreRectangular(t *testing.T) {
	registry := MustLoadMapRegistry()
	for _, def := range registry.All() {
		rows, err := def.Rows()
		if err != nil {
			t.Fatalf("Failed to read map %q: %v", def.Name, err)
		}
		if len(rows) == 0 {
			t.Fatalf("Map %q has no rows", def.Name)
		}
		for i, row := range rows {
			if len(row) != len(rows[0]) {
				t.Errorf("Map %q row %d has length %d, want %d", def.Name, i, len(row), len(rows[0]))
			}
		}
	}
}

func TestFixtureRoutesMatchManifest(t *testing.T) {
	// The manifest records hand-verified shortest route lengths; the
	// engines must reproduce them exactly.
	registry := MustLoadMapRegistry()
	ctx := context.Background()

	for _, def := range registry.All() {
		rows, err := def.Rows()
		if err != nil {
			t.Fatalf("Failed to read map %q: %v", def.Name, err)
		}
		grid := world.NewGrid(rows)

		plain := solver.FindPath(ctx, grid)
		if len(plain) != def.PlainRouteLen {
			t.Errorf("Map %q: plain route length %d, want %d", def.Name, len(plain), def.PlainRouteLen)
		}

		keyed := solver.FindPathWithKeys(ctx, grid)
		if len(keyed) != def.KeyedRouteLen {
			t.Errorf("Map %q: keyed route length %d, want %d", def.Name, len(keyed), def.KeyedRouteLen)
		}

		if keys := solver.ReachableKeys(ctx, grid); keys != def.KeyCount {
			t.Errorf("Map %q: %d reachable keys, want %d", def.Name, keys, def.KeyCount)
		}
	}
}

func TestClassicExitPosition(t *testing.T) {
	// The classic fixture keeps its exit at (5,8); tooling and docs refer
	// to this cell, so moving it is a breaking change.
	def := MustLoadMapRegistry().GetByName("classic")
	rows, err := def.Rows()
	if err != nil {
		t.Fatalf("Failed to read classic map: %v", err)
	}

	exit, ok := world.NewGrid(rows).Locate(world.TileExit)
	if !ok {
		t.Fatal("Classic map has no exit")
	}
	if exit != (world.Position{Row: 5, Col: 8}) {
		t.Errorf("Classic exit at (%d,%d), want (5,8)", exit.Row, exit.Col)
	}
}
