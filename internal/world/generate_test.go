package world_test

import (
	"context"
	"math/rand"
	"testing"

	"github.com/samdwyer/dungeonpath/internal/solver"
	"github.com/samdwyer/dungeonpath/internal/world"
)

func TestGeneratorReproducibility(t *testing.T) {
	// Generate two maps with the same seed
	seed := int64(12345)

	rng1 := rand.New(rand.NewSource(seed))
	rng2 := rand.New(rand.NewSource(seed))

	gen1 := world.NewGenerator(world.DefaultHeight, world.DefaultWidth, 3, rng1)
	gen2 := world.NewGenerator(world.DefaultHeight, world.DefaultWidth, 3, rng2)

	ctx := context.Background()
	g1 := gen1.Generate(ctx)
	g2 := gen2.Generate(ctx)

	rows1, rows2 := g1.Rows(), g2.Rows()
	if len(rows1) != len(rows2) {
		t.Fatalf("Row count mismatch: %d != %d", len(rows1), len(rows2))
	}
	for i := range rows1 {
		if rows1[i] != rows2[i] {
			t.Errorf("Row %d mismatch:\n%s\n%s", i, rows1[i], rows2[i])
		}
	}
}

func TestGeneratorDifferentSeeds(t *testing.T) {
	// Generate two maps with different seeds - they should be different
	rng1 := rand.New(rand.NewSource(12345))
	rng2 := rand.New(rand.NewSource(54321))

	ctx := context.Background()
	g1 := world.NewGenerator(world.DefaultHeight, world.DefaultWidth, 3, rng1).Generate(ctx)
	g2 := world.NewGenerator(world.DefaultHeight, world.DefaultWidth, 3, rng2).Generate(ctx)

	rows1, rows2 := g1.Rows(), g2.Rows()
	identical := true
	for i := range rows1 {
		if rows1[i] != rows2[i] {
			identical = false
			break
		}
	}
	if identical {
		t.Error("Maps with different seeds should not be identical")
	}
}

func TestGeneratedMapsAreSolvable(t *testing.T) {
	// Doors are placed on the shortest route with their keys strictly
	// earlier on it, so every generated map must be solvable with keys.
	ctx := context.Background()
	for _, seed := range []int64{1, 2, 3, 42, 12345} {
		rng := rand.New(rand.NewSource(seed))
		g := world.NewGenerator(world.DefaultHeight, world.DefaultWidth, 4, rng).Generate(ctx)

		if _, ok := g.Locate(world.TileStart); !ok {
			t.Fatalf("seed %d: generated map has no start", seed)
		}
		if _, ok := g.Locate(world.TileExit); !ok {
			t.Fatalf("seed %d: generated map has no exit", seed)
		}

		route := solver.FindPathWithKeys(ctx, g)
		if len(route) == 0 {
			t.Errorf("seed %d: generated map is not solvable:\n%s", seed, g.Render(nil))
		}
	}
}

func TestGeneratorKeyClamping(t *testing.T) {
	// Requests beyond the alphabet are clamped; the map never holds more
	// key letters than exist.
	ctx := context.Background()
	rng := rand.New(rand.NewSource(7))
	g := world.NewGenerator(world.DefaultHeight, world.DefaultWidth, 99, rng).Generate(ctx)

	keys := solver.ReachableKeys(ctx, g)
	if keys > world.NumKeys {
		t.Errorf("Expected at most %d keys, got %d", world.NumKeys, keys)
	}
}
