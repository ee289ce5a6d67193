package solver_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samdwyer/dungeonpath/internal/solver"
	"github.com/samdwyer/dungeonpath/internal/world"
)

// assertValidRoute checks the structural route contract: it starts on the
// start cell, ends on the exit cell, and every consecutive pair of cells is
// 4-adjacent.
func assertValidRoute(t *testing.T, g *world.Grid, route []world.Position) {
	t.Helper()
	require.NotEmpty(t, route)

	start, ok := g.Locate(world.TileStart)
	require.True(t, ok)
	exit, ok := g.Locate(world.TileExit)
	require.True(t, ok)

	assert.Equal(t, start, route[0], "route must begin at the start cell")
	assert.Equal(t, exit, route[len(route)-1], "route must end at the exit cell")

	for i := 1; i < len(route); i++ {
		dr := route[i].Row - route[i-1].Row
		dc := route[i].Col - route[i-1].Col
		if dr < 0 {
			dr = -dr
		}
		if dc < 0 {
			dc = -dc
		}
		assert.Equal(t, 1, dr+dc, "steps %d and %d are not 4-adjacent", i-1, i)
	}
}

func TestFindPathStraightHall(t *testing.T) {
	g := world.NewGrid([]string{
		"#######",
		"#S    #",
		"##### #",
		"#E    #",
		"#######",
	})

	route := solver.FindPath(context.Background(), g)
	assertValidRoute(t, g, route)
	assert.Len(t, route, 11)
}

func TestFindPathPicksShortestOfSeveral(t *testing.T) {
	// Two routes around the block: 4 moves over the top, 6 around the
	// bottom. BFS must find the short one.
	g := world.NewGrid([]string{
		"#####",
		"#S E#",
		"# # #",
		"#   #",
		"#####",
	})

	route := solver.FindPath(context.Background(), g)
	assertValidRoute(t, g, route)
	assert.Len(t, route, 3)
}

func TestFindPathWallBetween(t *testing.T) {
	g := world.NewGrid([]string{"S#E"})
	assert.Empty(t, solver.FindPath(context.Background(), g))
}

func TestFindPathDisconnectedComponents(t *testing.T) {
	g := world.NewGrid([]string{
		"S.#",
		".#E",
	})
	assert.Empty(t, solver.FindPath(context.Background(), g))
}

func TestFindPathTreatsDoorsAsWalls(t *testing.T) {
	// A key is held right next to the door, but the plain engine does not
	// model collection: the door still blocks.
	g := world.NewGrid([]string{"SaAE"})
	assert.Empty(t, solver.FindPath(context.Background(), g))
}

func TestFindPathMissingStartOrExit(t *testing.T) {
	ctx := context.Background()
	assert.Empty(t, solver.FindPath(ctx, world.NewGrid([]string{"   E"})))
	assert.Empty(t, solver.FindPath(ctx, world.NewGrid([]string{"S   "})))
	assert.Empty(t, solver.FindPath(ctx, world.NewGrid(nil)))
}

func TestFindPathStartIsExitNeighbor(t *testing.T) {
	g := world.NewGrid([]string{"SE"})
	route := solver.FindPath(context.Background(), g)
	assert.Equal(t, []world.Position{{Row: 0, Col: 0}, {Row: 0, Col: 1}}, route)
}

func TestFindPathDeterministicTieBreak(t *testing.T) {
	// Two equal-length routes exist; the fixed direction order
	// (up, down, left, right) decides which one comes back.
	g := world.NewGrid([]string{
		"####",
		"#S #",
		"# E#",
		"####",
	})

	route := solver.FindPath(context.Background(), g)
	require.Len(t, route, 3)
	// Down is tried before right, so the route goes through (2,1).
	assert.Equal(t, []world.Position{
		{Row: 1, Col: 1},
		{Row: 2, Col: 1},
		{Row: 2, Col: 2},
	}, route)
}
