// Package solver implements shortest-route search over dungeon grids.
//
// Two engines are provided. FindPath runs a plain breadth-first search in
// which doors are simply impassable. FindPathWithKeys augments the search
// state with the set of collected keys, so a door crossing is legal exactly
// when the matching key was picked up earlier on the walk. Both return the
// route as an ordered slice of positions, or nil when no route exists.
package solver

import (
	"context"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/dungeonpath/internal/telemetry"
	"github.com/samdwyer/dungeonpath/internal/world"
)

// directions is the fixed neighbor offset table: up, down, left, right.
// Both engines and all tests depend on this order; it decides which of
// several equal-length routes is found first.
var directions = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// FindPath returns a shortest route from the start tile to the exit tile,
// treating every door as a wall. The route includes both endpoints. It is
// nil when the grid lacks a start or exit, or when no route exists; callers
// that need to tell those cases apart should use Grid.Locate directly.
func FindPath(ctx context.Context, g *world.Grid) []world.Position {
	tracer := telemetry.Tracer("solver")
	_, span := tracer.Start(ctx, "solver.find_path")
	defer span.End()
	span.SetAttributes(
		attribute.Int("grid.height", g.Height()),
		attribute.Int("grid.width", g.Width()),
	)

	start, ok := g.Locate(world.TileStart)
	if !ok {
		return nil
	}
	exit, ok := g.Locate(world.TileExit)
	if !ok {
		return nil
	}

	frontier := []world.Position{start}
	visited := map[world.Position]bool{start: true}
	parents := map[world.Position]world.Position{}

	explored := 0
	for len(frontier) > 0 {
		current := frontier[0]
		frontier = frontier[1:]
		explored++

		if current == exit {
			route := rebuildRoute(parents, start, current)
			span.SetAttributes(
				attribute.Int("search.states_explored", explored),
				attribute.Int("search.route_len", len(route)),
			)
			return route
		}

		for _, d := range directions {
			next := world.Position{Row: current.Row + d[0], Col: current.Col + d[1]}
			if !g.InBounds(next.Row, next.Col) || !g.TileAt(next.Row, next.Col).IsPassable() {
				continue
			}
			if visited[next] {
				continue
			}
			visited[next] = true
			parents[next] = current
			frontier = append(frontier, next)
		}
	}

	span.SetAttributes(
		attribute.Int("search.states_explored", explored),
		attribute.Int("search.route_len", 0),
	)
	return nil
}

// rebuildRoute walks parent links backward from goal to start and returns
// the route in forward order. A break in the chain means the engine never
// actually linked goal back to start; that is a bug, surfaced as nil rather
// than a panic.
func rebuildRoute(parents map[world.Position]world.Position, start, goal world.Position) []world.Position {
	route := []world.Position{}
	current := goal
	for current != start {
		route = append(route, current)
		parent, ok := parents[current]
		if !ok {
			return nil
		}
		current = parent
	}
	route = append(route, start)
	reverseRoute(route)
	return route
}

// reverseRoute reverses a route in place.
func reverseRoute(route []world.Position) {
	for i, j := 0, len(route)-1; i < j; i, j = i+1, j-1 {
		route[i], route[j] = route[j], route[i]
	}
}
