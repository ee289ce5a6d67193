package solver

import (
	"context"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/dungeonpath/internal/telemetry"
	"github.com/samdwyer/dungeonpath/internal/world"
)

// keyState is a node in the augmented search space. The same cell visited
// with a different key set is a different state: the keys held decide which
// doors are crossable from here on, so the futures differ. keyState is
// comparable and never mutated once inserted into the visited set or the
// parents map.
type keyState struct {
	pos  world.Position
	keys world.KeySet
}

// FindPathWithKeys returns a shortest route from start to exit where doors
// may be crossed once the matching key has been walked over. Keys are picked
// up automatically on entry to their cell and are never dropped. The goal
// test compares positions only: arriving at the exit wins no matter which
// keys are held. Returns nil when the grid lacks a start or exit, or when
// no key order opens a way through.
func FindPathWithKeys(ctx context.Context, g *world.Grid) []world.Position {
	tracer := telemetry.Tracer("solver")
	_, span := tracer.Start(ctx, "solver.find_path_with_keys")
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

	startState := keyState{pos: start}
	frontier := []keyState{startState}
	visited := map[keyState]bool{startState: true}
	parents := map[keyState]keyState{}

	explored := 0
	for len(frontier) > 0 {
		current := frontier[0]
		frontier = frontier[1:]
		explored++

		if current.pos == exit {
			route := rebuildKeyRoute(parents, startState, current)
			span.SetAttributes(
				attribute.Int("search.states_explored", explored),
				attribute.Int("search.route_len", len(route)),
				attribute.String("search.keys_held", current.keys.String()),
			)
			return route
		}

		for _, d := range directions {
			row, col := current.pos.Row+d[0], current.pos.Col+d[1]
			if !g.InBounds(row, col) {
				continue
			}
			tile := g.TileAt(row, col)
			if tile.IsWall() {
				continue
			}
			// Door logic is applied here, not folded into passability:
			// whether the door opens depends on the keys held right now.
			if tile.IsDoor() && !current.keys.CanOpen(tile) {
				continue
			}

			next := keyState{
				pos:  world.Position{Row: row, Col: col},
				keys: current.keys.Collect(tile),
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

// rebuildKeyRoute walks parent links backward from goal to start, dropping
// the key-set component so the caller sees plain positions. As with
// rebuildRoute, a broken chain yields nil.
func rebuildKeyRoute(parents map[keyState]keyState, start, goal keyState) []world.Position {
	route := []world.Position{}
	current := goal
	for current != start {
		route = append(route, current.pos)
		parent, ok := parents[current]
		if !ok {
			return nil
		}
		current = parent
	}
	route = append(route, start.pos)
	reverseRoute(route)
	return route
}

// ReachableKeys counts the distinct keys that can be walked to from the
// start ignoring doors entirely. It bounds what any key order could ever
// collect and is cheap enough to run before the full augmented search.
func ReachableKeys(ctx context.Context, g *world.Grid) int {
	tracer := telemetry.Tracer("solver")
	_, span := tracer.Start(ctx, "solver.reachable_keys")
	defer span.End()

	start, ok := g.Locate(world.TileStart)
	if !ok {
		return 0
	}

	var held world.KeySet
	frontier := []world.Position{start}
	visited := map[world.Position]bool{start: true}

	for len(frontier) > 0 {
		current := frontier[0]
		frontier = frontier[1:]
		held = held.Collect(g.TileAt(current.Row, current.Col))

		for _, d := range directions {
			next := world.Position{Row: current.Row + d[0], Col: current.Col + d[1]}
			if !g.InBounds(next.Row, next.Col) || g.TileAt(next.Row, next.Col).IsWall() {
				continue
			}
			if visited[next] {
				continue
			}
			visited[next] = true
			frontier = append(frontier, next)
		}
	}

	span.SetAttributes(attribute.Int("search.keys_reachable", held.Count()))
	return held.Count()
}
