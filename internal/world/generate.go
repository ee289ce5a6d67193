package world

import (
	"context"
	"math/rand"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/dungeonpath/internal/telemetry"
)

const (
	// Default generated map dimensions
	DefaultHeight = 24
	DefaultWidth  = 80

	// BSP parameters
	minRoomSize = 3 // Minimum room dimension
	maxRoomSize = 9 // Maximum room dimension
	minLeafSize = 5 // Minimum BSP leaf size before stopping split
)

// Generator builds random dungeon maps using BSP room placement. Rooms are
// carved into a wall-filled grid, connected with L-shaped corridors, and
// then a start, an exit, and up to NumKeys key/door pairs are placed.
//
// Door placement guarantees solvability: every door sits on the shortest
// start-to-exit route and its key sits strictly earlier on that same route,
// so a searcher following the route always holds the key it needs next.
type Generator struct {
	height int
	width  int
	keys   int
	rng    *rand.Rand
	tiles  [][]byte
	rooms  []room
}

// NewGenerator creates a generator for maps of the given dimensions with up
// to keys key/door pairs (clamped to [0, NumKeys]). The caller supplies the
// random source so generation is reproducible under a fixed seed.
func NewGenerator(height, width, keys int, rng *rand.Rand) *Generator {
	if keys < 0 {
		keys = 0
	}
	if keys > NumKeys {
		keys = NumKeys
	}
	return &Generator{
		height: height,
		width:  width,
		keys:   keys,
		rng:    rng,
	}
}

// Generate builds and returns a new map.
func (g *Generator) Generate(ctx context.Context) *Grid {
	tracer := telemetry.Tracer("world")
	_, span := tracer.Start(ctx, "generator.generate")
	defer span.End()

	startTime := time.Now()

	// Start from solid rock
	g.tiles = make([][]byte, g.height)
	for row := range g.tiles {
		g.tiles[row] = make([]byte, g.width)
		for col := range g.tiles[row] {
			g.tiles[row][col] = byte(TileWall)
		}
	}
	g.rooms = g.rooms[:0]

	// BSP split, then carve rooms in the leaves and connect them
	root := &bspNode{row: 1, col: 1, height: g.height - 2, width: g.width - 2}
	g.splitNode(root)
	g.createRooms(root)
	g.connectRooms(root)

	placed := g.placeFeatures()

	span.SetAttributes(
		attribute.Int("map.height", g.height),
		attribute.Int("map.width", g.width),
		attribute.Int("map.room_count", len(g.rooms)),
		attribute.Int("map.key_pairs", placed),
		attribute.Int64("map.generation_ms", time.Since(startTime).Milliseconds()),
	)

	rows := make([]string, g.height)
	for row := range g.tiles {
		rows[row] = string(g.tiles[row])
	}
	return NewGrid(rows)
}

// placeFeatures drops the start, the exit, and the key/door pairs onto the
// carved map. Returns the number of pairs actually placed, which can fall
// short of the request on maps whose route is too short to host them all.
func (g *Generator) placeFeatures() int {
	var start, exit Position
	if len(g.rooms) >= 2 {
		start = g.rooms[0].center()
		exit = g.rooms[len(g.rooms)-1].center()
	} else {
		// Degenerate map with at most one room: put the endpoints in
		// opposite corners of the carved area.
		start = Position{Row: 1, Col: 1}
		exit = Position{Row: g.height - 2, Col: g.width - 2}
		g.tiles[start.Row][start.Col] = byte(TileFloor)
		g.tiles[exit.Row][exit.Col] = byte(TileFloor)
		g.carveCorridor(start, exit)
	}
	g.tiles[start.Row][start.Col] = byte(TileStart)
	g.tiles[exit.Row][exit.Col] = byte(TileExit)

	if g.keys == 0 {
		return 0
	}

	route := g.routeBetween(start, exit)
	if route == nil {
		return 0
	}

	// Interior route cells only; endpoints hold S and E.
	placed := 0
	segment := len(route) / (g.keys + 1)
	if segment < 2 {
		segment = 2
	}
	for i := 0; i < g.keys; i++ {
		doorIdx := (i + 1) * segment
		keyIdx := doorIdx - segment/2
		if doorIdx >= len(route)-1 || keyIdx <= 0 {
			break
		}
		door, key := route[doorIdx], route[keyIdx]
		if g.tiles[door.Row][door.Col] != byte(TileFloor) ||
			g.tiles[key.Row][key.Col] != byte(TileFloor) {
			continue
		}
		g.tiles[door.Row][door.Col] = byte(firstDoor) + byte(placed)
		g.tiles[key.Row][key.Col] = byte(firstKey) + byte(placed)
		placed++
	}
	return placed
}

// routeBetween finds a shortest walk between two carved cells, walls
// blocking, doors not yet placed. This runs on the generator's mutable tile
// buffer before the Grid exists; the real engines operate on finished Grids.
func (g *Generator) routeBetween(from, to Position) []Position {
	parents := map[Position]Position{}
	visited := map[Position]bool{from: true}
	frontier := []Position{from}

	for len(frontier) > 0 {
		current := frontier[0]
		frontier = frontier[1:]
		if current == to {
			route := []Position{current}
			for current != from {
				current = parents[current]
				route = append(route, current)
			}
			for i, j := 0, len(route)-1; i < j; i, j = i+1, j-1 {
				route[i], route[j] = route[j], route[i]
			}
			return route
		}
		for _, d := range [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}} {
			next := Position{Row: current.Row + d[0], Col: current.Col + d[1]}
			if next.Row < 0 || next.Row >= g.height || next.Col < 0 || next.Col >= g.width {
				continue
			}
			if g.tiles[next.Row][next.Col] == byte(TileWall) || visited[next] {
				continue
			}
			visited[next] = true
			parents[next] = current
			frontier = append(frontier, next)
		}
	}
	return nil
}

// bspNode represents a node in the BSP tree.
type bspNode struct {
	row, col      int
	height, width int
	left, right   *bspNode
	room          *room
}

// isLeaf returns true if this node has no children.
func (n *bspNode) isLeaf() bool {
	return n.left == nil && n.right == nil
}

// splitNode recursively splits a BSP node.
func (g *Generator) splitNode(node *bspNode) {
	if node.width < minLeafSize*2 && node.height < minLeafSize*2 {
		return
	}

	// Split across the longer axis when possible
	var splitHorizontally bool
	if node.width > node.height && node.width >= minLeafSize*2 {
		splitHorizontally = false
	} else if node.height >= minLeafSize*2 {
		splitHorizontally = true
	} else if node.width >= minLeafSize*2 {
		splitHorizontally = false
	} else {
		return
	}

	var span int
	if splitHorizontally {
		span = node.height
	} else {
		span = node.width
	}
	if span-minLeafSize <= minLeafSize {
		return
	}
	splitPos := minLeafSize + g.rng.Intn(span-minLeafSize*2+1)

	if splitHorizontally {
		node.left = &bspNode{row: node.row, col: node.col, height: splitPos, width: node.width}
		node.right = &bspNode{row: node.row + splitPos, col: node.col, height: node.height - splitPos, width: node.width}
	} else {
		node.left = &bspNode{row: node.row, col: node.col, height: node.height, width: splitPos}
		node.right = &bspNode{row: node.row, col: node.col + splitPos, height: node.height, width: node.width - splitPos}
	}

	g.splitNode(node.left)
	g.splitNode(node.right)
}

// createRooms creates rooms in leaf nodes of the BSP tree.
func (g *Generator) createRooms(node *bspNode) {
	if node == nil {
		return
	}
	if !node.isLeaf() {
		g.createRooms(node.left)
		g.createRooms(node.right)
		return
	}

	roomHeight := minRoomSize + g.rng.Intn(min(maxRoomSize-minRoomSize+1, max(node.height-minRoomSize, 1)))
	roomWidth := minRoomSize + g.rng.Intn(min(maxRoomSize-minRoomSize+1, max(node.width-minRoomSize, 1)))
	if roomHeight > node.height-2 {
		roomHeight = node.height - 2
	}
	if roomWidth > node.width-2 {
		roomWidth = node.width - 2
	}
	if roomHeight < minRoomSize || roomWidth < minRoomSize {
		return
	}

	r := room{
		row:    node.row + 1 + g.rng.Intn(max(node.height-roomHeight-1, 1)),
		col:    node.col + 1 + g.rng.Intn(max(node.width-roomWidth-1, 1)),
		height: roomHeight,
		width:  roomWidth,
	}
	node.room = &r
	g.rooms = append(g.rooms, r)
	g.carveRoom(r)
}

// carveRoom sets all tiles within the room to floor.
func (g *Generator) carveRoom(r room) {
	for row := r.row; row < r.row+r.height; row++ {
		for col := r.col; col < r.col+r.width; col++ {
			g.carveCell(row, col)
		}
	}
}

// connectRooms connects rooms with corridors.
func (g *Generator) connectRooms(node *bspNode) {
	if node == nil || node.isLeaf() {
		return
	}

	g.connectRooms(node.left)
	g.connectRooms(node.right)

	leftRoom := g.getRoom(node.left)
	rightRoom := g.getRoom(node.right)
	if leftRoom != nil && rightRoom != nil {
		g.carveCorridor(leftRoom.center(), rightRoom.center())
	}
}

// getRoom returns a room from a subtree (any room will do).
func (g *Generator) getRoom(node *bspNode) *room {
	if node == nil {
		return nil
	}
	if node.room != nil {
		return node.room
	}
	if r := g.getRoom(node.left); r != nil {
		return r
	}
	return g.getRoom(node.right)
}

// carveCorridor carves an L-shaped corridor between two cells.
func (g *Generator) carveCorridor(from, to Position) {
	if g.rng.Intn(2) == 0 {
		g.carveHorizontalTunnel(from.Col, to.Col, from.Row)
		g.carveVerticalTunnel(from.Row, to.Row, to.Col)
	} else {
		g.carveVerticalTunnel(from.Row, to.Row, from.Col)
		g.carveHorizontalTunnel(from.Col, to.Col, to.Row)
	}
}

// carveHorizontalTunnel carves a horizontal tunnel.
func (g *Generator) carveHorizontalTunnel(col1, col2, row int) {
	if col1 > col2 {
		col1, col2 = col2, col1
	}
	for col := col1; col <= col2; col++ {
		g.carveCell(row, col)
	}
}

// carveVerticalTunnel carves a vertical tunnel.
func (g *Generator) carveVerticalTunnel(row1, row2, col int) {
	if row1 > row2 {
		row1, row2 = row2, row1
	}
	for row := row1; row <= row2; row++ {
		g.carveCell(row, col)
	}
}

// carveCell opens a single cell, leaving the outer border intact.
func (g *Generator) carveCell(row, col int) {
	if row > 0 && row < g.height-1 && col > 0 && col < g.width-1 {
		g.tiles[row][col] = byte(TileFloor)
	}
}
