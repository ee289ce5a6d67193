package world

import "strings"

// Grid is a read-only dungeon map built from an ordered sequence of text
// rows. It never changes after construction, so a single Grid can be shared
// freely between searches.
//
// Rows of unequal length are tolerated: the grid's width is the longest
// row's length and cells beyond a short row read as walls, which is the same
// answer out-of-bounds lookups give.
type Grid struct {
	rows   []string
	width  int
	height int
}

// NewGrid builds a Grid from the given rows. The input is copied, so the
// caller may reuse or modify its slice afterwards. An empty input yields a
// zero-size grid on which every lookup reports a wall.
func NewGrid(rows []string) *Grid {
	copied := make([]string, len(rows))
	copy(copied, rows)

	width := 0
	for _, row := range copied {
		if len(row) > width {
			width = len(row)
		}
	}

	return &Grid{
		rows:   copied,
		width:  width,
		height: len(copied),
	}
}

// Width returns the number of columns.
func (g *Grid) Width() int {
	return g.width
}

// Height returns the number of rows.
func (g *Grid) Height() int {
	return g.height
}

// InBounds returns true if the given cell lies within the grid.
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.height && col >= 0 && col < g.width
}

// TileAt returns the tile at the given cell. Cells outside the grid, or
// past the end of a short row, read as walls.
func (g *Grid) TileAt(row, col int) Tile {
	if row < 0 || row >= g.height {
		return TileWall
	}
	if col < 0 || col >= len(g.rows[row]) {
		return TileWall
	}
	return Tile(g.rows[row][col])
}

// Locate scans the grid in row-major order for the first cell holding the
// given tile. The second return value is false when the tile is absent;
// callers must check it rather than trust the zero Position.
func (g *Grid) Locate(t Tile) (Position, bool) {
	for row, line := range g.rows {
		if col := strings.IndexByte(line, byte(t)); col >= 0 {
			return Position{Row: row, Col: col}, true
		}
	}
	return Position{}, false
}

// Rows returns a copy of the underlying text rows.
func (g *Grid) Rows() []string {
	rows := make([]string, len(g.rows))
	copy(rows, g.rows)
	return rows
}

// Render returns the map as a single printable string, with each cell on
// the given route overdrawn with '*'. Start and exit markers are kept so
// the route's endpoints stay identifiable. A nil route renders the map
// unchanged.
func (g *Grid) Render(route []Position) string {
	onRoute := make(map[Position]bool, len(route))
	for _, p := range route {
		onRoute[p] = true
	}

	var b strings.Builder
	for row := 0; row < g.height; row++ {
		for col := 0; col < g.width; col++ {
			t := g.TileAt(row, col)
			if onRoute[Position{Row: row, Col: col}] && t != TileStart && t != TileExit {
				b.WriteByte('*')
			} else {
				b.WriteRune(t.Rune())
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
