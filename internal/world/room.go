package world

// room is a rectangular carved area used during map generation.
// Coordinates are row/col of the top-left corner.
type room struct {
	row, col      int
	height, width int
}

// center returns the room's center cell.
func (r room) center() Position {
	return Position{Row: r.row + r.height/2, Col: r.col + r.width/2}
}
