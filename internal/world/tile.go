// Package world provides the dungeon map model: tiles, key sets,
// immutable grids, and map generation.
package world

// Tile represents a single map tile.
type Tile rune

const (
	// TileWall represents an impassable wall tile.
	TileWall Tile = '#'
	// TileFloor represents an open floor tile.
	TileFloor Tile = ' '
	// TileStart marks the searcher's starting cell. A grid holds at most one.
	TileStart Tile = 'S'
	// TileExit marks the exit cell. A grid holds at most one.
	TileExit Tile = 'E'
)

const (
	// firstDoor..lastDoor and firstKey..lastKey bound the door and key
	// alphabets. Door 'A' is opened by key 'a', 'B' by 'b', and so on.
	firstDoor Tile = 'A'
	lastDoor  Tile = 'F'
	firstKey  Tile = 'a'
	lastKey   Tile = 'f'
)

// NumKeys is the number of distinct key letters the alphabet defines.
const NumKeys = int(lastKey-firstKey) + 1

// IsWall returns true if the tile is a wall.
func (t Tile) IsWall() bool {
	return t == TileWall
}

// IsDoor returns true if the tile is a lettered door.
// TileExit falls inside the 'A'..'F' range lexically and must be carved out;
// TileStart sits outside the range but is guarded anyway so the rule does not
// silently change if the alphabet ever grows.
func (t Tile) IsDoor() bool {
	return t >= firstDoor && t <= lastDoor && t != TileExit && t != TileStart
}

// IsKey returns true if the tile is a collectible key.
func (t Tile) IsKey() bool {
	return t >= firstKey && t <= lastKey
}

// IsPassable returns true if the tile can be walked on without any keys.
// Walls and doors block; everything else (floor, start, exit, keys, and any
// rune outside the alphabet) is open. Key-aware search must not use this:
// it treats only walls as blocking and applies door logic separately.
func (t Tile) IsPassable() bool {
	return !t.IsWall() && !t.IsDoor()
}

// Key returns the key tile that opens this door. The result is only
// meaningful when IsDoor is true.
func (t Tile) Key() Tile {
	return t - firstDoor + firstKey
}

// Rune returns the tile's display character.
func (t Tile) Rune() rune {
	return rune(t)
}

// Position identifies a grid cell by row and column. It is a comparable
// value type, usable directly as a map or set key.
type Position struct {
	Row, Col int
}
