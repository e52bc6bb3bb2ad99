// Package world provides dungeon generation, room simulation and navigation
// between rooms.
package world

import (
	"github.com/samdwyer/roomcrawl/internal/entity"
	"github.com/samdwyer/roomcrawl/internal/graph"
	"github.com/samdwyer/roomcrawl/internal/point"
)

// TileKind is the terrain of a tile.
type TileKind rune

const (
	// TileWall is impassable.
	TileWall TileKind = '#'
	// TileFloor is open ground.
	TileFloor TileKind = '.'
	// TileExit links to a neighboring room.
	TileExit TileKind = '+'
)

// String returns the kind name used by the tile palette.
func (k TileKind) String() string {
	switch k {
	case TileWall:
		return "wall"
	case TileFloor:
		return "floor"
	case TileExit:
		return "exit"
	default:
		return "unknown"
	}
}

// Rune returns the tile's fallback display character.
func (k TileKind) Rune() rune {
	return rune(k)
}

// Collidable returns true if nothing can stand on the tile.
func (k TileKind) Collidable() bool {
	return k == TileWall
}

// Exit describes where an exit tile leads.
type Exit struct {
	Room      graph.NodeID    // Destination room on the same floor
	Direction point.Direction // Direction of travel when leaving through it
}

// Tile is one cell of a room.
type Tile struct {
	Kind     TileKind
	Exit     Exit // Only meaningful for TileExit
	Occupied bool
	Occupant entity.ID   // Live creature on the tile when Occupied
	Corpses  []entity.ID // Creatures that died here
}

// IsPassable returns true if the tile can be walked on.
func (t Tile) IsPassable() bool {
	return !t.Kind.Collidable()
}
