package world

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidRoomReference means a floor or room index does not exist.
	// It indicates a generation bug; sessions should stop when they see it.
	ErrInvalidRoomReference = errors.New("invalid room reference")
	// ErrNoMatchingEntrance means a room has no entrance for a direction.
	ErrNoMatchingEntrance = errors.New("no matching entrance")
	// ErrInvalidOptions is returned for unusable generation options.
	ErrInvalidOptions = errors.New("invalid dungeon options")
	// ErrTileUnavailable is returned when placing a creature on a tile it
	// cannot occupy.
	ErrTileUnavailable = errors.New("tile unavailable")
)

const (
	// Default grid dimensions in rooms
	DefaultGridWidth  = 10
	DefaultGridHeight = 10
	DefaultNumRooms   = 10

	// Room dimensions in tiles, inclusive
	DefaultMinRoomSize = 5
	DefaultMaxRoomSize = 15

	// One creature slot per this many interior tiles
	DefaultCreatureDensity = 12

	minRoomSize = 3 // A wall on each side and one floor tile
)

// Options controls floor generation.
type Options struct {
	GridWidth       int
	GridHeight      int
	NumRooms        int
	MinRoomSize     int
	MaxRoomSize     int
	CreatureDensity int
}

// DefaultOptions returns the standard generation settings.
func DefaultOptions() Options {
	return Options{
		GridWidth:       DefaultGridWidth,
		GridHeight:      DefaultGridHeight,
		NumRooms:        DefaultNumRooms,
		MinRoomSize:     DefaultMinRoomSize,
		MaxRoomSize:     DefaultMaxRoomSize,
		CreatureDensity: DefaultCreatureDensity,
	}
}

// Validate checks the options are usable.
func (o Options) Validate() error {
	switch {
	case o.GridWidth < 1 || o.GridHeight < 1:
		return fmt.Errorf("grid %dx%d: %w", o.GridWidth, o.GridHeight, ErrInvalidOptions)
	case o.NumRooms < 1:
		return fmt.Errorf("room budget %d: %w", o.NumRooms, ErrInvalidOptions)
	case o.MinRoomSize < minRoomSize || o.MaxRoomSize < o.MinRoomSize:
		return fmt.Errorf("room size range %d..%d: %w", o.MinRoomSize, o.MaxRoomSize, ErrInvalidOptions)
	case o.CreatureDensity < 1:
		return fmt.Errorf("creature density %d: %w", o.CreatureDensity, ErrInvalidOptions)
	}
	return nil
}
