// Package entity provides the player, creatures and their corpses.
package entity

import "sync/atomic"

// ID identifies a creature for the lifetime of a world. Zero means "none".
type ID uint64

// IDAllocator hands out monotonically increasing ids. One allocator is shared
// by every room of a world so that corpse and target references stay
// unambiguous across rooms.
type IDAllocator struct {
	last atomic.Uint64
}

// Next returns a fresh id, starting at 1.
func (a *IDAllocator) Next() ID {
	return ID(a.last.Add(1))
}
