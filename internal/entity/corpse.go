package entity

import "github.com/samdwyer/roomcrawl/internal/point"

// Corpse is what remains of a creature after it is removed from a room.
type Corpse struct {
	id   ID
	name string
	pos  point.Point
}

// NewCorpse records the death of creature id at pos.
func NewCorpse(id ID, name string, pos point.Point) *Corpse {
	return &Corpse{id: id, name: name, pos: pos}
}

// ID returns the id of the creature that died.
func (c *Corpse) ID() ID { return c.id }

// Name returns the dead creature's name.
func (c *Corpse) Name() string { return c.name }

// Position returns where the creature died.
func (c *Corpse) Position() point.Point { return c.pos }

// Draw renders the corpse in grey.
func (c *Corpse) Draw() DrawOutput {
	return DrawOutput{
		Position: c.pos,
		FG:       CorpseGray,
		BG:       BackgroundGray,
		Glyph:    '%',
	}
}
