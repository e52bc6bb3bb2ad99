package entity

import (
	"github.com/samdwyer/roomcrawl/internal/combat"
	"github.com/samdwyer/roomcrawl/internal/gamedata"
	"github.com/samdwyer/roomcrawl/internal/point"
)

// Player is the user-controlled adventurer.
type Player struct {
	name    string
	class   string
	pos     point.Point
	base    StatBlock
	current StatBlock
	facing  point.Direction

	target    ID
	hasTarget bool
}

// NewPlayer creates a player of the given class at pos, facing east.
func NewPlayer(name string, class *gamedata.ClassDef, pos point.Point) *Player {
	stats := NewStatBlock(class.Strength, class.Dexterity, class.Intelligence)
	return &Player{
		name:    name,
		class:   class.Name,
		pos:     pos,
		base:    stats,
		current: stats,
		facing:  point.East,
	}
}

// GetName returns the player's name.
func (p *Player) GetName() string { return p.name }

// Class returns the display name of the player's class.
func (p *Player) Class() string { return p.class }

// Position returns the player's tile.
func (p *Player) Position() point.Point { return p.pos }

// Facing returns the direction attacks are aimed at.
func (p *Player) Facing() point.Direction { return p.facing }

// Face turns the player without moving.
func (p *Player) Face(d point.Direction) { p.facing = d }

// MoveTo places the player on pos. A single orthogonal step also turns the
// player toward it; longer jumps keep the facing.
func (p *Player) MoveTo(pos point.Point) {
	if d, ok := point.DirectionOf(pos.Sub(p.pos)); ok {
		p.facing = d
	}
	p.pos = pos
}

// Teleport places the player in a new room facing d.
func (p *Player) Teleport(pos point.Point, d point.Direction) {
	p.pos = pos
	p.facing = d
}

// BaseStats returns the player's starting stats.
func (p *Player) BaseStats() StatBlock { return p.base }

// CurrentStats returns the player's stats after combat.
func (p *Player) CurrentStats() StatBlock { return p.current }

// IsAlive returns true while health is above zero.
func (p *Player) IsAlive() bool { return p.current.Health > 0 }

// SendAttack strikes the facing tile for one and a half times strength.
func (p *Player) SendAttack() combat.Attack {
	return combat.Attack{
		Type:     combat.AttackPiercing,
		Damage:   (p.current.Strength * 3) / 2,
		Position: p.pos.Add(p.facing.Delta()),
	}
}

// ReceiveAttack applies damage to the player.
func (p *Player) ReceiveAttack(attack combat.Attack) combat.Result {
	p.current.Health -= attack.Damage
	return combat.Result{
		Damage:      attack.Damage,
		TargetAlive: p.IsAlive(),
		TargetName:  p.name,
	}
}

// Target returns the creature the player last hit or selected.
func (p *Player) Target() (ID, bool) { return p.target, p.hasTarget }

// SetTarget selects a creature.
func (p *Player) SetTarget(id ID) {
	p.target = id
	p.hasTarget = true
}

// ClearTarget drops the selection.
func (p *Player) ClearTarget() {
	p.target = 0
	p.hasTarget = false
}

var (
	_ combat.Combatant = (*Player)(nil)
	_ combat.Attacker  = (*Player)(nil)
)
