package entity

import (
	"github.com/samdwyer/roomcrawl/internal/combat"
	"github.com/samdwyer/roomcrawl/internal/gamedata"
	"github.com/samdwyer/roomcrawl/internal/point"
)

// Enemy is a hostile creature that chases the player greedily and attacks
// when orthogonally adjacent.
type Enemy struct {
	Def     *gamedata.EnemyDef
	id      ID
	pos     point.Point
	base    StatBlock
	current StatBlock
	facing  point.Direction
	alive   bool
}

// NewEnemy creates an enemy of the given kind at pos.
func NewEnemy(id ID, def *gamedata.EnemyDef, pos point.Point) *Enemy {
	stats := NewStatBlock(def.Strength, def.Dexterity, def.Intelligence)
	return &Enemy{
		Def:     def,
		id:      id,
		pos:     pos,
		base:    stats,
		current: stats,
		facing:  point.North,
		alive:   true,
	}
}

// ID returns the enemy's id.
func (e *Enemy) ID() ID { return e.id }

// GetName returns the name used in combat messages.
func (e *Enemy) GetName() string { return e.Def.Name }

// IsAlive returns false once health has dropped to zero or below.
func (e *Enemy) IsAlive() bool { return e.alive }

// Position returns the enemy's tile.
func (e *Enemy) Position() point.Point { return e.pos }

// Facing returns the direction the enemy last turned to.
func (e *Enemy) Facing() point.Direction { return e.facing }

// BaseStats returns the stats the enemy spawned with.
func (e *Enemy) BaseStats() StatBlock { return e.base }

// CurrentStats returns the stats after combat.
func (e *Enemy) CurrentStats() StatBlock { return e.current }

// SendAttack strikes the tile the enemy faces for its current strength.
func (e *Enemy) SendAttack() combat.Attack {
	return combat.Attack{
		Type:     combat.AttackPiercing,
		Damage:   e.current.Strength,
		Position: e.pos.Add(e.facing.Delta()),
	}
}

// ReceiveAttack applies damage.
func (e *Enemy) ReceiveAttack(attack combat.Attack) combat.Result {
	e.current.Health -= attack.Damage
	if e.current.Health <= 0 {
		e.alive = false
	}
	return combat.Result{
		Damage:      attack.Damage,
		TargetAlive: e.alive,
		TargetName:  e.Def.Name,
	}
}

// Collision reports whether the enemy is alive and standing on p.
func (e *Enemy) Collision(p point.Point) bool {
	return e.alive && p == e.pos
}

// Update attacks the player when adjacent, otherwise takes one step toward
// them along the axis with the larger distance (X on ties). A blocked step
// means waiting this turn.
func (e *Enemy) Update(player *Player, grid Grid) *combat.Attack {
	if !e.alive {
		return nil
	}

	target := player.Position()
	delta := target.Sub(e.pos)

	if e.pos.Adjacent(target) {
		if d, ok := point.DirectionOf(delta); ok {
			e.facing = d
		}
		attack := e.SendAttack()
		return &attack
	}

	step := delta.Sign()
	dist := delta.Abs()
	if dist.Y > dist.X {
		step.X = 0
	} else {
		step.Y = 0
	}
	if step == (point.Point{}) {
		return nil
	}

	next := e.pos.Add(step)
	if next == target || !grid.Walkable(next) {
		return nil
	}
	if d, ok := point.DirectionOf(step); ok {
		e.facing = d
	}
	e.pos = next
	return nil
}

// Draw colours the glyph by remaining health.
func (e *Enemy) Draw() DrawOutput {
	return DrawOutput{
		Position: e.pos,
		FG:       HealthColor(e.current.Health, e.base.Health),
		BG:       BackgroundGray,
		Glyph:    e.Def.GlyphRune(),
	}
}

var _ Creature = (*Enemy)(nil)
