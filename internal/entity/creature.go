package entity

import (
	"math/rand"

	"github.com/samdwyer/roomcrawl/internal/combat"
	"github.com/samdwyer/roomcrawl/internal/gamedata"
	"github.com/samdwyer/roomcrawl/internal/point"
)

// Grid is the view of a room a creature needs to decide where to step.
type Grid interface {
	// Walkable reports whether a creature may enter p: in bounds, open floor
	// and not occupied.
	Walkable(p point.Point) bool
}

// Creature is an AI-controlled occupant of a room.
type Creature interface {
	combat.Combatant
	combat.Attacker

	ID() ID
	Position() point.Point
	BaseStats() StatBlock
	CurrentStats() StatBlock

	// Update takes the creature's turn. It returns an attack on the player
	// when adjacent, otherwise it may move one tile.
	Update(player *Player, grid Grid) *combat.Attack
	// Collision reports whether a live creature stands on p.
	Collision(p point.Point) bool
	Draw() DrawOutput
}

// Spawner creates creatures for freshly generated rooms.
type Spawner interface {
	Spawn(id ID, pos point.Point) Creature
}

// EnemySpawner picks creature kinds from a weighted registry.
type EnemySpawner struct {
	registry *gamedata.EnemyRegistry
	rng      *rand.Rand
}

// NewEnemySpawner creates a spawner drawing from registry.
func NewEnemySpawner(registry *gamedata.EnemyRegistry, rng *rand.Rand) *EnemySpawner {
	return &EnemySpawner{registry: registry, rng: rng}
}

// Spawn creates an enemy at pos.
func (s *EnemySpawner) Spawn(id ID, pos point.Point) Creature {
	return NewEnemy(id, s.registry.SpawnRandom(s.rng), pos)
}
