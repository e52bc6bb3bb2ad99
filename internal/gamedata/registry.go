package gamedata

import (
	"errors"
	"fmt"
	"io/fs"
	"math/rand"
)

// ErrNoSpawnableEnemies is returned when no enemy definition has a positive
// spawn weight, so SpawnRandom could never pick one.
var ErrNoSpawnableEnemies = errors.New("no enemy with a positive spawn weight")

// EnemyRegistry holds loaded enemy definitions and provides spawning utilities.
type EnemyRegistry struct {
	enemies     []EnemyDef
	totalWeight int
}

// NewEnemyRegistry creates a registry from loaded enemy definitions.
// Non-positive weights never spawn.
func NewEnemyRegistry(enemies []EnemyDef) *EnemyRegistry {
	totalWeight := 0
	for _, e := range enemies {
		totalWeight += max(e.SpawnWeight, 0)
	}
	return &EnemyRegistry{
		enemies:     enemies,
		totalWeight: totalWeight,
	}
}

// LoadEnemyRegistry loads and creates a registry from the embedded enemies.json.
func LoadEnemyRegistry() (*EnemyRegistry, error) {
	return loadEnemyRegistry(dataFS)
}

func loadEnemyRegistry(fsys fs.FS) (*EnemyRegistry, error) {
	file, err := LoadFS[EnemiesFile](fsys, "enemies.json")
	if err != nil {
		return nil, err
	}
	if len(file.Enemies) == 0 {
		return nil, errors.New("no enemies loaded from enemies.json")
	}
	r := NewEnemyRegistry(file.Enemies)
	if !r.CanSpawn() {
		return nil, fmt.Errorf("enemies.json: %w", ErrNoSpawnableEnemies)
	}
	return r, nil
}

// CanSpawn reports whether SpawnRandom will return a definition.
func (r *EnemyRegistry) CanSpawn() bool {
	return r != nil && r.totalWeight > 0
}

// SpawnRandom selects a random enemy definition using weighted probability.
// Enemies with higher spawnWeight are more likely to be selected. It returns
// nil when CanSpawn is false.
func (r *EnemyRegistry) SpawnRandom(rng *rand.Rand) *EnemyDef {
	if !r.CanSpawn() {
		return nil
	}

	roll := rng.Intn(r.totalWeight)

	cumulative := 0
	for i := range r.enemies {
		cumulative += max(r.enemies[i].SpawnWeight, 0)
		if roll < cumulative {
			return &r.enemies[i]
		}
	}

	return &r.enemies[0]
}

// GetByID returns the enemy definition with the given ID, or nil if not found.
func (r *EnemyRegistry) GetByID(id string) *EnemyDef {
	for i := range r.enemies {
		if r.enemies[i].ID == id {
			return &r.enemies[i]
		}
	}
	return nil
}

// Only returns a registry that spawns nothing but the kind with the given id.
func (r *EnemyRegistry) Only(id string) (*EnemyRegistry, error) {
	def := r.GetByID(id)
	if def == nil {
		return nil, fmt.Errorf("unknown enemy %q", id)
	}
	only := NewEnemyRegistry([]EnemyDef{*def})
	if !only.CanSpawn() {
		return nil, fmt.Errorf("enemy %q: %w", id, ErrNoSpawnableEnemies)
	}
	return only, nil
}

// Count returns the number of enemy types in the registry.
func (r *EnemyRegistry) Count() int {
	return len(r.enemies)
}
