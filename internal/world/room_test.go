package world

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samdwyer/roomcrawl/internal/combat"
	"github.com/samdwyer/roomcrawl/internal/entity"
	"github.com/samdwyer/roomcrawl/internal/gamedata"
	"github.com/samdwyer/roomcrawl/internal/point"
)

var goblinDef = &gamedata.EnemyDef{
	ID:           "goblin",
	Name:         "a Goblin",
	Glyph:        "g",
	Strength:     2,
	Dexterity:    2,
	Intelligence: 2,
	SpawnWeight:  1,
}

var (
	warriorDef  = &gamedata.ClassDef{ID: "warrior", Name: "Warrior", Strength: 10, Dexterity: 10, Intelligence: 10}
	weaklingDef = &gamedata.ClassDef{ID: "weakling", Name: "Weakling", Strength: 2, Dexterity: 2, Intelligence: 2}
	titanDef    = &gamedata.ClassDef{ID: "titan", Name: "Titan", Strength: 1000, Dexterity: 1, Intelligence: 1}
)

// assertOccupancy checks every live creature's tile claims it and no other
// tile does.
func assertOccupancy(t *testing.T, r *Room) {
	t.Helper()
	claims := make(map[entity.ID]int)
	for _, tile := range r.Tiles() {
		if tile.Occupied {
			claims[tile.Occupant]++
		}
	}
	for id, c := range r.Creatures() {
		if !c.IsAlive() {
			continue
		}
		tile := r.Tile(c.Position())
		assert.True(t, tile.Occupied, "creature %d at %v", id, c.Position())
		assert.Equal(t, id, tile.Occupant)
		assert.Equal(t, 1, claims[id], "creature %d claimed by %d tiles", id, claims[id])
	}
}

func addGoblin(t *testing.T, r *Room, id entity.ID, pos point.Point) *entity.Enemy {
	t.Helper()
	g := entity.NewEnemy(id, goblinDef, pos)
	require.NoError(t, r.AddCreature(g))
	return g
}

func TestNewRoomLayout(t *testing.T) {
	r := NewRoom(6, 5)
	assert.Equal(t, 6, r.Width())
	assert.Equal(t, 5, r.Height())
	assert.Len(t, r.Tiles(), 30)
	assert.Equal(t, point.Pt(1, 1), r.InitialPosition())

	for y := range 5 {
		for x := range 6 {
			p := point.Pt(x, y)
			border := x == 0 || y == 0 || x == 5 || y == 4
			if border {
				assert.Equal(t, TileWall, r.Tile(p).Kind, "tile %v", p)
			} else {
				assert.Equal(t, TileFloor, r.Tile(p).Kind, "tile %v", p)
			}
		}
	}
}

func TestNewRoomWidensTinySides(t *testing.T) {
	r := NewRoom(1, 2)
	assert.Equal(t, 3, r.Width())
	assert.Equal(t, 3, r.Height())
	assert.True(t, r.ValidPosition(point.Pt(1, 1)))
}

func TestRoomPositionChecks(t *testing.T) {
	r := NewRoom(5, 5)
	r.AddNeighbor(point.East, 1, rand.New(rand.NewSource(1)))
	exit := r.entrances[0].Location.Add(point.East.Delta())

	tests := []struct {
		name     string
		pos      point.Point
		valid    bool
		walkable bool
	}{
		{"floor", point.Pt(2, 2), true, true},
		{"wall", point.Pt(0, 2), false, false},
		{"exit", exit, true, false},
		{"out of bounds", point.Pt(5, 2), false, false},
		{"negative", point.Pt(-1, 0), false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, r.ValidPosition(tt.pos))
			assert.Equal(t, tt.walkable, r.Walkable(tt.pos))
		})
	}

	assert.Equal(t, TileWall, r.Tile(point.Pt(40, 40)).Kind, "out of bounds reads as wall")
}

func TestRoomAddNeighbor(t *testing.T) {
	for _, dir := range point.Directions {
		t.Run(dir.String(), func(t *testing.T) {
			for seed := range int64(30) {
				r := NewRoom(7, 5)
				r.AddNeighbor(dir, 3, rand.New(rand.NewSource(seed)))

				var exits []point.Point
				for i, tile := range r.Tiles() {
					if tile.Kind == TileExit {
						exits = append(exits, point.FromIndex(i, r.Width()))
						assert.Equal(t, Exit{Room: 3, Direction: dir}, tile.Exit)
					}
				}
				require.Len(t, exits, 1)
				exit := exits[0]

				// On the dir wall and never a corner.
				switch dir {
				case point.North:
					assert.Equal(t, 0, exit.Y)
				case point.South:
					assert.Equal(t, 4, exit.Y)
				case point.East:
					assert.Equal(t, 6, exit.X)
				case point.West:
					assert.Equal(t, 0, exit.X)
				}
				corner := (exit.X == 0 || exit.X == 6) && (exit.Y == 0 || exit.Y == 4)
				assert.False(t, corner, "exit %v on a corner", exit)

				entrance, err := r.EnteringPosition(dir)
				require.NoError(t, err)
				assert.Equal(t, exit, entrance.Add(dir.Delta()))
				assert.Equal(t, TileFloor, r.Tile(entrance).Kind)
			}
		})
	}
}

func TestEnteringPositionWithoutEntrance(t *testing.T) {
	r := NewRoom(5, 5)
	r.AddNeighbor(point.North, 1, rand.New(rand.NewSource(1)))

	_, err := r.EnteringPosition(point.South)
	assert.ErrorIs(t, err, ErrNoMatchingEntrance)
}

func TestAddCreatureRejectsUnavailableTiles(t *testing.T) {
	r := NewRoom(5, 5)
	addGoblin(t, r, 1, point.Pt(2, 2))

	err := r.AddCreature(entity.NewEnemy(2, goblinDef, point.Pt(2, 2)))
	assert.ErrorIs(t, err, ErrTileUnavailable, "occupied")

	err = r.AddCreature(entity.NewEnemy(3, goblinDef, point.Pt(0, 2)))
	assert.ErrorIs(t, err, ErrTileUnavailable, "wall")

	assert.Len(t, r.Creatures(), 1)
	assertOccupancy(t, r)
}

func TestPlayerBumpAttack(t *testing.T) {
	r := NewRoom(10, 10)
	goblin := addGoblin(t, r, 7, point.Pt(2, 1))
	player := entity.NewPlayer("Hero", warriorDef, point.Pt(1, 1))
	log := combat.NewLog(10)

	health := goblin.CurrentStats().Health
	r.HandlePlayerInput(player, point.Pt(2, 1), log)

	assert.Equal(t, health-(warriorDef.Strength*3)/2, goblin.CurrentStats().Health)
	assert.Equal(t, 1, log.Len())
	target, ok := player.Target()
	require.True(t, ok)
	assert.Equal(t, entity.ID(7), target)
}

func TestPlayerBlockedBySurvivor(t *testing.T) {
	r := NewRoom(10, 10)
	goblin := addGoblin(t, r, 1, point.Pt(2, 1))
	player := entity.NewPlayer("Weakling", weaklingDef, point.Pt(1, 1))

	tile := r.HandlePlayerInput(player, point.Pt(2, 1), nil)

	assert.Equal(t, TileFloor, tile.Kind)
	assert.True(t, goblin.IsAlive())
	assert.Equal(t, point.Pt(1, 1), player.Position(), "a surviving creature blocks the move")
	assertOccupancy(t, r)
}

func TestPlayerMovesOntoKilledCreature(t *testing.T) {
	r := NewRoom(10, 10)
	goblin := addGoblin(t, r, 1, point.Pt(2, 1))
	player := entity.NewPlayer("Hero", warriorDef, point.Pt(1, 1))

	r.HandlePlayerInput(player, point.Pt(2, 1), nil)
	assert.False(t, goblin.IsAlive())
	assert.Equal(t, point.Pt(2, 1), player.Position())

	r.Step(player)
	assert.Empty(t, r.Creatures())
	require.Contains(t, r.Corpses(), entity.ID(1))
	assert.Equal(t, point.Pt(2, 1), r.Corpses()[1].Position())
	assert.Equal(t, "a Goblin", r.Corpses()[1].Name())

	tile := r.Tile(point.Pt(2, 1))
	assert.False(t, tile.Occupied)
	assert.Equal(t, []entity.ID{1}, tile.Corpses)
	_, ok := player.Target()
	assert.False(t, ok, "target cleared once the creature is buried")
}

func TestPlayerMoveRules(t *testing.T) {
	r := NewRoom(5, 5)
	player := entity.NewPlayer("Hero", warriorDef, point.Pt(1, 1))

	tile := r.HandlePlayerInput(player, point.Pt(0, 1), nil)
	assert.Equal(t, TileWall, tile.Kind)
	assert.Equal(t, point.Pt(1, 1), player.Position())
	assert.Equal(t, point.West, player.Facing(), "bumping a wall still turns the player")

	tile = r.HandlePlayerInput(player, point.Pt(1, 2), nil)
	assert.Equal(t, TileFloor, tile.Kind)
	assert.Equal(t, point.Pt(1, 2), player.Position())
	assert.Equal(t, point.South, player.Facing())
}

func TestHandlePlayerAttackUsesFacing(t *testing.T) {
	r := NewRoom(10, 10)
	goblin := addGoblin(t, r, 4, point.Pt(1, 2))
	player := entity.NewPlayer("Weakling", weaklingDef, point.Pt(1, 1))
	log := combat.NewLog(10)

	assert.False(t, r.HandlePlayerAttack(player, log), "facing east at empty floor")
	assert.Equal(t, 0, log.Len())

	player.Face(point.South)
	assert.True(t, r.HandlePlayerAttack(player, log))
	assert.Equal(t, 1, goblin.CurrentStats().Health)
	assert.Equal(t, point.Pt(1, 1), player.Position())
	assert.Equal(t, 1, log.Len())
}

func TestRoomTargetAt(t *testing.T) {
	r := NewRoom(10, 10)
	addGoblin(t, r, 9, point.Pt(5, 5))
	player := entity.NewPlayer("Hero", warriorDef, point.Pt(1, 1))

	assert.False(t, r.TargetAt(player, point.Pt(4, 4)))
	_, ok := player.Target()
	assert.False(t, ok)

	assert.True(t, r.TargetAt(player, point.Pt(5, 5)))
	target, _ := player.Target()
	assert.Equal(t, entity.ID(9), target)
}

func TestGoblinGreedyStepInRoom(t *testing.T) {
	r := NewRoom(10, 10)
	goblin := addGoblin(t, r, 1, point.Pt(2, 4))
	player := entity.NewPlayer("Hero", warriorDef, point.Pt(5, 5))

	r.Step(player)

	assert.Equal(t, point.Pt(3, 4), goblin.Position(), "steps along the larger X axis")
	assert.Equal(t, player.BaseStats().Health, player.CurrentStats().Health)
	assert.False(t, r.Tile(point.Pt(2, 4)).Occupied)
	assertOccupancy(t, r)
}

func TestGoblinWaitsWhenStepIsOccupied(t *testing.T) {
	r := NewRoom(10, 10)
	mover := addGoblin(t, r, 1, point.Pt(2, 4))
	blocker := addGoblin(t, r, 2, point.Pt(3, 4))
	player := entity.NewPlayer("Hero", warriorDef, point.Pt(5, 5))

	r.Step(player)

	assert.Equal(t, point.Pt(2, 4), mover.Position(), "lower id acts first and finds the tile taken")
	assert.Equal(t, point.Pt(4, 4), blocker.Position())
	assert.Equal(t, player.BaseStats().Health, player.CurrentStats().Health, "no attack this turn")
	assertOccupancy(t, r)
}

func TestGoblinAttacksAdjacentPlayer(t *testing.T) {
	r := NewRoom(10, 10)
	goblin := addGoblin(t, r, 1, point.Pt(3, 2))
	player := entity.NewPlayer("Hero", warriorDef, point.Pt(2, 2))

	r.Step(player)

	assert.Equal(t, point.Pt(3, 2), goblin.Position())
	assert.Equal(t, player.BaseStats().Health-goblinDef.Strength, player.CurrentStats().Health)
}

func TestRoomStepKeepsOccupancy(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	spawner := entity.NewEnemySpawner(gamedata.NewEnemyRegistry([]gamedata.EnemyDef{*goblinDef}), rng)
	ids := &entity.IDAllocator{}

	for range 20 {
		r := NewRoom(5+rng.Intn(11), 5+rng.Intn(11))
		r.Populate(spawner, ids, rng, DefaultCreatureDensity)
		player := entity.NewPlayer("Titan", titanDef, r.InitialPosition())
		assertOccupancy(t, r)

		for range 15 {
			r.Step(player)
			assertOccupancy(t, r)
		}
	}
}

func TestPopulate(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	spawner := entity.NewEnemySpawner(gamedata.NewEnemyRegistry([]gamedata.EnemyDef{*goblinDef}), rng)
	ids := &entity.IDAllocator{}

	r := NewRoom(12, 12)
	r.AddNeighbor(point.North, 1, rng)
	entrance, err := r.EnteringPosition(point.North)
	require.NoError(t, err)

	n := r.Populate(spawner, ids, rng, DefaultCreatureDensity)
	interior := 10 * 10
	assert.GreaterOrEqual(t, n, 1)
	assert.LessOrEqual(t, n, interior/DefaultCreatureDensity)
	assert.Len(t, r.Creatures(), n)

	for _, c := range r.Creatures() {
		assert.NotEqual(t, r.InitialPosition(), c.Position())
		assert.NotEqual(t, entrance, c.Position())
	}
	assertOccupancy(t, r)
}

func TestNearestFree(t *testing.T) {
	r := NewRoom(5, 5)
	addGoblin(t, r, 1, point.Pt(1, 1))

	p, ok := r.NearestFree(point.Pt(2, 2))
	require.True(t, ok)
	assert.Equal(t, point.Pt(2, 2), p)

	p, ok = r.NearestFree(point.Pt(1, 1))
	require.True(t, ok)
	assert.Equal(t, 1, max(p.Sub(point.Pt(1, 1)).Abs().X, p.Sub(point.Pt(1, 1)).Abs().Y))
	assert.True(t, r.Walkable(p))
}
