package world

import (
	"fmt"
	"maps"
	"math/rand"
	"slices"

	"github.com/samdwyer/roomcrawl/internal/combat"
	"github.com/samdwyer/roomcrawl/internal/entity"
	"github.com/samdwyer/roomcrawl/internal/graph"
	"github.com/samdwyer/roomcrawl/internal/point"
)

// Entrance is the floor tile just inside an exit, where the player arrives.
type Entrance struct {
	Location  point.Point
	Direction point.Direction // Side of the room the matching exit is on
}

// Room is a walled rectangle of tiles holding creatures and corpses.
type Room struct {
	width     int
	height    int
	spawn     point.Point
	tiles     []Tile
	entrances []Entrance
	creatures map[entity.ID]entity.Creature
	corpses   map[entity.ID]*entity.Corpse
}

// NewRoom creates a room with walls on the border and floor inside. Sides
// shorter than three tiles are widened to three.
func NewRoom(width, height int) *Room {
	width = max(width, minRoomSize)
	height = max(height, minRoomSize)

	tiles := make([]Tile, width*height)
	for i := range tiles {
		p := point.FromIndex(i, width)
		if p.X == 0 || p.Y == 0 || p.X == width-1 || p.Y == height-1 {
			tiles[i].Kind = TileWall
		} else {
			tiles[i].Kind = TileFloor
		}
	}

	return &Room{
		width:     width,
		height:    height,
		spawn:     point.Pt(1, 1),
		tiles:     tiles,
		creatures: make(map[entity.ID]entity.Creature),
		corpses:   make(map[entity.ID]*entity.Corpse),
	}
}

// Width returns the room width in tiles.
func (r *Room) Width() int { return r.width }

// Height returns the room height in tiles.
func (r *Room) Height() int { return r.height }

// Tiles returns the row-major tile slice.
func (r *Room) Tiles() []Tile { return r.tiles }

// InitialPosition returns where the player starts when entering the dungeon.
func (r *Room) InitialPosition() point.Point { return r.spawn }

// Creatures returns the live creatures keyed by id.
func (r *Room) Creatures() map[entity.ID]entity.Creature { return r.creatures }

// Corpses returns the dead creatures keyed by id.
func (r *Room) Corpses() map[entity.ID]*entity.Corpse { return r.corpses }

// InBounds returns true if p lies within the room.
func (r *Room) InBounds(p point.Point) bool {
	return p.In(r.width, r.height)
}

// Tile returns the tile at p. Out of bounds positions read as wall.
func (r *Room) Tile(p point.Point) Tile {
	if !r.InBounds(p) {
		return Tile{Kind: TileWall}
	}
	return r.tiles[p.Index(r.width)]
}

func (r *Room) tileAt(p point.Point) *Tile {
	return &r.tiles[p.Index(r.width)]
}

// ValidPosition returns true if the player may stand on p.
func (r *Room) ValidPosition(p point.Point) bool {
	return r.InBounds(p) && r.tileAt(p).IsPassable()
}

// Walkable returns true if a creature may enter p. Creatures stay on open
// floor and never share a tile.
func (r *Room) Walkable(p point.Point) bool {
	if !r.InBounds(p) {
		return false
	}
	t := r.tileAt(p)
	return t.Kind == TileFloor && !t.Occupied
}

// AddNeighbor places an exit to room on the wall facing dir, at a random
// non-corner offset, with an entrance one tile inside.
func (r *Room) AddNeighbor(dir point.Direction, room graph.NodeID, rng *rand.Rand) {
	var exit point.Point
	switch dir {
	case point.North:
		exit = point.Pt(1+rng.Intn(r.width-2), 0)
	case point.South:
		exit = point.Pt(1+rng.Intn(r.width-2), r.height-1)
	case point.East:
		exit = point.Pt(r.width-1, 1+rng.Intn(r.height-2))
	case point.West:
		exit = point.Pt(0, 1+rng.Intn(r.height-2))
	}

	t := r.tileAt(exit)
	t.Kind = TileExit
	t.Exit = Exit{Room: room, Direction: dir}

	r.entrances = append(r.entrances, Entrance{
		Location:  exit.Add(dir.Invert().Delta()),
		Direction: dir,
	})
}

// EnteringPosition returns the entrance on the dir side of the room.
func (r *Room) EnteringPosition(dir point.Direction) (point.Point, error) {
	for _, e := range r.entrances {
		if e.Direction == dir {
			return e.Location, nil
		}
	}
	return point.Point{}, fmt.Errorf("%s side: %w", dir, ErrNoMatchingEntrance)
}

func (r *Room) isEntrance(p point.Point) bool {
	for _, e := range r.entrances {
		if e.Location == p {
			return true
		}
	}
	return false
}

// AddCreature places c on its position.
func (r *Room) AddCreature(c entity.Creature) error {
	pos := c.Position()
	if !r.Walkable(pos) {
		return fmt.Errorf("creature %d at %v: %w", c.ID(), pos, ErrTileUnavailable)
	}
	r.creatures[c.ID()] = c
	r.occupy(pos, c.ID())
	return nil
}

// Populate spawns between one and interior/density creatures on free floor,
// avoiding the spawn point and entrances. It returns the number spawned.
func (r *Room) Populate(spawner entity.Spawner, ids *entity.IDAllocator, rng *rand.Rand, density int) int {
	var candidates []point.Point
	for i, t := range r.tiles {
		p := point.FromIndex(i, r.width)
		if t.Kind != TileFloor || t.Occupied || p == r.spawn || r.isEntrance(p) {
			continue
		}
		candidates = append(candidates, p)
	}
	if len(candidates) == 0 {
		return 0
	}

	interior := (r.width - 2) * (r.height - 2)
	count := min(1+rng.Intn(max(1, interior/max(density, 1))), len(candidates))
	rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})

	spawned := 0
	for _, p := range candidates[:count] {
		if err := r.AddCreature(spawner.Spawn(ids.Next(), p)); err == nil {
			spawned++
		}
	}
	return spawned
}

// CreatureAt returns the live creature standing on p.
func (r *Room) CreatureAt(p point.Point) (entity.Creature, bool) {
	for _, id := range r.creatureOrder() {
		if c := r.creatures[id]; c.Collision(p) {
			return c, true
		}
	}
	return nil, false
}

func (r *Room) creatureOrder() []entity.ID {
	return slices.Sorted(maps.Keys(r.creatures))
}

func (r *Room) occupy(p point.Point, id entity.ID) {
	if !r.InBounds(p) {
		return
	}
	t := r.tileAt(p)
	t.Occupied = true
	t.Occupant = id
}

func (r *Room) vacate(p point.Point, id entity.ID) {
	if !r.InBounds(p) {
		return
	}
	if t := r.tileAt(p); t.Occupant == id {
		t.Occupied = false
		t.Occupant = 0
	}
}

// Step runs one turn for every creature in ascending id order. Creatures
// killed since the last turn become corpses instead of acting.
func (r *Room) Step(player *entity.Player) {
	var dead []entity.ID
	for _, id := range r.creatureOrder() {
		c := r.creatures[id]
		if !c.IsAlive() {
			dead = append(dead, id)
			continue
		}

		before := c.Position()
		if attack := c.Update(player, r); attack != nil && player.IsAlive() {
			player.ReceiveAttack(*attack)
		}
		if after := c.Position(); after != before {
			r.vacate(before, id)
			r.occupy(after, id)
		}
	}

	for _, id := range dead {
		r.bury(id, player)
	}
}

func (r *Room) bury(id entity.ID, player *entity.Player) {
	c, ok := r.creatures[id]
	if !ok {
		return
	}
	pos := c.Position()
	r.vacate(pos, id)
	if r.InBounds(pos) {
		t := r.tileAt(pos)
		t.Corpses = append(t.Corpses, id)
	}
	r.corpses[id] = entity.NewCorpse(id, c.GetName(), pos)
	delete(r.creatures, id)

	if target, ok := player.Target(); ok && target == id {
		player.ClearTarget()
	}
}

// strikeAt attacks every live creature on p. It reports whether any of them
// survived and still blocks the tile.
func (r *Room) strikeAt(player *entity.Player, p point.Point, log combat.Logger) (hit, blocked bool) {
	for _, id := range r.creatureOrder() {
		c := r.creatures[id]
		if !c.Collision(p) {
			continue
		}
		hit = true
		player.SetTarget(id)
		if result := combat.Strike(player, c, log); result.TargetAlive {
			blocked = true
		}
	}
	return hit, blocked
}

// HandlePlayerInput attacks anything on pos and otherwise moves the player
// there if the tile allows it. It returns the tile at pos so the caller can
// detect an exit.
func (r *Room) HandlePlayerInput(player *entity.Player, pos point.Point, log combat.Logger) Tile {
	if d, ok := point.DirectionOf(pos.Sub(player.Position())); ok {
		player.Face(d)
	}
	_, blocked := r.strikeAt(player, pos, log)
	if !blocked && r.ValidPosition(pos) {
		player.MoveTo(pos)
	}
	return r.Tile(pos)
}

// HandlePlayerAttack attacks the tile the player faces without moving.
func (r *Room) HandlePlayerAttack(player *entity.Player, log combat.Logger) bool {
	hit, _ := r.strikeAt(player, player.Position().Add(player.Facing().Delta()), log)
	return hit
}

// TargetAt selects the live creature on p, if any.
func (r *Room) TargetAt(player *entity.Player, p point.Point) bool {
	c, ok := r.CreatureAt(p)
	if !ok {
		return false
	}
	player.SetTarget(c.ID())
	return true
}

// NearestFree returns the closest unoccupied floor tile to p, searching in
// growing rings.
func (r *Room) NearestFree(p point.Point) (point.Point, bool) {
	limit := max(r.width, r.height)
	for radius := 0; radius <= limit; radius++ {
		for y := p.Y - radius; y <= p.Y+radius; y++ {
			for x := p.X - radius; x <= p.X+radius; x++ {
				q := point.Pt(x, y)
				if d := q.Sub(p).Abs(); max(d.X, d.Y) == radius && r.Walkable(q) {
					return q, true
				}
			}
		}
	}
	return point.Point{}, false
}
