package world

import (
	"context"
	"errors"
	"fmt"
	"math/rand"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/roomcrawl/internal/combat"
	"github.com/samdwyer/roomcrawl/internal/entity"
	"github.com/samdwyer/roomcrawl/internal/graph"
	"github.com/samdwyer/roomcrawl/internal/logger"
	"github.com/samdwyer/roomcrawl/internal/point"
	"github.com/samdwyer/roomcrawl/internal/telemetry"
)

// Dungeon is a stack of floors, each a graph of rooms, with one active room.
type Dungeon struct {
	depth  int
	floors []*graph.Graph[*Room]

	activeFloor int
	activeRoom  graph.NodeID

	entranceFloor int
	entranceRoom  graph.NodeID
}

// NewDungeon generates the first floor of a dungeon and makes its entrance
// room active.
func NewDungeon(
	ctx context.Context,
	depth int,
	opts Options,
	rng *rand.Rand,
	ids *entity.IDAllocator,
	spawner entity.Spawner,
) (*Dungeon, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	start := point.Pt(rng.Intn(opts.GridWidth), rng.Intn(opts.GridHeight))
	floor := graph.New[*Room]()
	builder, err := NewDungeonBuilder(start, opts, floor, rng, ids, spawner)
	if err != nil {
		return nil, err
	}
	entrance, err := builder.BuildFloor(ctx)
	if err != nil {
		return nil, fmt.Errorf("build floor 0: %w", err)
	}

	return NewDungeonFromFloors(depth, []*graph.Graph[*Room]{floor}, entrance)
}

// NewDungeonFromFloors wraps already built floors. The entrance room on the
// first floor becomes active.
func NewDungeonFromFloors(depth int, floors []*graph.Graph[*Room], entrance graph.NodeID) (*Dungeon, error) {
	d := &Dungeon{
		depth:        depth,
		floors:       floors,
		activeRoom:   entrance,
		entranceRoom: entrance,
	}
	if _, err := d.ActiveRoom(); err != nil {
		return nil, err
	}
	return d, nil
}

// Kind identifies the dungeon as a world node.
func (d *Dungeon) Kind() NodeKind { return NodeDungeon }

// Depth returns the number of floors the dungeon was created with.
func (d *Dungeon) Depth() int { return d.depth }

// Floor returns the room graph of a floor.
func (d *Dungeon) Floor(i int) (*graph.Graph[*Room], bool) {
	if i < 0 || i >= len(d.floors) {
		return nil, false
	}
	return d.floors[i], true
}

// ActiveFloor returns the index of the floor the player is on.
func (d *Dungeon) ActiveFloor() int { return d.activeFloor }

// ActiveRoomID returns the id of the room the player is in.
func (d *Dungeon) ActiveRoomID() graph.NodeID { return d.activeRoom }

func (d *Dungeon) room(floor int, id graph.NodeID) (*Room, error) {
	f, ok := d.Floor(floor)
	if !ok {
		return nil, fmt.Errorf("floor %d of %d: %w", floor, len(d.floors), ErrInvalidRoomReference)
	}
	r, ok := f.Get(id)
	if !ok || r == nil {
		return nil, fmt.Errorf("room %d on floor %d: %w", id, floor, ErrInvalidRoomReference)
	}
	return r, nil
}

// ActiveRoom returns the room the player is in.
func (d *Dungeon) ActiveRoom() (*Room, error) {
	return d.room(d.activeFloor, d.activeRoom)
}

// StartingPosition returns the spawn tile of the entrance room.
func (d *Dungeon) StartingPosition() (point.Point, error) {
	r, err := d.room(d.entranceFloor, d.entranceRoom)
	if err != nil {
		return point.Point{}, err
	}
	return r.InitialPosition(), nil
}

// ValidPosition reports whether the player may stand on p in the active room.
func (d *Dungeon) ValidPosition(p point.Point) bool {
	r, err := d.ActiveRoom()
	return err == nil && r.ValidPosition(p)
}

// Creatures returns the live creatures of the active room.
func (d *Dungeon) Creatures() map[entity.ID]entity.Creature {
	r, err := d.ActiveRoom()
	if err != nil {
		return nil
	}
	return r.Creatures()
}

// Step advances the creatures of the active room by one turn.
func (d *Dungeon) Step(_ context.Context, player *entity.Player) error {
	r, err := d.ActiveRoom()
	if err != nil {
		return err
	}
	r.Step(player)
	return nil
}

// HandlePlayerInput resolves a move or bump attack toward pos. Stepping on an
// exit moves the player to the matching entrance of the room beyond it.
func (d *Dungeon) HandlePlayerInput(ctx context.Context, player *entity.Player, pos point.Point, log combat.Logger) error {
	r, err := d.ActiveRoom()
	if err != nil {
		return err
	}
	tile := r.HandlePlayerInput(player, pos, log)
	if tile.Kind != TileExit || player.Position() != pos {
		return nil
	}
	return d.transition(ctx, player, tile.Exit)
}

// HandlePlayerAttack attacks the tile the player faces.
func (d *Dungeon) HandlePlayerAttack(_ context.Context, player *entity.Player, log combat.Logger) error {
	r, err := d.ActiveRoom()
	if err != nil {
		return err
	}
	r.HandlePlayerAttack(player, log)
	return nil
}

// TargetAt selects the creature on p in the active room.
func (d *Dungeon) TargetAt(player *entity.Player, p point.Point) bool {
	r, err := d.ActiveRoom()
	return err == nil && r.TargetAt(player, p)
}

func (d *Dungeon) transition(ctx context.Context, player *entity.Player, exit Exit) error {
	tracer := telemetry.Tracer("world")
	_, span := tracer.Start(ctx, "dungeon.transition")
	defer span.End()

	dest, err := d.room(d.activeFloor, exit.Room)
	if err != nil {
		span.RecordError(err)
		return err
	}

	// Leaving north arrives through the south side of the next room.
	side := exit.Direction.Invert()
	pos, err := dest.EnteringPosition(side)
	if err != nil {
		if !errors.Is(err, ErrNoMatchingEntrance) {
			return err
		}
		logger.Component("world").
			WithField("room", exit.Room).
			WithError(err).
			Warn("entering room without a matching entrance")
		pos = dest.InitialPosition()
	}
	if !dest.Walkable(pos) {
		if free, ok := dest.NearestFree(pos); ok {
			pos = free
		}
	}

	span.SetAttributes(
		attribute.Int("dungeon.from_room", int(d.activeRoom)),
		attribute.Int("dungeon.to_room", int(exit.Room)),
		attribute.String("dungeon.direction", exit.Direction.String()),
	)

	logger.Component("world").
		WithField("from", d.activeRoom).
		WithField("to", exit.Room).
		WithField("direction", exit.Direction.String()).
		Info("entered room")

	d.activeRoom = exit.Room
	player.Teleport(pos, exit.Direction)
	player.ClearTarget()
	return nil
}
