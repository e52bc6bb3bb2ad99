package world

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/zyedidia/generic/mapset"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/roomcrawl/internal/entity"
	"github.com/samdwyer/roomcrawl/internal/graph"
	"github.com/samdwyer/roomcrawl/internal/logger"
	"github.com/samdwyer/roomcrawl/internal/point"
	"github.com/samdwyer/roomcrawl/internal/telemetry"
)

// gridCell is one slot of the layout grid a floor is planned on.
type gridCell struct {
	hasRoom bool
	filled  bool
	node    graph.NodeID
}

// DungeonBuilder lays out one floor: it picks which grid cells hold rooms,
// creates a room per cell, links orthogonal neighbors with exits and spawns
// creatures.
type DungeonBuilder struct {
	opts      Options
	start     point.Point
	grid      []gridCell
	roomCount int
	order     []point.Point // Cells in node id order
	floor     *graph.Graph[*Room]
	rng       *rand.Rand
	ids       *entity.IDAllocator
	spawner   entity.Spawner
}

// NewDungeonBuilder creates a builder that fills floor starting from the
// start cell. A nil spawner builds empty rooms.
func NewDungeonBuilder(
	start point.Point,
	opts Options,
	floor *graph.Graph[*Room],
	rng *rand.Rand,
	ids *entity.IDAllocator,
	spawner entity.Spawner,
) (*DungeonBuilder, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if !start.In(opts.GridWidth, opts.GridHeight) {
		return nil, fmt.Errorf("start cell %v outside %dx%d grid: %w",
			start, opts.GridWidth, opts.GridHeight, ErrInvalidOptions)
	}
	if floor == nil || floor.Len() != 0 {
		return nil, fmt.Errorf("floor graph must be empty: %w", ErrInvalidOptions)
	}
	if ids == nil {
		ids = &entity.IDAllocator{}
	}

	return &DungeonBuilder{
		opts:    opts,
		start:   start,
		grid:    make([]gridCell, opts.GridWidth*opts.GridHeight),
		floor:   floor,
		rng:     rng,
		ids:     ids,
		spawner: spawner,
	}, nil
}

// RoomCount returns the number of grid cells marked for rooms.
func (b *DungeonBuilder) RoomCount() int { return b.roomCount }

func (b *DungeonBuilder) inGrid(p point.Point) bool {
	return p.In(b.opts.GridWidth, b.opts.GridHeight)
}

func (b *DungeonBuilder) cell(p point.Point) *gridCell {
	return &b.grid[p.Index(b.opts.GridWidth)]
}

// BuildFloor generates the floor and returns the entrance room.
func (b *DungeonBuilder) BuildFloor(ctx context.Context) (graph.NodeID, error) {
	tracer := telemetry.Tracer("world")
	_, span := tracer.Start(ctx, "dungeon.build_floor")
	defer span.End()

	startTime := time.Now()

	b.placeRooms()
	entrance, err := b.populateGraph()
	if err != nil {
		span.RecordError(err)
		return 0, err
	}
	creatures := b.spawnCreatures()

	span.SetAttributes(
		attribute.Int("dungeon.grid_width", b.opts.GridWidth),
		attribute.Int("dungeon.grid_height", b.opts.GridHeight),
		attribute.Int("dungeon.room_count", b.roomCount),
		attribute.Int("dungeon.creature_count", creatures),
		attribute.Int64("dungeon.generation_time_ms", time.Since(startTime).Milliseconds()),
	)

	logger.Component("world").
		WithField("start", b.start).
		WithField("rooms", b.roomCount).
		WithField("creatures", creatures).
		Debugf("built floor\n%s", b)

	return entrance, nil
}

// placeRooms marks cells for rooms with a depth-first walk from the start
// cell. Each visit picks a random first direction then rotates clockwise, so
// the rooms always form one connected blob.
func (b *DungeonBuilder) placeRooms() {
	visited := mapset.New[point.Point]()
	stack := []point.Point{b.start}

	for len(stack) > 0 && b.roomCount < b.opts.NumRooms {
		loc := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if visited.Has(loc) {
			continue
		}
		visited.Put(loc)
		b.cell(loc).hasRoom = true
		b.roomCount++

		var next []point.Point
		dir := point.RandomDirection(b.rng)
		for range point.Directions {
			if n, ok := dir.TryApply(loc); ok && b.inGrid(n) && !visited.Has(n) {
				next = append(next, n)
			}
			dir = dir.RotateCW()
		}
		// Pushed in reverse so the first direction is walked first.
		for i := len(next) - 1; i >= 0; i-- {
			stack = append(stack, next[i])
		}
	}
}

// populateGraph creates a room node for every marked cell, allocating ids in
// depth-first order from the start cell, then links each pair of adjacent
// rooms in both directions.
func (b *DungeonBuilder) populateGraph() (graph.NodeID, error) {
	stack := []point.Point{b.start}
	for len(stack) > 0 {
		loc := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		c := b.cell(loc)
		if !c.hasRoom || c.filled {
			continue
		}

		c.node = b.floor.NewNode(NewRoom(b.roomSize(), b.roomSize()))
		c.filled = true
		b.order = append(b.order, loc)

		for i := len(point.Directions) - 1; i >= 0; i-- {
			n, ok := point.Directions[i].TryApply(loc)
			if ok && b.inGrid(n) && b.cell(n).hasRoom && !b.cell(n).filled {
				stack = append(stack, n)
			}
		}
	}

	for _, loc := range b.order {
		from := b.cell(loc).node
		room, _ := b.floor.Get(from)
		for _, dir := range point.Directions {
			n, ok := dir.TryApply(loc)
			if !ok || !b.inGrid(n) || !b.cell(n).hasRoom {
				continue
			}
			to := b.cell(n).node
			if err := b.floor.AddNeighbor(from, to); err != nil {
				return 0, fmt.Errorf("link rooms %d and %d: %w", from, to, err)
			}
			room.AddNeighbor(dir, to, b.rng)
		}
	}

	return b.cell(b.start).node, nil
}

func (b *DungeonBuilder) roomSize() int {
	return b.opts.MinRoomSize + b.rng.Intn(b.opts.MaxRoomSize-b.opts.MinRoomSize+1)
}

func (b *DungeonBuilder) spawnCreatures() int {
	if b.spawner == nil {
		return 0
	}
	total := 0
	b.floor.Each(func(_ graph.NodeID, room *Room) {
		total += room.Populate(b.spawner, b.ids, b.rng, b.opts.CreatureDensity)
	})
	return total
}

// String draws the layout grid, one character per cell: S for the start,
// # for a room and . for empty.
func (b *DungeonBuilder) String() string {
	var sb strings.Builder
	for y := range b.opts.GridHeight {
		for x := range b.opts.GridWidth {
			p := point.Pt(x, y)
			switch {
			case p == b.start:
				sb.WriteByte('S')
			case b.cell(p).hasRoom:
				sb.WriteByte('#')
			default:
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
