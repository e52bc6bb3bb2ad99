package world

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/roomcrawl/internal/combat"
	"github.com/samdwyer/roomcrawl/internal/entity"
	"github.com/samdwyer/roomcrawl/internal/gamedata"
	"github.com/samdwyer/roomcrawl/internal/graph"
	"github.com/samdwyer/roomcrawl/internal/logger"
	"github.com/samdwyer/roomcrawl/internal/point"
	"github.com/samdwyer/roomcrawl/internal/telemetry"
)

// NodeKind identifies what a world node is.
type NodeKind int

const (
	NodeDungeon NodeKind = iota
)

func (k NodeKind) String() string {
	if k == NodeDungeon {
		return "dungeon"
	}
	return "unknown"
}

// Node is a place in the world the player can be in.
type Node interface {
	Kind() NodeKind
	StartingPosition() (point.Point, error)
	ValidPosition(p point.Point) bool
	Creatures() map[entity.ID]entity.Creature
	Step(ctx context.Context, player *entity.Player) error
	HandlePlayerInput(ctx context.Context, player *entity.Player, pos point.Point, log combat.Logger) error
	HandlePlayerAttack(ctx context.Context, player *entity.Player, log combat.Logger) error
	TargetAt(player *entity.Player, p point.Point) bool
}

var _ Node = (*Dungeon)(nil)

// World is the top level of a game session: a graph of nodes, the active one
// and the creature id allocator shared by all of them.
type World struct {
	session uuid.UUID
	ids     *entity.IDAllocator
	nodes   *graph.Graph[Node]
	active  graph.NodeID
}

// New creates a world holding one generated dungeon. A registry that cannot
// spawn anything, including nil, leaves the dungeon empty of creatures.
func New(ctx context.Context, opts Options, registry *gamedata.EnemyRegistry, rng *rand.Rand) (*World, error) {
	ids := &entity.IDAllocator{}
	var spawner entity.Spawner
	if registry.CanSpawn() {
		spawner = entity.NewEnemySpawner(registry, rng)
	}

	dungeon, err := NewDungeon(ctx, 1, opts, rng, ids, spawner)
	if err != nil {
		return nil, fmt.Errorf("create dungeon: %w", err)
	}

	nodes := graph.New[Node]()
	w := &World{
		session: uuid.New(),
		ids:     ids,
		nodes:   nodes,
		active:  nodes.NewNode(dungeon),
	}

	logger.Component("world").
		WithField("session", w.session.String()).
		WithField("depth", dungeon.Depth()).
		WithField("creatures", len(dungeon.Creatures())).
		Info("world created")
	return w, nil
}

// NewFromNodes wraps existing nodes, making active the current one.
func NewFromNodes(nodes *graph.Graph[Node], active graph.NodeID, ids *entity.IDAllocator) (*World, error) {
	if ids == nil {
		ids = &entity.IDAllocator{}
	}
	w := &World{session: uuid.New(), ids: ids, nodes: nodes, active: active}
	if _, err := w.ActiveNode(); err != nil {
		return nil, err
	}
	return w, nil
}

// Session returns the id of this game session.
func (w *World) Session() uuid.UUID { return w.session }

// IDs returns the allocator creature ids come from.
func (w *World) IDs() *entity.IDAllocator { return w.ids }

// ActiveNode returns the node the player is in.
func (w *World) ActiveNode() (Node, error) {
	n, ok := w.nodes.Get(w.active)
	if !ok || n == nil {
		return nil, fmt.Errorf("world node %d: %w", w.active, ErrInvalidRoomReference)
	}
	return n, nil
}

// ActiveDungeon returns the active node if it is a dungeon.
func (w *World) ActiveDungeon() (*Dungeon, bool) {
	n, err := w.ActiveNode()
	if err != nil {
		return nil, false
	}
	d, ok := n.(*Dungeon)
	return d, ok
}

// StartingPosition returns where a new player is placed.
func (w *World) StartingPosition() (point.Point, error) {
	n, err := w.ActiveNode()
	if err != nil {
		return point.Point{}, err
	}
	return n.StartingPosition()
}

// ValidPosition reports whether the player may stand on p.
func (w *World) ValidPosition(p point.Point) bool {
	n, err := w.ActiveNode()
	return err == nil && n.ValidPosition(p)
}

// Creatures returns the live creatures around the player.
func (w *World) Creatures() map[entity.ID]entity.Creature {
	n, err := w.ActiveNode()
	if err != nil {
		return nil
	}
	return n.Creatures()
}

// Step advances the active node by one turn.
func (w *World) Step(ctx context.Context, player *entity.Player) error {
	tracer := telemetry.Tracer("world")
	ctx, span := tracer.Start(ctx, "world.step")
	defer span.End()
	span.SetAttributes(attribute.String("session.id", w.session.String()))

	n, err := w.ActiveNode()
	if err != nil {
		span.RecordError(err)
		return err
	}
	if err := n.Step(ctx, player); err != nil {
		span.RecordError(err)
		return err
	}
	span.SetAttributes(
		attribute.Int("world.creature_count", len(n.Creatures())),
		attribute.Int("player.health", player.CurrentStats().Health),
	)
	return nil
}

// HandlePlayerInput moves the player toward pos, attacking whatever stands
// there.
func (w *World) HandlePlayerInput(ctx context.Context, player *entity.Player, pos point.Point, log combat.Logger) error {
	tracer := telemetry.Tracer("world")
	ctx, span := tracer.Start(ctx, "world.player_input")
	defer span.End()
	span.SetAttributes(
		attribute.Int("player.target_x", pos.X),
		attribute.Int("player.target_y", pos.Y),
	)

	n, err := w.ActiveNode()
	if err != nil {
		span.RecordError(err)
		return err
	}
	if err := n.HandlePlayerInput(ctx, player, pos, log); err != nil {
		span.RecordError(err)
		return err
	}
	return nil
}

// HandlePlayerAttack attacks the tile the player faces without moving.
func (w *World) HandlePlayerAttack(ctx context.Context, player *entity.Player, log combat.Logger) error {
	n, err := w.ActiveNode()
	if err != nil {
		return err
	}
	return n.HandlePlayerAttack(ctx, player, log)
}

// TargetAt selects the creature on p.
func (w *World) TargetAt(player *entity.Player, p point.Point) bool {
	n, err := w.ActiveNode()
	return err == nil && n.TargetAt(player, p)
}
