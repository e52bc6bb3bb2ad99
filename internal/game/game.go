package game

import (
	"context"
	"errors"
	"fmt"
	"math/rand"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/roomcrawl/internal/combat"
	"github.com/samdwyer/roomcrawl/internal/entity"
	"github.com/samdwyer/roomcrawl/internal/gamedata"
	"github.com/samdwyer/roomcrawl/internal/logger"
	"github.com/samdwyer/roomcrawl/internal/telemetry"
	"github.com/samdwyer/roomcrawl/internal/ui"
	"github.com/samdwyer/roomcrawl/internal/world"
)

const (
	deathMessage = "You have died. Press q to quit."
	logLines     = 5 // Combat messages shown under the room
)

// Game holds the entire game state.
type Game struct {
	screen   *ui.Screen
	renderer *ui.Renderer
	world    *world.World
	player   *entity.Player
	log      *combat.Log
	state    State
	running  bool
	entry    *logrus.Entry
}

// New generates a world from cfg and creates a game drawing to screen.
func New(ctx context.Context, cfg Config, screen *ui.Screen) (*Game, error) {
	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "game.init")
	defer span.End()

	seed := cfg.ResolveSeed()
	rng := rand.New(rand.NewSource(seed))

	class, err := gamedata.ClassByID(cfg.PlayerClass)
	if err != nil {
		return nil, err
	}
	registry, err := gamedata.LoadEnemyRegistry()
	if err != nil {
		return nil, err
	}
	if cfg.Enemy != "" {
		if registry, err = registry.Only(cfg.Enemy); err != nil {
			return nil, err
		}
	}
	palette, err := gamedata.LoadTileStyles()
	if err != nil {
		return nil, err
	}

	w, err := world.New(ctx, cfg.WorldOptions(), registry, rng)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	start, err := w.StartingPosition()
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	span.SetAttributes(
		attribute.Int64("game.seed", seed),
		attribute.String("session.id", w.Session().String()),
		attribute.String("player.class", class.ID),
	)

	player := entity.NewPlayer(cfg.PlayerName, class, start)
	return newGame(screen, ui.NewRenderer(screen, palette), w, player, combat.NewLog(cfg.LogSize)), nil
}

func newGame(screen *ui.Screen, renderer *ui.Renderer, w *world.World, player *entity.Player, log *combat.Log) *Game {
	return &Game{
		screen:   screen,
		renderer: renderer,
		world:    w,
		player:   player,
		log:      log,
		state:    StateExplore,
		running:  true,
		entry:    logger.Component("game").WithField("session", w.Session().String()),
	}
}

// State returns the current game state.
func (g *Game) State() State { return g.state }

// Player returns the player.
func (g *Game) Player() *entity.Player { return g.player }

// World returns the game world.
func (g *Game) World() *world.World { return g.world }

// Running returns false once the player has quit.
func (g *Game) Running() bool { return g.running }

// Run executes the main game loop until the player quits or the world
// reports a broken room reference.
func (g *Game) Run(ctx context.Context) error {
	g.entry.Info("session started")

	for g.running {
		g.render()

		if err := g.Apply(ctx, DecodeEvent(g.screen.PollEvent())); err != nil {
			g.entry.WithError(err).Error("session aborted")
			return err
		}
	}

	g.entry.Info("session ended")
	return nil
}

// Apply carries out one intent. Moves and attacks cost a turn: the creatures
// in the room act afterwards.
func (g *Game) Apply(ctx context.Context, in Intent) error {
	switch in.Action {
	case ActionQuit:
		g.running = false
		return nil
	case ActionRedraw:
		g.screen.Sync()
		return nil
	case ActionTarget:
		g.world.TargetAt(g.player, g.renderer.RoomPosition(in.Screen.X, in.Screen.Y))
		return nil
	}

	if g.state == StateDead {
		return nil
	}

	var err error
	switch in.Action {
	case ActionMove:
		err = g.world.HandlePlayerInput(ctx, g.player, g.player.Position().Add(in.Delta), g.log)
	case ActionAttack:
		err = g.world.HandlePlayerAttack(ctx, g.player, g.log)
	default:
		return nil
	}
	if err == nil {
		err = g.world.Step(ctx, g.player)
	}
	if err != nil {
		if errors.Is(err, world.ErrInvalidRoomReference) {
			return fmt.Errorf("world corrupted: %w", err)
		}
		return err
	}

	if !g.player.IsAlive() {
		g.state = StateDead
		g.log.AddMessage(deathMessage)
		g.entry.WithField("name", g.player.GetName()).Info("player died")
	}
	return nil
}

func (g *Game) render() {
	frame := ui.Frame{
		Player: g.player,
		Log:    g.log.LastN(logLines),
	}
	if d, ok := g.world.ActiveDungeon(); ok {
		if room, err := d.ActiveRoom(); err == nil {
			frame.Room = room
		}
	}
	if g.state == StateDead {
		frame.Status = "DEAD"
	}
	g.renderer.Render(frame)
}

// Close cleans up game resources.
func (g *Game) Close() {
	if g.screen != nil {
		g.screen.Close()
	}
}
