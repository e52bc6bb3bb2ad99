package game

import (
	"os"
	"strconv"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/roomcrawl/internal/logger"
	"github.com/samdwyer/roomcrawl/internal/world"
)

const (
	DefaultPlayerName  = "Adventurer"
	DefaultPlayerClass = "warrior"
	DefaultLogSize     = 20
)

// Config holds game configuration options.
type Config struct {
	// Seed for random number generation. Used for reproducible dungeon generation.
	// A seed of 0 means a random seed will be generated.
	Seed int64

	PlayerName  string
	PlayerClass string // Class id from classes.json

	Enemy string // Only spawn this enemy id from enemies.json; empty spawns all kinds

	GridWidth  int // Layout grid size in rooms
	GridHeight int
	NumRooms   int

	LogSize int // Combat messages kept
}

// DefaultConfig returns the settings used when nothing is configured.
func DefaultConfig() Config {
	return Config{
		PlayerName:  DefaultPlayerName,
		PlayerClass: DefaultPlayerClass,
		GridWidth:   world.DefaultGridWidth,
		GridHeight:  world.DefaultGridHeight,
		NumRooms:    world.DefaultNumRooms,
		LogSize:     DefaultLogSize,
	}
}

// LoadConfig reads ROOMCRAWL_* environment variables over the defaults.
// Unparseable or non-positive numbers keep the default and log a warning.
func LoadConfig() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("ROOMCRAWL_SEED"); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			warnInvalid("ROOMCRAWL_SEED", v, err)
		} else {
			cfg.Seed = seed
		}
	}
	if v := os.Getenv("ROOMCRAWL_PLAYER_NAME"); v != "" {
		cfg.PlayerName = v
	}
	if v := os.Getenv("ROOMCRAWL_PLAYER_CLASS"); v != "" {
		cfg.PlayerClass = v
	}
	cfg.Enemy = os.Getenv("ROOMCRAWL_ENEMY")

	cfg.GridWidth = positiveEnv("ROOMCRAWL_GRID_WIDTH", cfg.GridWidth)
	cfg.GridHeight = positiveEnv("ROOMCRAWL_GRID_HEIGHT", cfg.GridHeight)
	cfg.NumRooms = positiveEnv("ROOMCRAWL_NUM_ROOMS", cfg.NumRooms)
	cfg.LogSize = positiveEnv("ROOMCRAWL_LOG_SIZE", cfg.LogSize)
	return cfg
}

// WorldOptions returns generation options for this configuration.
func (c Config) WorldOptions() world.Options {
	opts := world.DefaultOptions()
	opts.GridWidth = c.GridWidth
	opts.GridHeight = c.GridHeight
	opts.NumRooms = c.NumRooms
	return opts
}

// ResolveSeed replaces a zero seed with one drawn from the clock and returns
// the seed in effect.
func (c *Config) ResolveSeed() int64 {
	if c.Seed == 0 {
		c.Seed = time.Now().UnixNano()
	}
	return c.Seed
}

// Attributes describes the run for tracing.
func (c Config) Attributes() []attribute.KeyValue {
	return []attribute.KeyValue{
		attribute.Int64("game.seed", c.Seed),
		attribute.String("player.class", c.PlayerClass),
		attribute.Int("dungeon.grid_width", c.GridWidth),
		attribute.Int("dungeon.grid_height", c.GridHeight),
		attribute.Int("dungeon.num_rooms", c.NumRooms),
	}
}

func positiveEnv(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		warnInvalid(key, v, err)
		return def
	}
	if n <= 0 {
		warnInvalid(key, v, nil)
		return def
	}
	return n
}

func warnInvalid(key, value string, err error) {
	entry := logger.Component("config").WithField("key", key).WithField("value", value)
	if err != nil {
		entry = entry.WithError(err)
	}
	entry.Warn("ignoring invalid setting")
}
