package ui

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samdwyer/roomcrawl/internal/entity"
	"github.com/samdwyer/roomcrawl/internal/gamedata"
	"github.com/samdwyer/roomcrawl/internal/point"
	"github.com/samdwyer/roomcrawl/internal/world"
)

var goblinDef = &gamedata.EnemyDef{ID: "goblin", Name: "a Goblin", Glyph: "g", Strength: 2, Dexterity: 2, Intelligence: 2, SpawnWeight: 1}

func newSimScreen(t *testing.T) (tcell.SimulationScreen, *Screen) {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	screen, err := NewScreenFrom(sim)
	require.NoError(t, err)
	sim.SetSize(60, 20)
	t.Cleanup(screen.Close)
	return sim, screen
}

func runeAt(sim tcell.SimulationScreen, x, y int) rune {
	r, _, _, _ := sim.GetContent(x, y)
	return r
}

func rowText(sim tcell.SimulationScreen, y int) string {
	width, _ := sim.Size()
	var sb strings.Builder
	for x := range width {
		sb.WriteRune(runeAt(sim, x, y))
	}
	return strings.TrimRight(sb.String(), " \x00")
}

func TestRenderFrame(t *testing.T) {
	sim, screen := newSimScreen(t)
	palette, err := gamedata.LoadTileStyles()
	require.NoError(t, err)
	renderer := NewRenderer(screen, palette)

	room := world.NewRoom(6, 5)
	require.NoError(t, room.AddCreature(entity.NewEnemy(1, goblinDef, point.Pt(3, 2))))
	player := entity.NewPlayer("Hero", &gamedata.ClassDef{Name: "Warrior", Strength: 10, Dexterity: 10, Intelligence: 10}, point.Pt(1, 1))
	player.SetTarget(1)

	renderer.Render(Frame{
		Room:   room,
		Player: player,
		Log:    []string{"12:00:00: Hero attacked a Goblin"},
		Status: "You died.",
	})

	assert.Equal(t, '#', runeAt(sim, 1, 1), "top-left wall")
	assert.Equal(t, '.', runeAt(sim, 3, 3), "floor")
	assert.Equal(t, '@', runeAt(sim, 2, 2), "player")
	assert.Equal(t, 'g', runeAt(sim, 4, 3), "goblin")

	panelX := 1 + 6 + 2
	assert.Contains(t, rowText(sim, 1), "Hero the Warrior")
	assert.Contains(t, rowText(sim, 2), "HP 20/20")
	assert.Equal(t, "Target: a Goblin (4/4)", rowText(sim, 5)[panelX:])

	assert.Equal(t, " 12:00:00: Hero attacked a Goblin", rowText(sim, 7))
	assert.Equal(t, " You died.", rowText(sim, 9))
}

func TestRenderCorpses(t *testing.T) {
	sim, screen := newSimScreen(t)
	renderer := NewRenderer(screen, nil)

	room := world.NewRoom(5, 5)
	goblin := entity.NewEnemy(1, goblinDef, point.Pt(2, 2))
	require.NoError(t, room.AddCreature(goblin))
	player := entity.NewPlayer("Hero", &gamedata.ClassDef{Name: "Warrior", Strength: 10}, point.Pt(1, 2))
	room.HandlePlayerAttack(player, nil)
	require.False(t, goblin.IsAlive())
	room.Step(player)
	player.SetTarget(1)

	renderer.Render(Frame{Room: room, Player: player})

	assert.Equal(t, '%', runeAt(sim, 3, 3))
	_, _, style, _ := sim.GetContent(3, 3)
	fg, bg, _ := style.Decompose()
	assert.Equal(t, tcell.NewRGBColor(50, 50, 50), fg)
	assert.Equal(t, tcell.NewRGBColor(95, 95, 95), bg)
	assert.Contains(t, rowText(sim, 5), "Target: a Goblin (dead)")
}

func TestRenderWithoutPalette(t *testing.T) {
	sim, screen := newSimScreen(t)
	renderer := NewRenderer(screen, nil)

	renderer.Render(Frame{Room: world.NewRoom(4, 4)})

	assert.Equal(t, '#', runeAt(sim, 1, 1))
	assert.Equal(t, '.', runeAt(sim, 2, 2))
}

func TestRoomPosition(t *testing.T) {
	_, screen := newSimScreen(t)
	renderer := NewRenderer(screen, nil)
	assert.Equal(t, point.Pt(2, 3), renderer.RoomPosition(3, 4))
}

func TestDrawTextClips(t *testing.T) {
	sim, screen := newSimScreen(t)
	var end int
	screen.Paint(func() { end = screen.DrawText(55, 0, "abcdefghij", tcell.StyleDefault) })

	assert.Equal(t, 60, end)
	assert.Equal(t, "abcde", rowText(sim, 0)[55:])
}

func TestPaintClearsPreviousFrame(t *testing.T) {
	sim, screen := newSimScreen(t)
	screen.Paint(func() { screen.DrawText(0, 0, "old", tcell.StyleDefault) })
	require.Equal(t, "old", rowText(sim, 0))

	screen.Paint(func() { screen.DrawText(0, 1, "new", tcell.StyleDefault) })

	assert.Empty(t, rowText(sim, 0))
	assert.Equal(t, "new", rowText(sim, 1))
}
