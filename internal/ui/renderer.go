package ui

import (
	"cmp"
	"fmt"
	"maps"
	"slices"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/roomcrawl/internal/entity"
	"github.com/samdwyer/roomcrawl/internal/gamedata"
	"github.com/samdwyer/roomcrawl/internal/point"
	"github.com/samdwyer/roomcrawl/internal/world"
)

const (
	// Room tiles are drawn inset by one cell from the top-left corner.
	roomOffsetX = 1
	roomOffsetY = 1

	panelGap = 2 // Columns between the room and the status panel
)

// Frame is everything drawn in one render pass.
type Frame struct {
	Room   *world.Room
	Player *entity.Player
	Log    []string // Oldest first
	Status string   // Banner under the log, e.g. the death notice
}

// Renderer handles drawing the game to the screen.
type Renderer struct {
	screen  *Screen
	palette map[string]gamedata.TileStyleDef
}

// NewRenderer creates a renderer drawing tiles with the given palette. Tile
// kinds missing from the palette use their fallback rune in default colours.
func NewRenderer(screen *Screen, palette map[string]gamedata.TileStyleDef) *Renderer {
	return &Renderer{screen: screen, palette: palette}
}

// RoomPosition converts screen coordinates to room coordinates.
func (r *Renderer) RoomPosition(x, y int) point.Point {
	return point.Pt(x-roomOffsetX, y-roomOffsetY)
}

// Render draws the room, its occupants, the status panel and the log.
func (r *Renderer) Render(f Frame) {
	r.screen.Paint(func() { r.draw(f) })
}

func (r *Renderer) draw(f Frame) {
	if f.Room != nil {
		r.drawRoom(f.Room)
		for _, id := range sortedKeys(f.Room.Corpses()) {
			r.drawOutput(f.Room.Corpses()[id].Draw())
		}
		for _, id := range sortedKeys(f.Room.Creatures()) {
			r.drawOutput(f.Room.Creatures()[id].Draw())
		}
	}

	if f.Player != nil {
		pos := f.Player.Position()
		playerStyle := tcell.StyleDefault.
			Foreground(tcell.ColorYellow).
			Background(rgb(entity.BackgroundGray)).
			Bold(true)
		r.screen.SetContent(pos.X+roomOffsetX, pos.Y+roomOffsetY, '@', playerStyle)
		r.drawPanel(f)
	}

	r.drawLog(f)
}

func (r *Renderer) drawRoom(room *world.Room) {
	for i, tile := range room.Tiles() {
		p := point.FromIndex(i, room.Width())
		glyph, style := r.tileLook(tile.Kind)
		r.screen.SetContent(p.X+roomOffsetX, p.Y+roomOffsetY, glyph, style)
	}
}

func (r *Renderer) tileLook(kind world.TileKind) (rune, tcell.Style) {
	def, ok := r.palette[kind.String()]
	if !ok {
		return kind.Rune(), tcell.StyleDefault
	}
	return def.GlyphRune(), def.Style()
}

func (r *Renderer) drawOutput(out entity.DrawOutput) {
	style := tcell.StyleDefault.Foreground(rgb(out.FG)).Background(rgb(out.BG))
	r.screen.SetContent(out.Position.X+roomOffsetX, out.Position.Y+roomOffsetY, out.Glyph, style)
}

// drawPanel shows player and target stats to the right of the room.
func (r *Renderer) drawPanel(f Frame) {
	x := roomOffsetX + panelGap
	if f.Room != nil {
		x += f.Room.Width()
	}
	y := roomOffsetY
	plain := tcell.StyleDefault.Foreground(tcell.ColorWhite)

	p := f.Player
	r.screen.DrawText(x, y, fmt.Sprintf("%s the %s", p.GetName(), p.Class()), plain.Bold(true))
	y++
	cur, base := p.CurrentStats(), p.BaseStats()
	hpStyle := plain.Foreground(rgb(entity.HealthColor(cur.Health, base.Health)))
	r.screen.DrawText(x, y, fmt.Sprintf("HP %d/%d", max(cur.Health, 0), base.Health), hpStyle)
	y++
	r.screen.DrawText(x, y, fmt.Sprintf("STR %d DEX %d INT %d", cur.Strength, cur.Dexterity, cur.Intelligence), plain)
	y += 2

	r.screen.DrawText(x, y, "Target: "+targetLabel(f), plain)
}

func targetLabel(f Frame) string {
	id, ok := f.Player.Target()
	if !ok || f.Room == nil {
		return "none"
	}
	if c, ok := f.Room.Creatures()[id]; ok {
		stats := c.CurrentStats()
		return fmt.Sprintf("%s (%d/%d)", c.GetName(), max(stats.Health, 0), c.BaseStats().Health)
	}
	if corpse, ok := f.Room.Corpses()[id]; ok {
		return corpse.Name() + " (dead)"
	}
	return "none"
}

// drawLog writes the combat log below the room, newest last.
func (r *Renderer) drawLog(f Frame) {
	y := roomOffsetY + 1
	if f.Room != nil {
		y += f.Room.Height()
	}
	style := tcell.StyleDefault.Foreground(tcell.ColorSilver)
	for _, msg := range f.Log {
		r.screen.DrawText(roomOffsetX, y, msg, style)
		y++
	}
	if f.Status != "" {
		r.screen.DrawText(roomOffsetX, y+1, f.Status, tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true))
	}
}

func rgb(c entity.RGB) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// sortedKeys gives a stable draw order for id-keyed maps.
func sortedKeys[K cmp.Ordered, V any](m map[K]V) []K {
	return slices.Sorted(maps.Keys(m))
}
