package gamedata

import "github.com/gdamore/tcell/v2"

// TileStyleDef describes how one tile kind is drawn.
type TileStyleDef struct {
	Kind       string `json:"kind"`       // "wall", "floor" or "exit"
	Glyph      string `json:"glyph"`      // Single character
	Foreground string `json:"foreground"` // Hex colour
	Background string `json:"background"` // Hex colour
}

// GlyphRune returns the glyph as a rune, a space when empty.
func (t *TileStyleDef) GlyphRune() rune {
	if len(t.Glyph) == 0 {
		return ' '
	}
	return rune(t.Glyph[0])
}

// Style converts the colours into a tcell style. Unparseable colours fall
// back to the terminal defaults.
func (t *TileStyleDef) Style() tcell.Style {
	style := tcell.StyleDefault
	if fg, err := ParseHexColor(t.Foreground); err == nil {
		style = style.Foreground(fg)
	}
	if bg, err := ParseHexColor(t.Background); err == nil {
		style = style.Background(bg)
	}
	return style
}

// TilesFile represents the structure of tiles.json.
type TilesFile struct {
	Tiles []TileStyleDef `json:"tiles"`
}

// LoadTileStyles loads the tile palette keyed by kind.
func LoadTileStyles() (map[string]TileStyleDef, error) {
	file, err := Load[TilesFile]("tiles.json")
	if err != nil {
		return nil, err
	}
	styles := make(map[string]TileStyleDef, len(file.Tiles))
	for _, t := range file.Tiles {
		styles[t.Kind] = t
	}
	return styles, nil
}
