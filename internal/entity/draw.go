package entity

import (
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/samdwyer/roomcrawl/internal/point"
)

// RGB is a 24-bit colour.
type RGB struct{ R, G, B uint8 }

var (
	// BackgroundGray is the backdrop behind every creature and corpse.
	BackgroundGray = RGB{95, 95, 95}
	// CorpseGray is the foreground colour of corpses.
	CorpseGray = RGB{50, 50, 50}

	healthEmpty = colorful.Color{R: 1}
	healthFull  = colorful.Color{G: 1}
)

// DrawOutput is everything a renderer needs to draw one thing on one tile.
type DrawOutput struct {
	Position point.Point
	FG, BG   RGB
	Glyph    rune
}

// HealthColor interpolates linearly from red at 0% health to green at 100%.
func HealthColor(current, full int) RGB {
	pct := 0.0
	if full > 0 {
		pct = float64(current) / float64(full)
	}
	pct = min(max(pct, 0), 1)

	r, g, b := healthEmpty.BlendRgb(healthFull, pct).Clamped().RGB255()
	return RGB{R: r, G: g, B: b}
}
