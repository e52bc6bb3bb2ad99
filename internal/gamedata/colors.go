package gamedata

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// ParseHexRGB splits a hex colour string (e.g., "#FF0000" or "FF0000") into
// its red, green and blue components.
func ParseHexRGB(hex string) (r, g, b uint8, err error) {
	hex = strings.TrimPrefix(hex, "#")

	if len(hex) != 6 {
		return 0, 0, 0, fmt.Errorf("invalid hex color length: %s", hex)
	}

	var parts [3]uint8
	for i, name := range []string{"red", "green", "blue"} {
		v, err := strconv.ParseUint(hex[i*2:i*2+2], 16, 8)
		if err != nil {
			return 0, 0, 0, fmt.Errorf("invalid %s component in %s: %w", name, hex, err)
		}
		parts[i] = uint8(v)
	}
	return parts[0], parts[1], parts[2], nil
}

// ParseHexColor converts a hex colour string to a tcell.Color.
func ParseHexColor(hex string) (tcell.Color, error) {
	r, g, b, err := ParseHexRGB(hex)
	if err != nil {
		return tcell.ColorDefault, err
	}
	return tcell.NewRGBColor(int32(r), int32(g), int32(b)), nil
}
