package wire

import (
	"fmt"
	"strconv"
	"strings"
)

// Color is a 24-bit RGB triplet. The zero value is not valid; use
// DefaultColor (white) for the empty-tag case.
type Color struct {
	R, G, B uint8
}

// DefaultColor is the fallback when a color tag is empty, per spec 4.2.
var DefaultColor = Color{R: 0xFF, G: 0xFF, B: 0xFF}

// String renders the color as "#RRGGBB".
func (c Color) String() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// namedColors is the fixed 15-color palette, transcribed from the
// reference crate's trovo_colors() table (original_source/src/twitch/color.rs).
var namedColors = map[string]Color{
	"blue":        {0x00, 0x00, 0xFF},
	"blueviolet":  {0x8A, 0x2B, 0xE2},
	"cadetblue":   {0x5F, 0x9E, 0xA0},
	"chocolate":   {0xD2, 0x69, 0x1E},
	"coral":       {0xFF, 0x7F, 0x50},
	"dodgerblue":  {0x1E, 0x90, 0xFF},
	"firebrick":   {0xB2, 0x22, 0x22},
	"goldenrod":   {0xDA, 0xA5, 0x20},
	"green":       {0x00, 0x80, 0x00},
	"hotpink":     {0xFF, 0x69, 0xB4},
	"orangered":   {0xFF, 0x45, 0x00},
	"red":         {0xFF, 0x00, 0x00},
	"seagreen":    {0x2E, 0x8B, 0x57},
	"springgreen": {0x00, 0xFF, 0x7F},
	"yellowgreen": {0xAD, 0xFF, 0x2F},
}

func normalizeColorName(s string) string {
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, "_", "")
	s = strings.ReplaceAll(s, " ", "")
	return s
}

// ParseColor parses a "#RRGGBB" (case-insensitive) or one of the 15 named
// presets. An empty string yields DefaultColor (white); anything else
// unrecognized is a CannotParseTag-class error.
func ParseColor(s string) (Color, error) {
	if s == "" {
		return DefaultColor, nil
	}
	if hex, ok := strings.CutPrefix(s, "#"); ok {
		return parseHexColor(hex, s)
	}
	if c, ok := namedColors[normalizeColorName(s)]; ok {
		return c, nil
	}
	return Color{}, &CannotParseTagError{Tag: "color", Value: s, Inner: fmt.Errorf("not a recognized color")}
}

func parseHexColor(hex, original string) (Color, error) {
	if len(hex) != 6 {
		return Color{}, &CannotParseTagError{Tag: "color", Value: original, Inner: fmt.Errorf("expected 6 hex digits, got %d", len(hex))}
	}
	n, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Color{}, &CannotParseTagError{Tag: "color", Value: original, Inner: err}
	}
	return Color{R: uint8(n >> 16), G: uint8(n >> 8), B: uint8(n)}, nil
}
