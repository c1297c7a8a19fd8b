// Package palette defines the seven two-color attribute pairs the game draws with.
// Every pair is a black foreground on a colored background, drawn bold.
package palette

import (
	"image/color"

	gcolor "github.com/gookit/color"
)

// Pair identifies a color pair, 1..7
type Pair int

// Color pairs
const (
	PairNone Pair = iota
	PairRed
	PairGreen
	PairYellow
	PairBlue
	PairMagenta
	PairCyan
	PairWhite
)

// Roles
const (
	Danger  = PairRed
	Neutral = PairWhite
	Cursor  = PairBlue
)

// Count is the number of defined pairs
const Count = 7

var backgrounds = [...]gcolor.Color{
	PairNone:    gcolor.BgDefault,
	PairRed:     gcolor.BgRed,
	PairGreen:   gcolor.BgGreen,
	PairYellow:  gcolor.BgYellow,
	PairBlue:    gcolor.BgBlue,
	PairMagenta: gcolor.BgMagenta,
	PairCyan:    gcolor.BgCyan,
	PairWhite:   gcolor.BgWhite,
}

// RGB values for backends that draw pixels; chosen to match the xterm basic colors
var rgba = [...]color.RGBA{
	PairNone:    {0, 0, 0, 255},
	PairRed:     {205, 0, 0, 255},
	PairGreen:   {0, 205, 0, 255},
	PairYellow:  {205, 205, 0, 255},
	PairBlue:    {0, 0, 238, 255},
	PairMagenta: {205, 0, 205, 255},
	PairCyan:    {0, 205, 205, 255},
	PairWhite:   {229, 229, 229, 255},
}

// Foreground is the glyph color shared by every pair
var Foreground = color.RGBA{0, 0, 0, 255}

// IsValid reports whether p is one of the seven pairs
func (p Pair) IsValid() bool {
	return p >= PairRed && p <= PairWhite
}

// Style returns the ANSI style for the pair
func (p Pair) Style() gcolor.Style {
	if !p.IsValid() {
		return gcolor.Style{gcolor.OpReset}
	}
	return gcolor.Style{gcolor.FgBlack, backgrounds[p], gcolor.OpBold}
}

// Background returns the ANSI background color of the pair
func (p Pair) Background() gcolor.Color {
	if !p.IsValid() {
		return gcolor.BgDefault
	}
	return backgrounds[p]
}

// RGBA returns the background color of the pair for pixel backends
func (p Pair) RGBA() color.RGBA {
	if !p.IsValid() {
		return rgba[PairNone]
	}
	return rgba[p]
}

// String returns the color name of the pair
func (p Pair) String() string {
	switch p {
	case PairRed:
		return "red"
	case PairGreen:
		return "green"
	case PairYellow:
		return "yellow"
	case PairBlue:
		return "blue"
	case PairMagenta:
		return "magenta"
	case PairCyan:
		return "cyan"
	case PairWhite:
		return "white"
	default:
		return "none"
	}
}
