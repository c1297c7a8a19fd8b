package renderer

import (
	"context"

	"minefield/pkg/game/palette"
	"minefield/pkg/game/state"
)

// Surface is a character-cell display. Coordinates are in cells with the
// origin at the top left.
type Surface interface {
	// Size returns the current width and height in cells
	Size() (width, height int)

	// SetCell writes one glyph with a color pair. PairNone uses the
	// surface's default colors. Writes outside the surface are dropped.
	SetCell(x, y int, glyph rune, pair palette.Pair)

	// Clear blanks the whole surface
	Clear()

	// Show presents everything written since the last Show
	Show()
}

// Backend runs the control loop for one game on a concrete display
// (terminal, window, etc.). Run returns when the game is quit or ctx is done.
type Backend interface {
	Run(ctx context.Context, g *state.Game) error
}
