package explosion

import (
	"minefield/pkg/engine/physics"
	"minefield/pkg/game/palette"
)

// Cell is the animation state of one grid cell
type Cell struct {
	physics.Kinetic

	// Decay scales velocity by Decay/DecayScale every step.
	// InertDecay marks a cell that never moves.
	Decay float64

	Revealed bool
	Glyph    rune
	Pair     palette.Pair
}

// Active reports whether the cell takes part in motion
func (c Cell) Active() bool {
	return c.Decay != InertDecay
}

// ScreenPos returns the display cell, truncating the float position toward zero
func (c Cell) ScreenPos() (x, y int) {
	return physics.GridPos(&c.Kinetic)
}

// DisplayGlyph is the glyph when revealed, otherwise a blank
func (c Cell) DisplayGlyph() rune {
	if c.Revealed {
		return c.Glyph
	}
	return ' '
}
