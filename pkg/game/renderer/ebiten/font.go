package ebiten

import (
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

// newMonoFace returns the fixed-width face used for every cell
func newMonoFace() text.Face {
	return text.NewGoXFace(basicfont.Face7x13)
}

// glyphOffset centers a glyph of face inside a character cell
func glyphOffset(face text.Face, glyph string) (dx, dy float64) {
	w, h := text.Measure(glyph, face, 0)
	return (cellWidth - w) / 2, (cellHeight - h) / 2
}
