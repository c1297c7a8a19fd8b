package ebiten

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"minefield/pkg/game/palette"
)

// surface paints character cells onto the frame being drawn. It satisfies
// renderer.Surface for the duration of one Draw call.
type surface struct {
	screen *ebiten.Image
	face   text.Face
	cols   int
	rows   int
}

// Size returns the window size in character cells
func (s *surface) Size() (width, height int) {
	return s.cols, s.rows
}

// SetCell fills the cell with the pair's background and draws glyph on top
func (s *surface) SetCell(x, y int, glyph rune, pair palette.Pair) {
	if x < 0 || y < 0 || x >= s.cols || y >= s.rows {
		return
	}

	px := float64(x * cellWidth)
	py := float64(y * cellHeight)

	var fg color.Color = colorText
	if pair.IsValid() {
		vector.DrawFilledRect(s.screen, float32(px), float32(py), cellWidth, cellHeight, pair.RGBA(), false)
		fg = palette.Foreground
	}

	if glyph == ' ' {
		return
	}

	str := string(glyph)
	dx, dy := glyphOffset(s.face, str)

	op := &text.DrawOptions{}
	op.GeoM.Translate(px+dx, py+dy)
	op.ColorScale.ScaleWithColor(fg)

	text.Draw(s.screen, str, s.face, op)
}

// Clear fills the frame with the background color
func (s *surface) Clear() {
	s.screen.Fill(colorBackground)
}

// Show is a no-op; ebiten presents the frame when Draw returns
func (s *surface) Show() {}
