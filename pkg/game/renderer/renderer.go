// Package renderer draws a minefield game onto a character-cell Surface.
package renderer

import (
	"minefield/pkg/engine/world"
	"minefield/pkg/game/explosion"
	"minefield/pkg/game/palette"
	"minefield/pkg/game/state"
)

// Blank is drawn for hidden cells and the cursor
const Blank = ' '

// Text keys for the status line
const (
	StatusPlaying   = "STATUS_PLAYING"
	StatusExploding = "STATUS_EXPLODING"
	StatusCleared   = "STATUS_CLEARED"
)

// DrawFrame renders a complete game frame: the message and status lines,
// every cell at its truncated screen position, and the cursor while Playing.
func DrawFrame(s Surface, g *state.Game, cat *Catalog) {
	s.Clear()
	width, height := s.Size()

	if msg := g.LastMessage(); msg != "" {
		DrawText(s, 0, 0, cat.Get(msg), palette.PairNone)
	}
	DrawText(s, 0, height-1, StatusLine(g, cat), palette.PairNone)

	g.Engine.ForEachCell(func(_ world.Position, c *explosion.Cell) {
		x, y := c.ScreenPos()
		if x < 0 || y < 0 || x >= width || y >= height {
			return
		}
		s.SetCell(x, y, c.DisplayGlyph(), c.Pair)
	})

	if g.AcceptsMoves() {
		x, y := g.Engine.Layout().Screen(g.Cursor)
		s.SetCell(x, y, Blank, palette.Cursor)
	}

	s.Show()
}

// StatusLine returns the translated status text for the current phase
func StatusLine(g *state.Game, cat *Catalog) string {
	switch g.Phase {
	case state.PhaseExploding:
		return cat.Get(StatusExploding)
	case state.PhaseCleared:
		return cat.Get(StatusCleared)
	default:
		return cat.Get(StatusPlaying, g.Revealed, g.Board.Cells()-g.Board.MineCount())
	}
}

// DrawText writes text left to right starting at (x, y), clipped to the surface
func DrawText(s Surface, x, y int, text string, pair palette.Pair) {
	width, height := s.Size()
	if y < 0 || y >= height {
		return
	}
	for _, r := range text {
		if x >= width {
			return
		}
		if x >= 0 {
			s.SetCell(x, y, r, pair)
		}
		x++
	}
}
