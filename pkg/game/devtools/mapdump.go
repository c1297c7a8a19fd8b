// Package devtools provides developer tools for testing and debugging.
package devtools

import (
	"fmt"
	"io"
	"strings"

	"github.com/gookit/color"

	"minefield/pkg/engine/world"
	"minefield/pkg/game/minefield"
	"minefield/pkg/game/palette"
)

// DumpOptions control the board dump
type DumpOptions struct {
	// Seed is printed in the header so the board can be replayed with -seed
	Seed int64
	// Color styles mines and numbers with the game's color pairs
	Color bool
	// Width centers the board in a terminal of this many columns; 0 disables centering
	Width int
}

// cellSymbol returns the dump symbol for a cell: '*' for mines, '.' for
// zero cells, otherwise the adjacency digit
func cellSymbol(board *minefield.Board, pos world.Position) rune {
	if board.IsMine(pos) {
		return board.Glyph(pos)
	}
	if board.Value(pos) == 0 {
		return '.'
	}
	return board.Glyph(pos)
}

// cellStyle returns the color pair a symbol is drawn with
func cellStyle(board *minefield.Board, pos world.Position) palette.Pair {
	switch v := board.Value(pos); {
	case v == minefield.Mine:
		return palette.Danger
	case v == 0:
		return palette.PairNone
	case v == 1:
		return palette.PairBlue
	case v == 2:
		return palette.PairGreen
	default:
		return palette.PairYellow
	}
}

// DumpBoard writes a fully revealed board: a header, then one line per row
// with cells on the same 2-column stride the game uses.
func DumpBoard(w io.Writer, board *minefield.Board, opts DumpOptions) error {
	header := fmt.Sprintf("minefield %dx%d, %d mines, seed %d",
		board.Rows(), board.Cols(), board.MineCount(), opts.Seed)
	if _, err := fmt.Fprintln(w, header); err != nil {
		return fmt.Errorf("write dump header: %w", err)
	}

	pad := ""
	if opts.Width > 0 {
		if n := (opts.Width - board.Cols()*2) / 2; n > 0 {
			pad = strings.Repeat(" ", n)
		}
	}

	for row := 0; row < board.Rows(); row++ {
		var b strings.Builder
		b.WriteString(pad)
		for col := 0; col < board.Cols(); col++ {
			pos := world.Position{Row: row, Col: col}
			sym := string(cellSymbol(board, pos))
			if pair := cellStyle(board, pos); opts.Color && pair.IsValid() {
				sym = pair.Style().Sprint(sym)
			}
			b.WriteString(sym)
			if col < board.Cols()-1 {
				b.WriteByte(' ')
			}
		}
		if _, err := fmt.Fprintln(w, b.String()); err != nil {
			return fmt.Errorf("write dump row %d: %w", row, err)
		}
	}

	return nil
}

// StripColor removes the ANSI codes DumpBoard adds when Color is set
func StripColor(s string) string {
	return color.ClearCode(s)
}
