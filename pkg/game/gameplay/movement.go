// Package gameplay provides core game logic for cursor movement and reveals.
package gameplay

import (
	"minefield/pkg/engine/world"
	"minefield/pkg/game/state"
)

// MoveCursor moves the cursor one cell in dir, clamped to the board.
// Returns false if the cursor did not move.
func MoveCursor(g *state.Game, dir world.Direction) bool {
	if !g.AcceptsMoves() || !dir.IsValid() {
		return false
	}

	next := g.Board.Clamp(g.Cursor.Add(dir))
	if next == g.Cursor {
		return false
	}

	g.Cursor = next
	return true
}

// MoveCursorTo places the cursor at pos, clamped to the board
func MoveCursorTo(g *state.Game, pos world.Position) {
	g.Cursor = g.Board.Clamp(pos)
}

// logMessage adds a message key to the game's message log. Renderers
// translate the key when they draw it.
func logMessage(g *state.Game, key string) {
	g.AddMessage(key)
}
