package gameplay

import (
	engineinput "minefield/pkg/engine/input"
	"minefield/pkg/engine/logging"
	"minefield/pkg/engine/world"
	"minefield/pkg/game/state"
)

// ProcessIntent handles a high-level input intent from the tiered input system.
// Outside Playing only Quit is honoured.
func ProcessIntent(g *state.Game, intent engineinput.Intent) {
	if intent.Action == engineinput.ActionQuit {
		Quit(g)
		return
	}

	if !g.AcceptsMoves() {
		return
	}

	switch intent.Action {
	case engineinput.ActionNone:
		return

	case engineinput.ActionMoveUp:
		MoveCursor(g, world.Up)

	case engineinput.ActionMoveDown:
		MoveCursor(g, world.Down)

	case engineinput.ActionMoveLeft:
		MoveCursor(g, world.Left)

	case engineinput.ActionMoveRight:
		MoveCursor(g, world.Right)

	case engineinput.ActionSelect:
		Reveal(g, g.Cursor)
	}
}

// Quit ends the game from any phase
func Quit(g *state.Game) {
	if g.Done() {
		return
	}

	logging.Log.WithField("phase", g.Phase.String()).Info("quit")
	g.Phase = state.PhaseQuit
}
