package gameplay

import (
	"github.com/sirupsen/logrus"

	"minefield/pkg/engine/logging"
	"minefield/pkg/engine/world"
	"minefield/pkg/game/minefield"
	"minefield/pkg/game/state"
)

// Message keys added to the game log
const (
	MsgDetonated = "MSG_DETONATED"
	MsgCleared   = "MSG_CLEARED"
)

// Reveal uncovers the cell at pos. A mine detonates the field; a zero cell
// flood-reveals its region; any other cell is revealed on its own.
// Revealing an already revealed cell, or revealing outside Playing, does nothing.
func Reveal(g *state.Game, pos world.Position) minefield.CellKind {
	if !g.AcceptsMoves() || !g.Board.IsValidPosition(pos) {
		return minefield.KindEmpty
	}

	kind := g.Board.Kind(pos)
	if g.Engine.IsRevealed(pos) {
		return kind
	}

	if kind == minefield.KindMine {
		g.Engine.Reveal(pos)
		Detonate(g, pos)
		return kind
	}

	if g.Board.Value(pos) == 0 {
		for _, p := range g.Board.FloodReveal(pos, g.Engine.IsRevealed) {
			revealOne(g, p)
		}
	} else {
		revealOne(g, pos)
	}

	logging.Log.WithFields(logrus.Fields{
		"pos":      pos.String(),
		"value":    g.Board.Value(pos),
		"revealed": g.Revealed,
	}).Debug("cell revealed")

	if g.AllClear() {
		g.Phase = state.PhaseCleared
		logMessage(g, MsgCleared)
		logging.Log.WithField("revealed", g.Revealed).Info("field cleared")
	}

	return kind
}

func revealOne(g *state.Game, pos world.Position) {
	if g.Engine.Reveal(pos) && !g.Board.IsMine(pos) {
		g.Revealed++
	}
}

// Detonate launches the explosion from pos and moves the game to Exploding
func Detonate(g *state.Game, pos world.Position) {
	if err := g.Engine.Prepare(pos, g.Rand); err != nil {
		logging.Log.WithError(err).Warn("detonation ignored")
		return
	}

	g.Phase = state.PhaseExploding
	logMessage(g, MsgDetonated)

	logging.Log.WithFields(logrus.Fields{
		"pos":   pos.String(),
		"mines": g.Board.MineCount(),
	}).Info("mine detonated")
}
