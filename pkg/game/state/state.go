package state

import (
	"math/rand"

	"minefield/pkg/engine/world"
	"minefield/pkg/game/config"
	"minefield/pkg/game/explosion"
	"minefield/pkg/game/minefield"
)

// Phase is the game's position in its lifecycle
type Phase int

// Phases. Exploding and Cleared accept only Quit; Quit is terminal.
const (
	PhasePlaying Phase = iota
	PhaseExploding
	PhaseCleared
	PhaseQuit
)

// String returns the name of the phase
func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "Playing"
	case PhaseExploding:
		return "Exploding"
	case PhaseCleared:
		return "Cleared"
	case PhaseQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Game represents the state of one minefield session
type Game struct {
	Config config.Config

	Board  *minefield.Board
	Engine *explosion.Engine
	Rand   *rand.Rand

	Cursor world.Position
	Phase  Phase

	// Revealed counts revealed non-mine cells
	Revealed int

	Messages []string
}

// NewGame creates a game around an already built board and engine
func NewGame(cfg config.Config, board *minefield.Board, engine *explosion.Engine, rng *rand.Rand) *Game {
	return &Game{
		Config:   cfg,
		Board:    board,
		Engine:   engine,
		Rand:     rng,
		Phase:    PhasePlaying,
		Messages: make([]string, 0),
	}
}

// AcceptsMoves reports whether the cursor and reveals are live
func (g *Game) AcceptsMoves() bool {
	return g.Phase == PhasePlaying
}

// Done reports whether the game has been quit
func (g *Game) Done() bool {
	return g.Phase == PhaseQuit
}

// AllClear reports whether every non-mine cell has been revealed
func (g *Game) AllClear() bool {
	return g.Revealed == g.Board.Cells()-g.Board.MineCount()
}

// AddMessage adds a message to the game's message log
func (g *Game) AddMessage(msg string) {
	const maxMessages = 5
	g.Messages = append(g.Messages, msg)

	// Keep only the last maxMessages
	if len(g.Messages) > maxMessages {
		g.Messages = g.Messages[len(g.Messages)-maxMessages:]
	}
}

// LastMessage returns the newest message, or ""
func (g *Game) LastMessage() string {
	if len(g.Messages) == 0 {
		return ""
	}
	return g.Messages[len(g.Messages)-1]
}
