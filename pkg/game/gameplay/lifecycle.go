package gameplay

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"

	"minefield/pkg/engine/logging"
	"minefield/pkg/game/config"
	"minefield/pkg/game/explosion"
	"minefield/pkg/game/minefield"
	"minefield/pkg/game/state"
)

// BuildGame creates a new game in a width x height viewport. A zero seed
// picks a time-based one; the seed used is stored back in the game's config.
func BuildGame(cfg config.Config, width, height int) (*state.Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	cfg.Seed = seed
	rng := rand.New(rand.NewSource(seed))

	board, err := minefield.NewBoard(rng, cfg.Rows, cfg.Cols, cfg.Mines)
	if err != nil {
		return nil, fmt.Errorf("build board: %w", err)
	}

	engine := explosion.New(board, width, height, explosion.ParamsFromConfig(cfg))
	g := state.NewGame(cfg, board, engine, rng)

	logging.Log.WithFields(logrus.Fields{
		"seed":     seed,
		"rows":     cfg.Rows,
		"cols":     cfg.Cols,
		"mines":    cfg.Mines,
		"viewport": fmt.Sprintf("%dx%d", width, height),
	}).Info("game built")

	return g, nil
}

// Tick advances the explosion by one step. Returns false if the game is not exploding.
func Tick(g *state.Game) bool {
	if g.Phase != state.PhaseExploding {
		return false
	}

	g.Engine.Step()
	return true
}

// Resize updates the viewport bounds. While Playing the field is re-centered;
// once detonated the cells keep flying and only the reflection bounds move.
func Resize(g *state.Game, width, height int) {
	if w, h := g.Engine.Viewport(); w == width && h == height {
		return
	}

	g.Engine.SetViewport(width, height)
	if g.Phase == state.PhasePlaying {
		g.Engine.Relayout()
	}

	logging.Log.WithFields(logrus.Fields{
		"width":  width,
		"height": height,
		"phase":  g.Phase.String(),
	}).Debug("viewport resized")
}
