package ebiten

import (
	"context"
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/sirupsen/logrus"

	"minefield/pkg/engine/logging"
	"minefield/pkg/game/gameplay"
	"minefield/pkg/game/renderer"
	"minefield/pkg/game/state"
)

// Backend runs a game in a window. It implements ebiten.Game.
type Backend struct {
	ctx     context.Context
	game    *state.Game
	catalog *renderer.Catalog
	face    text.Face

	clock   *gameplay.Clock
	ticking bool

	cols int
	rows int
	keys []ebiten.Key

	windowOpenedLogged bool
}

// New creates a window backend stepping the explosion once per tickInterval
func New(catalog *renderer.Catalog, tickInterval time.Duration) *Backend {
	return &Backend{
		catalog: catalog,
		face:    newMonoFace(),
		clock:   gameplay.NewClock(tickInterval),
		cols:    defaultCols,
		rows:    defaultRows,
	}
}

// Size returns the initial window size in character cells
func (b *Backend) Size() (width, height int) {
	return defaultCols, defaultRows
}

// Run opens the window and blocks until the game is quit, the window is
// closed, or ctx is done.
func (b *Backend) Run(ctx context.Context, g *state.Game) error {
	b.ctx = ctx
	b.game = g

	ebiten.SetWindowSize(defaultCols*cellWidth, defaultRows*cellHeight)
	ebiten.SetWindowTitle(windowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(ticksPerSecond)

	if err := ebiten.RunGame(b); err != nil {
		return fmt.Errorf("run window: %w", err)
	}

	logging.Log.WithFields(logrus.Fields{
		"phase": g.Phase.String(),
		"steps": g.Engine.Steps(),
	}).Info("window loop finished")
	return nil
}

// Update handles input and advances the explosion (Ebiten interface)
func (b *Backend) Update() error {
	g := b.game

	if !b.windowOpenedLogged {
		b.windowOpenedLogged = true
		w, h := ebiten.WindowSize()
		logging.Log.WithFields(logrus.Fields{"width": w, "height": h}).Info("window opened")
	}

	if b.ctx.Err() != nil {
		gameplay.Quit(g)
	}

	gameplay.Resize(g, b.cols, b.rows)

	for _, intent := range b.checkInput() {
		gameplay.ProcessIntent(g, intent)
	}

	if g.Phase == state.PhaseExploding {
		now := time.Now()
		if !b.ticking {
			b.ticking = true
			b.clock.Reset(now)
		}
		for n := b.clock.Advance(now); n > 0; n-- {
			gameplay.Tick(g)
		}
	}

	if g.Done() {
		return ebiten.Termination
	}
	return nil
}

// Draw renders the game frame (Ebiten interface)
func (b *Backend) Draw(screen *ebiten.Image) {
	s := &surface{
		screen: screen,
		face:   b.face,
		cols:   b.cols,
		rows:   b.rows,
	}
	renderer.DrawFrame(s, b.game, b.catalog)
}
