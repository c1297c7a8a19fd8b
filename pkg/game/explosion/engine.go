// Package explosion animates the mine field after a detonation: every cell's
// glyph is launched away from the detonation point and settles under
// multiplicative velocity decay, reflecting off the viewport edges.
package explosion

import (
	"errors"
	"math"
	"math/rand"

	"minefield/pkg/engine/physics"
	"minefield/pkg/engine/world"
	"minefield/pkg/game/config"
	"minefield/pkg/game/minefield"
	"minefield/pkg/game/palette"
)

// ErrAlreadyPrepared is returned when Prepare is called a second time
var ErrAlreadyPrepared = errors.New("explosion already prepared")

// Params tune the launch of the explosion
type Params struct {
	// MinDistance floors the distance to the detonation point
	MinDistance float64
	// Jitter is the half-width of the uniform velocity spread
	Jitter float64
	// IndependentJitter draws a separate spread per axis
	IndependentJitter bool
	// InertEpicenter leaves the detonated cell in place
	InertEpicenter bool
}

// ParamsFromConfig extracts explosion tuning from a game configuration
func ParamsFromConfig(cfg config.Config) Params {
	return Params{
		MinDistance:       cfg.MinDistance,
		Jitter:            cfg.Jitter,
		IndependentJitter: cfg.IndependentJitter,
		InertEpicenter:    cfg.InertEpicenter,
	}
}

// Engine owns the animation state of every cell
type Engine struct {
	board  *minefield.Board
	cells  *world.Grid[Cell]
	params Params
	layout Layout

	width  int
	height int

	detonation world.Position
	prepared   bool
	steps      int
}

// New builds the cells of board at their home positions in a width x height viewport
func New(board *minefield.Board, width, height int, params Params) *Engine {
	e := &Engine{
		board:  board,
		params: params,
		width:  width,
		height: height,
	}

	e.cells = world.NewGridFunc(board.Rows(), board.Cols(), func(pos world.Position) Cell {
		return Cell{
			Decay: InertDecay,
			Glyph: board.Glyph(pos),
			Pair:  palette.Neutral,
		}
	})
	e.Relayout()

	return e
}

// Relayout centers the grid in the current viewport and moves every cell home
func (e *Engine) Relayout() {
	e.layout = CenteredLayout(e.width, e.height, e.cells.Rows(), e.cells.Cols())
	e.cells.ForEachCell(func(pos world.Position, c *Cell) {
		x, y := e.layout.Screen(pos)
		c.X, c.Y = float64(x), float64(y)
	})
}

// SetViewport changes the reflection bounds
func (e *Engine) SetViewport(width, height int) {
	e.width = width
	e.height = height
}

// Viewport returns the reflection bounds
func (e *Engine) Viewport() (width, height int) {
	return e.width, e.height
}

// Layout returns the current grid layout
func (e *Engine) Layout() Layout {
	return e.layout
}

// Cell returns a copy of the cell at pos
func (e *Engine) Cell(pos world.Position) Cell {
	return e.cells.Get(pos)
}

// ForEachCell visits every cell in row-major order. The callback must not
// retain the pointer.
func (e *Engine) ForEachCell(fn func(pos world.Position, c *Cell)) {
	e.cells.ForEachCell(fn)
}

// Reveal marks the cell at pos revealed. Returns false if it already was or pos is off the grid.
func (e *Engine) Reveal(pos world.Position) bool {
	c := e.cells.At(pos)
	if c == nil || c.Revealed {
		return false
	}
	c.Revealed = true
	return true
}

// IsRevealed reports whether the cell at pos has been revealed
func (e *Engine) IsRevealed(pos world.Position) bool {
	c := e.cells.At(pos)
	return c != nil && c.Revealed
}

// Prepared reports whether the explosion has been launched
func (e *Engine) Prepared() bool {
	return e.prepared
}

// Detonation returns the detonation point; meaningful once Prepared
func (e *Engine) Detonation() world.Position {
	return e.detonation
}

// Steps returns the number of steps taken since Prepare
func (e *Engine) Steps() int {
	return e.steps
}

// Prepare launches every cell away from detonation. Speed falls off with
// distance as 1/(Falloff*d) along the offset from the detonation point, and
// decay weakens with distance so far cells coast longer.
func (e *Engine) Prepare(detonation world.Position, rng *rand.Rand) error {
	if e.prepared {
		return ErrAlreadyPrepared
	}

	e.cells.ForEachCell(func(pos world.Position, c *Cell) {
		if e.board.IsMine(pos) {
			c.Pair = palette.Danger
		} else {
			c.Pair = palette.Neutral
		}

		if pos == detonation && e.params.InertEpicenter {
			c.Decay = InertDecay
			physics.SetImpulse(&c.Kinetic, 0, 0)
			return
		}

		distance := math.Max(pos.Distance(detonation), e.params.MinDistance)

		spreadX := e.spread(rng)
		spreadY := spreadX
		if e.params.IndependentJitter {
			spreadY = e.spread(rng)
		}

		speed := 1 / (Falloff * distance)
		physics.SetImpulse(&c.Kinetic,
			speed*float64(pos.Col-detonation.Col)+spreadX,
			speed*float64(pos.Row-detonation.Row)+spreadY,
		)
		c.Decay = math.Max(DecayScale-Falloff*distance, 0)
	})

	e.detonation = detonation
	e.prepared = true
	return nil
}

// spread draws uniformly from [-Jitter, Jitter)
func (e *Engine) spread(rng *rand.Rand) float64 {
	return (rng.Float64()*2 - 1) * e.params.Jitter
}

// Step advances every active cell by one tick, then reflects every cell
// that touches or passes a viewport edge while heading outward
func (e *Engine) Step() {
	width, height := float64(e.width), float64(e.height)

	e.cells.ForEachCell(func(_ world.Position, c *Cell) {
		if c.Active() {
			physics.Integrate(&c.Kinetic)
			physics.Damp(&c.Kinetic, c.Decay/DecayScale)
		}
		physics.ReflectBounds(&c.Kinetic, width, height)
	})

	e.steps++
}
