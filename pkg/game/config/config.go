// Package config holds the game constants and runtime options.
package config

import (
	"errors"
	"fmt"
	"time"
)

// Field dimensions. These are fixed; there is no difficulty selection.
const (
	DefaultRows  = 15
	DefaultCols  = 15
	DefaultMines = 20
)

// Explosion tuning
const (
	DefaultTickInterval = time.Millisecond
	DefaultMinDistance  = 1e-3
	DefaultJitter       = 1.0 / 64
)

// Renderer backends
const (
	RendererTUI    = "tui"
	RendererEbiten = "ebiten"
)

// ErrInvalidConfig is returned (wrapped) by Validate
var ErrInvalidConfig = errors.New("invalid configuration")

// Config describes one game session
type Config struct {
	Rows  int
	Cols  int
	Mines int

	// TickInterval is the pause between explosion steps
	TickInterval time.Duration

	// Seed for the game RNG; 0 means time-based
	Seed int64

	// MinDistance floors the distance to the detonation point so the
	// detonated cell never divides by zero
	MinDistance float64

	// Jitter is the half-width of the uniform spread added to velocities
	Jitter float64

	// IndependentJitter draws a separate spread for each axis
	IndependentJitter bool

	// InertEpicenter keeps the detonated cell in place
	InertEpicenter bool

	Renderer string
	Lang     string
	LogPath  string
	Debug    bool
	Dump     bool
}

// Default returns the reference configuration: 15x15 with 20 mines
func Default() Config {
	return Config{
		Rows:         DefaultRows,
		Cols:         DefaultCols,
		Mines:        DefaultMines,
		TickInterval: DefaultTickInterval,
		MinDistance:  DefaultMinDistance,
		Jitter:       DefaultJitter,
		Renderer:     RendererTUI,
		Lang:         "en",
	}
}

// Cells returns the number of cells in the field
func (c Config) Cells() int {
	return c.Rows * c.Cols
}

// Validate rejects configurations that would hang the mine sampler or
// produce a numeric singularity in the explosion
func (c Config) Validate() error {
	if c.Rows <= 0 || c.Cols <= 0 {
		return fmt.Errorf("%w: field dimensions %dx%d must be positive", ErrInvalidConfig, c.Rows, c.Cols)
	}
	if c.Mines < 0 {
		return fmt.Errorf("%w: mine count %d is negative", ErrInvalidConfig, c.Mines)
	}
	if c.Mines >= c.Cells() {
		return fmt.Errorf("%w: mine count %d must be less than the %d cells", ErrInvalidConfig, c.Mines, c.Cells())
	}
	if c.TickInterval <= 0 {
		return fmt.Errorf("%w: tick interval %v must be positive", ErrInvalidConfig, c.TickInterval)
	}
	if c.MinDistance <= 0 || c.MinDistance >= 1 {
		return fmt.Errorf("%w: minimum distance %v must be in (0, 1)", ErrInvalidConfig, c.MinDistance)
	}
	if c.Jitter < 0 {
		return fmt.Errorf("%w: jitter %v is negative", ErrInvalidConfig, c.Jitter)
	}
	switch c.Renderer {
	case RendererTUI, RendererEbiten:
	default:
		return fmt.Errorf("%w: unknown renderer %q", ErrInvalidConfig, c.Renderer)
	}
	return nil
}
