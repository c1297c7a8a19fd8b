// Package tui is the terminal backend: a tcell screen surface and the
// control loop that drives a game from key events and the explosion ticker.
package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"

	"minefield/pkg/engine/input"
	"minefield/pkg/engine/logging"
	"minefield/pkg/game/gameplay"
	"minefield/pkg/game/palette"
	"minefield/pkg/game/renderer"
	"minefield/pkg/game/state"
)

// eventBuffer is the capacity of the channel between the event pump and the loop
const eventBuffer = 100

// Terminal colors behind each pair, in pair order (the eight-color ANSI set)
var pairColors = [...]tcell.Color{
	tcell.ColorMaroon,
	tcell.ColorGreen,
	tcell.ColorOlive,
	tcell.ColorNavy,
	tcell.ColorPurple,
	tcell.ColorTeal,
	tcell.ColorSilver,
}

// Style returns the tcell style of a color pair: black bold text on the
// pair's background. PairNone maps to the terminal default.
func Style(p palette.Pair) tcell.Style {
	if !p.IsValid() {
		return tcell.StyleDefault
	}
	return tcell.StyleDefault.
		Foreground(tcell.ColorBlack).
		Background(pairColors[p-1]).
		Bold(true)
}

// KeyCode maps a tcell key to the device-independent code used by the input bindings
func KeyCode(key tcell.Key, r rune) string {
	switch key {
	case tcell.KeyUp:
		return "arrow_up"
	case tcell.KeyDown:
		return "arrow_down"
	case tcell.KeyLeft:
		return "arrow_left"
	case tcell.KeyRight:
		return "arrow_right"
	case tcell.KeyEscape:
		return "escape"
	case tcell.KeyCtrlC:
		return "ctrl_c"
	case tcell.KeyRune:
		if r == ' ' {
			return "space"
		}
		return string(r)
	}
	return ""
}

// Surface adapts a tcell screen to renderer.Surface
type Surface struct {
	screen tcell.Screen
}

// NewSurface wraps an initialised screen
func NewSurface(screen tcell.Screen) *Surface {
	return &Surface{screen: screen}
}

// Size returns the screen size in cells
func (s *Surface) Size() (width, height int) {
	return s.screen.Size()
}

// SetCell writes one glyph in the style of pair
func (s *Surface) SetCell(x, y int, glyph rune, pair palette.Pair) {
	s.screen.SetContent(x, y, glyph, nil, Style(pair))
}

// Clear blanks the screen
func (s *Surface) Clear() {
	s.screen.Clear()
}

// Show flushes the frame to the terminal
func (s *Surface) Show() {
	s.screen.Show()
}

// Backend runs a game on a terminal screen
type Backend struct {
	screen       tcell.Screen
	surface      *Surface
	catalog      *renderer.Catalog
	tickInterval time.Duration
}

// New opens and initialises the terminal screen
func New(catalog *renderer.Catalog, tickInterval time.Duration) (*Backend, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	return NewWithScreen(screen, catalog, tickInterval), nil
}

// NewWithScreen builds a backend on an already initialised screen
func NewWithScreen(screen tcell.Screen, catalog *renderer.Catalog, tickInterval time.Duration) *Backend {
	screen.HideCursor()
	screen.SetStyle(tcell.StyleDefault)
	return &Backend{
		screen:       screen,
		surface:      NewSurface(screen),
		catalog:      catalog,
		tickInterval: tickInterval,
	}
}

// Size returns the terminal size in cells
func (b *Backend) Size() (width, height int) {
	return b.screen.Size()
}

// Fini restores the terminal
func (b *Backend) Fini() {
	b.screen.Fini()
}

// Run drives g until it is quit or ctx is done. While Playing the loop
// blocks on the next event; while Exploding it advances one step per tick.
func (b *Backend) Run(ctx context.Context, g *state.Game) error {
	events := make(chan tcell.Event, eventBuffer)
	done := make(chan struct{})
	defer close(done)
	go b.pump(events, done)

	var ticker *time.Ticker
	var tick <-chan time.Time
	defer func() {
		if ticker != nil {
			ticker.Stop()
		}
	}()

	b.draw(g)
	for !g.Done() {
		if g.Phase == state.PhaseExploding && ticker == nil {
			ticker = time.NewTicker(b.tickInterval)
			tick = ticker.C
		}

		select {
		case <-ctx.Done():
			logging.Log.WithError(ctx.Err()).Info("terminal loop cancelled")
			gameplay.Quit(g)
			return nil

		case ev := <-events:
			b.handleEvent(g, ev)

		case <-tick:
			gameplay.Tick(g)
		}

		b.draw(g)
	}

	logging.Log.WithFields(logrus.Fields{
		"phase": g.Phase.String(),
		"steps": g.Engine.Steps(),
	}).Info("terminal loop finished")
	return nil
}

// pump forwards screen events until the screen is finalised or Run returns
func (b *Backend) pump(events chan<- tcell.Event, done <-chan struct{}) {
	for {
		ev := b.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-done:
			return
		}
	}
}

func (b *Backend) handleEvent(g *state.Game, ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		code := KeyCode(ev.Key(), ev.Rune())
		gameplay.ProcessIntent(g, input.FromCode(input.DeviceTerminal, code))

	case *tcell.EventResize:
		b.screen.Sync()
		w, h := b.screen.Size()
		gameplay.Resize(g, w, h)
	}
}

func (b *Backend) draw(g *state.Game) {
	renderer.DrawFrame(b.surface, g, b.catalog)
}
