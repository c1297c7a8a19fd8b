package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"minefield/pkg/engine/input"
	"minefield/pkg/engine/logging"
	"minefield/pkg/engine/terminal"
	"minefield/pkg/game/config"
	"minefield/pkg/game/devtools"
	"minefield/pkg/game/gameplay"
	"minefield/pkg/game/renderer"
	ebitenrenderer "minefield/pkg/game/renderer/ebiten"
	"minefield/pkg/game/renderer/tui"
)

// backend is a display that can report its size before the game is built
type backend interface {
	renderer.Backend
	Size() (width, height int)
}

func main() {
	cfg := config.Default()

	flag.StringVar(&cfg.Renderer, "renderer", cfg.Renderer, "display backend: tui or ebiten")
	flag.Int64Var(&cfg.Seed, "seed", 0, "random seed for mine placement (0 picks one from the clock)")
	flag.StringVar(&cfg.Lang, "lang", cfg.Lang, "status line language: "+strings.Join(renderer.Languages(), ", "))
	flag.StringVar(&cfg.LogPath, "log", "", "append logs to this file")
	flag.BoolVar(&cfg.Debug, "debug", false, "log at debug level")
	flag.BoolVar(&cfg.Dump, "dump", false, "print the generated board and exit")
	flag.Usage = usage
	flag.Parse()

	if err := run(cfg); err != nil {
		logging.Log.WithError(err).Error("minefield failed")
		fmt.Fprintf(os.Stderr, "minefield: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg config.Config) error {
	logCloser, err := logging.Configure(cfg.LogPath, cfg.Debug)
	if err != nil {
		return err
	}
	defer logCloser.Close()

	if err := cfg.Validate(); err != nil {
		return err
	}

	if cfg.Dump {
		return dump(os.Stdout, cfg)
	}

	catalog, err := renderer.LoadCatalog(cfg.Lang)
	if err != nil {
		logging.Log.WithError(err).Warn("using default language")
		catalog = renderer.MustLoadCatalog(renderer.DefaultLanguage)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var b backend
	switch cfg.Renderer {
	case config.RendererEbiten:
		b = ebitenrenderer.New(catalog, cfg.TickInterval)
	default:
		t, err := tui.New(catalog, cfg.TickInterval)
		if err != nil {
			return err
		}
		defer t.Fini()
		b = t
	}

	width, height := b.Size()
	g, err := gameplay.BuildGame(cfg, width, height)
	if err != nil {
		return err
	}

	return b.Run(ctx, g)
}

// dump prints a fully revealed board sized for the current terminal
func dump(w io.Writer, cfg config.Config) error {
	width, height := terminal.GetSize()
	g, err := gameplay.BuildGame(cfg, width, height)
	if err != nil {
		return err
	}

	return devtools.DumpBoard(w, g.Board, devtools.DumpOptions{
		Seed:  g.Config.Seed,
		Color: terminal.StdoutIsTerminal(),
		Width: width,
	})
}

// usage prints the flags followed by the key bindings
func usage() {
	out := flag.CommandLine.Output()
	fmt.Fprintf(out, "Usage: %s [flags]\n\nFlags:\n", os.Args[0])
	flag.PrintDefaults()

	fmt.Fprintf(out, "\nKeys:\n")
	byAction := input.GetBindingsByAction()
	for _, act := range []input.Action{
		input.ActionMoveUp,
		input.ActionMoveDown,
		input.ActionMoveLeft,
		input.ActionMoveRight,
		input.ActionSelect,
		input.ActionQuit,
	} {
		fmt.Fprintf(out, "  %-10s %s\n", input.ActionName(act), strings.Join(byAction[act], ", "))
	}
}
