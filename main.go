package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/leonelquinteros/gotext"
	"github.com/sirupsen/logrus"

	"malefactor/pkg/engine/dice"
	"malefactor/pkg/engine/input"
	"malefactor/pkg/game/camera"
	"malefactor/pkg/game/config"
	"malefactor/pkg/game/devtools"
	"malefactor/pkg/game/renderer/ebiten"
	tcellsink "malefactor/pkg/game/renderer/tcell"
	"malefactor/pkg/game/renderer/tui"
	"malefactor/pkg/game/state"
)

func initLogging(level string) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.WarnLevel
	}
	logrus.SetLevel(lvl)
	logrus.SetOutput(os.Stderr)
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
}

func initGettext(cfg config.Config) {
	gotext.Configure(cfg.LocaleDir, cfg.Locale, "default")
}

// buildGame creates the game for cfg
func buildGame(cfg config.Config) (*state.Game, error) {
	opts := camera.DefaultOptions
	opts.ShowBoundaries = cfg.ShowBoundaries

	return state.NewGame(state.Settings{
		Width:     cfg.Width,
		Height:    cfg.Height,
		Depth:     cfg.Depth,
		Builder:   cfg.Builder,
		Retries:   cfg.Retries,
		FOVRadius: cfg.FOVRadius,
		Render:    opts,
		RNG:       dice.New(cfg.Seed),
	})
}

func main() {
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	initLogging(cfg.LogLevel)
	initGettext(cfg)
	logrus.WithFields(logrus.Fields{
		"seed":     cfg.Seed,
		"builder":  cfg.Builder,
		"renderer": cfg.Renderer,
	}).Info("starting")

	g, err := buildGame(cfg)
	if err != nil {
		logrus.WithError(err).Fatal("could not generate the first level")
	}

	for _, b := range cfg.Bindings {
		if err := input.ApplyBinding(b); err != nil {
			logrus.WithError(err).Fatal("bad key binding")
		}
	}
	g.DumpLevel = func(l *state.Level) (string, error) {
		return devtools.DumpToFile(l, cfg.Seed)
	}

	if cfg.Dump {
		if err := devtools.Dump(os.Stdout, g.Level, cfg.Seed); err != nil {
			logrus.WithError(err).Fatal("dump failed")
		}
		return
	}

	switch cfg.Renderer {
	case config.RendererTcell:
		err = runTcell(g)
	case config.RendererEbiten:
		err = runEbiten(g)
	default:
		err = runTUI(g)
	}
	if err != nil {
		logrus.WithError(err).Fatal("game exited")
	}
}

// runTUI redraws the whole screen with ANSI colours after every key.
func runTUI(g *state.Game) error {
	for {
		tui.Clear(os.Stdout)
		sink := tui.New(0, 0)
		g.Draw(sink)
		if err := sink.Flush(os.Stdout); err != nil {
			return err
		}
		if err := sink.WriteMessages(os.Stdout, g.Status(), g.Messages); err != nil {
			return err
		}

		raw, err := input.ReadTerminalKey()
		if errors.Is(err, input.ErrInterrupted) {
			return nil
		}
		if err != nil {
			return err
		}
		if g.Handle(input.Resolve(raw)) {
			return nil
		}
	}
}

func runTcell(g *state.Game) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("tcell screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("tcell init: %w", err)
	}
	defer screen.Fini()

	g.ShowHUD = true
	sink := tcellsink.New(screen)
	for {
		screen.Clear()
		g.Draw(sink)
		screen.Show()

		switch ev := screen.PollEvent().(type) {
		case *tcell.EventResize:
			screen.Sync()
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyCtrlC {
				return nil
			}
			if g.Handle(input.Resolve(input.FromTcell(ev))) {
				return nil
			}
		case nil:
			return nil
		}
	}
}

func runEbiten(g *state.Game) error {
	g.ShowHUD = true
	win, err := ebiten.New(g, "Malefactor")
	if err != nil {
		return err
	}
	return win.Run()
}
