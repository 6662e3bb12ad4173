// Package config reads startup settings from an optional .env file,
// MALEFACTOR_* environment variables and command line flags, in that order
// of increasing precedence.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"malefactor/pkg/engine/input"
	"malefactor/pkg/engine/world"
	"malefactor/pkg/game/generator"
)

// Renderer names
const (
	RendererTUI    = "tui"
	RendererTcell  = "tcell"
	RendererEbiten = "ebiten"
)

var (
	ErrInvalidSize     = errors.New("invalid map size")
	ErrInvalidDepth    = errors.New("depth must be at least 1")
	ErrUnknownRenderer = errors.New("unknown renderer")
	ErrInvalidFOV      = errors.New("fov radius must be positive")
)

// Minimum map size any builder can place a room in.
const (
	MinWidth  = 20
	MinHeight = 20
)

// Config holds the game's startup settings.
type Config struct {
	Width, Height  int
	Depth          int
	Seed           int64
	Builder        string
	Renderer       string
	ShowBoundaries bool
	FOVRadius      int
	Retries        int
	LogLevel       string
	Locale         string
	LocaleDir      string
	Dump           bool
	Bindings       []string // "action=key", applied in order
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Width:          80,
		Height:         50,
		Depth:          1,
		Builder:        generator.KindRandom,
		Renderer:       RendererTUI,
		ShowBoundaries: true,
		FOVRadius:      world.FOVRadius,
		Retries:        10,
		LogLevel:       "warn",
		Locale:         "en_GB",
		LocaleDir:      "locales",
	}
}

// Load builds a Config from .env, the environment and args (without the
// program name). A missing .env file is not an error. A zero seed is
// replaced by the caller with a time based one.
func Load(args []string) (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		logrus.WithError(err).Warn("ignoring unreadable .env")
	}
	cfg := Default()
	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return cfg, err
	}
	if err := cfg.parseFlags(args, io.Discard); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

// applyEnv overrides fields from MALEFACTOR_* variables.
func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	ints := map[string]*int{
		"MALEFACTOR_WIDTH":   &c.Width,
		"MALEFACTOR_HEIGHT":  &c.Height,
		"MALEFACTOR_DEPTH":   &c.Depth,
		"MALEFACTOR_FOV":     &c.FOVRadius,
		"MALEFACTOR_RETRIES": &c.Retries,
	}
	for key, dst := range ints {
		v, ok := lookup(key)
		if !ok {
			continue
		}
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
		*dst = n
	}

	strs := map[string]*string{
		"MALEFACTOR_BUILDER":    &c.Builder,
		"MALEFACTOR_RENDERER":   &c.Renderer,
		"MALEFACTOR_LOG_LEVEL":  &c.LogLevel,
		"MALEFACTOR_LOCALE":     &c.Locale,
		"MALEFACTOR_LOCALE_DIR": &c.LocaleDir,
	}
	for key, dst := range strs {
		if v, ok := lookup(key); ok {
			*dst = strings.TrimSpace(v)
		}
	}

	if v, ok := lookup("MALEFACTOR_BINDINGS"); ok {
		for _, b := range strings.Split(v, ",") {
			if b = strings.TrimSpace(b); b != "" {
				c.Bindings = append(c.Bindings, b)
			}
		}
	}
	if v, ok := lookup("MALEFACTOR_SEED"); ok {
		n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		if err != nil {
			return fmt.Errorf("MALEFACTOR_SEED: %w", err)
		}
		c.Seed = n
	}
	if v, ok := lookup("MALEFACTOR_BOUNDARIES"); ok {
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("MALEFACTOR_BOUNDARIES: %w", err)
		}
		c.ShowBoundaries = b
	}
	return nil
}

func (c *Config) parseFlags(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("malefactor", flag.ContinueOnError)
	fs.SetOutput(out)
	fs.IntVar(&c.Width, "width", c.Width, "map width in tiles")
	fs.IntVar(&c.Height, "height", c.Height, "map height in tiles")
	fs.IntVar(&c.Depth, "level", c.Depth, "starting depth (for developer testing)")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "random seed, 0 picks one from the clock")
	fs.StringVar(&c.Builder, "builder", c.Builder, "map builder: "+strings.Join(generator.Kinds(), ", "))
	fs.StringVar(&c.Renderer, "renderer", c.Renderer, "display: tui, tcell or ebiten")
	fs.BoolVar(&c.ShowBoundaries, "boundaries", c.ShowBoundaries, "draw the area outside the map")
	fs.IntVar(&c.FOVRadius, "fov", c.FOVRadius, "player field of view radius")
	fs.IntVar(&c.Retries, "retries", c.Retries, "whole-level generation attempts")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "logrus level")
	fs.StringVar(&c.Locale, "locale", c.Locale, "message catalogue language")
	fs.StringVar(&c.LocaleDir, "locale-dir", c.LocaleDir, "message catalogue directory")
	fs.BoolVar(&c.Dump, "dump", c.Dump, "print the generated map and exit")
	fs.Func("bind", "rebind a key as action=key (repeatable)", func(v string) error {
		c.Bindings = append(c.Bindings, v)
		return nil
	})
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("parse flags: %w", err)
	}
	return nil
}

// Validate checks sizes and names.
func (c Config) Validate() error {
	if c.Width < MinWidth || c.Height < MinHeight {
		return fmt.Errorf("%dx%d, minimum %dx%d: %w", c.Width, c.Height, MinWidth, MinHeight, ErrInvalidSize)
	}
	if c.Depth < 1 {
		return fmt.Errorf("depth %d: %w", c.Depth, ErrInvalidDepth)
	}
	if c.FOVRadius < 1 {
		return fmt.Errorf("fov %d: %w", c.FOVRadius, ErrInvalidFOV)
	}
	if !known(c.Builder, generator.Kinds()) {
		return fmt.Errorf("%q: %w", c.Builder, generator.ErrUnknownBuilder)
	}
	if !known(c.Renderer, []string{RendererTUI, RendererTcell, RendererEbiten}) {
		return fmt.Errorf("%q: %w", c.Renderer, ErrUnknownRenderer)
	}
	for _, b := range c.Bindings {
		if _, _, err := input.ParseBinding(b); err != nil {
			return fmt.Errorf("bind: %w", err)
		}
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	return nil
}

func known(name string, names []string) bool {
	for _, n := range names {
		if strings.EqualFold(n, name) {
			return true
		}
	}
	return false
}
