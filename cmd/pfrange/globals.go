package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"

	"github.com/lox/pfrange/internal/config"
)

// Globals are flags shared by every subcommand.
type Globals struct {
	Config  string `short:"c" help:"Path to HCL config file" default:"${config_path}" env:"PFRANGE_CONFIG" type:"path"`
	Debug   bool   `help:"Enable debug logging"`
	NoColor bool   `help:"Disable colored output (also set by NO_COLOR)"`
}

// setup loads configuration and builds the logger for a subcommand.
func (g *Globals) setup(prefix string) (*config.Config, *log.Logger, error) {
	return g.setupTo(os.Stderr, prefix)
}

func (g *Globals) setupTo(w io.Writer, prefix string) (*config.Config, *log.Logger, error) {
	if g.noColor() {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	_, statErr := os.Stat(g.Config)
	missing := errors.Is(statErr, fs.ErrNotExist)

	cfg, err := config.Load(g.Config)
	if err != nil {
		return nil, nil, fmt.Errorf("loading config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, fmt.Errorf("invalid config %s: %w", g.Config, err)
	}

	level := cfg.Level()
	if g.Debug {
		level = log.DebugLevel
	}
	logger := newLogger(w, level).WithPrefix(prefix)
	if missing {
		logger.Debug("Config file not found, using defaults", "path", g.Config)
	} else {
		logger.Debug("Loaded config", "path", g.Config, "mode", cfg.Mode, "log_level", cfg.LogLevel)
	}
	return cfg, logger, nil
}

func (g *Globals) noColor() bool {
	return g.NoColor || os.Getenv("NO_COLOR") != ""
}

// renderer returns a lipgloss renderer for w that honours --no-color.
func (g *Globals) renderer(w io.Writer) *lipgloss.Renderer {
	r := lipgloss.NewRenderer(w)
	if g.noColor() {
		r.SetColorProfile(termenv.Ascii)
	}
	return r
}

func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
		Level:           level,
	})
}

// signalContext returns a context cancelled on interrupt or SIGTERM.
func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}
