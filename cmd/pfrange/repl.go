package main

import (
	"os"

	"github.com/mattn/go-isatty"

	"github.com/lox/pfrange/internal/repl"
)

// ReplCmd runs the read-expand-print loop.
type ReplCmd struct {
	Plain bool `help:"Use the plain line loop even on a terminal"`
	Grid  bool `help:"Render a 13x13 matrix under every result"`
}

func (c *ReplCmd) Run(g *Globals) error {
	cfg, logger, err := g.setup("repl")
	if err != nil {
		return err
	}

	opts := repl.Options{
		Version:  version,
		Prompt:   cfg.REPL.Prompt,
		Grid:     c.Grid || cfg.REPL.Grid,
		History:  cfg.REPL.History,
		Logger:   logger,
		Renderer: g.renderer(os.Stdout),
	}

	fd := os.Stdin.Fd()
	terminal := isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
	if !terminal || c.Plain || cfg.REPL.Plain {
		opts.Quiet = !terminal
		logger.Debug("Starting plain loop", "terminal", terminal)

		ctx, stop := signalContext()
		defer stop()
		return repl.RunPlain(ctx, os.Stdin, os.Stdout, opts)
	}

	logger.Debug("Starting interactive session")
	return repl.Run(os.Stdin, os.Stdout, opts)
}
