package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/lox/pfrange/internal/chart"
	"github.com/lox/pfrange/internal/config"
	"github.com/lox/pfrange/notation"
	"github.com/lox/pfrange/poker"
)

// ChartCmd loads a per-position chart and prints its expanded ranges.
type ChartCmd struct {
	File     string `arg:"" optional:"" help:"Chart JSON file (defaults to the config chart)" type:"path"`
	Mode     string `help:"beginner (raise/fold) or advanced (adds raise-or-fold); defaults to the config mode"`
	Position string `short:"p" help:"Only show one position, e.g. CO"`
	Hand     string `help:"Show the action for a hand at each position, e.g. AKo"`
}

func (c *ChartCmd) Run(g *Globals) error {
	cfg, logger, err := g.setup("chart")
	if err != nil {
		return err
	}

	file := c.File
	if file == "" {
		file = cfg.Chart
	}
	if file == "" {
		return errors.New("chart requires a file argument or chart in the config")
	}

	mode := config.Mode(cfg.Mode)
	if c.Mode != "" {
		mode = config.Mode(c.Mode)
	}
	if !mode.Valid() {
		return fmt.Errorf("invalid mode: %s", mode)
	}

	entries, err := chart.Load(file)
	if err != nil {
		return err
	}
	if c.Position != "" {
		entries, err = filterPosition(entries, c.Position)
		if err != nil {
			return err
		}
	}

	ctx, stop := signalContext()
	defer stop()
	ranges, err := chart.Expand(ctx, entries)
	if err != nil {
		return err
	}
	logger.Info("Expanded chart", "file", file, "positions", len(ranges), "mode", mode)

	if c.Hand != "" {
		hands, err := notation.ParseRange(c.Hand)
		if err != nil {
			return fmt.Errorf("invalid hand %q: %w", c.Hand, err)
		}
		printLookup(os.Stdout, ranges, hands, mode)
		return nil
	}
	printChart(os.Stdout, ranges, mode)
	return nil
}

func filterPosition(entries []chart.Entry, code string) ([]chart.Entry, error) {
	pos, err := chart.ParsePosition(code)
	if err != nil {
		return nil, err
	}
	for _, e := range entries {
		if e.Position == pos {
			return []chart.Entry{e}, nil
		}
	}
	return nil, fmt.Errorf("position %s not in chart", pos)
}

func printChart(w io.Writer, ranges []chart.PositionRange, mode config.Mode) {
	for _, pr := range ranges {
		fmt.Fprintf(w, "%-4s raise: %s\n", pr.Position, notation.Join(pr.Raise))
		if mode == config.Advanced {
			fmt.Fprintf(w, "%-4s raise or fold: %s\n", pr.Position, notation.Join(pr.Mixed))
		}
	}
}

func printLookup(w io.Writer, ranges []chart.PositionRange, hands []poker.Hand, mode config.Mode) {
	for _, pr := range ranges {
		for _, h := range hands {
			action := pr.Action(h)
			if mode == config.Beginner {
				action = action.Simplified()
			}
			fmt.Fprintf(w, "%-4s %-3s %s\n", pr.Position, h, action)
		}
	}
}
