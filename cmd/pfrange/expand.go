package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/lox/pfrange/internal/grid"
	"github.com/lox/pfrange/notation"
)

// ExpandCmd expands ranges given on the command line and exits.
type ExpandCmd struct {
	Ranges []string `arg:"" help:"Range expressions, e.g. TT+ AQo+ or \"TT+,AQo+\""`
	Grid   bool     `help:"Render a 13x13 matrix of the result"`
	Count  bool     `help:"Print the number of card combinations"`
}

func (c *ExpandCmd) Run(g *Globals) error {
	_, logger, err := g.setup("expand")
	if err != nil {
		return err
	}

	if err := c.expand(os.Stdout, g.renderer(os.Stdout)); err != nil {
		logger.Error("Failed to expand ranges", "ranges", c.Ranges, "error", err)
		return err
	}
	return nil
}

func (c *ExpandCmd) expand(w io.Writer, r *lipgloss.Renderer) error {
	hands, err := notation.ParseList(strings.Join(c.Ranges, ","))
	if err != nil {
		return err
	}

	fmt.Fprintln(w, notation.Join(hands))
	if c.Grid {
		fmt.Fprintln(w, grid.New(r).Render(hands))
	}
	if c.Count {
		fmt.Fprintf(w, "%d hands, %s\n", len(hands), grid.Summary(hands))
	}
	return nil
}
