package main

import (
	"os"

	"github.com/lox/pfrange/internal/codegen"
	"github.com/lox/pfrange/internal/fileutil"
	"github.com/lox/pfrange/poker"
)

// GenTableCmd writes the canonical hand table as Go source.
type GenTableCmd struct {
	Package string `default:"poker" help:"Package name of the generated file"`
	Output  string `short:"o" default:"table_gen.go" help:"Output file, or - for stdout"`
}

func (c *GenTableCmd) Run(g *Globals) error {
	_, logger, err := g.setup("gen-table")
	if err != nil {
		return err
	}

	src, err := codegen.Table(c.Package)
	if err != nil {
		return err
	}

	if c.Output == "-" {
		_, err := os.Stdout.Write(src)
		return err
	}
	if err := fileutil.WriteFileAtomic(c.Output, src, 0o644); err != nil {
		return err
	}
	logger.Info("Wrote canonical hand table", "path", c.Output, "package", c.Package, "hands", poker.TableSize)
	return nil
}
