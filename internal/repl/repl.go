// Package repl implements the interactive range expansion loop: each line
// of comma-separated range notation is expanded and printed, and parse errors
// are reported without ending the session.
package repl

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/lox/pfrange/internal/grid"
	"github.com/lox/pfrange/notation"
	"github.com/lox/pfrange/poker"
)

// Options configures both the interactive and the plain loop.
type Options struct {
	Version string
	Prompt  string
	// Grid renders the 13x13 matrix under every result.
	Grid bool
	// History caps the number of results kept on screen in interactive mode.
	History int
	// Quiet suppresses the banner and prompt in plain mode.
	Quiet    bool
	Logger   *log.Logger
	Renderer *lipgloss.Renderer
}

func (o Options) logger() *log.Logger {
	if o.Logger == nil {
		return log.New(io.Discard)
	}
	return o.Logger
}

// Result is the outcome of evaluating one line.
type Result struct {
	Input string
	Hands []poker.Hand
	Err   error
}

// Evaluate expands a line of comma-separated ranges.
func Evaluate(line string) Result {
	hands, err := notation.ParseList(line)
	return Result{Input: line, Hands: hands, Err: err}
}

// Banner returns the greeting shown when a session starts.
func Banner(version string) string {
	return fmt.Sprintf("PFRange %s\nPress Ctrl+c to exit\n", version)
}

type styles struct {
	err   lipgloss.Style
	hands lipgloss.Style
	info  lipgloss.Style
	echo  lipgloss.Style
	grid  *grid.Renderer
}

func newStyles(r *lipgloss.Renderer) styles {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	return styles{
		err:   r.NewStyle().Foreground(lipgloss.Color("#FF6B6B")).Bold(true),
		hands: r.NewStyle().Foreground(lipgloss.Color("#96CEB4")),
		info:  r.NewStyle().Foreground(lipgloss.Color("#626262")),
		echo:  r.NewStyle().Foreground(lipgloss.Color("#04B575")).Bold(true),
		grid:  grid.New(r),
	}
}

// format renders a result for display. Parse errors point at the offending
// character of the failing token.
func (s styles) format(res Result, withGrid bool) string {
	if res.Err != nil {
		var b strings.Builder
		b.WriteString(s.err.Render("error: " + res.Err.Error()))
		var pe *notation.ParseError
		if errors.As(res.Err, &pe) && pe.Input != "" {
			fmt.Fprintf(&b, "\n  %s\n  %s^", pe.Input, strings.Repeat(" ", pe.Pos))
		}
		return b.String()
	}

	var b strings.Builder
	b.WriteString(s.hands.Render(notation.Join(res.Hands)))
	if withGrid {
		b.WriteString("\n")
		b.WriteString(s.grid.Render(res.Hands))
		b.WriteString("\n")
		b.WriteString(s.info.Render(fmt.Sprintf("%d hands, %s", len(res.Hands), grid.Summary(res.Hands))))
	}
	return b.String()
}

func logResult(logger *log.Logger, res Result) {
	if res.Err != nil {
		logger.Warn("Failed to parse ranges", "input", res.Input, "error", res.Err)
		return
	}
	logger.Debug("Expanded ranges", "input", res.Input, "hands", len(res.Hands))
}
