// Package chart loads per-position preflop charts and expands their range
// strings into concrete hands.
//
// A chart file is a JSON array:
//
//	[
//	  {"position": "CO", "schema": {"raise": "TT+,AQo+", "raise_or_fold": "76-"}}
//	]
package chart

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"runtime"
	"slices"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/lox/pfrange/notation"
	"github.com/lox/pfrange/poker"
)

// Schema holds the range strings for one position.
type Schema struct {
	Raise       string `json:"raise"`
	RaiseOrFold string `json:"raise_or_fold"`
}

// Entry is one position of a chart file.
type Entry struct {
	Position Position `json:"position"`
	Schema   Schema   `json:"schema"`
}

// Load reads a chart file from disk.
func Load(filename string) ([]Entry, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open chart: %w", err)
	}
	defer f.Close()

	entries, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read chart %s: %w", filename, err)
	}
	return entries, nil
}

// Decode reads a chart from r.
func Decode(r io.Reader) ([]Entry, error) {
	var entries []Entry
	if err := json.NewDecoder(r).Decode(&entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// Action is what a chart recommends for a hand.
type Action int

const (
	Fold Action = iota
	Raise
	// Mixed hands are raised some of the time and folded otherwise.
	Mixed
)

func (a Action) String() string {
	switch a {
	case Raise:
		return "raise"
	case Mixed:
		return "raise or fold"
	default:
		return "fold"
	}
}

// Simplified collapses Mixed into Fold for raise/fold-only play.
func (a Action) Simplified() Action {
	if a == Mixed {
		return Fold
	}
	return a
}

// PositionRange is an expanded chart entry.
type PositionRange struct {
	Position Position
	Raise    []poker.Hand
	Mixed    []poker.Hand
}

// Action returns the recommendation for h. A hand listed in both sets is a
// raise.
func (pr PositionRange) Action(h poker.Hand) Action {
	switch {
	case slices.Contains(pr.Raise, h):
		return Raise
	case slices.Contains(pr.Mixed, h):
		return Mixed
	default:
		return Fold
	}
}

// Expand parses every entry's range strings concurrently. Results keep the
// order of entries. The first invalid range cancels the remaining work and is
// returned with its position attached.
func Expand(ctx context.Context, entries []Entry) ([]PositionRange, error) {
	out := make([]PositionRange, len(entries))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, e := range entries {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			raise, err := expandField(e.Schema.Raise)
			if err != nil {
				return fmt.Errorf("%s raise: %w", e.Position, err)
			}
			mixed, err := expandField(e.Schema.RaiseOrFold)
			if err != nil {
				return fmt.Errorf("%s raise_or_fold: %w", e.Position, err)
			}
			out[i] = PositionRange{Position: e.Position, Raise: raise, Mixed: mixed}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// expandField treats a blank string as an empty range.
func expandField(s string) ([]poker.Hand, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	return notation.ParseList(s)
}
