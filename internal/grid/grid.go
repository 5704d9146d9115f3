// Package grid renders a set of starting hands as the familiar 13x13 range
// matrix: pairs on the diagonal, suited hands above it, offsuit below.
package grid

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/lox/pfrange/poker"
)

// TotalCombos is the number of distinct two-card holdings in a deck.
const TotalCombos = 1326

// At returns the hand shown at row, col of the matrix. Rows and columns run
// from Ace (0) to Two (12).
func At(row, col int) poker.Hand {
	ranks := poker.RanksDescending()
	switch {
	case row == col:
		return poker.NewHand(ranks[row], ranks[col], poker.Unspecified)
	case row < col:
		return poker.NewHand(ranks[row], ranks[col], poker.Suited)
	default:
		return poker.NewHand(ranks[col], ranks[row], poker.Offsuit)
	}
}

// Renderer draws range matrices with lipgloss styles bound to one output.
type Renderer struct {
	pair    lipgloss.Style
	suited  lipgloss.Style
	offsuit lipgloss.Style
	empty   lipgloss.Style
}

// New builds a Renderer. A nil r uses the default lipgloss renderer.
func New(r *lipgloss.Renderer) *Renderer {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	cell := r.NewStyle().Width(4)
	return &Renderer{
		pair:    cell.Foreground(lipgloss.Color("#FFD700")).Bold(true),
		suited:  cell.Foreground(lipgloss.Color("#96CEB4")).Bold(true),
		offsuit: cell.Foreground(lipgloss.Color("#FF6B6B")).Bold(true),
		empty:   cell.Foreground(lipgloss.Color("#626262")),
	}
}

// Render draws the matrix with every hand in hands highlighted. Unselected
// cells are dimmed. Rows are separated by newlines.
func (r *Renderer) Render(hands []poker.Hand) string {
	selected := newSelection(hands)

	var b strings.Builder
	for row := range poker.RankCount {
		cells := make([]string, poker.RankCount)
		for col := range poker.RankCount {
			h := At(row, col)
			cells[col] = r.style(h, selected.has(h)).Render(h.String())
		}
		b.WriteString(strings.TrimRight(lipgloss.JoinHorizontal(lipgloss.Top, cells...), " "))
		if row < poker.RankCount-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func (r *Renderer) style(h poker.Hand, selected bool) lipgloss.Style {
	switch {
	case !selected:
		return r.empty
	case h.IsPair():
		return r.pair
	case h.Suitedness() == poker.Suited:
		return r.suited
	default:
		return r.offsuit
	}
}

// selection marks entries of the canonical table. A generic hand marks both
// its suited and offsuit forms.
type selection [poker.TableSize]bool

func newSelection(hands []poker.Hand) *selection {
	var s selection
	for _, h := range hands {
		for _, c := range h.Resolve() {
			if i, ok := poker.IndexOf(c); ok {
				s[i] = true
			}
		}
	}
	return &s
}

func (s *selection) has(h poker.Hand) bool {
	i, ok := poker.IndexOf(h)
	return ok && s[i]
}

// Combos counts the distinct card combinations covered by hands, ignoring
// duplicates, and returns the count with its share of all holdings.
func Combos(hands []poker.Hand) (int, float64) {
	selected := newSelection(hands)
	var n int
	for i, h := range poker.All() {
		if selected[i] {
			n += h.Combos()
		}
	}
	return n, float64(n) / TotalCombos
}

// Summary renders a one-line description such as "20 combos (1.5%)".
func Summary(hands []poker.Hand) string {
	n, share := Combos(hands)
	return fmt.Sprintf("%d combos (%.1f%%)", n, share*100)
}
