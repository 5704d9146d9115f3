// Package notation parses shorthand starting-hand range notation such as
// "AQo+", "T9s-", "76" or "TT+" and expands it into concrete hands from the
// canonical table.
//
// Grammar:
//
//	range := hand ( '+' | '-' )?
//	hand  := card card suit?
//	card  := 'A' | 'K' | 'Q' | 'J' | 'T' | '9' | ... | '2'
//	suit  := 's' | 'o'
package notation

import (
	"github.com/lox/pfrange/poker"
)

// Modifier is the optional direction suffix of a range expression.
type Modifier uint8

const (
	// Exact selects only the written hand.
	Exact Modifier = iota
	// OrBetter ('+') selects the written hand and everything above it.
	OrBetter
	// OrWorse ('-') selects the written hand and everything below it.
	OrWorse
)

func (m Modifier) String() string {
	switch m {
	case OrBetter:
		return "+"
	case OrWorse:
		return "-"
	default:
		return ""
	}
}

// Expr is a parsed range expression. Hand may be generic (a non-pair with
// no suit letter).
type Expr struct {
	Hand     poker.Hand
	Modifier Modifier
}

func (e Expr) String() string {
	return e.Hand.String() + e.Modifier.String()
}

// Parse parses a single range expression. Surrounding whitespace is ignored;
// anything else that does not fit the grammar is an error. Ranks may be
// written in either order: "9T" parses as "T9".
func Parse(s string) (Expr, error) {
	sc := NewScanner(s)
	hand, err := parseHand(sc)
	if err != nil {
		return Expr{}, err
	}

	mod := Exact
	switch {
	case sc.ConsumeIf('+'):
		mod = OrBetter
	case sc.ConsumeIf('-'):
		mod = OrWorse
	}

	if !sc.AtEnd() {
		return Expr{}, sc.errorHere()
	}
	return Expr{Hand: hand, Modifier: mod}, nil
}

func parseHand(sc *Scanner) (poker.Hand, error) {
	first, err := parseCard(sc)
	if err != nil {
		return poker.Hand{}, err
	}
	second, err := parseCard(sc)
	if err != nil {
		return poker.Hand{}, err
	}

	if first == second {
		// A pair has no suit relation; a suit letter here is left for the
		// caller to reject.
		return poker.NewHand(first, second, poker.Unspecified), nil
	}

	switch {
	case sc.ConsumeIf('s'):
		return poker.NewHand(first, second, poker.Suited), nil
	case sc.ConsumeIf('o'):
		return poker.NewHand(first, second, poker.Offsuit), nil
	default:
		return poker.NewGenericHand(first, second), nil
	}
}

func parseCard(sc *Scanner) (poker.Rank, error) {
	c, ok := sc.Peek()
	if !ok {
		return 0, sc.errorHere()
	}
	rank, ok := poker.ParseRank(c)
	if !ok {
		return 0, sc.errorHere()
	}
	sc.Next()
	return rank, nil
}
