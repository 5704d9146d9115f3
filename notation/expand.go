package notation

import (
	"fmt"
	"strings"

	"github.com/lox/pfrange/poker"
)

// Expand returns the canonical hands e denotes, in canonical table order.
//
// Without a modifier a pair or a suited/offsuit hand yields itself and a
// generic hand yields its suited then offsuit forms. With '+' every table
// entry at or above the threshold is kept; a generic threshold applies to
// the suited and offsuit families independently. With '-' entries at or
// below the threshold are kept, and a suited or offsuit threshold is
// additionally held to its own suitedness.
func Expand(e Expr) []poker.Hand {
	if e.Modifier == Exact {
		return e.Hand.Resolve()
	}

	refs := e.Hand.Resolve()
	generic := e.Hand.IsGeneric()
	return poker.Filter(func(h poker.Hand) bool {
		for _, ref := range refs {
			if matches(h, ref, e.Modifier, generic) {
				return true
			}
		}
		return false
	})
}

func matches(h, ref poker.Hand, mod Modifier, generic bool) bool {
	switch mod {
	case OrBetter:
		return h.AtLeast(ref)
	case OrWorse:
		if generic {
			return h.AtMost(ref)
		}
		return h.AtMost(ref) && h.Suitedness() == ref.Suitedness()
	default:
		return h == ref
	}
}

// ParseRange parses and expands a single range expression.
func ParseRange(s string) ([]poker.Hand, error) {
	e, err := Parse(s)
	if err != nil {
		return nil, err
	}
	return Expand(e), nil
}

// ParseList expands a comma-separated list of range expressions, such as
// "TT+, AQo+, 76-", into one flattened sequence. Each token is expanded
// independently and results are concatenated in input order, so a hand
// covered by two tokens appears twice. The first failing token aborts the
// list; its *ParseError is wrapped and reachable with errors.As.
func ParseList(line string) ([]poker.Hand, error) {
	var out []poker.Hand
	for i, tok := range strings.Split(line, ",") {
		hands, err := ParseRange(tok)
		if err != nil {
			return nil, fmt.Errorf("invalid range %q (token %d): %w", strings.TrimSpace(tok), i+1, err)
		}
		out = append(out, hands...)
	}
	return out, nil
}

// Join renders hands as a comma-separated list, the inverse of ParseList for
// finished hands.
func Join(hands []poker.Hand) string {
	var b strings.Builder
	for i, h := range hands {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(h.String())
	}
	return b.String()
}
