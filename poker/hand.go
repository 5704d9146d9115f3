package poker

import "fmt"

// Hand is a two-card starting hand without specific suits: a high rank, a
// low rank and a suitedness. Hands are comparable values; equality is
// structural.
//
// A finished hand satisfies high >= low, pairs carry Unspecified, and
// non-pairs carry Suited or Offsuit. A non-pair with Unspecified suitedness
// is a generic hand: it only exists as a parsed range threshold and is never
// an entry of the canonical table.
type Hand struct {
	high Rank
	low  Rank
	suit Suitedness
}

// NewHand builds a finished hand from two ranks in either order.
// It panics if a rank is invalid, a pair is given Suited or Offsuit, or a
// non-pair is given Unspecified. Those are programming errors, not input
// errors; user input goes through the notation package.
func NewHand(r1, r2 Rank, suit Suitedness) Hand {
	h := orderedHand(r1, r2, suit)
	if h.high == h.low {
		if suit != Unspecified {
			panic(fmt.Sprintf("poker: pair %s%s cannot be %s", h.high, h.low, suit))
		}
		return h
	}
	if !suit.Specified() {
		panic(fmt.Sprintf("poker: non-pair %s%s must be suited or offsuit, got %s", h.high, h.low, suit))
	}
	return h
}

// NewGenericHand builds a non-pair hand standing for both its suited and
// offsuit forms, as written in notation such as "T9" or "76-".
// It panics if a rank is invalid or the ranks are equal.
func NewGenericHand(r1, r2 Rank) Hand {
	h := orderedHand(r1, r2, Unspecified)
	if h.high == h.low {
		panic(fmt.Sprintf("poker: generic hand needs two ranks, got pair %s%s", h.high, h.low))
	}
	return h
}

func orderedHand(r1, r2 Rank, suit Suitedness) Hand {
	if !r1.Valid() || !r2.Valid() {
		panic(fmt.Sprintf("poker: invalid rank in hand (%d, %d)", uint8(r1), uint8(r2)))
	}
	if r1.Compare(r2) < 0 {
		r1, r2 = r2, r1
	}
	return Hand{high: r1, low: r2, suit: suit}
}

// High returns the higher rank of the hand.
func (h Hand) High() Rank { return h.high }

// Low returns the lower rank of the hand.
func (h Hand) Low() Rank { return h.low }

// Suitedness returns the suitedness of the hand.
func (h Hand) Suitedness() Suitedness { return h.suit }

// IsPair reports whether both cards share a rank.
func (h Hand) IsPair() bool {
	return h.high == h.low
}

// IsGeneric reports whether h is a non-pair with Unspecified suitedness.
func (h Hand) IsGeneric() bool {
	return !h.IsPair() && h.suit == Unspecified
}

// WithSuitedness returns h with its suitedness replaced. It panics under the
// same rules as NewHand.
func (h Hand) WithSuitedness(suit Suitedness) Hand {
	return NewHand(h.high, h.low, suit)
}

// Resolve returns the finished hands h stands for: the suited then offsuit
// forms of a generic hand, otherwise h itself.
func (h Hand) Resolve() []Hand {
	if h.IsGeneric() {
		return []Hand{h.WithSuitedness(Suited), h.WithSuitedness(Offsuit)}
	}
	return []Hand{h}
}

// Combos returns the number of distinct two-card combinations h covers:
// 6 for a pair, 4 suited, 12 offsuit and 16 for a generic hand.
func (h Hand) Combos() int {
	switch {
	case h.IsPair():
		return 6
	case h.suit == Suited:
		return 4
	case h.suit == Offsuit:
		return 12
	default:
		return 16
	}
}

// String renders the hand in range notation, e.g. "AKs", "AKo", "AA".
func (h Hand) String() string {
	return h.high.String() + h.low.String() + h.suit.Suffix()
}

// GoString renders the hand as a Go expression.
func (h Hand) GoString() string {
	return fmt.Sprintf("poker.NewHand(poker.%#v, poker.%#v, poker.%#v)", h.high, h.low, h.suit)
}
