// Package poker models preflop starting hands: card ranks, suitedness, the
// partial order used by range notation and the canonical table of all 169
// distinct starting hands.
package poker

import "fmt"

// Rank represents a card rank, Two through Ace.
type Rank uint8

const (
	Two Rank = iota + 2
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// RankCount is the number of distinct card ranks.
const RankCount = 13

// ranksDescending lists every rank from strongest to weakest.
var ranksDescending = [RankCount]Rank{Ace, King, Queen, Jack, Ten, Nine, Eight, Seven, Six, Five, Four, Three, Two}

// RanksDescending returns all ranks from Ace down to Two.
func RanksDescending() [RankCount]Rank {
	return ranksDescending
}

// Ordinal returns the ranking key of r: 2 for Two up to 14 for Ace.
// Comparisons between ranks go through Ordinal rather than the raw value.
func (r Rank) Ordinal() int {
	switch r {
	case Two:
		return 2
	case Three:
		return 3
	case Four:
		return 4
	case Five:
		return 5
	case Six:
		return 6
	case Seven:
		return 7
	case Eight:
		return 8
	case Nine:
		return 9
	case Ten:
		return 10
	case Jack:
		return 11
	case Queen:
		return 12
	case King:
		return 13
	case Ace:
		return 14
	default:
		return 0
	}
}

// Valid reports whether r is one of the 13 card ranks.
func (r Rank) Valid() bool {
	return r.Ordinal() != 0
}

// Compare returns -1, 0 or +1 depending on whether r ranks below, equal to
// or above other.
func (r Rank) Compare(other Rank) int {
	a, b := r.Ordinal(), other.Ordinal()
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// Symbol returns the single character notation for the rank (A, K, ... 2).
func (r Rank) Symbol() byte {
	switch r {
	case Ace:
		return 'A'
	case King:
		return 'K'
	case Queen:
		return 'Q'
	case Jack:
		return 'J'
	case Ten:
		return 'T'
	case Nine:
		return '9'
	case Eight:
		return '8'
	case Seven:
		return '7'
	case Six:
		return '6'
	case Five:
		return '5'
	case Four:
		return '4'
	case Three:
		return '3'
	case Two:
		return '2'
	default:
		return '?'
	}
}

func (r Rank) String() string {
	return string(r.Symbol())
}

// GoString returns the Go identifier of the rank constant.
func (r Rank) GoString() string {
	switch r {
	case Ace:
		return "Ace"
	case King:
		return "King"
	case Queen:
		return "Queen"
	case Jack:
		return "Jack"
	case Ten:
		return "Ten"
	case Nine:
		return "Nine"
	case Eight:
		return "Eight"
	case Seven:
		return "Seven"
	case Six:
		return "Six"
	case Five:
		return "Five"
	case Four:
		return "Four"
	case Three:
		return "Three"
	case Two:
		return "Two"
	default:
		return fmt.Sprintf("Rank(%d)", uint8(r))
	}
}

// ParseRank converts a notation character to a Rank. Matching is
// case-sensitive: only uppercase face letters are accepted.
func ParseRank(c rune) (Rank, bool) {
	switch c {
	case 'A':
		return Ace, true
	case 'K':
		return King, true
	case 'Q':
		return Queen, true
	case 'J':
		return Jack, true
	case 'T':
		return Ten, true
	case '9':
		return Nine, true
	case '8':
		return Eight, true
	case '7':
		return Seven, true
	case '6':
		return Six, true
	case '5':
		return Five, true
	case '4':
		return Four, true
	case '3':
		return Three, true
	case '2':
		return Two, true
	default:
		return 0, false
	}
}
