package poker

//go:generate go run ../cmd/pfrange gen-table --package poker --output table_gen.go

import (
	"iter"
	"slices"
)

// TableSize is the number of distinct starting hands: 13 pairs, 78 suited
// and 78 offsuit hands.
const TableSize = 169

// canonicalIndex maps each canonical hand to its position in canonicalHands.
var canonicalIndex = func() map[Hand]int {
	idx := make(map[Hand]int, TableSize)
	for i, h := range canonicalHands {
		idx[h] = i
	}
	return idx
}()

// Enumerate computes the canonical ordering of all starting hands: high rank
// descending, then low rank descending, with the pair first and each suited
// hand directly before its offsuit form. The generated canonicalHands table
// holds the same sequence.
func Enumerate() []Hand {
	hands := make([]Hand, 0, TableSize)
	for i, high := range ranksDescending {
		for _, low := range ranksDescending[i:] {
			if high == low {
				hands = append(hands, NewHand(high, low, Unspecified))
				continue
			}
			hands = append(hands, NewHand(high, low, Suited), NewHand(high, low, Offsuit))
		}
	}
	return hands
}

// CanonicalHands returns a copy of the canonical hand table.
func CanonicalHands() []Hand {
	return slices.Clone(canonicalHands[:])
}

// CanonicalHand returns the i-th entry of the canonical table.
func CanonicalHand(i int) Hand {
	return canonicalHands[i]
}

// All iterates the canonical table in order without copying it.
func All() iter.Seq2[int, Hand] {
	return func(yield func(int, Hand) bool) {
		for i, h := range canonicalHands {
			if !yield(i, h) {
				return
			}
		}
	}
}

// IndexOf returns the canonical position of h. Generic hands and invalid
// values are not in the table.
func IndexOf(h Hand) (int, bool) {
	i, ok := canonicalIndex[h]
	return i, ok
}

// Filter returns the canonical entries for which keep returns true, in
// canonical order. The result is never longer than TableSize.
func Filter(keep func(Hand) bool) []Hand {
	var out []Hand
	for _, h := range All() {
		if keep(h) {
			out = append(out, h)
		}
	}
	return out
}
