package poker

// Group classifies how two hands relate under range notation ordering.
// Hands are only ordered against each other inside one group.
type Group uint8

const (
	// Incomparable hands have no defined order: different top ranks, a pair
	// against a non-pair, or suited against offsuit.
	Incomparable Group = iota
	// PairGroup holds two pairs, ordered by their rank.
	PairGroup
	// SuitedGroup holds two non-pairs with the same top rank and the same
	// specified suitedness, ordered by the low rank.
	SuitedGroup
	// GenericGroup holds two non-pairs with the same top rank where at least
	// one is generic, ordered by the low rank regardless of suitedness.
	GenericGroup
)

func (g Group) String() string {
	switch g {
	case PairGroup:
		return "pair"
	case SuitedGroup:
		return "same-suitedness"
	case GenericGroup:
		return "generic"
	default:
		return "incomparable"
	}
}

// Classify returns the comparison group shared by a and b.
func Classify(a, b Hand) Group {
	aPair, bPair := a.IsPair(), b.IsPair()
	switch {
	case aPair && bPair:
		return PairGroup
	case aPair || bPair:
		return Incomparable
	case a.high != b.high:
		return Incomparable
	case a.suit == Unspecified || b.suit == Unspecified:
		return GenericGroup
	case a.suit == b.suit:
		return SuitedGroup
	default:
		return Incomparable
	}
}

// Ordering is the result of comparing two hands.
type Ordering int8

const (
	Unordered Ordering = iota
	Less
	Equal
	Greater
)

func (o Ordering) String() string {
	switch o {
	case Less:
		return "less"
	case Equal:
		return "equal"
	case Greater:
		return "greater"
	default:
		return "unordered"
	}
}

// Compare orders a against b. It returns Unordered when Classify puts the
// hands in no common group.
func Compare(a, b Hand) Ordering {
	var c int
	switch Classify(a, b) {
	case PairGroup:
		c = a.high.Compare(b.high)
	case SuitedGroup, GenericGroup:
		c = a.low.Compare(b.low)
	default:
		return Unordered
	}
	switch {
	case c < 0:
		return Less
	case c > 0:
		return Greater
	default:
		return Equal
	}
}

// AtLeast reports whether h is ordered at or above ref.
func (h Hand) AtLeast(ref Hand) bool {
	o := Compare(h, ref)
	return o == Greater || o == Equal
}

// AtMost reports whether h is ordered at or below ref.
func (h Hand) AtMost(ref Hand) bool {
	o := Compare(h, ref)
	return o == Less || o == Equal
}
