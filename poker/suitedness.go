package poker

// Suitedness describes whether the two cards of a starting hand share a suit.
type Suitedness uint8

const (
	// Unspecified is the only valid suitedness for a pair. On a non-pair it
	// marks a generic hand that stands for both its suited and offsuit forms.
	Unspecified Suitedness = iota
	Suited
	Offsuit
)

// Suffix returns the notation suffix: "s", "o", or "" for Unspecified.
func (s Suitedness) Suffix() string {
	switch s {
	case Suited:
		return "s"
	case Offsuit:
		return "o"
	default:
		return ""
	}
}

func (s Suitedness) String() string {
	switch s {
	case Suited:
		return "suited"
	case Offsuit:
		return "offsuit"
	case Unspecified:
		return "unspecified"
	default:
		return "invalid"
	}
}

// GoString returns the Go identifier of the suitedness constant.
func (s Suitedness) GoString() string {
	switch s {
	case Suited:
		return "Suited"
	case Offsuit:
		return "Offsuit"
	default:
		return "Unspecified"
	}
}

// Specified reports whether s is Suited or Offsuit.
func (s Suitedness) Specified() bool {
	return s == Suited || s == Offsuit
}
