package chart

import (
	"fmt"
	"strings"
)

// Position is a seat at a full-ring table, in acting order preflop.
type Position int

const (
	EarlyPosition1 Position = iota
	EarlyPosition2
	EarlyPosition3
	LowJack
	HighJack
	Cutoff
	Button
	SmallBlind
)

var positionCodes = [...]string{"EP1", "EP2", "EP3", "LJ", "HJ", "CO", "BTN", "SB"}

// String returns the short code used in chart files, e.g. "CO".
func (p Position) String() string {
	if p < 0 || int(p) >= len(positionCodes) {
		return fmt.Sprintf("Position(%d)", int(p))
	}
	return positionCodes[p]
}

// ParsePosition accepts a chart position code, case-insensitively.
func ParsePosition(s string) (Position, error) {
	code := strings.ToUpper(strings.TrimSpace(s))
	for i, c := range positionCodes {
		if c == code {
			return Position(i), nil
		}
	}
	return 0, fmt.Errorf("unknown position %q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (p Position) MarshalText() ([]byte, error) {
	if p < 0 || int(p) >= len(positionCodes) {
		return nil, fmt.Errorf("unknown position %d", int(p))
	}
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *Position) UnmarshalText(text []byte) error {
	parsed, err := ParsePosition(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}
