package notation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/pfrange/poker"
)

func TestParse(t *testing.T) {
	t.Parallel()
	tests := []struct {
		input string
		want  Expr
	}{
		{"AA", Expr{Hand: poker.NewHand(poker.Ace, poker.Ace, poker.Unspecified)}},
		{"AKs", Expr{Hand: poker.NewHand(poker.Ace, poker.King, poker.Suited)}},
		{"AQo+", Expr{Hand: poker.NewHand(poker.Ace, poker.Queen, poker.Offsuit), Modifier: OrBetter}},
		{"T9s-", Expr{Hand: poker.NewHand(poker.Ten, poker.Nine, poker.Suited), Modifier: OrWorse}},
		{"76-", Expr{Hand: poker.NewGenericHand(poker.Seven, poker.Six), Modifier: OrWorse}},
		{"T9", Expr{Hand: poker.NewGenericHand(poker.Ten, poker.Nine)}},
		{"TT+", Expr{Hand: poker.NewHand(poker.Ten, poker.Ten, poker.Unspecified), Modifier: OrBetter}},
		{" 9Ts ", Expr{Hand: poker.NewHand(poker.Ten, poker.Nine, poker.Suited)}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := Parse(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseErrors(t *testing.T) {
	t.Parallel()
	tests := []struct {
		input string
		kind  ErrorKind
		char  rune
		pos   int
	}{
		{"ATk", InvalidToken, 'k', 2},
		{"XX", InvalidToken, 'X', 0},
		{"Ak", InvalidToken, 'k', 1},
		{"aK", InvalidToken, 'a', 0},
		{"AKx", InvalidToken, 'x', 2},
		{"AKs+x", InvalidToken, 'x', 4},
		{"AKs++", InvalidToken, '+', 4},
		{"TTs", InvalidToken, 's', 2},
		{"AA-KK", InvalidToken, 'K', 3},
		{"A+", InvalidToken, '+', 1},
		{"", EndOfLine, 0, 0},
		{"   ", EndOfLine, 0, 0},
		{"A", EndOfLine, 0, 1},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, err := Parse(tt.input)
			require.Error(t, err)

			var pe *ParseError
			require.True(t, errors.As(err, &pe))
			assert.Equal(t, tt.kind, pe.Kind)
			assert.Equal(t, tt.char, pe.Char)
			assert.Equal(t, tt.pos, pe.Pos)
		})
	}
}

func TestParseErrorMatching(t *testing.T) {
	t.Parallel()
	_, err := Parse("ATk")
	assert.ErrorIs(t, err, ErrInvalidToken)
	assert.NotErrorIs(t, err, ErrEndOfLine)
	assert.EqualError(t, err, `unexpected token 'k' at position 2`)

	_, err = Parse("K")
	assert.ErrorIs(t, err, ErrEndOfLine)
	assert.EqualError(t, err, "unexpected end of line")
}

func TestParseRoundTripsCanonicalTable(t *testing.T) {
	t.Parallel()
	for _, h := range poker.All() {
		e, err := Parse(h.String())
		require.NoError(t, err, h.String())
		assert.Equal(t, Exact, e.Modifier)
		assert.Equal(t, h, e.Hand)
	}
}
