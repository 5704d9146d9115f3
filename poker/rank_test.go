package poker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRankOrdinal(t *testing.T) {
	t.Parallel()
	ranks := RanksDescending()
	require.Len(t, ranks, RankCount)

	assert.Equal(t, 14, Ace.Ordinal())
	assert.Equal(t, 2, Two.Ordinal())
	for i := 1; i < len(ranks); i++ {
		assert.Greater(t, ranks[i-1].Ordinal(), ranks[i].Ordinal(), "%s should outrank %s", ranks[i-1], ranks[i])
		assert.Equal(t, 1, ranks[i-1].Compare(ranks[i]))
		assert.Equal(t, -1, ranks[i].Compare(ranks[i-1]))
	}
	assert.Equal(t, 0, Ten.Compare(Ten))
	assert.False(t, Rank(0).Valid())
	assert.False(t, Rank(15).Valid())
}

func TestRankSymbolRoundTrip(t *testing.T) {
	t.Parallel()
	want := "AKQJT98765432"
	var got []byte
	for _, r := range RanksDescending() {
		got = append(got, r.Symbol())

		parsed, ok := ParseRank(rune(r.Symbol()))
		require.True(t, ok, "symbol %c should parse", r.Symbol())
		assert.Equal(t, r, parsed)
	}
	assert.Equal(t, want, string(got))
}

func TestParseRankRejects(t *testing.T) {
	t.Parallel()
	for _, c := range []rune{'a', 'k', 't', '1', '0', 'X', ' ', '+'} {
		_, ok := ParseRank(c)
		assert.False(t, ok, "%q should not parse as a rank", c)
	}
}

func TestSuitednessSuffix(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "s", Suited.Suffix())
	assert.Equal(t, "o", Offsuit.Suffix())
	assert.Equal(t, "", Unspecified.Suffix())
	assert.True(t, Suited.Specified())
	assert.True(t, Offsuit.Specified())
	assert.False(t, Unspecified.Specified())
}
