package chart

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/pfrange/notation"
	"github.com/lox/pfrange/poker"
)

const sampleChart = `[
  {"position": "EP1", "schema": {"raise": "TT+,AKs", "raise_or_fold": "99"}},
  {"position": "co",  "schema": {"raise": "22+,AQo+", "raise_or_fold": ""}},
  {"position": "SB",  "schema": {"raise": "", "raise_or_fold": "76-"}}
]`

func TestLoad(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "ranges.json")
	require.NoError(t, os.WriteFile(path, []byte(sampleChart), 0o644))

	entries, err := Load(path)
	require.NoError(t, err)
	require.Len(t, entries, 3)

	assert.Equal(t, EarlyPosition1, entries[0].Position)
	assert.Equal(t, "TT+,AKs", entries[0].Schema.Raise)
	assert.Equal(t, Cutoff, entries[1].Position)
	assert.Equal(t, SmallBlind, entries[2].Position)
	assert.Equal(t, "76-", entries[2].Schema.RaiseOrFold)
}

func TestLoadErrors(t *testing.T) {
	t.Parallel()
	_, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	assert.ErrorContains(t, err, "failed to open chart")

	_, err = Decode(strings.NewReader(`[{"position": "UTG+9", "schema": {}}]`))
	assert.ErrorContains(t, err, `unknown position "UTG+9"`)

	_, err = Decode(strings.NewReader(`{"position": "CO"}`))
	assert.Error(t, err, "a chart must be an array")
}

func TestExpand(t *testing.T) {
	t.Parallel()
	entries, err := Decode(strings.NewReader(sampleChart))
	require.NoError(t, err)

	ranges, err := Expand(context.Background(), entries)
	require.NoError(t, err)
	require.Len(t, ranges, 3)

	assert.Equal(t, EarlyPosition1, ranges[0].Position)
	assert.Equal(t, "AA, KK, QQ, JJ, TT, AKs", notation.Join(ranges[0].Raise))
	assert.Equal(t, "99", notation.Join(ranges[0].Mixed))

	assert.Len(t, ranges[1].Raise, 13+2)
	assert.Empty(t, ranges[1].Mixed)

	assert.Empty(t, ranges[2].Raise)
	assert.Len(t, ranges[2].Mixed, 10)
}

func TestExpandReportsPosition(t *testing.T) {
	t.Parallel()
	entries := []Entry{
		{Position: Button, Schema: Schema{Raise: "AA"}},
		{Position: HighJack, Schema: Schema{Raise: "KK", RaiseOrFold: "ATk"}},
	}
	_, err := Expand(context.Background(), entries)
	require.Error(t, err)
	assert.ErrorContains(t, err, "HJ raise_or_fold")
	assert.ErrorIs(t, err, notation.ErrInvalidToken)
}

func TestExpandCancelled(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Expand(ctx, []Entry{{Position: Button, Schema: Schema{Raise: "AA"}}})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestPositionRangeAction(t *testing.T) {
	t.Parallel()
	entries, err := Decode(strings.NewReader(sampleChart))
	require.NoError(t, err)
	ranges, err := Expand(context.Background(), entries)
	require.NoError(t, err)

	ep1 := ranges[0]
	aa := poker.NewHand(poker.Ace, poker.Ace, poker.Unspecified)
	nines := poker.NewHand(poker.Nine, poker.Nine, poker.Unspecified)
	ako := poker.NewHand(poker.Ace, poker.King, poker.Offsuit)

	assert.Equal(t, Raise, ep1.Action(aa))
	assert.Equal(t, Mixed, ep1.Action(nines))
	assert.Equal(t, Fold, ep1.Action(ako))

	assert.Equal(t, Fold, ep1.Action(nines).Simplified())
	assert.Equal(t, Raise, ep1.Action(aa).Simplified())
}

func TestPositionText(t *testing.T) {
	t.Parallel()
	for p := EarlyPosition1; p <= SmallBlind; p++ {
		text, err := p.MarshalText()
		require.NoError(t, err)

		var back Position
		require.NoError(t, back.UnmarshalText(text))
		assert.Equal(t, p, back)
	}
	assert.Equal(t, "Position(12)", Position(12).String())
	_, err := Position(-1).MarshalText()
	assert.Error(t, err)
}
