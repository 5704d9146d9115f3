package repl

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/pfrange/notation"
)

func testOptions() Options {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.Ascii)
	return Options{
		Version:  "test",
		Prompt:   "Enter ranges: ",
		History:  3,
		Logger:   log.NewWithOptions(io.Discard, log.Options{Level: log.ErrorLevel}),
		Renderer: r,
	}
}

func TestEvaluate(t *testing.T) {
	res := Evaluate("AQo+, TT+")
	require.NoError(t, res.Err)
	assert.Equal(t, "AKo, AQo, AA, KK, QQ, JJ, TT", notation.Join(res.Hands))

	res = Evaluate("ATk")
	assert.ErrorIs(t, res.Err, notation.ErrInvalidToken)
	assert.Nil(t, res.Hands)
}

func TestFormatErrorPointsAtCharacter(t *testing.T) {
	st := newStyles(testOptions().Renderer)
	out := st.format(Evaluate("AA, ATk"), false)

	lines := strings.Split(out, "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, `error: invalid range "ATk" (token 2): unexpected token 'k' at position 2`, lines[0])
	assert.Equal(t, "  ATk", lines[1])
	assert.Equal(t, "    ^", lines[2])
}

func TestFormatWithGrid(t *testing.T) {
	st := newStyles(testOptions().Renderer)
	out := st.format(Evaluate("AA"), true)

	lines := strings.Split(out, "\n")
	require.Len(t, lines, 1+13+1)
	assert.Equal(t, "AA", lines[0])
	assert.Equal(t, "1 hands, 6 combos (0.5%)", lines[len(lines)-1])
}

func TestRunPlain(t *testing.T) {
	opts := testOptions()
	opts.Quiet = true
	in := strings.NewReader("AQo+\n\n  T9s-  \nATk\nTT+\n")
	var out bytes.Buffer

	require.NoError(t, RunPlain(context.Background(), in, &out, opts))

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	require.Len(t, lines, 6)
	assert.Equal(t, "AKo, AQo", lines[0])
	assert.Equal(t, "T9s, T8s, T7s, T6s, T5s, T4s, T3s, T2s", lines[1])
	assert.True(t, strings.HasPrefix(lines[2], "error: "), "errors are reported and the loop continues")
	assert.Equal(t, "AA, KK, QQ, JJ, TT", lines[5])
}

func TestRunPlainBanner(t *testing.T) {
	opts := testOptions()
	var out bytes.Buffer

	require.NoError(t, RunPlain(context.Background(), strings.NewReader("AA\n"), &out, opts))
	assert.True(t, strings.HasPrefix(out.String(), "PFRange test\nPress Ctrl+c to exit\n"))
	assert.Contains(t, out.String(), "Enter ranges: AA\n")
}

func TestRunPlainCancelled(t *testing.T) {
	opts := testOptions()
	opts.Quiet = true
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := RunPlain(ctx, strings.NewReader("AA\n"), io.Discard, opts)
	assert.ErrorIs(t, err, context.Canceled)
}

func typeLine(m *Model, line string) {
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(line)})
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
}

func TestModelSubmit(t *testing.T) {
	m := NewModel(testOptions())

	typeLine(m, "TT+")
	typeLine(m, "ATk")
	typeLine(m, "   ")

	results := m.Results()
	require.Len(t, results, 2, "blank lines are ignored")
	assert.Equal(t, "TT+", results[0].Input)
	assert.Len(t, results[0].Hands, 5)
	assert.Error(t, results[1].Err)
	assert.False(t, m.Quitting())

	view := m.View()
	assert.Contains(t, view, "PFRange test")
	assert.Contains(t, view, "AA, KK, QQ, JJ, TT")
	assert.Contains(t, view, "unexpected token 'k'")
}

func TestModelHistoryLimit(t *testing.T) {
	m := NewModel(testOptions())
	for _, line := range []string{"AA", "KK", "QQ", "JJ"} {
		typeLine(m, line)
	}

	results := m.Results()
	require.Len(t, results, 3)
	assert.Equal(t, "KK", results[0].Input)
	assert.Equal(t, "JJ", results[2].Input)
}

func TestModelQuit(t *testing.T) {
	for _, key := range []tea.KeyType{tea.KeyCtrlC, tea.KeyEsc} {
		m := NewModel(testOptions())
		_, cmd := m.Update(tea.KeyMsg{Type: key})
		require.NotNil(t, cmd)
		assert.IsType(t, tea.QuitMsg{}, cmd())
		assert.True(t, m.Quitting())
		assert.Empty(t, m.View())
	}
}
