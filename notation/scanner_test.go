package notation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScannerPeekAndConsume(t *testing.T) {
	t.Parallel()
	sc := NewScanner("  AKs+ ")
	assert.Equal(t, "AKs+", sc.Input())

	r, ok := sc.Peek()
	assert.True(t, ok)
	assert.Equal(t, 'A', r)
	assert.Equal(t, 0, sc.Pos(), "peek must not advance")

	assert.False(t, sc.ConsumeIf('K'), "mismatch must not consume")
	assert.True(t, sc.ConsumeIf('A'))
	assert.True(t, sc.ConsumeIf('K'))
	assert.True(t, sc.ConsumeIf('s'))
	assert.False(t, sc.AtEnd())
	assert.True(t, sc.ConsumeIf('+'))
	assert.True(t, sc.AtEnd())

	_, ok = sc.Peek()
	assert.False(t, ok)
	assert.False(t, sc.ConsumeIf('+'))
	_, ok = sc.Next()
	assert.False(t, ok)
}

func TestScannerEmptyInputIsNeverAtEnd(t *testing.T) {
	t.Parallel()
	for _, in := range []string{"", "   ", "\t\n"} {
		sc := NewScanner(in)
		assert.False(t, sc.AtEnd(), "%q", in)
		_, ok := sc.Peek()
		assert.False(t, ok)
	}
}
