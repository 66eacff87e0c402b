package cursor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hrektts/go-cdr/internal/cursor"
)

func TestPaddingFor_AlignsToWidth(t *testing.T) {
	var c cursor.Cursor
	c.Advance(1)

	assert.Equal(t, 3, c.PaddingFor(4))
	assert.Equal(t, 1, c.PaddingFor(2))
	assert.Equal(t, 0, c.PaddingFor(1))
	assert.Equal(t, 7, c.PaddingFor(8))
}

func TestPaddingFor_ZeroWhenAligned(t *testing.T) {
	var c cursor.Cursor
	c.Advance(8)

	assert.Equal(t, 0, c.PaddingFor(8))
	assert.Equal(t, 0, c.PaddingFor(4))
	assert.Equal(t, 0, c.PaddingFor(2))
}

func TestReset_ZeroesPosition(t *testing.T) {
	var c cursor.Cursor
	c.Advance(13)
	c.Reset()

	assert.Equal(t, uint64(0), c.Pos())
}

func TestPaddingFor_PanicsOnInvalidWidth(t *testing.T) {
	var c cursor.Cursor
	assert.Panics(t, func() { c.PaddingFor(3) })
}
