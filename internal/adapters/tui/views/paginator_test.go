package views

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaginator_Navigation(t *testing.T) {
	p := NewPaginator(3)
	p.SetTotal(7)

	assert.Equal(t, 3, p.TotalPages())
	assert.True(t, p.CursorDown())
	assert.True(t, p.CursorDown())
	assert.True(t, p.CursorDown())
	assert.Equal(t, 3, p.Cursor())
	assert.Equal(t, 2, p.CurrentPage())

	start, end := p.VisibleRange()
	assert.Equal(t, 3, start)
	assert.Equal(t, 6, end)

	assert.True(t, p.NextPage())
	start, end = p.VisibleRange()
	assert.Equal(t, 6, start)
	assert.Equal(t, 7, end)
	assert.False(t, p.NextPage())
	assert.False(t, p.CursorDown())

	assert.True(t, p.PrevPage())
	assert.Equal(t, 3, p.Cursor())
}

func TestPaginator_SetTotalClampsCursor(t *testing.T) {
	p := NewPaginator(5)
	p.SetTotal(10)
	p.SetCursor(9)

	p.SetTotal(4)
	assert.Equal(t, 3, p.Cursor())
	assert.Equal(t, 1, p.CurrentPage())

	p.SetTotal(0)
	assert.Equal(t, 0, p.Cursor())
	assert.Equal(t, 1, p.TotalPages())
	assert.False(t, p.CursorUp())
}

func TestPaginator_SetPageSize(t *testing.T) {
	p := NewPaginator(2)
	p.SetTotal(10)
	p.SetCursor(5)
	assert.Equal(t, 3, p.CurrentPage())

	p.SetPageSize(4)
	start, end := p.VisibleRange()
	assert.Equal(t, 4, start)
	assert.Equal(t, 8, end)

	p.SetPageSize(0)
	assert.Equal(t, 2, p.CurrentPage())
}
