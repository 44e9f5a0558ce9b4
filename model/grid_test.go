package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoard_SetAndAlive(t *testing.T) {
	t.Parallel()

	b := NewBoard(3, 4)
	require.Equal(t, 3, b.Rows())
	require.Equal(t, 4, b.Cols())
	assert.Zero(t, b.Population())

	b.Set(1, 2, true)
	assert.True(t, b.Alive(1, 2))
	assert.False(t, b.Alive(2, 1))

	// Out of range writes are dropped and reads are dead.
	b.Set(-1, 0, true)
	b.Set(3, 0, true)
	b.Set(0, 4, true)
	assert.False(t, b.Alive(-1, 0))
	assert.False(t, b.Alive(3, 0))
	assert.Equal(t, 1, b.Population())
}

func TestBoard_IsBorder(t *testing.T) {
	t.Parallel()

	b := NewBoard(4, 5)
	for _, cell := range [][2]int{{0, 0}, {0, 2}, {3, 4}, {2, 0}, {1, 4}} {
		assert.True(t, b.IsBorder(cell[0], cell[1]), "(%d, %d)", cell[0], cell[1])
	}
	for _, cell := range [][2]int{{1, 1}, {2, 3}, {1, 2}} {
		assert.False(t, b.IsBorder(cell[0], cell[1]), "(%d, %d)", cell[0], cell[1])
	}
}

func TestBoard_FirstLiveBorderCell(t *testing.T) {
	t.Parallel()

	b := NewBoard(4, 4)
	b.Set(1, 1, true)
	_, _, found := b.FirstLiveBorderCell()
	assert.False(t, found)

	// Columns are scanned before rows.
	b.Set(0, 2, true)
	b.Set(2, 3, true)
	row, col, found := b.FirstLiveBorderCell()
	require.True(t, found)
	assert.Equal(t, [2]int{2, 3}, [2]int{row, col})

	_, _, found = NewBoard(0, 0).FirstLiveBorderCell()
	assert.False(t, found)
}

func TestBoard_CloneEqualHash(t *testing.T) {
	t.Parallel()

	b := NewBoard(5, 5)
	b.Set(2, 2, true)

	clone := b.Clone()
	require.True(t, b.Equal(clone))
	require.Equal(t, b.Hash(), clone.Hash())

	clone.Set(2, 3, true)
	assert.False(t, b.Alive(2, 3), "the clone must not share cells")
	assert.False(t, b.Equal(clone))
	assert.NotEqual(t, b.Hash(), clone.Hash())

	// Same cells, different shape.
	assert.NotEqual(t, NewBoard(2, 3).Hash(), NewBoard(3, 2).Hash())
	assert.False(t, NewBoard(2, 3).Equal(NewBoard(3, 2)))
	assert.False(t, b.Equal(nil))
}

func TestBoard_CountNeighbors(t *testing.T) {
	t.Parallel()

	b := boardFromRows(t,
		".....",
		".XXX.",
		".XXX.",
		".XXX.",
		".....",
	)
	assert.Equal(t, 8, b.CountNeighbors(2, 2))
	assert.Equal(t, 3, b.CountNeighbors(1, 1))
	assert.Equal(t, 5, b.CountNeighbors(1, 2))
}
