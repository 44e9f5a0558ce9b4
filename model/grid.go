package model

import (
	"crypto/md5"
	"fmt"
)

// Board represents a bounded game board. Cells are true when alive.
type Board struct {
	rows  int
	cols  int
	cells [][]bool
}

// NewBoard creates a board of the given dimensions with every cell dead
func NewBoard(rows, cols int) *Board {
	rows, cols = max(rows, 0), max(cols, 0)
	cells := make([][]bool, rows)
	for i := range cells {
		cells[i] = make([]bool, cols)
	}
	return &Board{
		rows:  rows,
		cols:  cols,
		cells: cells,
	}
}

// Rows returns the number of rows of the board
func (b *Board) Rows() int {
	return b.rows
}

// Cols returns the number of columns of the board
func (b *Board) Cols() int {
	return b.cols
}

// Set sets a cell to alive (true) or dead (false). Out of range coordinates are ignored.
func (b *Board) Set(row, col int, alive bool) {
	if b.inBounds(row, col) {
		b.cells[row][col] = alive
	}
}

// Alive returns the state of a cell. Out of range coordinates are dead.
func (b *Board) Alive(row, col int) bool {
	if !b.inBounds(row, col) {
		return false
	}
	return b.cells[row][col]
}

func (b *Board) inBounds(row, col int) bool {
	return row >= 0 && row < b.rows && col >= 0 && col < b.cols
}

// IsBorder reports whether the cell lies on the outermost ring of the board
func (b *Board) IsBorder(row, col int) bool {
	return row == 0 || col == 0 || row == b.rows-1 || col == b.cols-1
}

// FirstLiveBorderCell returns the first live cell on the border, scanning the
// left and right columns top to bottom, then the top and bottom rows left to
// right. ok is false when the border is entirely dead.
func (b *Board) FirstLiveBorderCell() (row, col int, ok bool) {
	if b.rows == 0 || b.cols == 0 {
		return 0, 0, false
	}
	last := b.cols - 1
	for r := range b.rows {
		if b.cells[r][0] {
			return r, 0, true
		}
		if b.cells[r][last] {
			return r, last, true
		}
	}
	bottom := b.rows - 1
	for c := range b.cols {
		if b.cells[0][c] {
			return 0, c, true
		}
		if b.cells[bottom][c] {
			return bottom, c, true
		}
	}
	return 0, 0, false
}

// clearBorder forces every border cell dead
func (b *Board) clearBorder() {
	if b.rows == 0 || b.cols == 0 {
		return
	}
	for r := range b.rows {
		b.cells[r][0] = false
		b.cells[r][b.cols-1] = false
	}
	for c := range b.cols {
		b.cells[0][c] = false
		b.cells[b.rows-1][c] = false
	}
}

// CountNeighbors counts the live cells in the Moore neighborhood of (row, col).
// Only interior cells are passed in by the engine, so the reads never leave the board.
func (b *Board) CountNeighbors(row, col int) (count int) {
	for r := row - 1; r <= row+1; r++ {
		for c := col - 1; c <= col+1; c++ {
			if r == row && c == col {
				continue
			}
			if b.cells[r][c] {
				count++
			}
		}
	}
	return
}

// Population returns the total number of living cells
func (b *Board) Population() (count int) {
	for r := range b.rows {
		for c := range b.cols {
			if b.cells[r][c] {
				count++
			}
		}
	}
	return
}

// Clone returns a deep copy of the board
func (b *Board) Clone() *Board {
	next := NewBoard(b.rows, b.cols)
	next.copyFrom(b)
	return next
}

func (b *Board) copyFrom(src *Board) {
	for r := range b.rows {
		copy(b.cells[r], src.cells[r])
	}
}

// Equal reports whether both boards have the same dimensions and cells
func (b *Board) Equal(other *Board) bool {
	if other == nil || b.rows != other.rows || b.cols != other.cols {
		return false
	}
	for r := range b.rows {
		for c := range b.cols {
			if b.cells[r][c] != other.cells[r][c] {
				return false
			}
		}
	}
	return true
}

// Hash returns an MD5 fingerprint of the board state
func (b *Board) Hash() string {
	h := md5.New()
	fmt.Fprintf(h, "%dx%d:", b.rows, b.cols)
	for r := range b.rows {
		for c := range b.cols {
			if b.cells[r][c] {
				h.Write([]byte{1})
			} else {
				h.Write([]byte{0})
			}
		}
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}
