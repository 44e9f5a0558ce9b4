package model

import (
	"strings"
	"testing"
)

// boardFromRows builds a board from rows of X / . markers.
func boardFromRows(t *testing.T, rows ...string) *Board {
	t.Helper()
	b := NewBoard(len(rows), len(rows[0]))
	for r, line := range rows {
		if len(line) != b.Cols() {
			t.Fatalf("row %d has %d cells, expected %d", r, len(line), b.Cols())
		}
		for c, ch := range line {
			b.Set(r, c, ch == 'X')
		}
	}
	return b
}

// rowsOf renders a board back into rows of X / . markers.
func rowsOf(b *Board) []string {
	out := make([]string, b.Rows())
	for r := range b.Rows() {
		var sb strings.Builder
		for c := range b.Cols() {
			sb.WriteRune(DefaultSymbols().Marker(b.Alive(r, c)))
		}
		out[r] = sb.String()
	}
	return out
}
