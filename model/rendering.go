package model

import (
	"bufio"
	"fmt"
	"io"

	"github.com/pkg/errors"
)

const (
	initialHeader    = "LIFE initial game board\n\n"
	generationHeader = "\n\n\nLIFE gameboard: generation %d\n"
)

// TextRenderer writes boards as rows of space separated markers
type TextRenderer struct {
	Symbols Symbols
}

// NewTextRenderer returns a renderer using the given symbols
func NewTextRenderer(symbols Symbols) *TextRenderer {
	return &TextRenderer{Symbols: symbols}
}

// WriteBoard writes the rows of b separated by newlines, without a trailing newline
func (r *TextRenderer) WriteBoard(w io.Writer, b *Board) error {
	bw := bufio.NewWriter(w)
	for row := range b.rows {
		if row > 0 {
			bw.WriteByte('\n')
		}
		for col := range b.cols {
			if col > 0 {
				bw.WriteByte(' ')
			}
			bw.WriteRune(r.Symbols.Marker(b.cells[row][col]))
		}
	}
	return errors.Wrap(bw.Flush(), "[TextRenderer.WriteBoard] failed to write board")
}

// WriteInitial writes the titled initial board
func (r *TextRenderer) WriteInitial(w io.Writer, b *Board) error {
	if _, err := io.WriteString(w, initialHeader); err != nil {
		return errors.Wrap(err, "[TextRenderer.WriteInitial] failed to write header")
	}
	return r.writeBody(w, b)
}

// WriteGeneration writes the titled board of generation n (n >= 1)
func (r *TextRenderer) WriteGeneration(w io.Writer, n int, b *Board) error {
	if _, err := fmt.Fprintf(w, generationHeader, n); err != nil {
		return errors.Wrapf(err, "[TextRenderer.WriteGeneration] failed to write header for generation %d", n)
	}
	return r.writeBody(w, b)
}

// WriteSnapshot writes generation 0 as the initial board and any later one as a generation
func (r *TextRenderer) WriteSnapshot(w io.Writer, generation int, b *Board) error {
	if generation == 0 {
		return r.WriteInitial(w, b)
	}
	return r.WriteGeneration(w, generation, b)
}

func (r *TextRenderer) writeBody(w io.Writer, b *Board) error {
	if err := r.WriteBoard(w, b); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return errors.Wrap(err, "[TextRenderer] failed to terminate board")
}
