package model

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/pkg/errors"
)

const (
	// DefaultMaxDimension is the exclusive upper bound on rows and columns.
	DefaultMaxDimension = 40
	// MinGenerations is the smallest generation count accepted.
	MinGenerations = 1
)

// Params are the simulation parameters read ahead of the board
type Params struct {
	Rows        int
	Cols        int
	Generations int
}

// Loader parses an initial board and validates it
type Loader struct {
	Symbols Symbols
	// MaxDimension is exclusive: rows and cols must be strictly below it.
	// Zero means DefaultMaxDimension.
	MaxDimension int
}

// NewLoader returns a loader with the default symbols and size bound
func NewLoader() *Loader {
	return &Loader{
		Symbols:      DefaultSymbols(),
		MaxDimension: DefaultMaxDimension,
	}
}

// LoadBoard reads a board with the default loader
func LoadBoard(r io.Reader) (*Board, Params, error) {
	return NewLoader().Load(r)
}

/*
Load reads "rows cols generations" followed by rows*cols cell markers in
row-major order. Whitespace between markers is skipped. The whole board is
validated before it is returned, including the dead border.

A *LoadError is returned for invalid data. Any other error comes from reading r.
*/
func (l *Loader) Load(r io.Reader) (*Board, Params, error) {
	var (
		p   Params
		err error
		tr  = newTokenReader(r)
	)

	if p.Rows, err = l.readDimension(tr, "rows"); err != nil {
		return nil, p, err
	}
	if p.Cols, err = l.readDimension(tr, "cols"); err != nil {
		return nil, p, err
	}
	if p.Generations, err = readGenerations(tr); err != nil {
		return nil, p, err
	}

	board := NewBoard(p.Rows, p.Cols)
	for row := range p.Rows {
		for col := range p.Cols {
			marker, err := tr.nextRune()
			if err == io.EOF {
				return nil, p, &LoadError{Kind: InsufficientBoardData, Row: row, Col: col}
			}
			if err != nil {
				return nil, p, errors.Wrapf(err, "[Loader.Load] failed to read cell (%d, %d)", row, col)
			}

			alive, ok := l.Symbols.Parse(marker)
			if !ok {
				return nil, p, &LoadError{
					Kind:     InvalidCellSymbol,
					Row:      row,
					Col:      col,
					Expected: fmt.Sprintf("%q or %q", l.Symbols.Live, l.Symbols.Dead),
					Found:    strconv.QuoteRune(marker),
				}
			}
			board.Set(row, col, alive)
		}
	}

	if row, col, found := board.FirstLiveBorderCell(); found {
		return nil, p, &LoadError{
			Kind:     BorderViolation,
			Row:      row,
			Col:      col,
			Expected: strconv.QuoteRune(l.Symbols.Dead),
			Found:    strconv.QuoteRune(l.Symbols.Live),
		}
	}

	return board, p, nil
}

func (l *Loader) maxDimension() int {
	if l.MaxDimension <= 0 {
		return DefaultMaxDimension
	}
	return l.MaxDimension
}

func (l *Loader) readDimension(tr *tokenReader, field string) (int, error) {
	n, err := readInt(tr, MalformedDimension, field)
	if err != nil {
		return 0, err
	}
	if limit := l.maxDimension(); n <= 0 || n >= limit {
		return 0, &LoadError{
			Kind:     DimensionOutOfRange,
			Field:    field,
			Expected: fmt.Sprintf("0 < %s < %d", field, limit),
			Found:    strconv.Itoa(n),
		}
	}
	return n, nil
}

func readGenerations(tr *tokenReader) (int, error) {
	n, err := readInt(tr, MalformedGenerationCount, "generations")
	if err != nil {
		return 0, err
	}
	if n < MinGenerations {
		return 0, &LoadError{
			Kind:     InvalidGenerationCount,
			Field:    "generations",
			Expected: fmt.Sprintf("generations >= %d", MinGenerations),
			Found:    strconv.Itoa(n),
		}
	}
	return n, nil
}

func readInt(tr *tokenReader, kind Kind, field string) (int, error) {
	word, err := tr.nextWord()
	if err == io.EOF {
		return 0, &LoadError{Kind: kind, Field: field}
	}
	if err != nil {
		return 0, errors.Wrapf(err, "[readInt] failed to read %s", field)
	}
	n, err := strconv.Atoi(word)
	if err != nil {
		return 0, &LoadError{Kind: kind, Field: field, Found: word}
	}
	return n, nil
}

// tokenReader gives ordered access to whitespace separated words and to
// single non-whitespace runes of the same stream.
type tokenReader struct {
	r *bufio.Reader
}

func newTokenReader(r io.Reader) *tokenReader {
	return &tokenReader{r: bufio.NewReader(r)}
}

// nextRune skips whitespace and returns the next rune
func (t *tokenReader) nextRune() (rune, error) {
	for {
		r, _, err := t.r.ReadRune()
		if err != nil {
			return 0, err
		}
		if !unicode.IsSpace(r) {
			return r, nil
		}
	}
}

// nextWord skips whitespace and returns the run of non-whitespace runes that follows
func (t *tokenReader) nextWord() (string, error) {
	first, err := t.nextRune()
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	sb.WriteRune(first)
	for {
		r, _, err := t.r.ReadRune()
		if err == io.EOF {
			return sb.String(), nil
		}
		if err != nil {
			return "", err
		}
		if unicode.IsSpace(r) {
			return sb.String(), nil
		}
		sb.WriteRune(r)
	}
}
