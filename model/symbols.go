package model

import (
	"unicode"

	"github.com/pkg/errors"
)

const (
	// DefaultLiveSymbol marks an alive cell in input and output.
	DefaultLiveSymbol = 'X'
	// DefaultDeadSymbol marks a dead cell in input and output.
	DefaultDeadSymbol = '.'
)

// Symbols is the pair of markers used to read and write cells.
type Symbols struct {
	Live rune
	Dead rune
}

// DefaultSymbols returns the X / . convention.
func DefaultSymbols() Symbols {
	return Symbols{Live: DefaultLiveSymbol, Dead: DefaultDeadSymbol}
}

// Validate checks that both symbols are distinct, printable and not whitespace.
func (s Symbols) Validate() error {
	for _, r := range []rune{s.Live, s.Dead} {
		if unicode.IsSpace(r) || !unicode.IsPrint(r) {
			return errors.Errorf("[Symbols.Validate] invalid cell symbol %q", r)
		}
	}
	if s.Live == s.Dead {
		return errors.Errorf("[Symbols.Validate] live and dead symbols are both %q", s.Live)
	}
	return nil
}

// Marker returns the symbol for a cell state.
func (s Symbols) Marker(alive bool) rune {
	if alive {
		return s.Live
	}
	return s.Dead
}

// Parse maps a marker to a cell state. ok is false for an unrecognized marker.
func (s Symbols) Parse(r rune) (alive, ok bool) {
	switch r {
	case s.Live:
		return true, true
	case s.Dead:
		return false, true
	}
	return false, false
}
