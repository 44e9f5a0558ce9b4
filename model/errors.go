package model

import (
	"fmt"

	"github.com/pkg/errors"
)

// Kind classifies why an input board was rejected.
type Kind int

const (
	MalformedDimension Kind = iota + 1
	DimensionOutOfRange
	MalformedGenerationCount
	InvalidGenerationCount
	InsufficientBoardData
	InvalidCellSymbol
	BorderViolation
)

var kindNames = map[Kind]string{
	MalformedDimension:       "malformed dimension",
	DimensionOutOfRange:      "dimension out of range",
	MalformedGenerationCount: "malformed generation count",
	InvalidGenerationCount:   "invalid generation count",
	InsufficientBoardData:    "insufficient board data",
	InvalidCellSymbol:        "invalid cell symbol",
	BorderViolation:          "border violation",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Sentinels for errors.Is. A *LoadError matches the sentinel of its Kind.
var (
	ErrMalformedDimension       = &LoadError{Kind: MalformedDimension}
	ErrDimensionOutOfRange      = &LoadError{Kind: DimensionOutOfRange}
	ErrMalformedGenerationCount = &LoadError{Kind: MalformedGenerationCount}
	ErrInvalidGenerationCount   = &LoadError{Kind: InvalidGenerationCount}
	ErrInsufficientBoardData    = &LoadError{Kind: InsufficientBoardData}
	ErrInvalidCellSymbol        = &LoadError{Kind: InvalidCellSymbol}
	ErrBorderViolation          = &LoadError{Kind: BorderViolation}
)

// LoadError describes a rejected input board.
type LoadError struct {
	Kind Kind
	// Field names the offending parameter ("rows", "cols", "generations") for
	// dimension and generation errors.
	Field string
	// Row and Col locate the offending cell for cell level errors.
	Row, Col int
	Expected string
	Found    string
}

func (e *LoadError) Error() string {
	switch e.Kind {
	case MalformedDimension, MalformedGenerationCount:
		if e.Found == "" {
			return fmt.Sprintf("%s: cannot read %s", e.Kind, e.Field)
		}
		return fmt.Sprintf("%s: cannot read %s from %q", e.Kind, e.Field, e.Found)
	case DimensionOutOfRange, InvalidGenerationCount:
		return fmt.Sprintf("%s: %s is %s, expected %s", e.Kind, e.Field, e.Found, e.Expected)
	case InsufficientBoardData:
		return fmt.Sprintf("%s: input ended before cell (%d, %d)", e.Kind, e.Row, e.Col)
	case InvalidCellSymbol:
		return fmt.Sprintf("%s: location (%d, %d) holds %s, expected %s", e.Kind, e.Row, e.Col, e.Found, e.Expected)
	case BorderViolation:
		return fmt.Sprintf("%s: organism present at border location (%d, %d)", e.Kind, e.Row, e.Col)
	}
	return e.Kind.String()
}

// Is matches any *LoadError of the same Kind.
func (e *LoadError) Is(target error) bool {
	t, ok := target.(*LoadError)
	return ok && t.Kind == e.Kind
}

// IsLoadError reports whether err, or anything it wraps, is a *LoadError.
func IsLoadError(err error) bool {
	var le *LoadError
	return errors.As(err, &le)
}
