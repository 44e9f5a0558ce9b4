package model

import (
	"bytes"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTextRenderer_WriteBoard(t *testing.T) {
	t.Parallel()

	b := boardFromRows(t,
		"....",
		".XX.",
		"....",
	)
	var buf bytes.Buffer
	require.NoError(t, NewTextRenderer(DefaultSymbols()).WriteBoard(&buf, b))
	assert.Equal(t, ". . . .\n. X X .\n. . . .", buf.String())
}

func TestTextRenderer_Snapshots(t *testing.T) {
	t.Parallel()

	b := boardFromRows(t,
		"...",
		".X.",
		"...",
	)
	r := NewTextRenderer(DefaultSymbols())

	var buf bytes.Buffer
	require.NoError(t, r.WriteSnapshot(&buf, 0, b))
	require.NoError(t, r.WriteSnapshot(&buf, 1, Step(b)))

	want := "LIFE initial game board\n\n" +
		". . .\n. X .\n. . .\n" +
		"\n\n\nLIFE gameboard: generation 1\n" +
		". . .\n. . .\n. . .\n"
	assert.Equal(t, want, buf.String())
}

func TestTextRenderer_CustomSymbols(t *testing.T) {
	t.Parallel()

	b := boardFromRows(t,
		"...",
		".X.",
		"...",
	)
	var buf bytes.Buffer
	r := NewTextRenderer(Symbols{Live: '█', Dead: '·'})
	require.NoError(t, r.WriteGeneration(&buf, 7, b))
	assert.True(t, strings.HasPrefix(buf.String(), "\n\n\nLIFE gameboard: generation 7\n"))
	assert.Contains(t, buf.String(), "· █ ·")
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("sink closed") }

func TestTextRenderer_WriteFailure(t *testing.T) {
	t.Parallel()

	r := NewTextRenderer(DefaultSymbols())
	err := r.WriteInitial(failingWriter{}, NewBoard(3, 3))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sink closed")

	err = r.WriteBoard(failingWriter{}, NewBoard(3, 3))
	require.Error(t, err)
}

func TestSymbols_Validate(t *testing.T) {
	t.Parallel()

	assert.NoError(t, DefaultSymbols().Validate())
	assert.NoError(t, Symbols{Live: '#', Dead: '_'}.Validate())
	assert.Error(t, Symbols{Live: 'X', Dead: 'X'}.Validate())
	assert.Error(t, Symbols{Live: ' ', Dead: '.'}.Validate())
	assert.Error(t, Symbols{Live: 'X', Dead: '\n'}.Validate())
	assert.Error(t, Symbols{Live: 'X'}.Validate())
}
