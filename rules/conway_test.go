package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConway_Next(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name      string
		alive     bool
		neighbors int
		want      bool
	}{
		{name: "live, no neighbors dies", alive: true, neighbors: 0, want: false},
		{name: "live, one neighbor dies", alive: true, neighbors: 1, want: false},
		{name: "live, two neighbors survives", alive: true, neighbors: 2, want: true},
		{name: "live, three neighbors survives", alive: true, neighbors: 3, want: true},
		{name: "live, four neighbors dies", alive: true, neighbors: 4, want: false},
		{name: "live, eight neighbors dies", alive: true, neighbors: 8, want: false},
		{name: "dead, two neighbors stays dead", alive: false, neighbors: 2, want: false},
		{name: "dead, three neighbors is born", alive: false, neighbors: 3, want: true},
		{name: "dead, four neighbors stays dead", alive: false, neighbors: 4, want: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, Conway.Next(tc.alive, tc.neighbors))
		})
	}
}

func TestRule_CustomThresholds(t *testing.T) {
	t.Parallel()

	// Survival on exactly two, birth on two.
	r := Rule{Overcrowding: 3, Loneliness: 2, Birth: 2}
	assert.True(t, r.Next(true, 2))
	assert.False(t, r.Next(true, 3))
	assert.True(t, r.Next(false, 2))
	assert.False(t, r.Next(false, 3))
}
