package rules

// Rule holds the neighbor-count thresholds of a birth/survival rule.
type Rule struct {
	// Overcrowding is the neighbor count at or above which a live cell dies.
	Overcrowding int
	// Loneliness is the neighbor count below which a live cell dies.
	Loneliness int
	// Birth is the exact neighbor count that brings a dead cell to life.
	Birth int
}

// Conway is the standard B3/S23 rule.
var Conway = Rule{
	Overcrowding: 4,
	Loneliness:   2,
	Birth:        3,
}

/*
Next returns the next state of a cell given its current state and the number of
live cells in its Moore neighborhood.

	alive: dies when neighbors >= Overcrowding or neighbors < Loneliness
	dead:  born when neighbors == Birth
*/
func (r Rule) Next(alive bool, neighbors int) bool {
	if alive {
		return neighbors < r.Overcrowding && neighbors >= r.Loneliness
	}
	return neighbors == r.Birth
}

