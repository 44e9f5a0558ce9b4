package model

// boardPair holds the two alternating buffers a Simulation steps between.
// Each step writes next from cur and then swaps them.
type boardPair struct {
	cur  *Board
	next *Board
}

func newBoardPair(initial *Board) *boardPair {
	return &boardPair{
		cur:  initial.Clone(),
		next: NewBoard(initial.rows, initial.cols),
	}
}

// swap makes the freshly written buffer current
func (p *boardPair) swap() {
	p.cur, p.next = p.next, p.cur
}
