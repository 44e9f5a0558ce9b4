package model

import (
	"iter"

	"github.com/sheikhrachel/lifeboard/rules"
)

// Engine computes successive generations of a bounded board.
type Engine struct {
	rule rules.Rule
}

// NewEngine returns an engine applying the given rule
func NewEngine(rule rules.Rule) *Engine {
	return &Engine{rule: rule}
}

// DefaultEngine returns an engine applying Conway's rule
func DefaultEngine() *Engine {
	return NewEngine(rules.Conway)
}

// Step returns the next generation of b using Conway's rule
func Step(b *Board) *Board {
	return DefaultEngine().Step(b)
}

// Step returns the next generation of b as a new board. b is left untouched.
func (e *Engine) Step(b *Board) *Board {
	next := NewBoard(b.rows, b.cols)
	e.stepInto(next, b)
	return next
}

// stepInto writes the generation following src into dst. Every neighbor count
// is taken from src, and dst is fully overwritten, so src and dst must differ.
func (e *Engine) stepInto(dst, src *Board) {
	for r := 1; r < src.rows-1; r++ {
		for c := 1; c < src.cols-1; c++ {
			dst.cells[r][c] = e.rule.Next(src.cells[r][c], src.CountNeighbors(r, c))
		}
	}
	dst.clearBorder()
}

// Simulation is a one-shot cursor over generations 0..n of a board.
//
//	sim := engine.Simulate(board, n)
//	for sim.Next() {
//		render(sim.Generation(), sim.Board())
//	}
type Simulation struct {
	engine      *Engine
	buffers     *boardPair
	generations int
	generation  int
	started     bool
	done        bool
}

// Simulate starts a simulation of the given number of generations from initial.
// The initial board is copied; the caller keeps ownership of it.
func (e *Engine) Simulate(initial *Board, generations int) *Simulation {
	return &Simulation{
		engine:      e,
		buffers:     newBoardPair(initial),
		generations: max(generations, 0),
	}
}

// Next advances to the next snapshot. The first call yields generation 0.
// It returns false once generation n has been yielded.
func (s *Simulation) Next() bool {
	if s.done {
		return false
	}
	if !s.started {
		s.started = true
		return true
	}
	if s.generation >= s.generations {
		s.done = true
		return false
	}
	s.engine.stepInto(s.buffers.next, s.buffers.cur)
	s.buffers.swap()
	s.generation++
	return true
}

// Generation returns the index of the current snapshot
func (s *Simulation) Generation() int {
	return s.generation
}

// Board returns the current snapshot. It is owned by the simulation and is
// overwritten by the call to Next after the following one; Clone it to keep it.
func (s *Simulation) Board() *Board {
	return s.buffers.cur
}

// Generations returns the number of steps the simulation runs
func (s *Simulation) Generations() int {
	return s.generations
}

// All ranges over the remaining snapshots of the simulation.
func (s *Simulation) All() iter.Seq2[int, *Board] {
	return func(yield func(int, *Board) bool) {
		for s.Next() {
			if !yield(s.generation, s.buffers.cur) {
				return
			}
		}
	}
}
