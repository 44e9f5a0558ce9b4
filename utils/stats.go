package utils

import (
	"log/slog"
	"time"
)

// Stats summarizes a simulation run
type Stats struct {
	TotalGenerations  int
	InitialPopulation int
	FinalPopulation   int
	PeakPopulation    int
	// StableSince is the first generation identical to its predecessor, or -1.
	StableSince int
	StartTime   time.Time
	Elapsed     time.Duration

	lastHash string
}

func NewStats() *Stats {
	return &Stats{StartTime: time.Now(), StableSince: -1}
}

// Update records the snapshot of a generation. It returns true the first time
// a generation repeats the previous one.
func (s *Stats) Update(generation, population int, hash string) (stabilized bool) {
	s.TotalGenerations = generation
	s.FinalPopulation = population
	if generation == 0 {
		s.InitialPopulation = population
	}
	s.PeakPopulation = max(s.PeakPopulation, population)

	if generation > 0 && s.StableSince < 0 && hash == s.lastHash {
		s.StableSince = generation
		stabilized = true
	}
	s.lastHash = hash
	s.Elapsed = time.Since(s.StartTime)
	return
}

// LogValue renders the stats as a group of log attributes
func (s *Stats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("generations", s.TotalGenerations),
		slog.Int("initial_population", s.InitialPopulation),
		slog.Int("final_population", s.FinalPopulation),
		slog.Int("peak_population", s.PeakPopulation),
		slog.Int("stable_since", s.StableSince),
		slog.Duration("elapsed", s.Elapsed),
	)
}
