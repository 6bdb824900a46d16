package core

import "time"

// Stats tracks simulation throughput for the HUD and the CLI reports.
type Stats struct {
	GenerationsPerSecond float64
	AveragePopulation    float64
	TotalGenerations     uint64
	Population           int
	ActiveChunks         int
	StartTime            time.Time
}

func NewStats() *Stats {
	return &Stats{StartTime: time.Now()}
}

// Update records that steps generations ran in elapsed time and that the
// grid now holds population live cells across chunks active chunks.
func (s *Stats) Update(generation uint64, steps uint64, elapsed time.Duration, population, chunks int) {
	s.TotalGenerations = generation
	s.Population = population
	s.ActiveChunks = chunks
	if steps > 0 && elapsed > 0 {
		s.GenerationsPerSecond = float64(steps) / elapsed.Seconds()
	}

	// Simple moving average for population
	if s.AveragePopulation == 0 {
		s.AveragePopulation = float64(population)
	} else {
		s.AveragePopulation = (s.AveragePopulation * 0.9) + (float64(population) * 0.1)
	}
}

// Runtime returns the time since the stats were created.
func (s *Stats) Runtime() time.Duration {
	return time.Since(s.StartTime)
}
