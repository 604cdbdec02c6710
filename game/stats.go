package game

import "github.com/kamstrup/intmap"

// Stats accumulates session totals. They survive Restart.
type Stats struct {
	spawned      *intmap.Map[Shape, int]
	piecesLocked int
	linesCleared int
	gamesOver    int
}

// StatsSnapshot is a copy of the session totals.
type StatsSnapshot struct {
	Spawned      [ShapeCount]int
	PiecesLocked int
	LinesCleared int
	GamesOver    int
}

func newStats() *Stats {
	return &Stats{
		spawned: intmap.New[Shape, int](ShapeCount),
	}
}

func (s *Stats) recordSpawn(shape Shape) {
	n, _ := s.spawned.Get(shape)
	s.spawned.Put(shape, n+1)
}

func (s *Stats) snapshot() StatsSnapshot {
	snap := StatsSnapshot{
		PiecesLocked: s.piecesLocked,
		LinesCleared: s.linesCleared,
		GamesOver:    s.gamesOver,
	}
	for shape := range Shape(ShapeCount) {
		snap.Spawned[shape], _ = s.spawned.Get(shape)
	}
	return snap
}

// TotalSpawned returns the number of pieces drawn across all shapes.
func (s StatsSnapshot) TotalSpawned() int {
	total := 0
	for _, n := range s.Spawned {
		total += n
	}
	return total
}

// Frequency returns the share of draws that produced shape, or 0 before any draw.
func (s StatsSnapshot) Frequency(shape Shape) float64 {
	total := s.TotalSpawned()
	if total == 0 {
		return 0
	}
	return float64(s.Spawned[shape]) / float64(total)
}
