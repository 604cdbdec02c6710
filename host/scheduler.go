// Package host drives a game.Game from a frame loop. A Scheduler executes
// registered systems once per frame; systems translate input into engine
// calls, apply gravity on a fixed cadence, restart finished games and report
// what happened.
package host

import (
	"context"
	"reflect"
	"time"

	"github.com/plus3/tetris/game"
)

// SchedulerStats summarizes what the scheduler has executed so far.
type SchedulerStats struct {
	SystemCount     int
	Frames          int64
	TotalExecutions int64
	Systems         []SystemStats
}

// SystemStats holds the timings of one registered system.
type SystemStats struct {
	Name           string
	ExecutionCount int64
	MinDuration    time.Duration
	MaxDuration    time.Duration
	AvgDuration    time.Duration
	LastDuration   time.Duration
	TotalDuration  time.Duration
}

type timing struct {
	count    int64
	min, max time.Duration
	last     time.Duration
	total    time.Duration
}

func (t *timing) record(d time.Duration) {
	if t.count == 0 || d < t.min {
		t.min = d
	}
	t.max = max(t.max, d)
	t.last = d
	t.total += d
	t.count++
}

type registered struct {
	system System
	name   string
	timing timing
}

// Scheduler executes systems in registration order, one pass per frame.
type Scheduler struct {
	game    *game.Game
	input   Input
	entries []*registered
	frames  int64
}

// NewScheduler creates a scheduler driving g. A nil input behaves as NoInput.
func NewScheduler(g *game.Game, input Input) *Scheduler {
	if input == nil {
		input = NoInput{}
	}
	return &Scheduler{game: g, input: input}
}

// Game returns the game driven by the scheduler.
func (s *Scheduler) Game() *game.Game {
	return s.game
}

// Register appends a system. It is reported in stats under its type name.
func (s *Scheduler) Register(system System) {
	t := reflect.TypeOf(system)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	s.entries = append(s.entries, &registered{system: system, name: t.String()})
}

// Once runs every system against a new frame of dt seconds, then the commands
// they deferred.
func (s *Scheduler) Once(dt float64) {
	frame := newFrame(dt, s.game, s.input)

	for _, e := range s.entries {
		start := time.Now()
		e.system.Execute(frame)
		e.timing.record(time.Since(start))
	}

	frame.Commands.Flush()
	s.frames++
}

// Run calls Once on every tick of interval until ctx is cancelled, passing the
// measured wall time between ticks.
func (s *Scheduler) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			s.Once(now.Sub(last).Seconds())
			last = now
		}
	}
}

// GetStats returns a snapshot of the execution statistics.
func (s *Scheduler) GetStats() *SchedulerStats {
	stats := &SchedulerStats{
		SystemCount: len(s.entries),
		Frames:      s.frames,
		Systems:     make([]SystemStats, 0, len(s.entries)),
	}

	for _, e := range s.entries {
		t := e.timing
		var avg time.Duration
		if t.count > 0 {
			avg = t.total / time.Duration(t.count)
		}
		stats.Systems = append(stats.Systems, SystemStats{
			Name:           e.name,
			ExecutionCount: t.count,
			MinDuration:    t.min,
			MaxDuration:    t.max,
			AvgDuration:    avg,
			LastDuration:   t.last,
			TotalDuration:  t.total,
		})
		stats.TotalExecutions += t.count
	}
	return stats
}
