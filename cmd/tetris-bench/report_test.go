package main

import (
	"bytes"
	"testing"
	"time"

	"github.com/plus3/tetris/game"
	"github.com/plus3/tetris/host"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatsFinalize(t *testing.T) {
	s := Stats{Samples: []time.Duration{3 * time.Millisecond, time.Millisecond, 5 * time.Millisecond}}
	s.Finalize()

	assert.Equal(t, time.Millisecond, s.Min)
	assert.Equal(t, 5*time.Millisecond, s.Max)
	assert.Equal(t, 3*time.Millisecond, s.Avg)

	var empty Stats
	empty.Finalize()
	assert.Zero(t, empty.Avg)
}

func TestReportGenerate(t *testing.T) {
	r := &Report{
		Duration:     time.Second,
		TPS:          30,
		Seed:         7,
		TotalFrames:  90,
		GravitySteps: 45,
		BestScore:    300,
		Session: game.StatsSnapshot{
			Spawned:      [game.ShapeCount]int{1, 1, 0, 0, 0, 0, 2},
			LinesCleared: 3,
		},
	}

	var buf bytes.Buffer
	require.NoError(t, r.Generate(&buf))

	out := buf.String()
	assert.Contains(t, out, "**Seed:** 7")
	assert.Contains(t, out, "**Frames:** 90")
	assert.Contains(t, out, "**Lines Cleared:** 3")
	assert.Contains(t, out, "**Best Score:** 300")
	assert.Contains(t, out, "| L | 2 | 50.0% |")
	assert.Contains(t, out, "| T | 0 | 0.0% |")
	assert.NotContains(t, out, "GC Pause")
}

func TestAutoplay(t *testing.T) {
	g := game.New(game.WithRandomizer(game.NewRandomizer(1)))
	autoplay := NewAutoplay(2)
	scores := &ScoreTracker{}
	gravity := &host.GravitySystem{Interval: 500 * time.Millisecond}
	restart := &host.RestartSystem{Delay: 2 * time.Second}

	scheduler := host.NewScheduler(g, autoplay)
	scheduler.Register(autoplay)
	scheduler.Register(&host.InputSystem{})
	scheduler.Register(gravity)
	scheduler.Register(restart)
	scheduler.Register(scores)

	for range 30 * 60 * 10 {
		scheduler.Once(1.0 / 30)
	}

	stats := g.Stats()
	assert.Positive(t, stats.PiecesLocked)
	assert.Positive(t, stats.GamesOver)
	assert.Equal(t, stats.GamesOver, restart.Restarts+boolInt(g.GameOver()))
	assert.Zero(t, scores.Best%game.PointsPerLine)
	assert.LessOrEqual(t, scores.Best, game.PointsPerLine*stats.LinesCleared)
	assert.False(t, autoplay.Down(host.ActionPause))
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
