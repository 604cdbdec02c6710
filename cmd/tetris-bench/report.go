package main

import (
	"fmt"
	"io"
	"runtime"
	"text/template"
	"time"

	"github.com/plus3/tetris/game"
)

type Report struct {
	// Configuration
	Duration        time.Duration
	TPS             int
	Seed            uint64
	GravityInterval time.Duration
	RestartDelay    time.Duration

	// Results
	TotalFrames    int64
	TotalTime      time.Duration
	SimulatedTime  time.Duration
	UpdateTime     Stats
	GravitySteps   int
	Restarts       int
	BestScore      int
	Session        game.StatsSnapshot
	GCPauseMetrics bool
	MemStatsStart  runtime.MemStats
	MemStatsEnd    runtime.MemStats
}

type Stats struct {
	Min     time.Duration
	Max     time.Duration
	Avg     time.Duration
	Samples []time.Duration
}

func (s *Stats) Finalize() {
	if len(s.Samples) == 0 {
		return
	}

	var total time.Duration
	s.Min = s.Samples[0]
	s.Max = s.Samples[0]

	for _, sample := range s.Samples {
		s.Min = min(s.Min, sample)
		s.Max = max(s.Max, sample)
		total += sample
	}
	s.Avg = total / time.Duration(len(s.Samples))
}

// ShapeRow is one line of the spawn table.
type ShapeRow struct {
	Shape string
	Count int
	Share float64
}

func (r *Report) Shapes() []ShapeRow {
	rows := make([]ShapeRow, 0, game.ShapeCount)
	for s := range game.Shape(game.ShapeCount) {
		rows = append(rows, ShapeRow{
			Shape: s.String(),
			Count: r.Session.Spawned[s],
			Share: r.Session.Frequency(s) * 100,
		})
	}
	return rows
}

const reportTemplate = `
# Autoplay Report

## Configuration
- **Run Duration:** {{.Duration}}
- **Frame Rate:** {{.TPS}} frames/s
- **Seed:** {{.Seed}}
- **Gravity Interval:** {{.GravityInterval}}
- **Restart Delay:** {{.RestartDelay}}

## Gameplay
- **Frames:** {{.TotalFrames}} ({{.SimulatedTime}} simulated)
- **Gravity Steps:** {{.GravitySteps}}
- **Games Finished:** {{.Session.GamesOver}}
- **Restarts:** {{.Restarts}}
- **Pieces Locked:** {{.Session.PiecesLocked}}
- **Lines Cleared:** {{.Session.LinesCleared}}
- **Best Score:** {{.BestScore}}

## Spawn Frequency
| Shape | Count | Share |
|-------|-------|-------|
{{range .Shapes}}| {{.Shape}} | {{.Count}} | {{printf "%.1f" .Share}}% |
{{end}}
## Performance Results
- **Total Test Time:** {{.TotalTime}}
- **Update Time (Frame):**
  - **Avg:** {{.UpdateTime.Avg}}
  - **Min:** {{.UpdateTime.Min}}
  - **Max:** {{.UpdateTime.Max}}

## Memory Usage (Raw Bytes)
- Heap Alloc:     {{.MemStatsStart.HeapAlloc}} (start) -> {{.MemStatsEnd.HeapAlloc}} (end) -> delta: {{bsub .MemStatsEnd.HeapAlloc .MemStatsStart.HeapAlloc}}
- Total Alloc:    {{.MemStatsStart.TotalAlloc}} (start) -> {{.MemStatsEnd.TotalAlloc}} (end) -> delta: {{bsub .MemStatsEnd.TotalAlloc .MemStatsStart.TotalAlloc}}
- Num GC:         {{.MemStatsStart.NumGC}} (start) -> {{.MemStatsEnd.NumGC}} (end) -> delta: {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}}
{{if .GCPauseMetrics}}
## GC Pause Durations
- **Total GC Pause:** {{.MemStatsEnd.PauseTotalNs | ns}}
- **Num GC Cycles:** {{ usub .MemStatsEnd.NumGC .MemStatsStart.NumGC }}
{{end}}`

func (r *Report) Generate(w io.Writer) error {
	fm := template.FuncMap{
		"bsub": func(a, b uint64) int64 {
			return int64(a) - int64(b)
		},
		"usub": func(a, b uint32) uint32 {
			return a - b
		},
		"ns": func(ns uint64) string {
			return time.Duration(ns).String()
		},
	}

	tmpl, err := template.New("report").Funcs(fm).Parse(reportTemplate)
	if err != nil {
		return fmt.Errorf("parse report template: %w", err)
	}

	return tmpl.Execute(w, r)
}
