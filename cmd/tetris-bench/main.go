// Command tetris-bench plays the game headless with random input for a fixed
// wall-clock duration and prints a report. Engine settings come from the
// TETRIS_* environment and the optional .env file.
package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand/v2"
	"os"
	"runtime"
	"time"

	"github.com/fatih/color"
	"github.com/plus3/tetris/config"
	"github.com/plus3/tetris/game"
	"github.com/plus3/tetris/host"
	"github.com/plus3/tetris/logging"
)

func main() {
	duration := flag.Duration("duration", 10*time.Second, "The total duration the run should last.")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	verbose := flag.Bool("v", false, "Log every game event to stderr.")
	flag.Parse()

	cfg, err := config.Load(nil, os.LookupEnv)
	if err != nil {
		fmt.Fprintf(os.Stderr, "tetris-bench: %v\n", err)
		os.Exit(2)
	}

	level := "warn"
	if *verbose {
		level = cfg.LogLevel
	}
	logger, closer, err := logging.New(logging.Options{Level: level, File: cfg.LogFile})
	if err != nil {
		fmt.Fprintf(os.Stderr, "tetris-bench: %v\n", err)
		os.Exit(1)
	}
	defer closer.Close()

	seed := cfg.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}

	logger.Warn().Uint64("seed", seed).Dur("duration", *duration).Msg("starting autoplay run")

	g := game.New(game.WithRandomizer(game.NewRandomizer(seed)))
	autoplay := NewAutoplay(seed + 1)
	gravity := &host.GravitySystem{Interval: cfg.GravityInterval}
	restart := &host.RestartSystem{Delay: cfg.RestartDelay}
	scores := &ScoreTracker{}

	scheduler := host.NewScheduler(g, autoplay)
	scheduler.Register(autoplay)
	scheduler.Register(&host.InputSystem{})
	scheduler.Register(gravity)
	scheduler.Register(restart)
	scheduler.Register(scores)
	scheduler.Register(&host.LogSystem{Logger: logger})

	report := &Report{
		Duration:        *duration,
		TPS:             cfg.TPS,
		Seed:            seed,
		GravityInterval: cfg.GravityInterval,
		RestartDelay:    cfg.RestartDelay,
		GCPauseMetrics:  *gcPauseMetrics,
		UpdateTime: Stats{
			Samples: make([]time.Duration, 0),
		},
	}

	runtime.ReadMemStats(&report.MemStatsStart)

	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	dt := cfg.FrameDelta()
	startTime := time.Now()
	var totalFrames int64

Loop:
	for {
		select {
		case <-ctx.Done():
			break Loop
		default:
			updateStart := time.Now()
			scheduler.Once(dt)
			report.UpdateTime.Samples = append(report.UpdateTime.Samples, time.Since(updateStart))
			totalFrames++
		}
	}

	report.TotalTime = time.Since(startTime)
	report.TotalFrames = totalFrames
	report.SimulatedTime = time.Duration(float64(totalFrames) * dt * float64(time.Second))
	report.GravitySteps = gravity.Steps
	report.Restarts = restart.Restarts
	report.BestScore = scores.Best
	report.Session = g.Stats()
	report.UpdateTime.Finalize()
	runtime.ReadMemStats(&report.MemStatsEnd)

	headline := color.New(color.FgGreen, color.Bold)
	headline.Fprintln(os.Stdout, "\n--- Autoplay Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		logger.Fatal().Err(err).Msg("failed to generate report")
	}
	headline.Fprintln(os.Stdout, "--- End of Report ---")
}
