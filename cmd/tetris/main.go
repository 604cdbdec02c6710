// Command tetris opens a window and plays the game with the keyboard.
//
// Controls: left/right/down arrows move, up rotates, space drops, P pauses and
// Escape quits. Run with -h for the settings.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/plus3/tetris/config"
	"github.com/plus3/tetris/debugui"
	"github.com/plus3/tetris/game"
	"github.com/plus3/tetris/host"
	"github.com/plus3/tetris/logging"
	"github.com/plus3/tetris/metrics"
	"github.com/plus3/tetris/render"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
)

func main() {
	cfg, err := config.Load(os.Args[1:], os.LookupEnv)
	if errors.Is(err, flag.ErrHelp) {
		fmt.Fprintln(os.Stderr, "Usage of tetris:")
		config.Usage(os.Stderr)
		return
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "tetris: %v\n", err)
		os.Exit(2)
	}

	logger, closer, err := logging.New(logging.Options{Level: cfg.LogLevel, File: cfg.LogFile})
	if err != nil {
		fmt.Fprintf(os.Stderr, "tetris: %v\n", err)
		os.Exit(1)
	}
	defer closer.Close()

	if err := run(cfg, logger); err != nil {
		logger.Fatal().Err(err).Msg("tetris stopped")
	}
}

func run(cfg *config.Config, logger zerolog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	opts := []game.Option{}
	if cfg.Seed != 0 {
		opts = append(opts, game.WithRandomizer(game.NewRandomizer(cfg.Seed)))
	}
	g := game.New(opts...)

	input := render.NewKeyboardInput()
	scheduler := host.NewScheduler(g, input)
	scheduler.Register(&host.InputSystem{})
	scheduler.Register(&host.GravitySystem{Interval: cfg.GravityInterval})
	scheduler.Register(&host.RestartSystem{Delay: cfg.RestartDelay})
	scheduler.Register(&host.LogSystem{Logger: logger})

	if cfg.MetricsAddr != "" {
		registry := prometheus.NewRegistry()
		collector, err := metrics.NewCollector(registry)
		if err != nil {
			return err
		}
		scheduler.Register(collector)

		go func() {
			if err := metrics.Serve(ctx, cfg.MetricsAddr, registry); err != nil {
				logger.Error().Err(err).Msg("metrics server failed")
			}
		}()
		logger.Info().Str("addr", cfg.MetricsAddr).Msg("serving metrics")
	}

	renderer := render.NewRenderer(cfg.BlockSize)
	app := &render.App{
		Scheduler: scheduler,
		Renderer:  renderer,
		TPS:       cfg.TPS,
	}

	if cfg.Debug {
		w, h := renderer.Layout.Size()
		app.Overlay = debugui.NewOverlay("Tetris (debug)", w+620, max(h, 680))

		debug := &debugui.System{
			Panels: []debugui.Panel{
				&debugui.EnginePanel{},
				debugui.NewSchedulerPanel(scheduler, 120),
				&debugui.SpawnPanel{},
			},
		}
		input.Blocked = debug.KeyboardCaptured
		scheduler.Register(debug)
	}

	go func() {
		<-ctx.Done()
		logger.Info().Msg("interrupted")
		os.Exit(130)
	}()

	logger.Info().
		Int("tps", cfg.TPS).
		Dur("gravity", cfg.GravityInterval).
		Bool("debug", cfg.Debug).
		Msg("opening window")

	if err := render.Run(app, "Tetris"); err != nil {
		return fmt.Errorf("run window: %w", err)
	}
	return nil
}
