// Command tetris-term plays the game in the terminal.
//
// Controls: arrows or h/j/l move, up or k rotates, space drops, p pauses and
// q, Esc or Ctrl-C quit. Logs go to -log-file, or nowhere, so they never
// scribble over the board.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-isatty"
	"github.com/plus3/tetris/config"
	"github.com/plus3/tetris/game"
	"github.com/plus3/tetris/host"
	"github.com/plus3/tetris/logging"
	"github.com/plus3/tetris/metrics"
	"github.com/plus3/tetris/term"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
)

func main() {
	cfg, err := config.Load(os.Args[1:], os.LookupEnv)
	if errors.Is(err, flag.ErrHelp) {
		fmt.Fprintln(os.Stderr, "Usage of tetris-term:")
		config.Usage(os.Stderr)
		return
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "tetris-term: %v\n", err)
		os.Exit(2)
	}

	tty := isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	if !tty {
		fmt.Fprintln(os.Stderr, "tetris-term: non-interactive terminals are not supported")
		os.Exit(1)
	}

	logger, closer, err := logging.New(logging.Options{
		Level:   cfg.LogLevel,
		File:    cfg.LogFile,
		Discard: true,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "tetris-term: %v\n", err)
		os.Exit(1)
	}
	defer closer.Close()

	if err := run(cfg, logger); err != nil {
		fmt.Fprintf(os.Stderr, "tetris-term: %v\n", err)
		logger.Error().Err(err).Msg("tetris-term stopped")
		closer.Close()
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger zerolog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()
	defer term.Recover(screen)

	if w, h := screen.Size(); w < term.Width || h < term.Height {
		return fmt.Errorf("terminal is %dx%d, need at least %dx%d", w, h, term.Width, term.Height)
	}

	opts := []game.Option{}
	if cfg.Seed != 0 {
		opts = append(opts, game.WithRandomizer(game.NewRandomizer(cfg.Seed)))
	}
	g := game.New(opts...)

	input := term.NewInput(64)
	scheduler := host.NewScheduler(g, input)
	scheduler.Register(input)
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
	}

	loop := &term.Loop{
		Screen:    screen,
		Scheduler: scheduler,
		Input:     input,
		Renderer:  term.NewRenderer(screen),
		TPS:       cfg.TPS,
	}

	logger.Info().Int("tps", cfg.TPS).Msg("starting terminal session")
	if err := loop.Run(ctx); err != nil {
		return err
	}

	stats := g.Stats()
	logger.Info().
		Int("score", g.Score()).
		Int("lines", stats.LinesCleared).
		Int("games_over", stats.GamesOver).
		Msg("session ended")
	return nil
}
