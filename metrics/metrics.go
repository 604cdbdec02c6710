// Package metrics exports game progress as prometheus metrics.
package metrics

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/plus3/tetris/game"
	"github.com/plus3/tetris/host"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector is a host.System that turns frame events into metrics.
type Collector struct {
	linesCleared prometheus.Counter
	clears       *prometheus.CounterVec
	gamesOver    prometheus.Counter
	score        prometheus.Gauge

	over bool
}

// NewCollector creates the metrics and registers them on reg.
func NewCollector(reg prometheus.Registerer) (*Collector, error) {
	c := &Collector{
		linesCleared: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "tetris_lines_cleared_total",
			Help: "Total number of rows cleared",
		}),
		clears: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tetris_clears_total",
				Help: "Number of locks that cleared rows, by rows cleared at once",
			},
			[]string{"lines"},
		),
		gamesOver: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "tetris_games_over_total",
			Help: "Number of games that ended",
		}),
		score: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "tetris_score",
			Help: "Score of the game in progress",
		}),
	}

	for _, m := range []prometheus.Collector{c.linesCleared, c.clears, c.gamesOver, c.score} {
		if err := reg.Register(m); err != nil {
			return nil, fmt.Errorf("register metrics: %w", err)
		}
	}
	return c, nil
}

func (c *Collector) Execute(frame *host.Frame) {
	for _, ev := range frame.Events {
		switch ev.Kind {
		case game.EventLinesCleared:
			c.linesCleared.Add(float64(ev.Lines))
			c.clears.WithLabelValues(strconv.Itoa(ev.Lines)).Inc()
		case game.EventGameOver:
			if !c.over {
				c.gamesOver.Inc()
				c.over = true
			}
		}
	}
	c.over = frame.Game.GameOver()
	c.score.Set(float64(frame.Game.Score()))
}

// Handler serves the metrics of gatherer in the prometheus text format.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	return mux
}

// Serve listens on addr until ctx is done.
func Serve(ctx context.Context, addr string, gatherer prometheus.Gatherer) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           Handler(gatherer),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return fmt.Errorf("metrics server: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("metrics server shutdown: %w", err)
	}
	if err := <-errc; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("metrics server: %w", err)
	}
	return nil
}
