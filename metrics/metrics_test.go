package metrics_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/plus3/tetris/game"
	"github.com/plus3/tetris/host"
	"github.com/plus3/tetris/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type onlyO struct{}

func (onlyO) IntN(int) int { return int(game.ShapeO) }

type systemFunc func(f *host.Frame)

func (fn systemFunc) Execute(f *host.Frame) { fn(f) }

// clearTwo drops five O pieces side by side, clearing the bottom two rows.
func clearTwo(f *host.Frame) {
	for _, dx := range []int{-4, -2, 0, 2, 4} {
		f.Game.MovePiece(dx, 0)
		f.Emit(f.Game.HardDrop()...)
	}
}

func newScheduler(t *testing.T, reg *prometheus.Registry, setup host.System) *host.Scheduler {
	t.Helper()
	collector, err := metrics.NewCollector(reg)
	require.NoError(t, err)

	scheduler := host.NewScheduler(game.New(game.WithRandomizer(onlyO{})), nil)
	scheduler.Register(setup)
	scheduler.Register(collector)
	return scheduler
}

func TestCollector(t *testing.T) {
	t.Run("line clears", func(t *testing.T) {
		reg := prometheus.NewRegistry()
		scheduler := newScheduler(t, reg, systemFunc(clearTwo))

		scheduler.Once(0)

		err := testutil.GatherAndCompare(reg, strings.NewReader(`
# HELP tetris_clears_total Number of locks that cleared rows, by rows cleared at once
# TYPE tetris_clears_total counter
tetris_clears_total{lines="2"} 1
# HELP tetris_lines_cleared_total Total number of rows cleared
# TYPE tetris_lines_cleared_total counter
tetris_lines_cleared_total 2
# HELP tetris_score Score of the game in progress
# TYPE tetris_score gauge
tetris_score 200
`), "tetris_clears_total", "tetris_lines_cleared_total", "tetris_score")
		assert.NoError(t, err)
	})

	t.Run("one game over per game", func(t *testing.T) {
		reg := prometheus.NewRegistry()
		scheduler := newScheduler(t, reg, systemFunc(func(f *host.Frame) {
			if f.Game.GameOver() {
				f.Emit(f.Game.Step()...)
				return
			}
			for range 9 {
				f.Game.HardDrop()
			}
			f.Emit(f.Game.Step()...)
		}))

		scheduler.Once(0)
		scheduler.Once(0)
		scheduler.Once(0)
		assert.True(t, scheduler.Game().GameOver())

		gamesOver, err := reg.Gather()
		require.NoError(t, err)
		var found bool
		for _, mf := range gamesOver {
			if mf.GetName() == "tetris_games_over_total" {
				found = true
				assert.EqualValues(t, 1, mf.GetMetric()[0].GetCounter().GetValue())
			}
		}
		assert.True(t, found)
	})

	t.Run("score follows restarts", func(t *testing.T) {
		reg := prometheus.NewRegistry()
		first := true
		scheduler := newScheduler(t, reg, systemFunc(func(f *host.Frame) {
			if first {
				clearTwo(f)
				first = false
				return
			}
			f.Game.Restart()
		}))

		scheduler.Once(0)
		assert.Equal(t, 1, testutil.CollectAndCount(reg, "tetris_score"))
		scheduler.Once(0)

		families, err := reg.Gather()
		require.NoError(t, err)
		for _, mf := range families {
			if mf.GetName() == "tetris_score" {
				assert.Zero(t, mf.GetMetric()[0].GetGauge().GetValue())
			}
		}
	})

	t.Run("duplicate registration", func(t *testing.T) {
		reg := prometheus.NewRegistry()
		_, err := metrics.NewCollector(reg)
		require.NoError(t, err)

		_, err = metrics.NewCollector(reg)
		assert.Error(t, err)
	})
}

func TestHandler(t *testing.T) {
	reg := prometheus.NewRegistry()
	scheduler := newScheduler(t, reg, systemFunc(clearTwo))
	scheduler.Once(0)

	rec := httptest.NewRecorder()
	metrics.Handler(reg).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "tetris_lines_cleared_total 2")
	assert.Contains(t, rec.Body.String(), "tetris_score 200")
}

func TestServe(t *testing.T) {
	t.Run("stops with the context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan error, 1)
		go func() {
			done <- metrics.Serve(ctx, "127.0.0.1:0", prometheus.NewRegistry())
		}()

		time.Sleep(20 * time.Millisecond)
		cancel()

		select {
		case err := <-done:
			assert.NoError(t, err)
		case <-time.After(3 * time.Second):
			t.Fatal("Serve did not return after cancel")
		}
	})

	t.Run("bad address", func(t *testing.T) {
		err := metrics.Serve(context.Background(), "127.0.0.1:-1", prometheus.NewRegistry())
		assert.Error(t, err)
	})
}
