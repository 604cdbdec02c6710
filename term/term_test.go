package term_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/tetris/game"
	"github.com/plus3/tetris/host"
	"github.com/plus3/tetris/term"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type onlyO struct{}

func (onlyO) IntN(int) int { return int(game.ShapeO) }

func newScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	t.Cleanup(screen.Fini)
	screen.SetSize(term.Width, term.Height)
	return screen
}

func runeAt(screen tcell.Screen, x, y int) rune {
	r, _, _, _ := screen.GetContent(x, y)
	return r
}

func textAt(screen tcell.Screen, x, y, n int) string {
	var sb strings.Builder
	for i := range n {
		sb.WriteRune(runeAt(screen, x+i, y))
	}
	return sb.String()
}

func key(k tcell.Key, r rune) *tcell.EventKey {
	return tcell.NewEventKey(k, r, tcell.ModNone)
}

func TestActionFor(t *testing.T) {
	tests := []struct {
		ev   *tcell.EventKey
		want host.Action
	}{
		{key(tcell.KeyLeft, 0), host.ActionLeft},
		{key(tcell.KeyRune, 'h'), host.ActionLeft},
		{key(tcell.KeyRight, 0), host.ActionRight},
		{key(tcell.KeyDown, 0), host.ActionDown},
		{key(tcell.KeyRune, ' '), host.ActionDrop},
		{key(tcell.KeyUp, 0), host.ActionRotate},
		{key(tcell.KeyRune, 'p'), host.ActionPause},
		{key(tcell.KeyRune, 'P'), host.ActionPause},
	}
	for _, tt := range tests {
		t.Run(tt.want.String()+" "+tt.ev.Name(), func(t *testing.T) {
			got, ok := term.ActionFor(term.DefaultBindings, tt.ev)
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}

	_, ok := term.ActionFor(term.DefaultBindings, key(tcell.KeyRune, 'x'))
	assert.False(t, ok)
	_, ok = term.ActionFor(term.DefaultBindings, key(tcell.KeyEnter, 0))
	assert.False(t, ok)
}

func TestIsQuit(t *testing.T) {
	assert.True(t, term.IsQuit(key(tcell.KeyEscape, 0)))
	assert.True(t, term.IsQuit(key(tcell.KeyCtrlC, 0)))
	assert.True(t, term.IsQuit(key(tcell.KeyRune, 'q')))
	assert.False(t, term.IsQuit(key(tcell.KeyRune, 'p')))
	assert.False(t, term.IsQuit(key(tcell.KeyLeft, 0)))
}

func TestInput(t *testing.T) {
	t.Run("events last one frame", func(t *testing.T) {
		g := game.New(game.WithRandomizer(onlyO{}))
		in := term.NewInput(8)
		scheduler := host.NewScheduler(g, in)
		scheduler.Register(in)
		scheduler.Register(&host.InputSystem{})

		in.Events() <- key(tcell.KeyLeft, 0)
		in.Events() <- key(tcell.KeyRune, 'p')
		scheduler.Once(0)

		assert.Equal(t, game.SpawnX-1, g.Current().X)
		assert.True(t, g.Paused())

		scheduler.Once(0)
		assert.Equal(t, game.SpawnX-1, g.Current().X)
		assert.True(t, g.Paused())
		assert.False(t, in.Down(host.ActionLeft))
	})

	t.Run("quit and resize", func(t *testing.T) {
		in := term.NewInput(4)
		quit := 0
		in.Quit = func() { quit++ }

		scheduler := host.NewScheduler(game.New(), in)
		scheduler.Register(in)

		in.Events() <- key(tcell.KeyEscape, 0)
		in.Events() <- tcell.NewEventResize(80, 24)
		scheduler.Once(0)

		assert.Equal(t, 1, quit)
		assert.True(t, in.TakeResize())
		assert.False(t, in.TakeResize())
	})
}

func TestRenderer(t *testing.T) {
	t.Run("board, pieces and panel", func(t *testing.T) {
		screen := newScreen(t)
		g := game.New(game.WithRandomizer(onlyO{}))
		g.HardDrop()

		term.NewRenderer(screen).Draw(g)

		assert.Equal(t, tcell.RuneULCorner, runeAt(screen, 0, 0))
		assert.Equal(t, tcell.RuneLRCorner, runeAt(screen, 21, 21))
		assert.Equal(t, tcell.RuneVLine, runeAt(screen, 0, 10))

		// Locked O in columns 4-5, rows 18-19.
		assert.Equal(t, '█', runeAt(screen, 1+4*2, 19))
		assert.Equal(t, '█', runeAt(screen, 1+5*2+1, 20))
		_, _, style, _ := screen.GetContent(1+4*2, 19)
		fg, _, _ := style.Decompose()
		assert.Equal(t, tcell.ColorYellow, fg)

		// Falling O at the spawn rows and its ghost above the stack.
		assert.Equal(t, '█', runeAt(screen, 1+4*2, 1))
		assert.Equal(t, '░', runeAt(screen, 1+4*2, 17))

		assert.Equal(t, "Next piece:", textAt(screen, 24, 0, 11))
		assert.Equal(t, '█', runeAt(screen, 24, 1))
		assert.Equal(t, "Score: 0", textAt(screen, 24, 5, 8))
		assert.Equal(t, ' ', runeAt(screen, 24, 10))
	})

	t.Run("paused", func(t *testing.T) {
		screen := newScreen(t)
		g := game.New()
		g.TogglePause()

		term.NewRenderer(screen).Draw(g)
		assert.Equal(t, "Paused", textAt(screen, 24, 10, 6))
	})

	t.Run("game over hides the pieces", func(t *testing.T) {
		screen := newScreen(t)
		g := game.New(game.WithRandomizer(onlyO{}))
		for range 9 {
			g.HardDrop()
		}
		g.Step()
		require.True(t, g.GameOver())

		term.NewRenderer(screen).Draw(g)

		assert.Equal(t, "Game Over", textAt(screen, 24, 10, 9))
		for y := 1; y <= game.BoardHeight; y++ {
			assert.NotEqual(t, '█', runeAt(screen, 1+4*2, y), "row %d", y)
		}
	})
}

func TestLoop(t *testing.T) {
	t.Run("quit key stops the loop", func(t *testing.T) {
		screen := newScreen(t)
		g := game.New(game.WithRandomizer(onlyO{}))
		in := term.NewInput(16)
		scheduler := host.NewScheduler(g, in)
		scheduler.Register(in)
		scheduler.Register(&host.InputSystem{})

		loop := &term.Loop{
			Screen:    screen,
			Scheduler: scheduler,
			Input:     in,
			Renderer:  term.NewRenderer(screen),
			TPS:       100,
		}

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		done := make(chan error, 1)
		go func() { done <- loop.Run(ctx) }()

		screen.InjectKey(tcell.KeyRune, ' ', tcell.ModNone)
		time.Sleep(100 * time.Millisecond)
		screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

		select {
		case err := <-done:
			require.NoError(t, err)
		case <-time.After(3 * time.Second):
			t.Fatal("loop did not stop on quit")
		}
		assert.NoError(t, ctx.Err())
		assert.Positive(t, scheduler.GetStats().Frames)
	})

	t.Run("context cancel stops the loop", func(t *testing.T) {
		screen := newScreen(t)
		in := term.NewInput(1)
		scheduler := host.NewScheduler(game.New(), in)
		scheduler.Register(in)

		loop := &term.Loop{Screen: screen, Scheduler: scheduler, Input: in, Renderer: term.NewRenderer(screen)}

		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()
		assert.NoError(t, loop.Run(ctx))
	})

	t.Run("incomplete loop", func(t *testing.T) {
		assert.Error(t, (&term.Loop{}).Run(context.Background()))
	})
}
