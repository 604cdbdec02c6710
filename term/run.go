package term

import (
	"context"
	"fmt"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/tetris/host"
)

// Loop runs a scheduler against a tcell screen.
type Loop struct {
	Screen    tcell.Screen
	Scheduler *host.Scheduler
	Input     *Input
	Renderer  *Renderer
	// TPS is the frame rate; each frame advances the game by 1/TPS seconds.
	TPS int
}

// Run draws and updates the game until ctx is done or a quit key arrives.
// The screen must already be initialized; Run does not finalize it.
func (l *Loop) Run(ctx context.Context) error {
	tps := l.TPS
	if tps <= 0 {
		tps = host.DefaultFPS
	}
	if l.Input == nil || l.Renderer == nil || l.Scheduler == nil {
		return fmt.Errorf("term: loop needs a scheduler, input and renderer")
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	l.Input.Quit = cancel

	go l.poll(ctx)

	interval := time.Second / time.Duration(tps)
	dt := 1 / float64(tps)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	l.draw()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			l.Scheduler.Once(dt)
			if ctx.Err() != nil {
				return nil
			}
			if l.Input.TakeResize() {
				l.Screen.Sync()
			}
			l.draw()
		}
	}
}

func (l *Loop) draw() {
	l.Renderer.Draw(l.Scheduler.Game())
	l.Screen.Show()
}

// poll forwards screen events to the input until the screen is finalized or
// ctx is done.
func (l *Loop) poll(ctx context.Context) {
	events := l.Input.Events()
	for {
		ev := l.Screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-ctx.Done():
			return
		}
	}
}

// Recover restores the terminal and exits after a panic. Use it deferred
// directly: defer term.Recover(screen).
func Recover(screen tcell.Screen) {
	if r := recover(); r != nil {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "panic: %v\n", r)
		fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
		os.Exit(1)
	}
}
