package render

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/tetris/host"
)

// Overlay is drawn over the game, bracketing each update with a UI frame.
type Overlay interface {
	BeginFrame()
	EndFrame()
	Draw(screen *ebiten.Image)
	Layout(outsideWidth, outsideHeight int)
}

// App implements ebiten.Game on top of a host scheduler. Every ebiten update
// runs one scheduler frame of 1/TPS seconds.
type App struct {
	Scheduler *host.Scheduler
	Renderer  *Renderer
	Overlay   Overlay
	TPS       int
}

func (a *App) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	if a.Overlay != nil {
		a.Overlay.BeginFrame()
	}

	a.Scheduler.Once(a.frameDelta())

	if a.Overlay != nil {
		a.Overlay.EndFrame()
	}
	return nil
}

func (a *App) Draw(screen *ebiten.Image) {
	a.Renderer.Draw(screen, a.Scheduler.Game())

	if a.Overlay != nil {
		a.Overlay.Draw(screen)
	}
}

// Layout keeps the board at its logical size. With an overlay the window's
// full size is used so the panels have room next to the board.
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	if a.Overlay != nil {
		a.Overlay.Layout(outsideWidth, outsideHeight)
		return outsideWidth, outsideHeight
	}
	return a.Renderer.Layout.Size()
}

func (a *App) frameDelta() float64 {
	tps := a.TPS
	if tps <= 0 {
		tps = host.DefaultFPS
	}
	return 1 / float64(tps)
}

// Run opens a window sized for the board and blocks until it closes. With an
// overlay the window is expected to be set up by the overlay backend.
func Run(app *App, title string) error {
	if app.Overlay == nil {
		w, h := app.Renderer.Layout.Size()
		ebiten.SetWindowSize(w*2, h*2)
		ebiten.SetWindowTitle(title)
	}
	if app.TPS > 0 {
		ebiten.SetTPS(app.TPS)
	}
	return ebiten.RunGame(app)
}
