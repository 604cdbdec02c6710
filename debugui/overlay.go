package debugui

import (
	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/hajimehoshi/ebiten/v2"
)

// Overlay drives the Dear ImGui ebiten backend around each game update.
type Overlay struct {
	backend *ebitenbackend.EbitenBackend
}

// NewOverlay creates the backend and its window. The caller still runs the
// game with ebiten.RunGame.
func NewOverlay(title string, width, height int) *Overlay {
	backend := ebitenbackend.NewEbitenBackend()
	backend.CreateWindow(title, width, height)
	imgui.CurrentIO().SetIniFilename("")

	return &Overlay{backend: backend}
}

func (o *Overlay) BeginFrame() { o.backend.BeginFrame() }

func (o *Overlay) EndFrame() { o.backend.EndFrame() }

func (o *Overlay) Draw(screen *ebiten.Image) { o.backend.Draw(screen) }

func (o *Overlay) Layout(outsideWidth, outsideHeight int) {
	o.backend.Layout(outsideWidth, outsideHeight)
}
