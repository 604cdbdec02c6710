package render

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/plus3/tetris/game"
)

// Renderer draws the board, pieces and side panel. Locked cells and pieces
// are hidden while the game is over.
type Renderer struct {
	Layout Layout
	// Ghost outlines where the current piece would land.
	Ghost bool
}

func NewRenderer(blockSize int) *Renderer {
	return &Renderer{
		Layout: Layout{Block: blockSize},
		Ghost:  true,
	}
}

func (r *Renderer) Draw(screen *ebiten.Image, g *game.Game) {
	screen.Fill(Background)
	r.drawGrid(screen)

	if !g.GameOver() {
		r.drawBoard(screen, g.Board())
		if r.Ghost {
			r.drawGhost(screen, g.Current(), g.GhostY())
		}
		r.drawPiece(screen, g.Current())
		r.drawNext(screen, g.Next())
	}

	r.drawPanel(screen, g)
}

func (r *Renderer) drawGrid(screen *ebiten.Image) {
	right, _ := r.Layout.Cell(game.BoardWidth, 0)
	_, bottom := r.Layout.Cell(0, game.BoardHeight)

	for y := range game.BoardHeight {
		_, py := r.Layout.Cell(0, y)
		vector.StrokeLine(screen, 0, py, right, py, 1, GridLine, false)
	}
	for x := range game.BoardWidth {
		px, _ := r.Layout.Cell(x, 0)
		vector.StrokeLine(screen, px, 0, px, bottom, 1, GridLine, false)
	}
}

func (r *Renderer) drawBoard(screen *ebiten.Image, board game.Board) {
	for y := range game.BoardHeight {
		for x := range game.BoardWidth {
			if c := board.Cell(x, y); !c.Empty() {
				r.fill(screen, x, y, c)
			}
		}
	}
}

func (r *Renderer) drawPiece(screen *ebiten.Image, p game.Piece) {
	p.Each(func(x, y int, c game.Cell) {
		if y >= 0 {
			r.fill(screen, x, y, c)
		}
	})
}

func (r *Renderer) drawGhost(screen *ebiten.Image, p game.Piece, ghostY int) {
	if ghostY == p.Y {
		return
	}
	size := float32(r.Layout.block())
	p.Y = ghostY
	p.Each(func(x, y int, _ game.Cell) {
		if y < 0 {
			return
		}
		px, py := r.Layout.Cell(x, y)
		vector.StrokeRect(screen, px+1, py+1, size-2, size-2, 1, GhostColor, false)
	})
}

func (r *Renderer) drawNext(screen *ebiten.Image, p game.Piece) {
	size := float32(r.Layout.block())
	for y, row := range p.Cells {
		for x, c := range row {
			if c.Empty() {
				continue
			}
			px, py := r.Layout.NextCell(x, y)
			vector.DrawFilledRect(screen, px, py, size, size, ColorOf(c), false)
		}
	}
}

func (r *Renderer) drawPanel(screen *ebiten.Image, g *game.Game) {
	x, y := r.Layout.NextLabel()
	ebitenutil.DebugPrintAt(screen, "Next piece:", x, y)

	x, y = r.Layout.Score()
	ebitenutil.DebugPrintAt(screen, ScoreText(g), x, y)

	if status := StatusText(g); status != "" {
		x, y = r.Layout.Status()
		ebitenutil.DebugPrintAt(screen, status, x, y)
	}
}

func (r *Renderer) fill(screen *ebiten.Image, x, y int, c game.Cell) {
	size := float32(r.Layout.block())
	px, py := r.Layout.Cell(x, y)
	vector.DrawFilledRect(screen, px, py, size, size, ColorOf(c), false)
}
