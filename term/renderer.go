package term

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/tetris/game"
)

const (
	blockRune = '█'
	ghostRune = '░'

	// Board cells are two columns wide to look roughly square.
	cellWidth = 2
	// panelX is the first column of the side panel.
	panelX = game.BoardWidth*cellWidth + 4
)

// Width and Height are the screen area the renderer needs.
const (
	Width  = panelX + 22
	Height = game.BoardHeight + 2
)

var shapeColors = [game.ShapeCount + 1]tcell.Color{
	tcell.ColorDefault,
	tcell.ColorAqua,
	tcell.ColorYellow,
	tcell.ColorPurple,
	tcell.ColorGreen,
	tcell.ColorRed,
	tcell.ColorBlue,
	tcell.ColorOrange,
}

// Renderer draws the game with a box around the board and the panel to its right.
type Renderer struct {
	Screen tcell.Screen
	Ghost  bool
}

func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{Screen: screen, Ghost: true}
}

// Draw renders one frame. The caller calls Show.
func (r *Renderer) Draw(g *game.Game) {
	r.Screen.Clear()
	r.drawBorder()

	if !g.GameOver() {
		board := g.Board()
		for y := range game.BoardHeight {
			for x := range game.BoardWidth {
				if c := board.Cell(x, y); !c.Empty() {
					r.cell(x, y, blockRune, c)
				}
			}
		}

		current := g.Current()
		if ghostY := g.GhostY(); r.Ghost && ghostY != current.Y {
			ghost := current
			ghost.Y = ghostY
			ghost.Each(func(x, y int, c game.Cell) {
				if y >= 0 {
					r.cell(x, y, ghostRune, c)
				}
			})
		}
		current.Each(func(x, y int, c game.Cell) {
			if y >= 0 {
				r.cell(x, y, blockRune, c)
			}
		})

		next := g.Next()
		for y, row := range next.Cells {
			for x, c := range row {
				if !c.Empty() {
					r.put(panelX+x*cellWidth, y+1, blockRune, c)
					r.put(panelX+x*cellWidth+1, y+1, blockRune, c)
				}
			}
		}
	}

	r.text(panelX, 0, "Next piece:")
	r.text(panelX, 5, fmt.Sprintf("Score: %d", g.Score()))
	switch {
	case g.GameOver():
		r.text(panelX, 10, "Game Over")
	case g.Paused():
		r.text(panelX, 10, "Paused")
	}
	r.text(panelX, 13, "arrows/hjkl move")
	r.text(panelX, 14, "up/k rotate")
	r.text(panelX, 15, "space drop  p pause")
	r.text(panelX, 16, "q quit")
}

func (r *Renderer) drawBorder() {
	style := tcell.StyleDefault
	right := game.BoardWidth*cellWidth + 1
	bottom := game.BoardHeight + 1

	for x := 1; x < right; x++ {
		r.Screen.SetContent(x, 0, tcell.RuneHLine, nil, style)
		r.Screen.SetContent(x, bottom, tcell.RuneHLine, nil, style)
	}
	for y := 1; y < bottom; y++ {
		r.Screen.SetContent(0, y, tcell.RuneVLine, nil, style)
		r.Screen.SetContent(right, y, tcell.RuneVLine, nil, style)
	}
	r.Screen.SetContent(0, 0, tcell.RuneULCorner, nil, style)
	r.Screen.SetContent(right, 0, tcell.RuneURCorner, nil, style)
	r.Screen.SetContent(0, bottom, tcell.RuneLLCorner, nil, style)
	r.Screen.SetContent(right, bottom, tcell.RuneLRCorner, nil, style)
}

// cell fills board cell (x, y), offset by the border.
func (r *Renderer) cell(x, y int, ch rune, c game.Cell) {
	sx := 1 + x*cellWidth
	r.put(sx, y+1, ch, c)
	r.put(sx+1, y+1, ch, c)
}

func (r *Renderer) put(x, y int, ch rune, c game.Cell) {
	color := tcell.ColorDefault
	if int(c) < len(shapeColors) {
		color = shapeColors[c]
	}
	r.Screen.SetContent(x, y, ch, nil, tcell.StyleDefault.Foreground(color))
}

func (r *Renderer) text(x, y int, s string) {
	for i, ch := range []rune(s) {
		r.Screen.SetContent(x+i, y, ch, nil, tcell.StyleDefault)
	}
}
