// Package render draws a game.Game into an ebiten window and feeds the
// keyboard back to the host loop.
package render

import (
	"fmt"
	"image/color"

	"github.com/plus3/tetris/game"
)

// DefaultBlockSize is the reference cell size in pixels.
const DefaultBlockSize = 20

// Columns of the side panel, in blocks from the left edge.
const (
	panelColumn = 12
	panelWidth  = 6
)

// Layout places the board and the side panel on a grid of square blocks.
type Layout struct {
	Block int
}

func (l Layout) block() int {
	if l.Block <= 0 {
		return DefaultBlockSize
	}
	return l.Block
}

// Size is the logical screen size.
func (l Layout) Size() (w, h int) {
	b := l.block()
	return (panelColumn + panelWidth) * b, game.BoardHeight * b
}

// Cell returns the top-left pixel of board cell (x, y).
func (l Layout) Cell(x, y int) (float32, float32) {
	b := float32(l.block())
	return float32(x) * b, float32(y) * b
}

// NextCell returns the top-left pixel of cell (x, y) of the preview piece.
func (l Layout) NextCell(x, y int) (float32, float32) {
	return l.Cell(x+panelColumn, y+1)
}

// NextLabel, Score and Status are the text anchors of the side panel.
func (l Layout) NextLabel() (int, int) { return panelColumn * l.block(), 0 }
func (l Layout) Score() (int, int)     { return panelColumn * l.block(), 5 * l.block() }
func (l Layout) Status() (int, int)    { return panelColumn * l.block(), 10 * l.block() }

var (
	Background = color.RGBA{0x10, 0x10, 0x14, 0xff}
	GridLine   = color.RGBA{0x50, 0x50, 0x50, 0xff}
	TextColor  = color.RGBA{0xff, 0xff, 0xff, 0xff}
	GhostColor = color.RGBA{0xff, 0xff, 0xff, 0x50}
)

// Palette maps a color id to its fill. Index 0 is the empty cell.
var Palette = [game.ShapeCount + 1]color.RGBA{
	Background,
	{0x66, 0xbf, 0xff, 0xff}, // I
	{0xff, 0xcb, 0x00, 0xff}, // O
	{0xc8, 0x7a, 0xff, 0xff}, // T
	{0x00, 0xe4, 0x30, 0xff}, // S
	{0xe6, 0x29, 0x37, 0xff}, // Z
	{0x00, 0x79, 0xf1, 0xff}, // J
	{0xff, 0xa1, 0x00, 0xff}, // L
}

// ColorOf returns the fill for a cell, falling back to the background for
// ids outside the palette.
func ColorOf(c game.Cell) color.RGBA {
	if int(c) >= len(Palette) {
		return Background
	}
	return Palette[c]
}

// ScoreText is the score line of the side panel.
func ScoreText(g *game.Game) string {
	return fmt.Sprintf("Score: %d", g.Score())
}

// StatusText is the status line of the side panel, empty while playing.
func StatusText(g *game.Game) string {
	switch {
	case g.GameOver():
		return "Game Over"
	case g.Paused():
		return "Paused"
	}
	return ""
}
