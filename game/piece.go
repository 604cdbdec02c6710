package game

import (
	"fmt"
	"strings"
)

// Shape identifies one of the seven pieces.
type Shape uint8

const (
	ShapeI Shape = iota
	ShapeO
	ShapeT
	ShapeS
	ShapeZ
	ShapeJ
	ShapeL

	ShapeCount = 7
)

// Spawn offset shared by every shape.
const (
	SpawnX = 4
	SpawnY = 0
)

var shapeNames = [ShapeCount]string{"I", "O", "T", "S", "Z", "J", "L"}

func (s Shape) String() string {
	if s >= ShapeCount {
		return fmt.Sprintf("Shape(%d)", uint8(s))
	}
	return shapeNames[s]
}

// Color returns the color id the shape writes into the board.
func (s Shape) Color() Cell {
	return Cell(s) + 1
}

// Matrix is a square grid of piece cells, indexed [row][column].
type Matrix [][]Cell

var shapeTable = [ShapeCount]Matrix{
	ShapeI: {
		{0, 0, 0, 0},
		{1, 1, 1, 1},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	},
	ShapeO: {
		{2, 2},
		{2, 2},
	},
	ShapeT: {
		{0, 3, 0},
		{3, 3, 3},
		{0, 0, 0},
	},
	ShapeS: {
		{0, 4, 4},
		{4, 4, 0},
		{0, 0, 0},
	},
	ShapeZ: {
		{5, 5, 0},
		{0, 5, 5},
		{0, 0, 0},
	},
	ShapeJ: {
		{6, 0, 0},
		{6, 6, 6},
		{0, 0, 0},
	},
	ShapeL: {
		{0, 0, 7},
		{7, 7, 7},
		{0, 0, 0},
	},
}

// Clone returns a deep copy of the matrix.
func (m Matrix) Clone() Matrix {
	out := make(Matrix, len(m))
	for i, row := range m {
		out[i] = append([]Cell(nil), row...)
	}
	return out
}

// Rotate returns the matrix turned 90 degrees clockwise: transpose, then
// reverse every row.
func (m Matrix) Rotate() Matrix {
	if len(m) == 0 {
		return Matrix{}
	}

	rows, cols := len(m), len(m[0])
	out := make(Matrix, cols)
	for i := range out {
		out[i] = make([]Cell, rows)
	}

	for y := range rows {
		for x := range cols {
			out[x][y] = m[y][x]
		}
	}

	for _, row := range out {
		for i, j := 0, len(row)-1; i < j; i, j = i+1, j-1 {
			row[i], row[j] = row[j], row[i]
		}
	}

	return out
}

// Equal reports whether both matrices have the same dimensions and cells.
func (m Matrix) Equal(o Matrix) bool {
	if len(m) != len(o) {
		return false
	}
	for y := range m {
		if len(m[y]) != len(o[y]) {
			return false
		}
		for x := range m[y] {
			if m[y][x] != o[y][x] {
				return false
			}
		}
	}
	return true
}

func (m Matrix) String() string {
	var b strings.Builder
	for y, row := range m {
		if y > 0 {
			b.WriteByte('\n')
		}
		for _, c := range row {
			if c.Empty() {
				b.WriteByte('.')
			} else {
				b.WriteByte('0' + byte(c))
			}
		}
	}
	return b.String()
}

// Piece is a shape matrix placed on the board with its top-left corner at (X, Y).
type Piece struct {
	Shape Shape
	Cells Matrix
	X, Y  int
}

// NewPiece returns a piece of the given shape at the spawn offset.
func NewPiece(s Shape) Piece {
	return Piece{
		Shape: s,
		Cells: shapeTable[s].Clone(),
		X:     SpawnX,
		Y:     SpawnY,
	}
}

// Clone returns a copy that does not share its matrix with p.
func (p Piece) Clone() Piece {
	p.Cells = p.Cells.Clone()
	return p
}

// Size returns the width and height of the piece matrix.
func (p Piece) Size() (w, h int) {
	h = len(p.Cells)
	if h > 0 {
		w = len(p.Cells[0])
	}
	return w, h
}

// Each calls fn with the board coordinates of every occupied cell.
func (p Piece) Each(fn func(x, y int, c Cell)) {
	for dy, row := range p.Cells {
		for dx, c := range row {
			if c.Empty() {
				continue
			}
			fn(p.X+dx, p.Y+dy, c)
		}
	}
}

func (p Piece) String() string {
	return fmt.Sprintf("%s@(%d,%d)", p.Shape, p.X, p.Y)
}
