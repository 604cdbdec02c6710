package game

const (
	BoardWidth  = 10
	BoardHeight = 20
)

// Cell is a color id. Zero is empty, 1-7 identify the shape that locked the cell.
type Cell uint8

// Empty reports whether the cell is unoccupied.
func (c Cell) Empty() bool {
	return c == 0
}

// Board is the playfield, indexed [row][column] with row 0 at the top.
type Board [BoardHeight][BoardWidth]Cell

// Cell returns the cell at column x, row y.
func (b Board) Cell(x, y int) Cell {
	return b[y][x]
}

// RowFull reports whether every cell of row y is occupied.
func (b Board) RowFull(y int) bool {
	for _, c := range b[y] {
		if c.Empty() {
			return false
		}
	}
	return true
}

// ClearLines removes all complete rows, shifts the rows above them down and
// returns the number of rows removed.
func (b *Board) ClearLines() int {
	full := make([]int, 0, 4)
	for y := range BoardHeight {
		if b.RowFull(y) {
			full = append(full, y)
		}
	}

	if len(full) == 0 {
		return 0
	}

	// Compact surviving rows towards the bottom, walking upwards.
	dst := BoardHeight - 1
	next := len(full) - 1
	for src := BoardHeight - 1; src >= 0; src-- {
		if next >= 0 && full[next] == src {
			next--
			continue
		}
		b[dst] = b[src]
		dst--
	}

	for ; dst >= 0; dst-- {
		b[dst] = [BoardWidth]Cell{}
	}

	return len(full)
}

// Occupied returns the number of non-empty cells.
func (b Board) Occupied() int {
	n := 0
	for y := range BoardHeight {
		for _, c := range b[y] {
			if !c.Empty() {
				n++
			}
		}
	}
	return n
}
