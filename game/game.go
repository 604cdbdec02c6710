// Package game implements the falling-block engine: board, pieces, gravity,
// collision, line clearing, rotation and scoring.
//
// A Game is owned by a single host loop. None of its methods block and none
// of them are safe for concurrent use.
package game

// PointsPerLine is added to the score for every cleared row.
const PointsPerLine = 100

// Game holds the complete state of one play session.
type Game struct {
	board   Board
	current Piece
	next    Piece
	score   int
	paused  bool
	over    bool

	rng   Randomizer
	stats *Stats
}

// Option configures a Game at construction.
type Option func(*Game)

// WithRandomizer sets the source used for piece draws.
func WithRandomizer(r Randomizer) Option {
	return func(g *Game) {
		g.rng = r
	}
}

// New returns a game with an empty board and two freshly drawn pieces.
func New(opts ...Option) *Game {
	g := &Game{
		rng:   globalRandomizer{},
		stats: newStats(),
	}
	for _, opt := range opts {
		opt(g)
	}
	g.reset()
	return g
}

func (g *Game) reset() {
	g.board = Board{}
	g.current = g.draw()
	g.next = g.draw()
	g.score = 0
	g.paused = false
	g.over = false
}

func (g *Game) draw() Piece {
	p := RandomPiece(g.rng)
	g.stats.recordSpawn(p.Shape)
	return p
}

// Board returns a copy of the locked cells.
func (g *Game) Board() Board {
	return g.board
}

// Current returns a copy of the falling piece.
func (g *Game) Current() Piece {
	return g.current.Clone()
}

// Next returns a copy of the preview piece.
func (g *Game) Next() Piece {
	return g.next.Clone()
}

// Score returns the points earned since the last restart.
func (g *Game) Score() int {
	return g.score
}

// Paused reports whether gravity steps are suspended.
func (g *Game) Paused() bool {
	return g.paused
}

// GameOver reports whether a spawned piece collided and play has ended.
func (g *Game) GameOver() bool {
	return g.over
}

// Stats returns the session totals.
func (g *Game) Stats() StatsSnapshot {
	return g.stats.snapshot()
}

// Step advances gravity by one row. While paused it returns no events and
// changes nothing. Once the game is over it only reports GameOver again.
func (g *Game) Step() []Event {
	if g.paused {
		return nil
	}
	if g.over {
		return []Event{GameOver(g.score)}
	}

	var events []Event

	g.current.Y++
	if g.collides(g.current.Cells, g.current.X, g.current.Y) {
		g.current.Y--
		if n := g.lock(); n > 0 {
			events = append(events, LinesCleared(n))
		}

		if g.collides(g.current.Cells, g.current.X, g.current.Y) {
			g.over = true
			g.stats.gamesOver++
			events = append(events, GameOver(g.score))
		}
	}

	if len(events) == 0 {
		events = append(events, Continue())
	}
	return events
}

// MovePiece translates the falling piece by (dx, dy). A move that would
// collide is discarded as a whole. It reports whether the piece moved.
func (g *Game) MovePiece(dx, dy int) bool {
	g.current.X += dx
	g.current.Y += dy

	if g.collides(g.current.Cells, g.current.X, g.current.Y) {
		g.current.X -= dx
		g.current.Y -= dy
		return false
	}
	return true
}

// RotatePiece turns the falling piece clockwise in place. There is no kick:
// if the rotated matrix collides at the current offset nothing changes.
func (g *Game) RotatePiece() bool {
	rotated := g.current.Cells.Rotate()
	if g.collides(rotated, g.current.X, g.current.Y) {
		return false
	}
	g.current.Cells = rotated
	return true
}

// HardDrop moves the falling piece to the lowest free row and locks it.
// Unlike Step it does not check the promoted piece for a spawn collision.
// Once the game is over it returns no events and changes nothing.
func (g *Game) HardDrop() []Event {
	if g.over {
		return nil
	}

	for !g.collides(g.current.Cells, g.current.X, g.current.Y) {
		g.current.Y++
	}
	g.current.Y--

	if n := g.lock(); n > 0 {
		return []Event{LinesCleared(n)}
	}
	return []Event{Continue()}
}

// TogglePause flips the paused flag. Only Step is gated by it.
func (g *Game) TogglePause() {
	g.paused = !g.paused
}

// Restart returns the game to its freshly constructed state. Session stats
// are kept.
func (g *Game) Restart() {
	g.reset()
}

// GhostY returns the row the falling piece would settle on if dropped now.
func (g *Game) GhostY() int {
	y := g.current.Y
	for !g.collides(g.current.Cells, g.current.X, y+1) {
		y++
	}
	return y
}

// lock merges the falling piece, clears rows, scores them and promotes the
// preview piece. It returns the number of rows cleared.
func (g *Game) lock() int {
	g.merge()
	g.stats.piecesLocked++

	n := g.board.ClearLines()
	g.score += n * PointsPerLine
	g.stats.linesCleared += n

	g.current = g.next
	g.next = g.draw()

	return n
}

func (g *Game) merge() {
	g.current.Each(func(x, y int, c Cell) {
		if x < 0 || x >= BoardWidth || y < 0 || y >= BoardHeight {
			return
		}
		g.board[y][x] = c
	})
}

// collides reports whether cells placed at (px, py) leave the board sideways
// or through the floor, or overlap a locked cell. Rows above the board are free.
func (g *Game) collides(cells Matrix, px, py int) bool {
	for dy, row := range cells {
		for dx, c := range row {
			if c.Empty() {
				continue
			}

			x, y := px+dx, py+dy
			if x < 0 || x >= BoardWidth || y >= BoardHeight {
				return true
			}
			if y >= 0 && !g.board[y][x].Empty() {
				return true
			}
		}
	}
	return false
}
