package swchess

import "strings"

// Size is the number of files and rows on a board.
const Size = 8

// Board is a snapshot of one load. The zero value is an empty board.
type Board struct {
	cells [Size][Size]cell
}

type cell struct {
	piece    Piece
	occupied bool
}

// At returns the piece on column x, row y. The bool is false for an empty
// cell or for coordinates outside the board.
func (b Board) At(x, y int) (Piece, bool) {
	if !onBoard(x, y) {
		return Piece{}, false
	}
	c := b.cells[y][x]
	return c.piece, c.occupied
}

// Occupied reports the number of non-empty cells.
func (b Board) Occupied() int {
	n := 0
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			if b.cells[y][x].occupied {
				n++
			}
		}
	}
	return n
}

// Row renders row y as eight characters, blank for empty cells.
func (b Board) Row(y int) string {
	var sb strings.Builder
	for x := 0; x < Size; x++ {
		p, ok := b.At(x, y)
		if !ok {
			sb.WriteByte(' ')
			continue
		}
		sb.WriteRune(p.Letter())
	}
	return sb.String()
}

// put fills an empty cell. It reports false when the cell already holds a
// piece; a cell is never overwritten.
func (b *Board) put(x, y int, p Piece) bool {
	c := &b.cells[y][x]
	if c.occupied {
		return false
	}
	c.piece = p
	c.occupied = true
	return true
}

func onBoard(x, y int) bool {
	return x >= 0 && x < Size && y >= 0 && y < Size
}

// Counts tallies placed pieces per color and kind.
type Counts struct {
	n [numColors][numKinds]int
}

func (c Counts) Get(color Color, kind Kind) int {
	if !validColor(color) || !validKind(kind) {
		return 0
	}
	return c.n[color][kind]
}

// Total is the number of pieces of one color.
func (c Counts) Total(color Color) int {
	if !validColor(color) {
		return 0
	}
	total := 0
	for _, n := range c.n[color] {
		total += n
	}
	return total
}

func (c *Counts) full(p Piece) bool {
	return c.n[p.Color][p.Kind] >= MaxAllowed(p.Kind)
}

func (c *Counts) add(p Piece) {
	c.n[p.Color][p.Kind]++
}

func validColor(c Color) bool {
	return c >= 0 && c < numColors
}

func validKind(k Kind) bool {
	return k >= 0 && k < numKinds
}

// Rejections counts what a load discarded, per reason.
type Rejections struct {
	Malformed        int
	InvalidPlacement int
	OccupiedCell     int
	CapacityExceeded int
}

func (r Rejections) Total() int {
	return r.Malformed + r.InvalidPlacement + r.OccupiedCell + r.CapacityExceeded
}

// Result is everything one load produces.
type Result struct {
	Board    Board
	Counts   Counts
	Rejected Rejections
}
