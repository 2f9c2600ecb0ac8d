package swchess

import "fmt"

type Color int

const (
	White Color = iota
	Black
)

const numColors = 2

func (c Color) String() string {
	switch c {
	case White:
		return "White"
	case Black:
		return "Black"
	default:
		return fmt.Sprintf("Color(%d)", int(c))
	}
}

type Kind int

const (
	King Kind = iota
	Queen
	Rook
	Bishop
	Knight
	Pawn
)

const numKinds = 6

func (k Kind) String() string {
	switch k {
	case King:
		return "King"
	case Queen:
		return "Queen"
	case Rook:
		return "Rook"
	case Bishop:
		return "Bishop"
	case Knight:
		return "Knight"
	case Pawn:
		return "Pawn"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// MaxAllowed returns how many pieces of kind k one color may hold on a board.
func MaxAllowed(k Kind) int {
	switch k {
	case King, Queen:
		return 1
	case Rook, Bishop, Knight:
		return 2
	case Pawn:
		return 8
	default:
		return 0
	}
}

// Weight is the material value of one piece of kind k.
func Weight(k Kind) int {
	switch k {
	case Pawn:
		return 100
	case Knight:
		return 320
	case Bishop:
		return 330
	case Rook:
		return 500
	case Queen:
		return 900
	case King:
		return 20000
	default:
		return 0
	}
}

type Piece struct {
	Color Color
	Kind  Kind
}

type pieceDef struct {
	letter rune
	kind   Kind
	color  Color
}

// Lowercase letters are White and uppercase letters are Black.
var pieceDefs = []pieceDef{
	{letter: 'k', kind: King, color: White},
	{letter: 'q', kind: Queen, color: White},
	{letter: 'r', kind: Rook, color: White},
	{letter: 'b', kind: Bishop, color: White},
	{letter: 'n', kind: Knight, color: White},
	{letter: 'p', kind: Pawn, color: White},
	{letter: 'K', kind: King, color: Black},
	{letter: 'Q', kind: Queen, color: Black},
	{letter: 'R', kind: Rook, color: Black},
	{letter: 'B', kind: Bishop, color: Black},
	{letter: 'N', kind: Knight, color: Black},
	{letter: 'P', kind: Pawn, color: Black},
}

// PieceFromLetter maps one of the twelve piece letters to its Piece.
func PieceFromLetter(r rune) (Piece, bool) {
	for _, def := range pieceDefs {
		if def.letter == r {
			return Piece{Color: def.color, Kind: def.kind}, true
		}
	}
	return Piece{}, false
}

// Letter is the inverse of PieceFromLetter.
func (p Piece) Letter() rune {
	for _, def := range pieceDefs {
		if def.kind == p.Kind && def.color == p.Color {
			return def.letter
		}
	}
	return '?'
}

func (p Piece) String() string {
	return fmt.Sprintf("%s %s", p.Color, p.Kind)
}

// Kinds lists every Kind in table order.
func Kinds() []Kind {
	return []Kind{King, Queen, Rook, Bishop, Knight, Pawn}
}

// Colors lists both colors, White first.
func Colors() []Color {
	return []Color{White, Black}
}
