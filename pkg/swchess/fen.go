package swchess

import "github.com/corentings/chess/v2"

var fenPieces = [numColors][numKinds]chess.Piece{
	White: {
		King:   chess.WhiteKing,
		Queen:  chess.WhiteQueen,
		Rook:   chess.WhiteRook,
		Bishop: chess.WhiteBishop,
		Knight: chess.WhiteKnight,
		Pawn:   chess.WhitePawn,
	},
	Black: {
		King:   chess.BlackKing,
		Queen:  chess.BlackQueen,
		Rook:   chess.BlackRook,
		Bishop: chess.BlackBishop,
		Knight: chess.BlackKnight,
		Pawn:   chess.BlackPawn,
	},
}

// FEN returns the piece placement field of a FEN record for b. Row 0 is the
// eighth rank and column 0 is the a-file. FEN spells White in uppercase,
// the reverse of placement letters.
func (b Board) FEN() string {
	squares := make(map[chess.Square]chess.Piece)
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			p, ok := b.At(x, y)
			if !ok {
				continue
			}
			rank := Size - 1 - y
			squares[chess.Square(x+Size*rank)] = fenPieces[p.Color][p.Kind]
		}
	}
	return chess.NewBoard(squares).String()
}
