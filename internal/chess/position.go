package chess

import "strings"

// Position is one complete board state: piece placement, side to
// move, castling rights, en passant target, and the two move
// counters.
//
// Position is a plain value. The engine never mutates a Position in
// place; applying a move copies the value and returns a fresh one,
// so every Position ever handed out stays valid as a snapshot in a
// game history.
type Position struct {
	// Board maps each square to its occupant, NoPiece when empty.
	Board [64]Piece

	// Turn is the side to move.
	Turn Color

	// Castling holds the remaining castling rights.
	Castling CastlingRights

	// EnPassant is the square a pawn skipped over on the last double
	// push, or NoSquare. It is cleared on every half-move unless
	// immediately re-set.
	EnPassant Square

	// HalfmoveClock counts half-moves since the last pawn move or
	// capture and drives the fifty-move rule.
	HalfmoveClock int

	// FullmoveNumber starts at 1 and increments after Black moves.
	FullmoveNumber int
}

// StartingPosition returns the standard chess starting position.
func StartingPosition() Position {
	pos := Position{
		Turn:           White,
		Castling:       AllCastlingRights,
		EnPassant:      NoSquare,
		FullmoveNumber: 1,
	}

	backRank := []PieceKind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for f := File(0); f < 8; f++ {
		pos.Board[NewSquare(f, 0)] = NewPiece(White, backRank[f])
		pos.Board[NewSquare(f, 1)] = NewPiece(White, Pawn)
		pos.Board[NewSquare(f, 6)] = NewPiece(Black, Pawn)
		pos.Board[NewSquare(f, 7)] = NewPiece(Black, backRank[f])
	}
	return pos
}

// Piece returns the occupant of the given square, or NoPiece for an
// empty square or NoSquare.
func (p Position) Piece(sq Square) Piece {
	if !sq.Valid() {
		return NoPiece
	}
	return p.Board[sq]
}

// KingSquare returns the square of the given colour's king, or
// NoSquare if the board has none (only possible for hand-built
// positions; every engine-produced position has both kings).
func (p Position) KingSquare(c Color) Square {
	king := NewPiece(c, King)
	for sq := Square(0); sq < 64; sq++ {
		if p.Board[sq] == king {
			return sq
		}
	}
	return NoSquare
}

// Diagram returns a printable ASCII rendering of the board with
// rank and file labels, suitable for a console front end.
func (p Position) Diagram() string {
	var sb strings.Builder
	const divider = "  +---+---+---+---+---+---+---+---+\n"

	for r := Rank(7); r >= 0; r-- {
		sb.WriteString(divider)
		sb.WriteByte(byte('1' + r))
		sb.WriteString(" |")
		for f := File(0); f < 8; f++ {
			piece := p.Board[NewSquare(f, r)]
			sb.WriteByte(' ')
			if piece == NoPiece {
				sb.WriteByte(' ')
			} else {
				sb.WriteByte(piece.Letter())
			}
			sb.WriteString(" |")
		}
		sb.WriteByte('\n')
	}
	sb.WriteString(divider)
	sb.WriteString("    a   b   c   d   e   f   g   h\n")
	return sb.String()
}
