package engine

import "github.com/lgbarn/chess-engine-go/internal/chess"

// Rook home squares anchor the four castling rights.
const (
	squareA1 = chess.Square(0)
	squareH1 = chess.Square(7)
	squareA8 = chess.Square(56)
	squareH8 = chess.Square(63)
)

// Apply plays a validated move on pos and returns the resulting
// position. pos itself is left untouched, so callers can retain it as
// a history snapshot. The move must come from LegalMoves(pos);
// applying an arbitrary Move produces an undefined board.
func Apply(pos chess.Position, m chess.Move) chess.Position {
	next := pos
	us := pos.Turn
	moving := pos.Board[m.From]

	// Cleared every half-move, re-set below only by a double push.
	next.EnPassant = chess.NoSquare

	switch m.Class {
	case chess.KingsideCastle, chess.QueensideCastle:
		rank := m.From.Rank()
		rookFromFile, rookToFile := chess.File(7), chess.File(5)
		if m.Class == chess.QueensideCastle {
			rookFromFile, rookToFile = 0, 3
		}
		rookFrom := chess.NewSquare(rookFromFile, rank)
		rookTo := chess.NewSquare(rookToFile, rank)
		next.Board[m.From] = chess.NoPiece
		next.Board[m.To] = moving
		next.Board[rookTo] = next.Board[rookFrom]
		next.Board[rookFrom] = chess.NoPiece

	case chess.EnPassantCapture:
		// The captured pawn sits beside the mover, not on the
		// destination square.
		next.Board[chess.NewSquare(m.To.File(), m.From.Rank())] = chess.NoPiece
		next.Board[m.From] = chess.NoPiece
		next.Board[m.To] = moving

	default:
		next.Board[m.From] = chess.NoPiece
		if m.Promotion != chess.NoPieceKind {
			next.Board[m.To] = chess.NewPiece(us, m.Promotion)
		} else {
			next.Board[m.To] = moving
		}
		if m.Class == chess.DoublePawnPush {
			skipped := chess.Rank((int8(m.From.Rank()) + int8(m.To.Rank())) / 2)
			next.EnPassant = chess.NewSquare(m.From.File(), skipped)
		}
	}

	next.Castling = updatedCastlingRights(pos, m)

	if m.Piece == chess.Pawn || m.IsCapture() {
		next.HalfmoveClock = 0
	} else {
		next.HalfmoveClock = pos.HalfmoveClock + 1
	}
	if us == chess.Black {
		next.FullmoveNumber = pos.FullmoveNumber + 1
	}
	next.Turn = us.Other()
	return next
}

// updatedCastlingRights revokes rights for king moves and for rook
// moves or captures touching a rook home square. Revocation is
// permanent: a rook wandering back to its corner never restores a
// right.
func updatedCastlingRights(pos chess.Position, m chess.Move) chess.CastlingRights {
	rights := pos.Castling
	if m.Piece == chess.King {
		if pos.Turn == chess.White {
			rights = rights.Without(chess.WhiteKingside | chess.WhiteQueenside)
		} else {
			rights = rights.Without(chess.BlackKingside | chess.BlackQueenside)
		}
	}
	rights = rights.Without(rookHomeRight(m.From))
	rights = rights.Without(rookHomeRight(m.To))
	return rights
}

// rookHomeRight maps a rook home square to the right it anchors.
func rookHomeRight(sq chess.Square) chess.CastlingRights {
	switch sq {
	case squareA1:
		return chess.WhiteQueenside
	case squareH1:
		return chess.WhiteKingside
	case squareA8:
		return chess.BlackQueenside
	case squareH8:
		return chess.BlackKingside
	}
	return chess.NoCastlingRights
}
