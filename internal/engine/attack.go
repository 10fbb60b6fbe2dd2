// Package engine implements the chess rules: attack detection, legal
// move generation, move application, and position status.
package engine

import "github.com/lgbarn/chess-engine-go/internal/chess"

var (
	knightOffsets = [8][2]int8{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}
	kingOffsets   = [8][2]int8{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}
	diagonalDirs  = [4][2]int8{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	straightDirs  = [4][2]int8{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
)

// offsetSquare returns the square df files and dr ranks away from sq,
// or NoSquare when that walks off the board.
func offsetSquare(sq chess.Square, df, dr int8) chess.Square {
	f := int8(sq.File()) + df
	r := int8(sq.Rank()) + dr
	if f < 0 || f > 7 || r < 0 || r > 7 {
		return chess.NoSquare
	}
	return chess.NewSquare(chess.File(f), chess.Rank(r))
}

// Attacked reports whether sq is attacked by any piece of colour by.
// This single predicate backs both the legality filter and castling
// generation.
func Attacked(pos chess.Position, sq chess.Square, by chess.Color) bool {
	// Pawn attacks. White pawns attack from the rank below, black
	// pawns from the rank above.
	pawn := chess.NewPiece(by, chess.Pawn)
	dr := int8(-1)
	if by == chess.Black {
		dr = 1
	}
	for _, df := range [2]int8{-1, 1} {
		if from := offsetSquare(sq, df, dr); from.Valid() && pos.Board[from] == pawn {
			return true
		}
	}

	// Knight attacks.
	knight := chess.NewPiece(by, chess.Knight)
	for _, off := range knightOffsets {
		if from := offsetSquare(sq, off[0], off[1]); from.Valid() && pos.Board[from] == knight {
			return true
		}
	}

	// King attacks.
	king := chess.NewPiece(by, chess.King)
	for _, off := range kingOffsets {
		if from := offsetSquare(sq, off[0], off[1]); from.Valid() && pos.Board[from] == king {
			return true
		}
	}

	// Sliding pieces along diagonals.
	bishop := chess.NewPiece(by, chess.Bishop)
	queen := chess.NewPiece(by, chess.Queen)
	for _, dir := range diagonalDirs {
		for from := offsetSquare(sq, dir[0], dir[1]); from.Valid(); from = offsetSquare(from, dir[0], dir[1]) {
			piece := pos.Board[from]
			if piece != chess.NoPiece {
				if piece == bishop || piece == queen {
					return true
				}
				break // Blocked
			}
		}
	}

	// Sliding pieces along straight lines.
	rook := chess.NewPiece(by, chess.Rook)
	for _, dir := range straightDirs {
		for from := offsetSquare(sq, dir[0], dir[1]); from.Valid(); from = offsetSquare(from, dir[0], dir[1]) {
			piece := pos.Board[from]
			if piece != chess.NoPiece {
				if piece == rook || piece == queen {
					return true
				}
				break // Blocked
			}
		}
	}

	return false
}

// InCheck reports whether the given colour's king is attacked.
func InCheck(pos chess.Position, c chess.Color) bool {
	king := pos.KingSquare(c)
	if king == chess.NoSquare {
		return false
	}
	return Attacked(pos, king, c.Other())
}
