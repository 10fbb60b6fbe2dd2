package engine

import "github.com/lgbarn/chess-engine-go/internal/chess"

// Promotion moves are generated queen-first so that decoders which
// default a missing promotion letter to a queen pick the natural move.
var promotionKinds = [4]chess.PieceKind{chess.Queen, chess.Rook, chess.Bishop, chess.Knight}

// LegalMoves returns every legal move for the side to move. An empty
// result means the game is over: checkmate if the side to move is in
// check, stalemate otherwise.
func LegalMoves(pos chess.Position) []chess.Move {
	pseudo := pseudoLegalMoves(pos)
	legal := make([]chess.Move, 0, len(pseudo))
	for _, m := range pseudo {
		if !InCheck(Apply(pos, m), pos.Turn) {
			legal = append(legal, m)
		}
	}
	return legal
}

// pseudoLegalMoves generates moves that obey piece movement and
// occupancy but may leave the mover's own king attacked.
func pseudoLegalMoves(pos chess.Position) []chess.Move {
	moves := make([]chess.Move, 0, 64)
	for sq := chess.Square(0); sq < 64; sq++ {
		piece := pos.Board[sq]
		if piece == chess.NoPiece || piece.Color() != pos.Turn {
			continue
		}
		switch piece.Kind() {
		case chess.Pawn:
			moves = pawnMoves(pos, sq, moves)
		case chess.Knight:
			moves = stepMoves(pos, sq, chess.Knight, knightOffsets, moves)
		case chess.King:
			moves = stepMoves(pos, sq, chess.King, kingOffsets, moves)
		case chess.Bishop:
			moves = slideMoves(pos, sq, chess.Bishop, diagonalDirs[:], moves)
		case chess.Rook:
			moves = slideMoves(pos, sq, chess.Rook, straightDirs[:], moves)
		case chess.Queen:
			moves = slideMoves(pos, sq, chess.Queen, diagonalDirs[:], moves)
			moves = slideMoves(pos, sq, chess.Queen, straightDirs[:], moves)
		}
	}
	return castlingMoves(pos, moves)
}

// pawnMoves generates pushes, double pushes, captures, en passant
// captures, and promotions for the pawn on from.
func pawnMoves(pos chess.Position, from chess.Square, moves []chess.Move) []chess.Move {
	us := pos.Turn
	dir := int8(1)
	startRank, promoRank := chess.Rank(1), chess.Rank(7)
	if us == chess.Black {
		dir = -1
		startRank, promoRank = 6, 0
	}

	// Single push, and double push when both squares are empty.
	if one := offsetSquare(from, 0, dir); one.Valid() && pos.Board[one] == chess.NoPiece {
		moves = appendPawnMove(moves, from, one, chess.NoPieceKind, promoRank)
		if from.Rank() == startRank {
			if two := offsetSquare(from, 0, 2*dir); pos.Board[two] == chess.NoPiece {
				moves = append(moves, chess.Move{
					From: from, To: two, Piece: chess.Pawn, Class: chess.DoublePawnPush,
				})
			}
		}
	}

	// Diagonal captures, including the en passant target.
	for _, df := range [2]int8{-1, 1} {
		to := offsetSquare(from, df, dir)
		if !to.Valid() {
			continue
		}
		target := pos.Board[to]
		switch {
		case target != chess.NoPiece && target.Color() != us:
			moves = appendPawnMove(moves, from, to, target.Kind(), promoRank)
		case to == pos.EnPassant:
			moves = append(moves, chess.Move{
				From: from, To: to, Piece: chess.Pawn,
				Captured: chess.Pawn, Class: chess.EnPassantCapture,
			})
		}
	}
	return moves
}

// appendPawnMove appends one pawn advance or capture, fanning out into
// the four promotion moves when the destination is the farthest rank.
func appendPawnMove(moves []chess.Move, from, to chess.Square, captured chess.PieceKind, promoRank chess.Rank) []chess.Move {
	m := chess.Move{From: from, To: to, Piece: chess.Pawn, Captured: captured}
	if to.Rank() != promoRank {
		return append(moves, m)
	}
	for _, kind := range promotionKinds {
		pm := m
		pm.Promotion = kind
		moves = append(moves, pm)
	}
	return moves
}

// stepMoves generates fixed-offset moves for knights and kings.
func stepMoves(pos chess.Position, from chess.Square, kind chess.PieceKind, offsets [8][2]int8, moves []chess.Move) []chess.Move {
	for _, off := range offsets {
		to := offsetSquare(from, off[0], off[1])
		if !to.Valid() {
			continue
		}
		target := pos.Board[to]
		if target != chess.NoPiece && target.Color() == pos.Turn {
			continue
		}
		moves = append(moves, chess.Move{From: from, To: to, Piece: kind, Captured: target.Kind()})
	}
	return moves
}

// slideMoves ray-casts for bishops, rooks, and queens: each direction
// is walked until any piece blocks it, including an enemy capture and
// stopping before a friendly piece.
func slideMoves(pos chess.Position, from chess.Square, kind chess.PieceKind, dirs [][2]int8, moves []chess.Move) []chess.Move {
	for _, dir := range dirs {
		for to := offsetSquare(from, dir[0], dir[1]); to.Valid(); to = offsetSquare(to, dir[0], dir[1]) {
			target := pos.Board[to]
			if target == chess.NoPiece {
				moves = append(moves, chess.Move{From: from, To: to, Piece: kind})
				continue
			}
			if target.Color() != pos.Turn {
				moves = append(moves, chess.Move{From: from, To: to, Piece: kind, Captured: target.Kind()})
			}
			break // Blocked
		}
	}
	return moves
}

// castlingMoves generates castling when the relevant right is still
// held, the rook is home, the squares between are empty, and the
// king's start, transit, and destination squares are not attacked.
func castlingMoves(pos chess.Position, moves []chess.Move) []chess.Move {
	us := pos.Turn
	them := us.Other()

	rank := chess.Rank(0)
	ksRight, qsRight := chess.WhiteKingside, chess.WhiteQueenside
	if us == chess.Black {
		rank = 7
		ksRight, qsRight = chess.BlackKingside, chess.BlackQueenside
	}

	kingFrom := chess.NewSquare(4, rank)
	if pos.Board[kingFrom] != chess.NewPiece(us, chess.King) {
		return moves
	}
	rook := chess.NewPiece(us, chess.Rook)

	if pos.Castling.Has(ksRight) && pos.Board[chess.NewSquare(7, rank)] == rook {
		fSq := chess.NewSquare(5, rank)
		gSq := chess.NewSquare(6, rank)
		if pos.Board[fSq] == chess.NoPiece && pos.Board[gSq] == chess.NoPiece &&
			!Attacked(pos, kingFrom, them) && !Attacked(pos, fSq, them) && !Attacked(pos, gSq, them) {
			moves = append(moves, chess.Move{
				From: kingFrom, To: gSq, Piece: chess.King, Class: chess.KingsideCastle,
			})
		}
	}

	if pos.Castling.Has(qsRight) && pos.Board[chess.NewSquare(0, rank)] == rook {
		bSq := chess.NewSquare(1, rank)
		cSq := chess.NewSquare(2, rank)
		dSq := chess.NewSquare(3, rank)
		if pos.Board[bSq] == chess.NoPiece && pos.Board[cSq] == chess.NoPiece && pos.Board[dSq] == chess.NoPiece &&
			!Attacked(pos, kingFrom, them) && !Attacked(pos, dSq, them) && !Attacked(pos, cSq, them) {
			moves = append(moves, chess.Move{
				From: kingFrom, To: cSq, Piece: chess.King, Class: chess.QueensideCastle,
			})
		}
	}
	return moves
}
