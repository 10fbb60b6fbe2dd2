// Package hashing provides position signatures for repetition
// detection. A signature covers exactly the repetition tuple: piece
// placement, side to move, castling rights, and en passant target.
// The move counters are deliberately excluded.
package hashing

import (
	"math/rand"

	"github.com/lgbarn/chess-engine-go/internal/chess"
)

// Zobrist tables, filled from a fixed seed so the same position
// always hashes the same across sessions.
var (
	pieceKeys     [16][64]uint64 // coloured piece value x square
	castlingKeys  [16]uint64     // 4-bit castling rights
	enPassantKeys [8]uint64      // en passant file
	blackToMove   uint64
)

func init() {
	rng := rand.New(rand.NewSource(0x6368657373676F)) // constant seed

	for piece := range pieceKeys {
		for sq := 0; sq < 64; sq++ {
			pieceKeys[piece][sq] = rng.Uint64()
		}
	}
	for i := range castlingKeys {
		castlingKeys[i] = rng.Uint64()
	}
	for f := range enPassantKeys {
		enPassantKeys[f] = rng.Uint64()
	}
	blackToMove = rng.Uint64()
}

// Signature computes the Zobrist hash of the position's repetition
// tuple.
func Signature(pos chess.Position) uint64 {
	var h uint64
	for sq := chess.Square(0); sq < 64; sq++ {
		if piece := pos.Board[sq]; piece != chess.NoPiece {
			h ^= pieceKeys[piece][sq]
		}
	}
	h ^= castlingKeys[pos.Castling]
	if pos.EnPassant != chess.NoSquare {
		h ^= enPassantKeys[pos.EnPassant.File()]
	}
	if pos.Turn == chess.Black {
		h ^= blackToMove
	}
	return h
}

// tupleKey renders the repetition tuple as a compact string. The
// tracker stores it next to the hash so a hash collision can never
// manufacture a false repetition draw.
func tupleKey(pos chess.Position) string {
	buf := make([]byte, 0, 64+12)
	for sq := chess.Square(0); sq < 64; sq++ {
		buf = append(buf, pos.Board[sq].Letter())
	}
	buf = append(buf, byte('0'+pos.Turn), byte('0'+pos.Castling))
	buf = append(buf, pos.EnPassant.String()...)
	return string(buf)
}
