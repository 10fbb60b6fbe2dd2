package hashing

import (
	"testing"

	"github.com/lgbarn/chess-engine-go/internal/chess"
)

func TestSignatureCoversTuple(t *testing.T) {
	base := chess.StartingPosition()
	baseSig := Signature(base)

	if Signature(chess.StartingPosition()) != baseSig {
		t.Error("equal positions hash differently")
	}

	turn := base
	turn.Turn = chess.Black
	if Signature(turn) == baseSig {
		t.Error("side to move not covered by signature")
	}

	castling := base
	castling.Castling = castling.Castling.Without(chess.WhiteKingside)
	if Signature(castling) == baseSig {
		t.Error("castling rights not covered by signature")
	}

	ep := base
	ep.EnPassant, _ = chess.ParseSquare("e3")
	if Signature(ep) == baseSig {
		t.Error("en passant target not covered by signature")
	}

	moved := base
	e2, _ := chess.ParseSquare("e2")
	e4, _ := chess.ParseSquare("e4")
	moved.Board[e4] = moved.Board[e2]
	moved.Board[e2] = chess.NoPiece
	if Signature(moved) == baseSig {
		t.Error("placement not covered by signature")
	}
}

func TestSignatureIgnoresClocks(t *testing.T) {
	base := chess.StartingPosition()
	later := base
	later.HalfmoveClock = 30
	later.FullmoveNumber = 16

	if Signature(later) != Signature(base) {
		t.Error("move counters leak into the signature")
	}
}

func TestTrackerCounts(t *testing.T) {
	pos := chess.StartingPosition()
	other := pos
	other.Turn = chess.Black

	tr := NewRepetitionTracker()
	if got := tr.Count(pos); got != 0 {
		t.Errorf("Count on empty tracker = %d, want 0", got)
	}

	tr.Push(pos)
	tr.Push(other)
	tr.Push(pos)
	if got := tr.Count(pos); got != 2 {
		t.Errorf("Count = %d, want 2", got)
	}
	if got := tr.Count(other); got != 1 {
		t.Errorf("Count(other) = %d, want 1", got)
	}

	tr.Pop()
	if got := tr.Count(pos); got != 1 {
		t.Errorf("Count after Pop = %d, want 1", got)
	}

	tr.Reset()
	if got := tr.Count(pos); got != 0 {
		t.Errorf("Count after Reset = %d, want 0", got)
	}
}
