package engine_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/engine"
	"github.com/lgbarn/chess-engine-go/internal/notation"
)

func TestApplyKingsideCastle(t *testing.T) {
	pos := mustPosition(t, "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")

	var castle chess.Move
	for _, m := range engine.LegalMoves(pos) {
		if m.Class == chess.KingsideCastle {
			castle = m
		}
	}
	if castle.Class != chess.KingsideCastle {
		t.Fatal("no kingside castle generated")
	}

	got := engine.Apply(pos, castle)
	want := mustPosition(t, "r3k2r/8/8/8/8/8/8/R4RK1 b kq - 1 1")
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("position after O-O mismatch (-want +got):\n%s", diff)
	}
}

func TestApplyQueensideCastleBlack(t *testing.T) {
	pos := mustPosition(t, "r3k2r/8/8/8/8/8/8/R4RK1 b kq - 1 1")

	var castle chess.Move
	for _, m := range engine.LegalMoves(pos) {
		if m.Class == chess.QueensideCastle {
			castle = m
		}
	}
	if castle.Class != chess.QueensideCastle {
		t.Fatal("no queenside castle generated")
	}

	got := engine.Apply(pos, castle)
	want := mustPosition(t, "2kr3r/8/8/8/8/8/8/R4RK1 w - - 2 2")
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("position after ...O-O-O mismatch (-want +got):\n%s", diff)
	}
}

func TestApplyPromotion(t *testing.T) {
	pos := mustPosition(t, "4k3/P7/8/8/8/8/8/4K3 w - - 0 1")

	var promo chess.Move
	for _, m := range engine.LegalMoves(pos) {
		if m.Promotion == chess.Queen {
			promo = m
		}
	}
	if promo.Promotion != chess.Queen {
		t.Fatal("no queen promotion generated")
	}

	got := engine.Apply(pos, promo)
	a8, _ := chess.ParseSquare("a8")
	a7, _ := chess.ParseSquare("a7")
	if got.Piece(a8) != chess.NewPiece(chess.White, chess.Queen) {
		t.Errorf("a8 = %v, want white queen", got.Piece(a8))
	}
	if got.Piece(a7) != chess.NoPiece {
		t.Errorf("a7 still occupied after promotion")
	}
	if got.HalfmoveClock != 0 {
		t.Errorf("halfmove clock = %d after pawn move, want 0", got.HalfmoveClock)
	}
}

func TestApplyCastlingRightsNeverReturn(t *testing.T) {
	// Moving the rook out and back does not restore the right.
	pos := mustPosition(t, "4k3/8/8/8/8/8/8/4K2R w K - 0 1")

	pos = engine.Apply(pos, findMove(t, pos, "h1", "h3"))
	if pos.Castling != chess.NoCastlingRights {
		t.Fatalf("castling = %v after rook move, want none", pos.Castling)
	}
	pos = engine.Apply(pos, findMove(t, pos, "e8", "d8"))
	pos = engine.Apply(pos, findMove(t, pos, "h3", "h1"))
	if pos.Castling != chess.NoCastlingRights {
		t.Errorf("castling = %v after rook returned, want none", pos.Castling)
	}
}

func TestApplyRookCaptureRevokesRight(t *testing.T) {
	// Losing the rook on its home square also loses the right.
	pos := mustPosition(t, "4k3/8/8/8/8/8/6b1/4K2R b K - 0 1")

	next := engine.Apply(pos, findMove(t, pos, "g2", "h1"))
	if next.Castling != chess.NoCastlingRights {
		t.Errorf("castling = %v after rook captured, want none", next.Castling)
	}
}

func TestApplyClocks(t *testing.T) {
	pos := chess.StartingPosition()

	pos = engine.Apply(pos, findMove(t, pos, "g1", "f3"))
	if pos.HalfmoveClock != 1 {
		t.Errorf("halfmove clock = %d after 1.Nf3, want 1", pos.HalfmoveClock)
	}
	if pos.FullmoveNumber != 1 {
		t.Errorf("fullmove number = %d after 1.Nf3, want 1", pos.FullmoveNumber)
	}
	if pos.Turn != chess.Black {
		t.Errorf("turn = %v after 1.Nf3, want Black", pos.Turn)
	}

	pos = engine.Apply(pos, findMove(t, pos, "b8", "c6"))
	if pos.HalfmoveClock != 2 {
		t.Errorf("halfmove clock = %d after 1...Nc6, want 2", pos.HalfmoveClock)
	}
	if pos.FullmoveNumber != 2 {
		t.Errorf("fullmove number = %d after 1...Nc6, want 2", pos.FullmoveNumber)
	}

	pos = engine.Apply(pos, findMove(t, pos, "e2", "e4"))
	if pos.HalfmoveClock != 0 {
		t.Errorf("halfmove clock = %d after pawn push, want 0", pos.HalfmoveClock)
	}
	ep, _ := chess.ParseSquare("e3")
	if pos.EnPassant != ep {
		t.Errorf("en passant target = %v after 2.e4, want e3", pos.EnPassant)
	}

	pos = engine.Apply(pos, findMove(t, pos, "g8", "f6"))
	if pos.EnPassant != chess.NoSquare {
		t.Errorf("en passant target = %v persisted past one ply", pos.EnPassant)
	}
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	pos := chess.StartingPosition()
	before := pos

	engine.Apply(pos, findMove(t, pos, "e2", "e4"))
	if diff := cmp.Diff(before, pos); diff != "" {
		t.Errorf("Apply mutated its input (-want +got):\n%s", diff)
	}
	if got := notation.EncodeFEN(pos); got != notation.InitialFEN {
		t.Errorf("input position FEN = %q, want initial", got)
	}
}
