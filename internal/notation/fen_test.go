package notation

import (
	stderrors "errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/errors"
)

func TestFENRoundTrip(t *testing.T) {
	fens := []string{
		InitialFEN,
		"rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
		"r1bqkbnr/ppp1pppp/2n5/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 3",
		"r3k2r/8/8/8/8/8/8/R4RK1 b kq - 1 1",
		"8/8/4k3/8/8/4K3/8/8 w - - 42 61",
		"4k3/P7/8/8/8/8/8/4K3 w - - 0 1",
	}

	for _, fen := range fens {
		pos, err := DecodeFEN(fen)
		if err != nil {
			t.Errorf("DecodeFEN(%q) error = %v", fen, err)
			continue
		}
		if got := EncodeFEN(pos); got != fen {
			t.Errorf("EncodeFEN(DecodeFEN(%q)) = %q", fen, got)
		}
	}
}

func TestDecodeFENFields(t *testing.T) {
	pos, err := DecodeFEN("rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1")
	if err != nil {
		t.Fatalf("DecodeFEN() error = %v", err)
	}

	if pos.Turn != chess.Black {
		t.Errorf("Turn = %v, want Black", pos.Turn)
	}
	if pos.Castling != chess.AllCastlingRights {
		t.Errorf("Castling = %v, want KQkq", pos.Castling)
	}
	ep, _ := chess.ParseSquare("e3")
	if pos.EnPassant != ep {
		t.Errorf("EnPassant = %v, want e3", pos.EnPassant)
	}
	if pos.HalfmoveClock != 0 || pos.FullmoveNumber != 1 {
		t.Errorf("clocks = %d/%d, want 0/1", pos.HalfmoveClock, pos.FullmoveNumber)
	}
	e4, _ := chess.ParseSquare("e4")
	if pos.Piece(e4) != chess.NewPiece(chess.White, chess.Pawn) {
		t.Errorf("Piece(e4) = %v, want white pawn", pos.Piece(e4))
	}
}

func TestDecodeFENMatchesStartingPosition(t *testing.T) {
	pos, err := DecodeFEN(InitialFEN)
	if err != nil {
		t.Fatalf("DecodeFEN(InitialFEN) error = %v", err)
	}
	if diff := cmp.Diff(chess.StartingPosition(), pos); diff != "" {
		t.Errorf("decoded start position mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeFENErrors(t *testing.T) {
	tests := []struct {
		name string
		fen  string
	}{
		{name: "empty", fen: ""},
		{name: "five fields", fen: "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq -"},
		{name: "seven fields", fen: InitialFEN + " extra"},
		{name: "seven ranks", fen: "rnbqkbnr/pppppppp/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"},
		{name: "bad piece letter", fen: "rnbqkbnr/pppppppp/8/8/8/8/PPPPPXPP/RNBQKBNR w KQkq - 0 1"},
		{name: "rank too wide", fen: "rnbqkbnr/ppppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"},
		{name: "rank too narrow", fen: "rnbqkbnr/ppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"},
		{name: "two white kings", fen: "rnbqkbnr/pppppppp/8/8/8/4K3/PPPPPPPP/RNBQKBNR w KQkq - 0 1"},
		{name: "no black king", fen: "rnbq1bnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"},
		{name: "bad side to move", fen: "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR x KQkq - 0 1"},
		{name: "bad castling letter", fen: "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KX - 0 1"},
		{name: "en passant on wrong rank", fen: "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq e4 0 1"},
		{name: "en passant not a square", fen: "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq ee 0 1"},
		{name: "negative halfmove clock", fen: "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - -1 1"},
		{name: "zero fullmove number", fen: "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeFEN(tt.fen)
			if err == nil {
				t.Fatalf("DecodeFEN(%q) succeeded, want error", tt.fen)
			}
			if !stderrors.Is(err, errors.ErrInvalidFEN) {
				t.Errorf("error %v does not wrap ErrInvalidFEN", err)
			}
			var fenErr *errors.FENError
			if !stderrors.As(err, &fenErr) {
				t.Errorf("error %v is not a *FENError", err)
			} else if fenErr.FEN != tt.fen {
				t.Errorf("FENError.FEN = %q, want %q", fenErr.FEN, tt.fen)
			}
		})
	}
}
