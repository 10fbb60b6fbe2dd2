// Package notation translates between the engine's types and their
// textual forms: FEN for positions, SAN and simplified start-target
// strings for moves.
package notation

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// EncodeFEN converts a position to its six-field FEN string.
func EncodeFEN(pos chess.Position) string {
	var sb strings.Builder

	writePlacement(&sb, pos)
	sb.WriteByte(' ')
	if pos.Turn == chess.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
	sb.WriteByte(' ')
	sb.WriteString(pos.Castling.String())
	sb.WriteByte(' ')
	sb.WriteString(pos.EnPassant.String())
	sb.WriteByte(' ')
	fmt.Fprintf(&sb, "%d %d", pos.HalfmoveClock, pos.FullmoveNumber)

	return sb.String()
}

// writePlacement writes the piece placement field, rank 8 down to
// rank 1, with digits for runs of empty squares.
func writePlacement(sb *strings.Builder, pos chess.Position) {
	for r := chess.Rank(7); r >= 0; r-- {
		empty := 0
		for f := chess.File(0); f < 8; f++ {
			piece := pos.Board[chess.NewSquare(f, r)]
			if piece == chess.NoPiece {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			sb.WriteByte(piece.Letter())
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
		if r > 0 {
			sb.WriteByte('/')
		}
	}
}

// DecodeFEN parses a six-field FEN string into a position. Errors
// wrap errors.ErrInvalidFEN and carry the failing field.
func DecodeFEN(fen string) (chess.Position, error) {
	fields := strings.Fields(fen)
	if len(fields) != 6 {
		return chess.Position{}, fenError(fen, "field count",
			fmt.Sprintf("expected 6 space-separated fields, got %d", len(fields)))
	}

	pos := chess.Position{EnPassant: chess.NoSquare}

	if err := parsePlacement(&pos, fen, fields[0]); err != nil {
		return chess.Position{}, err
	}

	switch fields[1] {
	case "w":
		pos.Turn = chess.White
	case "b":
		pos.Turn = chess.Black
	default:
		return chess.Position{}, fenError(fen, "side to move",
			fmt.Sprintf("want \"w\" or \"b\", got %q", fields[1]))
	}

	rights, err := parseCastlingRights(fen, fields[2])
	if err != nil {
		return chess.Position{}, err
	}
	pos.Castling = rights

	if fields[3] != "-" {
		sq, ok := chess.ParseSquare(fields[3])
		if !ok || (sq.Rank() != 2 && sq.Rank() != 5) {
			return chess.Position{}, fenError(fen, "en passant target",
				fmt.Sprintf("not a valid target square: %q", fields[3]))
		}
		pos.EnPassant = sq
	}

	halfmove, err := strconv.Atoi(fields[4])
	if err != nil || halfmove < 0 {
		return chess.Position{}, fenError(fen, "halfmove clock",
			fmt.Sprintf("not a non-negative number: %q", fields[4]))
	}
	pos.HalfmoveClock = halfmove

	fullmove, err := strconv.Atoi(fields[5])
	if err != nil || fullmove < 1 {
		return chess.Position{}, fenError(fen, "fullmove number",
			fmt.Sprintf("not a positive number: %q", fields[5]))
	}
	pos.FullmoveNumber = fullmove

	return pos, nil
}

// parsePlacement parses the piece placement field and checks that
// every rank spans exactly eight files and that each side has exactly
// one king.
func parsePlacement(pos *chess.Position, fen, placement string) error {
	ranks := strings.Split(placement, "/")
	if len(ranks) != 8 {
		return fenError(fen, "placement",
			fmt.Sprintf("expected 8 ranks, got %d", len(ranks)))
	}

	var whiteKings, blackKings int
	for i, rankStr := range ranks {
		r := chess.Rank(7 - i)
		f := chess.File(0)
		for j := 0; j < len(rankStr); j++ {
			c := rankStr[j]
			if c >= '1' && c <= '8' {
				f += chess.File(c - '0')
				continue
			}
			piece := chess.PieceFromLetter(c)
			if piece == chess.NoPiece {
				return fenError(fen, "placement",
					fmt.Sprintf("invalid piece character %q", string(c)))
			}
			if f > 7 {
				return fenError(fen, "placement",
					fmt.Sprintf("rank %d overflows the board", 8-i))
			}
			pos.Board[chess.NewSquare(f, r)] = piece
			if piece.Kind() == chess.King {
				if piece.Color() == chess.White {
					whiteKings++
				} else {
					blackKings++
				}
			}
			f++
		}
		if f != 8 {
			return fenError(fen, "placement",
				fmt.Sprintf("rank %d spans %d files, want 8", 8-i, f))
		}
	}

	if whiteKings != 1 || blackKings != 1 {
		return fenError(fen, "placement",
			fmt.Sprintf("want exactly one king per side, got %d white and %d black",
				whiteKings, blackKings))
	}
	return nil
}

// parseCastlingRights parses the castling availability field.
func parseCastlingRights(fen, field string) (chess.CastlingRights, error) {
	if field == "-" {
		return chess.NoCastlingRights, nil
	}
	rights := chess.NoCastlingRights
	for i := 0; i < len(field); i++ {
		switch field[i] {
		case 'K':
			rights |= chess.WhiteKingside
		case 'Q':
			rights |= chess.WhiteQueenside
		case 'k':
			rights |= chess.BlackKingside
		case 'q':
			rights |= chess.BlackQueenside
		default:
			return chess.NoCastlingRights, fenError(fen, "castling rights",
				fmt.Sprintf("invalid character %q", string(field[i])))
		}
	}
	return rights, nil
}

func fenError(fen, field, msg string) error {
	return &errors.FENError{
		Err:   errors.Wrap(errors.ErrInvalidFEN, msg),
		FEN:   fen,
		Field: field,
	}
}
