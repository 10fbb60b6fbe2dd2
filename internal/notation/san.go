package notation

import (
	"regexp"
	"strings"

	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/engine"
	"github.com/lgbarn/chess-engine-go/internal/errors"
)

// The two accepted move grammars. The start-target form is piece
// agnostic ("e2-e4", "e2e4", "e7xd8=Q"); the algebraic form carries
// piece letter, optional disambiguation, capture marker, destination,
// and promotion ("Nf3", "exd5", "Rae1", "e8=Q").
var (
	startTargetRegex = regexp.MustCompile(`^([a-h][1-8])\s*[x-]?\s*([a-h][1-8])\s*=?\s*([QRBNqrbn])?$`)
	algebraicRegex   = regexp.MustCompile(`^([KQRBN])?([a-h])?([1-8])?\s*(x)?\s*([a-h][1-8])\s*=?\s*([QRBN])?$`)
	castleRegex      = regexp.MustCompile(`^[O0]-[O0](-[O0])?$`)
)

// EncodeSAN renders a legal move from pos in standard algebraic
// notation, with only as much disambiguation as the position needs
// and the check/mate suffix computed from the resulting position.
func EncodeSAN(pos chess.Position, m chess.Move) string {
	var sb strings.Builder

	switch m.Class {
	case chess.KingsideCastle:
		sb.WriteString("O-O")
	case chess.QueensideCastle:
		sb.WriteString("O-O-O")
	default:
		if m.Piece == chess.Pawn {
			if m.IsCapture() {
				sb.WriteByte(byte('a' + m.From.File()))
				sb.WriteByte('x')
			}
		} else {
			sb.WriteByte(m.Piece.Letter())
			sb.WriteString(disambiguation(pos, m))
			if m.IsCapture() {
				sb.WriteByte('x')
			}
		}
		sb.WriteString(m.To.String())
		if m.IsPromotion() {
			sb.WriteByte('=')
			sb.WriteByte(m.Promotion.Letter())
		}
	}

	next := engine.Apply(pos, m)
	if engine.InCheck(next, next.Turn) {
		if len(engine.LegalMoves(next)) == 0 {
			sb.WriteByte('#')
		} else {
			sb.WriteByte('+')
		}
	}
	return sb.String()
}

// disambiguation returns the minimal origin qualifier for m: nothing
// when no other same-kind piece can legally reach the destination,
// otherwise the file, then the rank, then both.
func disambiguation(pos chess.Position, m chess.Move) string {
	var others, sameFile, sameRank bool
	for _, other := range engine.LegalMoves(pos) {
		if other.Piece != m.Piece || other.To != m.To || other.From == m.From {
			continue
		}
		others = true
		if other.From.File() == m.From.File() {
			sameFile = true
		}
		if other.From.Rank() == m.From.Rank() {
			sameRank = true
		}
	}
	switch {
	case !others:
		return ""
	case !sameFile:
		return string([]byte{byte('a' + m.From.File())})
	case !sameRank:
		return string([]byte{byte('1' + m.From.Rank())})
	default:
		return m.From.String()
	}
}

// DecodeMove parses move text against the current position. Both
// grammars are accepted on the same call. The parsed constraints are
// matched against LegalMoves(pos): no match yields ErrIllegalMove,
// several yield ErrAmbiguousMove, and text fitting neither grammar
// yields ErrParse. The returned move is always legal in pos.
func DecodeMove(pos chess.Position, input string) (chess.Move, error) {
	text := strings.TrimSpace(input)
	text = strings.TrimRight(text, "+#")

	legal := engine.LegalMoves(pos)
	var matches []chess.Move

	switch {
	case castleRegex.MatchString(text):
		class := chess.KingsideCastle
		if len(text) > 3 {
			class = chess.QueensideCastle
		}
		for _, m := range legal {
			if m.Class == class {
				matches = append(matches, m)
			}
		}

	case startTargetRegex.MatchString(text):
		groups := startTargetRegex.FindStringSubmatch(text)
		from, _ := chess.ParseSquare(groups[1])
		to, _ := chess.ParseSquare(groups[2])
		var promo byte
		if groups[3] != "" {
			promo = groups[3][0]
		}
		for _, m := range legal {
			if m.From == from && m.To == to && promotionMatches(m.Promotion, promo) {
				matches = append(matches, m)
			}
		}

	case algebraicRegex.MatchString(text):
		groups := algebraicRegex.FindStringSubmatch(text)
		kind := chess.Pawn
		if groups[1] != "" {
			kind = chess.KindFromLetter(groups[1][0])
		}
		fromFile := chess.File(-1)
		if groups[2] != "" {
			fromFile = chess.File(groups[2][0] - 'a')
		}
		fromRank := chess.Rank(-1)
		if groups[3] != "" {
			fromRank = chess.Rank(groups[3][0] - '1')
		}
		capture := groups[4] != ""
		to, _ := chess.ParseSquare(groups[5])
		var promo byte
		if groups[6] != "" {
			promo = groups[6][0]
		}
		// A bare pawn destination ("e4") names a push on that file;
		// pawn captures spell out the origin file ("exd5").
		if kind == chess.Pawn && fromFile < 0 {
			fromFile = to.File()
		}
		for _, m := range legal {
			if m.Piece != kind || m.To != to {
				continue
			}
			// Castling must be written O-O / O-O-O, not as a king move.
			if m.Class == chess.KingsideCastle || m.Class == chess.QueensideCastle {
				continue
			}
			if fromFile >= 0 && m.From.File() != fromFile {
				continue
			}
			if fromRank >= 0 && m.From.Rank() != fromRank {
				continue
			}
			if capture && !m.IsCapture() {
				continue
			}
			if !promotionMatches(m.Promotion, promo) {
				continue
			}
			matches = append(matches, m)
		}

	default:
		return chess.Move{}, &errors.MoveError{
			Err: errors.ErrParse, Input: input, FEN: EncodeFEN(pos),
		}
	}

	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		return chess.Move{}, &errors.MoveError{
			Err: errors.ErrIllegalMove, Input: input, FEN: EncodeFEN(pos),
		}
	default:
		return chess.Move{}, &errors.MoveError{
			Err: errors.ErrAmbiguousMove, Input: input, FEN: EncodeFEN(pos),
		}
	}
}

// promotionMatches checks a move's promotion against the stated
// promotion letter. When the letter is absent, a promotion move only
// matches as a queen promotion, so "e7-e8" promotes to a queen rather
// than reading as ambiguous.
func promotionMatches(promotion chess.PieceKind, letter byte) bool {
	if letter == 0 {
		return promotion == chess.NoPieceKind || promotion == chess.Queen
	}
	return promotion == chess.KindFromLetter(letter)
}
