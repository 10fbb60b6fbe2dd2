package engine

import "github.com/lgbarn/chess-engine-go/internal/chess"

// IsCheckmate reports whether the side to move is checkmated.
func IsCheckmate(pos chess.Position) bool {
	return InCheck(pos, pos.Turn) && len(LegalMoves(pos)) == 0
}

// IsStalemate reports whether the side to move is stalemated.
func IsStalemate(pos chess.Position) bool {
	return !InCheck(pos, pos.Turn) && len(LegalMoves(pos)) == 0
}

// InsufficientMaterial reports whether neither side can force mate
// under any legal continuation. The recognized configurations are
// K vs K, K+minor vs K, and K+B vs K+B with both bishops on the same
// colour complex. Anything else, including any pawn on the board,
// counts as sufficient material.
func InsufficientMaterial(pos chess.Position) bool {
	var whiteMinors, blackMinors []chess.PieceKind
	var whiteBishopLight, blackBishopLight bool

	for sq := chess.Square(0); sq < 64; sq++ {
		piece := pos.Board[sq]
		if piece == chess.NoPiece {
			continue
		}
		kind := piece.Kind()
		if kind == chess.King {
			continue
		}
		if kind == chess.Pawn || kind == chess.Rook || kind == chess.Queen {
			return false
		}
		if piece.Color() == chess.White {
			whiteMinors = append(whiteMinors, kind)
			if kind == chess.Bishop {
				whiteBishopLight = isLightSquare(sq)
			}
		} else {
			blackMinors = append(blackMinors, kind)
			if kind == chess.Bishop {
				blackBishopLight = isLightSquare(sq)
			}
		}
	}

	// K vs K.
	if len(whiteMinors) == 0 && len(blackMinors) == 0 {
		return true
	}

	// K+B vs K or K+N vs K.
	if len(whiteMinors) == 0 && len(blackMinors) == 1 {
		return true
	}
	if len(blackMinors) == 0 && len(whiteMinors) == 1 {
		return true
	}

	// K+B vs K+B with both bishops on the same colour complex.
	if len(whiteMinors) == 1 && len(blackMinors) == 1 &&
		whiteMinors[0] == chess.Bishop && blackMinors[0] == chess.Bishop &&
		whiteBishopLight == blackBishopLight {
		return true
	}

	return false
}

// isLightSquare reports whether the given square is a light square.
func isLightSquare(sq chess.Square) bool {
	return (int(sq.File())+int(sq.Rank()))%2 == 1
}
