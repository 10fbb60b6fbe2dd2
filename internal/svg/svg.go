// Package svg renders a position as an SVG board diagram. The engine
// only produces the markup; embedding or saving it is the caller's
// business, the same contract as the FEN and SAN strings.
package svg

import (
	"io"

	svg "github.com/ajstarks/svgo"

	"github.com/lgbarn/chess-engine-go/internal/chess"
)

const squareSize = 60

var glyphs = map[chess.Piece]string{
	chess.NewPiece(chess.White, chess.King):   "♔",
	chess.NewPiece(chess.White, chess.Queen):  "♕",
	chess.NewPiece(chess.White, chess.Rook):   "♖",
	chess.NewPiece(chess.White, chess.Bishop): "♗",
	chess.NewPiece(chess.White, chess.Knight): "♘",
	chess.NewPiece(chess.White, chess.Pawn):   "♙",
	chess.NewPiece(chess.Black, chess.King):   "♚",
	chess.NewPiece(chess.Black, chess.Queen):  "♛",
	chess.NewPiece(chess.Black, chess.Rook):   "♜",
	chess.NewPiece(chess.Black, chess.Bishop): "♝",
	chess.NewPiece(chess.Black, chess.Knight): "♞",
	chess.NewPiece(chess.Black, chess.Pawn):   "♟",
}

// Write draws pos as an 8x8 SVG diagram from white's perspective.
func Write(w io.Writer, pos chess.Position) {
	canvas := svg.New(w)
	canvas.Start(8*squareSize, 8*squareSize)

	for r := chess.Rank(0); r < 8; r++ {
		for f := chess.File(0); f < 8; f++ {
			x := int(f) * squareSize
			y := int(7-r) * squareSize

			fill := "fill:#b58863" // dark square
			if (int(f)+int(r))%2 == 1 {
				fill = "fill:#f0d9b5"
			}
			canvas.Rect(x, y, squareSize, squareSize, fill)

			piece := pos.Board[chess.NewSquare(f, r)]
			if piece == chess.NoPiece {
				continue
			}
			canvas.Text(x+squareSize/2, y+squareSize*3/4, glyphs[piece],
				"text-anchor:middle;font-size:44px")
		}
	}

	canvas.End()
}
