// Package chess provides the core chess data model: colours, pieces,
// squares, moves, and snapshot board positions.
package chess

// Color represents the colour of a piece or player.
type Color int8

const (
	White Color = iota
	Black
)

// String returns the string representation of a colour.
func (c Color) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Other returns the opposite colour.
func (c Color) Other() Color {
	if c == White {
		return Black
	}
	return White
}

// PieceKind represents a chess piece type without colour.
type PieceKind int8

const (
	NoPieceKind PieceKind = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// String returns the string representation of a piece kind.
func (k PieceKind) String() string {
	names := []string{"None", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// Letter returns the uppercase SAN letter for a piece kind.
// Pawns use 'P' as in FEN piece placement.
func (k PieceKind) Letter() byte {
	letters := []byte{' ', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if int(k) < len(letters) {
		return letters[k]
	}
	return '?'
}

// KindFromLetter converts a SAN/FEN piece letter (either case) to a
// piece kind. Unknown letters map to NoPieceKind.
func KindFromLetter(c byte) PieceKind {
	switch c {
	case 'P', 'p':
		return Pawn
	case 'N', 'n':
		return Knight
	case 'B', 'b':
		return Bishop
	case 'R', 'r':
		return Rook
	case 'Q', 'q':
		return Queen
	case 'K', 'k':
		return King
	default:
		return NoPieceKind
	}
}

// Piece packs a colour and a piece kind into a single value.
// The zero value NoPiece marks an empty square.
type Piece int8

// NoPiece is the empty-square value.
const NoPiece Piece = 0

const pieceKindShift = 1

// NewPiece creates a coloured piece value.
func NewPiece(c Color, k PieceKind) Piece {
	if k == NoPieceKind {
		return NoPiece
	}
	return Piece(int8(k)<<pieceKindShift | int8(c))
}

// Color extracts the colour from a piece. Meaningless for NoPiece.
func (p Piece) Color() Color {
	return Color(p & 0x01)
}

// Kind extracts the piece kind from a piece.
func (p Piece) Kind() PieceKind {
	return PieceKind(p >> pieceKindShift)
}

// Letter returns the FEN letter for the piece: uppercase for white,
// lowercase for black, '.' for an empty square.
func (p Piece) Letter() byte {
	if p == NoPiece {
		return '.'
	}
	letter := p.Kind().Letter()
	if p.Color() == Black {
		letter += 'a' - 'A'
	}
	return letter
}

// PieceFromLetter converts a FEN piece letter to a coloured piece.
// Uppercase letters are white, lowercase black. Unknown letters map
// to NoPiece.
func PieceFromLetter(c byte) Piece {
	kind := KindFromLetter(c)
	if kind == NoPieceKind {
		return NoPiece
	}
	colour := White
	if c >= 'a' && c <= 'z' {
		colour = Black
	}
	return NewPiece(colour, kind)
}

// String returns e.g. "White Knight".
func (p Piece) String() string {
	if p == NoPiece {
		return "None"
	}
	return p.Color().String() + " " + p.Kind().String()
}

// File is a board file, 0 ('a') through 7 ('h').
type File int8

// Rank is a board rank, 0 (rank 1) through 7 (rank 8).
type Rank int8

// Square addresses one of the 64 board squares as rank*8+file,
// with a1 = 0 and h8 = 63. Off-board addressing uses the distinct
// NoSquare value; a valid Square is always in range.
type Square int8

// NoSquare is the "no square" value used for absent en passant
// targets and failed lookups.
const NoSquare Square = -1

// NewSquare builds a square from file and rank coordinates.
func NewSquare(f File, r Rank) Square {
	return Square(int8(r)*8 + int8(f))
}

// File returns the square's file.
func (s Square) File() File {
	return File(s % 8)
}

// Rank returns the square's rank.
func (s Square) Rank() Rank {
	return Rank(s / 8)
}

// Valid reports whether the square addresses a real board square.
func (s Square) Valid() bool {
	return s >= 0 && s < 64
}

// String returns the algebraic name of the square, e.g. "e4",
// or "-" for NoSquare.
func (s Square) String() string {
	if !s.Valid() {
		return "-"
	}
	return string([]byte{byte('a' + s.File()), byte('1' + s.Rank())})
}

// ParseSquare parses an algebraic square name such as "e4".
// It returns NoSquare and false for anything else.
func ParseSquare(s string) (Square, bool) {
	if len(s) != 2 || s[0] < 'a' || s[0] > 'h' || s[1] < '1' || s[1] > '8' {
		return NoSquare, false
	}
	return NewSquare(File(s[0]-'a'), Rank(s[1]-'1')), true
}

// CastlingRights is a bit set of the four independent castling rights.
type CastlingRights uint8

const (
	WhiteKingside CastlingRights = 1 << iota
	WhiteQueenside
	BlackKingside
	BlackQueenside
)

const (
	// NoCastlingRights is the empty set.
	NoCastlingRights CastlingRights = 0

	// AllCastlingRights is the full set held at the standard start.
	AllCastlingRights = WhiteKingside | WhiteQueenside | BlackKingside | BlackQueenside
)

// Has reports whether every right in r2 is present in r.
func (r CastlingRights) Has(r2 CastlingRights) bool {
	return r&r2 == r2
}

// Without returns r with the rights in r2 removed. Rights only ever
// shrink over the course of a game; they are never re-granted.
func (r CastlingRights) Without(r2 CastlingRights) CastlingRights {
	return r &^ r2
}

// String returns the FEN castling field, e.g. "KQkq" or "-".
func (r CastlingRights) String() string {
	if r == NoCastlingRights {
		return "-"
	}
	var buf []byte
	if r.Has(WhiteKingside) {
		buf = append(buf, 'K')
	}
	if r.Has(WhiteQueenside) {
		buf = append(buf, 'Q')
	}
	if r.Has(BlackKingside) {
		buf = append(buf, 'k')
	}
	if r.Has(BlackQueenside) {
		buf = append(buf, 'q')
	}
	return string(buf)
}
