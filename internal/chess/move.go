package chess

// MoveClass categorizes the special-rule moves that need extra
// handling when applied to a position.
type MoveClass int8

const (
	Normal MoveClass = iota
	DoublePawnPush
	EnPassantCapture
	KingsideCastle
	QueensideCastle
)

// Move describes one half-move. A Move is only a candidate until it
// has been checked against the legal moves of the position it is to
// be played from; validated moves are the only ones ever applied.
type Move struct {
	// Source and destination squares. For castling moves these are
	// the king's squares.
	From Square
	To   Square

	// The kind of piece being moved.
	Piece PieceKind

	// The kind of piece captured, or NoPieceKind. En passant captures
	// record Pawn here even though the destination square is empty.
	Captured PieceKind

	// The kind promoted to, or NoPieceKind.
	Promotion PieceKind

	// Special-rule classification.
	Class MoveClass
}

// IsCapture reports whether the move captures a piece.
func (m Move) IsCapture() bool {
	return m.Captured != NoPieceKind
}

// IsPromotion reports whether the move promotes a pawn.
func (m Move) IsPromotion() bool {
	return m.Promotion != NoPieceKind
}

// String returns the move in start-target form, e.g. "e2-e4" or
// "e7-e8=Q". This is the simplified notation; SAN encoding lives in
// the notation package because it needs the source position.
func (m Move) String() string {
	s := m.From.String() + "-" + m.To.String()
	if m.IsPromotion() {
		s += "=" + string(m.Promotion.Letter())
	}
	return s
}
