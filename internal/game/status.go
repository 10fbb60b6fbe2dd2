// Package game ties the engine together into a playable session: it
// owns the position history, applies validated moves, supports undo,
// and classifies the game after every half-move.
package game

// Status is the session state.
type Status int

const (
	// InProgress is the only state that accepts further moves.
	InProgress Status = iota
	// WhiteWon indicates black has been checkmated.
	WhiteWon
	// BlackWon indicates white has been checkmated.
	BlackWon
	// Drawn indicates the game ended in a draw; Method says why.
	Drawn
)

// String returns the string representation of a status.
func (s Status) String() string {
	switch s {
	case InProgress:
		return "in progress"
	case WhiteWon:
		return "white won"
	case BlackWon:
		return "black won"
	case Drawn:
		return "drawn"
	}
	return "unknown"
}

// Method is the rule that produced a terminal status.
type Method int

const (
	// NoMethod indicates the game has not ended.
	NoMethod Method = iota
	// Checkmate indicates the side to move had no legal moves while
	// in check.
	Checkmate
	// Stalemate indicates the side to move had no legal moves while
	// not in check.
	Stalemate
	// FiftyMoveRule indicates one hundred half-moves passed without a
	// pawn move or capture.
	FiftyMoveRule
	// ThreefoldRepetition indicates the same position occurred three
	// times.
	ThreefoldRepetition
	// InsufficientMaterial indicates neither side can force mate.
	InsufficientMaterial
)

// String returns the string representation of a method.
func (m Method) String() string {
	switch m {
	case NoMethod:
		return "none"
	case Checkmate:
		return "checkmate"
	case Stalemate:
		return "stalemate"
	case FiftyMoveRule:
		return "fifty-move rule"
	case ThreefoldRepetition:
		return "threefold repetition"
	case InsufficientMaterial:
		return "insufficient material"
	}
	return "unknown"
}
