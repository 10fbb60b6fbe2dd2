package game

import (
	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/engine"
	"github.com/lgbarn/chess-engine-go/internal/errors"
	"github.com/lgbarn/chess-engine-go/internal/hashing"
	"github.com/lgbarn/chess-engine-go/internal/notation"
)

// halfmoveClockLimit is the fifty-move-rule threshold: one hundred
// half-moves without a pawn move or capture.
const halfmoveClockLimit = 100

// repetitionLimit is the threefold-repetition threshold.
const repetitionLimit = 3

// Session is one chess game: the current position, the append-only
// history of every position reached (the initial one included) and
// every move applied, plus the terminal classification. A Session is
// not safe for concurrent use; serializing callers is the front end's
// job.
type Session struct {
	positions []chess.Position
	moves     []chess.Move
	sans      []string
	reps      *hashing.RepetitionTracker
	status    Status
	method    Method
}

// NewSession starts a game from the standard starting position.
func NewSession() *Session {
	s := &Session{reps: hashing.NewRepetitionTracker()}
	s.start(chess.StartingPosition())
	return s
}

// NewSessionFromFEN resumes a game from a serialized position. The
// FEN becomes the session's initial position, so it cannot be undone
// past. The position is classified immediately; a FEN describing a
// finished game yields a session already in a terminal state.
func NewSessionFromFEN(fen string) (*Session, error) {
	pos, err := notation.DecodeFEN(fen)
	if err != nil {
		return nil, err
	}
	s := &Session{reps: hashing.NewRepetitionTracker()}
	s.start(pos)
	return s, nil
}

func (s *Session) start(pos chess.Position) {
	s.positions = s.positions[:0]
	s.moves = s.moves[:0]
	s.sans = s.sans[:0]
	s.reps.Reset()

	s.positions = append(s.positions, pos)
	s.reps.Push(pos)
	s.classify()
}

// Position returns the current position snapshot.
func (s *Session) Position() chess.Position {
	return s.positions[len(s.positions)-1]
}

// FEN returns the current position in FEN, the persisted-state format.
func (s *Session) FEN() string {
	return notation.EncodeFEN(s.Position())
}

// Status returns the session state.
func (s *Session) Status() Status {
	return s.status
}

// Method returns the rule that ended the game, or NoMethod while it
// is in progress.
func (s *Session) Method() Method {
	return s.method
}

// Moves returns the SAN transcript of the applied moves, suitable for
// a move-list display.
func (s *Session) Moves() []string {
	return append([]string(nil), s.sans...)
}

// FENHistory returns every position reached so far as FEN strings,
// initial position first. Front ends that own persistence can store
// this to support undo after a reload.
func (s *Session) FENHistory() []string {
	fens := make([]string, len(s.positions))
	for i, pos := range s.positions {
		fens[i] = notation.EncodeFEN(pos)
	}
	return fens
}

// LegalMoves returns the legal moves in the current position.
func (s *Session) LegalMoves() []chess.Move {
	return engine.LegalMoves(s.Position())
}

// ApplyMove decodes the move text (either notation grammar), checks
// it against the legal moves of the current position, applies it, and
// classifies the resulting position. It returns the SAN rendering of
// the applied move. A rejected call leaves the session untouched.
func (s *Session) ApplyMove(text string) (string, error) {
	if s.status != InProgress {
		return "", &errors.MoveError{Err: errors.ErrGameOver, Input: text, FEN: s.FEN()}
	}

	pos := s.Position()
	move, err := notation.DecodeMove(pos, text)
	if err != nil {
		return "", err
	}

	san := notation.EncodeSAN(pos, move)
	next := engine.Apply(pos, move)

	s.positions = append(s.positions, next)
	s.moves = append(s.moves, move)
	s.sans = append(s.sans, san)
	s.reps.Push(next)
	s.classify()

	return san, nil
}

// Undo pops the last move and position and returns the session to
// InProgress, even from a terminal state. It fails only when the
// history holds nothing but the initial position.
func (s *Session) Undo() error {
	if len(s.positions) == 1 {
		return errors.ErrNothingToUndo
	}
	s.positions = s.positions[:len(s.positions)-1]
	s.moves = s.moves[:len(s.moves)-1]
	s.sans = s.sans[:len(s.sans)-1]
	s.reps.Pop()
	s.status = InProgress
	s.method = NoMethod
	return nil
}

// Reset discards the history and restarts from the standard starting
// position.
func (s *Session) Reset() {
	s.start(chess.StartingPosition())
}

// classify runs the termination policy on the current position, in
// order: checkmate/stalemate, fifty-move rule, threefold repetition,
// insufficient material. Mate and stalemate outrank the numeric draw
// rules even when the halfmove clock has also crossed the limit on
// the same move.
func (s *Session) classify() {
	pos := s.Position()

	if len(engine.LegalMoves(pos)) == 0 {
		if engine.InCheck(pos, pos.Turn) {
			s.method = Checkmate
			if pos.Turn == chess.White {
				s.status = BlackWon
			} else {
				s.status = WhiteWon
			}
		} else {
			s.status = Drawn
			s.method = Stalemate
		}
		return
	}

	switch {
	case pos.HalfmoveClock >= halfmoveClockLimit:
		s.status = Drawn
		s.method = FiftyMoveRule
	case s.reps.Count(pos) >= repetitionLimit:
		s.status = Drawn
		s.method = ThreefoldRepetition
	case engine.InsufficientMaterial(pos):
		s.status = Drawn
		s.method = InsufficientMaterial
	default:
		s.status = InProgress
		s.method = NoMethod
	}
}
