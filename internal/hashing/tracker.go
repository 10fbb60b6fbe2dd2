package hashing

import "github.com/lgbarn/chess-engine-go/internal/chess"

type trackerEntry struct {
	hash  uint64
	tuple string
}

// RepetitionTracker counts how often each position signature has
// occurred in a game history. Push and Pop mirror the session's
// apply/undo so the counts always cover exactly the positions in the
// history, initial position included.
type RepetitionTracker struct {
	stack  []trackerEntry
	counts map[uint64]int
}

// NewRepetitionTracker creates an empty tracker.
func NewRepetitionTracker() *RepetitionTracker {
	return &RepetitionTracker{
		counts: make(map[uint64]int),
	}
}

// Push records one occurrence of the position.
func (t *RepetitionTracker) Push(pos chess.Position) {
	entry := trackerEntry{hash: Signature(pos), tuple: tupleKey(pos)}
	t.stack = append(t.stack, entry)
	t.counts[entry.hash]++
}

// Pop removes the most recently pushed position.
func (t *RepetitionTracker) Pop() {
	if len(t.stack) == 0 {
		return
	}
	last := t.stack[len(t.stack)-1]
	t.stack = t.stack[:len(t.stack)-1]
	if t.counts[last.hash] <= 1 {
		delete(t.counts, last.hash)
	} else {
		t.counts[last.hash]--
	}
}

// Count returns how many recorded positions share pos's repetition
// tuple. The hash narrows the candidates; the stored tuples confirm
// them, so a collision cannot inflate the count.
func (t *RepetitionTracker) Count(pos chess.Position) int {
	hash := Signature(pos)
	if t.counts[hash] == 0 {
		return 0
	}
	tuple := tupleKey(pos)
	n := 0
	for _, entry := range t.stack {
		if entry.hash == hash && entry.tuple == tuple {
			n++
		}
	}
	return n
}

// Reset discards all recorded positions.
func (t *RepetitionTracker) Reset() {
	t.stack = t.stack[:0]
	t.counts = make(map[uint64]int)
}
