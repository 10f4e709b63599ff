package game

import "github.com/notnil/chess"

// ScoredMove wraps a chess.Move with the integer score the search core
// attaches to it. It is the Move contract of the core: default-constructible
// (the zero value represents "no move yet"), assignable, and equality
// comparable on the wrapped move.
type ScoredMove struct {
	move  *chess.Move
	score int32
}

// NewScoredMove wraps m with a zero score.
func NewScoredMove(m *chess.Move) ScoredMove {
	return ScoredMove{move: m}
}

// Move returns the wrapped chess move, or nil for the root node's
// (undefined) last move.
func (m ScoredMove) Move() *chess.Move {
	return m.move
}

// Score returns the score last attached to this move.
func (m ScoredMove) Score() int32 {
	return m.score
}

// SetScore attaches s to the move.
func (m *ScoredMove) SetScore(s int32) {
	m.score = s
}

// String renders the underlying move in UCI-ish notation, or a sentinel for
// the root's undefined move.
func (m ScoredMove) String() string {
	if m.move == nil {
		return "<root>"
	}
	return m.move.String()
}

// Eq reports whether two scored moves wrap the same underlying move. Scores
// are not compared: the move identity is what the tree cares about.
func (m ScoredMove) Eq(other ScoredMove) bool {
	if m.move == nil || other.move == nil {
		return m.move == other.move
	}
	return m.move.String() == other.move.String()
}
