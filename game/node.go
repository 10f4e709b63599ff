package game

import (
	"sync"
	"sync/atomic"

	"github.com/notnil/chess"
	"github.com/pkg/errors"
)

// GameNode is a node of the lazily expanded game tree. It owns its board
// position, the move that produced it, and — on first access — the set of
// child nodes for every legal reply. A node exclusively owns its children;
// destroying a node (letting it become unreachable) destroys its subtree,
// since nothing but the parent holds a reference to them.
type GameNode struct {
	position *chess.Game
	lastMove ScoredMove

	once     sync.Once
	expanded atomic.Bool
	children []*GameNode
}

// FromFEN constructs a root node from a FEN string. The root's last move is
// the zero ScoredMove, since no move produced the root position.
func FromFEN(fen string) (*GameNode, error) {
	opt, err := chess.FEN(fen)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid position %q", fen)
	}
	return &GameNode{position: chess.NewGame(opt)}, nil
}

// newChild clones parent, applies move on the clone, and returns a node
// owning the result. move must be one parent's ValidMoves() produced, so
// applying it cannot fail; a failure here indicates the chess library's own
// legality check disagrees with itself and is treated as a programmer error.
func newChild(parent *chess.Game, move *chess.Move) *GameNode {
	clone := parent.Clone()
	if err := clone.Move(move); err != nil {
		panic(errors.Wrapf(err, "move %s returned by ValidMoves was rejected by Move", move))
	}
	return &GameNode{position: clone, lastMove: NewScoredMove(move)}
}

// Board returns the position reached by this node.
func (n *GameNode) Board() *chess.Board {
	return n.position.Board()
}

// Position exposes the underlying chess.Game, e.g. for side-to-move queries
// that the evaluator and search core need but that aren't part of the
// narrow Board accessor.
func (n *GameNode) Position() *chess.Game {
	return n.position
}

// LastMove returns the move that produced this node; undefined (zero value)
// for the root.
func (n *GameNode) LastMove() ScoredMove {
	return n.lastMove
}

// Children materializes, on first call, one child per legal reply from this
// node's position, in the chess library's enumeration order, and memoizes
// the result. Concurrent first calls from distinct goroutines are safe:
// exactly one enumerates moves and builds children, and every caller
// observes the same, immutable slice thereafter.
func (n *GameNode) Children() []*GameNode {
	n.once.Do(func() {
		moves := n.position.ValidMoves()
		children := make([]*GameNode, len(moves))
		for i, move := range moves {
			children[i] = newChild(n.position, move)
		}
		n.children = children
		n.expanded.Store(true)
	})
	return n.children
}

// Expanded reports whether Children has already materialized this node's
// children, without triggering that materialization. Diagnostic tools that
// walk the portion of the tree a search actually visited use this to avoid
// expanding nodes the search itself never touched.
func (n *GameNode) Expanded() bool {
	return n.expanded.Load()
}

// ExpandedChildren returns this node's children if already materialized, or
// nil otherwise. Unlike Children, it never triggers expansion.
func (n *GameNode) ExpandedChildren() []*GameNode {
	if !n.Expanded() {
		return nil
	}
	return n.children
}

// Evaluate delegates to the material evaluator for this node's position.
func (n *GameNode) Evaluate() int32 {
	return Evaluate(n.position)
}

// IsMaximizing reports whether White is to move at this node. Callers use
// it to choose the root's isMaximizing argument; the search core never calls
// it and instead tracks the flag by flipping a bool each ply.
func (n *GameNode) IsMaximizing() bool {
	return n.position.Position().Turn() == chess.White
}
