package search

import "github.com/thowell332/parallel-chess-agent/game"

// AlphaBetaResult is the outcome of a search call: the best reply found and
// the number of leaf evaluations performed to find it.
type AlphaBetaResult struct {
	BestMove      game.ScoredMove
	NodesExplored uint64
}
