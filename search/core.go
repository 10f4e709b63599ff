package search

import "github.com/thowell332/parallel-chess-agent/game"

// maxSentinel and minSentinel seed the "no move found yet" accumulator for
// the minimizer and maximizer respectively: a value strictly worse than any
// legal score, so the first child considered always improves on it.
const (
	maxSentinel = game.MaxScore + 1 // minimizer's identity: worse than any score it could want
	minSentinel = game.MinScore - 1 // maximizer's identity: worse than any score it could want
)

// sentinelFor returns the "worse than any legal score" identity element for
// the player to move.
func sentinelFor(isMaximizing bool) int32 {
	if isMaximizing {
		return minSentinel
	}
	return maxSentinel
}

// isLeaf reports whether node should be scored directly rather than
// recursed into: depth exhausted, or no legal replies (checkmate/stalemate).
// Calling node.Children() here is what drives the one-time expansion of
// every node the search actually visits.
func isLeaf(node *game.GameNode, depth uint8) bool {
	return depth == 0 || len(node.Children()) == 0
}

// leafResult scores node directly and attaches that score to a copy of its
// last move.
func leafResult(node *game.GameNode, isMaximizing bool) AlphaBetaResult {
	score := node.Evaluate()
	if !isMaximizing {
		score = -score
	}
	move := node.LastMove()
	move.SetScore(score)
	return AlphaBetaResult{BestMove: move, NodesExplored: 1}
}

// improves reports whether score is a strict improvement over best for the
// player to move: higher for the maximizer, lower for the minimizer. Ties
// are broken by first occurrence in child order, so this must be a strict
// inequality.
func improves(isMaximizing bool, score, best int32) bool {
	if isMaximizing {
		return score > best
	}
	return score < best
}

// tightenAlpha and tightenBeta narrow the window held by the player to move:
// alpha is raised for the maximizer, beta is lowered for the minimizer.
func tightenAlpha(alpha, best int32) int32 {
	if best > alpha {
		return best
	}
	return alpha
}

func tightenBeta(beta, best int32) int32 {
	if best < beta {
		return best
	}
	return beta
}
