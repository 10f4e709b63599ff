package search

import "github.com/thowell332/parallel-chess-agent/game"

// alphaBetaSequential is the reference minimax-with-alpha-beta skeleton:
// children are explored left-to-right on the calling goroutine, and a
// cutoff (beta <= alpha) breaks the loop immediately. Sequential calls this
// directly; SharedCutoffs and LocalCutoffs use it to evaluate each child
// subtree once a worker has claimed it. BlendedCutoffs descends through its
// own sync-aware alphaBetaBlendedRecurse instead.
func alphaBetaSequential(node *game.GameNode, depth uint8, alpha, beta int32, isMaximizing bool) AlphaBetaResult {
	if isLeaf(node, depth) {
		return leafResult(node, isMaximizing)
	}

	best := node.LastMove()
	best.SetScore(sentinelFor(isMaximizing))
	var nodesExplored uint64

	for _, child := range node.Children() {
		result := alphaBetaSequential(child, depth-1, alpha, beta, !isMaximizing)
		nodesExplored += result.NodesExplored
		score := result.BestMove.Score()
		if improves(isMaximizing, score, best.Score()) {
			best = child.LastMove()
			best.SetScore(score)
		}
		if isMaximizing {
			alpha = tightenAlpha(alpha, best.Score())
		} else {
			beta = tightenBeta(beta, best.Score())
		}
		if beta <= alpha {
			break
		}
	}
	return AlphaBetaResult{BestMove: best, NodesExplored: nodesExplored}
}
