package search

import (
	"sync"

	"github.com/thowell332/parallel-chess-agent/game"
)

// alphaBetaLocal implements LocalCutoffs: each worker copies alpha, beta,
// and best on entry and updates only its private copies, cutting off only
// against its own already-finished children. Nothing is shared across
// workers except the final reduction.
func alphaBetaLocal(node *game.GameNode, depth uint8, alpha, beta int32, isMaximizing bool) AlphaBetaResult {
	if isLeaf(node, depth) {
		return leafResult(node, isMaximizing)
	}

	children := node.Children()
	chunks := partitionChildren(children, numWorkersFor(len(children)))
	results := make([]AlphaBetaResult, len(chunks))

	var wg sync.WaitGroup
	wg.Add(len(chunks))
	for i, chunk := range chunks {
		i, chunk := i, chunk
		go func() {
			defer wg.Done()
			results[i] = exploreChunkSequentially(node, chunk, depth, alpha, beta, isMaximizing)
		}()
	}
	wg.Wait()

	return reduceResults(node, isMaximizing, results)
}

// exploreChunkSequentially walks chunk with a private alpha/beta window,
// exactly as the sequential skeleton would over that subset of children: a
// cutoff here only ever reflects work this same worker has already done.
func exploreChunkSequentially(node *game.GameNode, chunk []*game.GameNode, depth uint8, alpha, beta int32, isMaximizing bool) AlphaBetaResult {
	best := node.LastMove()
	best.SetScore(sentinelFor(isMaximizing))
	var nodesExplored uint64

	for _, child := range chunk {
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
