package search

import (
	"sync"

	"github.com/thowell332/parallel-chess-agent/game"
)

// globalBounds is the shared-ownership pair of global bounds BlendedCutoffs
// reconciles private worker bounds against, each field guarded by its own
// mutex rather than one critical section guarding both fields. It is scoped to a single top-level call and discarded when
// that call returns — never stored as package state.
type globalBounds struct {
	muAlpha sync.Mutex
	alpha   int32
	muBeta  sync.Mutex
	beta    int32
}

func newGlobalBounds(alpha, beta int32) *globalBounds {
	return &globalBounds{alpha: alpha, beta: beta}
}

// syncAlpha publishes local if it exceeds the current global alpha, then
// returns the (possibly just-raised) global value. Always returning the
// max keeps the global bound at least as tight as any worker's local bound
// at every sync point, whether or not this call is the one that raised it.
func (g *globalBounds) syncAlpha(local int32) int32 {
	g.muAlpha.Lock()
	defer g.muAlpha.Unlock()
	if local > g.alpha {
		g.alpha = local
	}
	return g.alpha
}

// syncBeta is syncAlpha's mirror image for the minimizer's bound.
func (g *globalBounds) syncBeta(local int32) int32 {
	g.muBeta.Lock()
	defer g.muBeta.Unlock()
	if local < g.beta {
		g.beta = local
	}
	return g.beta
}

// alphaBetaBlended implements BlendedCutoffs: one fork-join fan-out over
// node's children, as in SharedCutoffs/LocalCutoffs, but each worker's
// descent keeps reconciling its private bounds against global bounds every
// numSyncIterations plies instead of running fully isolated.
func alphaBetaBlended(node *game.GameNode, depth uint8, alpha, beta int32, isMaximizing bool, numSyncIterations int) AlphaBetaResult {
	if isLeaf(node, depth) {
		return leafResult(node, isMaximizing)
	}

	children := node.Children()
	global := newGlobalBounds(alpha, beta)
	chunks := partitionChildren(children, numWorkersFor(len(children)))
	results := make([]AlphaBetaResult, len(chunks))

	var wg sync.WaitGroup
	wg.Add(len(chunks))
	for i, chunk := range chunks {
		i, chunk := i, chunk
		go func() {
			defer wg.Done()
			results[i] = exploreChunkBlended(node, chunk, depth, alpha, beta, isMaximizing, numSyncIterations, global)
		}()
	}
	wg.Wait()

	return reduceResults(node, isMaximizing, results)
}

func exploreChunkBlended(node *game.GameNode, chunk []*game.GameNode, depth uint8, alpha, beta int32, isMaximizing bool, k int, global *globalBounds) AlphaBetaResult {
	best := node.LastMove()
	best.SetScore(sentinelFor(isMaximizing))
	var nodesExplored uint64

	for _, child := range chunk {
		result := alphaBetaBlendedRecurse(child, depth-1, alpha, beta, !isMaximizing, k, global)
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

// alphaBetaBlendedRecurse is the sequential descent a single worker runs
// through its subtree, except that at every recursion whose remaining
// depth is a multiple of k it reconciles its private window against the
// global one before continuing.
func alphaBetaBlendedRecurse(node *game.GameNode, depth uint8, alpha, beta int32, isMaximizing bool, k int, global *globalBounds) AlphaBetaResult {
	if k > 0 && int(depth)%k == 0 {
		alpha = global.syncAlpha(alpha)
		beta = global.syncBeta(beta)
	}

	if isLeaf(node, depth) {
		return leafResult(node, isMaximizing)
	}

	best := node.LastMove()
	best.SetScore(sentinelFor(isMaximizing))
	var nodesExplored uint64

	for _, child := range node.Children() {
		result := alphaBetaBlendedRecurse(child, depth-1, alpha, beta, !isMaximizing, k, global)
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
