package search

import (
	"sync"
	"sync/atomic"

	"github.com/thowell332/parallel-chess-agent/game"
)

// sharedBounds is the mutable state SharedCutoffs shares across workers:
// the window and best move, guarded by one mutex. nodesExplored is kept
// separately as a plain atomic counter since it only ever grows and needs
// no coordination with the window/best update.
type sharedBounds struct {
	mu    sync.Mutex
	alpha int32
	beta  int32
	best  game.ScoredMove
}

func (s *sharedBounds) window() (alpha, beta int32) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.alpha, s.beta
}

// tryImprove tests, under the lock, whether move's score improves the
// shared best and installs it if so, then tightens the player's bound from
// the (possibly updated) best. The test is always made under the lock, since
// another worker may have installed a better value in the meantime.
func (s *sharedBounds) tryImprove(isMaximizing bool, move game.ScoredMove) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if improves(isMaximizing, move.Score(), s.best.Score()) {
		s.best = move
	}
	if isMaximizing {
		s.alpha = tightenAlpha(s.alpha, s.best.Score())
	} else {
		s.beta = tightenBeta(s.beta, s.best.Score())
	}
}

// alphaBetaShared implements SharedCutoffs: the current node's children
// are fanned out across a worker pool with alpha, beta, and best shared
// and mutex-protected, and each claimed child subtree evaluated with the
// plain sequential skeleton.
func alphaBetaShared(node *game.GameNode, depth uint8, alpha, beta int32, isMaximizing bool) AlphaBetaResult {
	if isLeaf(node, depth) {
		return leafResult(node, isMaximizing)
	}

	children := node.Children()
	initial := node.LastMove()
	initial.SetScore(sentinelFor(isMaximizing))
	state := &sharedBounds{alpha: alpha, beta: beta, best: initial}

	jobs := make(chan int, len(children))
	for i := range children {
		jobs <- i
	}
	close(jobs)

	var nodesExplored uint64
	var wg sync.WaitGroup
	numWorkers := numWorkersFor(len(children))
	wg.Add(numWorkers)
	for w := 0; w < numWorkers; w++ {
		go func() {
			defer wg.Done()
			for i := range jobs {
				a, b := state.window()
				if b <= a {
					continue // cutoff already reached: abandon this child, contribute 0
				}
				child := children[i]
				result := alphaBetaSequential(child, depth-1, a, b, !isMaximizing)
				atomic.AddUint64(&nodesExplored, result.NodesExplored)

				move := child.LastMove()
				move.SetScore(result.BestMove.Score())
				state.tryImprove(isMaximizing, move)
			}
		}()
	}
	wg.Wait()

	return AlphaBetaResult{BestMove: state.best, NodesExplored: nodesExplored}
}
