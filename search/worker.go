package search

import (
	"runtime"

	"github.com/thowell332/parallel-chess-agent/game"
)

// numWorkersFor picks a worker-pool size for a fan-out over n items: up to
// the number of hardware threads, but never more workers than there is
// work.
func numWorkersFor(n int) int {
	if n <= 0 {
		return 0
	}
	workers := runtime.GOMAXPROCS(0)
	if workers > n {
		workers = n
	}
	return workers
}

// partitionChildren splits children into numWorkers contiguous, roughly
// equal chunks, preserving the library's enumeration order within each
// chunk. Order across chunks does not matter: LocalCutoffs and
// BlendedCutoffs only need per-worker order for that worker's own cutoff
// reasoning, and the final reduction is an order-independent extremum.
func partitionChildren(children []*game.GameNode, numWorkers int) [][]*game.GameNode {
	if numWorkers <= 0 {
		return nil
	}
	chunks := make([][]*game.GameNode, 0, numWorkers)
	n := len(children)
	base, extra := n/numWorkers, n%numWorkers
	start := 0
	for i := 0; i < numWorkers; i++ {
		size := base
		if i < extra {
			size++
		}
		if size == 0 {
			continue
		}
		chunks = append(chunks, children[start:start+size])
		start += size
	}
	return chunks
}

// reduceResults combines per-worker results with a score-extremum combiner
// (max for the maximizer, min for the minimizer), used by LocalCutoffs and
// BlendedCutoffs to fold independent per-chunk results into one. Its
// identity element is the sentinel score, so an empty results slice
// degrades gracefully.
func reduceResults(node *game.GameNode, isMaximizing bool, results []AlphaBetaResult) AlphaBetaResult {
	combined := node.LastMove()
	combined.SetScore(sentinelFor(isMaximizing))
	var totalNodes uint64
	for _, r := range results {
		totalNodes += r.NodesExplored
		if improves(isMaximizing, r.BestMove.Score(), combined.Score()) {
			combined = r.BestMove
		}
	}
	return AlphaBetaResult{BestMove: combined, NodesExplored: totalNodes}
}
