package search

import (
	"github.com/pkg/errors"

	"github.com/thowell332/parallel-chess-agent/game"
)

// AlphaBeta runs a minimax search with alpha-beta pruning from node to the
// given depth, under the given policy. alpha and beta must lie within
// [game.MinScore, game.MaxScore]; depth must be nonzero at this, the
// top-level entry point (deeper recursive calls legitimately see
// depth == 0 as the ordinary leaf condition). Both violations are fatal to
// the call and returned as structured errors rather than panics.
func AlphaBeta(policy Policy, node *game.GameNode, depth uint8, alpha, beta int32, isMaximizing bool) (AlphaBetaResult, error) {
	if err := validateWindow(alpha, beta); err != nil {
		return AlphaBetaResult{}, err
	}
	if err := validateDepth(depth); err != nil {
		return AlphaBetaResult{}, err
	}
	if policy.Kind() == BlendedCutoffs {
		if err := validateSyncIterations(policy.SyncIterations); err != nil {
			return AlphaBetaResult{}, err
		}
	}

	switch policy.Kind() {
	case Sequential:
		return alphaBetaSequential(node, depth, alpha, beta, isMaximizing), nil
	case SharedCutoffs:
		return alphaBetaShared(node, depth, alpha, beta, isMaximizing), nil
	case LocalCutoffs:
		return alphaBetaLocal(node, depth, alpha, beta, isMaximizing), nil
	case BlendedCutoffs:
		return alphaBetaBlended(node, depth, alpha, beta, isMaximizing, policy.SyncIterations), nil
	case DistributedMemory:
		return AlphaBetaResult{}, ErrNotImplemented
	default:
		return AlphaBetaResult{}, errors.Errorf("search: unknown policy kind %d", policy.Kind())
	}
}
