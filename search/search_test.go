package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thowell332/parallel-chess-agent/game"
)

func mustNode(t *testing.T, fen string) *game.GameNode {
	t.Helper()
	node, err := game.FromFEN(fen)
	require.NoError(t, err)
	return node
}

// TestMateInOne verifies that a depth-1 search from a position with a
// forced mate, with the side to move searching as the maximizer, always
// selects the mating move and scores it MaxScore.
func TestMateInOne(t *testing.T) {
	cases := []struct {
		name string
		fen  string
		want string
	}{
		{"white_back_rank_mate", "1k6/6R1/1K6/8/8/8/8/8 w - - 0 1", "g7g8"},
		{"black_back_rank_mate", "8/8/8/8/8/1k6/6r1/1K6 b - - 0 1", "g2g1"},
		{"queen_mate", "1Bb3BN/R2Pk2r/1Q5B/4q2R/2bN4/4Q1BK/1p6/1bq1R1rb w - - 0 1", "e3a3"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			node := mustNode(t, tc.fen)
			result, err := AlphaBeta(NewSequential(), node, 1, game.MinScore, game.MaxScore, true)
			require.NoError(t, err)
			assert.Equal(t, tc.want, result.BestMove.String())
			assert.Equal(t, int32(game.MaxScore), result.BestMove.Score())
		})
	}
}

// TestMateInTwo verifies the first move of a forced mate-in-two sequence.
func TestMateInTwo(t *testing.T) {
	node := mustNode(t, "5Q2/p1r5/6K1/R7/6k1/P7/8/8 w - - 0 1")
	result, err := AlphaBeta(NewSequential(), node, 3, game.MinScore, game.MaxScore, node.IsMaximizing())
	require.NoError(t, err)
	assert.Equal(t, "a5g5", result.BestMove.String())
}

// TestMateInTwoDeliversMateAgainstAnyReply continues from the position
// TestMateInTwo found the first move for: after White plays a5g5, no matter
// which legal move Black replies with, a depth-1 search must find that
// f8h6 delivers mate.
func TestMateInTwoDeliversMateAgainstAnyReply(t *testing.T) {
	root := mustNode(t, "5Q2/p1r5/6K1/R7/6k1/P7/8/8 w - - 0 1")

	var afterFirstMove *game.GameNode
	for _, child := range root.Children() {
		if child.LastMove().String() == "a5g5" {
			afterFirstMove = child
			break
		}
	}
	require.NotNil(t, afterFirstMove, "a5g5 must be a legal reply from the root position")

	blackReplies := afterFirstMove.Children()
	require.NotEmpty(t, blackReplies)
	for _, afterBlackReply := range blackReplies {
		t.Run(afterBlackReply.LastMove().String(), func(t *testing.T) {
			result, err := AlphaBeta(NewSequential(), afterBlackReply, 1, game.MinScore, game.MaxScore, afterBlackReply.IsMaximizing())
			require.NoError(t, err)
			assert.Equal(t, "f8h6", result.BestMove.String())
			assert.Equal(t, int32(game.MaxScore), result.BestMove.Score())
		})
	}
}

// TestBoundRejection verifies that out-of-range alpha/beta are fatal.
func TestBoundRejection(t *testing.T) {
	node := mustNode(t, "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")

	_, err := AlphaBeta(NewSequential(), node, 1, game.MinScore-1, game.MaxScore, true)
	assert.Error(t, err)
	var boundErr *BoundOutOfRangeError
	assert.ErrorAs(t, err, &boundErr)

	_, err = AlphaBeta(NewSequential(), node, 1, game.MinScore, game.MaxScore+1, true)
	assert.Error(t, err)
	assert.ErrorAs(t, err, &boundErr)
}

// TestDepthZeroAtTopLevelIsRejected verifies a zero depth at the top-level
// entry point is rejected as an invalid parameter.
func TestDepthZeroAtTopLevelIsRejected(t *testing.T) {
	node := mustNode(t, "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")
	_, err := AlphaBeta(NewSequential(), node, 0, game.MinScore, game.MaxScore, true)
	assert.Error(t, err)
	var paramErr *InvalidParameterError
	assert.ErrorAs(t, err, &paramErr)
}

// TestBlendedCutoffsRejectsZeroSyncIterations verifies a zero
// sync-iteration stride is rejected as an invalid parameter.
func TestBlendedCutoffsRejectsZeroSyncIterations(t *testing.T) {
	node := mustNode(t, "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")
	_, err := AlphaBeta(NewBlendedCutoffs(0), node, 2, game.MinScore, game.MaxScore, true)
	assert.Error(t, err)
	var paramErr *InvalidParameterError
	assert.ErrorAs(t, err, &paramErr)
}

// TestTerminalSaturation verifies a checkmated side evaluates to
// MinScore and a stalemated side evaluates to a draw.
func TestTerminalSaturation(t *testing.T) {
	checkmated := mustNode(t, "8/8/8/8/8/1k6/6r1/1K4r1 w - - 0 1")
	assert.Equal(t, int32(game.MinScore), checkmated.Evaluate())

	stalemated := mustNode(t, "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1")
	assert.Equal(t, int32(0), stalemated.Evaluate())
}

// TestEquivalenceAcrossPolicies verifies that at shallow depth every
// variant agrees with Sequential on the returned score (the move may
// differ only among ties).
func TestEquivalenceAcrossPolicies(t *testing.T) {
	positions := []string{
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
		"r1bqkbnr/pppp1ppp/2n5/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R w KQkq - 2 3",
		"5Q2/p1r5/6K1/R7/6k1/P7/8/8 w - - 0 1",
	}
	policies := []Policy{
		NewSharedCutoffs(),
		NewLocalCutoffs(),
		NewBlendedCutoffs(1),
		NewBlendedCutoffs(2),
	}
	for _, fen := range positions {
		for depth := uint8(1); depth <= 3; depth++ {
			seqNode := mustNode(t, fen)
			seqResult, err := AlphaBeta(NewSequential(), seqNode, depth, game.MinScore, game.MaxScore, seqNode.IsMaximizing())
			require.NoError(t, err)

			for _, p := range policies {
				node := mustNode(t, fen)
				result, err := AlphaBeta(p, node, depth, game.MinScore, game.MaxScore, node.IsMaximizing())
				require.NoError(t, err)
				assert.Equalf(t, seqResult.BestMove.Score(), result.BestMove.Score(),
					"policy %s disagreed with Sequential at depth %d for %s", p.Kind(), depth, fen)
			}
		}
	}
}

// TestWindowInvariance verifies that widening the initial window never
// decreases the returned score.
func TestWindowInvariance(t *testing.T) {
	fen := "r1bqkbnr/pppp1ppp/2n5/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R w KQkq - 2 3"

	fullWindow := mustNode(t, fen)
	fullResult, err := AlphaBeta(NewSequential(), fullWindow, 3, game.MinScore, game.MaxScore, fullWindow.IsMaximizing())
	require.NoError(t, err)

	narrow := mustNode(t, fen)
	narrowResult, err := AlphaBeta(NewSequential(), narrow, 3, -10, 10, narrow.IsMaximizing())
	require.NoError(t, err)

	assert.GreaterOrEqual(t, int(fullResult.BestMove.Score()), int(narrowResult.BestMove.Score()))
}

// TestNodeCountMonotonicity verifies that nodes explored increases
// monotonically with depth for a fixed position and policy.
func TestNodeCountMonotonicity(t *testing.T) {
	fen := "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"
	var prev uint64
	for depth := uint8(1); depth <= 3; depth++ {
		node := mustNode(t, fen)
		result, err := AlphaBeta(NewSequential(), node, depth, game.MinScore, game.MaxScore, node.IsMaximizing())
		require.NoError(t, err)
		assert.GreaterOrEqual(t, result.NodesExplored, prev)
		prev = result.NodesExplored
	}
}

// TestDistributedMemoryIsNotImplemented verifies that the stubbed policy
// is named and observable, not silently a zero result.
func TestDistributedMemoryIsNotImplemented(t *testing.T) {
	node := mustNode(t, "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")
	_, err := AlphaBeta(NewDistributedMemory(), node, 1, game.MinScore, game.MaxScore, true)
	assert.ErrorIs(t, err, ErrNotImplemented)
}
