package game

import "github.com/notnil/chess"

// Piece weights used by the static evaluator. King is weighted heavily so
// that losing it dwarfs any material swing, matching the original engine's
// bounds derivation.
const (
	KingWeight   int32 = 200
	QueenWeight  int32 = 9
	RookWeight   int32 = 5
	BishopWeight int32 = 3
	KnightWeight int32 = 3
	PawnWeight   int32 = 1
)

// MaxScore and MinScore bound every score the evaluator can produce for a
// non-terminal position, and are also used as terminal-position sentinels.
const (
	MaxScore = KingWeight + QueenWeight + 2*RookWeight + 2*BishopWeight + 2*KnightWeight + 8*PawnWeight
	MinScore = -MaxScore
)

// Evaluate scores pos from the perspective of the side to move: MaxScore if
// that side has just won, MinScore if it has just lost, 0 on a draw, and
// otherwise the material balance (white minus black, piece weights above)
// negated when black is to move.
//
// Step 1 (terminal check) always takes precedence over step 2 (material),
// regardless of what earlier revisions of the original engine did.
func Evaluate(pos *chess.Game) int32 {
	if over, result := outcomeForSideToMove(pos); over {
		return result
	}
	return materialScore(pos)
}

// outcomeForSideToMove reports whether pos has ended and, if so, the score
// for the side to move: MaxScore on a win, MinScore on a loss, 0 on a draw.
func outcomeForSideToMove(pos *chess.Game) (over bool, score int32) {
	outcome := pos.Outcome()
	if outcome == chess.NoOutcome {
		return false, 0
	}
	if outcome == chess.Draw {
		return true, 0
	}
	winner := chess.White
	if outcome == chess.BlackWon {
		winner = chess.Black
	}
	if pos.Position().Turn() == winner {
		return true, MaxScore
	}
	return true, MinScore
}

// materialScore computes the White-minus-Black weighted piece count,
// negated when Black is to move.
func materialScore(pos *chess.Game) int32 {
	squares := pos.Position().Board().SquareMap()
	var score int32
	for _, piece := range squares {
		if piece == chess.NoPiece {
			continue
		}
		w := weightOf(piece.Type())
		if piece.Color() == chess.Black {
			w = -w
		}
		score += w
	}
	if pos.Position().Turn() == chess.Black {
		score = -score
	}
	return score
}

func weightOf(t chess.PieceType) int32 {
	switch t {
	case chess.King:
		return KingWeight
	case chess.Queen:
		return QueenWeight
	case chess.Rook:
		return RookWeight
	case chess.Bishop:
		return BishopWeight
	case chess.Knight:
		return KnightWeight
	case chess.Pawn:
		return PawnWeight
	default:
		return 0
	}
}
