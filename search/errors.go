package search

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"

	"github.com/thowell332/parallel-chess-agent/game"
)

// BoundOutOfRangeError reports that alpha or beta fell outside
// [game.MinScore, game.MaxScore].
type BoundOutOfRangeError struct {
	Field string
	Value int32
}

func (e *BoundOutOfRangeError) Error() string {
	return fmt.Sprintf("%s out of range: %d not in [%d, %d]", e.Field, e.Value, game.MinScore, game.MaxScore)
}

// InvalidParameterError reports a structurally invalid search parameter,
// e.g. a zero depth or a zero sync-iteration stride.
type InvalidParameterError struct {
	Field  string
	Reason string
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// ErrNotImplemented is returned by policies that are named but deliberately
// unimplemented (DistributedMemory).
var ErrNotImplemented = errors.New("policy not implemented")

// validateWindow checks alpha and beta against [MinScore, MaxScore] and
// returns every violation found, aggregated via multierror, rather than
// stopping at the first one.
func validateWindow(alpha, beta int32) error {
	var result *multierror.Error
	if alpha < game.MinScore || alpha > game.MaxScore {
		result = multierror.Append(result, &BoundOutOfRangeError{Field: "alpha", Value: alpha})
	}
	if beta < game.MinScore || beta > game.MaxScore {
		result = multierror.Append(result, &BoundOutOfRangeError{Field: "beta", Value: beta})
	}
	if result != nil {
		return errors.WithStack(result)
	}
	return nil
}

// validateDepth checks that depth is nonzero. AlphaBeta calls it at the
// top-level entry for every policy; inside the recursion, depth == 0 is the
// ordinary "evaluate now" leaf condition and is never validated.
func validateDepth(depth uint8) error {
	if depth == 0 {
		return &InvalidParameterError{Field: "depth", Reason: "must be nonzero"}
	}
	return nil
}

// validateSyncIterations checks BlendedCutoffs' numSyncIterations parameter.
func validateSyncIterations(n int) error {
	if n < 1 {
		return &InvalidParameterError{Field: "numSyncIterations", Reason: "must be >= 1"}
	}
	return nil
}
