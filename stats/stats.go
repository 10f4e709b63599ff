// Package stats aggregates repeated timing trials for the CLI harness,
// reporting mean and standard deviation across multiple runs rather than
// just a single run's numbers.
package stats

import (
	"math"

	"github.com/chewxy/math32"
	"golang.org/x/exp/slices"
	"gonum.org/v1/gonum/stat"
)

// Trial is one timed run of a search: the wall-clock duration and the node
// count the search reported.
type Trial struct {
	Microseconds float64
	NodesExplored uint64
}

// Summary is the aggregated view of a set of trials: mean and population
// standard deviation of both fields, plus the fastest and slowest runs.
type Summary struct {
	Count int

	MeanMicroseconds   float64
	StdDevMicroseconds float64

	MeanNodesExplored float64
	StdDevNodesExplored float64

	FastestMicroseconds float64
	SlowestMicroseconds float64
}

// Aggregate computes a Summary over trials. It panics if trials is empty;
// callers always have at least one trial (cmd/timing's [trials] argument
// defaults to 1, never 0).
func Aggregate(trials []Trial) Summary {
	if len(trials) == 0 {
		panic("stats: Aggregate called with no trials")
	}

	times := make([]float64, len(trials))
	nodes := make([]float64, len(trials))
	for i, tr := range trials {
		times[i] = tr.Microseconds
		nodes[i] = float64(tr.NodesExplored)
	}

	fastest, slowest := extrema(times)

	return Summary{
		Count:               len(trials),
		MeanMicroseconds:    stat.Mean(times, nil),
		StdDevMicroseconds:  math.Sqrt(stat.Moment(2, times, nil)),
		MeanNodesExplored:   stat.Mean(nodes, nil),
		StdDevNodesExplored: math.Sqrt(stat.Moment(2, nodes, nil)),
		FastestMicroseconds: fastest,
		SlowestMicroseconds: slowest,
	}
}

// extrema returns the min and max of values, comparing them as float32 via
// math32 rather than Go's native float64 operators.
func extrema(values []float64) (min, max float64) {
	sorted := slices.Clone(values)
	slices.Sort(sorted)

	lo := math32.Inf(1)
	hi := math32.Inf(-1)
	for _, v := range sorted {
		f := float32(v)
		lo = math32.Min(lo, f)
		hi = math32.Max(hi, f)
	}
	return float64(lo), float64(hi)
}
