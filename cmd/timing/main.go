// Command timing runs the alpha-beta search against a built-in position and
// reports wall-clock time and node count, averaged over multiple trials when
// requested.
package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/thowell332/parallel-chess-agent/config"
	"github.com/thowell332/parallel-chess-agent/game"
	"github.com/thowell332/parallel-chess-agent/search"
	"github.com/thowell332/parallel-chess-agent/stats"
)

var logger = log.New(os.Stderr, "[timing] ", log.LstdFlags)

// positionalInt parses args[i] as an int, falling back to def on a missing
// argument or malformed numeric input rather than aborting the run.
func positionalInt(args []string, i int, def int) int {
	if i >= len(args) {
		return def
	}
	v, err := strconv.Atoi(args[i])
	if err != nil {
		logger.Printf("argument %d (%q) is not a number, using default %d", i, args[i], def)
		return def
	}
	return v
}

func policyFor(name string, syncIterations int) search.Policy {
	switch name {
	case "shared":
		return search.NewSharedCutoffs()
	case "local":
		return search.NewLocalCutoffs()
	case "blended":
		return search.NewBlendedCutoffs(syncIterations)
	default:
		return search.NewSequential()
	}
}

func runTrial(policy search.Policy, node *game.GameNode, depth uint8) (stats.Trial, error) {
	start := time.Now()
	result, err := search.AlphaBeta(policy, node, depth, game.MinScore, game.MaxScore, node.IsMaximizing())
	elapsed := time.Since(start)
	if err != nil {
		return stats.Trial{}, err
	}
	return stats.Trial{
		Microseconds:  float64(elapsed.Microseconds()),
		NodesExplored: result.NodesExplored,
	}, nil
}

func main() {
	args := os.Args[1:]

	configPath := filepath.Join("config", "positions.toml")
	harness, err := config.Load(configPath)
	if err != nil {
		logger.Fatalf("loading %s: %s", configPath, err)
	}

	positionIndex := positionalInt(args, 0, 0)
	depth := uint8(positionalInt(args, 1, int(harness.Defaults.Depth)))
	syncIterations := positionalInt(args, 2, harness.Defaults.SyncIterations)
	trials := positionalInt(args, 3, 1)
	if trials < 1 {
		trials = 1
	}

	pos := harness.At(positionIndex)
	policy := policyFor(harness.Defaults.Policy, syncIterations)

	runs := make([]stats.Trial, trials)
	for i := 0; i < trials; i++ {
		node, err := game.FromFEN(pos.FEN)
		if err != nil {
			logger.Fatalf("position %q: %s", pos.Name, err)
		}
		trial, err := runTrial(policy, node, depth)
		if err != nil {
			logger.Fatalf("search failed: %s", err)
		}
		runs[i] = trial
	}

	if trials == 1 {
		fmt.Printf("%d,%d,%d\n", int64(runs[0].Microseconds), runs[0].NodesExplored, positionIndex)
		return
	}

	summary := stats.Aggregate(runs)
	fmt.Printf("%d,%d,%d,%d,%d\n",
		int64(summary.MeanMicroseconds), int64(summary.MeanNodesExplored),
		int64(summary.StdDevMicroseconds), int64(summary.StdDevNodesExplored),
		positionIndex)
}
