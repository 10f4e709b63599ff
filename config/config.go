// Package config loads the CLI harness's built-in position list and default
// search settings from a TOML file, instead of hardcoding them as a Go slice
// literal.
package config

import (
	"os"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

// Position is one built-in FEN position the timing harness can run against,
// named the way a person recognizes rather than by index alone.
type Position struct {
	Name string `toml:"name"`
	FEN  string `toml:"fen"`
}

// Defaults holds the harness's fallback depth, policy and sync-iteration
// count, used whenever a CLI positional argument is absent or malformed.
type Defaults struct {
	Depth          uint8  `toml:"depth"`
	Policy         string `toml:"policy"`
	SyncIterations int    `toml:"sync_iterations"`
}

// Harness is the parsed contents of positions.toml.
type Harness struct {
	Defaults  Defaults   `toml:"defaults"`
	Positions []Position `toml:"positions"`
}

// defaultHarness is the built-in position list and settings used whenever
// the config file is missing, so the harness always has somewhere to run.
func defaultHarness() Harness {
	return Harness{
		Defaults: Defaults{Depth: 4, Policy: "sequential", SyncIterations: 2},
		Positions: []Position{
			{Name: "startpos", FEN: "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"},
		},
	}
}

// Load reads and decodes path as TOML into a Harness. A missing file falls
// back to the built-in defaults; a file that exists but fails to parse, or
// that parses with no positions, is reported as an error rather than
// silently falling back, since that signals a real configuration mistake
// rather than simply running without a config file at all.
func Load(path string) (Harness, error) {
	var h Harness
	if _, err := toml.DecodeFile(path, &h); err != nil {
		if os.IsNotExist(err) {
			return defaultHarness(), nil
		}
		return Harness{}, errors.Wrapf(err, "config: decoding %s", path)
	}
	if len(h.Positions) == 0 {
		return Harness{}, errors.Errorf("config: %s declares no positions", path)
	}
	return h, nil
}

// At returns the position at index, clamping out-of-range indices into
// [0, len(Positions)-1] rather than panicking or erroring.
func (h Harness) At(index int) Position {
	if index < 0 {
		index = 0
	}
	if index >= len(h.Positions) {
		index = len(h.Positions) - 1
	}
	return h.Positions[index]
}
