// Command renderboard rasterizes a FEN position to a PNG file, a diagnostic
// companion to cmd/timing for visually inspecting a position under test.
package main

import (
	"log"
	"os"

	"github.com/thowell332/parallel-chess-agent/game"
	"github.com/thowell332/parallel-chess-agent/render"
)

var logger = log.New(os.Stderr, "[renderboard] ", log.LstdFlags)

func main() {
	args := os.Args[1:]
	if len(args) < 1 {
		logger.Fatal("usage: renderboard <fen> [out.png]")
	}

	fen := args[0]
	outPath := "board.png"
	if len(args) >= 2 {
		outPath = args[1]
	}

	node, err := game.FromFEN(fen)
	if err != nil {
		logger.Fatalf("invalid position %q: %s", fen, err)
	}

	f, err := os.Create(outPath)
	if err != nil {
		logger.Fatalf("creating %s: %s", outPath, err)
	}
	defer f.Close()

	if err := render.Board(f, node); err != nil {
		logger.Fatalf("rendering board: %s", err)
	}
}
