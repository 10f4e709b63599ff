// Package render rasterizes a chess position to a PNG image, a diagnostic
// aid for visually inspecting the position cmd/timing just searched or a
// position supplied directly on the command line.
package render

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"strings"

	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"github.com/notnil/chess"
	"github.com/pkg/errors"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/thowell332/parallel-chess-agent/game"
)

const (
	squareSize = 64
	boardSize  = 8 * squareSize
)

var (
	lightSquare = color.RGBA{0xee, 0xee, 0xd2, 0xff}
	darkSquare  = color.RGBA{0x76, 0x96, 0x56, 0xff}
	whitePiece  = color.RGBA{0xff, 0xff, 0xff, 0xff}
	blackPiece  = color.RGBA{0x10, 0x10, 0x10, 0xff}
)

// Board rasterizes node's position into an 8x8 board image, light square at
// a8, and writes it to w as a PNG.
func Board(w io.Writer, node *game.GameNode) error {
	img := image.NewRGBA(image.Rect(0, 0, boardSize, boardSize))
	paintSquares(img)

	face, err := pieceFace()
	if err != nil {
		return err
	}

	board := node.Board()
	for sq, piece := range board.SquareMap() {
		if err := drawPiece(img, face, sq, piece); err != nil {
			return err
		}
	}

	if err := png.Encode(w, img); err != nil {
		return errors.Wrap(err, "render: encoding PNG")
	}
	return nil
}

func paintSquares(img *image.RGBA) {
	for rank := 0; rank < 8; rank++ {
		for file := 0; file < 8; file++ {
			c := lightSquare
			if (rank+file)%2 == 1 {
				c = darkSquare
			}
			x0, y0 := file*squareSize, rank*squareSize
			draw.Draw(img, image.Rect(x0, y0, x0+squareSize, y0+squareSize), &image.Uniform{C: c}, image.Point{}, draw.Src)
		}
	}
}

func pieceFace() (*truetype.Font, error) {
	f, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, errors.Wrap(err, "render: parsing embedded font")
	}
	return f, nil
}

// drawPiece labels sq with piece's algebraic letter (uppercase for White,
// lowercase for Black), built from the lowercase letter notnil/chess itself
// uses in (PieceType).String().
func drawPiece(img *image.RGBA, font *truetype.Font, sq chess.Square, piece chess.Piece) error {
	file := int(sq.File())
	rank := 7 - int(sq.Rank())

	ctx := freetype.NewContext()
	ctx.SetDPI(72)
	ctx.SetFont(font)
	ctx.SetFontSize(float64(squareSize) * 0.6)
	ctx.SetClip(img.Bounds())
	ctx.SetDst(img)

	ink := whitePiece
	if piece.Color() == chess.Black {
		ink = blackPiece
	}
	ctx.SetSrc(&image.Uniform{C: ink})

	x := file*squareSize + squareSize/4
	y := rank*squareSize + squareSize*3/4
	pt := freetype.Pt(x, y)
	label := piece.Type().String()
	if piece.Color() == chess.White {
		label = strings.ToUpper(label)
	}
	if _, err := ctx.DrawString(label, pt); err != nil {
		return errors.Wrapf(err, "render: drawing piece at %s", sq)
	}
	return nil
}
