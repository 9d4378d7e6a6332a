package render

import (
	"image"
	"image/color"
	"math"
	"testing"

	"colorlife/internal/core"
	"colorlife/internal/sims/colorlife"
)

func unsetBoard(w, h int) *colorlife.Board {
	b := core.NewGrid[colorlife.Cell](w, h)
	b.Fill(colorlife.Cell{Drop: colorlife.DropUnset})
	return b
}

func near(a, b color.RGBA) bool {
	d := func(x, y uint8) bool { return math.Abs(float64(x)-float64(y)) <= 1 }
	return d(a.R, b.R) && d(a.G, b.G) && d(a.B, b.B) && d(a.A, b.A)
}

func TestCanvasSquares(t *testing.T) {
	board := unsetBoard(3, 2)
	board.Set(1, 1, colorlife.Cell{Hue: 120, Life: true})
	board.Set(2, 0, colorlife.Cell{Hue: 240, Drop: 0})

	tess, _ := Lookup("squares")
	c := NewCanvas(tess, DefaultFade(), 4, 2)
	img := c.Render(board)
	if got := img.Bounds(); got != image.Rect(0, 0, 16, 12) {
		t.Fatalf("unexpected bounds %v", got)
	}
	if got := img.RGBAAt(8, 8); !near(got, color.RGBA{G: 255, A: 255}) {
		t.Fatalf("alive cell pixel %v, expected green", got)
	}
	if got := img.RGBAAt(4, 4); got != Background {
		t.Fatalf("unset cell pixel %v, expected background", got)
	}
	if got, want := img.RGBAAt(12, 4), DefaultFade().CellColor(board.At(2, 0)); !near(got, want) {
		t.Fatalf("dead cell pixel %v, expected %v", got, want)
	}
	if got := img.RGBAAt(0, 0); got != Background {
		t.Fatalf("margin pixel %v, expected background", got)
	}
}

func TestCanvasMatchesCellImage(t *testing.T) {
	rng := core.NewRNG(4)
	board := colorlife.NewBoard(5, 4, rng)
	for i, cell := range board.Cells() {
		if i%3 == 0 {
			cell.Life = true
			cell.Drop = 0
		} else if i%3 == 1 {
			cell.Drop = i
		}
		board.Cells()[i] = cell
	}
	tess, _ := Lookup("squares")
	scaled := NewCanvas(tess, DefaultFade(), 1, 0).Render(board)
	direct := CellImage(board, DefaultFade())
	for y := 0; y < board.H; y++ {
		for x := 0; x < board.W; x++ {
			if a, b := scaled.RGBAAt(x, y), direct.RGBAAt(x, y); !near(a, b) {
				t.Fatalf("pixel (%d,%d): canvas %v, cell image %v", x, y, a, b)
			}
		}
	}
}

func TestCanvasPaintsEveryTessellation(t *testing.T) {
	for _, name := range Tessellations() {
		tess, _ := Lookup(name)
		board := unsetBoard(6, 4)
		board.Set(3, 2, colorlife.Cell{Hue: 0, Life: true})
		c := NewCanvas(tess, DefaultFade(), 16, 5)
		img := c.Render(board)

		s := tess.Shape(3, 2, c.Scale)
		px := int(s.Center.X) + c.Margin
		py := int(s.Center.Y) + c.Margin
		if got := img.RGBAAt(px, py); !near(got, color.RGBA{R: 255, A: 255}) {
			t.Fatalf("%s: center pixel (%d,%d) is %v, expected red", name, px, py, got)
		}

		s = tess.Shape(0, 0, c.Scale)
		px = int(s.Center.X) + c.Margin
		py = int(s.Center.Y) + c.Margin
		if got := img.RGBAAt(px, py); got != Background {
			t.Fatalf("%s: unset cell painted %v", name, got)
		}
	}
}

func TestNewCanvasDefaults(t *testing.T) {
	c := NewCanvas(nil, DefaultFade(), 0, -4)
	if c.Tess.Name() != "squares" || c.Scale != 1 || c.Margin != 0 {
		t.Fatalf("unexpected defaults: %s scale=%v margin=%d", c.Tess.Name(), c.Scale, c.Margin)
	}
}
