package render

import (
	"image"
	"image/draw"
	"math"

	"colorlife/internal/sims/colorlife"

	"golang.org/x/image/vector"
)

// kappa places cubic Bézier control points for a quarter circle.
const kappa = 0.5522847498

// Canvas rasterizes boards into an RGBA image without a GPU. It backs
// snapshots and headless rendering.
type Canvas struct {
	Tess   Tessellation
	Fade   Fade
	Scale  float64
	Margin int

	z vector.Rasterizer
}

// NewCanvas returns a canvas for the given geometry.
func NewCanvas(tess Tessellation, fade Fade, scale float64, margin int) *Canvas {
	if tess == nil {
		tess = squares{}
	}
	if scale <= 0 {
		scale = 1
	}
	if margin < 0 {
		margin = 0
	}
	return &Canvas{Tess: tess, Fade: fade, Scale: scale, Margin: margin}
}

// Bounds returns the image size for a w*h board including margins.
func (c *Canvas) Bounds(w, h int) image.Rectangle {
	ew, eh := c.Tess.Extent(w, h, c.Scale)
	return image.Rect(0, 0, int(math.Ceil(ew))+2*c.Margin, int(math.Ceil(eh))+2*c.Margin)
}

// Render draws board on a fresh black image.
func (c *Canvas) Render(board *colorlife.Board) *image.RGBA {
	img := image.NewRGBA(c.Bounds(board.W, board.H))
	draw.Draw(img, img.Bounds(), image.NewUniform(Background), image.Point{}, draw.Src)
	c.Paint(img, board)
	return img
}

// Paint draws every visible cell of board onto dst.
func (c *Canvas) Paint(dst *image.RGBA, board *colorlife.Board) {
	off := Point{float64(c.Margin), float64(c.Margin)}
	for y := 0; y < board.H; y++ {
		for x := 0; x < board.W; x++ {
			cell := board.At(x, y)
			if cell.Drop == colorlife.DropUnset {
				continue
			}
			c.fill(dst, c.Tess.Shape(x, y, c.Scale), off, image.NewUniform(c.Fade.CellColor(cell)))
		}
	}
}

// fill rasterizes one shape through a rasterizer sized to its bounding box.
func (c *Canvas) fill(dst *image.RGBA, s Shape, off Point, src image.Image) {
	lo, hi := s.Bounds()
	r := image.Rect(
		int(math.Floor(lo.X+off.X)), int(math.Floor(lo.Y+off.Y)),
		int(math.Ceil(hi.X+off.X)), int(math.Ceil(hi.Y+off.Y)),
	).Intersect(dst.Bounds())
	if r.Empty() {
		return
	}
	// Shapes clipped at the top or left edge still need their full outline,
	// so coordinates are expressed relative to the clipped rectangle.
	dx := off.X - float64(r.Min.X)
	dy := off.Y - float64(r.Min.Y)
	c.z.Reset(r.Dx(), r.Dy())
	if s.Circle() {
		circlePath(&c.z, float32(s.Center.X+dx), float32(s.Center.Y+dy), float32(s.Radius))
	} else {
		for i, p := range s.Points {
			px, py := float32(p.X+dx), float32(p.Y+dy)
			if i == 0 {
				c.z.MoveTo(px, py)
			} else {
				c.z.LineTo(px, py)
			}
		}
	}
	c.z.ClosePath()
	c.z.Draw(dst, r, src, image.Point{})
}

func circlePath(z *vector.Rasterizer, cx, cy, r float32) {
	k := r * kappa
	z.MoveTo(cx+r, cy)
	z.CubeTo(cx+r, cy+k, cx+k, cy+r, cx, cy+r)
	z.CubeTo(cx-k, cy+r, cx-r, cy+k, cx-r, cy)
	z.CubeTo(cx-r, cy-k, cx-k, cy-r, cx, cy-r)
	z.CubeTo(cx+k, cy-r, cx+r, cy-k, cx+r, cy)
}
