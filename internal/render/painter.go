//go:build ebiten

package render

import (
	"image"
	"image/color"
	"math"

	"colorlife/internal/sims/colorlife"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// maxBatchVertices keeps a triangle batch inside uint16 index range.
const maxBatchVertices = 60000

var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

// GridPainter draws a colorlife board onto an ebiten image. Square
// tessellations upload one pixel per cell and scale the image; other
// tessellations are drawn as batched coloured triangles.
type GridPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte

	vs []ebiten.Vertex
	is []uint16
}

// NewGridPainter allocates a painter for a grid of size w*h.
func NewGridPainter(w, h int) *GridPainter {
	gp := &GridPainter{w: w, h: h, buf: make([]byte, 4*w*h)}
	gp.img = ebiten.NewImage(w, h)
	return gp
}

// Size returns the grid dimensions the painter was built for.
func (gp *GridPainter) Size() (int, int) { return gp.w, gp.h }

// Draw paints board onto dst using the canvas geometry.
func (gp *GridPainter) Draw(dst *ebiten.Image, board *colorlife.Board, c *Canvas) {
	if w, h := gp.Size(); board.W != w || board.H != h {
		return
	}
	if _, ok := c.Tess.(squares); ok {
		gp.blit(dst, board, c)
		return
	}
	off := float32(c.Margin)
	for y := 0; y < board.H; y++ {
		for x := 0; x < board.W; x++ {
			cell := board.At(x, y)
			if cell.Drop == colorlife.DropUnset {
				continue
			}
			gp.appendShape(c.Tess.Shape(x, y, c.Scale), off, c.Fade.CellColor(cell))
			if len(gp.vs) >= maxBatchVertices {
				gp.flush(dst)
			}
		}
	}
	gp.flush(dst)
}

func (gp *GridPainter) blit(dst *ebiten.Image, board *colorlife.Board, c *Canvas) {
	fillCellsRGBA(gp.buf, board.Cells(), c.Fade)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(c.Scale, c.Scale)
	op.GeoM.Translate(float64(c.Margin), float64(c.Margin))
	dst.DrawImage(gp.img, op)
}

func (gp *GridPainter) appendShape(s Shape, off float32, col color.RGBA) {
	base := len(gp.vs)
	if s.Circle() {
		var p vector.Path
		p.Arc(float32(s.Center.X)+off, float32(s.Center.Y)+off, float32(s.Radius), 0, 2*math.Pi, vector.Clockwise)
		p.Close()
		gp.vs, gp.is = p.AppendVerticesAndIndicesForFilling(gp.vs, gp.is)
	} else {
		for _, pt := range s.Points {
			gp.vs = append(gp.vs, ebiten.Vertex{DstX: float32(pt.X) + off, DstY: float32(pt.Y) + off})
		}
		for i := 1; i+1 < len(s.Points); i++ {
			gp.is = append(gp.is, uint16(base), uint16(base+i), uint16(base+i+1))
		}
	}
	r, g, b := float32(col.R)/255, float32(col.G)/255, float32(col.B)/255
	for i := base; i < len(gp.vs); i++ {
		v := &gp.vs[i]
		v.SrcX, v.SrcY = 1, 1
		v.ColorR, v.ColorG, v.ColorB, v.ColorA = r, g, b, 1
	}
}

func (gp *GridPainter) flush(dst *ebiten.Image) {
	if len(gp.is) > 0 {
		op := &ebiten.DrawTrianglesOptions{AntiAlias: true}
		dst.DrawTriangles(gp.vs, gp.is, whiteSubImage, op)
	}
	gp.vs = gp.vs[:0]
	gp.is = gp.is[:0]
}
