package render

import (
	"image"

	"colorlife/internal/sims/colorlife"
)

// fillCellsRGBA converts cells into RGBA pixels in buf, one pixel per cell.
func fillCellsRGBA(buf []byte, cells []colorlife.Cell, fade Fade) {
	for i, c := range cells {
		col := fade.CellColor(c)
		base := i * 4
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}

// CellImage renders the board at one pixel per cell with square geometry.
func CellImage(board *colorlife.Board, fade Fade) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, board.W, board.H))
	fillCellsRGBA(img.Pix, board.Cells(), fade)
	return img
}
