//go:build ebiten

package render

import (
	"testing"

	"colorlife/internal/core"
	"colorlife/internal/sims/colorlife"
)

func TestGridPainterSkipsMismatchedBoard(t *testing.T) {
	gp := NewGridPainter(6, 4)
	if w, h := gp.Size(); w != 6 || h != 4 {
		t.Fatalf("expected 6x4, got %dx%d", w, h)
	}
	// dst is never touched when the board does not match the painter.
	gp.Draw(nil, colorlife.NewBoard(5, 4, core.NewRNG(1)), NewCanvas(nil, DefaultFade(), 1, 0))
	gp.Draw(nil, colorlife.NewBoard(6, 3, core.NewRNG(1)), NewCanvas(nil, DefaultFade(), 1, 0))
}
