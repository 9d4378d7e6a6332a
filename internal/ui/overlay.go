//go:build ebiten

package ui

import (
	"image"
	"image/color"

	"colorlife/internal/render"
	"colorlife/internal/sims/colorlife"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// Overlay draws optional diagnostics on top of the board: a status strip
// with the stall detector's progress and a marker on the latest first
// birth.
type Overlay struct {
	world  *colorlife.World
	canvas *render.Canvas

	showStatus bool
	showBirth  bool

	// last loaded save, shown for thumbFrames frames
	thumb      *ebiten.Image
	thumbLabel string
	thumbLeft  int
}

const (
	thumbFrames = 180
	thumbWidth  = 120
)

// NewOverlay constructs an overlay for world drawn with canvas geometry.
func NewOverlay(world *colorlife.World, canvas *render.Canvas) *Overlay {
	return &Overlay{world: world, canvas: canvas, showStatus: true}
}

// Update toggles overlay layers.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.showStatus = !o.showStatus
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit2) {
		o.showBirth = !o.showBirth
	}
	if o.thumbLeft > 0 {
		o.thumbLeft--
	}
}

// ShowSave flashes the id and image of a loaded save in the corner of the
// board. img may be nil when the save has no picture.
func (o *Overlay) ShowSave(id string, img image.Image) {
	if o.thumb != nil {
		o.thumb.Dispose()
		o.thumb = nil
	}
	if img != nil {
		o.thumb = ebiten.NewImageFromImage(img)
	}
	o.thumbLabel = "loaded " + id
	o.thumbLeft = thumbFrames
}

// Draw renders the enabled layers. width is the board area in pixels.
func (o *Overlay) Draw(screen *ebiten.Image, width int) {
	if o.showBirth {
		o.drawFirstBirth(screen)
	}
	if o.showStatus {
		o.drawStatus(screen, width)
	}
	if o.thumbLeft > 0 {
		o.drawSave(screen, width)
	}
}

func (o *Overlay) drawSave(screen *ebiten.Image, width int) {
	size := o.world.Size()
	height := o.canvas.Bounds(size.W, size.H).Dy()
	x, y := float64(width-thumbWidth-8), float64(height-20)
	if o.thumb != nil {
		b := o.thumb.Bounds()
		scale := float64(thumbWidth) / float64(b.Dx())
		y -= float64(b.Dy()) * scale
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(scale, scale)
		op.GeoM.Translate(x, y)
		screen.DrawImage(o.thumb, op)
		vector.StrokeRect(screen, float32(x), float32(y), thumbWidth, float32(float64(b.Dy())*scale), 1, color.White, false)
	}
	text.Draw(screen, o.thumbLabel, basicfont.Face7x13, int(x), height-6, color.White)
}

func (o *Overlay) drawStatus(screen *ebiten.Image, width int) {
	const (
		stripHeight = 20
		barHeight   = 3
	)
	vector.DrawFilledRect(screen, 0, 0, float32(width), stripHeight, color.RGBA{A: 170}, false)
	text.Draw(screen, statusLine(o.world), basicfont.Face7x13, 6, 14, color.RGBA{R: 220, G: 220, B: 230, A: 255})

	progress := stallProgress(o.world)
	if progress <= 0 {
		return
	}
	bar := color.RGBA{R: 90, G: 170, B: 230, A: 255}
	if o.world.Phase() != colorlife.PhaseRunning || progress > 0.8 {
		bar = color.RGBA{R: 240, G: 120, B: 60, A: 255}
	}
	vector.DrawFilledRect(screen, 0, stripHeight-barHeight, float32(progress*float64(width)), barHeight, bar, false)
}

func (o *Overlay) drawFirstBirth(screen *ebiten.Image) {
	fb := o.world.Stats().Last.FirstBirth
	if !fb.Valid() {
		return
	}
	s := o.canvas.Tess.Shape(fb.X, fb.Y, o.canvas.Scale)
	lo, hi := s.Bounds()
	r := float32(hi.X-lo.X)/2 + 3
	off := float32(o.canvas.Margin)
	vector.StrokeCircle(screen, float32(s.Center.X)+off, float32(s.Center.Y)+off, r, 2, color.White, true)
}
