package colorlife

import (
	"fmt"

	"colorlife/internal/core"
)

// DropUnset marks a cell that has never been computed by a step.
const DropUnset = -1

// Cell is one site of the board.
//
// Hue is in degrees on [0, 360) and only meaningful once the cell has
// been alive. Drop is 0 while alive and at the moment of death, counts
// dead generations afterwards, and stays DropUnset for cells that have
// never been stepped.
type Cell struct {
	Hue  float64
	Life bool
	Drop int
}

// Board is the toroidal cell grid used by the engine.
type Board = core.Grid[Cell]

// NewBoard allocates a board with random hues, no live cells and every
// drop counter unset.
func NewBoard(w, h int, rng *core.RNG) *Board {
	b := core.NewGrid[Cell](w, h)
	clearBoard(b, rng)
	return b
}

func clearBoard(b *Board, rng *core.RNG) {
	cells := b.Cells()
	for i := range cells {
		cells[i] = Cell{Hue: rng.Float64() * 360, Drop: DropUnset}
	}
}

// seedBoard flips floor(w*h*density) randomly chosen cells alive. Cells are
// sampled independently with replacement, so the live count may be lower.
func seedBoard(b *Board, density float64, rng *core.RNG) int {
	cells := b.Cells()
	n := int(float64(len(cells)) * density)
	alive := 0
	for i := 0; i < n; i++ {
		x := rng.IntN(b.W)
		y := rng.IntN(b.H)
		c := &cells[b.Index(x, y)]
		if !c.Life {
			alive++
		}
		c.Life = true
		c.Drop = 0
	}
	return alive
}

// Coord identifies a cell. The zero value means "no cell", which is how a
// generation without births reports its first birth.
type Coord struct {
	X, Y  int
	valid bool
}

// At returns the coordinate (x, y).
func At(x, y int) Coord { return Coord{X: x, Y: y, valid: true} }

// Valid reports whether c names a cell.
func (c Coord) Valid() bool { return c.valid }

func (c Coord) String() string {
	if !c.valid {
		return "none"
	}
	return fmt.Sprintf("%d,%d", c.X, c.Y)
}
