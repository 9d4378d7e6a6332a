package colorlife

import (
	"math"

	"colorlife/internal/core"
)

// Summary records what one generation changed.
type Summary struct {
	Born int
	Died int
	// FirstBirth is the first birth in scan order, or the zero Coord when
	// nothing was born.
	FirstBirth Coord
}

// Alive is the Life rule: birth on exactly 3 neighbours, survival on 2 or 3.
func Alive(self bool, count int) bool {
	return count == 3 || (self && count == 2)
}

// Transition computes the next state of the cell at (x, y) from its
// current state and its eight neighbours, recording deaths and births
// in sum. The rng is only consulted for the mutation of a newborn hue.
func Transition(cell Cell, neighbors [8]Cell, x, y int, p Params, rng *core.RNG, sum *Summary) Cell {
	var hues [8]float64
	count := 0
	for _, n := range neighbors {
		if n.Life {
			hues[count] = n.Hue
			count++
		}
	}

	if !Alive(cell.Life, count) {
		next := Cell{Hue: cell.Hue, Drop: cell.Drop}
		switch {
		case cell.Life:
			sum.Died++
			next.Drop = 0
		case cell.Drop != DropUnset:
			next.Drop++
		}
		return next
	}
	if cell.Life {
		return cell
	}

	if !sum.FirstBirth.Valid() {
		sum.FirstBirth = At(x, y)
	}
	sum.Born++
	extra := Mutation(rng, p.MutateMin, p.MutateMax) / 180 * math.Pi
	return Cell{Hue: blendHue(hues[:count], extra), Life: true}
}

// Step writes the next generation of src into dst and returns the change
// summary. Cells are visited row by row. src and dst must have equal
// dimensions and must not alias.
func Step(src, dst *Board, p Params, rng *core.RNG) Summary {
	var sum Summary
	out := dst.Cells()
	for y := 0; y < src.H; y++ {
		for x := 0; x < src.W; x++ {
			out[dst.Index(x, y)] = Transition(src.At(x, y), src.Neighbors(x, y), x, y, p, rng, &sum)
		}
	}
	return sum
}
