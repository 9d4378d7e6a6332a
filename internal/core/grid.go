package core

// Moore lists the eight neighbour offsets as (dx, dy) pairs.
var Moore = [8][2]int{
	{-1, -1},
	{-1, 0},
	{-1, 1},
	{0, -1},
	{0, 1},
	{1, -1},
	{1, 0},
	{1, 1},
}

// Grid stores a 2D toroidal grid of cell values in row-major order.
// Dimensions are fixed for the lifetime of the grid.
type Grid[T any] struct {
	W, H int
	data []T
}

// NewGrid allocates a grid with the given dimensions.
func NewGrid[T any](w, h int) *Grid[T] {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &Grid[T]{W: w, H: h, data: make([]T, w*h)}
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *Grid[T]) Cells() []T { return g.data }

// Index returns the linear slice index for coordinates (x, y).
func (g *Grid[T]) Index(x, y int) int { return y*g.W + x }

// At returns the value at (x, y). Coordinates must be in range.
func (g *Grid[T]) At(x, y int) T { return g.data[y*g.W+x] }

// Set stores v at (x, y). Coordinates must be in range.
func (g *Grid[T]) Set(x, y int, v T) { g.data[y*g.W+x] = v }

// Wrap applies toroidal wrapping to coordinates at most one cell outside
// the grid.
func (g *Grid[T]) Wrap(x, y int) (int, int) {
	return WrapCoord(x, g.W), WrapCoord(y, g.H)
}

// Neighbors returns the eight Moore neighbours of (x, y) in Moore order.
// On grids narrower or shorter than 2 a cell sees itself among its
// neighbours.
func (g *Grid[T]) Neighbors(x, y int) [8]T {
	var out [8]T
	for i, d := range Moore {
		nx, ny := g.Wrap(x+d[0], y+d[1])
		out[i] = g.data[ny*g.W+nx]
	}
	return out
}

// Fill sets every cell to v.
func (g *Grid[T]) Fill(v T) {
	for i := range g.data {
		g.data[i] = v
	}
}

// WrapCoord folds v back into [0, max) assuming it is off by at most one.
func WrapCoord(v, max int) int {
	switch {
	case v < 0:
		return max - 1
	case v >= max:
		return 0
	default:
		return v
	}
}
