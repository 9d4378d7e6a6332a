package render

import (
	"errors"
	"fmt"
	"math"
)

// ErrUnknownTessellation is returned by Lookup for unregistered names.
var ErrUnknownTessellation = errors.New("unknown tessellation")

// sq3 is the column pitch of hexagonal layouts relative to the row height.
var sq3 = 2 / math.Sqrt(3)

// Point is a position in canvas pixels.
type Point struct{ X, Y float64 }

// Shape is the outline of one cell. Circular cells set Radius and leave
// Points empty.
type Shape struct {
	Points []Point
	Center Point
	Radius float64
}

// Circle reports whether the shape is a circle.
func (s Shape) Circle() bool { return s.Radius > 0 && len(s.Points) == 0 }

// Bounds returns the axis-aligned bounding box of the shape.
func (s Shape) Bounds() (min, max Point) {
	if s.Circle() {
		return Point{s.Center.X - s.Radius, s.Center.Y - s.Radius},
			Point{s.Center.X + s.Radius, s.Center.Y + s.Radius}
	}
	if len(s.Points) == 0 {
		return Point{}, Point{}
	}
	min, max = s.Points[0], s.Points[0]
	for _, p := range s.Points[1:] {
		min.X = math.Min(min.X, p.X)
		min.Y = math.Min(min.Y, p.Y)
		max.X = math.Max(max.X, p.X)
		max.Y = math.Max(max.Y, p.Y)
	}
	return min, max
}

// Tessellation places grid cells on the canvas. The logical neighbourhood
// is always the square Moore neighbourhood; only the drawing changes.
type Tessellation interface {
	Name() string
	// Columns returns how many columns fill a view of viewPx pixels in
	// height at the given scale.
	Columns(viewPx, scale float64) int
	// Extent returns the canvas size needed for a w*h board.
	Extent(w, h int, scale float64) (float64, float64)
	// Shape returns the outline of cell (x, y).
	Shape(x, y int, scale float64) Shape
}

// Rows returns how many rows fill a view of viewPx pixels at scale.
func Rows(viewPx, scale float64) int {
	if scale <= 0 {
		return 0
	}
	return int(viewPx / scale)
}

func columns(viewPx, scale, factor float64) int {
	if scale <= 0 {
		return 0
	}
	return int(viewPx / scale * factor)
}

type squares struct{}

func (squares) Name() string { return "squares" }

func (squares) Columns(viewPx, scale float64) int { return columns(viewPx, scale, 1) }

func (squares) Extent(w, h int, scale float64) (float64, float64) {
	return float64(w) * scale, float64(h) * scale
}

func (squares) Shape(x, y int, scale float64) Shape {
	px, py := float64(x)*scale, float64(y)*scale
	return Shape{
		Points: []Point{{px, py}, {px + scale, py}, {px + scale, py + scale}, {px, py + scale}},
		Center: Point{px + scale/2, py + scale/2},
	}
}

// triangles alternates up and down pointing cells along each row.
// Symmetric rows share the same horizontal phase; otherwise odd rows are
// shifted by half a triangle. FlipRight swaps the orientation on even rows.
type triangles struct {
	name      string
	symmetric bool
	flipRight bool
}

func (t triangles) Name() string { return t.name }

func (triangles) Columns(viewPx, scale float64) int { return columns(viewPx, scale, 2*sq3) }

func (t triangles) Extent(w, h int, scale float64) (float64, float64) {
	pad := 1.0
	if t.flipRight || t.symmetric {
		pad = 0.5
	}
	return (float64(w)/2 + pad) * sq3 * scale, float64(h) * scale
}

func (t triangles) Shape(x, y int, scale float64) Shape {
	xs := scale * sq3
	oddRow := y%2 == 1

	down := x%2 == 1
	if t.flipRight {
		down = (x%2 == 1) != oddRow
	}
	px := float64(x) * xs / 2
	if !down {
		px += xs / 2
	}
	if t.flipRight && oddRow {
		px -= xs / 2
	}
	if !t.symmetric && oddRow {
		px += xs / 2
	}
	py := float64(y) * scale

	var pts []Point
	if down {
		pts = []Point{{px, py}, {px + xs, py}, {px + xs/2, py + scale}}
	} else {
		pts = []Point{{px, py}, {px + xs/2, py + scale}, {px - xs/2, py + scale}}
	}
	return Shape{Points: pts, Center: centroid(pts)}
}

type circles struct{}

func (circles) Name() string { return "circles" }

func (circles) Columns(viewPx, scale float64) int { return columns(viewPx, scale, sq3) }

func (circles) Extent(w, h int, scale float64) (float64, float64) {
	return scale * sq3 * (float64(w) + 0.5), scale * (float64(h) + 1.0/6)
}

func (circles) Shape(x, y int, scale float64) Shape {
	px, py := offsetRow(x, y, scale)
	xs := scale * sq3
	return Shape{Center: Point{px + xs/2, py + xs/2}, Radius: xs / 2}
}

// hexCorners holds the unit hexagon, pointy side up, offset so its
// bounding box starts at the origin.
var hexCorners = func() [6]Point {
	var pts [6]Point
	off := 1 / math.Sqrt(3)
	for i := range pts {
		t := math.Pi*2/6*float64(i) + math.Pi/2
		pts[i] = Point{math.Cos(t)*off + 0.5, math.Sin(t)*off + off}
	}
	return pts
}()

type hexagons struct{}

func (hexagons) Name() string { return "hexagons" }

func (hexagons) Columns(viewPx, scale float64) int { return columns(viewPx, scale, sq3) }

func (hexagons) Extent(w, h int, scale float64) (float64, float64) {
	return scale * sq3 * (float64(w) + 0.5), scale * (float64(h) + 1.0/3)
}

func (hexagons) Shape(x, y int, scale float64) Shape {
	px, py := offsetRow(x, y, scale)
	xs := scale * sq3
	pts := make([]Point, len(hexCorners))
	for i, c := range hexCorners {
		pts[i] = Point{px + c.X*xs, py + c.Y*xs}
	}
	return Shape{Points: pts, Center: Point{px + xs/2, py + xs/math.Sqrt(3)}}
}

// offsetRow returns the top-left anchor for hex-packed layouts where odd
// rows shift right by half a column.
func offsetRow(x, y int, scale float64) (float64, float64) {
	xs := scale * sq3
	px := float64(x) * xs
	if y%2 == 1 {
		px += xs / 2
	}
	return px, float64(y) * scale
}

func centroid(pts []Point) Point {
	var c Point
	for _, p := range pts {
		c.X += p.X
		c.Y += p.Y
	}
	n := float64(len(pts))
	return Point{c.X / n, c.Y / n}
}

var tessellations = []Tessellation{
	squares{},
	triangles{name: "triangles"},
	triangles{name: "triangles-flip", flipRight: true},
	triangles{name: "triangles-symmetric", symmetric: true},
	circles{},
	hexagons{},
}

// DefaultTessellation is used when no tessellation is named.
const DefaultTessellation = "squares"

// Tessellations returns the registered tessellation names in cycling order.
func Tessellations() []string {
	names := make([]string, len(tessellations))
	for i, t := range tessellations {
		names[i] = t.Name()
	}
	return names
}

// Lookup returns the tessellation registered under name. An empty name
// selects DefaultTessellation.
func Lookup(name string) (Tessellation, error) {
	if name == "" {
		name = DefaultTessellation
	}
	for _, t := range tessellations {
		if t.Name() == name {
			return t, nil
		}
	}
	return nil, fmt.Errorf("%w %q", ErrUnknownTessellation, name)
}

// Next returns the tessellation following t in cycling order.
func Next(t Tessellation) Tessellation {
	for i, cand := range tessellations {
		if cand.Name() == t.Name() {
			return tessellations[(i+1)%len(tessellations)]
		}
	}
	return tessellations[0]
}
