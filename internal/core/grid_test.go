package core

import (
	"slices"
	"testing"
)

func TestNeighborsWrapBothAxes(t *testing.T) {
	g := NewGrid[int](3, 3)
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			g.Set(x, y, g.Index(x, y))
		}
	}
	n := g.Neighbors(0, 0)
	got := n[:]
	slices.Sort(got)
	want := []int{1, 2, 3, 4, 5, 6, 7, 8}
	if !slices.Equal(got, want) {
		t.Fatalf("neighbours of (0,0) = %v, expected %v", got, want)
	}
	if !slices.Contains(got, g.Index(2, 2)) {
		t.Fatal("expected (2,2) among the neighbours of (0,0)")
	}
}

func TestNeighborsInterior(t *testing.T) {
	g := NewGrid[int](4, 4)
	for i := range g.Cells() {
		g.Cells()[i] = i
	}
	n := g.Neighbors(1, 1)
	got := n[:]
	slices.Sort(got)
	want := []int{0, 1, 2, 4, 6, 8, 9, 10}
	if !slices.Equal(got, want) {
		t.Fatalf("neighbours of (1,1) = %v, expected %v", got, want)
	}
}

func TestWrapCoord(t *testing.T) {
	cases := []struct{ v, max, want int }{
		{-1, 5, 4},
		{5, 5, 0},
		{0, 5, 0},
		{4, 5, 4},
		{-1, 1, 0},
		{1, 1, 0},
	}
	for _, tc := range cases {
		if got := WrapCoord(tc.v, tc.max); got != tc.want {
			t.Fatalf("WrapCoord(%d, %d) = %d, expected %d", tc.v, tc.max, got, tc.want)
		}
	}
}

func TestNewGridClampsDimensions(t *testing.T) {
	g := NewGrid[bool](0, -2)
	if g.W != 1 || g.H != 1 || len(g.Cells()) != 1 {
		t.Fatalf("expected a 1x1 grid, got %dx%d", g.W, g.H)
	}
	g.Fill(true)
	for _, v := range g.Neighbors(0, 0) {
		if !v {
			t.Fatal("a 1x1 grid should see itself in every direction")
		}
	}
}
