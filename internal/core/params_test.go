package core

import "testing"

func TestParameterControlClamp(t *testing.T) {
	c := ParameterControl{Min: 0, Max: 1, HasMin: true, HasMax: true}
	if got := c.Clamp(1.5); got != 1 {
		t.Fatalf("Clamp(1.5) = %v", got)
	}
	if got := c.Clamp(-2); got != 0 {
		t.Fatalf("Clamp(-2) = %v", got)
	}
	open := ParameterControl{Min: 1, HasMin: true}
	if got := open.ClampInt(1000); got != 1000 {
		t.Fatalf("unbounded max clamped to %d", got)
	}
	if got := open.ClampInt(-1); got != 1 {
		t.Fatalf("ClampInt(-1) = %d", got)
	}
}

func TestSnapshotLookup(t *testing.T) {
	snap := ParameterSnapshot{Groups: []ParameterGroup{
		{Name: "a", Params: []Parameter{{Key: "x", Value: "1"}}},
		{Name: "b", Params: []Parameter{{Key: "y", Value: "2"}}},
	}}
	if p, ok := snap.Lookup("y"); !ok || p.Value != "2" {
		t.Fatalf("lookup y = %+v, %v", p, ok)
	}
	if _, ok := snap.Lookup("z"); ok {
		t.Fatal("unexpected hit for z")
	}
}

func TestRNGDeterministic(t *testing.T) {
	a, b := NewRNG(42), NewRNG(42)
	for i := 0; i < 100; i++ {
		if a.Float64() != b.Float64() || a.IntN(17) != b.IntN(17) {
			t.Fatal("same seed diverged")
		}
	}
	if NewRNG(1).IntN(0) != 0 {
		t.Fatal("IntN(0) should be 0")
	}
}
