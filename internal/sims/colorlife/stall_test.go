package colorlife

import "testing"

func TestStallAfterFifteenRepeats(t *testing.T) {
	var s StallState
	if s.Observe(Summary{Born: 3, Died: 0, FirstBirth: At(1, 1)}, DefaultStallThreshold) {
		t.Fatal("initial summary must not stall")
	}

	repeat := Summary{Born: 1, Died: 1, FirstBirth: At(5, 5)}
	if s.Observe(repeat, DefaultStallThreshold) {
		t.Fatal("first occurrence of a new pattern must not stall")
	}
	for i := 1; i <= 15; i++ {
		stalled := s.Observe(repeat, DefaultStallThreshold)
		if i < 15 && stalled {
			t.Fatalf("stalled early on repeat %d", i)
		}
		if i == 15 && !stalled {
			t.Fatalf("expected stall on repeat 15, count=%d", s.Count)
		}
	}
}

func TestStallNeverOnChangingCounts(t *testing.T) {
	var s StallState
	a := Summary{Born: 1, Died: 1, FirstBirth: At(5, 5)}
	b := Summary{Born: 2, Died: 1, FirstBirth: At(5, 5)}
	for i := 0; i < 200; i++ {
		c := a
		if i%2 == 1 {
			c = b
		}
		if s.Observe(c, DefaultStallThreshold) {
			t.Fatalf("stalled on generation %d although born alternates 1/2", i)
		}
		if s.Count != 0 {
			t.Fatalf("count should stay 0, got %d", s.Count)
		}
	}
}

func TestStallToleratesPeriodTwo(t *testing.T) {
	var s StallState
	a := Summary{Born: 2, Died: 3, FirstBirth: At(4, 1)}
	b := Summary{Born: 3, Died: 2, FirstBirth: At(1, 4)}

	s.Observe(a, DefaultStallThreshold)
	s.Observe(b, DefaultStallThreshold)
	if s.Count != 0 {
		t.Fatalf("history still filling, expected count 0, got %d", s.Count)
	}
	for i := 1; i <= DefaultStallThreshold; i++ {
		c := a
		if i%2 == 0 {
			c = b
		}
		stalled := s.Observe(c, DefaultStallThreshold)
		if s.Count != i {
			t.Fatalf("swapped counts and alternating first births should count as unchanged, count=%d at %d", s.Count, i)
		}
		if stalled != (i == DefaultStallThreshold) {
			t.Fatalf("generation %d stalled=%v", i, stalled)
		}
	}
}

func TestStallThirdFirstBirthResets(t *testing.T) {
	var s StallState
	a := Summary{Born: 1, Died: 1, FirstBirth: At(0, 0)}
	b := Summary{Born: 1, Died: 1, FirstBirth: At(3, 3)}
	c := Summary{Born: 1, Died: 1, FirstBirth: At(7, 2)}

	s.Observe(a, DefaultStallThreshold)
	s.Observe(b, DefaultStallThreshold)
	for i := 0; i < 6; i++ {
		if i%2 == 0 {
			s.Observe(a, DefaultStallThreshold)
		} else {
			s.Observe(b, DefaultStallThreshold)
		}
	}
	if s.Count != 6 {
		t.Fatalf("expected count 6 while alternating, got %d", s.Count)
	}

	if s.Observe(c, DefaultStallThreshold) {
		t.Fatal("a third first-birth location must not stall")
	}
	if s.Count != 0 {
		t.Fatalf("third location should reset the count, got %d", s.Count)
	}
	if s.Prev1 != At(7, 2) || s.Prev2 != At(3, 3) {
		t.Fatalf("history not shifted: prev1=%v prev2=%v", s.Prev1, s.Prev2)
	}
}

func TestStallOnBarrenBoard(t *testing.T) {
	var s StallState
	for i := 1; i <= DefaultStallThreshold; i++ {
		stalled := s.Observe(Summary{}, DefaultStallThreshold)
		if stalled != (i == DefaultStallThreshold) {
			t.Fatalf("generation %d stalled=%v", i, stalled)
		}
	}
	s.Reset()
	if s != (StallState{}) {
		t.Fatalf("Reset left state behind: %+v", s)
	}
}
