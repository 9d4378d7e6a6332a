package core

import (
	"testing"
	"time"
)

func TestFixedStepSpacing(t *testing.T) {
	fs := NewFixedStep(100 * time.Millisecond)
	start := time.Unix(1000, 0)

	if !fs.ShouldStep(start) {
		t.Fatal("first poll should fire")
	}
	if fs.ShouldStep(start.Add(40 * time.Millisecond)) {
		t.Fatal("fired before the interval elapsed")
	}
	if !fs.ShouldStep(start.Add(100 * time.Millisecond)) {
		t.Fatal("expected a tick once the interval elapsed")
	}
	if fs.ShouldStep(start.Add(120 * time.Millisecond)) {
		t.Fatal("fired twice within one interval")
	}
}

func TestFixedStepDropsBacklog(t *testing.T) {
	fs := NewFixedStep(10 * time.Millisecond)
	start := time.Unix(0, 0)
	fs.ShouldStep(start)

	later := start.Add(time.Second)
	fired := 0
	for i := 0; i < 5; i++ {
		if fs.ShouldStep(later) {
			fired++
		}
	}
	if fired > 2 {
		t.Fatalf("backlog replayed %d ticks", fired)
	}
}

func TestFixedStepDefaultInterval(t *testing.T) {
	fs := NewFixedStep(0)
	if fs.Interval() != DefaultInterval {
		t.Fatalf("expected default interval, got %v", fs.Interval())
	}
	fs.SetInterval(250 * time.Millisecond)
	if fs.Interval() != 250*time.Millisecond {
		t.Fatalf("interval not updated: %v", fs.Interval())
	}
}
