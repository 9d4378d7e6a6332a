package core

import "time"

// DefaultInterval is the tick spacing used when none is configured.
const DefaultInterval = 30 * time.Millisecond

// FixedStep spaces simulation ticks at a steady interval, independent of
// the frame rate of whatever loop polls it.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
}

// NewFixedStep constructs a FixedStep that fires every interval. The first
// poll always fires.
func NewFixedStep(interval time.Duration) *FixedStep {
	fs := &FixedStep{}
	fs.SetInterval(interval)
	fs.accumulator = fs.step
	return fs
}

// SetInterval changes the tick spacing. It is safe to call from the main loop.
func (f *FixedStep) SetInterval(interval time.Duration) {
	if interval <= 0 {
		interval = DefaultInterval
	}
	f.step = interval
}

// Interval reports the current tick spacing.
func (f *FixedStep) Interval() time.Duration { return f.step }

// ShouldStep reports whether a tick is due at now. At most one tick is
// reported per call; a backlog larger than one interval is dropped.
func (f *FixedStep) ShouldStep(now time.Time) bool {
	if f.last.IsZero() {
		f.last = now
	}
	delta := now.Sub(f.last)
	f.last = now
	f.accumulator += delta
	if f.accumulator >= f.step {
		f.accumulator -= f.step
		if f.accumulator > f.step {
			f.accumulator = f.step
		}
		return true
	}
	return false
}
