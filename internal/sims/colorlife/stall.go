package colorlife

// DefaultStallThreshold is the number of consecutive unchanged generations
// after which a board counts as stalled.
const DefaultStallThreshold = 15

// StallState is the rolling history the stagnation detector compares each
// generation against. The zero value is the state right after a reseed.
type StallState struct {
	Born  int
	Died  int
	Count int
	Prev1 Coord
	Prev2 Coord
}

// Observe feeds one generation's summary to the detector and reports
// whether the board has stalled.
//
// A (born, died) pair that merely swaps its two numbers, and a first
// birth matching either of the previous two, both count as unchanged so
// that period-2 oscillators still stall.
func (s *StallState) Observe(c Summary, threshold int) bool {
	if s.birthDeathChanged(c) || s.firstBirthChanged(c) {
		*s = StallState{
			Born:  c.Born,
			Died:  c.Died,
			Prev1: c.FirstBirth,
			Prev2: s.Prev1,
		}
		return false
	}
	s.Prev2 = s.Prev1
	s.Prev1 = c.FirstBirth
	s.Count++
	return s.Count >= threshold
}

// Reset returns the detector to its post-reseed state.
func (s *StallState) Reset() { *s = StallState{} }

func (s *StallState) birthDeathChanged(c Summary) bool {
	return (c.Born != s.Born || c.Died != s.Died) &&
		!(s.Died == c.Born && s.Born == c.Died)
}

func (s *StallState) firstBirthChanged(c Summary) bool {
	return c.FirstBirth != s.Prev1 && c.FirstBirth != s.Prev2
}
