package ui

import (
	"fmt"

	"colorlife/internal/sims/colorlife"
)

// statusSource is the read-only view of the engine the overlay needs.
type statusSource interface {
	Stats() colorlife.Stats
	Stall() colorlife.StallState
	Phase() colorlife.Phase
	Params() colorlife.Params
}

// statusLine summarises the run in one line of text.
func statusLine(src statusSource) string {
	st := src.Stats()
	return fmt.Sprintf("gen %d  alive %d  born %d  died %d  reseeds %d  %s",
		st.Generation, st.Alive, st.Last.Born, st.Last.Died, st.Reseeds, src.Phase())
}

// stallProgress returns how close the detector is to a reseed, in [0, 1].
func stallProgress(src statusSource) float64 {
	threshold := src.Params().StallThreshold
	if threshold <= 0 {
		return 0
	}
	p := float64(src.Stall().Count) / float64(threshold)
	if p > 1 {
		return 1
	}
	return p
}
