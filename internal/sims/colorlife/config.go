package colorlife

import (
	"errors"
	"fmt"
	"math"
	"strconv"
)

var (
	ErrInvalidDimensions     = errors.New("colorlife: width and height must be positive")
	ErrInvalidDensity        = errors.New("colorlife: seed density must be within [0, 1]")
	ErrInvalidMutation       = errors.New("colorlife: mutation bounds must be finite")
	ErrInvalidStepsPerTick   = errors.New("colorlife: steps per tick must be at least 1")
	ErrInvalidStallThreshold = errors.New("colorlife: stall threshold must be at least 1")
)

// Params is the parameter snapshot a tick runs with.
type Params struct {
	// SeedDensity is the fraction of cells sampled alive on reseed.
	SeedDensity float64
	// MutateMin and MutateMax bound the hue mutation in degrees.
	MutateMin float64
	MutateMax float64
	// StepsPerTick is the number of generations one tick advances.
	StepsPerTick   int
	StallThreshold int
}

// Validate reports the first malformed field.
func (p Params) Validate() error {
	if math.IsNaN(p.SeedDensity) || p.SeedDensity < 0 || p.SeedDensity > 1 {
		return fmt.Errorf("%w: got %v", ErrInvalidDensity, p.SeedDensity)
	}
	if !finite(p.MutateMin) || !finite(p.MutateMax) {
		return fmt.Errorf("%w: got [%v, %v]", ErrInvalidMutation, p.MutateMin, p.MutateMax)
	}
	if p.StepsPerTick < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidStepsPerTick, p.StepsPerTick)
	}
	if p.StallThreshold < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidStallThreshold, p.StallThreshold)
	}
	return nil
}

// Config controls the colorlife simulation dimensions.
type Config struct {
	Width  int
	Height int

	Seed int64

	Params Params
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:  96,
		Height: 64,
		Seed:   1337,
		Params: Params{
			SeedDensity:    0.3,
			MutateMin:      0,
			MutateMax:      30,
			StepsPerTick:   1,
			StallThreshold: DefaultStallThreshold,
		},
	}
}

// Validate rejects configurations the engine cannot run.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: got %dx%d", ErrInvalidDimensions, c.Width, c.Height)
	}
	return c.Params.Validate()
}

// FromMap populates the config from a string map (flag-style key/value pairs).
// Unparsable or out-of-range values keep their defaults.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["seed_density"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.Params.SeedDensity = parsed
		}
	}
	if v, ok := cfg["mutate_min"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && finite(parsed) {
			c.Params.MutateMin = parsed
		}
	}
	if v, ok := cfg["mutate_max"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && finite(parsed) {
			c.Params.MutateMax = parsed
		}
	}
	if v, ok := cfg["steps_per_tick"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 1 {
			c.Params.StepsPerTick = parsed
		}
	}
	if v, ok := cfg["stall_threshold"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 1 {
			c.Params.StallThreshold = parsed
		}
	}
	return c
}

// Map renders the config with the keys FromMap reads, so
// FromMap(c.Map()) reproduces c for any valid c.
func (c Config) Map() map[string]string {
	f := func(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }
	return map[string]string{
		"w":               strconv.Itoa(c.Width),
		"h":               strconv.Itoa(c.Height),
		"seed":            strconv.FormatInt(c.Seed, 10),
		"seed_density":    f(c.Params.SeedDensity),
		"mutate_min":      f(c.Params.MutateMin),
		"mutate_max":      f(c.Params.MutateMax),
		"steps_per_tick":  strconv.Itoa(c.Params.StepsPerTick),
		"stall_threshold": strconv.Itoa(c.Params.StallThreshold),
	}
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
