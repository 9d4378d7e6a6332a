package colorlife

import (
	"math"

	"colorlife/internal/core"
)

// CircularMean averages hues (degrees) as unit vectors and returns the
// direction of their sum in [0, 360). Antipodal inputs have no defined
// direction; the result then lies on the perpendicular axis.
func CircularMean(hues []float64) float64 {
	return blendHue(hues, 0)
}

// blendHue is CircularMean with an extra rotation in radians applied to the
// mean angle before it is folded back to degrees. Angles are summed
// relative to the first hue, so identical hues average to themselves
// exactly.
func blendHue(hues []float64, extra float64) float64 {
	var ref float64
	if len(hues) > 0 {
		ref = hues[0]
	}
	var x, y float64
	for _, hue := range hues {
		r := (hue - ref) / 180 * math.Pi
		x += math.Cos(r)
		y += math.Sin(r)
	}
	deg := ref + (math.Atan2(y, x)+extra)*180/math.Pi
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	if deg >= 360 {
		deg = 0
	}
	return deg
}

// Mutation draws a hue offset in degrees. With max == 0 there is no
// mutation. Otherwise the offset magnitude lies between min and max and
// its sign is random. min > max is accepted and follows the same
// arithmetic.
func Mutation(rng *core.RNG, min, max float64) float64 {
	if max == 0 {
		return 0
	}
	by := rng.Float64() - 0.5
	off := (max - min) * by
	if by < 0 {
		return off - min
	}
	return off + min
}
