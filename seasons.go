package seasons

import (
	"errors"
	"image/color"
	"math/rand/v2"
)

// ErrInvalidSize is returned when a width, height or point size is not
// positive.
var ErrInvalidSize = errors.New("seasons: invalid size")

// Default logical drawing area. The origin is at the bottom-left corner with
// Y increasing upward.
const (
	DefaultWidth  = 800
	DefaultHeight = 600
)

// Color represents an opaque RGB color with components in [0, 1].
type Color struct {
	R, G, B float64
}

// Common colors used by the scene.
var (
	ColorBlack  = Color{0, 0, 0}
	ColorWhite  = Color{1, 1, 1}
	ColorYellow = Color{1, 1, 0}
	ColorRed    = Color{1, 0, 0}
	ColorBlue   = Color{0, 0, 1}
)

// RGBA8 converts c to an 8-bit opaque color.RGBA. Components outside [0, 1]
// are clamped.
func (c Color) RGBA8() color.RGBA {
	return color.RGBA{
		R: channel8(c.R),
		G: channel8(c.G),
		B: channel8(c.B),
		A: 0xff,
	}
}

func channel8(v float64) uint8 {
	return uint8(clamp01(v)*255 + 0.5)
}

// clamp01 clamps v to [0, 1].
func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Point is an integer pixel coordinate in the logical drawing area.
type Point struct {
	X, Y int
}

// IntRange is an inclusive integer range used for particle jitter and stamp
// sizes.
type IntRange struct {
	Min, Max int
}

// Random returns a uniformly distributed integer in [Min, Max] drawn from rng.
func (r IntRange) Random(rng *rand.Rand) int {
	if r.Max <= r.Min {
		return r.Min
	}
	return r.Min + rng.IntN(r.Max-r.Min+1)
}

// NewRand returns a PCG-backed generator. A zero seed is valid and
// reproducible; callers wanting varied runs pass a time-derived seed.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
