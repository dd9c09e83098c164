package core

import "math"

// Color holds four linear scalar channels (r, g, b, a).
type Color struct {
	R, G, B, A float64
}

// NewColor builds a Color from an (r, g, b, a) tuple.
func NewColor(r, g, b, a float64) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// Add returns the componentwise sum of two colors.
func (c Color) Add(other Color) Color {
	return Color{c.R + other.R, c.G + other.G, c.B + other.B, c.A + other.A}
}

// Subtract returns the componentwise difference of two colors.
func (c Color) Subtract(other Color) Color {
	return Color{c.R - other.R, c.G - other.G, c.B - other.B, c.A - other.A}
}

// Multiply returns the componentwise product of two colors, used for
// per-bounce attenuation.
func (c Color) Multiply(other Color) Color {
	return Color{c.R * other.R, c.G * other.G, c.B * other.B, c.A * other.A}
}

// Scale returns the color scaled by a scalar.
func (c Color) Scale(s float64) Color {
	return Color{c.R * s, c.G * s, c.B * s, c.A * s}
}

// IsFinite reports whether every channel is a finite float.
func (c Color) IsFinite() bool {
	return !math.IsNaN(c.R) && !math.IsInf(c.R, 0) &&
		!math.IsNaN(c.G) && !math.IsInf(c.G, 0) &&
		!math.IsNaN(c.B) && !math.IsInf(c.B, 0) &&
		!math.IsNaN(c.A) && !math.IsInf(c.A, 0)
}

// Luminance approximates perceptual brightness as (2r + 3g + b)/6.
func (c Color) Luminance() float64 {
	return (2*c.R + 3*c.G + c.B) / 6
}

// Gamma applies a per-channel square root to the r, g, b channels;
// alpha is never gamma-corrected.
func (c Color) Gamma() Color {
	return Color{math.Sqrt(c.R), math.Sqrt(c.G), math.Sqrt(c.B), c.A}
}

// Quantize clamps each channel to [0, 1], scales by 255 and truncates to
// a byte. Alpha is quantized the same way as the other channels.
func (c Color) Quantize() [4]byte {
	return [4]byte{
		quantizeChannel(c.R),
		quantizeChannel(c.G),
		quantizeChannel(c.B),
		quantizeChannel(c.A),
	}
}

func quantizeChannel(v float64) byte {
	if v < 0 {
		v = 0
	} else if v > 1 {
		v = 1
	}
	return byte(v * 255)
}

// Black is opaque black, the terminal value returned when bounce depth
// is exhausted.
var Black = Color{0, 0, 0, 1}

// Sky gradient endpoints used by the miss path of the kernel.
var (
	skyWhite = Color{1, 1, 1, 1}
	skyBlue  = Color{0.5, 0.7, 1.0, 1}
)

// Sky returns the vertical gradient sky color for a unit ray direction.
func Sky(direction Vec3) Color {
	t := 0.5 * (direction.Y + 1)
	return Color{
		R: (1-t)*skyWhite.R + t*skyBlue.R,
		G: (1-t)*skyWhite.G + t*skyBlue.G,
		B: (1-t)*skyWhite.B + t*skyBlue.B,
		A: 1,
	}
}
