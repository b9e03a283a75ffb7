package core

import "math"

// Scalar is a single-channel value
type Scalar float32

// Add returns the sum of two scalars
func (s Scalar) Add(other Scalar) Scalar {
	return s + other
}

// Scale returns the scalar multiplied by weight
func (s Scalar) Scale(weight float32) Scalar {
	return s * Scalar(weight)
}

// Div returns the scalar divided by weight
func (s Scalar) Div(weight float32) Scalar {
	return s / Scalar(weight)
}

// Color is a linear RGB value
type Color struct {
	R, G, B float32
}

// NewColor creates a new Color
func NewColor(r, g, b float32) Color {
	return Color{R: r, G: g, B: b}
}

// Add returns the sum of two colors
func (c Color) Add(other Color) Color {
	return Color{c.R + other.R, c.G + other.G, c.B + other.B}
}

// Scale returns the color multiplied by a scalar
func (c Color) Scale(weight float32) Color {
	return Color{c.R * weight, c.G * weight, c.B * weight}
}

// Div returns the color divided by a scalar
func (c Color) Div(weight float32) Color {
	return Color{c.R / weight, c.G / weight, c.B / weight}
}

// Clamp returns a color with components clamped to [minVal, maxVal]
func (c Color) Clamp(minVal, maxVal float32) Color {
	return Color{
		R: max(minVal, min(maxVal, c.R)),
		G: max(minVal, min(maxVal, c.G)),
		B: max(minVal, min(maxVal, c.B)),
	}
}

// GammaCorrect applies gamma correction to color values
func (c Color) GammaCorrect(gamma float64) Color {
	invGamma := 1.0 / gamma
	return Color{
		R: float32(math.Pow(float64(max(0, c.R)), invGamma)),
		G: float32(math.Pow(float64(max(0, c.G)), invGamma)),
		B: float32(math.Pow(float64(max(0, c.B)), invGamma)),
	}
}

// Luminance returns the Rec. 709 relative luminance
func (c Color) Luminance() float32 {
	return 0.2126*c.R + 0.7152*c.G + 0.0722*c.B
}
