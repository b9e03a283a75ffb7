package core

import "iter"

// Logger interface for renderer logging
type Logger interface {
	Printf(format string, args ...interface{})
}

// Filter is a reconstruction kernel that weights a sample's influence on a pixel
type Filter interface {
	// Radius returns the half-extent of the filter support along x and y
	Radius() (float32, float32)

	// Evaluate returns the weight at offset (dx, dy) from the sample.
	// It must return 0 when |dx| > rx or |dy| > ry.
	Evaluate(dx, dy float32) float32
}

// Sampler produces tiled sequences of sub-pixel samples over a pixel domain
type Sampler interface {
	// Rectangle returns the full sampling domain in absolute pixel indices
	Rectangle() Rectangle

	// SamplesPerPixel returns how many samples every pixel receives
	SamplesPerPixel() int

	// Tiles partitions the domain into countX by countY tiles. It panics if a
	// count is less than one or greater than the domain's extent.
	Tiles(countX, countY int) iter.Seq[Tile]
}

// Tile is a sub-rectangle of a sampler's domain with the samples confined to it
type Tile interface {
	Rectangle() Rectangle

	// SampleCount returns the number of samples Samples will yield
	SampleCount() int

	// Samples yields pixels in row-major order, all samples of a pixel
	// consecutively. A tile is single-pass: it is drained once by one goroutine.
	Samples() iter.Seq[PixelSample]
}

// Value is a quantity that can be weighted, accumulated and normalized.
// The zero value of V is the additive identity.
type Value[V any] interface {
	Add(other V) V
	Scale(weight float32) V
	Div(weight float32) V
}
