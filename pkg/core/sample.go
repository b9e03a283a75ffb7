package core

import "golang.org/x/image/math/f32"

// PixelSample identifies a pixel and a sub-pixel offset in [0, 1) within it
type PixelSample struct {
	PixelX, PixelY   int
	OffsetX, OffsetY float32
}

// NewPixelSample creates a sample for pixel (px, py) at offset (ox, oy)
func NewPixelSample(px, py int, ox, oy float32) PixelSample {
	return PixelSample{PixelX: px, PixelY: py, OffsetX: ox, OffsetY: oy}
}

// Pixel returns the integer pixel indices
func (s PixelSample) Pixel() (int, int) {
	return s.PixelX, s.PixelY
}

// Offset returns the sub-pixel offset
func (s PixelSample) Offset() (float32, float32) {
	return s.OffsetX, s.OffsetY
}

// Position returns the absolute sample position in pixel space
func (s PixelSample) Position() f32.Vec2 {
	return f32.Vec2{float32(s.PixelX) + s.OffsetX, float32(s.PixelY) + s.OffsetY}
}
