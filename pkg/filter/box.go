// Package filter provides reconstruction kernels for splatting samples onto pixels.
package filter

// Box weights every offset inside its support equally
type Box struct {
	radiusX, radiusY float32
}

// NewBox creates a box filter with the given radii
func NewBox(radiusX, radiusY float32) *Box {
	return &Box{radiusX: radiusX, radiusY: radiusY}
}

// DefaultBox returns a box filter covering exactly one pixel
func DefaultBox() *Box {
	return NewBox(0.5, 0.5)
}

func (f *Box) Radius() (float32, float32) {
	return f.radiusX, f.radiusY
}

func (f *Box) Evaluate(dx, dy float32) float32 {
	if abs(dx) > f.radiusX || abs(dy) > f.radiusY {
		return 0
	}
	return 1
}

func abs(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
