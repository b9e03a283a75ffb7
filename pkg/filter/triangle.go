package filter

// Triangle falls off linearly from the centre to zero at the radius
type Triangle struct {
	radiusX, radiusY float32
}

// NewTriangle creates a triangle filter with the given radii
func NewTriangle(radiusX, radiusY float32) *Triangle {
	return &Triangle{radiusX: radiusX, radiusY: radiusY}
}

// DefaultTriangle returns a triangle filter with radius 2
func DefaultTriangle() *Triangle {
	return NewTriangle(2, 2)
}

func (f *Triangle) Radius() (float32, float32) {
	return f.radiusX, f.radiusY
}

func (f *Triangle) Evaluate(dx, dy float32) float32 {
	return max(0, f.radiusX-abs(dx)) * max(0, f.radiusY-abs(dy))
}
