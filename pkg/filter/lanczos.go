package filter

import "math"

// LanczosSinc is a sinc filter windowed by a wider sinc lobe of width tau
type LanczosSinc struct {
	radiusX, radiusY float32
	tau              float32
}

// NewLanczosSinc creates a windowed sinc filter
func NewLanczosSinc(radiusX, radiusY, tau float32) *LanczosSinc {
	return &LanczosSinc{radiusX: radiusX, radiusY: radiusY, tau: tau}
}

// DefaultLanczosSinc returns a filter with radius 4 and tau 3
func DefaultLanczosSinc() *LanczosSinc {
	return NewLanczosSinc(4, 4, 3)
}

func (f *LanczosSinc) Radius() (float32, float32) {
	return f.radiusX, f.radiusY
}

func (f *LanczosSinc) Evaluate(dx, dy float32) float32 {
	return f.windowedSinc(dx, f.radiusX) * f.windowedSinc(dy, f.radiusY)
}

func (f *LanczosSinc) windowedSinc(v, radius float32) float32 {
	v = abs(v)
	if v > radius {
		return 0
	}
	return sinc(v) * sinc(v/f.tau)
}

func sinc(v float32) float32 {
	v = abs(v)
	if v < 1e-5 {
		return 1
	}
	w := math.Pi * float64(v)
	return float32(math.Sin(w) / w)
}
