package filter

import "math"

// Gaussian is a separable Gaussian kernel shifted down so it reaches zero at the radius
type Gaussian struct {
	radiusX, radiusY float32
	sigma            float32
	edgeX, edgeY     float32 // kernel value at the radius
}

// NewGaussian creates a Gaussian filter with standard deviation sigma
func NewGaussian(radiusX, radiusY, sigma float32) *Gaussian {
	return &Gaussian{
		radiusX: radiusX,
		radiusY: radiusY,
		sigma:   sigma,
		edgeX:   gaussian(radiusX, sigma),
		edgeY:   gaussian(radiusY, sigma),
	}
}

// DefaultGaussian returns a Gaussian filter with radius 1.5 and sigma 0.5
func DefaultGaussian() *Gaussian {
	return NewGaussian(1.5, 1.5, 0.5)
}

func (f *Gaussian) Radius() (float32, float32) {
	return f.radiusX, f.radiusY
}

func (f *Gaussian) Evaluate(dx, dy float32) float32 {
	if abs(dx) > f.radiusX || abs(dy) > f.radiusY {
		return 0
	}
	return max(0, gaussian(dx, f.sigma)-f.edgeX) * max(0, gaussian(dy, f.sigma)-f.edgeY)
}

// gaussian evaluates the normal density with mean 0 at d
func gaussian(d, sigma float32) float32 {
	s := float64(sigma)
	v := float64(d)
	return float32(math.Exp(-v*v/(2*s*s)) / math.Sqrt(2*math.Pi*s*s))
}
