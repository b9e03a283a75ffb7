package filter

// Mitchell is the Mitchell-Netravali cubic filter with parameters B and C.
//
// Each axis is evaluated at x = 2|d|/radius: p1 applies on [0, 1], p2 on
// (1, 2], and the filter is zero beyond. The coefficients are the usual
// two-segment cubic with the common factor 1/6 folded in.
type Mitchell struct {
	radiusX, radiusY float32
	p1, p2           [4]float32
}

// NewMitchell creates a Mitchell-Netravali filter
func NewMitchell(radiusX, radiusY, b, c float32) *Mitchell {
	return &Mitchell{
		radiusX: radiusX,
		radiusY: radiusY,
		p1:      [4]float32{1 - b/3, 0, -3 + 2*b + c, 2 - 1.5*b - c},
		p2:      [4]float32{4.0/3.0*b + 4*c, -2*b - 8*c, b + 5*c, -b/6 - c},
	}
}

// DefaultMitchell returns the B = C = 1/3 filter with radius 2
func DefaultMitchell() *Mitchell {
	return NewMitchell(2, 2, 1.0/3.0, 1.0/3.0)
}

func (f *Mitchell) Radius() (float32, float32) {
	return f.radiusX, f.radiusY
}

func (f *Mitchell) Evaluate(dx, dy float32) float32 {
	return f.mitchell(dx/f.radiusX) * f.mitchell(dy/f.radiusY)
}

func (f *Mitchell) mitchell(v float32) float32 {
	x := 2 * abs(v)
	switch {
	case x <= 1:
		return cubic(f.p1, x)
	case x <= 2:
		return cubic(f.p2, x)
	default:
		return 0
	}
}

func cubic(p [4]float32, x float32) float32 {
	return p[0] + p[1]*x + p[2]*x*x + p[3]*x*x*x
}
