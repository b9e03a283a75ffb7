package filter

import "golang.org/x/image/draw"

// Kernel adapts a golang.org/x/image/draw resampling kernel into a separable
// reconstruction filter. The kernel's support is stretched by scale along each
// axis, so the filter radius is Support*scale.
type Kernel struct {
	kernel           *draw.Kernel
	scaleX, scaleY   float32
	radiusX, radiusY float32
}

// NewKernel wraps k, scaling its support by scaleX and scaleY
func NewKernel(k *draw.Kernel, scaleX, scaleY float32) *Kernel {
	return &Kernel{
		kernel:  k,
		scaleX:  scaleX,
		scaleY:  scaleY,
		radiusX: float32(k.Support) * scaleX,
		radiusY: float32(k.Support) * scaleY,
	}
}

// CatmullRom returns the Catmull-Rom cubic from x/image/draw with radius 2
func CatmullRom() *Kernel {
	return NewKernel(draw.CatmullRom, 1, 1)
}

func (f *Kernel) Radius() (float32, float32) {
	return f.radiusX, f.radiusY
}

func (f *Kernel) Evaluate(dx, dy float32) float32 {
	return f.at(dx, f.scaleX) * f.at(dy, f.scaleY)
}

// at evaluates one axis; draw.Kernel.At is only defined on [0, Support)
func (f *Kernel) at(d, scale float32) float32 {
	t := float64(abs(d) / scale)
	if t >= f.kernel.Support {
		return 0
	}
	return float32(f.kernel.At(t))
}
