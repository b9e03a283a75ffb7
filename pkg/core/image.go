package core

import (
	"image"
	"image/color"
)

// ToRGBA converts a color raster to an 8-bit image with gamma correction and clamping.
// The image bounds match the raster's rectangle.
func ToRGBA(r *Raster[Color], gamma float64) *image.RGBA {
	rect := r.Rectangle()
	img := image.NewRGBA(image.Rect(rect.Left, rect.Top, rect.Right, rect.Bottom))

	for x, y := range rect.Indices() {
		c := r.Get(x, y).GammaCorrect(gamma).Clamp(0, 1)
		img.SetRGBA(x, y, color.RGBA{
			R: uint8(255 * c.R),
			G: uint8(255 * c.G),
			B: uint8(255 * c.B),
			A: 255,
		})
	}

	return img
}

// ToGray converts a scalar raster to an 8-bit grayscale image, clamping to [0, 1]
func ToGray(r *Raster[Scalar]) *image.Gray {
	rect := r.Rectangle()
	img := image.NewGray(image.Rect(rect.Left, rect.Top, rect.Right, rect.Bottom))

	for x, y := range rect.Indices() {
		v := max(0, min(1, float32(r.Get(x, y))))
		img.SetGray(x, y, color.Gray{Y: uint8(255 * v)})
	}

	return img
}
