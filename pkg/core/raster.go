package core

// Raster is a dense row-major grid of elements addressed by absolute (x, y) indices
type Raster[T any] struct {
	rectangle Rectangle
	elements  []T
}

// NewRaster creates a raster covering rect with zero-valued elements
func NewRaster[T any](rect Rectangle) *Raster[T] {
	return &Raster[T]{
		rectangle: rect,
		elements:  make([]T, rect.Size()),
	}
}

// Rectangle returns the region covered by the raster
func (r *Raster[T]) Rectangle() Rectangle {
	return r.rectangle
}

// Len returns the number of elements
func (r *Raster[T]) Len() int {
	return len(r.elements)
}

// Elements returns the backing slice in row-major order
func (r *Raster[T]) Elements() []T {
	return r.elements
}

// Get returns the element at (x, y)
func (r *Raster[T]) Get(x, y int) T {
	return r.elements[r.rectangle.LinearIndex(x, y)]
}

// Set stores value at (x, y)
func (r *Raster[T]) Set(x, y int, value T) {
	r.elements[r.rectangle.LinearIndex(x, y)] = value
}

// At returns a pointer to the element at (x, y) for in-place updates
func (r *Raster[T]) At(x, y int) *T {
	return &r.elements[r.rectangle.LinearIndex(x, y)]
}

// Merge replaces every cell in the intersection of both rasters with
// combine(current, other). Cells outside the intersection are untouched.
func (r *Raster[T]) Merge(other *Raster[T], combine func(T, T) T) {
	intersection, ok := r.rectangle.Intersection(other.rectangle)
	if !ok {
		return
	}

	// Walk row by row so each row is a contiguous run in both buffers
	width := intersection.Width()
	for y := intersection.Top; y < intersection.Bottom; y++ {
		dst := r.elements[r.rectangle.LinearIndex(intersection.Left, y):][:width]
		src := other.elements[other.rectangle.LinearIndex(intersection.Left, y):][:width]
		for i := range dst {
			dst[i] = combine(dst[i], src[i])
		}
	}
}

// Map returns a new raster over the same rectangle with each element transformed
func Map[T, U any](r *Raster[T], transform func(T) U) *Raster[U] {
	elements := make([]U, len(r.elements))
	for i, e := range r.elements {
		elements[i] = transform(e)
	}
	return &Raster[U]{rectangle: r.rectangle, elements: elements}
}
