package core

import (
	"fmt"
	"iter"
)

// Rectangle is a half-open region of integer pixel indices: x in [Left, Right), y in [Top, Bottom)
type Rectangle struct {
	Left, Top, Right, Bottom int
}

// NewRectangle creates a rectangle, panicking if the bounds are malformed
func NewRectangle(left, top, right, bottom int) Rectangle {
	if left > right {
		panic(fmt.Sprintf("core: left must be less than or equal to right but %d > %d", left, right))
	}
	if top > bottom {
		panic(fmt.Sprintf("core: top must be less than or equal to bottom but %d > %d", top, bottom))
	}
	return Rectangle{Left: left, Top: top, Right: right, Bottom: bottom}
}

// Width returns the number of columns
func (r Rectangle) Width() int {
	return r.Right - r.Left
}

// Height returns the number of rows
func (r Rectangle) Height() int {
	return r.Bottom - r.Top
}

// Size returns the number of cells
func (r Rectangle) Size() int {
	return r.Width() * r.Height()
}

// IsEmpty reports whether the rectangle contains no cells
func (r Rectangle) IsEmpty() bool {
	return r.Left == r.Right || r.Top == r.Bottom
}

// Contains reports whether (x, y) lies inside the rectangle
func (r Rectangle) Contains(x, y int) bool {
	return x >= r.Left && x < r.Right && y >= r.Top && y < r.Bottom
}

// Union returns the smallest rectangle containing both rectangles
func (r Rectangle) Union(other Rectangle) Rectangle {
	return Rectangle{
		Left:   min(r.Left, other.Left),
		Top:    min(r.Top, other.Top),
		Right:  max(r.Right, other.Right),
		Bottom: max(r.Bottom, other.Bottom),
	}
}

// Intersection returns the overlapping region; ok is false when the rectangles don't overlap
func (r Rectangle) Intersection(other Rectangle) (Rectangle, bool) {
	if !r.Overlaps(other) {
		return Rectangle{}, false
	}
	return Rectangle{
		Left:   max(r.Left, other.Left),
		Top:    max(r.Top, other.Top),
		Right:  min(r.Right, other.Right),
		Bottom: min(r.Bottom, other.Bottom),
	}, true
}

// Overlaps reports whether the rectangles share at least one cell
func (r Rectangle) Overlaps(other Rectangle) bool {
	return r.Left < other.Right && r.Top < other.Bottom && r.Right > other.Left && r.Bottom > other.Top
}

// Expand grows the rectangle by dx columns and dy rows on every side
func (r Rectangle) Expand(dx, dy int) Rectangle {
	return NewRectangle(r.Left-dx, r.Top-dy, r.Right+dx, r.Bottom+dy)
}

// Clip returns the part of r inside bounds, or an empty rectangle at bounds' origin
func (r Rectangle) Clip(bounds Rectangle) Rectangle {
	if clipped, ok := r.Intersection(bounds); ok {
		return clipped
	}
	return Rectangle{Left: bounds.Left, Top: bounds.Top, Right: bounds.Left, Bottom: bounds.Top}
}

// LinearIndex returns the row-major offset of (x, y); it panics if the point is outside the rectangle
func (r Rectangle) LinearIndex(x, y int) int {
	if x < r.Left || x >= r.Right {
		panic(fmt.Sprintf("core: invalid x index: %d (valid range is %d..%d)", x, r.Left, r.Right))
	}
	if y < r.Top || y >= r.Bottom {
		panic(fmt.Sprintf("core: invalid y index: %d (valid range is %d..%d)", y, r.Top, r.Bottom))
	}
	return (y-r.Top)*r.Width() + (x - r.Left)
}

// Indices yields every (x, y) in the rectangle in row-major order
func (r Rectangle) Indices() iter.Seq2[int, int] {
	return func(yield func(int, int) bool) {
		if r.IsEmpty() {
			return
		}
		for y := r.Top; y < r.Bottom; y++ {
			for x := r.Left; x < r.Right; x++ {
				if !yield(x, y) {
					return
				}
			}
		}
	}
}

// clampTileCounts validates the requested counts and limits them to the rectangle's extent
func (r Rectangle) clampTileCounts(countX, countY int) (int, int) {
	if countX < 1 {
		panic(fmt.Sprintf("core: tile count x must be greater than zero but is %d", countX))
	}
	if countY < 1 {
		panic(fmt.Sprintf("core: tile count y must be greater than zero but is %d", countY))
	}
	return min(countX, r.Width()), min(countY, r.Height())
}

// TileCount returns how many tiles Tiles(countX, countY) will yield
func (r Rectangle) TileCount(countX, countY int) int {
	countX, countY = r.clampTileCounts(countX, countY)
	return countX * countY
}

// Tiles partitions the rectangle into at most countX by countY sub-rectangles.
//
// Counts are clamped to the width and height. Each tile takes the remaining
// extent divided by the remaining tile count, so the last column and row
// absorb any remainder. The tiles never overlap and their union is r.
func (r Rectangle) Tiles(countX, countY int) iter.Seq[Rectangle] {
	countX, countY = r.clampTileCounts(countX, countY)

	return func(yield func(Rectangle) bool) {
		top := r.Top
		for ty := 0; ty < countY; ty++ {
			bottom := top + (r.Bottom-top)/(countY-ty)

			left := r.Left
			for tx := 0; tx < countX; tx++ {
				right := left + (r.Right-left)/(countX-tx)
				if !yield(NewRectangle(left, top, right, bottom)) {
					return
				}
				left = right
			}
			top = bottom
		}
	}
}

func (r Rectangle) String() string {
	return fmt.Sprintf("[%d,%d)-[%d,%d)", r.Left, r.Top, r.Right, r.Bottom)
}
