package renderer

import (
	"math"

	"github.com/df07/go-sample-renderer/pkg/core"
)

// cell accumulates filter-weighted values for one pixel
type cell[V core.Value[V]] struct {
	value  V
	weight float32
}

func addCells[V core.Value[V]](a, b cell[V]) cell[V] {
	return cell[V]{value: a.value.Add(b.value), weight: a.weight + b.weight}
}

// resolve divides accumulated values by their weights. Pixels no sample
// reached keep the zero value.
func resolve[V core.Value[V]](accum *core.Raster[cell[V]]) (*core.Raster[V], int) {
	zeroWeight := 0
	raster := core.Map(accum, func(c cell[V]) V {
		if c.weight != 0 {
			return c.value.Div(c.weight)
		}
		zeroWeight++
		var zero V
		return zero
	})
	return raster, zeroWeight
}

// splatter distributes sample values over every pixel within the filter radius
type splatter[V core.Value[V]] struct {
	filter           core.Filter
	radiusX, radiusY float32
}

func newSplatter[V core.Value[V]](filter core.Filter) splatter[V] {
	rx, ry := filter.Radius()
	return splatter[V]{filter: filter, radiusX: rx, radiusY: ry}
}

// border returns how many pixels a tile's accumulation raster must extend past
// the tile so that every pixel centre within the radius of a sample is covered
func (s splatter[V]) border() (int, int) {
	return int(math.Ceil(float64(s.radiusX) + 0.5)), int(math.Ceil(float64(s.radiusY) + 0.5))
}

// splat adds value, weighted by the filter, to each pixel of accum whose centre
// lies within the filter radius of the sample position
func (s splatter[V]) splat(accum *core.Raster[cell[V]], sample core.PixelSample, value V) {
	pos := sample.Position()
	bounds := accum.Rectangle()

	x0 := max(bounds.Left, int(math.Ceil(float64(pos[0]-0.5-s.radiusX))))
	x1 := min(bounds.Right, int(math.Floor(float64(pos[0]-0.5+s.radiusX)))+1)
	y0 := max(bounds.Top, int(math.Ceil(float64(pos[1]-0.5-s.radiusY))))
	y1 := min(bounds.Bottom, int(math.Floor(float64(pos[1]-0.5+s.radiusY)))+1)

	for y := y0; y < y1; y++ {
		dy := float32(y) + 0.5 - pos[1]
		for x := x0; x < x1; x++ {
			weight := s.filter.Evaluate(float32(x)+0.5-pos[0], dy)
			if weight == 0 {
				continue
			}
			c := accum.At(x, y)
			c.value = c.value.Add(value.Scale(weight))
			c.weight += weight
		}
	}
}

// renderTile evaluates every sample of tile and splats it into a raster
// covering the tile plus the filter border, clipped to bounds
func (s splatter[V]) renderTile(tile core.Tile, fn RenderFunction[V], bounds core.Rectangle) (*core.Raster[cell[V]], int) {
	bx, by := s.border()
	accum := core.NewRaster[cell[V]](tile.Rectangle().Expand(bx, by).Clip(bounds))

	samples := 0
	for sample := range tile.Samples() {
		s.splat(accum, sample, fn.Evaluate(sample))
		samples++
	}
	return accum, samples
}
