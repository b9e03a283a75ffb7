package sampler

import (
	"fmt"
	"iter"
	"math"
	"math/rand/v2"

	"github.com/df07/go-sample-renderer/pkg/core"
)

// oneMinusEpsilon is the largest float32 below 1
var oneMinusEpsilon = math.Nextafter32(1, 0)

// Stratified splits each pixel into an n×n grid of strata and places one
// sample in every stratum, either at its centre or jittered within it.
type Stratified struct {
	rectangle           core.Rectangle
	sqrtSamplesPerPixel int
	jitter              bool
	opts                options
}

// NewStratified creates a sampler taking sqrtSamplesPerPixel² samples in each pixel of rect
func NewStratified(rect core.Rectangle, sqrtSamplesPerPixel int, jitter bool, opts ...Option) *Stratified {
	if sqrtSamplesPerPixel < 1 {
		panic(fmt.Sprintf("sampler: sqrt samples per pixel must be greater than zero but is %d", sqrtSamplesPerPixel))
	}
	return &Stratified{
		rectangle:           rect,
		sqrtSamplesPerPixel: sqrtSamplesPerPixel,
		jitter:              jitter,
		opts:                newOptions(opts),
	}
}

func (s *Stratified) Rectangle() core.Rectangle {
	return s.rectangle
}

func (s *Stratified) SamplesPerPixel() int {
	return s.sqrtSamplesPerPixel * s.sqrtSamplesPerPixel
}

func (s *Stratified) Tiles(countX, countY int) iter.Seq[core.Tile] {
	validateTileCounts(s.rectangle, countX, countY)

	return func(yield func(core.Tile) bool) {
		index := 0
		for rect := range s.rectangle.Tiles(countX, countY) {
			tile := &stratifiedTile{
				rectangle:           rect,
				sqrtSamplesPerPixel: s.sqrtSamplesPerPixel,
			}
			if s.jitter {
				tile.random = s.opts.newRandom(index)
			}
			if !yield(tile) {
				return
			}
			index++
		}
	}
}

type stratifiedTile struct {
	rectangle           core.Rectangle
	sqrtSamplesPerPixel int
	random              *rand.Rand // nil when samples sit at stratum centres
}

func (t *stratifiedTile) Rectangle() core.Rectangle {
	return t.rectangle
}

func (t *stratifiedTile) SampleCount() int {
	return t.rectangle.Size() * t.sqrtSamplesPerPixel * t.sqrtSamplesPerPixel
}

func (t *stratifiedTile) Samples() iter.Seq[core.PixelSample] {
	n := t.sqrtSamplesPerPixel

	return func(yield func(core.PixelSample) bool) {
		for x, y := range t.rectangle.Indices() {
			for sy := range n {
				for sx := range n {
					ox, oy := t.offset(sx), t.offset(sy)
					if !yield(core.NewPixelSample(x, y, ox, oy)) {
						return
					}
				}
			}
		}
	}
}

// offset returns a position within stratum s along one axis
func (t *stratifiedTile) offset(s int) float32 {
	jitter := 0.5
	if t.random != nil {
		jitter = t.random.Float64()
	}
	v := float32((float64(s) + jitter) / float64(t.sqrtSamplesPerPixel))
	return min(v, oneMinusEpsilon)
}
