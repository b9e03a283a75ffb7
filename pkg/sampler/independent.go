package sampler

import (
	"fmt"
	"iter"
	"math/rand/v2"

	"github.com/df07/go-sample-renderer/pkg/core"
)

// Independent draws every sample offset uniformly from [0, 1)²
type Independent struct {
	rectangle       core.Rectangle
	samplesPerPixel int
	opts            options
}

// NewIndependent creates a sampler taking samplesPerPixel uniform samples in each pixel of rect
func NewIndependent(rect core.Rectangle, samplesPerPixel int, opts ...Option) *Independent {
	if samplesPerPixel < 1 {
		panic(fmt.Sprintf("sampler: samples per pixel must be greater than zero but is %d", samplesPerPixel))
	}
	return &Independent{
		rectangle:       rect,
		samplesPerPixel: samplesPerPixel,
		opts:            newOptions(opts),
	}
}

func (s *Independent) Rectangle() core.Rectangle {
	return s.rectangle
}

func (s *Independent) SamplesPerPixel() int {
	return s.samplesPerPixel
}

func (s *Independent) Tiles(countX, countY int) iter.Seq[core.Tile] {
	validateTileCounts(s.rectangle, countX, countY)

	return func(yield func(core.Tile) bool) {
		index := 0
		for rect := range s.rectangle.Tiles(countX, countY) {
			tile := &independentTile{
				rectangle:       rect,
				samplesPerPixel: s.samplesPerPixel,
				random:          s.opts.newRandom(index),
			}
			if !yield(tile) {
				return
			}
			index++
		}
	}
}

type independentTile struct {
	rectangle       core.Rectangle
	samplesPerPixel int
	random          *rand.Rand
}

func (t *independentTile) Rectangle() core.Rectangle {
	return t.rectangle
}

func (t *independentTile) SampleCount() int {
	return t.rectangle.Size() * t.samplesPerPixel
}

func (t *independentTile) Samples() iter.Seq[core.PixelSample] {
	return func(yield func(core.PixelSample) bool) {
		for x, y := range t.rectangle.Indices() {
			for range t.samplesPerPixel {
				if !yield(core.NewPixelSample(x, y, t.random.Float32(), t.random.Float32())) {
					return
				}
			}
		}
	}
}
