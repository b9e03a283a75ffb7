// Package sampler generates tiled sub-pixel sample sequences.
package sampler

import (
	"fmt"
	"math/rand/v2"

	"github.com/df07/go-sample-renderer/pkg/core"
)

// Option configures a sampler during creation
type Option func(*options)

type options struct {
	seed   uint64
	seeded bool
}

// WithSeed makes the sampler reproducible. Tile i draws from a generator
// seeded with seed+i, so tiles remain independent streams.
func WithSeed(seed uint64) Option {
	return func(o *options) {
		o.seed = seed
		o.seeded = true
	}
}

func newOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// newRandom returns the generator for the tile with the given index
func (o options) newRandom(tileIndex int) *rand.Rand {
	if o.seeded {
		s := o.seed + uint64(tileIndex)
		return rand.New(rand.NewPCG(s, s^0x9e3779b97f4a7c15))
	}
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

// validateTileCounts panics unless 1 <= count <= extent on both axes
func validateTileCounts(rect core.Rectangle, countX, countY int) {
	if countX < 1 || countX > rect.Width() {
		panic(fmt.Sprintf("sampler: tile count x must be in 1..%d but is %d", rect.Width(), countX))
	}
	if countY < 1 || countY > rect.Height() {
		panic(fmt.Sprintf("sampler: tile count y must be in 1..%d but is %d", rect.Height(), countY))
	}
}
