// Package renderer evaluates render functions over sampler tiles and
// reconstructs the final raster by filtered splatting.
package renderer

import (
	"errors"

	"github.com/df07/go-sample-renderer/pkg/core"
)

// ErrRenderFailed wraps the cause when a render goroutine terminates abnormally
var ErrRenderFailed = errors.New("render failed")

// RenderFunction computes the value of a single sample. It is called
// concurrently from several goroutines and must not mutate shared state.
type RenderFunction[V any] interface {
	Evaluate(sample core.PixelSample) V
}

// RenderFunc adapts an ordinary function to RenderFunction
type RenderFunc[V any] func(sample core.PixelSample) V

func (f RenderFunc[V]) Evaluate(sample core.PixelSample) V {
	return f(sample)
}

// Renderer turns a sampler, a render function and a filter into a final raster
type Renderer[V core.Value[V]] interface {
	Render(sampler core.Sampler, fn RenderFunction[V], filter core.Filter) *core.Raster[V]
	RenderWithStats(sampler core.Sampler, fn RenderFunction[V], filter core.Filter) (*core.Raster[V], RenderStats)
}
