package renderer

import (
	"time"

	"github.com/df07/go-sample-renderer/pkg/core"
)

// Simple renders on the calling goroutine, splatting straight into the
// output-sized accumulation raster
type Simple[V core.Value[V]] struct {
	config Config
}

// NewSimple creates a single-threaded renderer. Only config.Logger is used.
func NewSimple[V core.Value[V]](config Config) *Simple[V] {
	return &Simple[V]{config: config.withDefaults()}
}

// Render evaluates fn for every sample of sampler and returns the filtered
// raster covering sampler.Rectangle()
func (r *Simple[V]) Render(sampler core.Sampler, fn RenderFunction[V], filter core.Filter) *core.Raster[V] {
	raster, _ := r.RenderWithStats(sampler, fn, filter)
	return raster
}

// RenderWithStats is Render plus statistics about the run
func (r *Simple[V]) RenderWithStats(sampler core.Sampler, fn RenderFunction[V], filter core.Filter) (*core.Raster[V], RenderStats) {
	startTime := time.Now()
	bounds := sampler.Rectangle()

	stats := RenderStats{Workers: 1, TileCountX: 1, TileCountY: 1}
	if bounds.IsEmpty() {
		stats.TileCountX, stats.TileCountY = 0, 0
		stats.Elapsed = time.Since(startTime)
		return core.NewRaster[V](bounds), stats
	}

	s := newSplatter[V](filter)
	accum := core.NewRaster[cell[V]](bounds)
	collector := newStatsCollector(1)

	for tile := range sampler.Tiles(1, 1) {
		tileStart := time.Now()
		samples := 0
		for sample := range tile.Samples() {
			s.splat(accum, sample, fn.Evaluate(sample))
			samples++
		}
		collector.record(1, samples, time.Since(tileStart))
	}

	raster, zeroWeight := resolve(accum)

	collector.fill(&stats)
	stats.TotalPixels = bounds.Size()
	stats.AverageSamples = float64(stats.TotalSamples) / float64(stats.TotalPixels)
	stats.ZeroWeightPixels = zeroWeight
	stats.Elapsed = time.Since(startTime)

	r.config.Logger.Printf("Rendering finished, %d samples, run time: %v\n", stats.TotalSamples, stats.Elapsed)
	return raster, stats
}
