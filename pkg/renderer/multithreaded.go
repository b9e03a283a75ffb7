package renderer

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/df07/go-sample-renderer/pkg/core"
	"golang.org/x/sync/errgroup"
)

// MultiThreaded renders tiles on a pool of worker goroutines and merges their
// accumulation rasters on the calling goroutine
type MultiThreaded[V core.Value[V]] struct {
	config Config
}

// NewMultiThreaded creates a multi-threaded renderer. Unset config fields
// fall back to their defaults.
func NewMultiThreaded[V core.Value[V]](config Config) *MultiThreaded[V] {
	return &MultiThreaded[V]{config: config.withDefaults()}
}

// Render evaluates fn for every sample of sampler and returns the filtered
// raster covering sampler.Rectangle(). It panics with an error wrapping
// ErrRenderFailed if any goroutine fails.
func (r *MultiThreaded[V]) Render(sampler core.Sampler, fn RenderFunction[V], filter core.Filter) *core.Raster[V] {
	raster, _ := r.RenderWithStats(sampler, fn, filter)
	return raster
}

// RenderWithStats is Render plus statistics about the run
func (r *MultiThreaded[V]) RenderWithStats(sampler core.Sampler, fn RenderFunction[V], filter core.Filter) (*core.Raster[V], RenderStats) {
	startTime := time.Now()
	bounds := sampler.Rectangle()
	logger := r.config.Logger

	stats := RenderStats{Workers: r.config.NumWorkers}
	if bounds.IsEmpty() {
		stats.Elapsed = time.Since(startTime)
		return core.NewRaster[V](bounds), stats
	}

	countX, countY := tileGrid(bounds, r.config.NumWorkers*r.config.TilesPerWorker)
	stats.TileCountX, stats.TileCountY = countX, countY
	logger.Printf("Rendering %v with %d workers, %dx%d tiles\n", bounds, r.config.NumWorkers, countX, countY)

	g, ctx := errgroup.WithContext(context.Background())
	pool := newWorkerPool[V](r.config, fn, filter, bounds)
	pool.start(ctx, g, sampler, countX, countY)

	logger.Printf("Aggregating results\n")
	accum := core.NewRaster[cell[V]](bounds)
	collector := newStatsCollector(r.config.NumWorkers)
	for result := range pool.results() {
		accum.Merge(result.raster, addCells[V])
		collector.record(result.workerID, result.samples, result.duration)
	}

	if err := g.Wait(); err != nil {
		logger.Printf("Rendering failed: %v\n", err)
		panic(fmt.Errorf("%w: %w", ErrRenderFailed, err))
	}

	logger.Printf("Converting raster\n")
	raster, zeroWeight := resolve(accum)

	collector.fill(&stats)
	stats.TotalPixels = bounds.Size()
	stats.AverageSamples = float64(stats.TotalSamples) / float64(stats.TotalPixels)
	stats.ZeroWeightPixels = zeroWeight
	stats.Elapsed = time.Since(startTime)

	logger.Printf("Rendering finished, %d tiles; %d samples, run time: %v\n", stats.Tiles, stats.TotalSamples, stats.Elapsed)
	return raster, stats
}

// tileGrid splits about total tiles between columns and rows in proportion to
// the aspect ratio of bounds, clamped to its extent
func tileGrid(bounds core.Rectangle, total int) (int, int) {
	aspect := float64(bounds.Width()) / float64(bounds.Height())

	countX := int(math.Round(math.Sqrt(float64(total) * aspect)))
	countX = min(max(countX, 1), bounds.Width())

	countY := int(math.Round(float64(total) / float64(countX)))
	countY = min(max(countY, 1), bounds.Height())

	return countX, countY
}
