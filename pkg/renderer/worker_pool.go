package renderer

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/df07/go-sample-renderer/pkg/core"
	"golang.org/x/sync/errgroup"
)

// tileResult carries a finished tile raster from a worker to the aggregator
type tileResult[V core.Value[V]] struct {
	workerID int
	raster   *core.Raster[cell[V]]
	samples  int
	duration time.Duration
}

// workerPool runs one tile producer and a fixed set of tile workers connected
// by two bounded queues. Each tile and each tile raster is owned by exactly
// one goroutine at a time.
type workerPool[V core.Value[V]] struct {
	taskQueue   chan core.Tile
	resultQueue chan tileResult[V]
	numWorkers  int
	wg          sync.WaitGroup

	fn       RenderFunction[V]
	splatter splatter[V]
	bounds   core.Rectangle
	logger   core.Logger
}

func newWorkerPool[V core.Value[V]](config Config, fn RenderFunction[V], filter core.Filter, bounds core.Rectangle) *workerPool[V] {
	return &workerPool[V]{
		taskQueue:   make(chan core.Tile, config.WorkQueueSize),
		resultQueue: make(chan tileResult[V], config.ResultQueueSize),
		numWorkers:  config.NumWorkers,
		fn:          fn,
		splatter:    newSplatter[V](filter),
		bounds:      bounds,
		logger:      config.Logger,
	}
}

// start launches the producer and the workers in g. The result queue is
// closed once every worker has returned.
func (wp *workerPool[V]) start(ctx context.Context, g *errgroup.Group, sampler core.Sampler, countX, countY int) {
	g.Go(func() error {
		return wp.produce(ctx, sampler, countX, countY)
	})

	wp.logger.Printf("Starting %d worker goroutines\n", wp.numWorkers)
	wp.wg.Add(wp.numWorkers)
	for id := 1; id <= wp.numWorkers; id++ {
		g.Go(func() error {
			defer wp.wg.Done()
			return wp.run(ctx, id)
		})
	}

	go func() {
		wp.wg.Wait()
		close(wp.resultQueue)
	}()
}

// results returns the queue the aggregator drains until it is closed
func (wp *workerPool[V]) results() <-chan tileResult[V] {
	return wp.resultQueue
}

// produce feeds the sampler's tiles into the task queue and closes it when done
func (wp *workerPool[V]) produce(ctx context.Context, sampler core.Sampler, countX, countY int) (err error) {
	defer close(wp.taskQueue)
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("sample generator: panic: %v", p)
		}
	}()

	wp.logger.Printf("Sample generator started\n")
	startTime := time.Now()

	tileCount := 0
	for tile := range sampler.Tiles(countX, countY) {
		select {
		case wp.taskQueue <- tile:
			tileCount++
		case <-ctx.Done():
			wp.logger.Printf("Sample generator stopped after %d tiles\n", tileCount)
			return ctx.Err()
		}
	}

	wp.logger.Printf("Sample generator finished, generated %d tiles, run time: %v\n", tileCount, time.Since(startTime))
	return nil
}

// run is the main worker loop
func (wp *workerPool[V]) run(ctx context.Context, id int) (err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("worker %d: panic: %v", id, p)
		}
	}()

	wp.logger.Printf("[%02d] Worker started\n", id)
	startTime := time.Now()

	tileCount, sampleCount := 0, 0
	for tile := range wp.taskQueue {
		// After a failure elsewhere, drain the queue so the producer can finish
		if ctx.Err() != nil {
			continue
		}

		tileStart := time.Now()
		raster, samples := wp.splatter.renderTile(tile, wp.fn, wp.bounds)
		result := tileResult[V]{
			workerID: id,
			raster:   raster,
			samples:  samples,
			duration: time.Since(tileStart),
		}

		select {
		case wp.resultQueue <- result:
			tileCount++
			sampleCount += samples
		case <-ctx.Done():
		}
	}

	wp.logger.Printf("[%02d] Worker finished, processed %d tiles; %d samples, run time: %v\n",
		id, tileCount, sampleCount, time.Since(startTime))
	return nil
}
