package renderer

import (
	"runtime"

	"github.com/df07/go-sample-renderer/pkg/core"
)

// Config contains construction-time settings for the renderers
type Config struct {
	NumWorkers      int         // Number of parallel workers (0 = use CPU count)
	TilesPerWorker  int         // Tiles generated per worker, for load balancing
	WorkQueueSize   int         // Capacity of the tile queue feeding the workers
	ResultQueueSize int         // Capacity of the queue carrying tile rasters to the aggregator
	Logger          core.Logger // Logger for rendering output (nil = silent)
}

const (
	defaultTilesPerWorker = 24
	defaultQueueSize      = 2048
)

// DefaultConfig returns sensible default values
func DefaultConfig() Config {
	return Config{
		NumWorkers:      0, // Auto-detect CPU count
		TilesPerWorker:  defaultTilesPerWorker,
		WorkQueueSize:   defaultQueueSize,
		ResultQueueSize: defaultQueueSize,
		Logger:          core.NewNopLogger(),
	}
}

// withDefaults replaces unset fields with their default values
func (c Config) withDefaults() Config {
	if c.NumWorkers <= 0 {
		c.NumWorkers = runtime.NumCPU()
	}
	if c.TilesPerWorker <= 0 {
		c.TilesPerWorker = defaultTilesPerWorker
	}
	if c.WorkQueueSize <= 0 {
		c.WorkQueueSize = defaultQueueSize
	}
	if c.ResultQueueSize <= 0 {
		c.ResultQueueSize = defaultQueueSize
	}
	if c.Logger == nil {
		c.Logger = core.NewNopLogger()
	}
	return c
}
