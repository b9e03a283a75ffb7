package renderer

import (
	"image"
	"time"

	"github.com/df07/go-sample-renderer/pkg/core"
	"gonum.org/v1/gonum/stat"
)

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	Workers          int           // Number of goroutines that rendered tiles
	TileCountX       int           // Tile columns requested from the sampler
	TileCountY       int           // Tile rows requested from the sampler
	Tiles            int           // Number of tiles rendered
	TotalPixels      int           // Total number of pixels in the output raster
	TotalSamples     int           // Total number of samples evaluated
	AverageSamples   float64       // Average samples per pixel
	ZeroWeightPixels int           // Pixels no sample contributed weight to
	TilesPerWorker   []int         // Tiles rendered by each worker, in worker order
	MeanTileTime     time.Duration // Mean time to render one tile
	StdDevTileTime   time.Duration // Standard deviation of per-tile render time
	Elapsed          time.Duration // Wall time of the whole render
}

// statsCollector gathers per-tile measurements on the aggregating goroutine
type statsCollector struct {
	tilesPerWorker []int
	tileSeconds    []float64
	samples        int
}

func newStatsCollector(workers int) *statsCollector {
	return &statsCollector{tilesPerWorker: make([]int, workers)}
}

// record notes one finished tile; workerID starts at 1
func (c *statsCollector) record(workerID, samples int, duration time.Duration) {
	c.tilesPerWorker[workerID-1]++
	c.tileSeconds = append(c.tileSeconds, duration.Seconds())
	c.samples += samples
}

func (c *statsCollector) fill(stats *RenderStats) {
	stats.Tiles = len(c.tileSeconds)
	stats.TotalSamples = c.samples
	stats.TilesPerWorker = c.tilesPerWorker

	if len(c.tileSeconds) == 0 {
		return
	}
	mean, std := stat.MeanStdDev(c.tileSeconds, nil)
	if len(c.tileSeconds) < 2 {
		std = 0
	}
	stats.MeanTileTime = seconds(mean)
	stats.StdDevTileTime = seconds(std)
}

func seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}

// CalculateAverageLuminance returns the mean Rec. 709 luminance of img, with
// channels scaled to [0, 1]
func CalculateAverageLuminance(img image.Image) float64 {
	bounds := img.Bounds()
	if bounds.Empty() {
		return 0
	}

	var sum float64
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			c := core.NewColor(float32(r)/0xffff, float32(g)/0xffff, float32(b)/0xffff)
			sum += float64(c.Luminance())
		}
	}
	return sum / float64(bounds.Dx()*bounds.Dy())
}
