package renderer

import (
	"image"
	"image/color"
	"math"
	"testing"
	"time"
)

func TestCalculateAverageLuminance(t *testing.T) {
	primaries := image.NewRGBA(image.Rect(0, 0, 2, 2))
	primaries.Set(0, 0, color.RGBA{255, 0, 0, 255})
	primaries.Set(1, 0, color.RGBA{0, 255, 0, 255})
	primaries.Set(0, 1, color.RGBA{0, 0, 255, 255})
	primaries.Set(1, 1, color.RGBA{0, 0, 0, 255})

	white := image.NewRGBA(image.Rect(0, 0, 1, 1))
	white.Set(0, 0, color.RGBA{255, 255, 255, 255})

	gray := image.NewGray(image.Rect(3, 3, 5, 4))
	gray.SetGray(3, 3, color.Gray{Y: 255})
	gray.SetGray(4, 3, color.Gray{Y: 0})

	tests := []struct {
		name     string
		img      image.Image
		expected float64
	}{
		// Red, green, blue and black average to (0.2126 + 0.7152 + 0.0722) / 4
		{"primaries", primaries, 0.25},
		{"white", white, 1},
		{"gray with offset bounds", gray, 0.5},
		{"empty", image.NewRGBA(image.Rect(0, 0, 0, 0)), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CalculateAverageLuminance(tt.img); math.Abs(got-tt.expected) > 1e-4 {
				t.Errorf("Expected average luminance %f, got %f", tt.expected, got)
			}
		})
	}
}

func TestStatsCollector(t *testing.T) {
	c := newStatsCollector(3)
	c.record(1, 10, 2*time.Millisecond)
	c.record(3, 20, 4*time.Millisecond)
	c.record(1, 30, 6*time.Millisecond)

	var stats RenderStats
	c.fill(&stats)

	if stats.Tiles != 3 {
		t.Errorf("Expected 3 tiles, got %d", stats.Tiles)
	}
	if stats.TotalSamples != 60 {
		t.Errorf("Expected 60 samples, got %d", stats.TotalSamples)
	}
	expectedPerWorker := []int{2, 0, 1}
	for i, n := range expectedPerWorker {
		if stats.TilesPerWorker[i] != n {
			t.Errorf("Worker %d: expected %d tiles, got %d", i+1, n, stats.TilesPerWorker[i])
		}
	}
	if d := stats.MeanTileTime - 4*time.Millisecond; d < -time.Microsecond || d > time.Microsecond {
		t.Errorf("Expected mean tile time 4ms, got %v", stats.MeanTileTime)
	}
	// Sample standard deviation of 2, 4, 6
	if d := stats.StdDevTileTime - 2*time.Millisecond; d < -time.Microsecond || d > time.Microsecond {
		t.Errorf("Expected tile time deviation 2ms, got %v", stats.StdDevTileTime)
	}
}

func TestStatsCollectorSingleTile(t *testing.T) {
	c := newStatsCollector(1)
	c.record(1, 5, time.Millisecond)

	var stats RenderStats
	c.fill(&stats)

	if stats.StdDevTileTime != 0 {
		t.Errorf("Expected zero deviation for a single tile, got %v", stats.StdDevTileTime)
	}
}
