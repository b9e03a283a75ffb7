package main

import (
	"errors"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/df07/go-sample-renderer/pkg/core"
)

func TestCreateRectangle(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		expectError   bool
	}{
		{"16:9", 400, 225, false},
		{"single pixel", 1, 1, false},
		{"zero width", 0, 10, true},
		{"negative width", -4, 10, true},
		{"negative height", 10, -1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rect, err := createRectangle(tt.width, tt.height)

			if tt.expectError {
				if err == nil {
					t.Errorf("Expected error for size %dx%d, but got none", tt.width, tt.height)
				}
				return
			}

			if err != nil {
				t.Fatalf("Unexpected error for size %dx%d: %v", tt.width, tt.height, err)
			}
			if rect != core.NewRectangle(0, 0, tt.width, tt.height) {
				t.Errorf("Expected rectangle (0,0,%d,%d), got %v", tt.width, tt.height, rect)
			}
		})
	}
}

func TestCreateRenderFunction(t *testing.T) {
	rect := core.NewRectangle(0, 0, 64, 48)

	tests := []struct {
		name        string
		pattern     string
		expectError bool
	}{
		{"zone plate", "zoneplate", false},
		{"checker", "checker", false},
		{"unknown pattern", "nonexistent", true},
		{"empty pattern name", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fn, err := createRenderFunction(tt.pattern, rect)

			if tt.expectError {
				if err == nil {
					t.Errorf("Expected error for pattern '%s', but got none", tt.pattern)
				}
				if !errors.Is(err, errUnknownPattern) {
					t.Errorf("Expected errUnknownPattern, got %v", err)
				}
				if fn != nil {
					t.Errorf("Expected nil render function for pattern '%s', got %T", tt.pattern, fn)
				}
				return
			}

			if err != nil {
				t.Fatalf("Unexpected error for pattern '%s': %v", tt.pattern, err)
			}
			c := fn.Evaluate(core.NewPixelSample(10, 10, 0.5, 0.5))
			for _, v := range []float32{c.R, c.G, c.B} {
				if v < 0 || v > 1 {
					t.Errorf("Expected channel in [0, 1], got %v", c)
				}
			}
		})
	}
}

func TestZonePlateCentre(t *testing.T) {
	fn := zonePlate(core.NewRectangle(0, 0, 64, 64))

	// The centre of the plate is the peak of the innermost ring
	c := fn(core.NewPixelSample(32, 32, 0, 0))
	if c.R != 1 || c.G != 1 || c.B != 1 {
		t.Errorf("Expected white at the centre, got %v", c)
	}
}

func TestCheckerAlternates(t *testing.T) {
	fn := checker(4)

	a := fn(core.NewPixelSample(1, 1, 0.5, 0.5))
	b := fn(core.NewPixelSample(5, 1, 0.5, 0.5))
	c := fn(core.NewPixelSample(5, 5, 0.5, 0.5))

	if a == b {
		t.Errorf("Expected neighbouring cells to differ, both %v", a)
	}
	if a != c {
		t.Errorf("Expected diagonal cells to match, got %v and %v", a, c)
	}
}

func TestCreateSampler(t *testing.T) {
	rect := core.NewRectangle(0, 0, 20, 10)

	tests := []struct {
		name            string
		sampler         string
		spp             int
		expectedPerPix  int
		expectError     bool
		expectedErrType error
	}{
		{"independent", "independent", 5, 5, false, nil},
		{"stratified", "stratified", 3, 9, false, nil},
		{"unknown sampler", "halton", 4, 0, true, errUnknownSampler},
		{"zero samples", "independent", 0, 0, true, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			smp, err := createSampler(tt.sampler, rect, tt.spp, true, 42)

			if tt.expectError {
				if err == nil {
					t.Fatalf("Expected error for sampler '%s', but got none", tt.sampler)
				}
				if tt.expectedErrType != nil && !errors.Is(err, tt.expectedErrType) {
					t.Errorf("Expected %v, got %v", tt.expectedErrType, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("Unexpected error for sampler '%s': %v", tt.sampler, err)
			}
			if smp.SamplesPerPixel() != tt.expectedPerPix {
				t.Errorf("Expected %d samples per pixel, got %d", tt.expectedPerPix, smp.SamplesPerPixel())
			}
			if smp.Rectangle() != rect {
				t.Errorf("Expected rectangle %v, got %v", rect, smp.Rectangle())
			}
		})
	}
}

func TestCreateOutputDir(t *testing.T) {
	tests := []struct {
		name         string
		pattern      string
		expectedBase string
	}{
		{"zone plate", "zoneplate", "zoneplate"},
		{"checker", "checker", "checker"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			outputDir := createOutputDir(tt.pattern)

			if filepath.Base(outputDir) != tt.expectedBase {
				t.Errorf("Expected output directory to end in '%s', got '%s'", tt.expectedBase, outputDir)
			}
			if !strings.HasPrefix(outputDir, "output") {
				t.Errorf("Expected output directory to start with 'output', got '%s'", outputDir)
			}
		})
	}
}

func TestScaleImage(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 3, 2))
	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			img.SetRGBA(x, y, color.RGBA{R: 200, G: 100, B: 50, A: 255})
		}
	}

	if got := scaleImage(img, 1); got != img {
		t.Error("Expected factor 1 to return the original image")
	}

	scaled := scaleImage(img, 4)
	if scaled.Bounds().Dx() != 12 || scaled.Bounds().Dy() != 8 {
		t.Fatalf("Expected 12x8 image, got %v", scaled.Bounds())
	}
	c := scaled.RGBAAt(6, 4)
	if absDiff(c.R, 200) > 1 || absDiff(c.G, 100) > 1 || absDiff(c.B, 50) > 1 {
		t.Errorf("Expected uniform color to survive scaling, got %v", c)
	}
}

func TestSavePNG(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "render.png")
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))

	if err := savePNG(filename, img); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if info, err := os.Stat(filename); err != nil || info.Size() == 0 {
		t.Errorf("Expected non-empty PNG at %s", filename)
	}

	if err := savePNG(filepath.Join(t.TempDir(), "missing", "render.png"), img); err == nil {
		t.Error("Expected error writing into a missing directory")
	}
}

func absDiff(a, b uint8) uint8 {
	if a > b {
		return a - b
	}
	return b - a
}
