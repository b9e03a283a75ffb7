package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/df07/go-sample-renderer/pkg/core"
	"github.com/df07/go-sample-renderer/pkg/filter"
	"github.com/df07/go-sample-renderer/pkg/renderer"
	"github.com/df07/go-sample-renderer/pkg/sampler"
	xdraw "golang.org/x/image/draw"
)

var (
	errUnknownPattern = errors.New("unknown pattern")
	errUnknownSampler = errors.New("unknown sampler")
)

func main() {
	// Parse command line flags
	width := flag.Int("width", 400, "Output width in pixels")
	height := flag.Int("height", 225, "Output height in pixels")
	spp := flag.Int("spp", 4, "Samples per pixel (independent) or strata per axis (stratified)")
	samplerType := flag.String("sampler", "stratified", "Sampler: 'independent' or 'stratified'")
	jitter := flag.Bool("jitter", true, "Jitter stratified samples within their strata")
	seed := flag.Uint64("seed", 0, "Random seed (0 = nondeterministic)")
	filterName := flag.String("filter", "mitchell", "Reconstruction filter: "+strings.Join(filter.Names(), ", "))
	workers := flag.Int("workers", 0, "Number of parallel workers (0 = auto-detect CPU count)")
	pattern := flag.String("pattern", "zoneplate", "Test pattern: 'zoneplate' or 'checker'")
	scale := flag.Int("scale", 1, "Upscale factor for the saved image")
	simple := flag.Bool("simple", false, "Render on a single goroutine")
	out := flag.String("out", "", "Output file (default output/<pattern>/render_<timestamp>.png)")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	// Show help if requested
	if *help {
		fmt.Println("Sample Renderer")
		fmt.Println("Usage: sample-renderer [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		fmt.Println()
		fmt.Println("Available patterns:")
		fmt.Println("  zoneplate - Concentric rings with rising frequency, shows aliasing")
		fmt.Println("  checker   - Colored checkerboard with hard edges")
		fmt.Println()
		fmt.Println("Output will be saved to output/<pattern>/render_<timestamp>.png")
		return
	}

	fmt.Println("Starting Sample Renderer...")

	rect, err := createRectangle(*width, *height)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	fn, err := createRenderFunction(*pattern, rect)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	smp, err := createSampler(*samplerType, rect, *spp, *jitter, *seed)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	f, err := filter.Parse(*filterName)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	config := renderer.DefaultConfig()
	config.NumWorkers = *workers
	config.Logger = core.NewDefaultLogger()

	var r renderer.Renderer[core.Color]
	if *simple {
		r = renderer.NewSimple[core.Color](config)
	} else {
		r = renderer.NewMultiThreaded[core.Color](config)
	}

	raster, stats := r.RenderWithStats(smp, fn, f)

	fmt.Printf("Render completed in %v\n", stats.Elapsed)
	fmt.Printf("Samples per pixel: %.1f (%d samples over %d tiles, %d workers)\n",
		stats.AverageSamples, stats.TotalSamples, stats.Tiles, stats.Workers)
	fmt.Printf("Tile time: %v ± %v\n", stats.MeanTileTime, stats.StdDevTileTime)
	if stats.ZeroWeightPixels > 0 {
		fmt.Printf("Warning: %d pixels received no filter weight\n", stats.ZeroWeightPixels)
	}

	img := scaleImage(core.ToRGBA(raster, 2.0), *scale)
	fmt.Printf("Average luminance: %.4f\n", renderer.CalculateAverageLuminance(img))

	filename := *out
	if filename == "" {
		outputDir := createOutputDir(*pattern)
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			fmt.Printf("Error creating output directory: %v\n", err)
			os.Exit(1)
		}
		timestamp := time.Now().Format("20060102_150405")
		filename = filepath.Join(outputDir, fmt.Sprintf("render_%s.png", timestamp))
	}

	if err := savePNG(filename, img); err != nil {
		fmt.Printf("Error saving PNG: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Render saved as %s\n", filename)
}

// createRectangle returns the output rectangle anchored at the origin
func createRectangle(width, height int) (core.Rectangle, error) {
	if width < 1 || height < 1 {
		return core.Rectangle{}, fmt.Errorf("image size must be positive, got %dx%d", width, height)
	}
	return core.NewRectangle(0, 0, width, height), nil
}

// createRenderFunction returns the test pattern with the given name, sized to rect
func createRenderFunction(pattern string, rect core.Rectangle) (renderer.RenderFunction[core.Color], error) {
	switch pattern {
	case "zoneplate":
		return zonePlate(rect), nil
	case "checker":
		return checker(16), nil
	default:
		return nil, fmt.Errorf("%w: %q", errUnknownPattern, pattern)
	}
}

// zonePlate renders cos(k·r²) rings centred on rect whose frequency reaches
// the Nyquist limit at the shorter edge
func zonePlate(rect core.Rectangle) renderer.RenderFunc[core.Color] {
	cx := float64(rect.Left+rect.Right) / 2
	cy := float64(rect.Top+rect.Bottom) / 2
	radius := float64(min(rect.Width(), rect.Height())) / 2
	k := math.Pi / (2 * max(radius, 1))

	return func(sample core.PixelSample) core.Color {
		p := sample.Position()
		dx, dy := float64(p[0])-cx, float64(p[1])-cy
		v := float32(0.5 + 0.5*math.Cos(k*(dx*dx+dy*dy)))
		return core.NewColor(v, v, v)
	}
}

// checker renders a two-tone checkerboard with square cells of the given size
func checker(size int) renderer.RenderFunc[core.Color] {
	light := core.NewColor(0.9, 0.85, 0.7)
	dark := core.NewColor(0.1, 0.2, 0.4)

	return func(sample core.PixelSample) core.Color {
		p := sample.Position()
		cx := int(math.Floor(float64(p[0]) / float64(size)))
		cy := int(math.Floor(float64(p[1]) / float64(size)))
		if (cx+cy)&1 == 0 {
			return light
		}
		return dark
	}
}

// createSampler builds the named sampler over rect. spp is the per-pixel
// sample count for independent sampling and the strata per axis for
// stratified sampling.
func createSampler(name string, rect core.Rectangle, spp int, jitter bool, seed uint64) (core.Sampler, error) {
	if spp < 1 {
		return nil, fmt.Errorf("samples per pixel must be positive, got %d", spp)
	}

	var opts []sampler.Option
	if seed != 0 {
		opts = append(opts, sampler.WithSeed(seed))
	}

	switch name {
	case "independent":
		return sampler.NewIndependent(rect, spp, opts...), nil
	case "stratified":
		return sampler.NewStratified(rect, spp, jitter, opts...), nil
	default:
		return nil, fmt.Errorf("%w: %q", errUnknownSampler, name)
	}
}

// createOutputDir returns the directory renders of pattern are saved to
func createOutputDir(pattern string) string {
	return filepath.Join("output", pattern)
}

// scaleImage enlarges img by factor with Catmull-Rom resampling
func scaleImage(img *image.RGBA, factor int) *image.RGBA {
	if factor <= 1 {
		return img
	}
	b := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*factor, b.Dy()*factor))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, b, xdraw.Src, nil)
	return dst
}

func savePNG(filename string, img image.Image) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("creating %s: %w", filename, err)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		return fmt.Errorf("encoding %s: %w", filename, err)
	}
	return nil
}
