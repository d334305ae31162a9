package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/df07/go-sphere-tracer/pkg/core"
	"github.com/df07/go-sphere-tracer/pkg/output"
	"github.com/df07/go-sphere-tracer/pkg/renderer"
	"github.com/df07/go-sphere-tracer/pkg/scene"
)

// options holds parsed command line flags
type options struct {
	sceneType  string
	width      int
	height     int
	numWorkers int
	outputPath string
	format     string
}

func main() {
	// Parse command line flags
	var opts options
	flag.StringVar(&opts.sceneType, "scene", "default", "Scene type: 'default' or 'preview'")
	flag.IntVar(&opts.width, "width", 0, "Override image width in pixels (0 = scene default)")
	flag.IntVar(&opts.height, "height", 0, "Override image height in pixels (0 = width / aspect ratio)")
	flag.IntVar(&opts.numWorkers, "workers", 0, "Number of parallel workers (0 = one per CPU)")
	flag.StringVar(&opts.outputPath, "output", "out.ppm", "Output file path (overwritten if present)")
	flag.StringVar(&opts.format, "format", "", "Output format: ppm, png, bmp or tiff (default: from -output extension)")
	verbose := flag.Bool("v", false, "Enable debug logging")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	if *help {
		printHelp()
		return
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	core.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	if err := run(opts); err != nil {
		core.Logger().Error("render failed", "error", err)
		os.Exit(1)
	}
}

func printHelp() {
	fmt.Println("Sphere Raytracer")
	fmt.Println("Usage: raytracer [options]")
	fmt.Println()
	fmt.Println("Options:")
	flag.PrintDefaults()
	fmt.Println()
	fmt.Println("Available scenes:")
	for _, info := range scene.ListScenes() {
		fmt.Printf("  %-8s - %s\n", info.ID, info.Description)
	}
	fmt.Println()
	fmt.Printf("Output formats: %s\n", formatList())
}

func formatList() string {
	names := make([]string, 0, len(output.Formats()))
	for _, f := range output.Formats() {
		names = append(names, string(f))
	}
	return strings.Join(names, ", ")
}

// run renders the selected scene and writes it to the output path
func run(opts options) error {
	format, err := resolveFormat(opts.outputPath, opts.format)
	if err != nil {
		return err
	}

	selectedScene, err := createScene(opts.sceneType, opts.width, opts.height)
	if err != nil {
		return err
	}

	raytracer, err := renderer.NewRaytracer(selectedScene, renderer.RenderConfig{NumWorkers: opts.numWorkers})
	if err != nil {
		return fmt.Errorf("scene %s: %w", selectedScene.Name, err)
	}

	fb, stats, err := raytracer.Render()
	if err != nil {
		return err
	}
	core.Logger().Debug("render stats",
		"bands", stats.Bands,
		"workers", stats.Workers,
		"pixels_per_second", stats.PixelsPerSecond())

	return output.WriteFile(opts.outputPath, fb, format)
}

// createScene builds the named scene with optional dimension overrides
func createScene(sceneType string, width, height int) (*scene.Scene, error) {
	return scene.Create(sceneType, renderer.CameraConfig{Width: width, Height: height})
}

// resolveFormat prefers an explicit -format and falls back to the output extension
func resolveFormat(outputPath, formatName string) (output.Format, error) {
	if formatName != "" {
		return output.ParseFormat(formatName)
	}
	return output.FormatFromPath(outputPath)
}
