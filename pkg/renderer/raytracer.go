package renderer

import (
	"fmt"
	"time"

	"github.com/df07/go-sphere-tracer/pkg/core"
)

// RenderConfig contains rendering configuration
type RenderConfig struct {
	NumWorkers int // Concurrent band tasks; 0 = one per CPU
}

// DefaultRenderConfig returns sensible default values
func DefaultRenderConfig() RenderConfig {
	return RenderConfig{NumWorkers: 0}
}

// Raytracer casts one ray per pixel through the scene camera
type Raytracer struct {
	scene  Scene
	camera *Camera
	pool   *WorkerPool
}

// NewRaytracer creates a raytracer for the scene's camera configuration
func NewRaytracer(scene Scene, config RenderConfig) (*Raytracer, error) {
	camera, err := NewCamera(scene.GetCameraConfig())
	if err != nil {
		return nil, err
	}

	return &Raytracer{
		scene:  scene,
		camera: camera,
		pool:   NewWorkerPool(config.NumWorkers),
	}, nil
}

// Camera returns the camera used to generate pixel rays
func (rt *Raytracer) Camera() *Camera {
	return rt.camera
}

// Render fills the frame buffer, then flips it so row 0 is the top of the image.
// The flip starts only after every band has been written.
func (rt *Raytracer) Render() (*FrameBuffer, RenderStats, error) {
	log := core.Logger()
	width, height := rt.camera.Width(), rt.camera.Height()
	fb := NewFrameBuffer(width, height)
	bands := rt.pool.BandsFor(height)

	stats := RenderStats{
		TotalPixels: width * height,
		Bands:       len(bands),
		Workers:     rt.pool.GetNumWorkers(),
	}

	start := time.Now()
	if err := rt.pool.Run(bands, func(band RowBand) error {
		return rt.renderBand(fb, band)
	}); err != nil {
		return nil, stats, fmt.Errorf("render %dx%d: %w", width, height, err)
	}
	stats.FillTime = time.Since(start)
	log.Debug("fill complete", "bands", stats.Bands, "workers", stats.Workers, "elapsed", stats.FillTime)

	start = time.Now()
	fb.FlipVertical()
	stats.FlipTime = time.Since(start)
	log.Debug("flip complete", "elapsed", stats.FlipTime)

	log.Info("render complete",
		"width", width,
		"height", height,
		"pixels", stats.TotalPixels,
		"elapsed", stats.FillTime+stats.FlipTime)

	return fb, stats, nil
}

// renderBand shades every pixel in the band; y = 0 is the bottom row
func (rt *Raytracer) renderBand(fb *FrameBuffer, band RowBand) error {
	for y := band.MinY; y < band.MaxY; y++ {
		for x := 0; x < fb.Width; x++ {
			ray := rt.camera.GetPixelRay(x, y)
			if err := fb.SetPixel(x, y, RayColor(ray, rt.scene)); err != nil {
				return err
			}
		}
	}
	return nil
}
