package renderer

import (
	"errors"
	"math"
	"testing"

	"github.com/df07/go-sphere-tracer/pkg/core"
)

func vecClose(a, b core.Vec3, tolerance float64) bool {
	return math.Abs(a.X-b.X) <= tolerance &&
		math.Abs(a.Y-b.Y) <= tolerance &&
		math.Abs(a.Z-b.Z) <= tolerance
}

func TestCamera_DefaultBasis(t *testing.T) {
	camera, err := NewCamera(DefaultCameraConfig())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	origin, horizontal, vertical, lowerLeft := camera.Basis()
	viewportWidth := 16.0 / 9.0 * 2.0

	if origin != core.NewVec3(0, 0, 0) {
		t.Errorf("Expected origin at zero, got %v", origin)
	}
	if !vecClose(horizontal, core.NewVec3(viewportWidth, 0, 0), 1e-12) {
		t.Errorf("Expected horizontal (%f,0,0), got %v", viewportWidth, horizontal)
	}
	if !vecClose(vertical, core.NewVec3(0, 2, 0), 1e-12) {
		t.Errorf("Expected vertical (0,2,0), got %v", vertical)
	}
	if !vecClose(lowerLeft, core.NewVec3(-viewportWidth/2, -1, -1), 1e-12) {
		t.Errorf("Expected lower-left (%f,-1,-1), got %v", -viewportWidth/2, lowerLeft)
	}

	// 512 / (16/9) = 288
	if camera.Width() != 512 || camera.Height() != 288 {
		t.Errorf("Expected 512x288, got %dx%d", camera.Width(), camera.Height())
	}
}

func TestCamera_DerivedHeightTruncates(t *testing.T) {
	config := DefaultCameraConfig()
	config.Width = 100 // 100 / 1.777... = 56.25

	if h := config.ImageHeight(); h != 56 {
		t.Errorf("Expected truncated height 56, got %d", h)
	}

	config.Height = 40
	if h := config.ImageHeight(); h != 40 {
		t.Errorf("Expected explicit height 40, got %d", h)
	}
}

func TestCamera_GetRayCorners(t *testing.T) {
	config := DefaultCameraConfig()
	config.Width = 4
	config.Height = 3
	camera, err := NewCamera(config)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	_, horizontal, vertical, lowerLeft := camera.Basis()

	tests := []struct {
		name     string
		x, y     int
		expected core.Vec3
	}{
		{"bottom-left", 0, 0, lowerLeft},
		{"bottom-right", 3, 0, lowerLeft.Add(horizontal)},
		{"top-left", 0, 2, lowerLeft.Add(vertical)},
		{"top-right", 3, 2, lowerLeft.Add(horizontal).Add(vertical)},
		{"center row", 0, 1, lowerLeft.Add(vertical.Multiply(0.5))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := camera.GetPixelRay(tt.x, tt.y)
			if ray.Origin != core.NewVec3(0, 0, 0) {
				t.Errorf("Expected ray origin at camera origin, got %v", ray.Origin)
			}
			if !vecClose(ray.Direction, tt.expected, 1e-12) {
				t.Errorf("Expected direction %v, got %v", tt.expected, ray.Direction)
			}
		})
	}
}

func TestCamera_OffsetOriginKeepsDirection(t *testing.T) {
	config := DefaultCameraConfig()
	config.Origin = core.NewVec3(1, 2, 3)
	camera, err := NewCamera(config)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	ray := camera.GetRay(0.5, 0.5)
	if !vecClose(ray.Direction, core.NewVec3(0, 0, -1), 1e-12) {
		t.Errorf("Expected center ray direction (0,0,-1), got %v", ray.Direction)
	}
	if ray.Origin != config.Origin {
		t.Errorf("Expected ray origin %v, got %v", config.Origin, ray.Origin)
	}
}

func TestCamera_Validation(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*CameraConfig)
	}{
		{"width below 2", func(c *CameraConfig) { c.Width = 1 }},
		{"height below 2", func(c *CameraConfig) { c.Height = 1 }},
		{"derived height below 2", func(c *CameraConfig) { c.Width = 3 }},
		{"zero aspect ratio", func(c *CameraConfig) { c.Height = 10; c.AspectRatio = 0 }},
		{"negative viewport", func(c *CameraConfig) { c.ViewportHeight = -2 }},
		{"NaN viewport", func(c *CameraConfig) { c.ViewportHeight = math.NaN() }},
		{"zero focal length", func(c *CameraConfig) { c.FocalLength = 0 }},
		{"NaN focal length", func(c *CameraConfig) { c.FocalLength = math.NaN() }},
		{"infinite focal length", func(c *CameraConfig) { c.FocalLength = math.Inf(1) }},
		{"negative infinite focal length", func(c *CameraConfig) { c.FocalLength = math.Inf(-1) }},
		{"infinite aspect ratio", func(c *CameraConfig) { c.Height = 10; c.AspectRatio = math.Inf(1) }},
		{"infinite viewport", func(c *CameraConfig) { c.ViewportHeight = math.Inf(1) }},
		{"NaN origin", func(c *CameraConfig) { c.Origin = core.NewVec3(0, math.NaN(), 0) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := DefaultCameraConfig()
			tt.modify(&config)

			camera, err := NewCamera(config)
			if err == nil {
				t.Fatalf("Expected error, got camera %v", camera)
			}
			if !errors.Is(err, ErrInvalidCamera) {
				t.Errorf("Expected ErrInvalidCamera, got %v", err)
			}
		})
	}
}

func TestMergeCameraConfig(t *testing.T) {
	base := DefaultCameraConfig()
	merged := MergeCameraConfig(base, CameraConfig{Width: 64, Height: 20})

	if merged.Width != 64 || merged.Height != 20 {
		t.Errorf("Expected overridden 64x20, got %dx%d", merged.Width, merged.Height)
	}
	if merged.AspectRatio != base.AspectRatio ||
		merged.ViewportHeight != base.ViewportHeight ||
		merged.FocalLength != base.FocalLength ||
		merged.Origin != base.Origin {
		t.Errorf("Expected unset fields to keep base values, got %+v", merged)
	}
}
