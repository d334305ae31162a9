package renderer

import (
	"errors"
	"fmt"
	"math"

	"github.com/df07/go-sphere-tracer/pkg/core"
)

// ErrInvalidCamera is returned when camera parameters would produce degenerate rays
var ErrInvalidCamera = errors.New("invalid camera configuration")

// CameraConfig contains all parameters for the fixed pinhole camera
type CameraConfig struct {
	Origin         core.Vec3 // Eye position
	Width          int       // Image width in pixels
	Height         int       // Image height in pixels; 0 derives it from Width and AspectRatio
	AspectRatio    float64   // Viewport width / height
	ViewportHeight float64   // Height of the viewport in world units
	FocalLength    float64   // Distance from origin to viewport along -Z
}

// DefaultCameraConfig returns the 16:9 camera looking down -Z
func DefaultCameraConfig() CameraConfig {
	return CameraConfig{
		Origin:         core.NewVec3(0, 0, 0),
		Width:          512,
		AspectRatio:    16.0 / 9.0,
		ViewportHeight: 2.0,
		FocalLength:    1.0,
	}
}

// MergeCameraConfig applies non-zero fields of override on top of base
func MergeCameraConfig(base, override CameraConfig) CameraConfig {
	result := base

	if !override.Origin.IsZero() {
		result.Origin = override.Origin
	}
	if override.Width != 0 {
		result.Width = override.Width
	}
	if override.Height != 0 {
		result.Height = override.Height
	}
	if override.AspectRatio != 0 {
		result.AspectRatio = override.AspectRatio
	}
	if override.ViewportHeight != 0 {
		result.ViewportHeight = override.ViewportHeight
	}
	if override.FocalLength != 0 {
		result.FocalLength = override.FocalLength
	}

	return result
}

// ImageHeight returns the configured height, or Width/AspectRatio truncated when Height is unset
func (c CameraConfig) ImageHeight() int {
	if c.Height != 0 {
		return c.Height
	}
	if c.AspectRatio <= 0 {
		return 0
	}
	return int(float64(c.Width) / c.AspectRatio)
}

// Validate checks that every pixel ray will have a finite, nonzero direction
// and that the u/v divisors (width-1, height-1) are nonzero.
func (c CameraConfig) Validate() error {
	if c.Width < 2 {
		return fmt.Errorf("%w: width %d must be at least 2", ErrInvalidCamera, c.Width)
	}
	if h := c.ImageHeight(); h < 2 {
		return fmt.Errorf("%w: height %d must be at least 2", ErrInvalidCamera, h)
	}
	if !(c.AspectRatio > 0) || math.IsInf(c.AspectRatio, 1) {
		return fmt.Errorf("%w: aspect ratio %g must be positive and finite", ErrInvalidCamera, c.AspectRatio)
	}
	if !(c.ViewportHeight > 0) || math.IsInf(c.ViewportHeight, 1) {
		return fmt.Errorf("%w: viewport height %g must be positive and finite", ErrInvalidCamera, c.ViewportHeight)
	}
	if c.FocalLength == 0 || math.IsNaN(c.FocalLength) || math.IsInf(c.FocalLength, 0) {
		return fmt.Errorf("%w: focal length %g must be nonzero and finite", ErrInvalidCamera, c.FocalLength)
	}
	for _, v := range []float64{c.Origin.X, c.Origin.Y, c.Origin.Z} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: origin %v must be finite", ErrInvalidCamera, c.Origin)
		}
	}
	return nil
}

// Camera generates rays for rendering
type Camera struct {
	origin          core.Vec3
	lowerLeftCorner core.Vec3
	horizontal      core.Vec3
	vertical        core.Vec3
	width           int
	height          int
}

// NewCamera validates the config and derives the viewport basis
func NewCamera(config CameraConfig) (*Camera, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	viewportWidth := config.AspectRatio * config.ViewportHeight

	origin := config.Origin
	horizontal := core.NewVec3(viewportWidth, 0, 0)
	vertical := core.NewVec3(0, config.ViewportHeight, 0)
	lowerLeftCorner := origin.Subtract(horizontal.Multiply(0.5)).
		Subtract(vertical.Multiply(0.5)).
		Subtract(core.NewVec3(0, 0, config.FocalLength))

	return &Camera{
		origin:          origin,
		horizontal:      horizontal,
		vertical:        vertical,
		lowerLeftCorner: lowerLeftCorner,
		width:           config.Width,
		height:          config.ImageHeight(),
	}, nil
}

// GetRay generates a ray for viewport coordinates (u, v) where 0 <= u,v <= 1.
// (0, 0) is the lower-left corner of the viewport.
func (c *Camera) GetRay(u, v float64) core.Ray {
	direction := c.lowerLeftCorner.
		Add(c.horizontal.Multiply(u)).
		Add(c.vertical.Multiply(v)).
		Subtract(c.origin)

	return core.NewRay(c.origin, direction)
}

// GetPixelRay generates the ray through pixel (x, y), with y = 0 at the bottom row
func (c *Camera) GetPixelRay(x, y int) core.Ray {
	u := float64(x) / float64(c.width-1)
	v := float64(y) / float64(c.height-1)
	return c.GetRay(u, v)
}

// Width returns the image width in pixels
func (c *Camera) Width() int { return c.width }

// Height returns the image height in pixels
func (c *Camera) Height() int { return c.height }

// Basis returns the viewport vectors
func (c *Camera) Basis() (origin, horizontal, vertical, lowerLeftCorner core.Vec3) {
	return c.origin, c.horizontal, c.vertical, c.lowerLeftCorner
}
