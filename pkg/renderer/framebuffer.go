package renderer

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/df07/go-sphere-tracer/pkg/core"
)

// FrameBuffer is a flat row-major RGB byte buffer, 3 bytes per pixel
type FrameBuffer struct {
	Width  int
	Height int
	Pix    []byte
}

// NewFrameBuffer allocates a zeroed buffer of width*height*3 bytes
func NewFrameBuffer(width, height int) *FrameBuffer {
	return &FrameBuffer{
		Width:  width,
		Height: height,
		Pix:    make([]byte, width*height*3),
	}
}

// Index returns the offset of the red byte of pixel (x, y)
func (fb *FrameBuffer) Index(x, y int) int {
	return (y*fb.Width + x) * 3
}

// SetPixel writes the truncated 8-bit form of c at (x, y)
func (fb *FrameBuffer) SetPixel(x, y int, c core.Vec3) error {
	if x < 0 || x >= fb.Width || y < 0 || y >= fb.Height {
		return fmt.Errorf("pixel (%d,%d) outside %dx%d frame", x, y, fb.Width, fb.Height)
	}
	i := fb.Index(x, y)
	fb.Pix[i] = channelByte(c.X)
	fb.Pix[i+1] = channelByte(c.Y)
	fb.Pix[i+2] = channelByte(c.Z)
	return nil
}

// Pixel returns the RGB bytes stored at (x, y)
func (fb *FrameBuffer) Pixel(x, y int) (r, g, b uint8) {
	i := fb.Index(x, y)
	return fb.Pix[i], fb.Pix[i+1], fb.Pix[i+2]
}

// Row returns the bytes of row y
func (fb *FrameBuffer) Row(y int) []byte {
	rowBytes := fb.Width * 3
	return fb.Pix[y*rowBytes : (y+1)*rowBytes]
}

// FlipVertical swaps row y with row Height-1-y in place. An odd middle row is untouched.
func (fb *FrameBuffer) FlipVertical() {
	for y := 0; y < fb.Height/2; y++ {
		top := fb.Row(y)
		bottom := fb.Row(fb.Height - 1 - y)
		for x := range top {
			top[x], bottom[x] = bottom[x], top[x]
		}
	}
}

// Image returns an opaque RGBA copy of the buffer, row 0 at the top
func (fb *FrameBuffer) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	for y := 0; y < fb.Height; y++ {
		for x := 0; x < fb.Width; x++ {
			r, g, b := fb.Pixel(x, y)
			img.SetRGBA(x, y, color.RGBA{R: r, G: g, B: b, A: 255})
		}
	}
	return img
}

// channelByte converts a [0,1] channel to a byte by truncating c*255.
// Out-of-range values saturate and NaN maps to 0.
func channelByte(c float64) uint8 {
	v := c * 255
	switch {
	case math.IsNaN(v) || v <= 0:
		return 0
	case v >= 255:
		return 255
	default:
		return uint8(v)
	}
}
