package renderer

import (
	"bytes"
	"math"
	"testing"

	"github.com/df07/go-sphere-tracer/pkg/core"
)

func TestFrameBuffer_Layout(t *testing.T) {
	fb := NewFrameBuffer(2, 2)

	if len(fb.Pix) != 12 {
		t.Fatalf("Expected 12 bytes for 2x2, got %d", len(fb.Pix))
	}

	if err := fb.SetPixel(1, 0, core.NewVec3(1, 0.5, 0)); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	expected := []byte{0, 0, 0, 255, 127, 0, 0, 0, 0, 0, 0, 0}
	if !bytes.Equal(fb.Pix, expected) {
		t.Errorf("Expected pixel (1,0) at bytes 3..5, got %v", fb.Pix)
	}

	tests := []struct {
		x, y, index int
	}{
		{0, 0, 0},
		{1, 0, 3},
		{0, 1, 6},
		{1, 1, 9},
	}
	for _, tt := range tests {
		if got := fb.Index(tt.x, tt.y); got != tt.index {
			t.Errorf("Expected index %d for (%d,%d), got %d", tt.index, tt.x, tt.y, got)
		}
	}
}

func TestFrameBuffer_SetPixelOutOfBounds(t *testing.T) {
	fb := NewFrameBuffer(2, 2)
	for _, p := range [][2]int{{-1, 0}, {2, 0}, {0, 2}, {0, -1}} {
		if err := fb.SetPixel(p[0], p[1], core.NewVec3(1, 1, 1)); err == nil {
			t.Errorf("Expected error for pixel %v", p)
		}
	}
}

func TestChannelByte_Truncates(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		expected uint8
	}{
		{"zero", 0, 0},
		{"one", 1, 255},
		{"half truncates down", 0.5, 127},
		{"just below next", 0.999, 254},
		{"sky green", 0.7, 178},
		{"negative saturates", -0.2, 0},
		{"above one saturates", 1.5, 255},
		{"NaN", math.NaN(), 0},
		{"positive infinity", math.Inf(1), 255},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := channelByte(tt.value); got != tt.expected {
				t.Errorf("Expected %d for %f, got %d", tt.expected, tt.value, got)
			}
		})
	}
}

func fillSequential(fb *FrameBuffer) {
	for i := range fb.Pix {
		fb.Pix[i] = byte(i)
	}
}

func TestFrameBuffer_FlipVertical(t *testing.T) {
	fb := NewFrameBuffer(2, 3)
	fillSequential(fb)

	fb.FlipVertical()

	expected := []byte{
		12, 13, 14, 15, 16, 17, // old row 2
		6, 7, 8, 9, 10, 11, // middle row untouched
		0, 1, 2, 3, 4, 5, // old row 0
	}
	if !bytes.Equal(fb.Pix, expected) {
		t.Errorf("Expected %v, got %v", expected, fb.Pix)
	}
}

func TestFrameBuffer_FlipTwiceIsIdentity(t *testing.T) {
	sizes := [][2]int{{2, 2}, {3, 5}, {4, 3}, {7, 1}, {1, 6}}

	for _, size := range sizes {
		fb := NewFrameBuffer(size[0], size[1])
		fillSequential(fb)
		original := append([]byte(nil), fb.Pix...)

		fb.FlipVertical()
		fb.FlipVertical()

		if !bytes.Equal(fb.Pix, original) {
			t.Errorf("Expected double flip of %dx%d to restore buffer", size[0], size[1])
		}
	}
}

func TestFrameBuffer_Image(t *testing.T) {
	fb := NewFrameBuffer(2, 2)
	fillSequential(fb)

	img := fb.Image()
	if img.Bounds().Dx() != 2 || img.Bounds().Dy() != 2 {
		t.Fatalf("Expected 2x2 image, got %v", img.Bounds())
	}

	c := img.RGBAAt(1, 1)
	if c.R != 9 || c.G != 10 || c.B != 11 || c.A != 255 {
		t.Errorf("Expected (9,10,11,255) at (1,1), got %v", c)
	}
}
