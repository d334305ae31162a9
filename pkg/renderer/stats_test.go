package renderer

import (
	"testing"
	"time"
)

func TestRenderStats_PixelsPerSecond(t *testing.T) {
	stats := RenderStats{TotalPixels: 1000, FillTime: 500 * time.Millisecond}
	if got := stats.PixelsPerSecond(); got != 2000 {
		t.Errorf("Expected 2000 pixels/s, got %f", got)
	}

	if got := (RenderStats{TotalPixels: 1000}).PixelsPerSecond(); got != 0 {
		t.Errorf("Expected 0 pixels/s without timing, got %f", got)
	}
}
