package renderer

import "time"

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	TotalPixels int           // Total number of pixels rendered
	Bands       int           // Number of row bands dispatched
	Workers     int           // Maximum concurrent band tasks
	FillTime    time.Duration // Time spent shading every pixel
	FlipTime    time.Duration // Time spent reorienting the buffer
}

// PixelsPerSecond returns fill throughput, or 0 when no time was measured
func (s RenderStats) PixelsPerSecond() float64 {
	if s.FillTime <= 0 {
		return 0
	}
	return float64(s.TotalPixels) / s.FillTime.Seconds()
}
