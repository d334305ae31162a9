package renderer

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// bandsPerWorker oversubscribes bands so uneven rows still balance across workers
const bandsPerWorker = 4

// RowBand is a half-open range of rows [MinY, MaxY) rendered by a single task.
// Bands produced by SplitRows never overlap, so tasks write disjoint buffer regions.
type RowBand struct {
	MinY int
	MaxY int
}

// Rows returns the number of rows in the band
func (b RowBand) Rows() int {
	return b.MaxY - b.MinY
}

// SplitRows partitions [0, height) into at most numBands contiguous, non-empty bands
func SplitRows(height, numBands int) []RowBand {
	if height <= 0 {
		return nil
	}
	numBands = max(1, min(numBands, height))

	bands := make([]RowBand, 0, numBands)
	for i := 0; i < numBands; i++ {
		bands = append(bands, RowBand{
			MinY: i * height / numBands,
			MaxY: (i + 1) * height / numBands,
		})
	}
	return bands
}

// WorkerPool runs band tasks on a bounded group of goroutines
type WorkerPool struct {
	numWorkers int
}

// NewWorkerPool creates a worker pool; numWorkers <= 0 uses one worker per CPU
func NewWorkerPool(numWorkers int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	return &WorkerPool{numWorkers: numWorkers}
}

// GetNumWorkers returns the number of workers in the pool
func (wp *WorkerPool) GetNumWorkers() int {
	return wp.numWorkers
}

// BandsFor returns the row partition used for an image of the given height
func (wp *WorkerPool) BandsFor(height int) []RowBand {
	return SplitRows(height, wp.numWorkers*bandsPerWorker)
}

// Run renders every band and returns once all of them have finished.
// The first error returned by a task is reported after the barrier.
func (wp *WorkerPool) Run(bands []RowBand, task func(RowBand) error) error {
	var g errgroup.Group
	g.SetLimit(wp.numWorkers)

	for _, band := range bands {
		g.Go(func() error {
			return task(band)
		})
	}

	return g.Wait()
}
