package renderer

import "github.com/kellanmars/spheretracer/pkg/core"

// SamplesPerPixelSchedule is the per-frame samples-per-pixel-side schedule:
// frame k accumulates k^2 total samples per pixel, each frame refining the
// same image from scratch.
var SamplesPerPixelSchedule = []int{1, 2, 4, 8}

// Grid is the full-image pixel accumulator a frame renders into before
// it's handed to the PNG sink.
type Grid struct {
	Width, Height int
	Colors        []core.Vec3
}

// NewGrid allocates a zeroed width x height pixel grid.
func NewGrid(width, height int) *Grid {
	return &Grid{Width: width, Height: height, Colors: make([]core.Vec3, width*height)}
}

// Set writes a pixel's color into the grid.
func (g *Grid) Set(x, y int, color core.Vec3) {
	g.Colors[y*g.Width+x] = color
}

// At returns a pixel's color.
func (g *Grid) At(x, y int) core.Vec3 {
	return g.Colors[y*g.Width+x]
}

// RenderFrame partitions tiles across the pool, blocks until every tile's
// batch has been drained from tileBatches, and returns the finished pixel
// grid along with a summary of the frame it just rendered. Each drained
// batch is also forwarded to sinkBatches so the window sees it as soon as
// it completes; sinkBatches may be nil when no window consumer is
// attached. onChunkDone is invoked once per drained batch so the progress
// reporter can advance its chunk counter.
func RenderFrame(pool *WorkerPool, tileBatches chan PixelBatch, sinkBatches chan<- PixelBatch, tiles []*Tile, samplesPerSide, width, height int, onChunkDone func()) (*Grid, RenderStats) {
	grid := NewGrid(width, height)
	stats := RenderStats{
		TotalPixels:     width * height,
		SamplesPerPixel: samplesPerSide * samplesPerSide,
		TotalChunks:     len(tiles),
	}

	go func() {
		for _, tile := range tiles {
			pool.Submit(TileTask{Tile: tile, SamplesPerSide: samplesPerSide})
		}
	}()

	for i := 0; i < len(tiles); i++ {
		batch := <-tileBatches
		for _, pixel := range batch.Pixels {
			grid.Set(pixel.X, pixel.Y, pixel.Color)
		}
		if sinkBatches != nil {
			sinkBatches <- batch
		}
		if onChunkDone != nil {
			onChunkDone()
		}
		stats.CompletedChunks++
	}

	return grid, stats
}
