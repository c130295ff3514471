package renderer

import (
	"sync"

	"github.com/kellanmars/spheretracer/pkg/scene"
)

// DefaultNumWorkers is the fixed worker-pool size used unless the caller
// overrides it.
const DefaultNumWorkers = 12

// TileTask is one unit of work submitted to the pool: render tile against
// scene at the given samples-per-pixel-side.
type TileTask struct {
	Tile           *Tile
	SamplesPerSide int
}

// WorkerPool runs a fixed number of Worker goroutines pulling TileTasks
// from a shared queue and pushing finished PixelBatch values to a shared
// output channel, mirroring the many-producer/one-consumer pixel channel
// the progress reporter also writes to.
type WorkerPool struct {
	tasks   chan TileTask
	batches chan PixelBatch
	scene   *scene.Scene
	width   int
	height  int
	wg      sync.WaitGroup
}

// NewWorkerPool creates a pool of numWorkers goroutines (0 defaults to
// DefaultNumWorkers) sharing the given scene and output channel.
func NewWorkerPool(sc *scene.Scene, width, height, numWorkers int, batches chan PixelBatch) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = DefaultNumWorkers
	}
	wp := &WorkerPool{
		tasks:   make(chan TileTask),
		batches: batches,
		scene:   sc,
		width:   width,
		height:  height,
	}
	for i := 0; i < numWorkers; i++ {
		wp.wg.Add(1)
		go wp.worker()
	}
	return wp
}

func (wp *WorkerPool) worker() {
	defer wp.wg.Done()
	for task := range wp.tasks {
		batch := RenderTile(task.Tile, wp.scene, wp.width, wp.height, task.SamplesPerSide)
		wp.batches <- batch
	}
}

// Submit enqueues a tile for rendering. Blocks until a worker is free.
func (wp *WorkerPool) Submit(task TileTask) {
	wp.tasks <- task
}

// Close signals no more tasks will be submitted and waits for every
// worker to drain its current task.
func (wp *WorkerPool) Close() {
	close(wp.tasks)
	wp.wg.Wait()
}
