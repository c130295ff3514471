package progress

import (
	"time"

	"github.com/kellanmars/spheretracer/pkg/renderer"
)

// TickInterval is how often the background reporter snapshots the record
// and emits a refreshed overlay.
const TickInterval = 100 * time.Millisecond

// Reporter owns the shared Record and periodically renders it into an
// overlay PixelBatch pushed to out, the same channel the window sink
// drains tile batches from.
type Reporter struct {
	Record *Record
	out    chan<- renderer.PixelBatch
	stop   chan struct{}
	done   chan struct{}
}

// NewReporter creates a reporter that will push overlay batches to out
// once Start is called.
func NewReporter(out chan<- renderer.PixelBatch) *Reporter {
	return &Reporter{
		Record: &Record{},
		out:    out,
		stop:   make(chan struct{}),
		done:   make(chan struct{}),
	}
}

// Start launches the background ticker goroutine. Safe to call once.
func (rp *Reporter) Start() {
	go rp.run()
}

// Stop halts the ticker and waits for its goroutine to exit.
func (rp *Reporter) Stop() {
	close(rp.stop)
	<-rp.done
}

func (rp *Reporter) run() {
	defer close(rp.done)
	ticker := time.NewTicker(TickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-rp.stop:
			return
		case <-ticker.C:
			snap := rp.Record.Snapshot()
			batch := renderOverlayText(overlayText(snap))
			select {
			case rp.out <- batch:
			case <-rp.stop:
				return
			}
		}
	}
}
