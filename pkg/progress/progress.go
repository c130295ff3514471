// Package progress implements the render's progress reporter: a
// mutex-guarded shared record updated by tile workers and snapshotted by a
// background ticker that renders a text overlay into the pixel stream.
package progress

import (
	"sync"
	"time"
)

// Record is the shared mutable state workers update in O(1) critical
// sections and the ticker snapshots to compute elapsed time, per-chunk
// mean, and ETA.
type Record struct {
	mu sync.Mutex

	currentFrameStart time.Time
	currentFrameEnd   time.Time
	frameEndKnown     bool

	samplesPerPixel int
	totalChunks     int
	completedChunks int
	totalFrames     int
	completedFrames int
}

// Snapshot is an immutable copy of Record taken under the lock, safe to
// read outside it.
type Snapshot struct {
	CurrentFrameStart time.Time
	SamplesPerPixel   int
	TotalChunks       int
	CompletedChunks   int
	TotalFrames       int
	CompletedFrames   int
}

// StartFrame resets the per-frame counters when a new frame begins.
func (r *Record) StartFrame(samplesPerPixel, totalChunks int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.currentFrameStart = time.Now()
	r.frameEndKnown = false
	r.samplesPerPixel = samplesPerPixel
	r.totalChunks = totalChunks
	r.completedChunks = 0
}

// ChunkDone increments the completed-chunk counter. Called once per
// drained tile batch.
func (r *Record) ChunkDone() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.completedChunks++
}

// FinishFrame marks the current frame complete and advances the
// completed/total frame counters.
func (r *Record) FinishFrame(totalFrames int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.currentFrameEnd = time.Now()
	r.frameEndKnown = true
	r.totalFrames = totalFrames
	r.completedFrames++
}

// Snapshot copies the record's current state under the lock.
func (r *Record) Snapshot() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()
	return Snapshot{
		CurrentFrameStart: r.currentFrameStart,
		SamplesPerPixel:   r.samplesPerPixel,
		TotalChunks:       r.totalChunks,
		CompletedChunks:   r.completedChunks,
		TotalFrames:       r.totalFrames,
		CompletedFrames:   r.completedFrames,
	}
}

// Elapsed returns the time since the current frame started, as of now.
func (s Snapshot) Elapsed() time.Duration {
	return time.Since(s.CurrentFrameStart)
}

// PerChunkMean returns the average time spent per completed chunk so far
// this frame.
func (s Snapshot) PerChunkMean() time.Duration {
	if s.CompletedChunks == 0 {
		return 0
	}
	return s.Elapsed() / time.Duration(s.CompletedChunks)
}

// ETA estimates the remaining time for the current frame by extrapolating
// the per-chunk mean across the remaining chunks.
func (s Snapshot) ETA() time.Duration {
	remaining := s.TotalChunks - s.CompletedChunks
	if remaining <= 0 {
		return 0
	}
	return s.PerChunkMean() * time.Duration(remaining)
}

// PercentComplete returns the frame's completion fraction in [0,100].
func (s Snapshot) PercentComplete() float64 {
	if s.TotalChunks == 0 {
		return 0
	}
	return 100 * float64(s.CompletedChunks) / float64(s.TotalChunks)
}
