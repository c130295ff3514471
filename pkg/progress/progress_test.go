package progress

import (
	"testing"
	"time"
)

func TestRecordStartFrameResetsCounters(t *testing.T) {
	var r Record
	r.StartFrame(4, 10)
	r.ChunkDone()
	r.ChunkDone()

	snap := r.Snapshot()
	if snap.SamplesPerPixel != 4 {
		t.Errorf("SamplesPerPixel = %d, want 4", snap.SamplesPerPixel)
	}
	if snap.TotalChunks != 10 {
		t.Errorf("TotalChunks = %d, want 10", snap.TotalChunks)
	}
	if snap.CompletedChunks != 2 {
		t.Errorf("CompletedChunks = %d, want 2", snap.CompletedChunks)
	}

	r.StartFrame(8, 20)
	snap = r.Snapshot()
	if snap.CompletedChunks != 0 {
		t.Errorf("expected CompletedChunks reset to 0 on new frame, got %d", snap.CompletedChunks)
	}
}

func TestSnapshotPercentCompleteAtBounds(t *testing.T) {
	var r Record
	r.StartFrame(1, 4)

	if got := r.Snapshot().PercentComplete(); got != 0 {
		t.Errorf("PercentComplete = %v, want 0 at start", got)
	}

	for i := 0; i < 4; i++ {
		r.ChunkDone()
	}
	if got := r.Snapshot().PercentComplete(); got != 100 {
		t.Errorf("PercentComplete = %v, want 100 when all chunks done", got)
	}
}

func TestSnapshotETAZeroWhenComplete(t *testing.T) {
	var r Record
	r.StartFrame(1, 2)
	r.ChunkDone()
	r.ChunkDone()

	if eta := r.Snapshot().ETA(); eta != 0 {
		t.Errorf("ETA = %v, want 0 once all chunks are done", eta)
	}
}

func TestSnapshotElapsedGrowsOverTime(t *testing.T) {
	var r Record
	r.StartFrame(1, 1)
	first := r.Snapshot().Elapsed()
	time.Sleep(5 * time.Millisecond)
	second := r.Snapshot().Elapsed()

	if second <= first {
		t.Errorf("expected elapsed time to grow, got first=%v second=%v", first, second)
	}
}

func TestFinishFrameAdvancesCompletedFrames(t *testing.T) {
	var r Record
	r.StartFrame(1, 1)
	r.FinishFrame(4)

	snap := r.Snapshot()
	if snap.CompletedFrames != 1 {
		t.Errorf("CompletedFrames = %d, want 1", snap.CompletedFrames)
	}
	if snap.TotalFrames != 4 {
		t.Errorf("TotalFrames = %d, want 4", snap.TotalFrames)
	}
}
