package renderer

// RenderStats summarizes one frame's render: total pixels covered, total
// samples taken across all of them, and the configured samples-per-pixel
// target for the frame.
type RenderStats struct {
	TotalPixels     int
	SamplesPerPixel int
	TotalChunks     int
	CompletedChunks int
}

// TotalSamples returns the number of samples taken across the whole frame
// (TotalPixels * SamplesPerPixel).
func (s RenderStats) TotalSamples() int {
	return s.TotalPixels * s.SamplesPerPixel
}
