package progress

import (
	"fmt"
	"image"
	"time"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/kellanmars/spheretracer/pkg/core"
	"github.com/kellanmars/spheretracer/pkg/renderer"
)

// overlayColor is the text color rasterized into the overlay, reused as
// the PixelBatch's uniform pixel color.
var overlayColor = core.NewVec3(1, 1, 0)

// renderOverlayText rasterizes s at the top-left corner of an image-sized
// canvas using golang.org/x/image's basic fixed-width face, and returns it
// as a PixelBatch of only the glyphs' opaque pixels so it can be pushed
// down the same channel the window sink drains tile batches from without
// touching background pixels.
func renderOverlayText(s string) renderer.PixelBatch {
	const pad = 4
	width := len(s)*7 + pad*2
	height := basicfont.Face7x13.Height + pad*2

	canvas := image.NewAlpha(image.Rect(0, 0, width, height))
	drawer := &font.Drawer{
		Dst:  canvas,
		Src:  image.Opaque,
		Face: basicfont.Face7x13,
		Dot:  fixed.P(pad, basicfont.Face7x13.Ascent+pad),
	}
	drawer.DrawString(s)

	pixels := make([]renderer.Pixel, 0, width*height/4)
	bounds := canvas.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			if canvas.AlphaAt(x, y).A == 0 {
				continue
			}
			pixels = append(pixels, renderer.Pixel{X: x, Y: y, Color: overlayColor})
		}
	}
	return renderer.PixelBatch{Pixels: pixels}
}

// overlayText formats the snapshot into the single-line status string
// shown over the render: elapsed time, ETA, percent complete, and chunk
// counts.
func overlayText(snap Snapshot) string {
	return fmt.Sprintf(
		"frame %d/%d  chunk %d/%d  %.1f%%  elapsed %s  eta %s  spp %d",
		snap.CompletedFrames+1, max(snap.TotalFrames, snap.CompletedFrames+1),
		snap.CompletedChunks, snap.TotalChunks,
		snap.PercentComplete(),
		snap.Elapsed().Round(time.Millisecond),
		snap.ETA().Round(time.Millisecond),
		snap.SamplesPerPixel,
	)
}
