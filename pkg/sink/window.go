// Package sink implements the two external consumers of rendered pixels:
// a live ebiten window and a PNG file writer.
package sink

import (
	"image"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/kellanmars/spheretracer/pkg/renderer"
)

// Window is a live display of the render in progress. It implements
// ebiten.Game: Update drains whatever pixel batches have arrived since the
// last frame, Draw blits the accumulated framebuffer, and Layout reports
// the fixed window size.
type Window struct {
	width, height int
	framebuffer   *image.RGBA
	batches       <-chan renderer.PixelBatch
}

// NewWindow allocates a window-backed framebuffer of the given pixel
// dimensions, initially black, fed by batches.
func NewWindow(width, height int, batches <-chan renderer.PixelBatch) *Window {
	return &Window{
		width:       width,
		height:      height,
		framebuffer: image.NewRGBA(image.Rect(0, 0, width, height)),
		batches:     batches,
	}
}

// Drain pulls every batch currently queued on batches, non-blocking past a
// 1us poll so a stalled renderer never blocks the UI loop, and writes each
// pixel into the framebuffer.
func (w *Window) Drain(batches <-chan renderer.PixelBatch) {
	for {
		select {
		case batch, ok := <-batches:
			if !ok {
				return
			}
			w.writeBatch(batch)
		case <-time.After(time.Microsecond):
			return
		}
	}
}

func (w *Window) writeBatch(batch renderer.PixelBatch) {
	for _, p := range batch.Pixels {
		if p.X < 0 || p.X >= w.width || p.Y < 0 || p.Y >= w.height {
			continue
		}
		offset := (p.Y*w.width + p.X) * 4
		r := quantize(p.Color.X)
		g := quantize(p.Color.Y)
		b := quantize(p.Color.Z)
		w.framebuffer.Pix[offset+0] = r
		w.framebuffer.Pix[offset+1] = g
		w.framebuffer.Pix[offset+2] = b
		w.framebuffer.Pix[offset+3] = 255
	}
}

// quantize converts a linear color channel to a clamped [0,255] byte.
func quantize(channel float64) byte {
	v := math.Floor(255 * channel)
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return byte(v)
}

// Update satisfies ebiten.Game: it drains whatever batches have arrived
// since the last tick and checks for the ESC/close termination request.
func (w *Window) Update() error {
	w.Drain(w.batches)
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	return nil
}

// Draw satisfies ebiten.Game by blitting the current framebuffer.
func (w *Window) Draw(screen *ebiten.Image) {
	screen.WritePixels(w.framebuffer.Pix)
}

// Layout satisfies ebiten.Game, reporting the fixed logical window size.
func (w *Window) Layout(outsideWidth, outsideHeight int) (int, int) {
	return w.width, w.height
}
