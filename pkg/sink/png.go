package sink

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	"github.com/kellanmars/spheretracer/pkg/renderer"
)

// OutputPath is where each completed frame is written, overwriting the
// previous frame's image.
const OutputPath = "output/raytracer.png"

// WritePNG quantizes grid into an RGBA8 image and writes it to path,
// creating parent directories as needed.
func WritePNG(grid *renderer.Grid, path string) error {
	img := image.NewRGBA(image.Rect(0, 0, grid.Width, grid.Height))
	for y := 0; y < grid.Height; y++ {
		for x := 0; x < grid.Width; x++ {
			c := grid.At(x, y)
			offset := img.PixOffset(x, y)
			img.Pix[offset+0] = quantize(c.X)
			img.Pix[offset+1] = quantize(c.Y)
			img.Pix[offset+2] = quantize(c.Z)
			img.Pix[offset+3] = 255
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		return fmt.Errorf("encoding png: %w", err)
	}
	return nil
}
