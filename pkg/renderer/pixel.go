package renderer

import "github.com/kellanmars/spheretracer/pkg/core"

// Pixel is a single rendered image-space sample: integer coordinates plus
// the accumulated linear color.
type Pixel struct {
	X, Y  int
	Color core.Vec3
}

// PixelBatch is a sequence of Pixel finished together by one producer (a
// tile worker, or the progress overlay) and pushed as one unit to a sink.
type PixelBatch struct {
	Pixels []Pixel
}
