package renderer

import (
	"math/rand"

	"github.com/kellanmars/spheretracer/pkg/core"
	"github.com/kellanmars/spheretracer/pkg/scene"
)

// MaxDepth is the maximum number of bounces a single ray may accumulate
// before ray_color gives up and returns black.
const MaxDepth = 64

var white = core.NewVec3(1, 1, 1)
var skyBlue = core.NewVec3(0.5, 0.7, 1.0)

// RayColor recursively traces a ray through the scene: a BVH hit scatters
// off the hit material and recurses, a miss returns the sky gradient, and
// exhausting the bounce budget returns black.
func RayColor(ray core.Ray, sc *scene.Scene, random *rand.Rand, depth int) core.Vec3 {
	if depth <= 0 {
		return core.Vec3{}
	}

	hit, ok := sc.Hit(ray, 0.001, core.Infinity)
	if !ok {
		direction := ray.Direction.Normalize()
		t := 0.5 * (direction.Y + 1)
		return white.Multiply(1 - t).Add(skyBlue.Multiply(t))
	}

	result, scattered := hit.Material.Scatter(ray, *hit, random)
	if !scattered {
		return core.Vec3{}
	}

	return result.Attenuation.MultiplyVec(RayColor(result.Scattered, sc, random, depth-1))
}

// RenderTile samples every pixel in tile.Bounds with samplesPerSide^2
// stratified samples, averages, and returns the finished batch.
func RenderTile(tile *Tile, sc *scene.Scene, width, height, samplesPerSide int) PixelBatch {
	pixels := make([]Pixel, 0, tile.Bounds.Dx()*tile.Bounds.Dy())

	for y := tile.Bounds.Min.Y; y < tile.Bounds.Max.Y; y++ {
		for x := tile.Bounds.Min.X; x < tile.Bounds.Max.X; x++ {
			pixels = append(pixels, Pixel{
				X:     x,
				Y:     y,
				Color: samplePixel(x, y, width, height, samplesPerSide, sc, tile.Random),
			})
		}
	}

	return PixelBatch{Pixels: pixels}
}

func samplePixel(x, y, width, height, samplesPerSide int, sc *scene.Scene, random *rand.Rand) core.Vec3 {
	var accum core.Vec3
	for i := 0; i < samplesPerSide; i++ {
		for j := 0; j < samplesPerSide; j++ {
			u := (float64(x) + float64(i)/float64(samplesPerSide)) / float64(width-1)
			v := (float64(height-1-y) + float64(j)/float64(samplesPerSide)) / float64(height-1)

			ray := sc.Camera.MakeRay(u, v, random)
			accum = accum.Add(RayColor(ray, sc, random, MaxDepth))
		}
	}

	samples := float64(samplesPerSide * samplesPerSide)
	return accum.Multiply(1 / samples).Clamp(0, 1)
}
