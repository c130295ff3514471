// Package camera implements the thin-lens camera: perspective projection
// with depth-of-field and a shutter window for motion blur sampling.
package camera

import (
	"math"
	"math/rand"

	"github.com/kellanmars/spheretracer/pkg/core"
)

// Camera is a thin-lens perspective camera. All fields derived from the
// construction inputs are precomputed once in New so make_ray stays a pure
// sampling routine with no trigonometry per call.
type Camera struct {
	origin          core.Vec3
	lowerLeft       core.Vec3
	horizontal      core.Vec3
	vertical        core.Vec3
	u, v, w         core.Vec3
	lensRadius      float64
	shutterDuration float64
}

// New constructs a camera looking from position toward lookAt, oriented by
// worldUp, with the given vertical field-of-view in degrees, aperture
// diameter (controls depth-of-field blur), and shutter open duration in
// frame-time units (controls motion blur).
func New(position, lookAt, worldUp core.Vec3, vfov, aspect, aperture, shutter float64) *Camera {
	theta := vfov * math.Pi / 180
	viewportHeight := 2 * math.Tan(theta/2)
	viewportWidth := aspect * viewportHeight

	w := position.Subtract(lookAt).Normalize()
	u := worldUp.Cross(w).Normalize()
	v := w.Cross(u)

	focusDist := position.Subtract(lookAt).Length()

	horizontal := u.Multiply(focusDist * viewportWidth)
	vertical := v.Multiply(focusDist * viewportHeight)
	lowerLeft := position.
		Subtract(horizontal.Multiply(0.5)).
		Subtract(vertical.Multiply(0.5)).
		Subtract(w.Multiply(focusDist))

	return &Camera{
		origin:          position,
		lowerLeft:       lowerLeft,
		horizontal:      horizontal,
		vertical:        vertical,
		u:               u,
		v:               v,
		w:               w,
		lensRadius:      aperture / 2,
		shutterDuration: shutter,
	}
}

// MakeRay samples a ray through normalized image-plane coordinates s, t in
// [0,1], jittering the origin across the lens for depth-of-field and
// choosing a uniform random time within the shutter window for motion blur.
func (c *Camera) MakeRay(s, t float64, random *rand.Rand) core.Ray {
	disk := core.RandomInUnitDisk(random).Multiply(c.lensRadius)
	offset := c.u.Multiply(disk.X).Add(c.v.Multiply(disk.Y))

	origin := c.origin.Add(offset)
	direction := c.lowerLeft.
		Add(c.horizontal.Multiply(s)).
		Add(c.vertical.Multiply(t)).
		Subtract(origin)

	time := random.Float64() * c.shutterDuration
	return core.NewRayAtTime(origin, direction, time)
}
