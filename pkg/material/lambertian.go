package material

import (
	"math/rand"

	"github.com/kellanmars/spheretracer/pkg/core"
)

// Lambertian is a perfectly diffuse material.
type Lambertian struct {
	Albedo core.Vec3
}

// NewLambertian creates a new lambertian material
func NewLambertian(albedo core.Vec3) *Lambertian {
	return &Lambertian{Albedo: albedo}
}

// Scatter always returns a scattered ray directed toward normal +
// random-unit-vector, falling back to the normal itself if that sum is
// near-zero.
func (l *Lambertian) Scatter(rayIn core.Ray, hit HitRecord, random *rand.Rand) (ScatterResult, bool) {
	direction := hit.Normal.Add(core.RandomUnitVector(random))
	if direction.NearZero() {
		direction = hit.Normal
	}

	scattered := core.NewRay(hit.Point, direction)
	return ScatterResult{Scattered: scattered, Attenuation: l.Albedo}, true
}
