package material

import (
	"math/rand"

	"github.com/kellanmars/spheretracer/pkg/core"
)

// Metal is a metallic material with adjustable specular smoothness.
type Metal struct {
	Albedo     core.Vec3
	Smoothness float64 // 0 = very rough, 1 = perfect mirror
}

// NewMetal creates a new metal material, clamping smoothness to [0,1]
func NewMetal(albedo core.Vec3, smoothness float64) *Metal {
	if smoothness > 1 {
		smoothness = 1
	}
	if smoothness < 0 {
		smoothness = 0
	}
	return &Metal{Albedo: albedo, Smoothness: smoothness}
}

// Scatter reflects the incoming ray about the normal, perturbing the
// reflection *origin* (not direction) by (1-smoothness) times a random
// point in the unit sphere. The ray is absorbed if the reflection would
// point back into the surface.
func (m *Metal) Scatter(rayIn core.Ray, hit HitRecord, random *rand.Rand) (ScatterResult, bool) {
	reflected := reflect(rayIn.Direction.Normalize(), hit.Normal)

	origin := hit.Point
	if m.Smoothness < 1 {
		perturbation := core.RandomInUnitSphere(random).Multiply(1 - m.Smoothness)
		origin = origin.Add(perturbation)
	}

	scattered := core.NewRayAtTime(origin, reflected, rayIn.Time)
	if scattered.Direction.Dot(hit.Normal) <= 0 {
		return ScatterResult{}, false
	}

	return ScatterResult{Scattered: scattered, Attenuation: m.Albedo}, true
}

// reflect computes the reflection of v off a surface with normal n
func reflect(v, n core.Vec3) core.Vec3 {
	return v.Subtract(n.Multiply(2 * v.Dot(n)))
}
