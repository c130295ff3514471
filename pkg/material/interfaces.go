// Package material implements the three scattering laws (Lambertian, Metal,
// Dielectric) a Sphere's surface can carry.
package material

import (
	"math/rand"

	"github.com/kellanmars/spheretracer/pkg/core"
)

// HitRecord describes a ray-surface intersection: the hit point, the
// outward-facing normal (always flipped to oppose the ray), the parametric
// distance along the ray, whether the ray struck the front face, and the
// material at the surface.
type HitRecord struct {
	Point     core.Vec3
	Normal    core.Vec3
	T         float64
	FrontFace bool
	Material  Material
}

// SetFaceNormal orients the normal to oppose the ray and records whether
// the ray struck the front (outside) face.
func (h *HitRecord) SetFaceNormal(ray core.Ray, outwardNormal core.Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Negate()
	}
}

// ScatterResult is the outcome of a material scattering a ray: the new
// outgoing ray and the color attenuation to apply to whatever it returns.
type ScatterResult struct {
	Scattered   core.Ray
	Attenuation core.Vec3
}

// Material scatters an incoming ray off a hit surface. A false return means
// the ray is absorbed.
type Material interface {
	Scatter(rayIn core.Ray, hit HitRecord, random *rand.Rand) (ScatterResult, bool)
}
