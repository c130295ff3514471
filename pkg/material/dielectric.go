package material

import (
	"math"
	"math/rand"

	"github.com/kellanmars/spheretracer/pkg/core"
)

// Dielectric is a transparent material (glass, water) that both reflects
// and refracts according to Snell's law and Schlick's reflectance
// approximation.
type Dielectric struct {
	RefractionIndex float64
	Transparency    float64 // in [0,1]; attenuates the transmitted/reflected color
}

// NewDielectric creates a new dielectric material
func NewDielectric(refractionIndex, transparency float64) *Dielectric {
	return &Dielectric{RefractionIndex: refractionIndex, Transparency: transparency}
}

// Scatter always returns a ray: either a Fresnel/TIR-driven reflection or a
// Snell refraction, colored uniformly by transparency.
func (d *Dielectric) Scatter(rayIn core.Ray, hit HitRecord, random *rand.Rand) (ScatterResult, bool) {
	eta := d.RefractionIndex
	if hit.FrontFace {
		eta = 1 / d.RefractionIndex
	}

	unitDirection := rayIn.Direction.Normalize()
	cosTheta := math.Min(-unitDirection.Dot(hit.Normal), 1.0)
	sinTheta := math.Sqrt(1.0 - cosTheta*cosTheta)

	cannotRefract := eta*sinTheta > 1.0

	var direction core.Vec3
	if cannotRefract || Reflectance(cosTheta, eta) > random.Float64() {
		direction = reflect(unitDirection, hit.Normal)
	} else {
		direction = refract(unitDirection, hit.Normal, eta, cosTheta)
	}

	scattered := core.NewRayAtTime(hit.Point, direction, rayIn.Time)
	attenuation := core.NewVec3(d.Transparency, d.Transparency, d.Transparency)
	return ScatterResult{Scattered: scattered, Attenuation: attenuation}, true
}

// refract computes the Snell refraction of uv through a surface with normal
// n given the ratio of refractive indices eta.
func refract(uv, n core.Vec3, eta, cosTheta float64) core.Vec3 {
	rOutPerp := uv.Add(n.Multiply(cosTheta)).Multiply(eta)
	rOutParallel := n.Multiply(-math.Sqrt(math.Abs(1.0 - rOutPerp.LengthSquared())))
	return rOutPerp.Add(rOutParallel)
}

// Reflectance computes Fresnel reflectance using Schlick's approximation.
func Reflectance(cosine, eta float64) float64 {
	r0 := (1 - eta) / (1 + eta)
	r0 *= r0
	return r0 + (1-r0)*math.Pow(1-cosine, 5)
}
