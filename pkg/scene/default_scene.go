package scene

import (
	"math/rand"

	"github.com/kellanmars/spheretracer/pkg/camera"
	"github.com/kellanmars/spheretracer/pkg/core"
	"github.com/kellanmars/spheretracer/pkg/geometry"
	"github.com/kellanmars/spheretracer/pkg/material"
)

// NewDefaultScene builds the reference scene: a 1000-unit ground sphere, a
// 23x23 grid of small jittered spheres, and four named large spheres.
// Aspect is width/height of the target image, used to build the camera.
func NewDefaultScene(aspect float64, random *rand.Rand) *Scene {
	shapes := make([]geometry.Shape, 0, 23*23+5)

	ground := material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))
	shapes = append(shapes, geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, ground))

	for a := -11; a < 12; a++ {
		for b := -11; b < 12; b++ {
			center := core.NewVec3(
				float64(a)+0.9*random.Float64(),
				0.2,
				float64(b)+0.9*random.Float64(),
			)
			if center.Subtract(core.NewVec3(4, 0.2, 0)).Length() <= 0.9 {
				continue
			}
			shapes = append(shapes, randomSmallSphere(center, random))
		}
	}

	glass := material.NewDielectric(1.5, 0.8)
	shapes = append(shapes, geometry.NewSphere(core.NewVec3(0, 1, 0), 1.0, glass))

	diffuse := material.NewLambertian(core.NewVec3(0.4, 0.2, 0.1))
	shapes = append(shapes, geometry.NewSphere(core.NewVec3(-4, 1, 0), 1.0, diffuse))

	metal := material.NewMetal(core.NewVec3(0.7, 0.6, 0.5), 1.0)
	shapes = append(shapes, geometry.NewSphere(core.NewVec3(4, 1, 0), 1.0, metal))

	dimGlass := material.NewDielectric(1.5, 0.8)
	shapes = append(shapes, geometry.NewSphere(core.NewVec3(-2, 0.5, 2), 0.5, dimGlass))

	cam := camera.New(
		core.NewVec3(13, 2, 3),
		core.NewVec3(0, 0, 0),
		core.NewVec3(0, 1, 0),
		20, aspect, 0.1, 0,
	)

	return &Scene{Shapes: shapes, Camera: cam, Shutter: 0}
}

// randomSmallSphere picks a material for a jittered grid sphere: Lambertian
// with an upward-drifting velocity below m=0.7, Metal below 0.9, otherwise
// Dielectric.
func randomSmallSphere(center core.Vec3, random *rand.Rand) *geometry.Sphere {
	m := random.Float64()
	switch {
	case m < 0.7:
		albedo := randomColor(random).MultiplyVec(randomColor(random))
		mat := material.NewLambertian(albedo)
		velocity := core.NewVec3(0, 0.1, 0)
		return geometry.NewMovingSphere(center, 0.2, velocity, mat)
	case m < 0.9:
		albedo := core.NewVec3(
			0.4+0.6*random.Float64(),
			0.4+0.6*random.Float64(),
			0.4+0.6*random.Float64(),
		)
		smoothness := 0.5 * random.Float64()
		mat := material.NewMetal(albedo, smoothness)
		return geometry.NewSphere(center, 0.2, mat)
	default:
		mat := material.NewDielectric(1.5, 0.8)
		return geometry.NewSphere(center, 0.2, mat)
	}
}

func randomColor(random *rand.Rand) core.Vec3 {
	return core.NewVec3(random.Float64(), random.Float64(), random.Float64())
}
