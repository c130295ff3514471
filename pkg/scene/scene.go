// Package scene assembles the top-level collider list into a Scene and
// builds its BVH once.
package scene

import (
	"math/rand"

	"github.com/kellanmars/spheretracer/pkg/camera"
	"github.com/kellanmars/spheretracer/pkg/core"
	"github.com/kellanmars/spheretracer/pkg/geometry"
	"github.com/kellanmars/spheretracer/pkg/material"
)

// Scene is an ordered sequence of top-level colliders consumed once to
// build the BVH. After Build, the scene is effectively immutable and may
// be shared read-only across every render worker.
type Scene struct {
	Shapes  []geometry.Shape
	Camera  *camera.Camera
	BVH     *geometry.BVHNode
	Shutter float64
}

// Build constructs the BVH over the scene's current Shapes for the
// shutter window [0, Shutter]. Called once, before any worker begins
// rendering tiles.
func (s *Scene) Build(random *rand.Rand) {
	s.BVH = geometry.NewBVH(s.Shapes, 0, s.Shutter, random)
}

// Hit delegates to the BVH, giving Scene the same Shape-like surface the
// renderer's ray_color routine expects to call against the whole scene.
func (s *Scene) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	return s.BVH.Hit(ray, tMin, tMax)
}
