// Package geometry implements the collider sum type (Sphere | BVHNode) and
// its ray intersection and bounding-box laws.
package geometry

import (
	"github.com/kellanmars/spheretracer/pkg/core"
	"github.com/kellanmars/spheretracer/pkg/material"
)

// Shape is the collider interface implemented by both Sphere and BVHNode,
// giving the BVH a uniform tagged-variant element to recurse over.
type Shape interface {
	Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool)
	BoundingBox(t0, t1 float64) core.AABB
}
