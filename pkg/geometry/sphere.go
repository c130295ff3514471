package geometry

import (
	"math"

	"github.com/kellanmars/spheretracer/pkg/core"
	"github.com/kellanmars/spheretracer/pkg/material"
)

// Sphere is a moving sphere: its center at time t is Center + Velocity*t.
// A stationary sphere simply carries a zero Velocity.
type Sphere struct {
	Center   core.Vec3
	Radius   float64
	Velocity core.Vec3
	Material material.Material
}

// NewSphere creates a stationary sphere
func NewSphere(center core.Vec3, radius float64, mat material.Material) *Sphere {
	return &Sphere{Center: center, Radius: radius, Material: mat}
}

// NewMovingSphere creates a sphere with a per-frame linear velocity
func NewMovingSphere(center core.Vec3, radius float64, velocity core.Vec3, mat material.Material) *Sphere {
	return &Sphere{Center: center, Radius: radius, Velocity: velocity, Material: mat}
}

// CenterAt returns the sphere's center at time t
func (s *Sphere) CenterAt(t float64) core.Vec3 {
	return s.Center.Add(s.Velocity.Multiply(t))
}

// Hit tests ray-sphere intersection against the sphere's position at
// ray.Time.
func (s *Sphere) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	center := s.CenterAt(ray.Time)

	// Early-out: sphere is behind the ray origin.
	if center.Subtract(ray.Origin).Dot(ray.Direction) < 0 {
		return nil, false
	}

	oc := ray.Origin.Subtract(center)
	a := ray.Direction.LengthSquared()
	halfB := oc.Dot(ray.Direction)
	c := oc.LengthSquared() - s.Radius*s.Radius

	discriminant := halfB*halfB - a*c
	if discriminant < 0 {
		return nil, false
	}
	sqrtD := math.Sqrt(discriminant)

	root := (-halfB - sqrtD) / a
	if root < tMin || root >= tMax {
		root = (-halfB + sqrtD) / a
		if root < tMin || root >= tMax {
			return nil, false
		}
	}

	point := ray.At(root)
	outwardNormal := point.Subtract(center).Multiply(1 / s.Radius)

	hit := &material.HitRecord{T: root, Point: point, Material: s.Material}
	hit.SetFaceNormal(ray, outwardNormal)
	return hit, true
}

// BoundingBox returns the axis-aligned box bounding the sphere over
// [t0, t1]: the union of the boxes around center(t0) and center(t1), each
// expanded by the radius. For a stationary sphere (Velocity zero) this
// collapses to a single box around Center.
func (s *Sphere) BoundingBox(t0, t1 float64) core.AABB {
	r := core.NewVec3(s.Radius, s.Radius, s.Radius)
	c0 := s.CenterAt(t0)
	c1 := s.CenterAt(t1)

	box0 := core.NewAABB(c0.Subtract(r), c0.Add(r))
	box1 := core.NewAABB(c1.Subtract(r), c1.Add(r))
	return box0.Union(box1)
}
