package core

import "math"

// AABB is an axis-aligned bounding box, stored as a minimum and maximum
// corner with Min <= Max componentwise.
type AABB struct {
	Min Vec3
	Max Vec3
}

// NewAABB creates a new AABB from min and max points
func NewAABB(min, max Vec3) AABB {
	return AABB{Min: min, Max: max}
}

// Hit tests if a ray intersects the box using the slab method. Division by
// a zero direction component is permitted: the resulting ±Inf values
// correctly degenerate to a reject for rays parallel to that slab.
func (b AABB) Hit(ray Ray, tMin, tMax float64) bool {
	for axis := 0; axis < 3; axis++ {
		var min, max, origin, direction float64
		switch axis {
		case 0:
			min, max, origin, direction = b.Min.X, b.Max.X, ray.Origin.X, ray.Direction.X
		case 1:
			min, max, origin, direction = b.Min.Y, b.Max.Y, ray.Origin.Y, ray.Direction.Y
		default:
			min, max, origin, direction = b.Min.Z, b.Max.Z, ray.Origin.Z, ray.Direction.Z
		}

		invD := 1.0 / direction
		t0 := (min - origin) * invD
		t1 := (max - origin) * invD
		if invD < 0 {
			t0, t1 = t1, t0
		}

		tMin = math.Max(tMin, t0)
		tMax = math.Min(tMax, t1)
		if tMax <= tMin {
			return false
		}
	}
	return true
}

// Union returns the AABB that bounds both this box and another
func (b AABB) Union(other AABB) AABB {
	return AABB{Min: b.Min.Min(other.Min), Max: b.Max.Max(other.Max)}
}

// Expand returns an AABB expanded by the given amount along every axis
func (b AABB) Expand(amount float64) AABB {
	e := NewVec3(amount, amount, amount)
	return AABB{Min: b.Min.Subtract(e), Max: b.Max.Add(e)}
}

// AxisMin returns the minimum corner coordinate along the given axis (0=X, 1=Y, 2=Z)
func (b AABB) AxisMin(axis int) float64 {
	switch axis {
	case 0:
		return b.Min.X
	case 1:
		return b.Min.Y
	default:
		return b.Min.Z
	}
}
