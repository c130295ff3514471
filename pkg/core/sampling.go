package core

import "math/rand"

// RandomInUnitSphere returns a uniformly distributed point inside the unit
// ball via rejection sampling.
func RandomInUnitSphere(random *rand.Rand) Vec3 {
	for {
		p := Vec3{
			X: 2*random.Float64() - 1,
			Y: 2*random.Float64() - 1,
			Z: 2*random.Float64() - 1,
		}
		if p.LengthSquared() < 1 {
			return p
		}
	}
}

// RandomUnitVector returns a uniformly distributed point on the unit
// sphere's surface, obtained by normalizing a point sampled from the unit
// ball.
func RandomUnitVector(random *rand.Rand) Vec3 {
	return RandomInUnitSphere(random).Normalize()
}

// RandomInUnitDisk returns a uniformly distributed point inside the unit
// disk in the XY plane (Z always zero), used for thin-lens aperture
// sampling.
func RandomInUnitDisk(random *rand.Rand) Vec3 {
	for {
		p := Vec3{X: 2*random.Float64() - 1, Y: 2*random.Float64() - 1}
		if p.LengthSquared() < 1 {
			return p
		}
	}
}
