package camera

import (
	"math"
	"math/rand"
	"testing"

	"github.com/kellanmars/spheretracer/pkg/core"
)

func TestCameraCenterRayPointsTowardLookAt(t *testing.T) {
	position := core.NewVec3(0, 0, 3)
	lookAt := core.NewVec3(0, 0, 0)
	up := core.NewVec3(0, 1, 0)
	c := New(position, lookAt, up, 90, 1.0, 0, 0)

	random := rand.New(rand.NewSource(1))
	ray := c.MakeRay(0.5, 0.5, random)

	want := lookAt.Subtract(position).Normalize()
	got := ray.Direction.Normalize()
	if got.Subtract(want).Length() > 1e-9 {
		t.Errorf("center ray direction = %v, want %v", got, want)
	}
}

func TestCameraZeroApertureHasNoLensJitter(t *testing.T) {
	c := New(core.NewVec3(0, 0, 3), core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), 90, 1.0, 0, 0)
	random := rand.New(rand.NewSource(1))

	for i := 0; i < 20; i++ {
		ray := c.MakeRay(0.2, 0.8, random)
		if ray.Origin != (core.NewVec3(0, 0, 3)) {
			t.Errorf("expected origin fixed at the camera position with zero aperture, got %v", ray.Origin)
		}
	}
}

func TestCameraApertureJittersOrigin(t *testing.T) {
	c := New(core.NewVec3(0, 0, 3), core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), 90, 1.0, 2.0, 0)
	random := rand.New(rand.NewSource(1))

	sawJitter := false
	for i := 0; i < 50; i++ {
		ray := c.MakeRay(0.5, 0.5, random)
		if ray.Origin.Subtract(core.NewVec3(0, 0, 3)).Length() > 1e-9 {
			sawJitter = true
			break
		}
	}
	if !sawJitter {
		t.Errorf("expected nonzero aperture to jitter the ray origin across samples")
	}
}

func TestCameraZeroShutterProducesZeroTime(t *testing.T) {
	c := New(core.NewVec3(0, 0, 3), core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), 90, 1.0, 0, 0)
	random := rand.New(rand.NewSource(1))

	for i := 0; i < 20; i++ {
		ray := c.MakeRay(0.5, 0.5, random)
		if ray.Time != 0 {
			t.Errorf("expected ray.Time == 0 with zero shutter, got %v", ray.Time)
		}
	}
}

func TestCameraShutterBoundsRayTime(t *testing.T) {
	const shutter = 1.0
	c := New(core.NewVec3(0, 0, 3), core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), 90, 1.0, 0, shutter)
	random := rand.New(rand.NewSource(2))

	for i := 0; i < 200; i++ {
		ray := c.MakeRay(0.5, 0.5, random)
		if ray.Time < 0 || ray.Time > shutter {
			t.Fatalf("ray.Time = %v out of bounds [0,%v]", ray.Time, shutter)
		}
	}
}

func TestCameraCornerRaysDivergeByFOV(t *testing.T) {
	c := New(core.NewVec3(0, 0, 1), core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), 90, 1.0, 0, 0)
	random := rand.New(rand.NewSource(1))

	left := c.MakeRay(0, 0.5, random)
	right := c.MakeRay(1, 0.5, random)

	angle := math.Acos(left.Direction.Normalize().Dot(right.Direction.Normalize()))
	if angle < 0.1 {
		t.Errorf("expected corner rays to diverge meaningfully, got angle %v radians", angle)
	}
}
