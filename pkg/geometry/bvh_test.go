package geometry

import (
	"math/rand"
	"testing"

	"github.com/kellanmars/spheretracer/pkg/core"
	"github.com/kellanmars/spheretracer/pkg/material"
)

func sphereAt(x, y, z, radius float64) *Sphere {
	return NewSphere(core.NewVec3(x, y, z), radius, material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5)))
}

func TestBVHSingleShapeDegenerateNode(t *testing.T) {
	s := sphereAt(0, 0, 0, 1)
	bvh := NewBVH([]Shape{s}, 0, 1, rand.New(rand.NewSource(1)))

	if bvh.Left != bvh.Right {
		t.Errorf("single-shape node should duplicate the shape into both children")
	}

	ray := core.NewRay(core.NewVec3(0, 0, -3), core.NewVec3(0, 0, 1))
	hit, ok := bvh.Hit(ray, 0, 10)
	if !ok {
		t.Fatalf("expected a hit")
	}
	if hit.T != 2 {
		t.Errorf("T = %v, want 2", hit.T)
	}
}

func TestBVHTwoShapesOrderedBySplit(t *testing.T) {
	a := sphereAt(-5, 0, 0, 1)
	b := sphereAt(5, 0, 0, 1)
	bvh := NewBVH([]Shape{b, a}, 0, 1, rand.New(rand.NewSource(1)))

	if _, ok := bvh.Left.(*Sphere); !ok {
		t.Fatalf("expected left child to be a sphere")
	}
	if _, ok := bvh.Right.(*Sphere); !ok {
		t.Fatalf("expected right child to be a sphere")
	}
	if bvh.Left != a || bvh.Right != b {
		t.Errorf("expected the sphere with the smaller minimum corner on the left")
	}
}

func TestBVHFindsClosestOfOverlappingShapes(t *testing.T) {
	near := sphereAt(0, 0, -2, 1)
	far := sphereAt(0, 0, -6, 1)
	bvh := NewBVH([]Shape{far, near}, 0, 1, rand.New(rand.NewSource(3)))

	ray := core.NewRay(core.NewVec3(0, 0, 10), core.NewVec3(0, 0, -1))
	hit, ok := bvh.Hit(ray, 0, 1000)
	if !ok {
		t.Fatalf("expected a hit")
	}
	wantT := 10.0 - (-1) // distance from z=10 to the near sphere's surface at z=-1
	if hit.T != wantT {
		t.Errorf("T = %v, want closer sphere's hit at %v", hit.T, wantT)
	}
}

func TestBVHCompletenessOverManyShapes(t *testing.T) {
	random := rand.New(rand.NewSource(99))
	shapes := make([]Shape, 0, 50)
	for i := 0; i < 50; i++ {
		shapes = append(shapes, sphereAt(float64(i)*3, 0, 0, 1))
	}
	bvh := NewBVH(shapes, 0, 1, random)

	for i := 0; i < 50; i++ {
		x := float64(i) * 3
		ray := core.NewRay(core.NewVec3(x, 0, -10), core.NewVec3(0, 0, 1))
		if _, ok := bvh.Hit(ray, 0, 1000); !ok {
			t.Errorf("expected a hit against sphere %d at x=%v", i, x)
		}
	}
}

func TestBVHMissWhenNoShapeIntersects(t *testing.T) {
	random := rand.New(rand.NewSource(5))
	shapes := []Shape{sphereAt(0, 0, 0, 1), sphereAt(10, 0, 0, 1), sphereAt(-10, 0, 0, 1)}
	bvh := NewBVH(shapes, 0, 1, random)

	ray := core.NewRay(core.NewVec3(0, 100, 0), core.NewVec3(0, 1, 0))
	if _, ok := bvh.Hit(ray, 0, 1000); ok {
		t.Errorf("expected no hit for a ray that misses every shape")
	}
}

func TestBVHBoundingBoxIsUnionOfChildren(t *testing.T) {
	a := sphereAt(-5, 0, 0, 1)
	b := sphereAt(5, 0, 0, 1)
	bvh := NewBVH([]Shape{a, b}, 0, 1, rand.New(rand.NewSource(1)))

	box := bvh.BoundingBox(0, 1)
	wantMin := a.BoundingBox(0, 1).Min.Min(b.BoundingBox(0, 1).Min)
	wantMax := a.BoundingBox(0, 1).Max.Max(b.BoundingBox(0, 1).Max)
	if box.Min != wantMin || box.Max != wantMax {
		t.Errorf("bounding box = %v, want min %v max %v", box, wantMin, wantMax)
	}
}
