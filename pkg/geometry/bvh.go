package geometry

import (
	"math/rand"
	"sort"

	"github.com/kellanmars/spheretracer/pkg/core"
	"github.com/kellanmars/spheretracer/pkg/material"
)

// BVHNode is a node in the bounding-volume hierarchy: a binary tree whose
// leaves are the scene's colliders. Left and Right are each either a Sphere
// or another BVHNode (Shape is the tagged sum type), and BoundingBox is
// always exactly the union of the two children's boxes over the frame's
// shutter window.
type BVHNode struct {
	Left, Right Shape
	Box         core.AABB
}

// NewBVH builds a BVH from a non-empty slice of colliders, over the shutter
// window [t0, t1] used to bound moving geometry. An empty slice is a
// programmer error: building an accelerator over nothing indicates the
// scene was assembled incorrectly, so this fails fast rather than returning
// a degenerate empty tree.
func NewBVH(shapes []Shape, t0, t1 float64, random *rand.Rand) *BVHNode {
	if len(shapes) == 0 {
		panic("geometry: NewBVH called with no colliders")
	}
	shapesCopy := make([]Shape, len(shapes))
	copy(shapesCopy, shapes)
	return build(shapesCopy, t0, t1, random)
}

// build recursively partitions shapes into a binary tree. The split axis is
// chosen uniformly at random for each node; ordering is by the minimum
// corner of each shape's bounding box along that axis.
func build(shapes []Shape, t0, t1 float64, random *rand.Rand) *BVHNode {
	axis := random.Intn(3)
	less := func(i, j int) bool {
		return shapes[i].BoundingBox(t0, t1).AxisMin(axis) < shapes[j].BoundingBox(t0, t1).AxisMin(axis)
	}

	var node BVHNode
	switch len(shapes) {
	case 1:
		// Degenerate single-child node: both slots reference the same
		// collider. Traversal stays correct: the right slot is searched only
		// below the left hit's distance, finds nothing closer, and the left
		// hit is returned; this keeps the traversal branch-free.
		node.Left = shapes[0]
		node.Right = shapes[0]
	case 2:
		if less(0, 1) {
			node.Left, node.Right = shapes[0], shapes[1]
		} else {
			node.Left, node.Right = shapes[1], shapes[0]
		}
	default:
		sort.SliceStable(shapes, less)
		mid := len(shapes) / 2
		node.Left = build(shapes[:mid], t0, t1, random)
		node.Right = build(shapes[mid:], t0, t1, random)
	}

	node.Box = node.Left.BoundingBox(t0, t1).Union(node.Right.BoundingBox(t0, t1))
	return &node
}

// BoundingBox returns the node's precomputed bounding box, ignoring the
// requested window since it was already built for a fixed [t0, t1].
func (n *BVHNode) BoundingBox(t0, t1 float64) core.AABB {
	return n.Box
}

// Hit tests a ray against the node's box first, then recurses: left with
// the caller's tMax, then right with tMax tightened to the left hit's
// distance (if any), so the right subtree can only report a strictly
// closer hit. The closer of the two (or the only one present) is returned.
func (n *BVHNode) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	if !n.Box.Hit(ray, tMin, tMax) {
		return nil, false
	}

	leftHit, hitLeft := n.Left.Hit(ray, tMin, tMax)

	rightTMax := tMax
	if hitLeft {
		rightTMax = leftHit.T
	}
	rightHit, hitRight := n.Right.Hit(ray, tMin, rightTMax)

	if hitRight {
		return rightHit, true
	}
	return leftHit, hitLeft
}
