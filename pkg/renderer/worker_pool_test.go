package renderer

import (
	"math/rand"
	"testing"

	"github.com/kellanmars/spheretracer/pkg/camera"
	"github.com/kellanmars/spheretracer/pkg/core"
	"github.com/kellanmars/spheretracer/pkg/geometry"
	"github.com/kellanmars/spheretracer/pkg/material"
	"github.com/kellanmars/spheretracer/pkg/scene"
)

func testScene() *scene.Scene {
	mat := material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))
	sphere := geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, mat)
	cam := camera.New(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1), core.NewVec3(0, 1, 0), 90, 1.0, 0, 0)

	random := rand.New(rand.NewSource(1))
	s := &scene.Scene{Shapes: []geometry.Shape{sphere}, Camera: cam}
	s.Build(random)
	return s
}

func TestWorkerPoolRendersEveryTile(t *testing.T) {
	s := testScene()
	tiles := NewTileGrid(10, 10, 1)
	batches := make(chan PixelBatch, len(tiles))
	pool := NewWorkerPool(s, 10, 10, 2, batches)

	for _, tile := range tiles {
		pool.Submit(TileTask{Tile: tile, SamplesPerSide: 1})
	}

	seen := make(map[int]bool)
	for i := 0; i < len(tiles); i++ {
		batch := <-batches
		for _, p := range batch.Pixels {
			seen[p.Y*10+p.X] = true
		}
	}
	pool.Close()

	if len(seen) != 100 {
		t.Fatalf("rendered %d distinct pixels, want 100", len(seen))
	}
}

func TestWorkerPoolDefaultsWorkerCount(t *testing.T) {
	s := testScene()
	batches := make(chan PixelBatch, 1)
	pool := NewWorkerPool(s, 10, 10, 0, batches)
	defer pool.Close()

	tiles := NewTileGrid(10, 10, 1)
	pool.Submit(TileTask{Tile: tiles[0], SamplesPerSide: 1})
	batch := <-batches
	if len(batch.Pixels) == 0 {
		t.Errorf("expected a nonempty batch from the default-sized pool")
	}
}
