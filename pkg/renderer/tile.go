package renderer

import (
	"image"
	"math/rand"
)

// TileSize is the width and height, in pixels, of one unit of render work.
const TileSize = 5

// Tile is a rectangular region of the image rendered independently by one
// worker, with its own deterministic PRNG so different tiles draw
// independent sample sequences.
type Tile struct {
	ID     int
	Bounds image.Rectangle
	Random *rand.Rand
}

// NewTileGrid partitions a width x height image into TileSize x TileSize
// tiles (the last row/column may be smaller), covering ceil(w/5) x
// ceil(h/5) tiles total.
func NewTileGrid(width, height int, seed int64) []*Tile {
	tilesX := (width + TileSize - 1) / TileSize
	tilesY := (height + TileSize - 1) / TileSize

	tiles := make([]*Tile, 0, tilesX*tilesY)
	id := 0
	for ty := 0; ty < tilesY; ty++ {
		for tx := 0; tx < tilesX; tx++ {
			x0 := tx * TileSize
			y0 := ty * TileSize
			x1 := min(x0+TileSize, width)
			y1 := min(y0+TileSize, height)

			tiles = append(tiles, &Tile{
				ID:     id,
				Bounds: image.Rect(x0, y0, x1, y1),
				Random: rand.New(rand.NewSource(seed + int64(id))),
			})
			id++
		}
	}
	return tiles
}
