package renderer

import (
	"image"
	"math/rand"
)

// Tile is a rectangular block of pixels rendered as one task.
// Its generator is only used by the worker currently rendering the tile,
// so a tile's samples are the same on every run.
type Tile struct {
	ID              int
	Bounds          image.Rectangle
	PassesCompleted int
	Random          *rand.Rand
}

// tileSeedOffset keeps tile 0 away from seed 0
const tileSeedOffset = 42

// NewTile creates a tile seeded from its ID
func NewTile(id int, bounds image.Rectangle) *Tile {
	return &Tile{
		ID:     id,
		Bounds: bounds,
		Random: rand.New(rand.NewSource(int64(id + tileSeedOffset))),
	}
}

// NewTileGrid splits a width x height image into row-major tiles of tileSize pixels.
// Tiles on the right and bottom edges are clipped to the image.
func NewTileGrid(width, height, tileSize int) []*Tile {
	if tileSize <= 0 {
		tileSize = DefaultProgressiveConfig().TileSize
	}

	var tiles []*Tile
	for y0 := 0; y0 < height; y0 += tileSize {
		for x0 := 0; x0 < width; x0 += tileSize {
			bounds := image.Rect(x0, y0, min(x0+tileSize, width), min(y0+tileSize, height))
			tiles = append(tiles, NewTile(len(tiles), bounds))
		}
	}
	return tiles
}

// tileCoords returns the tile's column and row in the grid
func (t *Tile) tileCoords(tileSize int) (int, int) {
	return t.Bounds.Min.X / tileSize, t.Bounds.Min.Y / tileSize
}
