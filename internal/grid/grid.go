// Package grid provides the tile-grid terrain model.
// A Grid is a fixed-size 2D array of TileCells with bounds-safe access:
// out-of-bounds reads degrade to an impassable void cell and out-of-bounds
// writes are dropped, so callers indexing with screen-derived coordinates
// never have to check bounds themselves.
package grid

import "image/color"

// TileID identifies a terrain material.
type TileID uint8

const (
	TileVoid TileID = iota // Out-of-bounds sentinel, never placed
	TileGrass
	TileDirt
	TileTilled
	TileWet
	TileStone
	TileWater
	TileSand
	TileFloor
)

// TileCell is one cell of the world grid. Immutable value type.
type TileCell struct {
	ID       TileID `json:"id"`
	Walkable bool   `json:"walkable"`
}

// voidCell is returned for every lookup outside the grid.
var voidCell = TileCell{ID: TileVoid, Walkable: false}

// Cell returns the canonical TileCell for a tile id.
func Cell(id TileID) TileCell {
	return TileCell{ID: id, Walkable: Walkable(id)}
}

// Walkable reports whether a tile id can be stood on.
func Walkable(id TileID) bool {
	switch id {
	case TileVoid, TileWater:
		return false
	default:
		return true
	}
}

// Grid is a width×height array of terrain cells, indexed [x,y].
type Grid struct {
	Width  int        `json:"width"`
	Height int        `json:"height"`
	Cells  []TileCell `json:"cells"`
}

// New creates a grid filled with the given tile.
func New(width, height int, fill TileID) *Grid {
	g := &Grid{
		Width:  width,
		Height: height,
		Cells:  make([]TileCell, width*height),
	}
	cell := Cell(fill)
	for i := range g.Cells {
		g.Cells[i] = cell
	}
	return g
}

// Get returns the cell at (x,y), or the impassable void cell when (x,y)
// is outside the grid. Lookups never fail; they degrade to blocking.
func (g *Grid) Get(x, y int) TileCell {
	if x < 0 || y < 0 || x >= g.Width || y >= g.Height {
		return voidCell
	}
	return g.Cells[y*g.Width+x]
}

// Set replaces the cell at (x,y). No-op when (x,y) is outside the grid.
func (g *Grid) Set(x, y int, cell TileCell) {
	if x < 0 || y < 0 || x >= g.Width || y >= g.Height {
		return
	}
	g.Cells[y*g.Width+x] = cell
}

// SetID replaces the tile id at (x,y), deriving walkability from the registry.
func (g *Grid) SetID(x, y int, id TileID) {
	g.Set(x, y, Cell(id))
}

// TileName returns a human-readable name for a tile id.
func TileName(id TileID) string {
	switch id {
	case TileGrass:
		return "Grass"
	case TileDirt:
		return "Dirt"
	case TileTilled:
		return "Tilled"
	case TileWet:
		return "Wet"
	case TileStone:
		return "Stone"
	case TileWater:
		return "Water"
	case TileSand:
		return "Sand"
	case TileFloor:
		return "Floor"
	case TileVoid:
		return "Void"
	default:
		return "Unknown"
	}
}

// TileColor returns the display color for a tile id, consumed by the
// presentation layer. The simulation itself never reads colors.
func TileColor(id TileID) color.RGBA {
	switch id {
	case TileGrass:
		return color.RGBA{R: 58, G: 137, B: 59, A: 255}
	case TileDirt:
		return color.RGBA{R: 133, G: 97, B: 62, A: 255}
	case TileTilled:
		return color.RGBA{R: 101, G: 70, B: 43, A: 255}
	case TileWet:
		return color.RGBA{R: 74, G: 52, B: 36, A: 255}
	case TileStone:
		return color.RGBA{R: 128, G: 128, B: 132, A: 255}
	case TileWater:
		return color.RGBA{R: 49, G: 88, B: 173, A: 255}
	case TileSand:
		return color.RGBA{R: 214, G: 196, B: 138, A: 255}
	case TileFloor:
		return color.RGBA{R: 160, G: 130, B: 95, A: 255}
	default:
		return color.RGBA{A: 255}
	}
}
