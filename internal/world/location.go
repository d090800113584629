// Package world provides locations: named tile grids with their world
// entities and warp points, generated deterministically from a seed and
// kept alive for the whole session so offscreen locations keep aging.
package world

import (
	"github.com/google/uuid"

	"sagebrook/internal/entity"
	"sagebrook/internal/grid"
)

// Warp links a tile in this location to a tile in another location.
// Read-only after creation.
type Warp struct {
	FromX        int    `json:"from_x"` // Tile coordinates in this location
	FromY        int    `json:"from_y"`
	Target       string `json:"target"` // Target location name
	TargetX      int    `json:"target_x"`
	TargetY      int    `json:"target_y"`
}

// Location aggregates a tile grid, its entities, and its exits.
type Location struct {
	Name     string
	Width    int
	Height   int
	Seed     int64 // Generation seed; with Name it regenerates the default state
	Grid     *grid.Grid
	Warps    []Warp
	Entities []*entity.Entity
}

// Tile returns the terrain cell at tile coordinates (x,y). Out-of-bounds
// reads degrade to the impassable void cell.
func (l *Location) Tile(x, y int) grid.TileCell {
	return l.Grid.Get(x, y)
}

// SetTile replaces the terrain at (x,y); no-op out of bounds.
func (l *Location) SetTile(x, y int, id grid.TileID) {
	l.Grid.SetID(x, y, id)
}

// AddEntity appends an entity to the location. An entity belongs to
// exactly one location; callers hand over ownership here.
func (l *Location) AddEntity(e *entity.Entity) {
	l.Entities = append(l.Entities, e)
}

// RemoveEntity deletes the entity with the given id. Returns whether an
// entity was removed.
func (l *Location) RemoveEntity(id uuid.UUID) bool {
	for i, e := range l.Entities {
		if e.ID == id {
			l.Entities = append(l.Entities[:i], l.Entities[i+1:]...)
			return true
		}
	}
	return false
}

// EntityAt returns the first entity whose derived tile coordinates are
// (tx,ty), or nil.
func (l *Location) EntityAt(tx, ty int) *entity.Entity {
	for _, e := range l.Entities {
		if e.OccupiesTile(tx, ty) {
			return e
		}
	}
	return nil
}

// EntityByID returns the entity with the given id, or nil.
func (l *Location) EntityByID(id uuid.UUID) *entity.Entity {
	for _, e := range l.Entities {
		if e.ID == id {
			return e
		}
	}
	return nil
}

// WarpAt returns the warp anchored at tile (tx,ty), or nil.
func (l *Location) WarpAt(tx, ty int) *Warp {
	for i := range l.Warps {
		if l.Warps[i].FromX == tx && l.Warps[i].FromY == ty {
			return &l.Warps[i]
		}
	}
	return nil
}
