// Package entity provides the world-entity model: positioned, possibly
// collidable actors placed on top of terrain. The variant set is closed
// (obstacle, crop, tree, mana node, shipping bin, bed, sign) and daily
// behavior is dispatched over the Kind tag, so the compiler can check
// exhaustiveness instead of relying on open subclassing.
package entity

import (
	"image/color"

	"github.com/google/uuid"

	"sagebrook/internal/grid"
)

// TileSize is the edge length of one terrain tile in world pixels.
const TileSize = 32

// Kind discriminates the entity variant.
type Kind uint8

const (
	KindObstacle Kind = iota + 1
	KindCrop
	KindTree
	KindManaNode
	KindShippingBin
	KindBed
	KindSign
)

// KindName returns a human-readable variant name.
func KindName(k Kind) string {
	switch k {
	case KindObstacle:
		return "Obstacle"
	case KindCrop:
		return "Crop"
	case KindTree:
		return "Tree"
	case KindManaNode:
		return "ManaNode"
	case KindShippingBin:
		return "ShippingBin"
	case KindBed:
		return "Bed"
	case KindSign:
		return "Sign"
	default:
		return "Unknown"
	}
}

// TileReader is the read-only terrain context an entity sees during its
// daily advance. Satisfied by *world.Location.
type TileReader interface {
	Tile(x, y int) grid.TileCell
}

// Entity is one world entity. X,Y is the bottom-center pivot ("feet") in
// world pixels; tile coordinates are always derived from it, never stored,
// so the two representations cannot drift apart. Exactly one variant state
// pointer is non-nil, matching Kind.
type Entity struct {
	ID         uuid.UUID `json:"id"`
	Kind       Kind      `json:"kind"`
	X          float64   `json:"x"`
	Y          float64   `json:"y"`
	Width      int       `json:"width"`
	Height     int       `json:"height"`
	Collidable bool      `json:"collidable"`

	Crop *CropState `json:"crop,omitempty"`
	Tree *TreeState `json:"tree,omitempty"`
	Mana *ManaState `json:"mana,omitempty"`
	Bin  *BinState  `json:"bin,omitempty"`
	Text string     `json:"text,omitempty"` // Sign contents
}

// TileCoords derives the grid coordinates under the entity's visual
// center from the feet pivot and height.
func (e *Entity) TileCoords() (int, int) {
	cx := e.X
	cy := e.Y - float64(e.Height)/2
	return floorDiv(cx, TileSize), floorDiv(cy, TileSize)
}

func floorDiv(v float64, size int) int {
	q := v / float64(size)
	i := int(q)
	if q < 0 && float64(i) != q {
		i--
	}
	return i
}

// Bounds returns the axis-aligned bounding box (x0, y0, x1, y1) in world
// pixels, anchored at the feet pivot.
func (e *Entity) Bounds() (float64, float64, float64, float64) {
	halfW := float64(e.Width) / 2
	return e.X - halfW, e.Y - float64(e.Height), e.X + halfW, e.Y
}

// OccupiesTile reports whether the entity's derived tile coordinates
// match (tx, ty).
func (e *Entity) OccupiesTile(tx, ty int) bool {
	ex, ey := e.TileCoords()
	return ex == tx && ey == ty
}

// AdvanceDay applies one in-game day to the entity, reading terrain
// through loc (which may be nil). Returns true when the owning location
// must remove the entity. Base obstacles, bins, beds and signs never
// change under the daily tick.
func (e *Entity) AdvanceDay(loc TileReader) bool {
	switch e.Kind {
	case KindCrop:
		return e.advanceCrop(loc)
	case KindTree:
		return e.advanceTree()
	case KindManaNode:
		return e.advanceMana()
	case KindObstacle, KindShippingBin, KindBed, KindSign:
		return false
	default:
		return false
	}
}

// TrySleep is the bed's capability check. Pure; the orchestrator drives
// the actual sleep sequence.
func (e *Entity) TrySleep() bool {
	return e.Kind == KindBed
}

// DisplayColor returns the presentation color for the entity's current
// state. The simulation never reads it.
func (e *Entity) DisplayColor() color.RGBA {
	switch e.Kind {
	case KindCrop:
		return e.Crop.stageColor()
	case KindTree:
		return e.Tree.stageColor()
	case KindManaNode:
		return color.RGBA{R: 90, G: 60, B: 200, A: 255}
	case KindShippingBin:
		return color.RGBA{R: 150, G: 90, B: 40, A: 255}
	case KindBed:
		return color.RGBA{R: 200, G: 60, B: 60, A: 255}
	case KindSign:
		return color.RGBA{R: 190, G: 160, B: 110, A: 255}
	default:
		return color.RGBA{R: 110, G: 110, B: 110, A: 255}
	}
}

// newBase builds the shared fields of every variant constructor.
func newBase(kind Kind, feetX, feetY float64, width, height int, collidable bool) *Entity {
	return &Entity{
		ID:         uuid.New(),
		Kind:       kind,
		X:          feetX,
		Y:          feetY,
		Width:      width,
		Height:     height,
		Collidable: collidable,
	}
}

// NewObstacle creates a generic collidable obstacle (rock, fence post).
func NewObstacle(feetX, feetY float64, width, height int) *Entity {
	return newBase(KindObstacle, feetX, feetY, width, height, true)
}

// NewBed creates a bed trigger.
func NewBed(feetX, feetY float64) *Entity {
	return newBase(KindBed, feetX, feetY, TileSize, TileSize, true)
}

// NewSign creates a sign holding dialogue text.
func NewSign(feetX, feetY float64, text string) *Entity {
	e := newBase(KindSign, feetX, feetY, TileSize, TileSize, true)
	e.Text = text
	return e
}
