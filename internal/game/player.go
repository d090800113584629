// Package game provides the world orchestrator: it owns the active
// location, the player, and the clock, applies tool interactions, runs
// per-frame collision queries, and dispatches the day rollover to every
// entity in every known location.
package game

import (
	"sagebrook/internal/config"
	"sagebrook/internal/entity"
	"sagebrook/internal/item"
)

// Player holds the controllable character. X,Y is the bottom-center
// pivot in world pixels, same convention as entities.
type Player struct {
	Name       string  `json:"name"`
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
	Width      int     `json:"width"`
	Height     int     `json:"height"`
	Gold       int     `json:"gold"`
	Stamina    int     `json:"stamina"`
	MaxStamina int     `json:"max_stamina"`
	Mana       int     `json:"mana"`

	Inventory *item.Inventory `json:"inventory"`
}

// NewPlayer creates a player with the starting kit at the given feet
// position.
func NewPlayer(name string, x, y float64, cfg config.Config, registry *item.Registry) *Player {
	inv := item.NewInventory(cfg.Inventory.Slots, registry)
	inv.Add(item.NewTool(item.ToolHoe))
	inv.Add(item.NewTool(item.ToolWateringCan))
	inv.Add(item.NewTool(item.ToolShovel))
	inv.Add(item.NewTool(item.ToolAxe))
	inv.Add(item.NewTool(item.ToolWand))
	inv.Add(item.NewMaterial("corn_seeds", 12))
	inv.Add(item.NewMaterial("turnip_seeds", 8))

	return &Player{
		Name:       name,
		X:          x,
		Y:          y,
		Width:      20,
		Height:     28,
		Gold:       100,
		Stamina:    cfg.Stamina.Max,
		MaxStamina: cfg.Stamina.Max,
		Inventory:  inv,
	}
}

// Bounds returns the player's AABB (x0, y0, x1, y1) in world pixels.
func (p *Player) Bounds() (float64, float64, float64, float64) {
	halfW := float64(p.Width) / 2
	return p.X - halfW, p.Y - float64(p.Height), p.X + halfW, p.Y
}

// TileCoords derives the tile under the player's feet.
func (p *Player) TileCoords() (int, int) {
	return int(p.X) / entity.TileSize, int(p.Y-1) / entity.TileSize
}

// SpendStamina drains stamina if enough remains. Returns false, leaving
// stamina untouched, when the player is too tired.
func (p *Player) SpendStamina(cost int) bool {
	if p.Stamina < cost {
		return false
	}
	p.Stamina -= cost
	return true
}
