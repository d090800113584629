// Mana node: a fixed harvestable charge that recharges daily.
package entity

import "sagebrook/internal/config"

// ManaState holds the mana node variant fields.
type ManaState struct {
	Charge int `json:"charge"`

	rechargePerDay int
	maxCharge      int
}

// NewManaNode creates a mana node starting at full charge.
func NewManaNode(cfg config.ManaConfig, feetX, feetY float64) *Entity {
	e := newBase(KindManaNode, feetX, feetY, TileSize, TileSize, true)
	e.Mana = &ManaState{
		Charge:         cfg.MaxCharge,
		rechargePerDay: cfg.RechargePerDay,
		maxCharge:      cfg.MaxCharge,
	}
	return e
}

// advanceMana adds the daily recharge, clamped to the node's maximum.
// Mana nodes are never removed by the daily tick.
func (e *Entity) advanceMana() bool {
	m := e.Mana
	m.Charge += m.rechargePerDay
	if m.Charge > m.maxCharge {
		m.Charge = m.maxCharge
	}
	return false
}

// HarvestMana drains the node and returns the amount taken (0 when the
// node is already empty).
func (e *Entity) HarvestMana() int {
	if e.Kind != KindManaNode {
		return 0
	}
	taken := e.Mana.Charge
	e.Mana.Charge = 0
	return taken
}
