// Tool and action resolution. Entity interaction always wins over tile
// interaction: an entity occupying the targeted tile suppresses the
// terrain effect even when the tool does nothing to that entity, so a
// rock can never be tilled under.
package game

import (
	"math"

	"sagebrook/internal/entity"
	"sagebrook/internal/grid"
	"sagebrook/internal/item"
)

// Outcome classifies the result of a player action.
type Outcome uint8

const (
	OutcomeNone     Outcome = iota // Nothing recognized the action; no state changed
	OutcomeRejected                // Recognized but invalid (range, stamina, full inventory); no state changed
	OutcomeTilled
	OutcomeDug
	OutcomeWatered
	OutcomePlanted
	OutcomeChopped
	OutcomeHarvested
	OutcomeManaDrained
	OutcomeShipped
	OutcomeRetrieved
	OutcomeRead
)

// Result carries an action outcome plus its payload.
type Result struct {
	Outcome Outcome
	Text    string // Sign contents for OutcomeRead
	Mana    int    // Amount drained for OutcomeManaDrained
}

// maxReach is how far from the player's feet an action can land, pixels.
const maxReach = 1.5 * entity.TileSize

func (s *Session) inReach(worldX, worldY float64) bool {
	dx := worldX - s.Player.X
	dy := worldY - s.Player.Y
	return math.Hypot(dx, dy) <= maxReach
}

// UseTool applies the active inventory item at a world position: tools
// act on entities first and terrain second, seed materials plant crops.
// Invalid actions leave every piece of state unmodified so the player
// can retry.
func (s *Session) UseTool(worldX, worldY float64) Result {
	if s.Transition.Busy() || !s.inReach(worldX, worldY) {
		return Result{Outcome: OutcomeRejected}
	}

	active := s.Player.Inventory.Active()
	if active == nil {
		return Result{Outcome: OutcomeNone}
	}

	tx := int(worldX) / entity.TileSize
	ty := int(worldY) / entity.TileSize

	if active.Kind == item.KindMaterial {
		return s.plantSeed(active, tx, ty)
	}

	// Stamina gates every tool swing.
	if s.Player.Stamina < s.cfg.Stamina.ToolCost {
		return Result{Outcome: OutcomeRejected}
	}

	// Entity interaction first; a recognized pairing or a plain obstacle
	// both suppress the tile effect.
	if target := s.Active.EntityAt(tx, ty); target != nil {
		return s.useToolOnEntity(active.Tool, target)
	}

	return s.useToolOnTile(active.Tool, tx, ty)
}

// useToolOnEntity resolves the tool+entity pairing table.
func (s *Session) useToolOnEntity(tool item.ToolID, target *entity.Entity) Result {
	switch {
	case tool == item.ToolWateringCan && target.Kind == entity.KindCrop:
		if !s.Player.SpendStamina(s.cfg.Stamina.ToolCost) {
			return Result{Outcome: OutcomeRejected}
		}
		target.Water()
		return Result{Outcome: OutcomeWatered}

	case tool == item.ToolAxe && target.Kind == entity.KindTree:
		if s.Player.Stamina < s.cfg.Stamina.ToolCost {
			return Result{Outcome: OutcomeRejected}
		}
		// Bank the wood before swinging: a full inventory leaves the
		// tree untouched and the chop retryable.
		if wood := target.ChopYield(); wood > 0 {
			if !s.Player.Inventory.Add(item.NewMaterial("wood", wood)) {
				return Result{Outcome: OutcomeRejected}
			}
		}
		s.Player.SpendStamina(s.cfg.Stamina.ToolCost)
		res := target.Chop()
		if res.Removed {
			s.Active.RemoveEntity(target.ID)
		}
		return Result{Outcome: OutcomeChopped}

	case tool == item.ToolWand && target.Kind == entity.KindManaNode:
		if !s.Player.SpendStamina(s.cfg.Stamina.ToolCost) {
			return Result{Outcome: OutcomeRejected}
		}
		drained := target.HarvestMana()
		s.Player.Mana += drained
		return Result{Outcome: OutcomeManaDrained, Mana: drained}
	}

	// Unrecognized pairing: the entity still blocks the terrain effect.
	return Result{Outcome: OutcomeNone}
}

// useToolOnTile resolves the fixed tile mutation table. Each tool acts
// only on specific source tiles and no-ops otherwise.
func (s *Session) useToolOnTile(tool item.ToolID, tx, ty int) Result {
	cell := s.Active.Tile(tx, ty)

	switch tool {
	case item.ToolHoe:
		if cell.ID == grid.TileGrass || cell.ID == grid.TileDirt {
			if !s.Player.SpendStamina(s.cfg.Stamina.ToolCost) {
				return Result{Outcome: OutcomeRejected}
			}
			s.Active.SetTile(tx, ty, grid.TileTilled)
			return Result{Outcome: OutcomeTilled}
		}
	case item.ToolShovel:
		if cell.ID == grid.TileStone {
			if !s.Player.SpendStamina(s.cfg.Stamina.ToolCost) {
				return Result{Outcome: OutcomeRejected}
			}
			s.Active.SetTile(tx, ty, grid.TileDirt)
			return Result{Outcome: OutcomeDug}
		}
	case item.ToolWateringCan:
		if cell.ID == grid.TileTilled || cell.ID == grid.TileDirt {
			if !s.Player.SpendStamina(s.cfg.Stamina.ToolCost) {
				return Result{Outcome: OutcomeRejected}
			}
			s.Active.SetTile(tx, ty, grid.TileWet)
			return Result{Outcome: OutcomeWatered}
		}
	}
	return Result{Outcome: OutcomeNone}
}

// plantSeed turns a seed material into a crop on tilled or wet soil.
func (s *Session) plantSeed(active *item.Item, tx, ty int) Result {
	species, ok := seedSpecies(active.Material)
	if !ok {
		return Result{Outcome: OutcomeNone}
	}
	def, ok := s.cfg.Crops[species]
	if !ok {
		return Result{Outcome: OutcomeNone}
	}

	cell := s.Active.Tile(tx, ty)
	if cell.ID != grid.TileTilled && cell.ID != grid.TileWet {
		return Result{Outcome: OutcomeRejected}
	}
	if s.Active.EntityAt(tx, ty) != nil {
		return Result{Outcome: OutcomeRejected}
	}
	if !s.Player.Inventory.Remove(active.Material, 1) {
		return Result{Outcome: OutcomeRejected}
	}

	feetX := float64(tx*entity.TileSize) + entity.TileSize/2
	feetY := float64((ty + 1) * entity.TileSize)
	s.Active.AddEntity(entity.NewCrop(species, def, feetX, feetY))
	return Result{Outcome: OutcomePlanted}
}

// seedSpecies maps a seed material key to its crop species.
func seedSpecies(materialKey string) (string, bool) {
	const suffix = "_seeds"
	if len(materialKey) <= len(suffix) || materialKey[len(materialKey)-len(suffix):] != suffix {
		return "", false
	}
	return materialKey[:len(materialKey)-len(suffix)], true
}

// Interact is the action button: harvest a mature crop, read a sign,
// ship the active item, or retrieve the shipping buffer when empty-handed.
func (s *Session) Interact(worldX, worldY float64) Result {
	if s.Transition.Busy() || !s.inReach(worldX, worldY) {
		return Result{Outcome: OutcomeRejected}
	}

	tx := int(worldX) / entity.TileSize
	ty := int(worldY) / entity.TileSize
	target := s.Active.EntityAt(tx, ty)
	if target == nil {
		return Result{Outcome: OutcomeNone}
	}

	switch target.Kind {
	case entity.KindCrop:
		return s.harvestCrop(target)
	case entity.KindSign:
		return Result{Outcome: OutcomeRead, Text: target.Text}
	case entity.KindShippingBin:
		return s.useShippingBin(target)
	}
	return Result{Outcome: OutcomeNone}
}

// harvestCrop moves a mature crop's yield into the inventory. A full
// inventory leaves the crop completely unmodified so the action is
// retryable.
func (s *Session) harvestCrop(crop *entity.Entity) Result {
	key, qty, ok := crop.TryHarvest()
	if !ok {
		return Result{Outcome: OutcomeNone}
	}
	if !s.Player.Inventory.Add(item.NewMaterial(key, qty)) {
		return Result{Outcome: OutcomeRejected}
	}
	if crop.ConsumeHarvest() {
		s.Active.RemoveEntity(crop.ID)
	}
	return Result{Outcome: OutcomeHarvested}
}

// useShippingBin ships the active material, or retrieves the buffer item
// when the player has nothing sellable selected.
func (s *Session) useShippingBin(bin *entity.Entity) Result {
	active := s.Player.Inventory.Active()
	if active != nil && active.Kind == item.KindMaterial {
		s.Player.Inventory.Clear(s.Player.Inventory.Selected)
		bin.Place(active)
		return Result{Outcome: OutcomeShipped}
	}

	buffered := bin.TakeBack()
	if buffered == nil {
		return Result{Outcome: OutcomeNone}
	}
	if !s.Player.Inventory.Add(buffered) {
		// No room: put it back exactly as it was.
		bin.Place(buffered)
		return Result{Outcome: OutcomeRejected}
	}
	return Result{Outcome: OutcomeRetrieved}
}
