// Inventory: a fixed-size ordered array of nullable item slots.
// Adds are all-or-nothing so a failed add leaves every slot untouched
// and the triggering action stays retryable.
package item

// Inventory holds the player's items.
type Inventory struct {
	Slots    []*Item `json:"slots"`
	Selected int     `json:"selected"`

	registry *Registry
}

// NewInventory creates an empty inventory with the given slot count.
func NewInventory(slots int, registry *Registry) *Inventory {
	return &Inventory{
		Slots:    make([]*Item, slots),
		registry: registry,
	}
}

// At returns the item in a slot, or nil for an empty or out-of-range slot.
func (inv *Inventory) At(slot int) *Item {
	if slot < 0 || slot >= len(inv.Slots) {
		return nil
	}
	return inv.Slots[slot]
}

// Active returns the currently selected item, or nil.
func (inv *Inventory) Active() *Item {
	return inv.At(inv.Selected)
}

// Select sets the active slot. Out-of-range selections are ignored.
func (inv *Inventory) Select(slot int) {
	if slot >= 0 && slot < len(inv.Slots) {
		inv.Selected = slot
	}
}

// Scroll moves the selection by delta, wrapping around the slot array.
func (inv *Inventory) Scroll(delta int) {
	n := len(inv.Slots)
	if n == 0 {
		return
	}
	inv.Selected = ((inv.Selected+delta)%n + n) % n
}

// Add places an item into the inventory. Materials merge into existing
// stacks of the same key first, then occupy the first empty slot. Returns
// false, with no slot modified, when the item cannot fully fit.
func (inv *Inventory) Add(it *Item) bool {
	if it == nil {
		return false
	}

	if it.Kind == KindTool {
		for i, slot := range inv.Slots {
			if slot == nil {
				inv.Slots[i] = it
				return true
			}
		}
		return false
	}

	// Capacity check before mutating anything.
	remaining := it.Quantity
	maxStack := inv.registry.maxStack(it.Material)
	for _, slot := range inv.Slots {
		if remaining <= 0 {
			break
		}
		if slot == nil {
			remaining -= maxStack
		} else if slot.Kind == KindMaterial && slot.Material == it.Material {
			remaining -= maxStack - slot.Quantity
		}
	}
	if remaining > 0 {
		return false
	}

	// Apply: top up matching stacks, then fill empty slots.
	qty := it.Quantity
	for _, slot := range inv.Slots {
		if qty <= 0 {
			break
		}
		if slot != nil && slot.Kind == KindMaterial && slot.Material == it.Material && slot.Quantity < maxStack {
			take := maxStack - slot.Quantity
			if take > qty {
				take = qty
			}
			slot.Quantity += take
			qty -= take
		}
	}
	for i, slot := range inv.Slots {
		if qty <= 0 {
			break
		}
		if slot == nil {
			take := maxStack
			if take > qty {
				take = qty
			}
			inv.Slots[i] = NewMaterial(it.Material, take)
			qty -= take
		}
	}
	return true
}

// Remove decrements a material quantity from the inventory, clearing
// slots that reach zero. Returns false, with nothing removed, when the
// inventory holds less than the requested quantity.
func (inv *Inventory) Remove(key string, qty int) bool {
	have := 0
	for _, slot := range inv.Slots {
		if slot != nil && slot.Kind == KindMaterial && slot.Material == key {
			have += slot.Quantity
		}
	}
	if have < qty {
		return false
	}

	for i, slot := range inv.Slots {
		if qty <= 0 {
			break
		}
		if slot == nil || slot.Kind != KindMaterial || slot.Material != key {
			continue
		}
		take := slot.Quantity
		if take > qty {
			take = qty
		}
		slot.Quantity -= take
		qty -= take
		if slot.Quantity == 0 {
			inv.Slots[i] = nil
		}
	}
	return true
}

// Clear removes the item in a slot and returns it, or nil.
func (inv *Inventory) Clear(slot int) *Item {
	if slot < 0 || slot >= len(inv.Slots) {
		return nil
	}
	it := inv.Slots[slot]
	inv.Slots[slot] = nil
	return it
}

// Count returns the total quantity of a material across all slots.
func (inv *Inventory) Count(key string) int {
	total := 0
	for _, slot := range inv.Slots {
		if slot != nil && slot.Kind == KindMaterial && slot.Material == key {
			total += slot.Quantity
		}
	}
	return total
}
