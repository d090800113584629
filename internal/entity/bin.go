// Shipping bin: a two-tier sale queue. The single buffer slot holds the
// most recently placed item and stays retrievable until end of day; the
// manifest holds items already pushed out of the buffer and committed to
// sale. Nightly processing converts both into gold and clears them.
package entity

import "sagebrook/internal/item"

// BinState holds the shipping bin variant fields.
type BinState struct {
	Buffer   *item.Item   `json:"buffer,omitempty"`
	Manifest []*item.Item `json:"manifest,omitempty"`
}

// NewShippingBin creates an empty shipping bin.
func NewShippingBin(feetX, feetY float64) *Entity {
	e := newBase(KindShippingBin, feetX, feetY, TileSize, TileSize, true)
	e.Bin = &BinState{}
	return e
}

// Place puts an item into the buffer slot. An item already in the buffer
// is pushed into the manifest and can no longer be taken back.
func (e *Entity) Place(it *item.Item) {
	b := e.Bin
	if b.Buffer != nil {
		b.Manifest = append(b.Manifest, b.Buffer)
	}
	b.Buffer = it
}

// TakeBack removes and returns the buffer item, or nil when the buffer
// is empty. Manifest entries are never retrievable.
func (e *Entity) TakeBack() *item.Item {
	b := e.Bin
	it := b.Buffer
	b.Buffer = nil
	return it
}

// ProcessNightly sells the buffer item and every manifest entry, clears
// both, and returns the total gold. Idempotent: a second call in the
// same night finds the bin empty and returns 0.
func (e *Entity) ProcessNightly(registry *item.Registry) int {
	b := e.Bin
	total := 0
	if b.Buffer != nil {
		total += registry.SellPrice(b.Buffer) * b.Buffer.Quantity
		b.Buffer = nil
	}
	for _, it := range b.Manifest {
		total += registry.SellPrice(it) * it.Quantity
	}
	b.Manifest = nil
	return total
}
