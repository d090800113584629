// Package save persists and restores whole play sessions. A save file
// stores the world seed, the clock, the player, and per-location state
// as a delta against deterministic regeneration: only tiles that differ
// from a fresh Generate are written, while entities are written in full
// because their identifiers are not reproducible. Files are
// zstd-compressed JSON validated against an embedded schema; a small
// SQLite index next to them lists the slots without decompressing
// anything.
package save

import (
	"fmt"

	"sagebrook/internal/item"
)

// FormatVersion is the save file format written by this build.
const FormatVersion = 1

// SaveV1 is the top-level save file document.
type SaveV1 struct {
	Version   int    `json:"version"`
	SavedAt   string `json:"saved_at"` // RFC 3339
	WorldSeed int64  `json:"world_seed"`

	Day            int    `json:"day"`
	TimeOfDay      int    `json:"time_of_day"`
	ActiveLocation string `json:"active_location"`

	Player    PlayerV1     `json:"player"`
	Locations []LocationV1 `json:"locations"`
}

// PlayerV1 is the flattened player record.
type PlayerV1 struct {
	Name       string  `json:"name"`
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
	Gold       int     `json:"gold"`
	Stamina    int     `json:"stamina"`
	MaxStamina int     `json:"max_stamina"`
	Mana       int     `json:"mana"`

	SelectedSlot int      `json:"selected_slot"`
	Items        []SlotV1 `json:"items"`
}

// SlotV1 pins an inventory item to its slot index.
type SlotV1 struct {
	Index int    `json:"index"`
	Item  ItemV1 `json:"item"`
}

// ItemV1 is one stack. Type is "tool" or "material".
type ItemV1 struct {
	Type     string `json:"type"`
	Tool     string `json:"tool,omitempty"`
	Material string `json:"material,omitempty"`
	Quantity int    `json:"quantity"`
}

// LocationV1 stores one location as tile deltas plus the full entity
// list. Tiles absent from Tiles are whatever regeneration produces.
type LocationV1 struct {
	Name     string        `json:"name"`
	Tiles    []TileDeltaV1 `json:"tiles,omitempty"`
	Entities []EntityV1    `json:"entities,omitempty"`
}

// TileDeltaV1 is one tile that differs from the generated baseline.
type TileDeltaV1 struct {
	X  int `json:"x"`
	Y  int `json:"y"`
	ID int `json:"id"`
}

// EntityV1 is the flattened entity record: a type discriminator, the
// feet position, and the superset of variant fields. Fields that do not
// apply to the type are omitted.
type EntityV1 struct {
	Type   string  `json:"type"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  int     `json:"width,omitempty"`
	Height int     `json:"height,omitempty"`

	// Crop
	Species          string `json:"species,omitempty"`
	DaysWithoutWater int    `json:"days_without_water,omitempty"`
	WateredToday     bool   `json:"watered_today,omitempty"`

	// Crop and tree share the stage counters.
	Stage       int `json:"stage,omitempty"`
	DaysAtStage int `json:"days_at_stage,omitempty"`

	// Mana node
	Charge int `json:"charge,omitempty"`

	// Shipping bin
	Buffer   *ItemV1  `json:"buffer,omitempty"`
	Manifest []ItemV1 `json:"manifest,omitempty"`

	// Sign
	Text string `json:"text,omitempty"`
}

// Entity type discriminators.
const (
	typeObstacle    = "obstacle"
	typeCrop        = "crop"
	typeTree        = "tree"
	typeManaNode    = "mana_node"
	typeShippingBin = "shipping_bin"
	typeBed         = "bed"
	typeSign        = "sign"
)

// Item type discriminators.
const (
	itemTool     = "tool"
	itemMaterial = "material"
)

var toolNames = map[item.ToolID]string{
	item.ToolHoe:         "hoe",
	item.ToolWateringCan: "watering_can",
	item.ToolShovel:      "shovel",
	item.ToolAxe:         "axe",
	item.ToolWand:        "wand",
}

var toolIDs = func() map[string]item.ToolID {
	m := make(map[string]item.ToolID, len(toolNames))
	for id, name := range toolNames {
		m[name] = id
	}
	return m
}()

// encodeItem flattens one stack.
func encodeItem(it *item.Item) (ItemV1, error) {
	switch it.Kind {
	case item.KindTool:
		name, ok := toolNames[it.Tool]
		if !ok {
			return ItemV1{}, fmt.Errorf("encode item: unknown tool id %d", it.Tool)
		}
		return ItemV1{Type: itemTool, Tool: name, Quantity: 1}, nil
	case item.KindMaterial:
		return ItemV1{Type: itemMaterial, Material: it.Material, Quantity: it.Quantity}, nil
	}
	return ItemV1{}, fmt.Errorf("encode item: unknown kind %d", it.Kind)
}

// decodeItem rebuilds one stack.
func decodeItem(v ItemV1) (*item.Item, error) {
	switch v.Type {
	case itemTool:
		id, ok := toolIDs[v.Tool]
		if !ok {
			return nil, fmt.Errorf("decode item: unknown tool %q", v.Tool)
		}
		return item.NewTool(id), nil
	case itemMaterial:
		if v.Material == "" || v.Quantity <= 0 {
			return nil, fmt.Errorf("decode item: bad material stack %+v", v)
		}
		return item.NewMaterial(v.Material, v.Quantity), nil
	}
	return nil, fmt.Errorf("decode item: unknown type %q", v.Type)
}
