// Package item provides the item model and the player inventory.
// Items are a closed tagged union of tools and stackable materials;
// stacking is keyed by the material registry key.
package item

// Kind discriminates the item union.
type Kind uint8

const (
	KindTool Kind = iota + 1
	KindMaterial
)

// ToolID enumerates the fixed tool set.
type ToolID uint8

const (
	ToolNone ToolID = iota
	ToolHoe
	ToolWateringCan
	ToolShovel
	ToolAxe
	ToolWand
)

// ToolName returns a human-readable tool name.
func ToolName(t ToolID) string {
	switch t {
	case ToolHoe:
		return "Hoe"
	case ToolWateringCan:
		return "Watering Can"
	case ToolShovel:
		return "Shovel"
	case ToolAxe:
		return "Axe"
	case ToolWand:
		return "Wand"
	default:
		return "None"
	}
}

// Item is one inventory entry: a tool, or a quantity of a material.
type Item struct {
	Kind     Kind   `json:"kind"`
	Tool     ToolID `json:"tool,omitempty"`     // Set when Kind == KindTool
	Material string `json:"material,omitempty"` // Registry key when Kind == KindMaterial
	Quantity int    `json:"quantity,omitempty"`
}

// NewTool creates a tool item.
func NewTool(t ToolID) *Item {
	return &Item{Kind: KindTool, Tool: t}
}

// NewMaterial creates a material stack.
func NewMaterial(key string, qty int) *Item {
	return &Item{Kind: KindMaterial, Material: key, Quantity: qty}
}

// MaterialDef describes one material in the registry.
type MaterialDef struct {
	Key       string `json:"key"`
	Name      string `json:"name"`
	SellPrice int    `json:"sell_price"`
	MaxStack  int    `json:"max_stack"`
}

// Registry holds material definitions. Owned by the session, not global.
type Registry struct {
	materials map[string]MaterialDef
}

// NewRegistry creates a registry preloaded with the base material set.
func NewRegistry() *Registry {
	r := &Registry{materials: make(map[string]MaterialDef)}
	for _, def := range []MaterialDef{
		{Key: "wood", Name: "Wood", SellPrice: 2, MaxStack: 99},
		{Key: "stone", Name: "Stone", SellPrice: 2, MaxStack: 99},
		{Key: "corn", Name: "Corn", SellPrice: 25, MaxStack: 99},
		{Key: "turnip", Name: "Turnip", SellPrice: 12, MaxStack: 99},
		{Key: "manaberry", Name: "Manaberry", SellPrice: 40, MaxStack: 99},
		{Key: "mana_crystal", Name: "Mana Crystal", SellPrice: 8, MaxStack: 99},
		{Key: "corn_seeds", Name: "Corn Seeds", SellPrice: 5, MaxStack: 99},
		{Key: "turnip_seeds", Name: "Turnip Seeds", SellPrice: 3, MaxStack: 99},
		{Key: "manaberry_seeds", Name: "Manaberry Seeds", SellPrice: 10, MaxStack: 99},
	} {
		r.materials[def.Key] = def
	}
	return r
}

// Define adds or replaces a material definition.
func (r *Registry) Define(def MaterialDef) {
	r.materials[def.Key] = def
}

// Material looks up a material definition by key.
func (r *Registry) Material(key string) (MaterialDef, bool) {
	def, ok := r.materials[key]
	return def, ok
}

// SellPrice returns the unit sale value of an item. Tools and unknown
// materials are worthless to the shipping bin.
func (r *Registry) SellPrice(it *Item) int {
	if it == nil || it.Kind != KindMaterial {
		return 0
	}
	def, ok := r.materials[it.Material]
	if !ok {
		return 0
	}
	return def.SellPrice
}

// maxStack returns the stack cap for a material key, defaulting to 99.
func (r *Registry) maxStack(key string) int {
	if def, ok := r.materials[key]; ok && def.MaxStack > 0 {
		return def.MaxStack
	}
	return 99
}
