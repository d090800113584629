// Crop lifecycle. Growth consumes one watered day at a time; drought
// accumulates across unwatered days and kills at a threshold. The daily
// advance must run while tiles are still wet — evaporation dries the
// grid only after every crop has been advanced.
package entity

import (
	"image/color"

	"sagebrook/internal/config"
	"sagebrook/internal/grid"
)

// CropStage is a crop's growth stage. Advances monotonically while
// watered; the only regression is to Dead, which is terminal.
type CropStage uint8

const (
	StageSeed CropStage = iota
	StageSprout
	StageGrowing
	StageMature
	StageDead
)

// StageName returns a human-readable stage name.
func StageName(s CropStage) string {
	switch s {
	case StageSeed:
		return "Seed"
	case StageSprout:
		return "Sprout"
	case StageGrowing:
		return "Growing"
	case StageMature:
		return "Mature"
	case StageDead:
		return "Dead"
	default:
		return "Unknown"
	}
}

// CropState holds the crop variant fields. The species definition is
// copied in at planting time so a crop entity is self-contained.
type CropState struct {
	Species          string         `json:"species"`
	Def              config.CropDef `json:"-"`
	Stage            CropStage      `json:"stage"`
	DaysAtStage      int            `json:"days_at_stage"`
	DaysWithoutWater int            `json:"days_without_water"`
	WateredToday     bool           `json:"watered_today"`
	VisualsDirty     bool           `json:"-"` // Set when the renderer must refresh the sprite
}

// NewCrop plants a crop of the given species at a tile's feet position.
func NewCrop(species string, def config.CropDef, feetX, feetY float64) *Entity {
	e := newBase(KindCrop, feetX, feetY, TileSize, TileSize, false)
	e.Crop = &CropState{Species: species, Def: def, Stage: StageSeed}
	return e
}

// Water marks the crop directly watered for the current day.
func (e *Entity) Water() {
	if e.Kind == KindCrop && e.Crop.Stage != StageDead {
		e.Crop.WateredToday = true
	}
}

// advanceCrop applies one day to a crop. Returns true when the crop must
// be removed (it died on an earlier day and has had its one visible day).
func (e *Entity) advanceCrop(loc TileReader) bool {
	c := e.Crop

	// Indirect watering: a wet tile under the crop counts, OR'd with the
	// direct flag. Supports sprinkler-style water sources.
	if loc != nil {
		tx, ty := e.TileCoords()
		if loc.Tile(tx, ty).ID == grid.TileWet {
			c.WateredToday = true
		}
	}

	if c.Stage == StageDead {
		return true
	}

	if !c.WateredToday {
		c.DaysWithoutWater++
		if c.DaysWithoutWater >= c.Def.MaxDaysWithoutWater {
			c.Stage = StageDead
			c.VisualsDirty = true
		}
		return false
	}

	c.DaysWithoutWater = 0

	if c.Stage == StageMature {
		// Mature crops hold until harvested.
		c.WateredToday = false
		return false
	}

	c.DaysAtStage++
	if c.DaysAtStage >= c.Def.DaysPerStage {
		c.DaysAtStage = 0
		c.Stage++
		c.VisualsDirty = true
	}

	// The watered flag is a single-day token, consumed regardless of
	// whether the crop grew.
	c.WateredToday = false
	return false
}

// TryHarvest reports the yield of a mature crop without mutating it, so
// the caller can attempt inventory placement first and retry on failure.
func (e *Entity) TryHarvest() (itemKey string, qty int, ok bool) {
	if e.Kind != KindCrop || e.Crop.Stage != StageMature {
		return "", 0, false
	}
	return e.Crop.Def.YieldItem, e.Crop.Def.YieldQty, true
}

// ConsumeHarvest commits a successful harvest. Returns true when the
// crop must be removed (non-regrowing); regrowing crops reset to their
// configured stage with counters zeroed.
func (e *Entity) ConsumeHarvest() bool {
	c := e.Crop
	if c.Def.RegrowStage < 0 {
		return true
	}
	c.Stage = CropStage(c.Def.RegrowStage)
	c.DaysAtStage = 0
	c.DaysWithoutWater = 0
	c.VisualsDirty = true
	return false
}

func (c *CropState) stageColor() color.RGBA {
	switch c.Stage {
	case StageSeed:
		return color.RGBA{R: 120, G: 100, B: 60, A: 255}
	case StageSprout:
		return color.RGBA{R: 110, G: 180, B: 90, A: 255}
	case StageGrowing:
		return color.RGBA{R: 60, G: 150, B: 60, A: 255}
	case StageMature:
		return color.RGBA{R: 230, G: 190, B: 60, A: 255}
	default: // Dead
		return color.RGBA{R: 100, G: 80, B: 50, A: 255}
	}
}
