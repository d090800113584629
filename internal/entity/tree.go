// Tree lifecycle: day-count growth to maturity, chopping to stump, and
// optional stump regrowth.
package entity

import (
	"image/color"

	"sagebrook/internal/config"
)

// TreeStage is a tree's growth stage.
type TreeStage uint8

const (
	TreeSapling TreeStage = iota
	TreeYoung
	TreeMature
	TreeStump
)

// TreeStageName returns a human-readable stage name.
func TreeStageName(s TreeStage) string {
	switch s {
	case TreeSapling:
		return "Sapling"
	case TreeYoung:
		return "Young"
	case TreeMature:
		return "Mature"
	case TreeStump:
		return "Stump"
	default:
		return "Unknown"
	}
}

// TreeState holds the tree variant fields. Thresholds are copied in at
// creation from the tree tuning config.
type TreeState struct {
	Stage       TreeStage `json:"stage"`
	DaysAtStage int       `json:"days_at_stage"`

	SaplingDays     int `json:"-"`
	YoungDays       int `json:"-"`
	StumpRegrowDays int `json:"-"` // 0 disables regrowth
}

// NewTree creates a tree at the given feet position and stage.
func NewTree(stage TreeStage, cfg config.TreeConfig, feetX, feetY float64) *Entity {
	e := newBase(KindTree, feetX, feetY, TileSize, TileSize*2, true)
	e.Tree = &TreeState{
		Stage:           stage,
		SaplingDays:     cfg.SaplingDays,
		YoungDays:       cfg.YoungDays,
		StumpRegrowDays: cfg.StumpRegrowDays,
	}
	return e
}

// advanceTree applies one day of growth. Mature is terminal under the
// daily tick; stumps regrow to sapling when configured. Never removes.
func (e *Entity) advanceTree() bool {
	t := e.Tree
	t.DaysAtStage++

	switch t.Stage {
	case TreeSapling:
		if t.DaysAtStage >= t.SaplingDays {
			t.Stage = TreeYoung
			t.DaysAtStage = 0
		}
	case TreeYoung:
		if t.DaysAtStage >= t.YoungDays {
			t.Stage = TreeMature
			t.DaysAtStage = 0
		}
	case TreeStump:
		if t.StumpRegrowDays > 0 && t.DaysAtStage >= t.StumpRegrowDays {
			t.Stage = TreeSapling
			t.DaysAtStage = 0
		}
	}
	return false
}

// ChopResult reports the outcome of an axe swing on a tree.
type ChopResult struct {
	Removed bool // Entity must be removed from its location
	WoodQty int
}

// ChopYield reports the wood a chop would produce without mutating the
// tree, so callers can verify inventory room first.
func (e *Entity) ChopYield() int {
	switch e.Tree.Stage {
	case TreeSapling:
		return 1
	case TreeYoung:
		return 3
	case TreeMature:
		return 8
	default:
		return 2
	}
}

// Chop applies an axe to the tree: saplings and young trees are felled
// outright, a mature tree becomes a stump, and a stump is cleared.
func (e *Entity) Chop() ChopResult {
	t := e.Tree
	switch t.Stage {
	case TreeSapling:
		return ChopResult{Removed: true, WoodQty: 1}
	case TreeYoung:
		return ChopResult{Removed: true, WoodQty: 3}
	case TreeMature:
		t.Stage = TreeStump
		t.DaysAtStage = 0
		return ChopResult{Removed: false, WoodQty: 8}
	default: // Stump
		return ChopResult{Removed: true, WoodQty: 2}
	}
}

func (t *TreeState) stageColor() color.RGBA {
	switch t.Stage {
	case TreeSapling:
		return color.RGBA{R: 130, G: 190, B: 110, A: 255}
	case TreeYoung:
		return color.RGBA{R: 70, G: 140, B: 70, A: 255}
	case TreeMature:
		return color.RGBA{R: 30, G: 100, B: 40, A: 255}
	default: // Stump
		return color.RGBA{R: 120, G: 85, B: 50, A: 255}
	}
}
