package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sagebrook/internal/config"
	"sagebrook/internal/entity"
	"sagebrook/internal/grid"
	"sagebrook/internal/item"
	"sagebrook/internal/weather"
	"sagebrook/internal/world"
)

// newTestSession builds a session and flattens the farm around the player
// into bare grass with no entities, so tests control every tile.
func newTestSession(t *testing.T) *Session {
	t.Helper()
	s := NewSession("Tester", 42, config.Default())
	for y := 0; y < s.Active.Height; y++ {
		for x := 0; x < s.Active.Width; x++ {
			s.Active.SetTile(x, y, grid.TileGrass)
		}
	}
	s.Active.Entities = nil
	return s
}

// tileCenter returns the world-pixel center of a tile.
func tileCenter(tx, ty int) (float64, float64) {
	return float64(tx*entity.TileSize) + 16, float64(ty*entity.TileSize) + 16
}

func selectTool(t *testing.T, s *Session, tool item.ToolID) {
	t.Helper()
	for i := range s.Player.Inventory.Slots {
		it := s.Player.Inventory.At(i)
		if it != nil && it.Kind == item.KindTool && it.Tool == tool {
			s.Player.Inventory.Select(i)
			return
		}
	}
	t.Fatalf("tool %v not in starting kit", tool)
}

func selectMaterial(t *testing.T, s *Session, key string) {
	t.Helper()
	for i := range s.Player.Inventory.Slots {
		it := s.Player.Inventory.At(i)
		if it != nil && it.Kind == item.KindMaterial && it.Material == key {
			s.Player.Inventory.Select(i)
			return
		}
	}
	t.Fatalf("material %q not in inventory", key)
}

func TestUseTool_TileMutationTable(t *testing.T) {
	s := newTestSession(t)
	x, y := tileCenter(5, 5) // In reach of the spawn tile (4,5)

	selectTool(t, s, item.ToolHoe)
	assert.Equal(t, OutcomeTilled, s.UseTool(x, y).Outcome)
	assert.Equal(t, grid.TileTilled, s.Active.Tile(5, 5).ID)

	// Hoe on already-tilled soil is a no-op.
	assert.Equal(t, OutcomeNone, s.UseTool(x, y).Outcome)

	selectTool(t, s, item.ToolWateringCan)
	assert.Equal(t, OutcomeWatered, s.UseTool(x, y).Outcome)
	assert.Equal(t, grid.TileWet, s.Active.Tile(5, 5).ID)

	// Shovel turns stone into dirt.
	s.Active.SetTile(4, 4, grid.TileStone)
	x2, y2 := tileCenter(4, 4)
	selectTool(t, s, item.ToolShovel)
	assert.Equal(t, OutcomeDug, s.UseTool(x2, y2).Outcome)
	assert.Equal(t, grid.TileDirt, s.Active.Tile(4, 4).ID)
}

func TestUseTool_EntityBlocksTileEffect(t *testing.T) {
	s := newTestSession(t)

	// A rock with no hoe interaction occupies tile (5,5).
	fx := float64(5*entity.TileSize) + 16
	fy := float64(6 * entity.TileSize)
	s.Active.AddEntity(entity.NewObstacle(fx, fy, entity.TileSize, entity.TileSize))

	selectTool(t, s, item.ToolHoe)
	x, y := tileCenter(5, 5)
	res := s.UseTool(x, y)

	assert.Equal(t, OutcomeNone, res.Outcome)
	assert.Equal(t, grid.TileGrass, s.Active.Tile(5, 5).ID, "terrain effect must be suppressed")
}

func TestUseTool_OutOfReachRejected(t *testing.T) {
	s := newTestSession(t)
	selectTool(t, s, item.ToolHoe)

	res := s.UseTool(tileCenter(20, 20))
	assert.Equal(t, OutcomeRejected, res.Outcome)
}

func TestUseTool_StaminaGate(t *testing.T) {
	s := newTestSession(t)
	selectTool(t, s, item.ToolHoe)
	s.Player.Stamina = 0

	x, y := tileCenter(5, 5)
	assert.Equal(t, OutcomeRejected, s.UseTool(x, y).Outcome)
	assert.Equal(t, grid.TileGrass, s.Active.Tile(5, 5).ID)
}

func TestPlantAndHarvestCycle(t *testing.T) {
	s := newTestSession(t)
	x, y := tileCenter(5, 5)

	selectTool(t, s, item.ToolHoe)
	require.Equal(t, OutcomeTilled, s.UseTool(x, y).Outcome)

	before := s.Player.Inventory.Count("corn_seeds")
	selectMaterial(t, s, "corn_seeds")
	require.Equal(t, OutcomePlanted, s.UseTool(x, y).Outcome)
	assert.Equal(t, before-1, s.Player.Inventory.Count("corn_seeds"))

	crop := s.Active.EntityAt(5, 5)
	require.NotNil(t, crop)
	require.Equal(t, entity.KindCrop, crop.Kind)

	// Planting on an occupied tile is rejected without consuming seeds.
	before = s.Player.Inventory.Count("corn_seeds")
	assert.Equal(t, OutcomeRejected, s.UseTool(x, y).Outcome)
	assert.Equal(t, before, s.Player.Inventory.Count("corn_seeds"))

	// Force maturity and harvest.
	crop.Crop.Stage = entity.StageMature
	assert.Equal(t, OutcomeHarvested, s.Interact(x, y).Outcome)
	assert.Equal(t, 1, s.Player.Inventory.Count("corn"))

	// Regrowing corn stays planted at its configured stage.
	assert.NotNil(t, s.Active.EntityAt(5, 5))
	assert.Equal(t, entity.StageGrowing, crop.Crop.Stage)
}

func TestHarvest_FullInventoryLeavesCropUntouched(t *testing.T) {
	s := newTestSession(t)

	// Stuff every slot.
	for i := range s.Player.Inventory.Slots {
		if s.Player.Inventory.Slots[i] == nil {
			s.Player.Inventory.Slots[i] = item.NewMaterial("stone", 99)
		} else if s.Player.Inventory.Slots[i].Kind == item.KindMaterial {
			s.Player.Inventory.Slots[i].Quantity = 99
		}
	}

	fx := float64(5*entity.TileSize) + 16
	fy := float64(6 * entity.TileSize)
	crop := entity.NewCrop("corn", s.cfg.Crops["corn"], fx, fy)
	crop.Crop.Stage = entity.StageMature
	s.Active.AddEntity(crop)

	res := s.Interact(tileCenter(5, 5))

	assert.Equal(t, OutcomeRejected, res.Outcome)
	assert.Equal(t, entity.StageMature, crop.Crop.Stage, "crop must stay harvestable for retry")
	assert.NotNil(t, s.Active.EntityAt(5, 5))
}

func TestChopTree_MatureToStumpWithWood(t *testing.T) {
	s := newTestSession(t)

	fx := float64(5*entity.TileSize) + 16
	fy := float64(6 * entity.TileSize)
	tree := entity.NewTree(entity.TreeMature, s.cfg.Trees, fx, fy)
	s.Active.AddEntity(tree)

	selectTool(t, s, item.ToolAxe)
	res := s.UseTool(tileCenter(5, 5))

	assert.Equal(t, OutcomeChopped, res.Outcome)
	assert.Equal(t, 8, s.Player.Inventory.Count("wood"))
	assert.Equal(t, entity.TreeStump, tree.Tree.Stage)
	assert.NotNil(t, s.Active.EntityAt(5, 5), "stump remains")
}

func TestWandDrainsManaNode(t *testing.T) {
	s := newTestSession(t)

	fx := float64(5*entity.TileSize) + 16
	fy := float64(6 * entity.TileSize)
	node := entity.NewManaNode(s.cfg.Mana, fx, fy)
	s.Active.AddEntity(node)

	selectTool(t, s, item.ToolWand)
	res := s.UseTool(tileCenter(5, 5))

	assert.Equal(t, OutcomeManaDrained, res.Outcome)
	assert.Equal(t, s.cfg.Mana.MaxCharge, res.Mana)
	assert.Equal(t, s.cfg.Mana.MaxCharge, s.Player.Mana)
	assert.Equal(t, 0, node.Mana.Charge)
}

func TestCanOccupy_BlockedByWaterAndCollidables(t *testing.T) {
	s := newTestSession(t)

	assert.True(t, s.CanOccupy(s.Player.Bounds()))

	// Water under a corner blocks.
	tx, ty := s.Player.TileCoords()
	s.Active.SetTile(tx, ty, grid.TileWater)
	assert.False(t, s.CanOccupy(s.Player.Bounds()))
	s.Active.SetTile(tx, ty, grid.TileGrass)

	// A collidable entity overlapping the box blocks; a crop does not.
	rock := entity.NewObstacle(s.Player.X, s.Player.Y, entity.TileSize, entity.TileSize)
	s.Active.AddEntity(rock)
	assert.False(t, s.CanOccupy(s.Player.Bounds()))
	s.Active.RemoveEntity(rock.ID)

	crop := entity.NewCrop("corn", s.cfg.Crops["corn"], s.Player.X, s.Player.Y)
	s.Active.AddEntity(crop)
	assert.True(t, s.CanOccupy(s.Player.Bounds()), "crops are not collidable")
}

func TestMovePlayer_AxisSliding(t *testing.T) {
	s := newTestSession(t)

	// Wall of water to the east of the player.
	tx, ty := s.Player.TileCoords()
	for dy := -2; dy <= 2; dy++ {
		s.Active.SetTile(tx+1, ty+dy, grid.TileWater)
	}

	startX, startY := s.Player.X, s.Player.Y
	s.MovePlayer(entity.TileSize, entity.TileSize)

	assert.Equal(t, startX, s.Player.X, "x movement blocked by wall")
	assert.Equal(t, startY+entity.TileSize, s.Player.Y, "y movement slides through")
}

func TestDayRollover_SweepsAllLocations(t *testing.T) {
	s := newTestSession(t)

	// Plant a crop on wet soil in the *inactive* forest.
	forest := s.World.Location(world.LocForest)
	forest.SetTile(3, 3, grid.TileWet)
	fx := float64(3*entity.TileSize) + 16
	fy := float64(4 * entity.TileSize)
	crop := entity.NewCrop("turnip", s.cfg.Crops["turnip"], fx, fy)
	forest.AddEntity(crop)

	s.Clock.ForceNewDay()

	// Offscreen crop advanced off the wet tile (turnip: 1 day per stage).
	assert.Equal(t, entity.StageSprout, crop.Crop.Stage)

	// Evaporation dried the tile unless the new day is rainy.
	expect := grid.TileTilled
	if weather.IsWet(weather.ForDay(s.World.Seed, s.Clock.Day)) {
		expect = grid.TileWet
	}
	assert.Equal(t, expect, forest.Tile(3, 3).ID)
}

func TestDayRollover_AgesLocationsPlayerNeverEntered(t *testing.T) {
	s := NewSession("Tester", 42, config.Default())

	days := s.Config().Trees.SaplingDays
	for i := 0; i < days; i++ {
		s.Clock.ForceNewDay()
	}

	// The player stayed on the farm the whole time, but the forest's
	// trees kept growing with every rollover.
	forest := s.World.Location(world.LocForest)
	saplings, young := 0, 0
	for _, e := range forest.Entities {
		if e.Kind != entity.KindTree {
			continue
		}
		switch e.Tree.Stage {
		case entity.TreeSapling:
			saplings++
		case entity.TreeYoung:
			young++
		case entity.TreeMature:
			assert.Equal(t, days, e.Tree.DaysAtStage)
		}
	}
	assert.Zero(t, saplings, "every sapling should have reached the young stage")
	assert.NotZero(t, young)
}

func TestDayRollover_DeadCropRemovedAfterOneVisibleDay(t *testing.T) {
	s := newTestSession(t)

	fx := float64(5*entity.TileSize) + 16
	fy := float64(6 * entity.TileSize)
	crop := entity.NewCrop("corn", s.cfg.Crops["corn"], fx, fy)
	crop.Crop.Stage = entity.StageDead
	s.Active.AddEntity(crop)

	s.Clock.ForceNewDay()
	assert.Nil(t, s.Active.EntityAt(5, 5), "dead crop removed on next rollover")
}

func TestSleep_ProcessesBinsAndRestoresStamina(t *testing.T) {
	s := newTestSession(t)

	// Bed next to the player, bin nearby.
	tx, ty := s.Player.TileCoords()
	bed := entity.NewBed(float64(tx*entity.TileSize)+16, float64(ty*entity.TileSize))
	s.Active.AddEntity(bed)

	bin := entity.NewShippingBin(300, 300)
	bin.Place(item.NewMaterial("corn", 4)) // 4×25 = 100
	s.Active.AddEntity(bin)

	s.Player.Stamina = 5
	day := s.Clock.Day
	goldBefore := s.Player.Gold

	require.True(t, s.RequestSleep())
	for s.Transition.Busy() {
		s.Update(0.1)
	}

	assert.Equal(t, day+1, s.Clock.Day)
	assert.Equal(t, goldBefore+100, s.Player.Gold)
	assert.Equal(t, s.Player.MaxStamina, s.Player.Stamina)
	assert.Nil(t, bin.Bin.Buffer)
}

func TestRequestSleep_NoBedNearbyFails(t *testing.T) {
	s := newTestSession(t)
	assert.False(t, s.RequestSleep())
}

func TestWarp_TriggersLocationSwap(t *testing.T) {
	s := NewSession("Tester", 42, config.Default())

	// Stand on the farm's east-edge warp.
	warp := s.Active.Warps[0]
	s.Player.X = float64(warp.FromX*entity.TileSize) + 16
	s.Player.Y = float64((warp.FromY + 1) * entity.TileSize)

	s.Update(0.01)
	require.True(t, s.Transition.Busy(), "stepping on a warp starts a transition")

	for s.Transition.Busy() {
		s.Update(0.1)
	}
	assert.Equal(t, world.LocForest, s.Active.Name)
	ptx, pty := s.Player.TileCoords()
	assert.Equal(t, warp.TargetX, ptx)
	assert.Equal(t, warp.TargetY, pty)
}

func TestCommandQueue_DrainsOnePerFrame(t *testing.T) {
	s := newTestSession(t)
	selectTool(t, s, item.ToolHoe)

	x, y := tileCenter(5, 5)
	x2, y2 := tileCenter(4, 4)
	s.Enqueue(Command{Kind: CmdUseTool, X: x, Y: y})
	s.Enqueue(Command{Kind: CmdUseTool, X: x2, Y: y2})

	s.Update(0.001)
	assert.Equal(t, grid.TileTilled, s.Active.Tile(5, 5).ID)
	assert.Equal(t, grid.TileGrass, s.Active.Tile(4, 4).ID, "second command waits a frame")

	s.Update(0.001)
	assert.Equal(t, grid.TileTilled, s.Active.Tile(4, 4).ID)
	assert.Equal(t, OutcomeTilled, s.LastResult().Outcome)
}

func TestInteract_ShippingBinBufferSemantics(t *testing.T) {
	s := newTestSession(t)

	fx := float64(5*entity.TileSize) + 16
	fy := float64(6 * entity.TileSize)
	bin := entity.NewShippingBin(fx, fy)
	s.Active.AddEntity(bin)
	x, y := tileCenter(5, 5)

	selectMaterial(t, s, "corn_seeds")
	require.Equal(t, OutcomeShipped, s.Interact(x, y).Outcome)
	require.NotNil(t, bin.Bin.Buffer)

	// Empty hand retrieves the buffer.
	s.Player.Inventory.Select(0) // A tool slot
	require.Equal(t, OutcomeRetrieved, s.Interact(x, y).Outcome)
	assert.Nil(t, bin.Bin.Buffer)
	assert.Positive(t, s.Player.Inventory.Count("corn_seeds"))
}

func TestInteract_ReadSign(t *testing.T) {
	s := newTestSession(t)

	fx := float64(5*entity.TileSize) + 16
	fy := float64(6 * entity.TileSize)
	s.Active.AddEntity(entity.NewSign(fx, fy, "Gone fishing."))

	res := s.Interact(tileCenter(5, 5))
	assert.Equal(t, OutcomeRead, res.Outcome)
	assert.Equal(t, "Gone fishing.", res.Text)
}
