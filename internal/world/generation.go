// Location generation using layered simplex noise plus fixed structural
// features. Generation is keyed on (name, seed) and must be
// bit-deterministic: the save engine regenerates default state from the
// same pair and diffs live state against it.
package world

import (
	"hash/fnv"
	"math/rand"

	opensimplex "github.com/ojrac/opensimplex-go"

	"sagebrook/internal/config"
	"sagebrook/internal/entity"
	"sagebrook/internal/grid"
)

// Location names with dedicated generators.
const (
	LocFarm   = "farm"
	LocForest = "forest"
	LocCavern = "cavern"
)

// locationNames lists every named location, in the order NewWorld
// materializes them.
var locationNames = []string{LocFarm, LocForest, LocCavern}

const (
	locWidth  = 40
	locHeight = 30
)

// locationSeed derives a per-location seed from the world seed and the
// location name, so two locations never share a noise field.
func locationSeed(worldSeed int64, name string) int64 {
	h := fnv.New64a()
	h.Write([]byte(name))
	return worldSeed ^ int64(h.Sum64())
}

// Generate creates the default state of a named location. The same
// (name, seed) pair always yields identical terrain and entity placement.
func Generate(name string, worldSeed int64, cfg config.Config) *Location {
	seed := locationSeed(worldSeed, name)
	loc := &Location{
		Name:   name,
		Width:  locWidth,
		Height: locHeight,
		Seed:   worldSeed,
		Grid:   grid.New(locWidth, locHeight, grid.TileGrass),
	}

	switch name {
	case LocForest:
		generateForest(loc, seed, cfg)
	case LocCavern:
		generateCavern(loc, seed, cfg)
	default:
		generateFarm(loc, seed, cfg)
	}
	return loc
}

// generateFarm lays out the starting location: open grass with dirt
// patches, a pond, the farmhouse floor with bed and sign, a shipping bin,
// scattered trees and rocks, and the exit to the forest.
func generateFarm(loc *Location, seed int64, cfg config.Config) {
	elev := opensimplex.NewNormalized(seed)
	soil := opensimplex.NewNormalized(seed + 1)

	for y := 0; y < loc.Height; y++ {
		for x := 0; x < loc.Width; x++ {
			e := elev.Eval2(float64(x)*0.09, float64(y)*0.09)
			s := soil.Eval2(float64(x)*0.13, float64(y)*0.13)
			switch {
			case e < 0.22:
				loc.SetTile(x, y, grid.TileWater)
			case e < 0.28:
				loc.SetTile(x, y, grid.TileSand)
			case s > 0.72:
				loc.SetTile(x, y, grid.TileDirt)
			default:
				loc.SetTile(x, y, grid.TileGrass)
			}
		}
	}

	// Farmhouse floor in the northwest corner.
	for y := 1; y <= 4; y++ {
		for x := 1; x <= 6; x++ {
			loc.SetTile(x, y, grid.TileFloor)
		}
	}

	loc.AddEntity(entity.NewBed(tileFeetX(2), tileFeetY(2)))
	loc.AddEntity(entity.NewSign(tileFeetX(7), tileFeetY(5), "Sagebrook Farm — ship produce in the bin."))
	loc.AddEntity(entity.NewShippingBin(tileFeetX(8), tileFeetY(2)))

	// Exit to the forest on the east edge. Warps go in before the
	// scatter passes so nothing collidable lands on the exit tile.
	ey := loc.Height / 2
	loc.SetTile(loc.Width-1, ey, grid.TileGrass)
	loc.Warps = append(loc.Warps, Warp{
		FromX: loc.Width - 1, FromY: ey,
		Target: LocForest, TargetX: 1, TargetY: ey,
	})

	// Scattered trees and rocks on open grass, away from the farmhouse.
	rng := rand.New(rand.NewSource(seed + 100))
	scatterTrees(loc, rng, cfg, 8, entity.TreeMature)
	scatterRocks(loc, rng, 6)
}

// generateForest fills a tree-heavy location with a mana node clearing
// and exits back to the farm and down to the cavern.
func generateForest(loc *Location, seed int64, cfg config.Config) {
	elev := opensimplex.NewNormalized(seed)

	for y := 0; y < loc.Height; y++ {
		for x := 0; x < loc.Width; x++ {
			e := elev.Eval2(float64(x)*0.08, float64(y)*0.08)
			switch {
			case e < 0.18:
				loc.SetTile(x, y, grid.TileWater)
			case e > 0.8:
				loc.SetTile(x, y, grid.TileStone)
			default:
				loc.SetTile(x, y, grid.TileGrass)
			}
		}
	}

	ey := loc.Height / 2
	loc.SetTile(0, ey, grid.TileGrass)
	loc.SetTile(loc.Width-1, ey, grid.TileGrass)
	loc.Warps = append(loc.Warps,
		Warp{FromX: 0, FromY: ey, Target: LocFarm, TargetX: locWidth - 2, TargetY: ey},
		Warp{FromX: loc.Width - 1, FromY: ey, Target: LocCavern, TargetX: 1, TargetY: ey},
	)

	rng := rand.New(rand.NewSource(seed + 100))
	scatterTrees(loc, rng, cfg, 40, entity.TreeMature)
	scatterTrees(loc, rng, cfg, 10, entity.TreeSapling)

	// One mana node in the middle of the wood.
	mx, my := loc.Width/2, loc.Height/2
	loc.SetTile(mx, my, grid.TileStone)
	loc.AddEntity(entity.NewManaNode(cfg.Mana, tileFeetX(mx), tileFeetY(my)))
}

// generateCavern is stone and mana: a dark location rich in nodes.
func generateCavern(loc *Location, seed int64, cfg config.Config) {
	rock := opensimplex.NewNormalized(seed)

	for y := 0; y < loc.Height; y++ {
		for x := 0; x < loc.Width; x++ {
			r := rock.Eval2(float64(x)*0.11, float64(y)*0.11)
			if r < 0.35 {
				loc.SetTile(x, y, grid.TileStone)
			} else {
				loc.SetTile(x, y, grid.TileDirt)
			}
		}
	}

	ey := loc.Height / 2
	loc.SetTile(0, ey, grid.TileDirt)
	loc.Warps = append(loc.Warps, Warp{
		FromX: 0, FromY: ey,
		Target: LocForest, TargetX: locWidth - 2, TargetY: ey,
	})

	rng := rand.New(rand.NewSource(seed + 100))
	placed := 0
	for attempts := 0; attempts < 200 && placed < 4; attempts++ {
		x, y := rng.Intn(loc.Width), rng.Intn(loc.Height)
		if loc.Tile(x, y).ID != grid.TileStone || loc.EntityAt(x, y) != nil || loc.WarpAt(x, y) != nil {
			continue
		}
		loc.AddEntity(entity.NewManaNode(cfg.Mana, tileFeetX(x), tileFeetY(y)))
		placed++
	}
	scatterRocks(loc, rng, 10)
}

// scatterTrees places count trees on free walkable grass tiles.
func scatterTrees(loc *Location, rng *rand.Rand, cfg config.Config, count int, stage entity.TreeStage) {
	for attempts := 0; attempts < count*20 && count > 0; attempts++ {
		x, y := rng.Intn(loc.Width), rng.Intn(loc.Height)
		if loc.Tile(x, y).ID != grid.TileGrass || loc.EntityAt(x, y) != nil || loc.WarpAt(x, y) != nil {
			continue
		}
		loc.AddEntity(entity.NewTree(stage, cfg.Trees, tileFeetX(x), tileFeetY(y)))
		count--
	}
}

// scatterRocks places count generic obstacles on free land tiles.
func scatterRocks(loc *Location, rng *rand.Rand, count int) {
	for attempts := 0; attempts < count*20 && count > 0; attempts++ {
		x, y := rng.Intn(loc.Width), rng.Intn(loc.Height)
		cell := loc.Tile(x, y)
		if !cell.Walkable || cell.ID == grid.TileFloor || loc.EntityAt(x, y) != nil || loc.WarpAt(x, y) != nil {
			continue
		}
		loc.AddEntity(entity.NewObstacle(tileFeetX(x), tileFeetY(y), entity.TileSize, entity.TileSize))
		count--
	}
}

// tileFeetX returns the pixel x of the bottom-center pivot for tile x.
func tileFeetX(tx int) float64 {
	return float64(tx*entity.TileSize) + entity.TileSize/2
}

// tileFeetY returns the pixel y of the bottom-center pivot for tile y.
func tileFeetY(ty int) float64 {
	return float64((ty + 1) * entity.TileSize)
}
