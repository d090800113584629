package world

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sagebrook/internal/config"
	"sagebrook/internal/entity"
)

func TestGenerate_SameSeedIsBitIdentical(t *testing.T) {
	cfg := config.Default()

	for _, name := range []string{LocFarm, LocForest, LocCavern} {
		a := Generate(name, 1234, cfg)
		b := Generate(name, 1234, cfg)

		require.Equal(t, a.Width, b.Width)
		require.Equal(t, a.Height, b.Height)
		assert.Equal(t, a.Grid.Cells, b.Grid.Cells, "%s terrain must be deterministic", name)
		assert.Equal(t, a.Warps, b.Warps)

		require.Len(t, b.Entities, len(a.Entities), "%s entity count must be deterministic", name)
		for i := range a.Entities {
			ea, eb := a.Entities[i], b.Entities[i]
			assert.Equal(t, ea.Kind, eb.Kind, "%s entity %d", name, i)
			assert.Equal(t, ea.X, eb.X)
			assert.Equal(t, ea.Y, eb.Y)
		}
	}
}

func TestGenerate_DifferentSeedsDiffer(t *testing.T) {
	cfg := config.Default()
	a := Generate(LocFarm, 1, cfg)
	b := Generate(LocFarm, 99999, cfg)
	assert.NotEqual(t, a.Grid.Cells, b.Grid.Cells)
}

func TestGenerate_FarmHasRequiredFixtures(t *testing.T) {
	loc := Generate(LocFarm, 42, config.Default())

	kinds := map[entity.Kind]int{}
	for _, e := range loc.Entities {
		kinds[e.Kind]++
	}
	assert.Equal(t, 1, kinds[entity.KindBed])
	assert.Equal(t, 1, kinds[entity.KindShippingBin])
	assert.Equal(t, 1, kinds[entity.KindSign])
	assert.Greater(t, kinds[entity.KindTree], 0)

	require.NotEmpty(t, loc.Warps)
	assert.Equal(t, LocForest, loc.Warps[0].Target)
}

func TestWorld_AllLocationsExistUpFront(t *testing.T) {
	w := NewWorld(7, config.Default())

	// Every named location is live from the start, so the daily sweep
	// reaches places the player has never entered.
	known := w.Known()
	require.Len(t, known, len(locationNames))
	// Sorted by name for deterministic sweeps.
	assert.Equal(t, LocCavern, known[0].Name)
	assert.Equal(t, LocFarm, known[1].Name)
	assert.Equal(t, LocForest, known[2].Name)

	farm := w.Location(LocFarm)
	again := w.Location(LocFarm)
	assert.Same(t, farm, again)
}

func TestGenerate_WarpTilesStayClear(t *testing.T) {
	cfg := config.Default()
	for seed := int64(1); seed <= 20; seed++ {
		for _, name := range []string{LocFarm, LocForest, LocCavern} {
			loc := Generate(name, seed, cfg)
			for _, wp := range loc.Warps {
				assert.Nil(t, loc.EntityAt(wp.FromX, wp.FromY),
					"%s seed %d: warp tile (%d,%d) must not hold an entity", name, seed, wp.FromX, wp.FromY)
			}
		}
	}
}

func TestLocation_EntityAtMatchesDerivedTile(t *testing.T) {
	loc := Generate(LocFarm, 42, config.Default())

	bin := findKind(loc, entity.KindShippingBin)
	require.NotNil(t, bin)
	tx, ty := bin.TileCoords()
	assert.Same(t, bin, loc.EntityAt(tx, ty))
}

func TestLocation_RemoveEntity(t *testing.T) {
	loc := Generate(LocFarm, 42, config.Default())
	bed := findKind(loc, entity.KindBed)
	require.NotNil(t, bed)

	assert.True(t, loc.RemoveEntity(bed.ID))
	assert.Nil(t, loc.EntityByID(bed.ID))
	assert.False(t, loc.RemoveEntity(bed.ID))
}

func findKind(loc *Location, k entity.Kind) *entity.Entity {
	for _, e := range loc.Entities {
		if e.Kind == k {
			return e
		}
	}
	return nil
}
