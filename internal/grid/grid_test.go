package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGet_OutOfBoundsReturnsVoid(t *testing.T) {
	g := New(4, 3, TileGrass)

	cases := [][2]int{{-1, 0}, {0, -1}, {4, 0}, {0, 3}, {100, 100}, {-5, -5}}
	for _, c := range cases {
		cell := g.Get(c[0], c[1])
		assert.Equal(t, TileVoid, cell.ID, "out-of-bounds (%d,%d) must be void", c[0], c[1])
		assert.False(t, cell.Walkable, "void must be impassable")
	}
}

func TestSet_OutOfBoundsIsNoOp(t *testing.T) {
	g := New(4, 3, TileGrass)

	g.Set(-1, 0, Cell(TileStone))
	g.Set(4, 0, Cell(TileStone))
	g.Set(0, 3, Cell(TileStone))

	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			assert.Equal(t, TileGrass, g.Get(x, y).ID)
		}
	}
}

func TestSetID_DerivesWalkability(t *testing.T) {
	g := New(4, 3, TileGrass)

	g.SetID(1, 1, TileWater)
	assert.False(t, g.Get(1, 1).Walkable)

	g.SetID(1, 1, TileTilled)
	assert.True(t, g.Get(1, 1).Walkable)
}

func TestTileColor_VisibleTilesAreOpaque(t *testing.T) {
	for id := TileGrass; id <= TileFloor; id++ {
		c := TileColor(id)
		assert.EqualValues(t, 255, c.A, "tile %s", TileName(id))
	}
}
