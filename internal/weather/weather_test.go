package weather

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestForDay_Deterministic(t *testing.T) {
	for day := 1; day <= 50; day++ {
		assert.Equal(t, ForDay(42, day), ForDay(42, day), "day %d", day)
	}
}

func TestForDay_SeedChangesPattern(t *testing.T) {
	same := true
	for day := 1; day <= 50; day++ {
		if ForDay(1, day) != ForDay(2, day) {
			same = false
			break
		}
	}
	assert.False(t, same, "different seeds should produce different weather runs")
}

func TestForDay_AllKindsOccur(t *testing.T) {
	seen := map[Kind]bool{}
	for day := 1; day <= 365; day++ {
		seen[ForDay(7, day)] = true
	}
	assert.True(t, seen[Clear])
	assert.True(t, seen[Rain])
	assert.True(t, seen[Storm])
}

func TestIsWet(t *testing.T) {
	assert.False(t, IsWet(Clear))
	assert.True(t, IsWet(Rain))
	assert.True(t, IsWet(Storm))
}
