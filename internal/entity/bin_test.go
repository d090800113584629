package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sagebrook/internal/item"
)

func TestBin_PlacePushesBufferIntoManifest(t *testing.T) {
	bin := NewShippingBin(0, 0)
	a := item.NewMaterial("corn", 2)
	b := item.NewMaterial("turnip", 1)

	bin.Place(a)
	assert.Same(t, a, bin.Bin.Buffer)
	assert.Empty(t, bin.Bin.Manifest)

	bin.Place(b)
	assert.Same(t, b, bin.Bin.Buffer)
	require.Len(t, bin.Bin.Manifest, 1)
	assert.Same(t, a, bin.Bin.Manifest[0])

	// Only the buffer is retrievable.
	got := bin.TakeBack()
	assert.Same(t, b, got)
	assert.Nil(t, bin.Bin.Buffer)
	assert.Len(t, bin.Bin.Manifest, 1)
}

func TestBin_ProcessNightlySumsBufferAndManifest(t *testing.T) {
	registry := item.NewRegistry()
	bin := NewShippingBin(0, 0)

	bin.Place(item.NewMaterial("corn", 2))   // 2×25 = 50, pushed to manifest
	bin.Place(item.NewMaterial("turnip", 3)) // 3×12 = 36, buffer

	total := bin.ProcessNightly(registry)
	assert.Equal(t, 86, total)
	assert.Nil(t, bin.Bin.Buffer)
	assert.Empty(t, bin.Bin.Manifest)

	// Second call in the same night returns exactly 0.
	assert.Equal(t, 0, bin.ProcessNightly(registry))
}

func TestBin_DailyAdvanceDoesNotTouchContents(t *testing.T) {
	bin := NewShippingBin(0, 0)
	bin.Place(item.NewMaterial("corn", 1))
	bin.Place(item.NewMaterial("corn", 1))

	assert.False(t, bin.AdvanceDay(nil))
	assert.NotNil(t, bin.Bin.Buffer)
	assert.Len(t, bin.Bin.Manifest, 1)
}

func TestBin_TakeBackEmptyBufferReturnsNil(t *testing.T) {
	bin := NewShippingBin(0, 0)
	assert.Nil(t, bin.TakeBack())
}
