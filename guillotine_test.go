package binpack

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTryPackExactFill(t *testing.T) {
	var cat spaceCatalog
	sizes := []Rect{NewRect(1, 10, 10)}
	dst := make([]Rect, 1)

	require.True(t, tryPack(sizes, 10, 10, &cat, dst))
	assert.True(t, dst[0].Eq(Rect{Width: 10, Height: 10}))
	assert.Equal(t, 1, dst[0].ID)
	assert.Empty(t, cat.regions, "an exact fill consumes the region whole")
}

func TestTryPackSplitWideRemainder(t *testing.T) {
	var cat spaceCatalog
	sizes := []Rect{NewRect(0, 4, 6)}
	dst := make([]Rect, 1)

	require.True(t, tryPack(sizes, 10, 10, &cat, dst))

	// Leftover width (6) beats leftover height (4): the right strip keeps the
	// full region height and the bottom strip is clipped to the placed width.
	require.Len(t, cat.regions, 2)
	assert.True(t, cat.regions[0].rect.Eq(Rect{X: 4, Y: 0, Width: 6, Height: 10}))
	assert.True(t, cat.regions[1].rect.Eq(Rect{X: 0, Y: 6, Width: 4, Height: 4}))
}

func TestTryPackSplitTallRemainder(t *testing.T) {
	var cat spaceCatalog
	sizes := []Rect{NewRect(0, 6, 4)}
	dst := make([]Rect, 1)

	require.True(t, tryPack(sizes, 10, 10, &cat, dst))

	// Leftover height wins: the bottom strip keeps the full region width and
	// the right strip is clipped to the placed height.
	require.Len(t, cat.regions, 2)
	assert.True(t, cat.regions[0].rect.Eq(Rect{X: 0, Y: 4, Width: 10, Height: 6}))
	assert.True(t, cat.regions[1].rect.Eq(Rect{X: 6, Y: 0, Width: 4, Height: 4}))
}

func TestTryPackShrinkInPlace(t *testing.T) {
	var cat spaceCatalog
	dst := make([]Rect, 1)

	// Full-width rectangle leaves only the area below.
	require.True(t, tryPack([]Rect{NewRect(0, 10, 4)}, 10, 10, &cat, dst))
	require.Len(t, cat.regions, 1)
	assert.True(t, cat.regions[0].rect.Eq(Rect{X: 0, Y: 4, Width: 10, Height: 6}))

	// Full-height rectangle leaves only the area to the right.
	require.True(t, tryPack([]Rect{NewRect(0, 4, 10)}, 10, 10, &cat, dst))
	require.Len(t, cat.regions, 1)
	assert.True(t, cat.regions[0].rect.Eq(Rect{X: 4, Y: 0, Width: 6, Height: 10}))
}

func TestTryPackFailsFast(t *testing.T) {
	var cat spaceCatalog
	sizes := []Rect{NewRect(0, 5, 5), NewRect(1, 20, 20), NewRect(2, 1, 1)}
	dst := make([]Rect, len(sizes))

	assert.False(t, tryPack(sizes, 10, 10, &cat, dst))
}

func TestTryPackPlacementsNeverOverlap(t *testing.T) {
	var cat spaceCatalog
	sizes := []Rect{
		NewRect(0, 5, 9),
		NewRect(1, 7, 3),
		NewRect(2, 3, 3),
		NewRect(3, 2, 6),
		NewRect(4, 4, 4),
	}
	dst := make([]Rect, len(sizes))

	require.True(t, tryPack(sizes, 16, 16, &cat, dst))
	assert.False(t, AnyIntersects(dst))

	bin := Rect{Width: 16, Height: 16}
	for i := range dst {
		assert.True(t, bin.ContainsRect(dst[i]), "%s outside the bin", dst[i].String())
	}
}

func TestPackedBounds(t *testing.T) {
	rects := []Rect{
		{X: 0, Y: 0, Width: 10, Height: 4},
		{X: 10, Y: 0, Width: 2, Height: 2},
		{X: 0, Y: 4, Width: 5, Height: 8},
	}
	bounds := packedBounds(rects)
	assert.True(t, bounds.Eq(Rect{Width: 12, Height: 12}))
}

// vim: ts=4
