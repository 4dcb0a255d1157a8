package binpack

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHintCanonicalOrder(t *testing.T) {
	expected := [...]Hint{ByArea, ByPerimeter, ByBiggerSide, ByWidth, ByHeight, ByPathological}
	assert.Equal(t, expected, hintOrder)

	var combined Hint
	for _, h := range hintOrder {
		combined |= h
	}
	assert.Equal(t, AllHints, combined)
}

func TestHintSortKey(t *testing.T) {
	r := Rect{Width: 4, Height: 6}

	assert.Equal(t, 24, sortKey(ByArea, &r))
	assert.Equal(t, 20, sortKey(ByPerimeter, &r))
	assert.Equal(t, 6, sortKey(ByBiggerSide, &r))
	assert.Equal(t, 4, sortKey(ByWidth, &r))
	assert.Equal(t, 6, sortKey(ByHeight, &r))
	assert.Equal(t, r.PathologicalRatio(), sortKey(ByPathological, &r))
}

func TestHintString(t *testing.T) {
	assert.Equal(t, "None", Hint(0).String())
	assert.Equal(t, "Area", ByArea.String())
	assert.Equal(t, "Area|Width", (ByWidth | ByArea).String())
	assert.Equal(t, "Area|Perimeter|BiggerSide|Width|Height|Pathological", AllHints.String())
}

// vim: ts=4
