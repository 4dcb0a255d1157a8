package binpack

// tryPack attempts to place every rectangle, in the given order, into a bin
// of the given dimensions. Positioned copies are written to dst, which must
// be at least as long as sizes. Returns false as soon as any rectangle cannot
// be placed; dst contents are unspecified on failure.
//
// Each rectangle is placed at the origin corner of the first free region able
// to hold it. The leftover L-shape is split with a single guillotine cut: the
// longer leftover strip keeps the full extent of the consumed region while
// the shorter one is clipped to the placed rectangle. When the rectangle
// spans the region along one axis there is nothing to cut and the region
// shrinks in place; when it spans both, the region is consumed whole.
func tryPack(sizes []Rect, width, height int, cat *spaceCatalog, dst []Rect) bool {
	cat.reset(width, height)

	for i := range sizes {
		r := sizes[i]
		index := cat.firstFit(r.Width, r.Height)
		if index < 0 {
			return false
		}

		region := cat.regions[index].rect
		r.X = region.X
		r.Y = region.Y
		dst[i] = r

		freeWidth := region.Width - r.Width
		freeHeight := region.Height - r.Height
		switch {
		case freeWidth == 0 && freeHeight == 0:
			cat.remove(index)
		case freeWidth == 0:
			region.Y += r.Height
			region.Height = freeHeight
			cat.update(index, region)
		case freeHeight == 0:
			region.X += r.Width
			region.Width = freeWidth
			cat.update(index, region)
		default:
			cat.remove(index)
			right := region
			right.X += r.Width
			right.Width = freeWidth
			bottom := region
			bottom.Y += r.Height
			bottom.Height = freeHeight
			if freeWidth > freeHeight {
				bottom.Width = r.Width
			} else {
				right.Height = r.Height
			}
			if !right.IsEmpty() {
				cat.insert(right)
			}
			if !bottom.IsEmpty() {
				cat.insert(bottom)
			}
		}
	}
	return true
}

// packedBounds computes the size of the bin actually used by a successful
// packing: the maximum right/bottom edge over all placements, anchored at
// the origin.
func packedBounds(rects []Rect) Rect {
	var bounds Rect
	for i := range rects {
		bounds.Width = max(bounds.Width, rects[i].Right())
		bounds.Height = max(bounds.Height, rects[i].Bottom())
	}
	return bounds
}

// vim: ts=4
