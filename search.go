package binpack

// binDims returns the candidate bin dimensions for a square size, clamped
// per-axis by the configured maximums (0 means unbounded).
func (p *Packer) binDims(size int) (int, int) {
	w, h := size, size
	if p.MaxWidth > 0 {
		w = min(w, p.MaxWidth)
	}
	if p.MaxHeight > 0 {
		h = min(h, p.MaxHeight)
	}
	return w, h
}

// growExhausted reports whether growing the candidate size any further cannot
// change the bin, which requires both axes to be pinned at their maximums.
// With either axis unbounded the grow loop never gives up.
func (p *Packer) growExhausted(size int) bool {
	return p.MaxWidth > 0 && size >= p.MaxWidth && p.MaxHeight > 0 && size >= p.MaxHeight
}

// findBin searches candidate bin sizes for one fixed ordering of rectangles.
//
// The initial candidate is attempted first. On failure, and only when
// allowGrow is set, the size grows by step until an attempt succeeds; growing
// is forbidden once any earlier ordering has produced a bin, so that later
// orderings stay bounded by the best known area. From a success the search
// shrinks linearly: the next candidate is the used bounds' larger side minus
// step, until an attempt fails. The last success wins.
//
// Attempts alternate between the packer's two scratch buffers, so the result
// of the previous size survives the attempt at the next one. Returns the used
// bounds, the index of the scratch buffer holding the placements, and whether
// any candidate succeeded.
func (p *Packer) findBin(ordered []Rect, size, step int, allowGrow bool) (Rect, int, bool) {
	cur := 0
	w, h := p.binDims(size)
	if !tryPack(ordered, w, h, &p.catalog, p.bufs[cur]) {
		if !allowGrow {
			return Rect{}, 0, false
		}
		for {
			if p.growExhausted(size) {
				return Rect{}, 0, false
			}
			size += step
			w, h = p.binDims(size)
			if tryPack(ordered, w, h, &p.catalog, p.bufs[cur]) {
				break
			}
		}
	}

	bounds := packedBounds(p.bufs[cur])
	for {
		next := bounds.MaxSide() - step
		if next < 1 {
			break
		}
		w, h = p.binDims(next)
		if !tryPack(ordered, w, h, &p.catalog, p.bufs[1-cur]) {
			break
		}
		cur = 1 - cur
		bounds = packedBounds(p.bufs[cur])
	}
	return bounds, cur, true
}

// vim: ts=4
