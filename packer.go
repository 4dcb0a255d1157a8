package binpack

import (
	"cmp"
	"math"
	"slices"
)

// Packer packs sets of rectangles into compact square-ish bins.
//
// A Packer owns the scratch memory used during a packing: the free-space
// catalog, the sorting buffer, and the placement buffers. The memory is
// reused across calls to Pack, making a long-lived Packer the cheap way to
// perform many packings. A Packer must not be used from multiple goroutines
// at once; independent goroutines should each own their own Packer.
type Packer struct {
	// Hints selects which orderings of the input are attempted. More hints
	// cost more time and find smaller bins.
	//
	// Default: AllHints
	Hints Hint
	// Density is the packing density (total rectangle area divided by bin
	// area) considered good enough to stop trying further orderings. Values
	// are clamped to the range [0.1, 1.0] when packing. A density of 1 only
	// stops early on a perfect, gap-free packing, so it normally means all
	// enabled orderings are tried.
	//
	// Default: 1
	Density float64
	// Step is the increment between candidate bin sizes. Larger steps search
	// faster and find coarser results. Pack fails unless it is positive.
	//
	// Default: 1
	Step int
	// MaxWidth limits the width of the bin, or is unbounded when 0. A
	// rectangle exceeding a limit fails the pack with ErrCannotFit. With no
	// limits set, the search grows the bin until the rectangles fit, however
	// long that takes; callers that need bounded time should set both limits.
	//
	// Default: 0
	MaxWidth int
	// MaxHeight limits the height of the bin, or is unbounded when 0.
	//
	// Default: 0
	MaxHeight int

	catalog spaceCatalog
	work    []Rect
	best    []Rect
	bufs    [2][]Rect
}

// NewPacker initializes a new Packer with default settings.
func NewPacker() *Packer {
	return &Packer{Hints: AllHints, Density: 1, Step: 1}
}

// Pack assigns a position to every rectangle such that no two overlap, and
// returns the bounds of the bin used, anchored at the origin.
//
// The Width, Height and ID of each rectangle are never modified. The relative
// order of the slice is not preserved; use IDs to recover which output
// corresponds to which input. An empty slice packs to a zero-size bounds with
// no error. On a non-nil error no rectangle has been modified.
func (p *Packer) Pack(rects []Rect) (Rect, error) {
	if p.Step <= 0 {
		return Rect{}, ErrZeroStep
	}
	if p.Hints&AllHints == 0 {
		return Rect{}, ErrNoHints
	}
	if len(rects) == 0 {
		return Rect{}, nil
	}
	// A rectangle wider or taller than a configured limit can never be
	// placed; reject it up front instead of growing the bin forever.
	for i := range rects {
		if (p.MaxWidth > 0 && rects[i].Width > p.MaxWidth) ||
			(p.MaxHeight > 0 && rects[i].Height > p.MaxHeight) {
			return Rect{}, ErrCannotFit
		}
	}

	total := TotalArea(rects)
	density := min(max(p.Density, 0.1), 1.0)
	acceptable := int(math.Ceil(float64(total) / density))
	size := max(1, int(math.Ceil(math.Sqrt(float64(total))*1.03)))

	n := len(rects)
	p.work = resize(p.work, n)
	p.best = resize(p.best, n)
	p.bufs[0] = resize(p.bufs[0], n)
	p.bufs[1] = resize(p.bufs[1], n)

	var bounds Rect
	bestArea := math.MaxInt
	for _, hint := range hintOrder {
		if p.Hints&hint == 0 {
			continue
		}
		if bestArea <= acceptable {
			break
		}

		copy(p.work, rects)
		h := hint
		slices.SortStableFunc(p.work, func(a, b Rect) int {
			return cmp.Compare(sortKey(h, &b), sortKey(h, &a))
		})

		found, buf, ok := p.findBin(p.work, size, p.Step, bestArea == math.MaxInt)
		if !ok || found.Area() >= bestArea {
			continue
		}
		bounds = found
		bestArea = found.Area()
		size = found.MaxSide()
		// Claim the winning buffer; the old best becomes scratch.
		p.best, p.bufs[buf] = p.bufs[buf], p.best
	}

	// Only possible when both bin dimensions are limited.
	if bestArea == math.MaxInt {
		return Rect{}, ErrCannotFit
	}

	copy(rects, p.best)
	return bounds, nil
}

// Pack assigns a position to every rectangle using a one-off Packer with
// default settings. See Packer.Pack.
func Pack(rects []Rect) (Rect, error) {
	return NewPacker().Pack(rects)
}

func resize(buf []Rect, n int) []Rect {
	if cap(buf) < n {
		return make([]Rect, n)
	}
	return buf[:n]
}

// vim: ts=4
