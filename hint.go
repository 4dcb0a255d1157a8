package binpack

import "strings"

// Hint is a bitfield selecting which sort orders of the input the packer will
// attempt. Each enabled hint sorts a copy of the rectangles in descending
// order by its key (bigger and harder rectangles first) and measures the bin
// that ordering produces; the smallest bin across all attempted orderings
// wins.
//
// Hints may be OR'ed together in any combination. Regardless of how a value
// was assembled, the orderings are always attempted in a fixed canonical
// order: area, perimeter, bigger side, width, height, pathological ratio.
type Hint uint8

const (
	// ByArea sorts rectangles by their total area.
	ByArea Hint = 1 << iota
	// ByPerimeter sorts rectangles by the sum length of their sides.
	ByPerimeter
	// ByBiggerSide sorts rectangles by their greater dimension.
	ByBiggerSide
	// ByWidth sorts rectangles by width.
	ByWidth
	// ByHeight sorts rectangles by height.
	ByHeight
	// ByPathological sorts rectangles by their aspect-ratio-weighted area,
	// placing extreme-aspect rectangles early. See Rect.PathologicalRatio.
	ByPathological

	// AllHints enables every ordering. Slowest, but finds the smallest bin
	// the engine is capable of.
	AllHints = ByArea | ByPerimeter | ByBiggerSide | ByWidth | ByHeight | ByPathological
)

// hintOrder fixes the canonical order in which enabled orderings are tried.
var hintOrder = [...]Hint{ByArea, ByPerimeter, ByBiggerSide, ByWidth, ByHeight, ByPathological}

// sortKey returns the ordering key of a rectangle for a single hint. The
// switch is exhaustive over the defined hints; an unknown bit yields 0.
func sortKey(hint Hint, r *Rect) int {
	switch hint {
	case ByArea:
		return r.Area()
	case ByPerimeter:
		return r.Perimeter()
	case ByBiggerSide:
		return r.MaxSide()
	case ByWidth:
		return r.Width
	case ByHeight:
		return r.Height
	case ByPathological:
		return r.PathologicalRatio()
	default:
		return 0
	}
}

// String returns the string representation of the hint set.
func (h Hint) String() string {
	var sb strings.Builder
	for _, hint := range hintOrder {
		if h&hint == 0 {
			continue
		}
		if sb.Len() > 0 {
			sb.WriteRune('|')
		}
		switch hint {
		case ByArea:
			sb.WriteString("Area")
		case ByPerimeter:
			sb.WriteString("Perimeter")
		case ByBiggerSide:
			sb.WriteString("BiggerSide")
		case ByWidth:
			sb.WriteString("Width")
		case ByHeight:
			sb.WriteString("Height")
		case ByPathological:
			sb.WriteString("Pathological")
		}
	}
	if sb.Len() == 0 {
		return "None"
	}
	return sb.String()
}

// vim: ts=4
