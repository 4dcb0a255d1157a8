package binpack

import "fmt"

// Rect describes a rectangle to be packed into a bin.
//
// Width and Height are supplied by the caller and are never modified by the
// packer. X and Y are outputs: any input values are ignored and overwritten
// with the assigned position. ID is an opaque caller-supplied identifier that
// the packer never reads; because packing does not preserve the relative
// order of a slice, it is the only reliable way to match an output rectangle
// back to its input.
//
// A well-formed rectangle has non-negative dimensions. Zero-sized rectangles
// are accepted and trivially fit anywhere.
type Rect struct {
	// X is the location of the left edge on the horizontal x-axis.
	X int `json:"x"`
	// Y is the location of the top edge on the vertical y-axis.
	Y int `json:"y"`
	// Width is the dimension on the horizontal x-axis.
	Width int `json:"width"`
	// Height is the dimension on the vertical y-axis.
	Height int `json:"height"`
	// ID is a user-defined identifier that can be used to differentiate this
	// instance from others.
	ID int `json:"-"`
}

// NewRect initializes a new rectangle with the specified identifier and
// dimensions.
func NewRect(id, width, height int) Rect {
	return Rect{ID: id, Width: width, Height: height}
}

// Eq tests whether the receiver and another rectangle have equal position and
// size. The ID field is ignored.
func (r *Rect) Eq(rect Rect) bool {
	return r.X == rect.X && r.Y == rect.Y && r.Width == rect.Width && r.Height == rect.Height
}

// String returns a string describing the rectangle.
func (r *Rect) String() string {
	return fmt.Sprintf("<%v, %v, %v, %v>", r.X, r.Y, r.Width, r.Height)
}

// Right returns the coordinate of the right edge of the rectangle on the x-axis.
func (r *Rect) Right() int {
	return r.X + r.Width
}

// Bottom returns the coordinate of the bottom edge of the rectangle on the y-axis.
func (r *Rect) Bottom() int {
	return r.Y + r.Height
}

// Area returns the total area (width * height).
func (r *Rect) Area() int {
	return r.Width * r.Height
}

// Perimeter returns the sum length of all sides.
func (r *Rect) Perimeter() int {
	return (r.Width + r.Height) << 1
}

// MaxSide returns the value of the greater side.
func (r *Rect) MaxSide() int {
	return max(r.Width, r.Height)
}

// MinSide returns the value of the lesser side.
func (r *Rect) MinSide() int {
	return min(r.Width, r.Height)
}

// PathologicalRatio returns the area weighted by the aspect ratio of the
// rectangle, computed as (MaxSide / MinSide) * Area with integer division.
// Extreme-aspect rectangles score disproportionately high, which makes this
// useful as an ordering key that places them early. Returns 0 when the lesser
// side is 0.
func (r *Rect) PathologicalRatio() int {
	smaller := r.MinSide()
	if smaller == 0 {
		return 0
	}
	return (r.MaxSide() / smaller) * r.Area()
}

// IsEmpty tests whether the width or height of the rectangle is less than 1.
func (r *Rect) IsEmpty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Intersects tests whether the receiver has any overlap with the specified
// rectangle. Touching edges are not an overlap, and zero-area rectangles
// never overlap anything.
func (r *Rect) Intersects(rect Rect) bool {
	if r.IsEmpty() || rect.IsEmpty() {
		return false
	}
	return rect.X < r.X+r.Width &&
		r.X < rect.X+rect.Width &&
		rect.Y < r.Y+r.Height &&
		r.Y < rect.Y+rect.Height
}

// ContainsRect tests whether the specified rectangle is contained within the
// bounds of the receiver.
func (r *Rect) ContainsRect(rect Rect) bool {
	return r.X <= rect.X &&
		rect.X+rect.Width <= r.X+r.Width &&
		r.Y <= rect.Y &&
		rect.Y+rect.Height <= r.Y+r.Height
}

// TotalArea returns the sum of the areas of all given rectangles.
func TotalArea(rects []Rect) int {
	var total int
	for i := range rects {
		total += rects[i].Area()
	}
	return total
}

// BoundsOf returns the smallest rectangle containing every given rectangle.
// Returns ErrNoBounds when the slice is empty.
func BoundsOf(rects []Rect) (Rect, error) {
	if len(rects) == 0 {
		return Rect{}, ErrNoBounds
	}

	x1, y1 := rects[0].X, rects[0].Y
	x2, y2 := rects[0].Right(), rects[0].Bottom()
	for i := 1; i < len(rects); i++ {
		x1 = min(x1, rects[i].X)
		y1 = min(y1, rects[i].Y)
		x2 = max(x2, rects[i].Right())
		y2 = max(y2, rects[i].Bottom())
	}
	return Rect{X: x1, Y: y1, Width: x2 - x1, Height: y2 - y1}, nil
}

// AnyIntersects tests whether any pair of the given rectangles overlap. The
// comparison is O(n²) and intended for verifying results, not hot paths.
func AnyIntersects(rects []Rect) bool {
	for i := 0; i < len(rects)-1; i++ {
		for j := i + 1; j < len(rects); j++ {
			if rects[i].Intersects(rects[j]) {
				return true
			}
		}
	}
	return false
}

// vim: ts=4
