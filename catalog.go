package binpack

import (
	"slices"
	"sort"
)

// freeRegion pairs an empty rectangular area of the bin with its cached sort
// key. The key never lives on the rectangle itself; it is owned by the
// catalog for exactly as long as the region is.
type freeRegion struct {
	rect Rect
	key  int
}

// regionKey computes the ordering key of a free region: the distance of its
// origin corner from the nearer bin edge. Regions close to the top-left are
// tried first.
func regionKey(r *Rect) int {
	return max(r.X, r.Y)
}

// spaceCatalog maintains the set of free regions for one in-progress packing
// attempt, ordered ascending by key. Queries are first-fit: the first region
// in catalog order that is large enough wins, with ties among equal keys
// resolved by insertion order.
type spaceCatalog struct {
	regions []freeRegion
}

// reset clears the catalog and inserts a single region spanning the entire bin.
func (c *spaceCatalog) reset(width, height int) {
	c.regions = c.regions[:0]
	c.regions = append(c.regions, freeRegion{rect: Rect{Width: width, Height: height}})
}

// insert adds a region at its sorted position. Equal keys insert after
// existing entries, keeping the ordering stable.
func (c *spaceCatalog) insert(rect Rect) {
	key := regionKey(&rect)
	i := sort.Search(len(c.regions), func(i int) bool {
		return c.regions[i].key > key
	})
	c.regions = slices.Insert(c.regions, i, freeRegion{rect: rect, key: key})
}

// firstFit returns the index of the first region, in ascending key order,
// that can hold the given dimensions, or -1 when none can.
func (c *spaceCatalog) firstFit(width, height int) int {
	for i := range c.regions {
		if c.regions[i].rect.Width >= width && c.regions[i].rect.Height >= height {
			return i
		}
	}
	return -1
}

// update replaces the region at index with a shrunken version of itself and
// repositions it in sort order. Shrinking a region moves its origin corner
// away from the bin origin, so the key can only grow and the region can only
// move later in the ordering; only the tail past index needs searching.
func (c *spaceCatalog) update(index int, rect Rect) {
	key := regionKey(&rect)
	tail := c.regions[index+1:]
	n := sort.Search(len(tail), func(i int) bool {
		return tail[i].key > key
	})
	copy(c.regions[index:], tail[:n])
	c.regions[index+n] = freeRegion{rect: rect, key: key}
}

// remove deletes the region at index.
func (c *spaceCatalog) remove(index int) {
	c.regions = slices.Delete(c.regions, index, index+1)
}

// vim: ts=4
