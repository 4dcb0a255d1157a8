// Package binpack packs axis-aligned rectangles into a compact square-ish
// bin, assigning each a non-overlapping position. Typical uses are texture
// atlases, sprite sheets, and block layout, where many images of known sizes
// must share one surface with little waste.
//
// The engine is a bounded-time heuristic search, not an exact solver (bin
// packing is NP-hard). One packing tries several sort orders of the input
// (see Hint) and, for each, searches candidate bin sizes with a guillotine
// free-space splitting placement; the smallest bin found wins. For a fixed
// input order and configuration the result is deterministic.
//
// The simplest entry point is the package-level Pack. Callers performing many
// packings should keep a Packer, which reuses its scratch memory across
// calls. Packing is synchronous and CPU-bound with no internal parallelism;
// a Packer must not be shared between goroutines.
//
// Errors:
//
//   - ErrZeroStep: the configured step is not a positive integer.
//   - ErrNoHints: the configured hint set enables no ordering.
//   - ErrCannotFit: the rectangles cannot fit within the configured
//     maximum bin dimensions.
//   - ErrNoBounds: BoundsOf was called with an empty slice.
package binpack

// vim: ts=4
