package binpack

import "errors"

var (
	// ErrZeroStep indicates a packer was configured with a step that is not a
	// positive integer.
	ErrZeroStep = errors.New("binpack: step must be a positive integer")
	// ErrNoHints indicates a packer was configured with a hint set that
	// enables no known ordering.
	ErrNoHints = errors.New("binpack: no packing hints specified")
	// ErrCannotFit indicates the rectangles cannot be packed within the
	// configured maximum bin dimensions.
	ErrCannotFit = errors.New("binpack: rectangles cannot fit within the maximum bin size")
	// ErrNoBounds indicates the bounds of an empty rectangle set were requested.
	ErrNoBounds = errors.New("binpack: bounds of an empty rectangle set are undefined")
)

// vim: ts=4
