package segtree

import "errors"

var (
	// ErrInvalidConfig signals a missing combine function.
	ErrInvalidConfig = errors.New("segtree: invalid configuration")
	// ErrEmptyTree signals an attempt to construct a tree without elements.
	ErrEmptyTree = errors.New("segtree: tree cannot be empty")
	// ErrIndexOutOfBounds signals an invalid element index.
	ErrIndexOutOfBounds = errors.New("segtree: index out of bounds")
	// ErrInvalidRange signals a range [start, end) which is empty or exceeds
	// the tree's length.
	ErrInvalidRange = errors.New("segtree: invalid range")
	// ErrInvariantViolated signals an internal node whose value differs from the
	// combination of its children.
	ErrInvariantViolated = errors.New("segtree: invariant violated")
)
