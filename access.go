package segtree

import "fmt"

// Span is a half-open range [From, To) of element indices.
type Span struct {
	From, To int
}

// Len returns the number of indices in the span.
func (s Span) Len() int {
	return s.To - s.From
}

// Contains reports whether index i is inside the span.
func (s Span) Contains(i int) bool {
	return s.From <= i && i < s.To
}

func (s Span) String() string {
	return fmt.Sprintf("[%d,%d)", s.From, s.To)
}

// At returns the element at index. It panics unless 0 ≤ index < Len().
func (t *Tree[V]) At(index int) V {
	if index < 0 || index >= t.size {
		violated(fmt.Errorf("%w: index %d for length %d", ErrIndexOutOfBounds, index, t.size))
	}
	return t.get(1, 0, t.size, index, index+1)
}

// Fold is Get(span.From, span.To).
func (t *Tree[V]) Fold(span Span) V {
	return t.Get(span.From, span.To)
}

// Total folds all elements of the tree. It is the value of the root node.
func (t *Tree[V]) Total() V {
	return t.nodes[1]
}
