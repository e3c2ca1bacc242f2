package segtree

import "fmt"

// Seek finds the furthest end position of a fold starting at start, for which
// a predicate holds.
//
// pred has to be monotone for folds starting at start: once it fails for
// Get(start, e), it has to fail for all Get(start, e') with e' > e as well.
// Seek then returns the largest end in (start, Len()] such that
// pred(Get(start, end)) is true, or start if pred is false already for the
// single element at start.
//
// A typical use is searching prefix sums:
//
//	tree := FromSlice([]int{3, 1, 4, 1, 5}, monoid.Sum[int])
//	tree.Seek(0, func(sum int) bool { return sum <= 8 })  // => 3
//
// Seek panics unless 0 ≤ start < Len() and pred is non-nil.
func (t *Tree[V]) Seek(start int, pred func(V) bool) int {
	if start < 0 || start >= t.size {
		violated(fmt.Errorf("%w: seek start %d for length %d", ErrIndexOutOfBounds, start, t.size))
	}
	if pred == nil {
		violated(fmt.Errorf("%w: seek predicate is required", ErrInvalidConfig))
	}
	s := seeker[V]{tree: t, pred: pred, end: start}
	s.descend(1, 0, t.size, start)
	return s.end
}

// seeker accumulates the fold of [start, end) while walking nodes left to right.
type seeker[V any] struct {
	tree *Tree[V]
	pred func(V) bool
	acc  V
	has  bool // acc holds a value
	end  int  // end of the longest fold accepted so far
}

// descend visits the part of the subtree at node which lies right of start.
// It returns true as soon as pred failed for a single element.
func (s *seeker[V]) descend(node, left, right, start int) bool {
	if right <= start {
		return false
	}
	if start <= left {
		candidate := s.tree.nodes[node]
		if s.has {
			candidate = s.tree.combine(s.acc, candidate)
		}
		if s.pred(candidate) {
			s.acc, s.has, s.end = candidate, true, right
			return false
		}
		if left+1 == right {
			return true
		}
	}
	mid := (left + right) >> 1
	if s.descend(node<<1, left, mid, start) {
		return true
	}
	return s.descend(node<<1|1, mid, right, start)
}
