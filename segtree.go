package segtree

import "fmt"

// Tree is a segment tree over a fixed-size sequence of values of type V.
//
// The zero value is not usable; trees are created with New or FromSlice.
type Tree[V any] struct {
	nodes   []V // implicit binary tree, root at slot 1, slot 0 unused
	size    int // logical length
	combine func(left, right V) V
}

// New creates a tree of the given size with every element set to initial.
//
// combine must be associative. New panics if size < 1 or combine is nil.
//
// Inner nodes are computed from the leaves, i.e. a tree
//
//	New(3, 1, monoid.Sum[int])
//
// will report a total of 3.
func New[V any](size int, initial V, combine func(left, right V) V) *Tree[V] {
	if size < 1 {
		violated(fmt.Errorf("%w: size = %d", ErrEmptyTree, size))
	}
	t := makeTree(size, initial, combine)
	t.build(1, 0, size, func(int) V { return initial })
	T().Debugf("segtree: created tree of length %d", size)
	return t
}

// FromSlice creates a tree holding a copy of values, such that At(i) == values[i].
//
// combine must be associative. FromSlice panics if values is empty or combine is nil.
// Construction takes time O(n).
func FromSlice[V any](values []V, combine func(left, right V) V) *Tree[V] {
	if len(values) == 0 {
		violated(fmt.Errorf("%w: no initial values", ErrEmptyTree))
	}
	t := makeTree(len(values), values[0], combine)
	t.build(1, 0, len(values), func(i int) V { return values[i] })
	T().Debugf("segtree: built tree of length %d from slice", len(values))
	return t
}

func makeTree[V any](size int, initial V, combine func(left, right V) V) *Tree[V] {
	if combine == nil {
		violated(fmt.Errorf("%w: combine function is required", ErrInvalidConfig))
	}
	nodes := make([]V, size<<2)
	for i := range nodes {
		nodes[i] = initial
	}
	return &Tree[V]{
		nodes:   nodes,
		size:    size,
		combine: combine,
	}
}

// build fills the subtree at node, covering [left, right), bottom-up.
func (t *Tree[V]) build(node, left, right int, leaf func(int) V) {
	if left+1 == right {
		t.nodes[node] = leaf(left)
		return
	}
	mid := (left + right) >> 1
	t.build(node<<1, left, mid, leaf)
	t.build(node<<1|1, mid, right, leaf)
	t.nodes[node] = t.combine(t.nodes[node<<1], t.nodes[node<<1|1])
}

// Len returns the number of elements in the tree.
func (t *Tree[V]) Len() int {
	return t.size
}

// Get folds the elements of range [start, end) from left to right.
//
// For a range containing a single element, this element is returned without
// any call to combine. Get panics unless 0 ≤ start < end ≤ Len().
//
// Time complexity is O(log n).
func (t *Tree[V]) Get(start, end int) V {
	if start < 0 || start >= end || end > t.size {
		violated(fmt.Errorf("%w: [%d, %d) for length %d", ErrInvalidRange, start, end, t.size))
	}
	return t.get(1, 0, t.size, start, end)
}

// get folds [start, end) ∩ [left, right) for the subtree at node. The query
// range is guaranteed to overlap [left, right).
func (t *Tree[V]) get(node, left, right, start, end int) V {
	if start <= left && right <= end {
		return t.nodes[node]
	}
	mid := (left + right) >> 1
	if end <= mid {
		return t.get(node<<1, left, mid, start, end)
	} else if mid <= start {
		return t.get(node<<1|1, mid, right, start, end)
	}
	return t.combine(
		t.get(node<<1, left, mid, start, end),
		t.get(node<<1|1, mid, right, start, end),
	)
}

// Set replaces the element at index with value.
//
// Only the nodes on the path from the root to the element's leaf are touched.
// The leaf is written first, then its ancestors bottom-up. Set panics unless
// 0 ≤ index < Len().
//
// Time complexity is O(log n).
func (t *Tree[V]) Set(index int, value V) {
	if index < 0 || index >= t.size {
		violated(fmt.Errorf("%w: index %d for length %d", ErrIndexOutOfBounds, index, t.size))
	}
	t.set(1, 0, t.size, index, value)
}

func (t *Tree[V]) set(node, left, right, index int, value V) {
	if left+1 == right {
		t.nodes[node] = value
		return
	}
	mid := (left + right) >> 1
	if index < mid {
		t.set(node<<1, left, mid, index, value)
	} else {
		t.set(node<<1|1, mid, right, index, value)
	}
	t.nodes[node] = t.combine(t.nodes[node<<1], t.nodes[node<<1|1])
}

// Clone returns an independent copy of t. The combine function is shared.
func (t *Tree[V]) Clone() *Tree[V] {
	nodes := make([]V, len(t.nodes))
	copy(nodes, t.nodes)
	return &Tree[V]{
		nodes:   nodes,
		size:    t.size,
		combine: t.combine,
	}
}

func (t *Tree[V]) String() string {
	return fmt.Sprintf("SegTree{len=%d, total=%v}", t.size, t.nodes[1])
}
