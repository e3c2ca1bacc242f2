package segtree

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"
)

// Node is a read-only view of a single node of the implicit tree. It is used
// for debugging output.
type Node[V any] struct {
	Slot  int  // position in the backing store; the root is at slot 1
	Span  Span // range of elements the node folds
	Depth int  // 0 for the root
	Value V
}

// IsLeaf is true for nodes holding a single element.
func (n Node[V]) IsLeaf() bool {
	return n.Span.Len() == 1
}

// EachNode walks the nodes of the tree in pre-order, i.e. every node is visited
// before its children and left children before right ones. Consequently nodes
// of equal depth are visited in index order.
//
// The walk stops early if fn returns false.
func (t *Tree[V]) EachNode(fn func(n Node[V]) bool) {
	if fn == nil {
		return
	}
	t.eachNode(1, 0, t.size, 0, fn)
}

func (t *Tree[V]) eachNode(node, left, right, depth int, fn func(Node[V]) bool) bool {
	n := Node[V]{
		Slot:  node,
		Span:  Span{From: left, To: right},
		Depth: depth,
		Value: t.nodes[node],
	}
	if !fn(n) {
		return false
	}
	if left+1 == right {
		return true
	}
	mid := (left + right) >> 1
	if !t.eachNode(node<<1, left, mid, depth+1, fn) {
		return false
	}
	return t.eachNode(node<<1|1, mid, right, depth+1, fn)
}

// Cover returns the slots of the nodes which Get(start, end) reads without
// descending into them. These nodes are disjoint, there are O(log n) of them,
// and folding their values in slot-span order equals Get(start, end).
//
// Cover panics unless 0 ≤ start < end ≤ Len().
func (t *Tree[V]) Cover(start, end int) *bitset.BitSet {
	if start < 0 || start >= end || end > t.size {
		violated(fmt.Errorf("%w: [%d, %d) for length %d", ErrInvalidRange, start, end, t.size))
	}
	cover := bitset.New(uint(len(t.nodes)))
	t.cover(1, 0, t.size, start, end, cover)
	return cover
}

func (t *Tree[V]) cover(node, left, right, start, end int, cover *bitset.BitSet) {
	if start <= left && right <= end {
		cover.Set(uint(node))
		return
	}
	mid := (left + right) >> 1
	if start < mid {
		t.cover(node<<1, left, mid, start, end, cover)
	}
	if mid < end {
		t.cover(node<<1|1, mid, right, start, end, cover)
	}
}

// Path returns the slots of the nodes which Set(index, …) writes: the leaf of
// index and all of its ancestors up to the root.
//
// Path panics unless 0 ≤ index < Len().
func (t *Tree[V]) Path(index int) *bitset.BitSet {
	if index < 0 || index >= t.size {
		violated(fmt.Errorf("%w: index %d for length %d", ErrIndexOutOfBounds, index, t.size))
	}
	path := bitset.New(uint(len(t.nodes)))
	node, left, right := 1, 0, t.size
	for {
		path.Set(uint(node))
		if left+1 == right {
			return path
		}
		mid := (left + right) >> 1
		if index < mid {
			node, right = node<<1, mid
		} else {
			node, left = node<<1|1, mid
		}
	}
}
