package segtree

import "fmt"

// Check validates the tree invariant: every inner node holds the combination of
// its children's values. Values are compared with ==.
//
// Check recomputes every inner node and should be used in tests.
func Check[V comparable](t *Tree[V]) error {
	return CheckFunc(t, func(a, b V) bool { return a == b })
}

// CheckFunc is like Check, but compares values with equal.
func CheckFunc[V any](t *Tree[V], equal func(a, b V) bool) error {
	if t == nil {
		return fmt.Errorf("%w: nil tree", ErrInvalidConfig)
	}
	if equal == nil {
		return fmt.Errorf("%w: equality function is required", ErrInvalidConfig)
	}
	if t.size < 1 {
		return fmt.Errorf("%w: length %d", ErrEmptyTree, t.size)
	}
	if len(t.nodes) != t.size<<2 {
		return fmt.Errorf("%w: backing store has %d slots, expected %d",
			ErrInvariantViolated, len(t.nodes), t.size<<2)
	}
	return t.checkNode(1, 0, t.size, equal)
}

func (t *Tree[V]) checkNode(node, left, right int, equal func(a, b V) bool) error {
	if left+1 == right {
		return nil
	}
	mid := (left + right) >> 1
	if err := t.checkNode(node<<1, left, mid, equal); err != nil {
		return err
	}
	if err := t.checkNode(node<<1|1, mid, right, equal); err != nil {
		return err
	}
	want := t.combine(t.nodes[node<<1], t.nodes[node<<1|1])
	if !equal(t.nodes[node], want) {
		return fmt.Errorf("%w: slot %d covering [%d,%d) holds %v, children combine to %v",
			ErrInvariantViolated, node, left, right, t.nodes[node], want)
	}
	return nil
}
