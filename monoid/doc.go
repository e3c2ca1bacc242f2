/*
Package monoid provides ready-made combine functions for segment trees.

Every function in this package is associative and may be handed to
segtree.New or segtree.FromSlice:

	tree := segtree.FromSlice([]int{5, 2, 7}, monoid.Min[int])

Some of them, like Concat, Compose or First, are not commutative. Segment trees
fold in index order, so this is fine.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the LICENSE file in the module root for details.
*/
package monoid
