/*
Package console prints segment trees to a terminal, for debugging.

Trees are printed one depth level per block, every node as its element span and
value. Nodes may be marked, e.g. the nodes covering a query range, and will then
be printed in a highlight color:

	tree := segtree.FromSlice([]int{1, 3, 2, 4, 7}, monoid.Sum[int])
	console.Print(tree, tree.Cover(1, 4))

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the LICENSE file in the module root for details.
*/
package console

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}
