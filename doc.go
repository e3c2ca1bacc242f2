/*
Package segtree offers a generic segment tree for associative range queries.

Segment Trees

A segment tree holds a fixed-size sequence of values and answers questions of the
form “what do the elements from i to j add up to?” for an arbitrary, caller
supplied way of “adding up”. Both changing a single element and folding a range
take logarithmic time.

The way elements are combined is a function

	combine(left, right T) T

which has to be associative:

	combine(combine(a, b), c) == combine(a, combine(b, c))

It is not required to be commutative. Folds always combine elements in index
order, left to right, therefore string concatenation, matrix products or the
composition of affine maps are perfectly fine. Package monoid holds a couple of
ready-made combine functions. If combine is not associative, results of Get
are unspecified, but the tree will not misbehave otherwise.

The tree is stored implicitly in a single flat slice: the root lives at slot 1,
and the children of slot k live at slots 2k and 2k+1. There are no node objects
and no pointers, and nothing is allocated after construction.

	tree := segtree.FromSlice([]int{1, 3, 2, 4}, monoid.Sum[int])
	tree.Get(1, 3)  // => 5
	tree.Set(2, 10)
	tree.Get(1, 3)  // => 13

Ranges are half-open and 0-based, i.e. Get(start, end) folds the elements at
indices start, start+1, …, end-1.

Preconditions

Calling into a tree with an invalid index or range is a programming error on
the caller's side, much like indexing a slice out of bounds. All operations check
their arguments and panic with an error value describing the violation. The error
wraps one of the sentinel errors of this package, so a recovering caller may
inspect it with errors.Is.

Concurrency

Trees are not safe for concurrent use. Clients have to serialize access to a
tree themselves.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package segtree

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// violated reports a broken precondition to the tracer and panics with err.
func violated(err error) {
	T().Errorf("%s", err.Error())
	panic(err)
}
