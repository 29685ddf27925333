// Copyright 2024 The GeometryExtensions (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package kdtree

import (
	"container/heap"
	"fmt"
	"math"
	"runtime"
	"sync"
)

// A Coord is a coordinate with up to three components. Trees built
// with dimension 2 ignore the third component everywhere: distance,
// pruning, and containment computations use the first two components
// only.
type Coord [3]float64

// A Position extracts the coordinate of an item. It must be a pure
// function: the tree calls it freely during construction and queries
// and caches nothing. Position is the only coupling point between the
// index and the host point representation.
type Position[T any] func(T) Coord

// distanceFunc is a squared Euclidean distance over the components
// active for the tree's dimension.
type distanceFunc func(a, b Coord) float64

func sqDist2(a, b Coord) float64 {
	dx := a[0] - b[0]
	dy := a[1] - b[1]
	return dx*dx + dy*dy
}

func sqDist3(a, b Coord) float64 {
	dx := a[0] - b[0]
	dy := a[1] - b[1]
	dz := a[2] - b[2]
	return dx*dx + dy*dy + dz*dz
}

// A node holds one partition value. depth is fixed at creation and
// derives the splitting axis; left and right are exclusively owned by
// the node. Nodes are never modified after the build step that
// assigns their children, and the type is unexported so the
// post-construction immutability invariant cannot be broken from
// outside the package.
type node[T any] struct {
	value       T
	depth       int
	left, right *node[T]
}

// Tree is a k-d tree spatial index over items of type T. Build a Tree
// with New (or one of the typed wrappers in point.go), then query it
// any number of times; a built Tree is immutable and safe for
// concurrent queries.
//
// Structural invariant: for a node at depth d with
// axis = d mod dimension, every item in its left subtree has
// coordinate[axis] <= the node's coordinate[axis], and every item in
// its right subtree has coordinate[axis] >= it. The invariant is local
// to each node, not a global sort order.
type Tree[T any] struct {
	root     *node[T]
	dim      int
	position Position[T]
	sqDist   distanceFunc
	size     int
}

// New builds a k-d tree over items. position maps an item to its
// coordinate and dimension selects 2- or 3-component geometry.
//
// New returns ErrInvalidDimension if dimension is neither 2 nor 3,
// ErrNilInput if items or position is nil, and ErrEmptyInput if items
// holds zero elements. Construction is atomic: on error no tree is
// returned, and on success the tree is fully formed and non-empty.
//
// The items slice is copied before partitioning; the caller's slice
// is never reordered. Construction fans out onto goroutine pairs near
// the root, bounded by the available processor count, so large inputs
// build in parallel without oversubscription.
func New[T any](items []T, position Position[T], dimension int) (*Tree[T], error) {
	if dimension != 2 && dimension != 3 {
		return nil, ErrInvalidDimension
	}
	if items == nil || position == nil {
		return nil, ErrNilInput
	}
	if len(items) == 0 {
		return nil, ErrEmptyInput
	}
	t := &Tree[T]{
		dim:      dimension,
		position: position,
		size:     len(items),
	}
	if dimension == 2 {
		t.sqDist = sqDist2
	} else {
		t.sqDist = sqDist3
	}
	scratch := make([]T, len(items))
	copy(scratch, items)
	t.root = t.build(scratch, 0, parallelDepth(runtime.GOMAXPROCS(0)))
	return t, nil
}

// parallelDepth returns the number of tree levels below the root on
// which construction forks each node's two subtrees onto separate
// goroutines: the smallest d such that p>>d <= 1. Fan-out is thereby
// bounded by roughly the processor count p.
func parallelDepth(p int) int {
	d := 0
	for p>>d > 1 {
		d++
	}
	return d
}

// build recursively partitions items into a subtree rooted at the
// median along the axis cycling with depth. The median selection
// leaves the left partition in items[:mid] and the right partition in
// items[mid+1:]; the two are disjoint subslices, so the forked
// goroutines above the parallel depth share no mutable state.
func (t *Tree[T]) build(items []T, depth, parallel int) *node[T] {
	if len(items) == 0 {
		return nil
	}
	axis := depth % t.dim
	median := medianOf(items, func(a, b T) int {
		pa, pb := t.position(a)[axis], t.position(b)[axis]
		switch {
		case pa < pb:
			return -1
		case pa > pb:
			return 1
		default:
			return 0
		}
	})
	mid := len(items) / 2
	n := &node[T]{value: median, depth: depth}
	left, right := items[:mid], items[mid+1:]
	if depth < parallel {
		var wg sync.WaitGroup
		wg.Add(2)
		go func() {
			defer wg.Done()
			n.left = t.build(left, depth+1, parallel)
		}()
		go func() {
			defer wg.Done()
			n.right = t.build(right, depth+1, parallel)
		}()
		wg.Wait()
	} else {
		n.left = t.build(left, depth+1, parallel)
		n.right = t.build(right, depth+1, parallel)
	}
	return n
}

// NearestNeighbor returns the item with the smallest squared Euclidean
// distance to q. Ties are resolved by traversal order under strict <
// comparison: the first item found at the minimum distance wins. A
// constructed tree is never empty, so there is always a result.
func (t *Tree[T]) NearestNeighbor(q Coord) T {
	best := t.root
	bestDist := math.Inf(1)
	t.nearest(t.root, q, &best, &bestDist)
	return best.value
}

func (t *Tree[T]) nearest(n *node[T], q Coord, best **node[T], bestDist *float64) {
	if n == nil {
		return
	}
	c := t.position(n.value)
	if d := t.sqDist(c, q); d < *bestDist {
		*best, *bestDist = n, d
	}
	axis := n.depth % t.dim
	delta := q[axis] - c[axis]
	near, far := n.right, n.left
	if q[axis] < c[axis] {
		near, far = n.left, n.right
	}
	t.nearest(near, q, best, bestDist)
	// The far half-space can only hold a closer item if the splitting
	// hyperplane is nearer than the best distance found so far.
	if delta*delta < *bestDist {
		t.nearest(far, q, best, bestDist)
	}
}

// NeighborsWithin returns every item whose Euclidean distance to q is
// at most radius. Results are in traversal (pre-order) order, not
// sorted by distance.
func (t *Tree[T]) NeighborsWithin(q Coord, radius float64) []T {
	found := make([]T, 0)
	t.within(t.root, q, radius*radius, &found)
	return found
}

func (t *Tree[T]) within(n *node[T], q Coord, sqRadius float64, found *[]T) {
	if n == nil {
		return
	}
	c := t.position(n.value)
	// Unconditional inclusion test: multiple items may lie at the
	// same distance, so the current node is tested at every visit.
	if t.sqDist(c, q) <= sqRadius {
		*found = append(*found, n.value)
	}
	axis := n.depth % t.dim
	delta := q[axis] - c[axis]
	near, far := n.right, n.left
	if q[axis] < c[axis] {
		near, far = n.left, n.right
	}
	t.within(near, q, sqRadius, found)
	if delta*delta <= sqRadius {
		t.within(far, q, sqRadius, found)
	}
}

// NearestNeighbors returns the k items closest to q, or every item if
// the tree holds fewer than k. Each result carries its squared
// distance to q. The order of the returned slice is not defined: only
// the multiset of the k nearest distances is guaranteed, and callers
// needing ascending order must sort the result. k <= 0 yields an
// empty slice.
func (t *Tree[T]) NearestNeighbors(q Coord, k int) []Neighbor[T] {
	if k <= 0 {
		return []Neighbor[T]{}
	}
	h := make(neighbors[T], 0, k)
	t.kNearest(t.root, q, k, &h)
	return h
}

func (t *Tree[T]) kNearest(n *node[T], q Coord, k int, h *neighbors[T]) {
	if n == nil {
		return
	}
	c := t.position(n.value)
	d := t.sqDist(c, q)
	if h.Len() < k {
		heap.Push(h, Neighbor[T]{Distance: d, Item: n.value})
	} else if d < (*h)[0].Distance {
		// The working set is full: a candidate replaces the current
		// worst entry only if strictly closer.
		(*h)[0] = Neighbor[T]{Distance: d, Item: n.value}
		heap.Fix(h, 0)
	}
	axis := n.depth % t.dim
	delta := q[axis] - c[axis]
	near, far := n.right, n.left
	if q[axis] < c[axis] {
		near, far = n.left, n.right
	}
	t.kNearest(near, q, k, h)
	if h.Len() < k || delta*delta < (*h)[0].Distance {
		t.kNearest(far, q, k, h)
	}
}

// BoxedRange returns every item lying within the axis-aligned box
// spanned by the two opposite corners c1 and c2, bounds inclusive on
// every active axis. The corners may be given in any order.
func (t *Tree[T]) BoxedRange(c1, c2 Coord) []T {
	e := newExtent(c1, c2, t.dim)
	found := make([]T, 0)
	t.boxed(t.root, &e, &found)
	return found
}

func (t *Tree[T]) boxed(n *node[T], e *extent, found *[]T) {
	if n == nil {
		return
	}
	c := t.position(n.value)
	if e.contains(c) {
		*found = append(*found, n.value)
	}
	axis := n.depth % t.dim
	switch {
	case c[axis] > e.upper[axis]:
		t.boxed(n.left, e, found)
	case c[axis] < e.lower[axis]:
		t.boxed(n.right, e, found)
	default:
		// The splitting hyperplane crosses the box on this axis, so
		// either side may contain members.
		t.boxed(n.left, e, found)
		t.boxed(n.right, e, found)
	}
}

// Dimension returns the number of active coordinate components, 2
// or 3.
func (t *Tree[T]) Dimension() int {
	return t.dim
}

// Len returns the number of items stored in the tree.
func (t *Tree[T]) Len() int {
	return t.size
}

// String returns a summary description of the tree.
func (t *Tree[T]) String() string {
	return fmt.Sprintf("Tree{Dimension:%d,Len:%d}", t.dim, t.size)
}
