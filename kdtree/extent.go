package kdtree

// An extent is the axis-aligned box searched by Tree.BoxedRange,
// normalized to per-axis lower and upper bounds, both inclusive. Only
// the first dim axes are meaningful.
type extent struct {
	lower, upper Coord
	dim          int
}

// newExtent normalizes two opposite box corners, given in any order,
// into per-axis bounds.
func newExtent(c1, c2 Coord, dim int) extent {
	e := extent{dim: dim}
	for axis := 0; axis < dim; axis++ {
		if c1[axis] <= c2[axis] {
			e.lower[axis], e.upper[axis] = c1[axis], c2[axis]
		} else {
			e.lower[axis], e.upper[axis] = c2[axis], c1[axis]
		}
	}
	return e
}

// contains reports whether c lies inside the extent on every active
// axis.
func (e *extent) contains(c Coord) bool {
	for axis := 0; axis < e.dim; axis++ {
		if c[axis] < e.lower[axis] || c[axis] > e.upper[axis] {
			return false
		}
	}
	return true
}
