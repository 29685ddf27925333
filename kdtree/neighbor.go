package kdtree

// A Neighbor pairs an item returned by Tree.NearestNeighbors with its
// squared Euclidean distance to the query coordinate.
type Neighbor[T any] struct {
	// Distance is the squared Euclidean distance between the item and
	// the query coordinate.
	Distance float64
	// Item is the matched item.
	Item T
}

// neighbors is the bounded working set of a k-nearest-neighbour
// query: a max-heap keyed on Distance, so the worst candidate
// accepted so far is always at the root and retrievable first. It
// implements heap.Interface.
type neighbors[T any] []Neighbor[T]

func (h neighbors[T]) Len() int           { return len(h) }
func (h neighbors[T]) Less(i, j int) bool { return h[i].Distance > h[j].Distance }
func (h neighbors[T]) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }

func (h *neighbors[T]) Push(x interface{}) {
	*h = append(*h, x.(Neighbor[T]))
}

func (h *neighbors[T]) Pop() interface{} {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]
	return x
}
