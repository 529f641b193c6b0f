package search

// openItem is an entry of the A* open set.
type openItem struct {
	coord Coordinate
	f     int // gScore + heuristic
	seq   int // insertion order, breaks f ties
	index int // position in the heap, maintained by Swap/Push/Pop
}

// openSet is a min-heap of *openItem ordered by (f, seq). Ties on f go to
// the item inserted first, which matches taking the first minimum of a
// stably sorted list. Refreshing an item's f in place keeps its seq.
type openSet []*openItem

// Len returns the number of items in the heap.
func (pq openSet) Len() int { return len(pq) }

// Less orders by f, then by insertion sequence.
func (pq openSet) Less(i, j int) bool {
	if pq[i].f != pq[j].f {
		return pq[i].f < pq[j].f
	}

	return pq[i].seq < pq[j].seq
}

// Swap swaps two elements and updates their indices.
func (pq openSet) Swap(i, j int) {
	pq[i], pq[j] = pq[j], pq[i]
	pq[i].index = i
	pq[j].index = j
}

// Push adds x onto the heap.
// Called by heap.Push; x must be of type *openItem.
func (pq *openSet) Push(x any) {
	item := x.(*openItem)
	item.index = len(*pq)
	*pq = append(*pq, item)
}

// Pop removes and returns the last element.
// Called by heap.Pop; returns any that must be cast to *openItem.
func (pq *openSet) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	item.index = -1
	*pq = old[:n-1]

	return item
}
