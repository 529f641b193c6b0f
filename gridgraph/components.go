package gridgraph

// ConnectedComponents partitions the grid into regions reachable through
// edges accepted by filter (nil accepts all edges). filter is expected to be
// symmetric; an asymmetric filter yields reachability sets seeded from the
// smallest unseen index.
// Each component is a slice of row-major indices in discovery order;
// components are ordered by their smallest index.
//
// Convert an index back with CoordinateAt.
//
// Time:   O(R·C·4).
// Memory: O(R·C) for seen flags and output.
func (g Grid) ConnectedComponents(filter EdgeFilter) [][]int {
	total := g.Size()
	seen := make([]bool, total)
	var comps [][]int

	for i0 := 0; i0 < total; i0++ {
		if seen[i0] {
			continue
		}
		// BFS to collect component
		queue := []int{i0}
		seen[i0] = true
		var comp []int

		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			comp = append(comp, u)
			for _, v := range g.Neighbors(g.CoordinateAt(u), filter) {
				vi := g.Index(v)
				if !seen[vi] {
					seen[vi] = true
					queue = append(queue, vi)
				}
			}
		}
		comps = append(comps, comp)
	}

	return comps
}

// Connected reports whether b is reachable from a through edges accepted
// by filter. Out-of-bounds endpoints are never connected.
func (g Grid) Connected(a, b Coordinate, filter EdgeFilter) bool {
	if !g.InBounds(a) || !g.InBounds(b) {
		return false
	}
	if a == b {
		return true
	}
	seen := make([]bool, g.Size())
	seen[g.Index(a)] = true
	queue := []Coordinate{a}
	for qi := 0; qi < len(queue); qi++ {
		for _, n := range g.Neighbors(queue[qi], filter) {
			if n == b {
				return true
			}
			ni := g.Index(n)
			if !seen[ni] {
				seen[ni] = true
				queue = append(queue, n)
			}
		}
	}

	return false
}
