package search

// ReconstructPath walks parent links from end back to the coordinate that
// has no parent, then reverses the collected sequence into start→end order.
//
// When end has no parent the result is the single-element slice [end]; that
// is also what a search whose start equals its end would produce, so callers
// must check Result.Reached rather than the path length.
//
// Complexity: O(L) for a path of L coordinates.
func ReconstructPath(parent map[Coordinate]Coordinate, end Coordinate) []Coordinate {
	path := []Coordinate{}
	seen := make(map[Coordinate]bool, len(parent))
	for cur := end; ; {
		path = append(path, cur)
		seen[cur] = true
		prev, ok := parent[cur]
		if !ok || seen[prev] {
			break
		}
		cur = prev
	}
	// reverse to get start → end
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
