package gridgraph_test

import (
	"testing"

	"github.com/katalvlaran/gridsearch/gridgraph"
)

// BenchmarkConnectedComponents measures ConnectedComponents on an open
// 1000×1000 grid.
// Complexity: O(R×C×4)
func BenchmarkConnectedComponents(b *testing.B) {
	g, err := gridgraph.NewGrid(1000, 1000)
	if err != nil {
		b.Fatalf("setup NewGrid failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.ConnectedComponents(nil)
	}
}

// BenchmarkNeighbors measures neighbor enumeration for an interior cell.
func BenchmarkNeighbors(b *testing.B) {
	g := gridgraph.Default()
	c := gridgraph.At(10, 10)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.Neighbors(c, nil)
	}
}
