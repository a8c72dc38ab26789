package search_test

import (
	"testing"

	"github.com/katalvlaran/lvsearch/internal/testgraph"
	"github.com/katalvlaran/lvsearch/search"
)

// benchGrid is shared by all benchmarks: an open 60×60 grid, corner to corner.
var benchGrid = testgraph.Grid(60, 60)

func BenchmarkBFS_Grid(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = search.BFS[string, string](benchGrid)
	}
}

func BenchmarkUCS_Grid(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = search.UCS[string, string](benchGrid)
	}
}

func BenchmarkAStar_NullHeuristic_Grid(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = search.AStar[string, string](benchGrid, nil)
	}
}

// BenchmarkDFS_Chain uses a chain; DFS on an open grid explores exponentially
// many simple paths before backtracking out of dead ends.
func BenchmarkDFS_Chain(b *testing.B) {
	g := testgraph.Chain(5000)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = search.DFS[string, string](g)
	}
}
