// Package core_test provides benchmarks for core.Graph operations.
package core_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/orienteer/core"
)

// BenchmarkAddEdge measures adding spokes to a hub vertex.
func BenchmarkAddEdge(b *testing.B) {
	g := core.NewGraph()
	_ = g.AddVertex("Root", 0)
	for i := 0; i < b.N; i++ {
		_ = g.AddVertex(fmt.Sprintf("N%d", i), 1)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = g.AddEdge("Root", fmt.Sprintf("N%d", i), int64(i%6+1))
	}
}

// BenchmarkConnectingEdge measures the O(1) connecting-edge lookup.
func BenchmarkConnectingEdge(b *testing.B) {
	g := core.NewGraph()
	_ = g.AddVertex("A", 0)
	_ = g.AddVertex("B", 1)
	_, _ = g.AddEdge("A", "B", 3)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = g.ConnectingEdge("B", "A")
	}
}
