// Package core_test verifies thread-safety of core.Graph under concurrent operations.
package core_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/orienteer/core"
)

// TestConcurrentAddEdge ensures that concurrent AddEdge calls from a shared
// hub are safe and all neighbors appear.
func TestConcurrentAddEdge(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex("X", 0))
	const num = 200
	for i := 0; i < num; i++ {
		require.NoError(t, g.AddVertex(fmt.Sprintf("V%d", i), 1))
	}

	var wg sync.WaitGroup
	wg.Add(num)
	for i := 0; i < num; i++ {
		go func(id int) {
			defer wg.Done()
			_, err := g.AddEdge("X", fmt.Sprintf("V%d", id), int64(id+1))
			require.NoError(t, err)
		}(i)
	}
	wg.Wait()

	nbs, err := g.Neighbors("X")
	require.NoError(t, err)
	require.Len(t, nbs, num)
}

// TestConcurrentReadersAndMarking mixes MarkUsed with reads and clones.
func TestConcurrentReadersAndMarking(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex("A", 0))
	for i := 0; i < 50; i++ {
		id := fmt.Sprintf("N%d", i)
		require.NoError(t, g.AddVertex(id, 1))
		_, err := g.AddEdge("A", id, 1)
		require.NoError(t, err)
	}

	const workers = 40
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func(i int) {
			defer wg.Done()
			switch i % 3 {
			case 0:
				g.MarkUsed([]string{fmt.Sprintf("e%d", i+1)})
			case 1:
				_ = g.Clone()
			default:
				nbs, err := g.NeighborIDs("A")
				require.NoError(t, err)
				require.Len(t, nbs, 50)
			}
		}(i)
	}
	wg.Wait()
	require.LessOrEqual(t, len(g.UsedEdges()), 1)
}

// TestEdgesSnapshotWhileMarking reads Used flags from Edges and Neighbors
// while another goroutine re-marks the best path.
func TestEdgesSnapshotWhileMarking(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex("A", 0))
	for i := 0; i < 20; i++ {
		id := fmt.Sprintf("N%d", i)
		require.NoError(t, g.AddVertex(id, 1))
		_, err := g.AddEdge("A", id, 1)
		require.NoError(t, err)
	}

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < 200; i++ {
			g.MarkUsed([]string{fmt.Sprintf("e%d", i%20+1)})
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 200; i++ {
			used := 0
			for _, e := range g.Edges() {
				if e.Used {
					used++
				}
			}
			assert.LessOrEqual(t, used, 1)
			nbs, err := g.Neighbors("A")
			assert.NoError(t, err)
			assert.Len(t, nbs, 20)
		}
	}()
	wg.Wait()
}

func TestEdges_ReturnsCopies(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex("A", 0))
	require.NoError(t, g.AddVertex("B", 1))
	eid, err := g.AddEdge("A", "B", 3)
	require.NoError(t, err)

	g.Edges()[0].Used = true
	e, err := g.GetEdge(eid)
	require.NoError(t, err)
	e.Weight = 99
	c, err := g.ConnectingEdge("B", "A")
	require.NoError(t, err)

	require.Empty(t, g.UsedEdges())
	require.Equal(t, int64(3), c.Weight)
}
