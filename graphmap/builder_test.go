// SPDX-License-Identifier: MIT
// Package graphmap_test: edge-stream construction and bulk extension.

package graphmap_test

import (
	"iter"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/keygraph/graphmap"
)

// TestFromEdges verifies weighted construction and the size-hint
// pre-sizing of the edge index.
func TestFromEdges(t *testing.T) {
	edges := []graphmap.Edge[string, int]{
		{From: "a", To: "b", Weight: 1},
		{From: "b", To: "c", Weight: 2},
		{From: "a", To: "c", Weight: 3},
	}
	g := graphmap.FromEdges[string, int, graphmap.Directed](edges)

	assert.Equal(t, 3, g.NodeCount())
	assert.Equal(t, 3, g.EdgeCount())
	assert.Equal(t, 2, g.Weight("b", "c"))

	_, edgeCap := g.Capacity()
	assert.GreaterOrEqual(t, edgeCap, len(edges))
}

// TestFromPairs verifies that plain pairs receive the zero default
// weight.
func TestFromPairs(t *testing.T) {
	g := graphmap.FromPairs[int, int, graphmap.Undirected]([][2]int{{0, 1}, {1, 2}})

	require.Equal(t, 2, g.EdgeCount())
	w, ok := g.EdgeWeight(2, 1)
	require.True(t, ok)
	assert.Zero(t, w)
}

// TestFromEdgeSeq verifies stream construction without a size hint.
func TestFromEdgeSeq(t *testing.T) {
	seq := iter.Seq[graphmap.Edge[int, string]](func(yield func(graphmap.Edge[int, string]) bool) {
		for i := 0; i < 4; i++ {
			if !yield(graphmap.Edge[int, string]{From: i, To: i + 1, Weight: "w"}) {
				return
			}
		}
	})
	g := graphmap.FromEdgeSeq[int, string, graphmap.Directed](seq)

	assert.Equal(t, 5, g.NodeCount())
	assert.Equal(t, 4, g.EdgeCount())
	assert.Equal(t, "w", g.Weight(2, 3))
}

// TestExtend verifies bulk extension of an existing container, with
// duplicate pairs replacing weights rather than growing the structure.
func TestExtend(t *testing.T) {
	g := graphmap.NewUndirected[string, int]()
	g.AddEdge("a", "b", 1)

	g.Extend([]graphmap.Edge[string, int]{
		{From: "b", To: "a", Weight: 10}, // duplicate of (a, b)
		{From: "b", To: "c", Weight: 2},
	})

	assert.Equal(t, 3, g.NodeCount())
	assert.Equal(t, 2, g.EdgeCount())
	assert.Equal(t, 10, g.Weight("a", "b"))
}

// TestExtendPairs verifies the default-weight bulk form.
func TestExtendPairs(t *testing.T) {
	g := graphmap.NewDirected[int, int]()
	g.ExtendPairs([][2]int{{0, 1}, {0, 2}, {1, 2}})

	assert.Equal(t, 3, g.NodeCount())
	assert.Equal(t, 3, g.EdgeCount())
	assert.False(t, g.ContainsEdge(1, 0))
}
