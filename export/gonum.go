// SPDX-License-Identifier: MIT
// Package export: bridge to gonum's graph builders.

package export

import (
	"fmt"

	gograph "gonum.org/v1/gonum/graph"

	"github.com/katalvlaran/keygraph/graphmap"
)

// IntoGonum exports src into any gonum weighted builder (for example
// graph/simple's WeightedDirectedGraph or WeightedUndirectedGraph) and
// returns the mapping from node value to gonum node ID.
//
// weight converts each edge weight to gonum's float64. Gonum nodes are
// bare IDs, so node values are not carried into dst; the returned
// mapping preserves the association for the caller.
//
// gonum's simple graphs reject self edges, so a self-loop in src fails
// with ErrSelfLoop before anything is handed to dst's edge adder.
// Complexity: O(V + E).
func IntoGonum[N comparable, E any, Ty graphmap.EdgeType](
	src *graphmap.GraphMap[N, E, Ty],
	dst gograph.WeightedBuilder,
	weight func(E) float64,
) (map[N]int64, error) {
	if src == nil {
		return nil, ErrNilGraph
	}
	if dst == nil {
		return nil, ErrNilTarget
	}
	if weight == nil {
		return nil, ErrNilWeightFunc
	}

	for e := range src.AllEdges() {
		if e.From == e.To {
			return nil, fmt.Errorf("export: self-loop on node %v: %w", e.From, ErrSelfLoop)
		}
	}

	nodes := make(map[N]gograph.Node, src.NodeCount())
	index := make(map[N]int64, src.NodeCount())
	for n := range src.Nodes() {
		node := dst.NewNode()
		dst.AddNode(node)
		nodes[n] = node
		index[n] = node.ID()
	}

	for e := range src.AllEdges() {
		dst.SetWeightedEdge(dst.NewWeightedEdge(nodes[e.From], nodes[e.To], weight(e.Weight)))
	}

	return index, nil
}
