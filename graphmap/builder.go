// SPDX-License-Identifier: MIT
// Package graphmap: constructing and extending a GraphMap from edge
// streams. Node values are taken directly from the edges; absent nodes
// are inserted automatically, and slice forms pre-size the edge index
// from the slice length.

package graphmap

import (
	"cmp"
	"iter"
)

// FromEdges builds a GraphMap from a finite list of weighted edges by
// repeated AddEdge calls. The edge index is pre-sized from len(edges);
// an explicit WithCapacity among opts overrides that hint.
func FromEdges[N cmp.Ordered, E any, Ty EdgeType](edges []Edge[N, E], opts ...Option) *GraphMap[N, E, Ty] {
	g := New[N, E, Ty](append([]Option{WithCapacity(0, len(edges))}, opts...)...)
	g.Extend(edges)

	return g
}

// FromPairs builds a GraphMap from plain node pairs, assigning every
// edge the zero E as its default weight.
func FromPairs[N cmp.Ordered, E any, Ty EdgeType](pairs [][2]N, opts ...Option) *GraphMap[N, E, Ty] {
	g := New[N, E, Ty](append([]Option{WithCapacity(0, len(pairs))}, opts...)...)
	g.ExtendPairs(pairs)

	return g
}

// FromEdgeSeq builds a GraphMap from a finite edge sequence. Unlike the
// slice forms, a sequence carries no size hint, so the indices grow as
// the stream is consumed.
func FromEdgeSeq[N cmp.Ordered, E any, Ty EdgeType](edges iter.Seq[Edge[N, E]], opts ...Option) *GraphMap[N, E, Ty] {
	g := New[N, E, Ty](opts...)
	g.ExtendSeq(edges)

	return g
}

// Extend adds every edge in the list to the graph, inserting nodes as
// needed. It is the FromEdges contract applied to an existing
// container.
func (g *GraphMap[N, E, Ty]) Extend(edges []Edge[N, E]) {
	g.edgeCap = max(g.edgeCap, g.edges.Len()+len(edges))
	for _, e := range edges {
		g.AddEdge(e.From, e.To, e.Weight)
	}
}

// ExtendPairs adds every plain node pair as an edge with the zero E as
// its weight.
func (g *GraphMap[N, E, Ty]) ExtendPairs(pairs [][2]N) {
	g.edgeCap = max(g.edgeCap, g.edges.Len()+len(pairs))
	var def E
	for _, p := range pairs {
		g.AddEdge(p[0], p[1], def)
	}
}

// ExtendSeq adds every edge yielded by the sequence.
func (g *GraphMap[N, E, Ty]) ExtendSeq(edges iter.Seq[Edge[N, E]]) {
	for e := range edges {
		g.AddEdge(e.From, e.To, e.Weight)
	}
}
