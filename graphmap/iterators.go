// SPDX-License-Identifier: MIT
// Package graphmap: lazy iteration views over the container.
//
// Every view is a plain iter.Seq/iter.Seq2 closure: non-owning, finite,
// consumed once, and freely re-creatable from the container. Views read
// the live indices; mutating the graph while a view is being consumed
// is not supported (see the GraphMap concurrency contract).

package graphmap

import (
	"fmt"
	"iter"
)

// Nodes returns every node key in the adjacency index's insertion order.
func (g *GraphMap[N, E, Ty]) Nodes() iter.Seq[N] {
	return func(yield func(N) bool) {
		for p := g.nodes.Oldest(); p != nil; p = p.Next() {
			if !yield(p.Key) {
				return
			}
		}
	}
}

// Neighbors returns the nodes connected with from by an edge.
//
// For directed graphs only Outgoing entries are yielded (successors);
// for undirected graphs every incident entry is. A from that is not in
// the graph yields an empty sequence, not an error.
func (g *GraphMap[N, E, Ty]) Neighbors(from N) iter.Seq[N] {
	return g.NeighborsDirected(from, Outgoing)
}

// NeighborsDirected is Neighbors with a caller-chosen direction filter.
//
// For directed graphs, dir selects successors (Outgoing) or predecessors
// (Incoming). For undirected graphs the tag is meaningless and the view
// behaves exactly like Neighbors. A directed self-loop records a single
// Outgoing entry, so it is yielded for Outgoing only.
func (g *GraphMap[N, E, Ty]) NeighborsDirected(from N, dir Direction) iter.Seq[N] {
	return func(yield func(N) bool) {
		links, exists := g.nodes.Get(from)
		if !exists {
			return
		}
		var ty Ty
		for _, nb := range links {
			if ty.isDirected() && nb.dir != dir {
				continue
			}
			if !yield(nb.node) {
				return
			}
		}
	}
}

// Edges pairs each neighbor of from with the weight of the connecting
// edge, in the same order and under the same direction policy as
// Neighbors. A from that is not in the graph yields an empty sequence.
//
// An adjacency entry without an edge-index counterpart cannot occur in a
// consistent container; hitting one panics instead of silently skipping.
func (g *GraphMap[N, E, Ty]) Edges(from N) iter.Seq2[N, E] {
	return func(yield func(N, E) bool) {
		for to := range g.Neighbors(from) {
			w, exists := g.edges.Get(g.edgeKey(from, to))
			if !exists {
				panic(fmt.Sprintf(
					"graphmap: adjacency references edge (%v, %v) missing from the edge index",
					from, to,
				))
			}
			if !yield(to, w) {
				return
			}
		}
	}
}

// AllEdges returns every edge as a (From, To, Weight) triple in the edge
// index's insertion order, independent of the adjacency index.
func (g *GraphMap[N, E, Ty]) AllEdges() iter.Seq[Edge[N, E]] {
	return func(yield func(Edge[N, E]) bool) {
		for p := g.edges.Oldest(); p != nil; p = p.Next() {
			if !yield(Edge[N, E]{From: p.Key.a, To: p.Key.b, Weight: p.Value}) {
				return
			}
		}
	}
}

// NodeIdentifiers is the surface GraphMap exposes to generic graph
// algorithm consumers: produce every node identifier plus the node
// count. Traversals written against it (and the neighbor views) stay
// independent of the concrete container type.
type NodeIdentifiers[N comparable] interface {
	Nodes() iter.Seq[N]
	NodeCount() int
}

var _ NodeIdentifiers[int] = (*GraphMap[int, struct{}, Undirected])(nil)
