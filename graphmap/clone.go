// SPDX-License-Identifier: MIT
// Package graphmap: deep-copy support.

package graphmap

import "slices"

// Clone returns a deep copy of the graph: both indices are rebuilt in
// the same insertion order, adjacency lists are copied, and the result
// shares no mutable state with the receiver. Weights are copied by
// value; if E holds pointers, the pointed-to data is shared.
// Complexity: O(V + E).
func (g *GraphMap[N, E, Ty]) Clone() *GraphMap[N, E, Ty] {
	out := &GraphMap[N, E, Ty]{
		nodes:   newOrderedMap[N, []neighbor[N]](max(g.nodeCap, g.nodes.Len())),
		edges:   newOrderedMap[edgeKey[N], E](max(g.edgeCap, g.edges.Len())),
		compare: g.compare,
		nodeCap: g.nodeCap,
		edgeCap: g.edgeCap,
	}
	for p := g.nodes.Oldest(); p != nil; p = p.Next() {
		out.nodes.Set(p.Key, slices.Clone(p.Value))
	}
	for p := g.edges.Oldest(); p != nil; p = p.Next() {
		out.edges.Set(p.Key, p.Value)
	}

	return out
}
