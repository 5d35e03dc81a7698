// Package graphmap provides GraphMap, an in-memory graph container
// whose node values are the mapping keys.
//
// The container G = (V, E) keeps a combined adjacency-list and sparse
// edge-matrix representation in O(|V| + |E|) space:
//
//   - Directed vs. undirected through one generic implementation,
//     selected by the zero-sized tags Directed / Undirected
//   - Constant-time edge existence and weight lookup via a canonical
//     node-pair key (lesser-node-first for undirected graphs, so (a, b)
//     and (b, a) share one storage slot)
//   - No parallel edges — AddEdge on an existing pair replaces the
//     weight only; self-loops allowed, stored as a single entry
//   - Deterministic iteration — Nodes() and AllEdges() follow insertion
//     order, backed by insertion-ordered maps rather than plain hash maps
//   - Identity keys — the Ptr adapter turns any reference into a node
//     key compared and ordered by address
//
// Why use graphmap.GraphMap?
//
//   - The node value is the identity and the weight at once: no handle
//     bookkeeping on the caller's side, no lookup table to keep in sync.
//   - One type, two policies: the edge-type tag dispatches the directed
//     and undirected behavior at compile time, so query hot paths carry
//     no runtime branching on graph mode.
//   - Lazy views: Nodes, Neighbors, NeighborsDirected, Edges and
//     AllEdges are iter.Seq values — finite, cheap to create, consumed
//     with plain range loops.
//
// Construction:
//
//	g := graphmap.NewDirected[string, int]()
//	g.AddEdge("x", "y", -1)
//
//	un := graphmap.FromPairs[int, struct{}, graphmap.Undirected](
//		[][2]int{{0, 1}, {0, 2}, {1, 2}},
//	)
//
// Error model:
//
//   - Legitimate absence (missing node or edge on removal or lookup) is
//     an absent-value result, (zero, false) or a nil pointer, never an
//     error value.
//   - Indexing a nonexistent edge through Weight panics: the caller
//     asserted presence, as with direct slice indexing.
//   - A divergence between the adjacency and edge indices is a defect in
//     the container itself and panics immediately in every build.
//
// GraphMap is not safe for concurrent use; see the type documentation
// for the exact sharing contract.
package graphmap
