// SPDX-License-Identifier: MIT
// Package graphmap: GraphMap container and its mutation/query operations.
//
// Two insertion-ordered indices back the container and are kept mutually
// consistent by every public operation:
//
//   - the adjacency index maps each node key to its (neighbor, Direction)
//     entries, one per incident edge (a single entry for a self-loop);
//   - the edge index maps the canonical node pair to the edge weight.
//
// Canonicalization is the load-bearing decision: undirected graphs store
// the pair lesser-node-first so (a, b) and (b, a) share one slot, which
// enforces "no parallel edges" at the data-model level and lets one code
// path serve both edge-type policies.

package graphmap

import (
	"cmp"
	"fmt"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// GraphMap is an in-memory graph container whose node values are the
// mapping keys: N doubles as the node identity and the node weight, E is
// the edge weight, and the zero-sized tag Ty fixes directed or undirected
// semantics at compile time.
//
// GraphMap does not allow parallel edges; self-loops are allowed. Edge
// existence and weight lookup are O(1). Nodes and edges iterate in
// insertion order.
//
// A GraphMap is not safe for concurrent use. One writer or any number of
// readers may access it at a time; mutating it while a view from the
// iteration layer is being consumed is not supported. Callers that share
// a GraphMap across goroutines must provide their own synchronization.
type GraphMap[N comparable, E any, Ty EdgeType] struct {
	// nodes is the adjacency index: node key → incident-edge entries,
	// insertion-ordered over keys.
	nodes *orderedmap.OrderedMap[N, []neighbor[N]]

	// edges is the edge index: canonical pair → weight, insertion-ordered
	// over pairs.
	edges *orderedmap.OrderedMap[edgeKey[N], E]

	// compare is the total order over N used solely to canonicalize
	// undirected edge keys.
	compare func(a, b N) int

	// nodeCap/edgeCap remember the largest capacity ever requested, for
	// Capacity reporting.
	nodeCap int
	edgeCap int
}

// New creates an empty GraphMap for a naturally ordered key type, using
// cmp.Compare as the canonicalization order.
// Complexity: O(1).
func New[N cmp.Ordered, E any, Ty EdgeType](opts ...Option) *GraphMap[N, E, Ty] {
	return NewWith[N, E, Ty](cmp.Compare[N], opts...)
}

// NewWith creates an empty GraphMap with a caller-supplied total order
// over the key type. Required for key types without a natural order,
// such as Ptr keys (pass ComparePtr).
//
// Panics if compare is nil: the order is a structural precondition, not
// a runtime condition to recover from.
func NewWith[N comparable, E any, Ty EdgeType](compare func(a, b N) int, opts ...Option) *GraphMap[N, E, Ty] {
	if compare == nil {
		panic("graphmap: NewWith requires a non-nil compare function")
	}
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	return &GraphMap[N, E, Ty]{
		nodes:   newOrderedMap[N, []neighbor[N]](o.nodeCap),
		edges:   newOrderedMap[edgeKey[N], E](o.edgeCap),
		compare: compare,
		nodeCap: o.nodeCap,
		edgeCap: o.edgeCap,
	}
}

// NewDirected creates an empty directed GraphMap over a naturally
// ordered key type. Convenience for New[N, E, Directed].
func NewDirected[N cmp.Ordered, E any](opts ...Option) *GraphMap[N, E, Directed] {
	return New[N, E, Directed](opts...)
}

// NewUndirected creates an empty undirected GraphMap over a naturally
// ordered key type. Convenience for New[N, E, Undirected].
func NewUndirected[N cmp.Ordered, E any](opts ...Option) *GraphMap[N, E, Undirected] {
	return New[N, E, Undirected](opts...)
}

// IsDirected reports whether the graph has directed edges.
func (g *GraphMap[N, E, Ty]) IsDirected() bool {
	var ty Ty

	return ty.isDirected()
}

// edgeKey maps the node pair (a, b) to its canonical edge identity:
// kept as given for directed graphs, lesser-node-first for undirected.
func (g *GraphMap[N, E, Ty]) edgeKey(a, b N) edgeKey[N] {
	var ty Ty
	if ty.isDirected() || g.compare(a, b) <= 0 {
		return edgeKey[N]{a: a, b: b}
	}

	return edgeKey[N]{a: b, b: a}
}

// AddNode inserts node n with an empty adjacency list if absent and
// returns n. Idempotent: re-adding an existing node is a no-op and never
// an error.
// Complexity: O(1) amortized.
func (g *GraphMap[N, E, Ty]) AddNode(n N) N {
	if _, exists := g.nodes.Get(n); !exists {
		g.nodes.Set(n, nil)
	}

	return n
}

// ContainsNode reports whether node n is in the graph.
// Complexity: O(1).
func (g *GraphMap[N, E, Ty]) ContainsNode(n N) bool {
	_, exists := g.nodes.Get(n)

	return exists
}

// RemoveNode deletes node n, every edge incident to it, and the matching
// adjacency entry on each neighbor. Neighbors themselves stay in the
// graph even if n was their only connection. Returns false if n was not
// present.
// Complexity: O(deg(n) · d), where d bounds the neighbors' degrees.
func (g *GraphMap[N, E, Ty]) RemoveNode(n N) bool {
	links, exists := g.nodes.Delete(n)
	if !exists {
		return false
	}
	for _, nb := range links {
		// The matching entry on the other endpoint carries the opposite
		// tag, and the stored tag tells which way the edge is oriented.
		g.removeSingleEdge(nb.node, n, nb.dir.opposite())
		if nb.dir == Outgoing {
			g.edges.Delete(g.edgeKey(n, nb.node))
		} else {
			g.edges.Delete(g.edgeKey(nb.node, n))
		}
	}

	return true
}

// AddEdge connects a and b with the given weight, inserting either node
// if absent. If the edge already exists, only the weight is replaced (no
// structural change) and the previous weight is returned with
// replaced == true. Otherwise the zero E is returned with false.
//
// For undirected graphs AddEdge(a, b, w) and AddEdge(b, a, w) address
// the same edge. Self-loops (a == b) are allowed and record a single
// adjacency entry.
// Complexity: O(1) amortized.
func (g *GraphMap[N, E, Ty]) AddEdge(a, b N, weight E) (old E, replaced bool) {
	if prev, exists := g.edges.Set(g.edgeKey(a, b), weight); exists {
		return prev, true
	}

	// New edge: grow the adjacency lists. This is the only code path
	// that appends adjacency entries, so every entry has an edge-index
	// counterpart by construction.
	g.AddNode(a)
	g.AddNode(b)
	pa := g.nodes.GetPair(a)
	pa.Value = append(pa.Value, neighbor[N]{node: b, dir: Outgoing})
	if a != b {
		pb := g.nodes.GetPair(b)
		pb.Value = append(pb.Value, neighbor[N]{node: a, dir: Incoming})
	}
	var zero E

	return zero, false
}

// RemoveEdge deletes the edge between a and b and returns its weight.
// Returns the zero E and false if the edge did not exist; node entries
// are never removed by this operation.
//
// The two endpoint removals and the edge-index removal must agree on
// whether the edge existed; a disagreement means the indices have
// diverged, which is a container defect, and RemoveEdge panics rather
// than continue on corrupted state.
// Complexity: O(deg(a) + deg(b)).
func (g *GraphMap[N, E, Ty]) RemoveEdge(a, b N) (E, bool) {
	exist1 := g.removeSingleEdge(a, b, Outgoing)
	exist2 := exist1
	if a != b {
		exist2 = g.removeSingleEdge(b, a, Incoming)
	}
	weight, existed := g.edges.Delete(g.edgeKey(a, b))
	if exist1 != exist2 || exist1 != existed {
		panic(fmt.Sprintf(
			"graphmap: adjacency and edge indices disagree removing edge (%v, %v): %t/%t/%t",
			a, b, exist1, exist2, existed,
		))
	}

	return weight, existed
}

// removeSingleEdge swap-removes the entry for b from a's adjacency list.
// Directed graphs match both the node and the direction tag; undirected
// graphs match the node alone. Reports whether an entry was removed.
func (g *GraphMap[N, E, Ty]) removeSingleEdge(a, b N, dir Direction) bool {
	p := g.nodes.GetPair(a)
	if p == nil {
		return false
	}
	var ty Ty
	for i, nb := range p.Value {
		if nb.node != b {
			continue
		}
		if ty.isDirected() && nb.dir != dir {
			continue
		}
		// Swap-removal: adjacency lists are unordered sets in this model.
		last := len(p.Value) - 1
		p.Value[i] = p.Value[last]
		p.Value = p.Value[:last]

		return true
	}

	return false
}

// ContainsEdge reports whether the edge between a and b exists.
// Complexity: O(1).
func (g *GraphMap[N, E, Ty]) ContainsEdge(a, b N) bool {
	_, exists := g.edges.Get(g.edgeKey(a, b))

	return exists
}

// EdgeWeight returns the weight of the edge between a and b, or the zero
// E and false if the edge is absent.
// Complexity: O(1).
func (g *GraphMap[N, E, Ty]) EdgeWeight(a, b N) (E, bool) {
	return g.edges.Get(g.edgeKey(a, b))
}

// EdgeWeightRef returns a pointer to the stored weight of the edge
// between a and b for in-place mutation, or nil if the edge is absent.
// The pointer stays valid until the edge is removed or the graph is
// cleared.
// Complexity: O(1).
func (g *GraphMap[N, E, Ty]) EdgeWeightRef(a, b N) *E {
	p := g.edges.GetPair(g.edgeKey(a, b))
	if p == nil {
		return nil
	}

	return &p.Value
}

// Weight returns the weight of the edge between a and b, panicking if
// the edge is absent. It is the indexing-operator analog of EdgeWeight:
// a "trust the caller checked first" convenience mirroring direct array
// indexing, not a separate lookup path.
func (g *GraphMap[N, E, Ty]) Weight(a, b N) E {
	w, exists := g.EdgeWeight(a, b)
	if !exists {
		panic(fmt.Sprintf("graphmap: no edge between %v and %v", a, b))
	}

	return w
}

// Clear removes all nodes and edges. Capacity hints survive.
func (g *GraphMap[N, E, Ty]) Clear() {
	g.nodes = newOrderedMap[N, []neighbor[N]](g.nodeCap)
	g.edges = newOrderedMap[edgeKey[N], E](g.edgeCap)
}

// NodeCount returns the number of nodes. O(1).
func (g *GraphMap[N, E, Ty]) NodeCount() int {
	return g.nodes.Len()
}

// EdgeCount returns the number of edges. O(1).
func (g *GraphMap[N, E, Ty]) EdgeCount() int {
	return g.edges.Len()
}

// Capacity reports the node and edge capacity of the graph: for each
// index, the larger of the requested capacity and the current size.
func (g *GraphMap[N, E, Ty]) Capacity() (nodes, edges int) {
	return max(g.nodeCap, g.nodes.Len()), max(g.edgeCap, g.edges.Len())
}

// Internal helper methods:
////////////////////

// newOrderedMap builds a wk8 ordered map, forwarding a positive capacity
// hint.
func newOrderedMap[K comparable, V any](capacity int) *orderedmap.OrderedMap[K, V] {
	if capacity > 0 {
		return orderedmap.New[K, V](capacity)
	}

	return orderedmap.New[K, V]()
}
