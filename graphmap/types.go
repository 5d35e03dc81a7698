// SPDX-License-Identifier: MIT
// Package graphmap defines the GraphMap container, its edge-type tags,
// adjacency direction markers, and construction options.
//
// This file declares Direction, the Directed/Undirected tags with the
// EdgeType constraint, the Edge value type, and the Option set consumed
// by the constructors.
package graphmap

// Direction marks which side of an edge an adjacency entry records.
//
// Every edge (a, b) with a != b produces two adjacency entries: an
// Outgoing entry on a and an Incoming entry on b. A self-loop produces a
// single Outgoing entry. Undirected graphs store the tags for structural
// symmetry with the directed case but ignore them when answering queries.
type Direction uint8

const (
	// Outgoing marks an adjacency entry on the source endpoint of an edge.
	Outgoing Direction = iota

	// Incoming marks an adjacency entry on the target endpoint of an edge.
	Incoming
)

// opposite returns the tag recorded on the other endpoint of the same edge.
func (d Direction) opposite() Direction {
	if d == Outgoing {
		return Incoming
	}

	return Outgoing
}

// String returns "Outgoing" or "Incoming".
func (d Direction) String() string {
	if d == Outgoing {
		return "Outgoing"
	}

	return "Incoming"
}

// EdgeType is the compile-time edge-direction policy of a GraphMap.
// It is satisfied only by the zero-sized tags Directed and Undirected,
// so the directed/undirected dispatch costs nothing at runtime and the
// two policies cannot be mixed up at a call site.
type EdgeType interface {
	Directed | Undirected
	isDirected() bool
}

// Directed selects directed-edge semantics: an edge from a to b is
// distinct from an edge from b to a.
type Directed struct{}

func (Directed) isDirected() bool { return true }

// Undirected selects undirected-edge semantics: an edge between a and b
// is the same edge as one between b and a.
type Undirected struct{}

func (Undirected) isDirected() bool { return false }

// Edge is a (From, To, Weight) triple as yielded by the all-edges view
// and consumed by the edge-stream constructors.
//
// For undirected graphs, From/To reflect the canonical storage order of
// the pair (the lesser node first under the graph's total order).
type Edge[N comparable, E any] struct {
	// From is the source endpoint (canonical-first for undirected graphs).
	From N

	// To is the target endpoint.
	To N

	// Weight is the edge weight.
	Weight E
}

// neighbor is a single adjacency-index entry: the node on the other end
// of an edge plus the direction tag recorded on this endpoint.
type neighbor[N comparable] struct {
	node N
	dir  Direction
}

// edgeKey is the canonical node-pair identity indexing an edge weight.
// Directed graphs keep (a, b) as given; undirected graphs reorder so the
// lesser node comes first, collapsing (a, b) and (b, a) into one slot.
type edgeKey[N comparable] struct {
	a, b N
}

// Option configures a GraphMap before creation.
type Option func(*options)

type options struct {
	nodeCap int
	edgeCap int
}

// WithCapacity pre-sizes the node and edge indices for the expected
// number of nodes and edges. Purely an allocation hint; the container
// still grows past it.
func WithCapacity(nodes, edges int) Option {
	return func(o *options) {
		o.nodeCap = nodes
		o.edgeCap = edges
	}
}
