// SPDX-License-Identifier: MIT
// Package export converts a GraphMap into index-based graph
// representations.
package export

import (
	"errors"

	"github.com/katalvlaran/keygraph/graphmap"
)

// Sentinel errors for export operations.
var (
	// ErrNilGraph indicates a nil source GraphMap.
	ErrNilGraph = errors.New("export: nil source graph")

	// ErrNilTarget indicates a nil target builder.
	ErrNilTarget = errors.New("export: nil target builder")

	// ErrNilWeightFunc indicates a nil edge-weight conversion function.
	ErrNilWeightFunc = errors.New("export: nil weight function")

	// ErrSelfLoop indicates the target representation rejects self-loops.
	ErrSelfLoop = errors.New("export: target rejects self-loops")
)

// Graph is the index-based target of a conversion: a representation
// that assigns its own opaque indices to nodes. It is the only outbound
// interface the conversion relies on; "create with capacity" belongs to
// the target's own constructor, informed by the source's NodeCount and
// EdgeCount.
type Graph[N comparable, E any] interface {
	// AddNode inserts a node carrying weight and returns its index.
	AddNode(weight N) int64

	// AddEdge connects two previously returned indices with weight.
	AddEdge(from, to int64, weight E)
}

// Into exports src into dst and returns the mapping from node value to
// assigned index.
//
// The conversion is two-phase: first every node is added in the source's
// insertion order, recording its assigned index; then every edge is
// added in the edge index's insertion order, with endpoints resolved
// through the recorded mapping. Node and edge weights are carried over
// verbatim. The only information lost is direct value-keyed lookup,
// which the returned mapping lets the caller reconstruct.
//
// Into does not mutate src; the source can keep serving queries (or be
// discarded) afterwards.
// Complexity: O(V + E).
func Into[N comparable, E any, Ty graphmap.EdgeType](src *graphmap.GraphMap[N, E, Ty], dst Graph[N, E]) (map[N]int64, error) {
	if src == nil {
		return nil, ErrNilGraph
	}
	if dst == nil {
		return nil, ErrNilTarget
	}

	// Phase 1: nodes, preserving insertion order.
	index := make(map[N]int64, src.NodeCount())
	for n := range src.Nodes() {
		index[n] = dst.AddNode(n)
	}

	// Phase 2: edges, resolved through the fresh mapping.
	for e := range src.AllEdges() {
		dst.AddEdge(index[e.From], index[e.To], e.Weight)
	}

	return index, nil
}
