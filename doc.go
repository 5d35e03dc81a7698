// Package keygraph hosts an in-memory graph container keyed directly by
// your own node values — no separately allocated integer handles, no
// lookup tables on the caller's side.
//
// 🚀 What is keygraph?
//
//	A small, focused library built around one data structure:
//		• graphmap/ — the GraphMap container: directed or undirected edges
//		  through one generic implementation, constant-time edge lookups,
//		  insertion-ordered iteration, self-loops allowed, parallel edges not
//		• export/   — one-shot conversion into index-based graph
//		  representations (including gonum's builders)
//
// ✨ Why choose keygraph?
//
//   - Value-keyed – the node value is the identity and the weight at once
//   - Deterministic – nodes and edges iterate in insertion order, always
//   - One code path – a compile-time edge-type tag selects directed or
//     undirected semantics without duplicating the container
//   - Interop – hand the whole graph to any index-based representation
//     through a two-method builder interface
//
// Quick ASCII example:
//
//	    A───B
//	    │   │
//	    C───D
//
//	four nodes keyed "A".."D", four edges, built with four AddEdge calls.
//
// Dive into the graphmap package docs for the container's full contract,
// and into export for the conversion side.
//
//	go get github.com/katalvlaran/keygraph
package keygraph
