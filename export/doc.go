// Package export provides one-shot conversion from a value-keyed
// GraphMap into index-based graph representations.
//
// The conversion target is abstracted behind the two-method Graph
// interface (add a node carrying a weight, receiving an opaque index;
// add an edge between two indices carrying a weight), so any
// index-assigned structure can consume a GraphMap without this package
// knowing its shape. Into drives the generic case; IntoGonum adapts the
// same walk to gonum's graph.WeightedBuilder for interop with the gonum
// algorithm ecosystem.
//
// Conversions preserve node insertion order, edge insertion order, and
// all weights. They never mutate the source.
package export
