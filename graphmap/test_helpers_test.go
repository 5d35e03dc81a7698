// SPDX-License-Identifier: MIT
// Package graphmap_test: shared helpers for collecting lazy views into
// slices the assertions can compare.

package graphmap_test

import "iter"

// collect drains a node view into a slice, preserving yield order.
func collect[N comparable](seq iter.Seq[N]) []N {
	var out []N
	for n := range seq {
		out = append(out, n)
	}

	return out
}

// collectPairs drains an edge view into parallel (node, weight) slices,
// preserving yield order.
func collectPairs[N comparable, E any](seq iter.Seq2[N, E]) ([]N, []E) {
	var ns []N
	var ws []E
	for n, w := range seq {
		ns = append(ns, n)
		ws = append(ws, w)
	}

	return ns, ws
}
