// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Read-only capability getters.
// Policy:
//   - No algorithms or hidden state here.
//   - Flags are immutable after construction; getters take muVert.RLock for a consistent read.

package core

// Weighted reports whether non-zero weights are permitted.
// If false, AddEdge/SetEdgeWeight reject non-zero weights with ErrBadWeight.
// Complexity: O(1).
func (g *Graph) Weighted() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.weighted
}

// Directed reports the default orientation applied to newly created edges.
// Complexity: O(1).
func (g *Graph) Directed() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.directed
}

// Looped reports whether self-loops (from==to) are permitted.
// If false, AddEdge(v,v,...) returns ErrLoopNotAllowed.
// Complexity: O(1).
func (g *Graph) Looped() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.allowLoops
}

// Multigraph reports whether parallel edges between the same endpoints are permitted.
// If false, a second AddEdge(from,to,...) returns ErrMultiEdgeNotAllowed.
// Complexity: O(1).
func (g *Graph) Multigraph() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.allowMulti
}
