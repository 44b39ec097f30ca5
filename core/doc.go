// Package core provides a thread-safe in-memory Graph that serves as the
// population target for importers such as lvlath-dimacs/dimacs.
//
// The Graph G = (V,E) supports a mix of behaviors chosen at construction:
//
//   - Directed vs. undirected edges (WithDirected)
//   - Weighted vs. unweighted edges (WithWeighted), weights are float64
//   - Parallel edges / multi-graphs (WithMultiEdges)
//   - Self-loops (WithLoops)
//   - NewPseudograph enables both multi-edges and self-loops at once
//
// Storage:
//
//	vertices      map[id]*Vertex
//	edges         map[edgeID]*Edge
//	adjacencyList[from][to][edgeID] = struct{}{}
//
// Undirected edges are mirrored in adjacencyList[to][from]; self-loops are
// stored once. Edge IDs are generated atomically as "e1", "e2", … and
// Edges() enumerates them in generation order.
//
// Core Methods:
//
//	AddVertex(id string) error                                  // O(1)
//	HasVertex(id string) bool                                   // O(1)
//	AddEdge(from, to string, weight float64) (string, error)    // O(1)†
//	InsertEdge(e *Edge) error                                   // O(1)†
//	SetEdgeWeight(edgeID string, w float64) error               // O(1)
//	Edge(edgeID string) (*Edge, error)                          // O(1)
//	HasEdge(from, to string) bool                               // O(1)
//	EdgesBetween(from, to string) []*Edge                       // O(k log k)
//	Vertices() []string                                         // O(V log V)
//	Edges() []*Edge                                             // O(E log E)
//
// † amortized: atomic ID generation + nested-map insertion.
//
// Concurrency:
//
// muVert guards the vertex catalog, muEdgeAdj guards edges and adjacency.
// Lock order is always muVert -> muEdgeAdj. Every single call is safe for
// concurrent use; a sequence of calls (such as a whole import) is not atomic.
//
// Errors:
//
//	ErrEmptyVertexID       – zero-length vertex ID
//	ErrVertexNotFound      – missing vertex
//	ErrEdgeNotFound        – missing edge
//	ErrNilEdge             – InsertEdge(nil)
//	ErrBadWeight           – non-zero weight on unweighted graph
//	ErrLoopNotAllowed      – self-loop when loops disabled
//	ErrMultiEdgeNotAllowed – parallel edge when multi-edges disabled
package core
