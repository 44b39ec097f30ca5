// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/InsertEdge/SetEdgeWeight/Edge/HasEdge/
//       EdgesBetween/Edges/EdgeCount, plus nextEdgeID().
// Determinism:
//   - Edges() and EdgesBetween() return edges in insertion (ID sequence) order.
//   - nextEdgeID() is monotonic and stable ("e" + decimal).
// Concurrency:
//   - Mutations under muEdgeAdj write lock; queries under muEdgeAdj read lock.

package core

import (
	"errors"
	"sort"
	"strconv"
	"sync/atomic"
)

// ErrEdgeInserted indicates InsertEdge received an edge that already carries an ID.
var ErrEdgeInserted = errors.New("core: edge already inserted")

// edgeIDPrefix is the textual prefix for edge identifiers ("e1", "e2", …).
const edgeIDPrefix = 'e'

// AddEdge creates a new edge from→to with the given weight and returns its ID.
// Endpoints are added on demand.
//
// Returns ErrEmptyVertexID, ErrBadWeight, ErrLoopNotAllowed, ErrMultiEdgeNotAllowed.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, weight float64) (string, error) {
	e := &Edge{From: from, To: to, Weight: weight}
	if err := g.InsertEdge(e); err != nil {
		return "", err
	}

	return e.ID, nil
}

// InsertEdge stores a caller-built edge value. The graph keeps the pointer,
// assigns e.ID and overwrites e.Directed with the graph default.
//
// Steps:
//  1. Validate e, IDs, weight, loops.
//  2. Ensure endpoints via AddVertex.
//  3. Lock muEdgeAdj, check multi-edge constraint.
//  4. Generate ID, store, link adjacency (mirror when undirected and not a loop).
//
// Complexity: O(1) amortized.
func (g *Graph) InsertEdge(e *Edge) error {
	if e == nil {
		return ErrNilEdge
	}
	if e.ID != "" {
		return ErrEdgeInserted
	}
	if e.From == "" || e.To == "" {
		return ErrEmptyVertexID
	}
	if !g.weighted && e.Weight != 0 {
		return ErrBadWeight
	}
	if e.From == e.To && !g.allowLoops {
		return ErrLoopNotAllowed
	}

	if err := g.AddVertex(e.From); err != nil {
		return err
	}
	if err := g.AddVertex(e.To); err != nil {
		return err
	}

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	if !g.allowMulti && len(g.adjacencyList[e.From][e.To]) > 0 {
		return ErrMultiEdgeNotAllowed
	}

	e.ID = nextEdgeID(g)
	e.Directed = g.directed
	g.edges[e.ID] = e
	g.link(e.From, e.To, e.ID)
	if !e.Directed && e.From != e.To {
		g.link(e.To, e.From, e.ID)
	}

	return nil
}

// SetEdgeWeight replaces the weight of an existing edge.
// Returns ErrEdgeNotFound or ErrBadWeight (non-zero weight on an unweighted graph).
// Complexity: O(1).
func (g *Graph) SetEdgeWeight(edgeID string, w float64) error {
	if !g.Weighted() && w != 0 {
		return ErrBadWeight
	}
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()
	e, ok := g.edges[edgeID]
	if !ok {
		return ErrEdgeNotFound
	}
	e.Weight = w

	return nil
}

// Edge returns the edge with the given ID or ErrEdgeNotFound.
// The returned *Edge is shared with the graph and must be treated as read-only.
// Complexity: O(1).
func (g *Graph) Edge(edgeID string) (*Edge, error) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	e, ok := g.edges[edgeID]
	if !ok {
		return nil, ErrEdgeNotFound
	}

	return e, nil
}

// HasEdge reports whether at least one edge from→to exists.
// Undirected edges are mirrored, so HasEdge works both ways for them.
// Complexity: O(1).
func (g *Graph) HasEdge(from, to string) bool {
	if from == "" || to == "" {
		return false
	}
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.adjacencyList[from][to]) > 0
}

// EdgesBetween returns every edge from→to (parallel edges included),
// ordered by ID sequence. For undirected edges the reverse pair matches too.
// Complexity: O(k log k) where k is the number of parallel edges.
func (g *Graph) EdgesBetween(from, to string) []*Edge {
	g.muEdgeAdj.RLock()
	bucket := g.adjacencyList[from][to]
	out := make([]*Edge, 0, len(bucket))
	for eid := range bucket {
		out = append(out, g.edges[eid])
	}
	g.muEdgeAdj.RUnlock()
	sortEdges(out)

	return out
}

// Edges returns all edges ordered by ID sequence (e1, e2, …, e10, …).
// Complexity: O(E log E).
func (g *Graph) Edges() []*Edge {
	g.muEdgeAdj.RLock()
	out := make([]*Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, e)
	}
	g.muEdgeAdj.RUnlock()
	sortEdges(out)

	return out
}

// EdgeCount returns the total number of edges.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.edges)
}

// link registers eid in adjacencyList[from][to]. Caller holds muEdgeAdj.
func (g *Graph) link(from, to, eid string) {
	inner, ok := g.adjacencyList[from]
	if !ok {
		inner = make(map[string]map[string]struct{})
		g.adjacencyList[from] = inner
	}
	bucket, ok := inner[to]
	if !ok {
		bucket = make(map[string]struct{})
		inner[to] = bucket
	}
	bucket[eid] = struct{}{}
}

// sortEdges orders edges by numeric ID: shorter IDs first, then lexicographic,
// which is numeric order for "e" + decimal.
func sortEdges(edges []*Edge) {
	sort.Slice(edges, func(i, j int) bool {
		a, b := edges[i].ID, edges[j].ID
		if len(a) != len(b) {
			return len(a) < len(b)
		}
		return a < b
	})
}

// nextEdgeID returns a new unique textual edge ID ("e" + decimal).
// Safe for concurrent callers.
func nextEdgeID(g *Graph) string {
	n := atomic.AddUint64(&g.nextEdgeID, 1)
	buf := make([]byte, 0, 1+20) // "e" + up to 20 digits for uint64
	buf = append(buf, edgeIDPrefix)
	buf = strconv.AppendUint(buf, n, 10)

	return string(buf)
}
