package dimacs

import (
	"context"
	"io"

	"github.com/katalvlaran/lvlath-dimacs/core"
)

// CoreTarget adapts *core.Graph to Target. Vertices are the DIMACS labels
// themselves and edges are *core.Edge values inserted by pointer, so the
// edge handle passed to SetEdgeWeight is the stored edge.
type CoreTarget struct {
	g *core.Graph
}

// NewCoreTarget wraps g.
func NewCoreTarget(g *core.Graph) *CoreTarget {
	return &CoreTarget{g: g}
}

// Graph returns the wrapped graph.
func (t *CoreTarget) Graph() *core.Graph { return t.g }

// Capabilities reports the flags the graph was constructed with.
func (t *CoreTarget) Capabilities() Capabilities {
	return Capabilities{
		Directed:   t.g.Directed(),
		Weighted:   t.g.Weighted(),
		MultiEdges: t.g.Multigraph(),
		Loops:      t.g.Looped(),
	}
}

// AddVertex adds the vertex ID.
func (t *CoreTarget) AddVertex(id string) error {
	return t.g.AddVertex(id)
}

// AddEdge inserts e between from and to.
func (t *CoreTarget) AddEdge(from, to string, e *core.Edge) error {
	if e == nil {
		return core.ErrNilEdge
	}
	e.From, e.To = from, to

	return t.g.InsertEdge(e)
}

// SetEdgeWeight sets the weight of an inserted edge.
func (t *CoreTarget) SetEdgeWeight(e *core.Edge, weight float64) error {
	if e == nil {
		return core.ErrNilEdge
	}
	return t.g.SetEdgeWeight(e.ID, weight)
}

// CoreVertexProvider uses the DIMACS label as the core vertex ID.
func CoreVertexProvider() VertexProviderFunc[string] {
	return func(label string, _ map[string]string) (string, error) {
		return label, nil
	}
}

// CoreEdgeProvider builds a fresh, not yet inserted *core.Edge.
func CoreEdgeProvider() EdgeProviderFunc[string, *core.Edge] {
	return func(from, to string, _ string, _ map[string]string) (*core.Edge, error) {
		return &core.Edge{From: from, To: to}, nil
	}
}

// ImportCore imports r into g using label IDs. The mode comes from opts
// (Unweighted by default); Weighted requires g to be built WithWeighted.
func ImportCore(ctx context.Context, g *core.Graph, r io.Reader, opts ...Option) (*Report, error) {
	if g == nil {
		return &Report{}, newError(ErrTargetRejected, 0, "", "target graph is nil")
	}
	im := NewImporter[string, *core.Edge](CoreVertexProvider(), CoreEdgeProvider(), opts...)

	return im.Import(ctx, NewCoreTarget(g), r)
}
