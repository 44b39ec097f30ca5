package dimacs

// VertexProvider builds a caller-defined vertex value from a DIMACS label.
// attrs is always non-nil and empty for this dialect.
type VertexProvider[V any] interface {
	BuildVertex(label string, attrs map[string]string) (V, error)
}

// EdgeProvider builds a caller-defined edge value between two built vertices.
// label is empty and attrs is non-nil and empty for this dialect.
type EdgeProvider[V, E any] interface {
	BuildEdge(from, to V, label string, attrs map[string]string) (E, error)
}

// VertexProviderFunc adapts a function to VertexProvider.
type VertexProviderFunc[V any] func(label string, attrs map[string]string) (V, error)

// BuildVertex calls f.
func (f VertexProviderFunc[V]) BuildVertex(label string, attrs map[string]string) (V, error) {
	return f(label, attrs)
}

// EdgeProviderFunc adapts a function to EdgeProvider.
type EdgeProviderFunc[V, E any] func(from, to V, label string, attrs map[string]string) (E, error)

// BuildEdge calls f.
func (f EdgeProviderFunc[V, E]) BuildEdge(from, to V, label string, attrs map[string]string) (E, error) {
	return f(from, to, label, attrs)
}

// Target is the mutable graph an Importer populates.
//
// AddEdge receives the value built by the EdgeProvider; that same value is
// the handle later passed to SetEdgeWeight. An error from any method aborts
// the import with ErrTargetRejected.
type Target[V, E any] interface {
	Capabilities() Capabilities
	AddVertex(v V) error
	AddEdge(from, to V, e E) error
	SetEdgeWeight(e E, weight float64) error
}
