// Package independentset defines the result value returned by independent-set
// algorithms over an imported graph, plus a checker against core.Graph.
//
// An independent set is a set of vertices no two of which are joined by an
// edge. Its weight is the sum of member weights in the weighted problem and
// the cardinality in the unweighted one. This package does not compute
// maximum independent sets; it only carries and validates results.
package independentset

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/katalvlaran/lvlath-dimacs/core"
)

// Sentinel errors for Check.
var (
	// ErrNotIndependent indicates two members of the set share an edge.
	ErrNotIndependent = errors.New("independentset: members are adjacent")

	// ErrGraphNil indicates Check was given a nil graph.
	ErrGraphNil = errors.New("independentset: graph is nil")
)

// IndependentSet is an immutable (weight, vertices) pair.
type IndependentSet[V comparable] struct {
	weight  float64
	members map[V]struct{}
}

// New copies vertices into a set with the given weight. Duplicates collapse.
func New[V comparable](vertices []V, weight float64) IndependentSet[V] {
	members := make(map[V]struct{}, len(vertices))
	for _, v := range vertices {
		members[v] = struct{}{}
	}

	return IndependentSet[V]{weight: weight, members: members}
}

// NewUnweighted builds a set whose weight is its cardinality.
func NewUnweighted[V comparable](vertices []V) IndependentSet[V] {
	s := New(vertices, 0)
	s.weight = float64(len(s.members))

	return s
}

// Weight returns the set weight.
func (s IndependentSet[V]) Weight() float64 { return s.weight }

// Len returns the number of members.
func (s IndependentSet[V]) Len() int { return len(s.members) }

// Contains reports membership.
func (s IndependentSet[V]) Contains(v V) bool {
	_, ok := s.members[v]
	return ok
}

// Vertices returns a copy of the member set.
func (s IndependentSet[V]) Vertices() map[V]struct{} {
	out := make(map[V]struct{}, len(s.members))
	for v := range s.members {
		out[v] = struct{}{}
	}

	return out
}

// String renders "IndependentSet(w): [a b c]" with members in sorted textual order.
func (s IndependentSet[V]) String() string {
	names := make([]string, 0, len(s.members))
	for v := range s.members {
		names = append(names, fmt.Sprint(v))
	}
	sort.Strings(names)

	return fmt.Sprintf("IndependentSet(%g): [%s]", s.weight, strings.Join(names, " "))
}

// Check verifies that every member of s is a vertex of g and that no edge
// of g joins two members. Self-loops on a member also violate independence.
// Complexity: O(k²) HasEdge probes for k members.
func Check(g *core.Graph, s IndependentSet[string]) error {
	if g == nil {
		return ErrGraphNil
	}
	ids := make([]string, 0, s.Len())
	for v := range s.members {
		if !g.HasVertex(v) {
			return fmt.Errorf("independentset: %q: %w", v, core.ErrVertexNotFound)
		}
		ids = append(ids, v)
	}
	sort.Strings(ids)

	for i, u := range ids {
		for _, v := range ids[i:] {
			if g.HasEdge(u, v) || g.HasEdge(v, u) {
				return fmt.Errorf("independentset: %q-%q: %w", u, v, ErrNotIndependent)
			}
		}
	}

	return nil
}
