package core_test

import (
	"fmt"

	"github.com/katalvlaran/lvlath-dimacs/core"
)

// ExampleNewPseudograph shows parallel edges and a self-loop living side by side.
func ExampleNewPseudograph() {
	g := core.NewPseudograph(false, core.WithWeighted())

	_, _ = g.AddEdge("1", "2", 1)
	_, _ = g.AddEdge("1", "2", 2.5)
	_, _ = g.AddEdge("3", "3", 0)

	fmt.Println(g.Vertices())
	for _, e := range g.Edges() {
		fmt.Println(e.ID, e.From, e.To, e.Weight)
	}

	// Output:
	// [1 2 3]
	// e1 1 2 1
	// e2 1 2 2.5
	// e3 3 3 0
}
