package dimacs_test

import (
	"context"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlath-dimacs/core"
	"github.com/katalvlaran/lvlath-dimacs/dimacs"
)

// myciel3Edges lists the 20 edges of the Mycielski graph on 11 vertices.
var myciel3Edges = [][2]int{
	{1, 2}, {1, 4}, {1, 7}, {1, 9},
	{2, 3}, {2, 6}, {2, 8},
	{3, 5}, {3, 7}, {3, 10},
	{4, 5}, {4, 6}, {4, 10},
	{5, 8}, {5, 9},
	{6, 11}, {7, 11}, {8, 11}, {9, 11}, {10, 11},
}

func openTestdata(t *testing.T, name string) *os.File {
	t.Helper()
	f, err := os.Open(filepath.Join("testdata", name))
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })

	return f
}

func TestImportCore_Myciel3(t *testing.T) {
	g := core.NewPseudograph(true)
	report, err := dimacs.ImportCore(context.Background(), g, openTestdata(t, "myciel3.col"))
	require.NoError(t, err)

	assert.Equal(t, 11, g.VertexCount())
	assert.Equal(t, 20, g.EdgeCount())
	for _, e := range myciel3Edges {
		from, to := strconv.Itoa(e[0]), strconv.Itoa(e[1])
		assert.True(t, g.HasEdge(from, to), "missing edge %s-%s", from, to)
		assert.Len(t, g.EdgesBetween(from, to), 1)
	}
	assert.Equal(t, 5, report.Comments)
	assert.Equal(t, 26, report.Lines)
	assert.True(t, report.EdgeCountMatches())
}

func TestImportCore_Myciel3Weighted(t *testing.T) {
	g := core.NewPseudograph(true, core.WithWeighted())
	_, err := dimacs.ImportCore(context.Background(), g, openTestdata(t, "myciel3_weighted.col"), dimacs.WithWeighted())
	require.NoError(t, err)

	require.Equal(t, 11, g.VertexCount())
	require.Equal(t, 20, g.EdgeCount())
	for i, e := range myciel3Edges {
		edges := g.EdgesBetween(strconv.Itoa(e[0]), strconv.Itoa(e[1]))
		require.Len(t, edges, 1)
		assert.Equal(t, float64(i+1), edges[0].Weight)
	}
}

func TestImportCore_UndirectedSimpleGraph(t *testing.T) {
	g := core.NewGraph()
	_, err := dimacs.ImportCore(context.Background(), g, openTestdata(t, "myciel3.col"))
	require.NoError(t, err)
	assert.True(t, g.HasEdge("2", "1"), "undirected edges are mirrored")

	g = core.NewGraph()
	_, err = dimacs.ImportCore(context.Background(), g, strings.NewReader("p edge 2 2\ne 1 2\ne 2 1\n"))
	require.ErrorIs(t, err, dimacs.ErrTargetRejected)
	assert.Equal(t, 1, g.EdgeCount())
}

func TestImportCore_WeightedNeedsWeightedGraph(t *testing.T) {
	g := core.NewPseudograph(false)
	_, err := dimacs.ImportCore(context.Background(), g, strings.NewReader("p edge 2 1\ne 1 2 3\n"), dimacs.WithWeighted())
	require.ErrorIs(t, err, dimacs.ErrTargetRejected)
	assert.Zero(t, g.VertexCount())
}

func TestImportCore_NilGraph(t *testing.T) {
	_, err := dimacs.ImportCore(context.Background(), nil, strings.NewReader("p edge 1 0\n"))
	require.ErrorIs(t, err, dimacs.ErrTargetRejected)
}

func TestCoreTarget_EdgeHandleIsStoredEdge(t *testing.T) {
	g := core.NewPseudograph(false, core.WithWeighted())
	target := dimacs.NewCoreTarget(g)
	require.Same(t, g, target.Graph())
	assert.Equal(t, dimacs.Capabilities{Weighted: true, MultiEdges: true, Loops: true}, target.Capabilities())

	e, err := dimacs.CoreEdgeProvider().BuildEdge("1", "2", "", map[string]string{})
	require.NoError(t, err)
	require.NoError(t, target.AddEdge("1", "2", e))
	require.NoError(t, target.SetEdgeWeight(e, 9))

	stored, err := g.Edge(e.ID)
	require.NoError(t, err)
	assert.Same(t, e, stored)
	assert.Equal(t, 9.0, stored.Weight)

	require.ErrorIs(t, target.AddEdge("1", "2", nil), core.ErrNilEdge)
	require.ErrorIs(t, target.SetEdgeWeight(nil, 1), core.ErrNilEdge)
}
