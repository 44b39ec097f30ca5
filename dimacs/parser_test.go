package dimacs_test

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlath-dimacs/dimacs"
)

func newParser(src string, mode dimacs.Mode) *dimacs.Parser {
	return dimacs.NewParser(strings.NewReader(src), mode, dimacs.Dialects{})
}

// drain reads events until EOF or the first error.
func drain(p *dimacs.Parser) ([]dimacs.Event, error) {
	var out []dimacs.Event
	for {
		ev, err := p.Next()
		if errors.Is(err, io.EOF) {
			return out, nil
		}
		if err != nil {
			return out, err
		}
		out = append(out, ev)
	}
}

func TestParser_WellFormed(t *testing.T) {
	src := "c a comment\n" +
		"\n" +
		"p edge 3 2\n" +
		"   \t\n" +
		"e 1 2\n" +
		"c another\n" +
		"e 3 3\n"
	p := newParser(src, dimacs.Unweighted)

	events, err := drain(p)
	require.NoError(t, err)
	require.Len(t, events, 3)

	assert.Equal(t, dimacs.EventProblem, events[0].Kind)
	assert.Equal(t, 3, events[0].Line)
	assert.Equal(t, dimacs.Problem{Format: "edge", Vertices: 3, Edges: 2}, events[0].Problem)

	assert.Equal(t, dimacs.EventEdge, events[1].Kind)
	assert.Equal(t, 5, events[1].Line)
	assert.Equal(t, dimacs.EdgeRecord{Source: 1, Target: 2}, events[1].Edge)

	assert.Equal(t, dimacs.EdgeRecord{Source: 3, Target: 3}, events[2].Edge)
	assert.Equal(t, 7, p.Line())
	assert.Equal(t, 2, p.Comments())
}

func TestParser_WeightedEdges(t *testing.T) {
	p := newParser("p sp 2 2\ne 1 2 3.5\ne 2 1 -4\n", dimacs.Weighted)

	events, err := drain(p)
	require.NoError(t, err)
	require.Len(t, events, 3)
	assert.Equal(t, dimacs.EdgeRecord{Source: 1, Target: 2, Weight: 3.5, Weighted: true}, events[1].Edge)
	assert.Equal(t, -4.0, events[2].Edge.Weight)
}

func TestParser_HeaderErrors(t *testing.T) {
	cases := []struct {
		name  string
		src   string
		field string
		token string
	}{
		{"non-numeric vertices", "p edge ERROR 5\n", "vertices", "ERROR"},
		{"negative vertices", "p edge -10 5\n", "vertices", "-10"},
		{"zero vertices", "p edge 0 5\n", "vertices", "0"},
		{"negative edges", "p edge 5 -1\n", "edges", "-1"},
		{"non-numeric edges", "p edge 5 x\n", "edges", "x"},
		{"unknown format", "p tsp 5 5\n", "format", "tsp"},
		{"missing edges field", "p edge 5\n", "edges", ""},
		{"missing every field", "p\n", "format", ""},
		{"trailing field", "p edge 5 5 5\n", "", "5"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := drain(newParser(tc.src, dimacs.Unweighted))
			require.ErrorIs(t, err, dimacs.ErrHeader)

			var ie *dimacs.ImportError
			require.ErrorAs(t, err, &ie)
			assert.Equal(t, 1, ie.Line)
			assert.Equal(t, tc.field, ie.Field)
			assert.Equal(t, tc.token, ie.Token)
			if tc.field != "" {
				assert.Contains(t, err.Error(), tc.field)
			}
		})
	}
}

func TestParser_DuplicateHeader(t *testing.T) {
	_, err := drain(newParser("p edge 2 1\ne 1 2\np edge 2 1\n", dimacs.Unweighted))
	require.ErrorIs(t, err, dimacs.ErrDuplicateHeader)
	require.ErrorIs(t, err, dimacs.ErrHeader)

	var ie *dimacs.ImportError
	require.ErrorAs(t, err, &ie)
	assert.Equal(t, 3, ie.Line)
}

func TestParser_EdgeBeforeHeader(t *testing.T) {
	_, err := drain(newParser("c nothing yet\ne 1 2\np edge 2 1\n", dimacs.Unweighted))
	require.ErrorIs(t, err, dimacs.ErrMissingHeader)

	var ie *dimacs.ImportError
	require.ErrorAs(t, err, &ie)
	assert.Equal(t, 2, ie.Line)
}

func TestParser_Arity(t *testing.T) {
	cases := []struct {
		name string
		mode dimacs.Mode
		edge string
		msg  string
	}{
		{"single token unweighted", dimacs.Unweighted, "e 2", "expects 2 tokens, got 1"},
		{"no tokens", dimacs.Unweighted, "e", "expects 2 tokens, got 0"},
		{"weight in unweighted mode", dimacs.Unweighted, "e 1 2 7", "expects 2 tokens, got 3"},
		{"missing weight", dimacs.Weighted, "e 1 2", "expects 3 tokens, got 2"},
		{"extra token weighted", dimacs.Weighted, "e 1 2 3 4", "expects 3 tokens, got 4"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := drain(newParser("p edge 2 2\n"+tc.edge+"\ne 1 2\n", tc.mode))
			require.ErrorIs(t, err, dimacs.ErrArity)
			assert.Contains(t, err.Error(), tc.msg)
			assert.Contains(t, err.Error(), "line 2")
		})
	}
}

func TestParser_MalformedNumbers(t *testing.T) {
	cases := []struct {
		name  string
		mode  dimacs.Mode
		edge  string
		token string
	}{
		{"source", dimacs.Unweighted, "e x 2", "x"},
		{"target", dimacs.Unweighted, "e 1 2.5", "2.5"},
		{"weight", dimacs.Weighted, "e 1 2 heavy", "heavy"},
		{"nan weight", dimacs.Weighted, "e 1 2 NaN", "NaN"},
		{"inf weight", dimacs.Weighted, "e 1 2 +Inf", "+Inf"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := drain(newParser("p edge 2 1\n"+tc.edge+"\n", tc.mode))
			require.ErrorIs(t, err, dimacs.ErrMalformedNumber)

			var ie *dimacs.ImportError
			require.ErrorAs(t, err, &ie)
			assert.Equal(t, tc.token, ie.Token)
		})
	}
}

func TestParser_UnrecognizedLine(t *testing.T) {
	for _, line := range []string{"x 1 2", "a 1 2 3", "E 1 2", "comment here"} {
		_, err := drain(newParser("p edge 2 1\n"+line+"\n", dimacs.Unweighted))
		require.ErrorIs(t, err, dimacs.ErrUnrecognizedLine, line)
	}
}

func TestParser_FailureIsTerminal(t *testing.T) {
	p := newParser("p edge 2 1\nq\ne 1 2\n", dimacs.Unweighted)

	_, err := p.Next()
	require.NoError(t, err)
	_, first := p.Next()
	require.ErrorIs(t, first, dimacs.ErrUnrecognizedLine)
	_, second := p.Next()
	assert.Same(t, first, second)
	assert.Equal(t, 2, p.Line(), "no line is consumed after a failure")
}

func TestParser_CustomDialects(t *testing.T) {
	d := dimacs.NewDialects("clq")
	p := dimacs.NewParser(strings.NewReader("p clq 2 0\n"), dimacs.Unweighted, d)
	events, err := drain(p)
	require.NoError(t, err)
	require.Len(t, events, 1)

	p = dimacs.NewParser(strings.NewReader("p edge 2 0\n"), dimacs.Unweighted, d)
	_, err = drain(p)
	require.ErrorIs(t, err, dimacs.ErrHeader)
}

func TestParser_All(t *testing.T) {
	p := newParser("p edge 2 2\ne 1 2\ne 9\n", dimacs.Unweighted)

	var kinds []dimacs.EventKind
	var last error
	for ev, err := range p.All() {
		if err != nil {
			last = err
			break
		}
		kinds = append(kinds, ev.Kind)
	}
	assert.Equal(t, []dimacs.EventKind{dimacs.EventProblem, dimacs.EventEdge}, kinds)
	require.ErrorIs(t, last, dimacs.ErrArity)
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("disk on fire") }

func TestParser_ReadFailure(t *testing.T) {
	_, err := drain(dimacs.NewParser(failingReader{}, dimacs.Unweighted, dimacs.Dialects{}))
	require.ErrorIs(t, err, dimacs.ErrRead)
	assert.Contains(t, err.Error(), "disk on fire")
}
