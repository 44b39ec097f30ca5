package dimacs

import "fmt"

// Mode selects how many tokens an edge line must carry.
type Mode int

const (
	// Unweighted edge lines are "e <u> <v>".
	Unweighted Mode = iota
	// Weighted edge lines are "e <u> <v> <weight>".
	Weighted
)

// Arity returns the number of tokens expected after the "e" directive.
func (m Mode) Arity() int {
	if m == Weighted {
		return 3
	}
	return 2
}

// String implements fmt.Stringer.
func (m Mode) String() string {
	switch m {
	case Unweighted:
		return "unweighted"
	case Weighted:
		return "weighted"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

func (m Mode) valid() bool { return m == Unweighted || m == Weighted }

// Problem is the parsed "p" line.
type Problem struct {
	// Format is the dialect token, e.g. "edge".
	Format string
	// Vertices is the declared vertex count (> 0).
	Vertices int
	// Edges is the declared edge count (>= 0). Informational only.
	Edges int
}

// EdgeRecord is a parsed "e" line. Range checking against Problem.Vertices
// is left to the Importer.
type EdgeRecord struct {
	Source int
	Target int
	// Weight is meaningful only when Weighted is true.
	Weight   float64
	Weighted bool
}

// EventKind discriminates Event payloads.
type EventKind int

const (
	// EventProblem carries a Problem.
	EventProblem EventKind = iota + 1
	// EventEdge carries an EdgeRecord.
	EventEdge
)

// String implements fmt.Stringer.
func (k EventKind) String() string {
	switch k {
	case EventProblem:
		return "problem"
	case EventEdge:
		return "edge"
	default:
		return fmt.Sprintf("EventKind(%d)", int(k))
	}
}

// Event is one structural unit produced by the Parser.
type Event struct {
	Kind EventKind
	// Line is the 1-based source line of the directive.
	Line    int
	Problem Problem
	Edge    EdgeRecord
}

// Capabilities is what a Target declares about itself up front.
// The Importer never asks a Target for more than it declares.
type Capabilities struct {
	Directed   bool
	Weighted   bool
	MultiEdges bool
	Loops      bool
}
