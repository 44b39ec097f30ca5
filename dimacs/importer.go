package dimacs

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strconv"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("dimacs.import")

// Report summarizes a finished (or failed) import.
type Report struct {
	// Problem is the parsed header (zero if the header never arrived).
	Problem Problem
	// EdgesRead counts edge lines added to the target.
	EdgesRead int
	// VerticesCreated counts distinct labels materialized.
	VerticesCreated int
	// Lines is the number of input lines consumed.
	Lines int
	// Comments is the number of comment lines skipped.
	Comments int
}

// EdgeCountMatches reports whether the header's declared edge count equals EdgesRead.
func (r *Report) EdgeCountMatches() bool {
	return r.Problem.Edges == r.EdgesRead
}

// Importer populates a Target from DIMACS text. An Importer holds no
// per-import state and may be reused, including concurrently for distinct
// targets.
type Importer[V, E any] struct {
	vp  VertexProvider[V]
	ep  EdgeProvider[V, E]
	cfg config
}

// NewImporter binds construction strategies and options.
func NewImporter[V, E any](vp VertexProvider[V], ep EdgeProvider[V, E], opts ...Option) *Importer[V, E] {
	return &Importer[V, E]{vp: vp, ep: ep, cfg: newConfig(opts)}
}

// Mode returns the configured edge arity mode.
func (im *Importer[V, E]) Mode() Mode { return im.cfg.mode }

// Import reads r to exhaustion or to the first failure, adding vertices and
// edges to target. On failure the target keeps whatever was added before
// the failing line. The context is checked between lines.
func (im *Importer[V, E]) Import(ctx context.Context, target Target[V, E], r io.Reader) (*Report, error) {
	ctx, span := tracer.Start(ctx, "dimacs.Import",
		trace.WithAttributes(attribute.String("dimacs.mode", im.cfg.mode.String())),
	)
	defer span.End()
	start := time.Now()

	report := &Report{}
	err := im.run(ctx, target, r, report)

	span.SetAttributes(
		attribute.String("dimacs.format", report.Problem.Format),
		attribute.Int("dimacs.vertices_declared", report.Problem.Vertices),
		attribute.Int("dimacs.edges_declared", report.Problem.Edges),
		attribute.Int("dimacs.edges_read", report.EdgesRead),
		attribute.Int("dimacs.vertices_created", report.VerticesCreated),
	)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		im.cfg.logger.DebugContext(ctx, "dimacs: import failed",
			slog.Int("lines", report.Lines),
			slog.String("error", err.Error()),
		)
		return report, err
	}

	im.cfg.logger.DebugContext(ctx, "dimacs: import complete",
		slog.String("format", report.Problem.Format),
		slog.Int("vertices", report.VerticesCreated),
		slog.Int("edges", report.EdgesRead),
		slog.Duration("duration", time.Since(start)),
	)

	return report, nil
}

// run is the import loop; it fills report as it goes.
func (im *Importer[V, E]) run(ctx context.Context, target Target[V, E], r io.Reader, report *Report) error {
	if target == nil {
		return newError(ErrTargetRejected, 0, "", "target graph is nil")
	}
	if im.vp == nil || im.ep == nil {
		return newError(ErrProvider, 0, "", "vertex and edge providers are required")
	}
	caps := target.Capabilities()
	if im.cfg.mode == Weighted && !caps.Weighted {
		return newError(ErrTargetRejected, 0, "", "weighted import into a target without weight support")
	}

	p := NewParser(r, im.cfg.mode, im.cfg.dialects)
	st := &importState[V, E]{
		im:     im,
		target: target,
		caps:   caps,
		report: report,
		cache:  make(map[int]V),
	}
	if !caps.MultiEdges {
		st.pairs = make(map[[2]int]struct{})
	}

	defer func() {
		report.Lines = p.Line()
		report.Comments = p.Comments()
	}()

	headerSeen := false
	for {
		if err := ctx.Err(); err != nil {
			ie := newError(ErrCanceled, p.Line(), "", "import stopped")
			ie.Err = err
			return ie
		}
		ev, err := p.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return err
		}

		switch ev.Kind {
		case EventProblem:
			headerSeen = true
			report.Problem = ev.Problem
			im.cfg.logger.DebugContext(ctx, "dimacs: problem header",
				slog.Int("line", ev.Line),
				slog.String("format", ev.Problem.Format),
				slog.Int("vertices", ev.Problem.Vertices),
				slog.Int("edges", ev.Problem.Edges),
			)
		case EventEdge:
			if err := st.addEdge(ev); err != nil {
				return err
			}
		}
	}

	if !headerSeen {
		return newError(ErrMissingHeader, p.Line(), "", "input ended before a problem header")
	}
	if !report.EdgeCountMatches() {
		if im.cfg.strictEdgeCount {
			return newError(ErrEdgeCount, p.Line(), "",
				"header declares %d edges, read %d", report.Problem.Edges, report.EdgesRead)
		}
		im.cfg.logger.WarnContext(ctx, "dimacs: edge count differs from header",
			slog.Int("declared", report.Problem.Edges),
			slog.Int("read", report.EdgesRead),
		)
	}

	return nil
}

// importState is the per-call state: the label → vertex cache and, for
// targets without multi-edge support, the set of endpoint pairs already added.
type importState[V, E any] struct {
	im     *Importer[V, E]
	target Target[V, E]
	caps   Capabilities
	report *Report
	cache  map[int]V
	pairs  map[[2]int]struct{}
}

func (st *importState[V, E]) addEdge(ev Event) error {
	rec, n := ev.Edge, st.report.Problem.Vertices
	for _, label := range [2]int{rec.Source, rec.Target} {
		if label < 1 || label > n {
			return newError(ErrOutOfRange, ev.Line, strconv.Itoa(label),
				"vertex label %d outside [1, %d]", label, n)
		}
	}
	if rec.Source == rec.Target && !st.caps.Loops {
		return newError(ErrTargetRejected, ev.Line, strconv.Itoa(rec.Source),
			"self-loop on a target without loop support")
	}
	var key [2]int
	if st.pairs != nil {
		key = pairKey(rec.Source, rec.Target, st.caps.Directed)
		if _, dup := st.pairs[key]; dup {
			return newError(ErrTargetRejected, ev.Line, "",
				"parallel edge %d-%d on a target without multi-edge support", rec.Source, rec.Target)
		}
	}

	from, err := st.vertex(ev.Line, rec.Source)
	if err != nil {
		return err
	}
	to, err := st.vertex(ev.Line, rec.Target)
	if err != nil {
		return err
	}

	e, err := st.im.ep.BuildEdge(from, to, "", map[string]string{})
	if err != nil {
		return wrapAt(ErrProvider, ev.Line, "", "edge provider failed", err)
	}
	if err = st.target.AddEdge(from, to, e); err != nil {
		return wrapAt(ErrTargetRejected, ev.Line, "", "add edge", err)
	}
	if rec.Weighted {
		if err = st.target.SetEdgeWeight(e, rec.Weight); err != nil {
			return wrapAt(ErrTargetRejected, ev.Line, "", "set edge weight", err)
		}
	}
	if st.pairs != nil {
		st.pairs[key] = struct{}{}
	}
	st.report.EdgesRead++

	return nil
}

// vertex returns the cached vertex for label, building and adding it on first use.
func (st *importState[V, E]) vertex(line, label int) (V, error) {
	if v, ok := st.cache[label]; ok {
		return v, nil
	}
	token := strconv.Itoa(label)
	v, err := st.im.vp.BuildVertex(token, map[string]string{})
	if err != nil {
		var zero V
		return zero, wrapAt(ErrProvider, line, token, "vertex provider failed", err)
	}
	if err = st.target.AddVertex(v); err != nil {
		var zero V
		return zero, wrapAt(ErrTargetRejected, line, token, "add vertex", err)
	}
	st.cache[label] = v
	st.report.VerticesCreated++

	return v, nil
}

func pairKey(u, v int, directed bool) [2]int {
	if !directed && v < u {
		u, v = v, u
	}
	return [2]int{u, v}
}

func wrapAt(kind error, line int, token, msg string, cause error) *ImportError {
	return &ImportError{Kind: kind, Line: line, Token: token, Msg: msg, Err: cause}
}

// Import is the one-shot form: it imports r into target in the given mode
// with default dialects and returns only the outcome.
func Import[V, E any](target Target[V, E], vp VertexProvider[V], ep EdgeProvider[V, E], r io.Reader, mode Mode) error {
	if !mode.valid() {
		return newError(ErrArity, 0, "", "unknown mode %s", mode)
	}
	_, err := NewImporter(vp, ep, WithMode(mode)).Import(context.Background(), target, r)
	return err
}
