package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvlath-dimacs/core"
	"github.com/katalvlaran/lvlath-dimacs/dimacs"
)

// inspectOptions carries the flag values for one run.
type inspectOptions struct {
	weighted bool
	directed bool
	strict   bool
	workers  int
	dialects dimacs.Dialects
	logger   *slog.Logger
}

// fileResult is the outcome of importing one file.
type fileResult struct {
	Path   string
	Report *dimacs.Report
	Graph  *core.Graph
	Err    error
}

// inspectFiles imports every path into its own pseudograph. Results keep
// the order of paths; a failing file does not stop the others.
func inspectFiles(ctx context.Context, paths []string, opts inspectOptions) []fileResult {
	if ctx == nil {
		ctx = context.Background()
	}
	results := make([]fileResult, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	if opts.workers > 0 {
		g.SetLimit(opts.workers)
	}
	for i, path := range paths {
		g.Go(func() error {
			results[i] = inspectFile(gctx, path, opts)
			return nil
		})
	}
	_ = g.Wait() // workers never return errors; failures live in results

	return results
}

func inspectFile(ctx context.Context, path string, opts inspectOptions) fileResult {
	res := fileResult{Path: path}

	f, err := os.Open(path)
	if err != nil {
		res.Err = err
		return res
	}
	defer f.Close()

	graphOpts := []core.GraphOption{}
	importOpts := []dimacs.Option{}
	if opts.weighted {
		graphOpts = append(graphOpts, core.WithWeighted())
		importOpts = append(importOpts, dimacs.WithWeighted())
	}
	if opts.strict {
		importOpts = append(importOpts, dimacs.WithStrictEdgeCount())
	}
	if opts.dialects.Len() > 0 {
		importOpts = append(importOpts, dimacs.WithDialects(opts.dialects))
	}
	if opts.logger != nil {
		importOpts = append(importOpts, dimacs.WithLogger(opts.logger.With(slog.String("file", path))))
	}

	res.Graph = core.NewPseudograph(opts.directed, graphOpts...)
	res.Report, res.Err = dimacs.ImportCore(ctx, res.Graph, f, importOpts...)

	return res
}

// printResults writes one line per file and returns the number of failures.
func printResults(w io.Writer, results []fileResult) int {
	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
			fmt.Fprintf(w, "%s\tFAIL\t%v\n", r.Path, r.Err)
			continue
		}
		note := ""
		if !r.Report.EdgeCountMatches() {
			note = fmt.Sprintf("\t(header declares %d edges)", r.Report.Problem.Edges)
		}
		fmt.Fprintf(w, "%s\t%s\tvertices=%d/%d\tedges=%d%s\n",
			r.Path, r.Report.Problem.Format,
			r.Graph.VertexCount(), r.Report.Problem.Vertices,
			r.Graph.EdgeCount(), note)
	}

	return failed
}
