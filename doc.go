// Package lvlath is the root of lvlath-dimacs: DIMACS edge-format import
// into in-memory graphs.
//
// Packages:
//
//	core/           thread-safe Graph with directed, weighted, multi-edge and loop flags
//	dimacs/         line parser, generic import pipeline, dialect allow-list, core adapter
//	independentset/ immutable independent-set result value and checker
//	cmd/dimacsinfo  CLI that imports files concurrently and prints summaries
//
// Quick start:
//
//	g := core.NewPseudograph(false)
//	report, err := dimacs.ImportCore(ctx, g, file)
//	if errors.Is(err, dimacs.ErrOutOfRange) {
//		// inspect err.(*dimacs.ImportError).Line / .Token
//	}
//	fmt.Println(report.VerticesCreated, report.EdgesRead)
package lvlath
