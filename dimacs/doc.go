// Package dimacs imports graphs written in the DIMACS "edge" family of
// exchange formats into caller-owned graph structures.
//
// What
//
//   - A line-oriented Parser turns text into structural events:
//     a problem header ("p <format> <nVertices> <nEdges>") and edge
//     declarations ("e <u> <v> [<weight>]"). Comment ("c") and blank lines
//     produce nothing.
//
//   - An Importer drives the Parser, checks every endpoint against the
//     declared vertex count, and materializes vertices and edges through
//     caller-supplied VertexProvider / EdgeProvider strategies into a Target.
//
//   - CoreTarget adapts *core.Graph so the common case is one call:
//
//     g := core.NewPseudograph(false)
//     report, err := dimacs.ImportCore(ctx, g, file)
//
// # Modes
//
// The caller chooses Unweighted (edge lines carry exactly two tokens) or
// Weighted (exactly three, the third being the weight applied with
// Target.SetEdgeWeight). The file itself does not select the mode.
//
// # Vertices
//
// Vertices are built lazily, in first-reference order, exactly once per
// label. A label that never appears as an endpoint is never built, even if
// it lies within the declared vertex count.
//
// # Dialects
//
// The accepted header format tokens form an allow-list (DefaultDialects:
// "edge", "col", "sp"). Use WithDialects or LoadDialects to change it.
//
// # Errors
//
// Every failure is an *ImportError carrying the 1-based line, the offending
// token and a kind sentinel usable with errors.Is:
//
//	ErrHeader, ErrDuplicateHeader, ErrMissingHeader, ErrArity, ErrOutOfRange,
//	ErrUnrecognizedLine, ErrMalformedNumber, ErrTargetRejected, ErrProvider,
//	ErrEdgeCount, ErrRead, ErrCanceled
//
// ErrDuplicateHeader and ErrMissingHeader also match ErrHeader.
//
// Failure leaves the target partially populated: everything added before
// the failing line stays in place. There is no rollback.
//
// # Concurrency
//
// An import is synchronous and single-threaded. Imports into distinct
// targets may run in parallel; a single target must not receive two
// imports at once.
package dimacs
