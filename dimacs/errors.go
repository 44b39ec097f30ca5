// SPDX-License-Identifier: MIT
//
// errors.go: error kinds and the structured ImportError.
//
// Error policy:
//   - Kinds are package-level sentinels; branch with errors.Is(err, ErrX).
//   - Every failure of Parser.Next and Importer.Import is an *ImportError.
//   - Callers should not match on Error() strings.

package dimacs

import (
	"errors"
	"fmt"
	"strings"
)

// Error kinds.
var (
	// ErrHeader reports an invalid problem line: unknown format token,
	// non-positive vertex count, negative edge count or wrong field count.
	ErrHeader = errors.New("dimacs: invalid problem header")

	// ErrDuplicateHeader reports a second "p" line. Also matches ErrHeader.
	ErrDuplicateHeader = errors.New("dimacs: duplicate problem header")

	// ErrMissingHeader reports an edge before any "p" line, or input that
	// ends without one. Also matches ErrHeader.
	ErrMissingHeader = errors.New("dimacs: missing problem header")

	// ErrArity reports an edge line whose token count disagrees with the Mode.
	ErrArity = errors.New("dimacs: edge arity mismatch")

	// ErrOutOfRange reports an endpoint label outside [1, declared vertices].
	ErrOutOfRange = errors.New("dimacs: vertex label out of range")

	// ErrUnrecognizedLine reports a line whose leading token is no known directive.
	ErrUnrecognizedLine = errors.New("dimacs: unrecognized line")

	// ErrMalformedNumber reports an endpoint or weight token that does not parse.
	ErrMalformedNumber = errors.New("dimacs: malformed number")

	// ErrTargetRejected reports a mutation the target refused or does not declare support for.
	ErrTargetRejected = errors.New("dimacs: target graph rejected mutation")

	// ErrProvider reports a failing or missing vertex/edge construction strategy.
	ErrProvider = errors.New("dimacs: construction strategy failed")

	// ErrEdgeCount reports a declared/actual edge count mismatch under WithStrictEdgeCount.
	ErrEdgeCount = errors.New("dimacs: edge count mismatch")

	// ErrRead reports an I/O failure of the underlying reader.
	ErrRead = errors.New("dimacs: read failure")

	// ErrCanceled reports that the import context was done before the input was exhausted.
	ErrCanceled = errors.New("dimacs: import canceled")
)

// ImportError is the single structured failure value of this package.
type ImportError struct {
	// Kind is one of the Err* sentinels above.
	Kind error
	// Line is the 1-based line number, 0 when not tied to a line.
	Line int
	// Token is the offending token, if any.
	Token string
	// Field names the header field for ErrHeader ("format", "vertices", "edges").
	Field string
	// Msg is the human-readable detail.
	Msg string
	// Err is the underlying cause, if any.
	Err error
}

// Error renders "dimacs: line N: msg (token "x"): cause".
func (e *ImportError) Error() string {
	var b strings.Builder
	b.WriteString("dimacs: ")
	if e.Line > 0 {
		fmt.Fprintf(&b, "line %d: ", e.Line)
	}
	b.WriteString(e.Msg)
	if e.Token != "" {
		fmt.Fprintf(&b, " (token %q)", e.Token)
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}

	return b.String()
}

// Unwrap exposes both the kind and the cause to errors.Is / errors.As.
func (e *ImportError) Unwrap() []error {
	out := make([]error, 0, 2)
	if e.Kind != nil {
		out = append(out, e.Kind)
	}
	if e.Err != nil {
		out = append(out, e.Err)
	}

	return out
}

// Is makes duplicate and missing headers count as header errors.
func (e *ImportError) Is(target error) bool {
	return target == ErrHeader && (e.Kind == ErrDuplicateHeader || e.Kind == ErrMissingHeader)
}

func newError(kind error, line int, token, format string, args ...interface{}) *ImportError {
	return &ImportError{Kind: kind, Line: line, Token: token, Msg: fmt.Sprintf(format, args...)}
}

func headerError(line int, field, token string, cause error, format string, args ...interface{}) *ImportError {
	e := newError(ErrHeader, line, token, format, args...)
	if field != "" {
		e.Msg = fmt.Sprintf("field %q: %s", field, e.Msg)
	}
	e.Field = field
	e.Err = cause

	return e
}
