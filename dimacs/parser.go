package dimacs

import (
	"bufio"
	"errors"
	"io"
	"iter"
	"math"
	"strconv"
	"strings"
)

// Directive tokens.
const (
	directiveComment = "c"
	directiveProblem = "p"
	directiveEdge    = "e"
)

// maxLineBytes bounds a single input line.
const maxLineBytes = 1 << 20

// headerFields names the fields of a "p" line after the directive.
var headerFields = [...]string{"format", "vertices", "edges"}

// Parser turns DIMACS text into Events, one line at a time.
// A failure is terminal: every later Next returns the same error.
type Parser struct {
	sc       *bufio.Scanner
	mode     Mode
	dialects Dialects

	line       int
	comments   int
	seenHeader bool
	err        error
}

// NewParser reads r in the given mode. A zero Dialects means DefaultDialects.
func NewParser(r io.Reader, mode Mode, dialects Dialects) *Parser {
	if dialects.Len() == 0 {
		dialects = DefaultDialects()
	}
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 4096), maxLineBytes)

	return &Parser{sc: sc, mode: mode, dialects: dialects}
}

// Line returns the number of the last line consumed (1-based).
func (p *Parser) Line() int { return p.line }

// Comments returns the number of comment lines skipped so far.
func (p *Parser) Comments() int { return p.comments }

// Next returns the next Event, io.EOF at the end of well-formed input,
// or an *ImportError.
func (p *Parser) Next() (Event, error) {
	if p.err != nil {
		return Event{}, p.err
	}
	for p.sc.Scan() {
		p.line++
		fields := strings.Fields(p.sc.Text())
		if len(fields) == 0 {
			continue
		}

		var (
			ev  Event
			err error
		)
		switch fields[0] {
		case directiveComment:
			p.comments++
			continue
		case directiveProblem:
			ev, err = p.parseProblem(fields[1:])
		case directiveEdge:
			ev, err = p.parseEdge(fields[1:])
		default:
			err = newError(ErrUnrecognizedLine, p.line, fields[0], "unknown directive")
		}
		if err != nil {
			p.err = err
			return Event{}, err
		}

		return ev, nil
	}

	if err := p.sc.Err(); err != nil {
		ie := newError(ErrRead, p.line+1, "", "cannot read input")
		ie.Err = err
		p.err = ie
		return Event{}, ie
	}
	p.err = io.EOF

	return Event{}, io.EOF
}

// All yields events until the input ends or the first failure, which is
// yielded once as the final element.
func (p *Parser) All() iter.Seq2[Event, error] {
	return func(yield func(Event, error) bool) {
		for {
			ev, err := p.Next()
			if errors.Is(err, io.EOF) {
				return
			}
			if !yield(ev, err) || err != nil {
				return
			}
		}
	}
}

func (p *Parser) parseProblem(args []string) (Event, error) {
	if p.seenHeader {
		return Event{}, newError(ErrDuplicateHeader, p.line, directiveProblem, "problem header already declared")
	}
	if len(args) < len(headerFields) {
		missing := headerFields[len(args)]
		return Event{}, headerError(p.line, missing, "", nil, "missing")
	}
	if len(args) > len(headerFields) {
		return Event{}, headerError(p.line, "", args[len(headerFields)], nil,
			"expected %d fields after %q, got %d", len(headerFields), directiveProblem, len(args))
	}

	format := args[0]
	if !p.dialects.Allows(format) {
		return Event{}, headerError(p.line, "format", format, nil,
			"unrecognized, want one of %v", p.dialects.Tokens())
	}
	nv, err := strconv.Atoi(args[1])
	if err != nil || nv <= 0 {
		return Event{}, headerError(p.line, "vertices", args[1], numErr(err),
			"must be a positive integer")
	}
	ne, err := strconv.Atoi(args[2])
	if err != nil || ne < 0 {
		return Event{}, headerError(p.line, "edges", args[2], numErr(err),
			"must be a non-negative integer")
	}

	p.seenHeader = true

	return Event{
		Kind:    EventProblem,
		Line:    p.line,
		Problem: Problem{Format: format, Vertices: nv, Edges: ne},
	}, nil
}

func (p *Parser) parseEdge(args []string) (Event, error) {
	if !p.seenHeader {
		return Event{}, newError(ErrMissingHeader, p.line, directiveEdge, "edge declared before problem header")
	}
	if want := p.mode.Arity(); len(args) != want {
		return Event{}, newError(ErrArity, p.line, "",
			"%s edge expects %d tokens, got %d", p.mode, want, len(args))
	}

	src, err := parseLabel(p.line, args[0])
	if err != nil {
		return Event{}, err
	}
	dst, err := parseLabel(p.line, args[1])
	if err != nil {
		return Event{}, err
	}
	rec := EdgeRecord{Source: src, Target: dst}

	if p.mode == Weighted {
		w, err := strconv.ParseFloat(args[2], 64)
		if err != nil || math.IsNaN(w) || math.IsInf(w, 0) {
			ie := newError(ErrMalformedNumber, p.line, args[2], "weight must be a finite number")
			ie.Err = numErr(err)
			return Event{}, ie
		}
		rec.Weight, rec.Weighted = w, true
	}

	return Event{Kind: EventEdge, Line: p.line, Edge: rec}, nil
}

func parseLabel(line int, token string) (int, error) {
	n, err := strconv.Atoi(token)
	if err != nil {
		ie := newError(ErrMalformedNumber, line, token, "vertex label must be an integer")
		ie.Err = numErr(err)
		return 0, ie
	}

	return n, nil
}

// numErr strips strconv's echo of the input, which Token already carries.
func numErr(err error) error {
	var ne *strconv.NumError
	if errors.As(err, &ne) {
		return ne.Err
	}

	return err
}
