package dimacs

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrNoDialects is returned by LoadDialects when the document lists no formats.
var ErrNoDialects = errors.New("dimacs: dialect list is empty")

// Dialects is an immutable allow-list of problem format tokens.
// The zero value allows nothing; the Parser substitutes DefaultDialects for it.
type Dialects struct {
	tokens map[string]struct{}
}

// NewDialects builds an allow-list from tokens. Surrounding whitespace is
// trimmed and empty tokens are skipped.
func NewDialects(tokens ...string) Dialects {
	d := Dialects{tokens: make(map[string]struct{}, len(tokens))}
	for _, t := range tokens {
		if t = strings.TrimSpace(t); t != "" {
			d.tokens[t] = struct{}{}
		}
	}

	return d
}

// DefaultDialects allows "edge", "col" and "sp".
func DefaultDialects() Dialects {
	return NewDialects("edge", "col", "sp")
}

// With returns a copy extended by tokens.
func (d Dialects) With(tokens ...string) Dialects {
	return NewDialects(append(d.Tokens(), tokens...)...)
}

// Allows reports whether token is an accepted format.
func (d Dialects) Allows(token string) bool {
	_, ok := d.tokens[token]
	return ok
}

// Len returns the number of accepted formats.
func (d Dialects) Len() int { return len(d.tokens) }

// Tokens returns the accepted formats sorted ascending.
func (d Dialects) Tokens() []string {
	out := make([]string, 0, len(d.tokens))
	for t := range d.tokens {
		out = append(out, t)
	}
	sort.Strings(out)

	return out
}

// dialectFile is the YAML shape read by LoadDialects:
//
//	formats:
//	  - edge
//	  - col
type dialectFile struct {
	Formats []string `yaml:"formats"`
}

// LoadDialects reads an allow-list from a YAML document.
func LoadDialects(r io.Reader) (Dialects, error) {
	var f dialectFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return Dialects{}, ErrNoDialects
		}
		return Dialects{}, fmt.Errorf("dimacs: decode dialects: %w", err)
	}
	d := NewDialects(f.Formats...)
	if d.Len() == 0 {
		return Dialects{}, ErrNoDialects
	}

	return d, nil
}
