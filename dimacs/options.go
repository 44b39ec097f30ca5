// SPDX-License-Identifier: MIT
//
// options.go: functional options for Importer.
//
// Contract:
//   - Option constructors validate and PANIC on meaningless inputs.
//   - Import itself never panics; failures are *ImportError values.

package dimacs

import "log/slog"

// Option customizes an Importer.
type Option func(*config)

type config struct {
	mode            Mode
	dialects        Dialects
	logger          *slog.Logger
	strictEdgeCount bool
}

func newConfig(opts []Option) config {
	c := config{
		mode:     Unweighted,
		dialects: DefaultDialects(),
		logger:   slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(&c)
	}

	return c
}

// WithMode sets the edge arity mode. Panics on an unknown Mode.
func WithMode(m Mode) Option {
	if !m.valid() {
		panic("dimacs: WithMode(invalid)")
	}
	return func(c *config) { c.mode = m }
}

// WithWeighted is shorthand for WithMode(Weighted).
func WithWeighted() Option {
	return WithMode(Weighted)
}

// WithDialects replaces the accepted header format tokens. Panics on an empty list.
func WithDialects(d Dialects) Option {
	if d.Len() == 0 {
		panic("dimacs: WithDialects(empty)")
	}
	return func(c *config) { c.dialects = d }
}

// WithLogger routes import diagnostics to l. Panics on nil.
// Without it the Importer is silent.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("dimacs: WithLogger(nil)")
	}
	return func(c *config) { c.logger = l }
}

// WithStrictEdgeCount makes a mismatch between the declared and the actual
// number of edge lines an ErrEdgeCount failure instead of a logged warning.
func WithStrictEdgeCount() Option {
	return func(c *config) { c.strictEdgeCount = true }
}
