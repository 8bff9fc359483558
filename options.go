// SPDX-License-Identifier: Apache-2.0

package esb

import (
	"os"

	"github.com/rs/zerolog"

	"esb-go/pkg/sink"
)

// DefaultQuantum is the minimum allocation increment applied whenever a
// buffer initializes or grows its storage. It is just big enough to avoid
// most resizing for short strings.
const DefaultQuantum = 16

var DefaultLogger = zerolog.New(os.Stderr)

type Option func(opts *Options)

type Options struct {
	// Quantum is the minimum allocation increment for this buffer.
	// Values <= 0 select DefaultQuantum.
	Quantum int

	// Logger receives diagnostics for recoverable contract violations.
	Logger *zerolog.Logger

	// Sink measures formatted output before it is committed to storage.
	Sink sink.Sink
}

func loadOptions(options ...Option) *Options {
	opts := new(Options)
	for _, option := range options {
		option(opts)
	}

	if opts.Quantum <= 0 {
		opts.Quantum = DefaultQuantum
	}

	if opts.Logger == nil {
		opts.Logger = &DefaultLogger
	}

	if opts.Sink == nil {
		opts.Sink = sink.Default
	}

	return opts
}

func WithOptions(options Options) Option {
	return func(opts *Options) {
		*opts = options
	}
}

// WithQuantum sets the minimum allocation increment for a buffer. Small
// quanta force frequent reallocation and are useful for exercising the
// growth paths in tests.
func WithQuantum(quantum int) Option {
	return func(opts *Options) {
		opts.Quantum = quantum
	}
}

func WithLogger(logger *zerolog.Logger) Option {
	return func(opts *Options) {
		opts.Logger = logger
	}
}

func WithSink(s sink.Sink) Option {
	return func(opts *Options) {
		opts.Sink = s
	}
}
