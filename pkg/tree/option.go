package tree

import (
	"io"
	"log/slog"
)

type Option[V, L comparable] func(*Tree[V, L]) *Tree[V, L]

func defaultOptions[V, L comparable]() *Tree[V, L] {
	return &Tree[V, L]{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithLogger sets the logger used to trace structural mutations at debug level.
func WithLogger[V, L comparable](logger *slog.Logger) Option[V, L] {
	return func(t *Tree[V, L]) *Tree[V, L] {
		if logger != nil {
			t.logger = logger
		}
		return t
	}
}
