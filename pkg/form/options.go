package form

import (
	"log/slog"

	"github.com/goliatone/go-queryform/pkg/query"
)

// Listener receives every descriptor the synchronizer emits along with its
// display label. It runs synchronously on the caller's goroutine.
type Listener func(query.Descriptor, string)

// Option configures a Synchronizer.
type Option func(*Synchronizer)

// WithListener registers the callback invoked on each successful compile.
func WithListener(listener Listener) Option {
	return func(s *Synchronizer) {
		s.listener = listener
	}
}

// WithLogger routes debug records through logger. Nil keeps the discard
// logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Synchronizer) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithPrior seeds the initial state from a prior descriptor mapping.
func WithPrior(prior map[string]any) Option {
	return func(s *Synchronizer) {
		s.prior = prior
	}
}
