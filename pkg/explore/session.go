package explore

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/goliatone/go-queryform/pkg/form"
	"github.com/goliatone/go-queryform/pkg/query"
)

// ErrNoRunner is returned by Run when the session has no Runner.
var ErrNoRunner = errors.New("explore: runner is not configured")

// Session holds editor rows and the time range. It is safe for concurrent use.
type Session struct {
	mu      sync.Mutex
	rows    []Query
	rng     TimeRange
	runner  Runner
	autoRun bool
	logger  *slog.Logger
	newKey  func() string
}

var (
	_ QuerySink = (*Session)(nil)
	_ Commands  = (*Session)(nil)
)

// Option configures a Session.
type Option func(*Session)

// WithAutoRun runs the queries whenever an editor listener reports a change.
func WithAutoRun(enabled bool) Option {
	return func(s *Session) {
		s.autoRun = enabled
	}
}

// WithTimeRange sets the initial time range.
func WithTimeRange(rng TimeRange) Option {
	return func(s *Session) {
		s.rng = rng
	}
}

// WithLogger routes session records through logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Session) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithKeyGenerator overrides the row key generator (uuid by default).
func WithKeyGenerator(fn func() string) Option {
	return func(s *Session) {
		if fn != nil {
			s.newKey = fn
		}
	}
}

// NewSession returns a session with one empty row.
func NewSession(runner Runner, options ...Option) *Session {
	s := &Session{
		rng:    DefaultTimeRange,
		runner: runner,
		logger: slog.New(slog.DiscardHandler),
		newKey: uuid.NewString,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(s)
	}
	s.rows = []Query{{Key: s.newKey()}}
	return s
}

// AddRow appends an empty row and returns its index.
func (s *Session) AddRow() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rows = append(s.rows, Query{Key: s.newKey()})
	return len(s.rows) - 1
}

// Rows returns a snapshot of the editor rows.
func (s *Session) Rows() []Query {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Query(nil), s.rows...)
}

// TimeRange returns the current range.
func (s *Session) TimeRange() TimeRange {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng
}

// SetTimeRange replaces the current range.
func (s *Session) SetTimeRange(rng TimeRange) {
	s.mu.Lock()
	s.rng = rng
	s.mu.Unlock()
}

// OnQueryChange stores d on the row at index. Out of range indexes are
// dropped.
func (s *Session) OnQueryChange(index int, d query.Descriptor, label string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if index < 0 || index >= len(s.rows) {
		s.logger.Warn("explore.change.dropped", "index", index, "rows", len(s.rows))
		return
	}
	s.rows[index].Descriptor = d
	s.rows[index].Label = label
	s.logger.Debug("explore.change", "index", index, "label", label)
}

// Listener returns a form listener bound to the row at index. With auto-run
// enabled each change also runs the queries with ctx; run failures are
// logged.
func (s *Session) Listener(ctx context.Context, index int) form.Listener {
	return func(d query.Descriptor, label string) {
		s.OnQueryChange(index, d, label)
		if !s.autoRun {
			return
		}
		if err := s.Run(ctx); err != nil {
			s.logger.Error("explore.run.failed", "error", err)
		}
	}
}

// Run hands complete rows and the time range to the runner. Sessions without
// complete rows return without calling it.
func (s *Session) Run(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s.runner == nil {
		return ErrNoRunner
	}

	s.mu.Lock()
	queries := make([]Query, 0, len(s.rows))
	for _, row := range s.rows {
		if row.Complete() {
			queries = append(queries, row)
		}
	}
	rng := s.rng
	s.mu.Unlock()

	if len(queries) == 0 {
		s.logger.Debug("explore.run.skipped", "reason", "no complete queries")
		return nil
	}

	s.logger.Debug("explore.run", "queries", len(queries), "from", rng.From, "to", rng.To)
	if err := s.runner.RunQueries(ctx, queries, rng); err != nil {
		return fmt.Errorf("explore: run queries: %w", err)
	}
	return nil
}

// Clear resets the session to a single empty row.
func (s *Session) Clear() {
	s.mu.Lock()
	s.rows = []Query{{Key: s.newKey()}}
	s.mu.Unlock()
	s.logger.Debug("explore.clear")
}

// RunEvery runs the queries on every tick of interval until ctx is done. Run
// failures are logged and do not stop the loop.
func (s *Session) RunEvery(ctx context.Context, interval time.Duration) error {
	if interval <= 0 {
		return fmt.Errorf("explore: refresh interval must be positive, got %s", interval)
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if err := s.Run(ctx); err != nil && ctx.Err() == nil {
				s.logger.Error("explore.refresh.failed", "error", err)
			}
		}
	}
}
