package explore

import (
	"context"

	"github.com/goliatone/go-queryform/pkg/query"
)

// TimeRange carries raw range values ("now-6h", "now"); formatting belongs to
// the caller.
type TimeRange struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// DefaultTimeRange is the range a new session starts with.
var DefaultTimeRange = TimeRange{From: "now-6h", To: "now"}

// Query is one editor row.
type Query struct {
	Key        string           `json:"key"`
	Descriptor query.Descriptor `json:"query"`
	Label      string           `json:"label,omitempty"`
}

// Complete reports whether the row carries a compiled descriptor.
func (q Query) Complete() bool {
	return !q.Descriptor.IsZero()
}

// QuerySink receives descriptors emitted by the editor at index.
type QuerySink interface {
	OnQueryChange(index int, d query.Descriptor, label string)
}

// Commands is the run/clear pair exposed by the toolbar.
type Commands interface {
	Run(ctx context.Context) error
	Clear()
}

// Runner executes complete queries for a time range.
type Runner interface {
	RunQueries(ctx context.Context, queries []Query, rng TimeRange) error
}

// RunnerFunc adapts a function into a Runner.
type RunnerFunc func(ctx context.Context, queries []Query, rng TimeRange) error

// RunQueries calls the underlying function.
func (fn RunnerFunc) RunQueries(ctx context.Context, queries []Query, rng TimeRange) error {
	return fn(ctx, queries, rng)
}
