package form

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func newSynchronizer(t *testing.T, options ...Option) (*Synchronizer, *recorder) {
	t.Helper()
	rec := &recorder{}
	options = append([]Option{WithListener(rec.listen)}, options...)
	sync, err := New(sampleSpec(), options...)
	if err != nil {
		t.Fatalf("new synchronizer: %v", err)
	}
	return sync, rec
}

func TestSynchronizerSelectCommitsImmediately(t *testing.T) {
	sync, rec := newSynchronizer(t)

	if err := sync.SetField("field", "host"); err != nil {
		t.Fatalf("set field: %v", err)
	}
	if len(rec.calls) != 1 {
		t.Fatalf("expected one emission, got %d", len(rec.calls))
	}
	want := map[string]any{"find": "sample", "field": "host"}
	if diff := cmp.Diff(want, rec.calls[0].desc.Map()); diff != "" {
		t.Fatalf("descriptor mismatch (-want +got):\n%s", diff)
	}
	if rec.calls[0].label != "Sample(host)" {
		t.Fatalf("unexpected label %q", rec.calls[0].label)
	}
}

func TestSynchronizerFreeTextWaitsForCommit(t *testing.T) {
	sync, rec := newSynchronizer(t, WithPrior(map[string]any{"field": "host"}))

	if err := sync.SetField("limit", "500"); err != nil {
		t.Fatalf("set limit: %v", err)
	}
	if len(rec.calls) != 0 {
		t.Fatalf("expected no emission before commit, got %d", len(rec.calls))
	}

	if err := sync.CommitField("limit"); err != nil {
		t.Fatalf("commit: %v", err)
	}
	if len(rec.calls) != 1 {
		t.Fatalf("expected one emission after commit, got %d", len(rec.calls))
	}
	if size, ok := rec.calls[0].desc.Int("size"); !ok || size != 500 {
		t.Fatalf("expected size 500, got %d (%v)", size, ok)
	}
}

func TestSynchronizerNonNumericSizeOmitted(t *testing.T) {
	sync, rec := newSynchronizer(t, WithPrior(map[string]any{"field": "host"}))

	_ = sync.SetField("limit", "abc")
	_ = sync.CommitField("limit")

	if len(rec.calls) != 1 {
		t.Fatalf("expected one emission, got %d", len(rec.calls))
	}
	if rec.calls[0].desc.Has("size") {
		t.Fatalf("expected size to be omitted, got %v", rec.calls[0].desc.Map())
	}
}

func TestSynchronizerCommitWithoutPrimaryEmitsNothing(t *testing.T) {
	sync, rec := newSynchronizer(t)

	_ = sync.SetField("query", "status:500")
	_ = sync.CommitField("query")
	_ = sync.SetField("sort", "count")

	if len(rec.calls) != 0 {
		t.Fatalf("expected no emissions, got %d", len(rec.calls))
	}
	if _, _, ok := sync.Last(); ok {
		t.Fatalf("expected no last descriptor")
	}
}

func TestSynchronizerCommitIsIdempotent(t *testing.T) {
	sync, rec := newSynchronizer(t, WithPrior(map[string]any{"field": "host", "query": "a"}))

	_ = sync.CommitField("query")
	_ = sync.CommitField("query")

	if len(rec.calls) != 2 {
		t.Fatalf("expected two emissions, got %d", len(rec.calls))
	}
	if !rec.calls[0].desc.Equal(rec.calls[1].desc) {
		t.Fatalf("expected identical descriptors:\n%s", cmp.Diff(rec.calls[0].desc.Map(), rec.calls[1].desc.Map()))
	}
	if rec.calls[0].label != rec.calls[1].label {
		t.Fatalf("expected identical labels")
	}
}

func TestSynchronizerRuleForcesTarget(t *testing.T) {
	sync, rec := newSynchronizer(t, WithPrior(map[string]any{"field": "host"}))

	_ = sync.SetField("dir", "asc")
	_ = sync.SetField("sort", "count")

	if got, _ := sync.State().Get("dir"); got != "desc" {
		t.Fatalf("expected dir forced to desc, got %q", got)
	}
	last := rec.calls[len(rec.calls)-1].desc
	want := map[string]any{"find": "sample", "field": "host", "sort": "count", "dir": "desc"}
	if diff := cmp.Diff(want, last.Map()); diff != "" {
		t.Fatalf("descriptor mismatch (-want +got):\n%s", diff)
	}
}

func TestSynchronizerInitializeReplacesState(t *testing.T) {
	sync, _ := newSynchronizer(t)

	_ = sync.SetField("field", "old")
	_ = sync.SetField("query", "stale")
	sync.Initialize(map[string]any{"field": "x", "size": 10})

	want := map[string]string{"field": "x", "query": "", "limit": "10", "sort": "name", "dir": "asc"}
	if diff := cmp.Diff(want, sync.State().Values()); diff != "" {
		t.Fatalf("state mismatch (-want +got):\n%s", diff)
	}
	if _, _, ok := sync.Last(); ok {
		t.Fatalf("expected last descriptor to reset on initialize")
	}
}

func TestSynchronizerInitializeFromDescriptor(t *testing.T) {
	sync, rec := newSynchronizer(t)
	_ = sync.SetField("field", "host")
	_ = sync.SetField("limit", "5")
	_ = sync.CommitField("limit")
	emitted := rec.calls[len(rec.calls)-1].desc

	other, _ := newSynchronizer(t)
	other.InitializeFrom(emitted)
	desc, _, ok := other.Compile()
	if !ok || !desc.Equal(emitted) {
		t.Fatalf("expected round trip through InitializeFrom, got %v", desc.Map())
	}
}

func TestSynchronizerUnknownField(t *testing.T) {
	sync, rec := newSynchronizer(t)

	if err := sync.SetField("nope", "x"); !errors.Is(err, ErrUnknownField) {
		t.Fatalf("expected ErrUnknownField, got %v", err)
	}
	if err := sync.CommitField("nope"); !errors.Is(err, ErrUnknownField) {
		t.Fatalf("expected ErrUnknownField, got %v", err)
	}
	if _, ok := sync.State().Get("nope"); ok {
		t.Fatalf("unknown field must not be stored")
	}
	if len(rec.calls) != 0 {
		t.Fatalf("expected no emissions")
	}
}

func TestSynchronizerStateIsCopy(t *testing.T) {
	sync, _ := newSynchronizer(t)
	values := sync.State().Values()
	values["field"] = "mutated"
	if got, _ := sync.State().Get("field"); got != "" {
		t.Fatalf("expected state to be isolated, got %q", got)
	}
}

func TestSynchronizerLogsCompiles(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	sync, _ := newSynchronizer(t, WithLogger(logger))

	_ = sync.CommitField("query")
	_ = sync.SetField("field", "host")

	out := buf.String()
	if !strings.Contains(out, "query.skipped") || !strings.Contains(out, "query.compiled") {
		t.Fatalf("expected skip and compile records, got:\n%s", out)
	}
}

func TestNewRejectsInvalidSpec(t *testing.T) {
	if _, err := New(Spec{}); !errors.Is(err, ErrInvalidSpec) {
		t.Fatalf("expected ErrInvalidSpec, got %v", err)
	}
}
