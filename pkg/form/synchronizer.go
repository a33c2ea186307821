package form

import (
	"fmt"
	"log/slog"

	"github.com/goliatone/go-queryform/pkg/query"
)

// Synchronizer owns the field state of one form instance and emits compiled
// descriptors on commits. It is not safe for concurrent use; UI bindings call
// it from a single event loop.
type Synchronizer struct {
	spec     Spec
	state    State
	listener Listener
	logger   *slog.Logger
	prior    map[string]any

	last      query.Descriptor
	lastLabel string
	emitted   bool
}

// New validates spec and returns a synchronizer seeded with its defaults (and
// WithPrior, when supplied).
func New(spec Spec, options ...Option) (*Synchronizer, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}

	s := &Synchronizer{
		spec:   spec,
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(s)
	}

	s.Initialize(s.prior)
	s.prior = nil
	return s, nil
}

// Spec returns the form declaration backing the synchronizer.
func (s *Synchronizer) Spec() Spec {
	return s.spec
}

// Initialize replaces the field state with the defaults overlaid by prior.
// Edits and the last emitted descriptor are discarded, never merged.
func (s *Synchronizer) Initialize(prior map[string]any) {
	s.state = NewState(s.spec, prior)
	s.last, s.lastLabel, s.emitted = query.Descriptor{}, "", false
}

// InitializeFrom re-seeds the state from a previously emitted descriptor.
func (s *Synchronizer) InitializeFrom(d query.Descriptor) {
	s.Initialize(d.Map())
}

// State returns a copy of the current field state.
func (s *Synchronizer) State() State {
	return StateOf(s.state.values)
}

// SetField stores raw for name. Select-style fields compile immediately after
// any forced-value rules triggered by the new value are applied; free text
// fields wait for CommitField.
func (s *Synchronizer) SetField(name, raw string) error {
	def, ok := s.spec.Field(name)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownField, name)
	}

	s.state.set(name, raw)
	for _, rule := range s.spec.Rules {
		if rule.Field == name && rule.Equals == raw {
			s.state.set(rule.Target, rule.Value)
		}
	}

	if def.Commit == CommitOnSelect {
		s.Compile()
	}
	return nil
}

// CommitField signals that editing of name finished (blur) and compiles the
// current state.
func (s *Synchronizer) CommitField(name string) error {
	if _, ok := s.spec.Field(name); !ok {
		return fmt.Errorf("%w: %q", ErrUnknownField, name)
	}
	s.Compile()
	return nil
}

// Compile compiles the current state and notifies the listener when a
// descriptor is produced.
func (s *Synchronizer) Compile() (query.Descriptor, string, bool) {
	desc, label, ok := Compile(s.spec, s.state)
	if !ok {
		s.logger.Debug("query.skipped", "kind", s.spec.Tag, "reason", "primary field unset")
		return query.Descriptor{}, "", false
	}

	s.last, s.lastLabel, s.emitted = desc, label, true
	s.logger.Debug("query.compiled", "kind", s.spec.Tag, "label", label, "keys", desc.Keys())

	if s.listener != nil {
		s.listener(desc, label)
	}
	return desc, label, true
}

// Last returns the most recently emitted descriptor and label.
func (s *Synchronizer) Last() (query.Descriptor, string, bool) {
	return s.last, s.lastLabel, s.emitted
}
