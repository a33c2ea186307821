// Package queryform is the entry point for building query editor forms. It
// re-exports the synchronizer constructors and ships a registry populated
// with the built-in query kinds.
package queryform

import (
	"github.com/goliatone/go-queryform/pkg/form"
	"github.com/goliatone/go-queryform/pkg/form/terms"
	"github.com/goliatone/go-queryform/pkg/query"
)

// Descriptor aliases query.Descriptor for callers that only import the root
// package.
type Descriptor = query.Descriptor

// Listener aliases form.Listener.
type Listener = form.Listener

// Synchronizer aliases form.Synchronizer.
type Synchronizer = form.Synchronizer

// NewSynchronizer builds a synchronizer for an arbitrary spec.
func NewSynchronizer(spec form.Spec, options ...form.Option) (*Synchronizer, error) {
	return form.New(spec, options...)
}

// NewTermsSynchronizer builds a synchronizer for the terms query form.
func NewTermsSynchronizer(options ...form.Option) (*Synchronizer, error) {
	return terms.New(options...)
}

// DefaultRegistry returns a registry holding every built-in query kind.
func DefaultRegistry() *form.Registry {
	reg := form.NewRegistry()
	reg.MustRegister(terms.Spec())
	return reg
}
