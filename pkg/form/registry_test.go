package form

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestRegistry(t *testing.T) {
	reg := NewRegistry()
	reg.MustRegister(sampleSpec())

	if !reg.Has("sample") {
		t.Fatalf("expected sample to be registered")
	}
	spec, err := reg.Get("sample")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if spec.KindName != "Sample" {
		t.Fatalf("unexpected spec %+v", spec)
	}
	if diff := cmp.Diff([]string{"sample"}, reg.List()); diff != "" {
		t.Fatalf("list mismatch (-want +got):\n%s", diff)
	}

	if err := reg.Register(sampleSpec()); err == nil {
		t.Fatalf("expected duplicate registration to fail")
	}
	if _, err := reg.Get("missing"); err == nil {
		t.Fatalf("expected missing spec error")
	}
	if err := reg.Register(Spec{}); !errors.Is(err, ErrInvalidSpec) {
		t.Fatalf("expected ErrInvalidSpec, got %v", err)
	}
}
