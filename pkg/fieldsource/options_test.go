package fieldsource

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-queryform/pkg/form"
)

func sampleOptions() Options {
	return Options{
		{Value: "host", Label: "Host", Type: "keyword"},
		{Value: "hostname", Type: "keyword"},
		{Value: "status", Type: "integer"},
		{Value: "message", Type: "text"},
	}
}

func TestOptionsFind(t *testing.T) {
	opt, ok := sampleOptions().Find("status")
	if !ok || opt.Type != "integer" {
		t.Fatalf("expected status option, got %+v (%v)", opt, ok)
	}
	if _, ok := sampleOptions().Find("missing"); ok {
		t.Fatalf("expected missing option to be absent")
	}
}

func TestOptionsClosest(t *testing.T) {
	got := sampleOptions().Closest("Hots", 2, 3)
	if diff := cmp.Diff([]string{"host"}, got); diff != "" {
		t.Fatalf("closest mismatch (-want +got):\n%s", diff)
	}

	got = sampleOptions().Closest("hostnam", 4, 1)
	if diff := cmp.Diff([]string{"hostname"}, got); diff != "" {
		t.Fatalf("closest mismatch (-want +got):\n%s", diff)
	}

	if got := sampleOptions().Closest("", 3, 3); got != nil {
		t.Fatalf("expected nil for empty needle, got %v", got)
	}
}

func TestOptionsApplyTermsFilter(t *testing.T) {
	got := sampleOptions().Apply(TermsFilter).Values()
	if diff := cmp.Diff([]string{"host", "hostname", "status"}, got); diff != "" {
		t.Fatalf("filter mismatch (-want +got):\n%s", diff)
	}
}

func TestOptionsSelectOptions(t *testing.T) {
	got := sampleOptions()[:2].SelectOptions()
	want := []form.SelectOption{{Value: "host", Label: "Host"}, {Value: "hostname", Label: "hostname"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("select options mismatch (-want +got):\n%s", diff)
	}
}
