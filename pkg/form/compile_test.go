package form

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestCompileSkipsUnsetPrimary(t *testing.T) {
	spec := sampleSpec()
	state := StateOf(map[string]string{"query": "status:200", "limit": "10"})

	if _, _, ok := Compile(spec, state); ok {
		t.Fatalf("expected no descriptor while primary is at its default")
	}
}

func TestCompileOmitsDefaults(t *testing.T) {
	spec := sampleSpec()
	desc, label, ok := Compile(spec, NewState(spec, map[string]any{"field": "host"}))
	if !ok {
		t.Fatalf("expected descriptor")
	}

	want := map[string]any{"find": "sample", "field": "host"}
	if diff := cmp.Diff(want, desc.Map()); diff != "" {
		t.Fatalf("descriptor mismatch (-want +got):\n%s", diff)
	}
	if label != "Sample(host)" {
		t.Fatalf("unexpected label %q", label)
	}
}

func TestCompileIncludesChangedFields(t *testing.T) {
	spec := sampleSpec()
	state := StateOf(map[string]string{
		"field": "host",
		"query": "status:500",
		"limit": "25",
		"sort":  "count",
		"dir":   "desc",
	})

	desc, _, ok := Compile(spec, state)
	if !ok {
		t.Fatalf("expected descriptor")
	}
	want := map[string]any{
		"find":  "sample",
		"field": "host",
		"query": "status:500",
		"size":  25,
		"sort":  "count",
		"dir":   "desc",
	}
	if diff := cmp.Diff(want, desc.Map()); diff != "" {
		t.Fatalf("descriptor mismatch (-want +got):\n%s", diff)
	}
}

func TestConvertInteger(t *testing.T) {
	def := FieldDef{Name: "limit", Type: FieldTypeInteger}
	cases := []struct {
		raw    string
		want   any
		wantOK bool
	}{
		{raw: "500", want: 500, wantOK: true},
		{raw: "0", want: 0, wantOK: true},
		{raw: " 42", want: 42, wantOK: true},
		{raw: "-7", want: -7, wantOK: true},
		{raw: "12abc", want: 12, wantOK: true},
		{raw: "", wantOK: false},
		{raw: "abc", wantOK: false},
		{raw: "-", wantOK: false},
		{raw: "99999999999999999999999", wantOK: false},
	}

	for _, tc := range cases {
		got, ok := Convert(def, tc.raw)
		if ok != tc.wantOK {
			t.Fatalf("Convert(%q) ok = %v, want %v", tc.raw, ok, tc.wantOK)
		}
		if ok && got != tc.want {
			t.Fatalf("Convert(%q) = %v, want %v", tc.raw, got, tc.want)
		}
	}
}

func TestConvertStringIsVerbatim(t *testing.T) {
	got, ok := Convert(FieldDef{Name: "query", Type: FieldTypeString}, " a b ")
	if !ok || got != " a b " {
		t.Fatalf("expected verbatim string, got %v (%v)", got, ok)
	}
}

func TestNewStateOverlaysPrior(t *testing.T) {
	spec := sampleSpec()
	state := NewState(spec, map[string]any{
		"find":    "sample",
		"field":   "host",
		"size":    10,
		"unknown": "ignored",
	})

	want := map[string]string{
		"field": "host",
		"query": "",
		"limit": "10",
		"sort":  "name",
		"dir":   "asc",
	}
	if diff := cmp.Diff(want, state.Values()); diff != "" {
		t.Fatalf("state mismatch (-want +got):\n%s", diff)
	}
}

func TestNewStateIntegerPriorForms(t *testing.T) {
	spec := sampleSpec()
	cases := map[string]struct {
		prior any
		want  string
	}{
		"float":  {prior: float64(20), want: "20"},
		"zero":   {prior: 0, want: ""},
		"nil":    {prior: nil, want: ""},
		"string": {prior: "007", want: "007"},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			state := NewState(spec, map[string]any{"size": tc.prior})
			if got, _ := state.Get("limit"); got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}
