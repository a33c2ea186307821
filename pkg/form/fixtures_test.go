package form

import "github.com/goliatone/go-queryform/pkg/query"

func sampleSpec() Spec {
	return Spec{
		Tag:      "sample",
		KindName: "Sample",
		Primary:  "field",
		Fields: []FieldDef{
			{Name: "field", Type: FieldTypeString, Commit: CommitOnSelect},
			{Name: "query", Type: FieldTypeString, Commit: CommitOnBlur},
			{Name: "limit", Key: "size", Type: FieldTypeInteger, Commit: CommitOnBlur},
			{Name: "sort", Type: FieldTypeString, Default: "name", Commit: CommitOnSelect},
			{Name: "dir", Type: FieldTypeString, Default: "asc", Commit: CommitOnSelect},
		},
		Rules: []Rule{
			{Field: "sort", Equals: "count", Target: "dir", Value: "desc"},
		},
	}
}

type emission struct {
	desc  query.Descriptor
	label string
}

type recorder struct {
	calls []emission
}

func (r *recorder) listen(d query.Descriptor, label string) {
	r.calls = append(r.calls, emission{desc: d, label: label})
}
