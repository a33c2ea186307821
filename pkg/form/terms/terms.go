// Package terms declares the terms query form: pick a field, optionally narrow
// it with a lucene query, cap the bucket count and choose an ordering.
package terms

import (
	"github.com/goliatone/go-queryform/pkg/form"
)

// Descriptor tag and label prefix.
const (
	Tag      = "terms"
	KindName = "Terms"
)

// Field names, which double as descriptor keys.
const (
	FieldName    = "field"
	FieldQuery   = "query"
	FieldSize    = "size"
	FieldOrderBy = "orderBy"
	FieldOrder   = "order"
)

// Ordering values.
const (
	OrderByTerm  = "_term"
	OrderByCount = "_count"
	OrderAsc     = "asc"
	OrderDesc    = "desc"
)

// OrderByOptions lists the selectable ordering keys.
var OrderByOptions = []form.SelectOption{
	{Value: OrderByTerm, Label: "Term value"},
	{Value: OrderByCount, Label: "Doc count"},
}

// OrderOptions lists the selectable ordering directions.
var OrderOptions = []form.SelectOption{
	{Value: OrderAsc, Label: "Ascending"},
	{Value: OrderDesc, Label: "Descending"},
}

// Spec returns the terms form declaration. Ordering by document count forces
// a descending direction.
func Spec() form.Spec {
	return form.Spec{
		Tag:      Tag,
		KindName: KindName,
		Primary:  FieldName,
		Fields: []form.FieldDef{
			{
				Name:        FieldName,
				Type:        form.FieldTypeString,
				Commit:      form.CommitOnSelect,
				Label:       "Field",
				Placeholder: "Choose field",
			},
			{
				Name:        FieldQuery,
				Type:        form.FieldTypeString,
				Commit:      form.CommitOnBlur,
				Label:       "Query",
				Placeholder: "lucene query",
			},
			{
				Name:        FieldSize,
				Type:        form.FieldTypeInteger,
				Commit:      form.CommitOnBlur,
				Label:       "Size",
				Placeholder: "500",
			},
			{
				Name:        FieldOrderBy,
				Type:        form.FieldTypeString,
				Default:     OrderByTerm,
				Commit:      form.CommitOnSelect,
				Label:       "Order By",
				Placeholder: "Choose order",
				Options:     append([]form.SelectOption(nil), OrderByOptions...),
			},
			{
				Name:        FieldOrder,
				Type:        form.FieldTypeString,
				Default:     OrderAsc,
				Commit:      form.CommitOnSelect,
				Label:       "Order",
				Placeholder: "Choose order",
				Options:     append([]form.SelectOption(nil), OrderOptions...),
			},
		},
		Rules: []form.Rule{
			{Field: FieldOrderBy, Equals: OrderByCount, Target: FieldOrder, Value: OrderDesc},
		},
	}
}

// New returns a synchronizer for the terms form.
func New(options ...form.Option) (*form.Synchronizer, error) {
	return form.New(Spec(), options...)
}
