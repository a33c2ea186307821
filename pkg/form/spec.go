package form

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-queryform/pkg/query"
)

// FieldType controls how a raw field value is converted during compilation.
type FieldType string

const (
	FieldTypeString  FieldType = "string"
	FieldTypeInteger FieldType = "integer"
)

// CommitMode describes when an edit to a field triggers compilation.
type CommitMode string

const (
	// CommitOnSelect compiles as soon as the value is set; the input is a
	// discrete choice (select box, radio).
	CommitOnSelect CommitMode = "select"
	// CommitOnBlur waits for an explicit CommitField call (free text input).
	CommitOnBlur CommitMode = "blur"
)

// SelectOption is a selectable value for a select-style field.
type SelectOption struct {
	Value string `json:"value" yaml:"value"`
	Label string `json:"label" yaml:"label"`
}

// FieldDef declares one form field.
type FieldDef struct {
	Name        string
	Key         string // descriptor key; defaults to Name
	Type        FieldType
	Default     string
	Commit      CommitMode
	Label       string
	Placeholder string
	Options     []SelectOption
}

// DescriptorKey returns the key used for the field in compiled descriptors.
func (f FieldDef) DescriptorKey() string {
	if f.Key != "" {
		return f.Key
	}
	return f.Name
}

// OptionLabel returns the label registered for value, falling back to value.
func (f FieldDef) OptionLabel(value string) string {
	for _, opt := range f.Options {
		if opt.Value == value {
			return opt.Label
		}
	}
	return value
}

// Rule forces Target to Value whenever Field is set to Equals.
type Rule struct {
	Field  string
	Equals string
	Target string
	Value  string
}

// Spec declares a query form.
type Spec struct {
	Tag      string // discriminator written under query.KindKey
	KindName string // label prefix, e.g. "Terms"
	Primary  string // field that must differ from its default before emitting
	Fields   []FieldDef
	Rules    []Rule
}

// Field returns the definition registered under name.
func (s Spec) Field(name string) (FieldDef, bool) {
	for _, def := range s.Fields {
		if def.Name == name {
			return def, true
		}
	}
	return FieldDef{}, false
}

// Defaults returns the default value of every declared field.
func (s Spec) Defaults() map[string]string {
	out := make(map[string]string, len(s.Fields))
	for _, def := range s.Fields {
		out[def.Name] = def.Default
	}
	return out
}

// Validate checks the spec for structural mistakes.
func (s Spec) Validate() error {
	if strings.TrimSpace(s.Tag) == "" {
		return fmt.Errorf("%w: tag is required", ErrInvalidSpec)
	}
	if strings.TrimSpace(s.KindName) == "" {
		return fmt.Errorf("%w: kind name is required", ErrInvalidSpec)
	}

	names := make(map[string]struct{}, len(s.Fields))
	keys := make(map[string]struct{}, len(s.Fields))
	for _, def := range s.Fields {
		if strings.TrimSpace(def.Name) == "" {
			return fmt.Errorf("%w: field with empty name", ErrInvalidSpec)
		}
		if _, dup := names[def.Name]; dup {
			return fmt.Errorf("%w: duplicate field %q", ErrInvalidSpec, def.Name)
		}
		names[def.Name] = struct{}{}

		key := def.DescriptorKey()
		if key == query.KindKey {
			return fmt.Errorf("%w: field %q uses reserved key %q", ErrInvalidSpec, def.Name, query.KindKey)
		}
		if _, dup := keys[key]; dup {
			return fmt.Errorf("%w: duplicate descriptor key %q", ErrInvalidSpec, key)
		}
		keys[key] = struct{}{}

		switch def.Type {
		case FieldTypeString, FieldTypeInteger:
		default:
			return fmt.Errorf("%w: field %q has unsupported type %q", ErrInvalidSpec, def.Name, def.Type)
		}
		switch def.Commit {
		case CommitOnSelect, CommitOnBlur:
		default:
			return fmt.Errorf("%w: field %q has unsupported commit mode %q", ErrInvalidSpec, def.Name, def.Commit)
		}
	}

	if _, ok := names[s.Primary]; !ok {
		return fmt.Errorf("%w: primary field %q is not declared", ErrInvalidSpec, s.Primary)
	}
	for _, rule := range s.Rules {
		if _, ok := names[rule.Field]; !ok {
			return fmt.Errorf("%w: rule references unknown field %q", ErrInvalidSpec, rule.Field)
		}
		if _, ok := names[rule.Target]; !ok {
			return fmt.Errorf("%w: rule targets unknown field %q", ErrInvalidSpec, rule.Target)
		}
	}
	return nil
}
